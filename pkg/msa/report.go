package msa

import (
	"github.com/andrew-torda/msatool/pdb/cmmn"
)

// Reporter is told about progress. It can only watch. Nothing it does
// changes a result.
// Report gets a message which may contain "%.2fs". This should be
// replaced by the seconds since Timeit was called with the same key.
type Reporter interface {
	Timeit(key string)
	Report(msg, key string)
	Info(msg string)
	Warn(msg string)
}

// NopReporter ignores everything.
type NopReporter struct{}

func (NopReporter) Timeit(string)         {}
func (NopReporter) Report(string, string) {}
func (NopReporter) Info(string)           {}
func (NopReporter) Warn(string)           {}

// HeaderResolver finds the polymer chains of a structure, given its
// four character identifier like "1p38". Each chain has references to
// sequence databases such as UniProt.
type HeaderResolver interface {
	Polymers(pdbID string) ([]cmmn.Polymer, error)
}
