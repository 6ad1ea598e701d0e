// 20 Dec 2017

// Package seq reads and writes sequence files. Sequences usually begin
// their lives in fasta format. Here we read them into an Alignment,
// which is just labels and rows, and turn that into an msa.MSA.
package seq

import (
	"fmt"
	"strings"

	"github.com/andrew-torda/msatool/pkg/msa"
)

// Options contains all the choices passed in from the caller.
type Options struct {
	DiffLenSeq bool // false, unless we expect sequences to be different lengths
	DryRun     bool // Do not write any files
	RmvGapsRd  bool // Remove gaps upon reading
	RmvGapsWrt bool // Remove gaps on output
	Upper      bool // Convert to upper case on reading
}

// Alignment is what comes out of a file. Labels[i] goes with Rows[i].
type Alignment struct {
	Labels []string
	Descs  []string // Anything on the comment line after the label
	Rows   [][]byte
}

// NSeq returns the number of sequences.
func (al *Alignment) NSeq() int { return len(al.Rows) }

// FindNdx returns the index of the first sequence whose label contains
// s, or -1. We remove any ">", space or tab at the start.
func (al *Alignment) FindNdx(s string) int {
	s = strings.TrimLeft(s, " >\t")
	for i, l := range al.Labels {
		if strings.Contains(l, s) {
			return i
		}
	}
	return -1
}

// ToMSA builds an alignment container. Unless opts.DiffLenSeq is set,
// the rows must be the same length.
func (al *Alignment) ToMSA(title string, opts *Options) (*msa.MSA, error) {
	if opts == nil {
		opts = &Options{}
	}
	return msa.New(al.Rows, al.Labels, &msa.Options{Title: title, NotAligned: opts.DiffLenSeq})
}

// trimStr trims a string to n bytes if it is longer
func trimStr(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// upper changes a sequence to upper case, in place.
// It only works with bytes, not runes.
func upper(s []byte) {
	const diff = 'a' - 'A'
	for i, c := range s {
		if 'a' <= c && c <= 'z' {
			s[i] -= diff
		}
	}
}

// checkLengths is called if we think we are reading an alignment.
// Then all the sequences must be the same length.
func (al *Alignment) checkLengths() error {
	const msg = `sequence lengths are not the same. First sequence length %d, but
sequence %d length: %d. Sequence starts %s`
	iwant := len(al.Rows[0])
	for i := 1; i < len(al.Rows); i++ {
		if ilen := len(al.Rows[i]); ilen != iwant {
			return fmt.Errorf(msg, iwant, i, ilen, trimStr(al.Labels[i], 40))
		}
	}
	return nil
}

// Str2Alignment takes some strings and returns them as an Alignment.
// prefix is an optional argument. Sequences need names. If
// prefix is not given, sequences will be called "s0", "s1", ...
func Str2Alignment(sIn []string, prefix ...string) *Alignment {
	base := "s"
	if prefix != nil {
		base = prefix[0]
	}
	al := &Alignment{}
	for i, s := range sIn {
		al.Labels = append(al.Labels, fmt.Sprint(base, i))
		al.Descs = append(al.Descs, "")
		al.Rows = append(al.Rows, []byte(s))
	}
	return al
}
