package cli

import (
	"fmt"
	"io"

	"github.com/andrew-torda/msatool/config"
	"github.com/andrew-torda/msatool/pkg/msa"
	"github.com/andrew-torda/msatool/pkg/seq"
	"github.com/andrew-torda/msatool/report"
)

const readKey = "_read"

// readMSA reads one alignment. Without a title, the file name is used.
func readMSA(fname, title string, c config.Config) (*msa.MSA, error) {
	al, err := seq.Readfile(fname, c.SeqOptions())
	if err != nil {
		return nil, err
	}
	if title == "" {
		title = fname
	}
	if title == "" {
		title = "stdin"
	}
	return al.ToMSA(title, c.SeqOptions())
}

// readOne reads the input and says how long it took.
func readOne(fname string, c config.Config, rep *report.Logger) (*msa.MSA, error) {
	rep.Timeit(readKey)
	m, err := readMSA(fname, c.Title, c)
	if err != nil {
		return nil, err
	}
	rep.Report(fmt.Sprintf("Read %s in %%.2fs.", m), readKey)
	return m, nil
}

// newLogger sets up reporting the way the config says. The caller
// closes the log when finished.
func newLogger(c config.Config) (*report.Logger, io.Closer, error) {
	lg, closer, err := report.LogWhere(c.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log: %w", err)
	}
	return report.New(lg, c.Colour), closer, nil
}
