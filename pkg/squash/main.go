// 29 April 2020

// Package squash removes the columns of an alignment where a reference
// sequence has a gap.
package squash

import (
	"fmt"
	"strconv"

	"github.com/andrew-torda/msatool/pkg/msa"
	"github.com/andrew-torda/msatool/pkg/seq"
)

// refLabel decides which sequence is meant. It may be a label, the
// number of a sequence counting from 1, or part of a label.
func refLabel(name string, al *seq.Alignment, m *msa.MSA) (string, bool) {
	if m.Contains(name) {
		return name, true
	}
	if n, err := strconv.Atoi(name); err == nil && n >= 1 && n <= m.NumSeqs() {
		return m.Label(n-1, false), true
	}
	if i := al.FindNdx(name); i != -1 {
		return m.Label(i, false), true
	}
	return "", false
}

// Squash reads infile and writes to outfile only the columns where
// the sequence called seqstring has residues. Empty file names mean
// standard input and output. An empty title becomes the input file
// name. sOpts is used for reading and writing, so a dry run writes
// nothing. rep may be nil.
func Squash(seqstring, infile, outfile, title string, sOpts *seq.Options, rep msa.Reporter) error {
	if sOpts == nil {
		sOpts = &seq.Options{}
	}
	al, err := seq.Readfile(infile, sOpts)
	if err != nil {
		return fmt.Errorf("input file: %w", err)
	}
	if title == "" {
		title = infile
	}
	m, err := al.ToMSA(title, sOpts)
	if err != nil {
		return err
	}
	label, ok := refLabel(seqstring, al, m)
	if !ok {
		return fmt.Errorf("%w: could not find %q amongst sequences", msa.ErrNotFound, seqstring)
	}
	r, err := msa.Refine(m, &msa.RefineOpts{Label: label, Reporter: rep})
	if err != nil {
		return err
	}

	if err := seq.WriteToF(outfile, r, sOpts); err != nil {
		if outfile == "" {
			outfile = "os.Stdout"
		}
		return fmt.Errorf("fail writing to %s: %w", outfile, err)
	}
	return nil
}
