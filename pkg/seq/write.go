package seq

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/msatool/pkg/msa"
	"github.com/andrew-torda/msatool/pkg/seq/common"
)

const cPerLine = 60

// WriteMSA writes an alignment in fasta format, with full labels.
// If opts.RmvGapsWrt is set, gap characters are left out.
func WriteMSA(w io.Writer, m *msa.MSA, opts *Options) error {
	if opts == nil {
		opts = &Options{}
	}
	bw := bufio.NewWriter(w)
	var t []byte
	for i := 0; i < m.NumSeqs(); i++ {
		s, err := m.Seq(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, "%c%s\n", cmmtChar, s.Label())
		b := s.GetSeq()
		if opts.RmvGapsWrt { // we have to remove gap characters on output
			t = t[:0]
			for _, c := range b {
				if common.IsResidue(c) {
					t = append(t, c)
				}
			}
			b = t
		}
		for ; len(b) > cPerLine; b = b[cPerLine:] {
			bw.Write(b[:cPerLine])
			bw.WriteByte(NL)
		}
		bw.Write(b)
		bw.WriteByte(NL)
	}
	return bw.Flush()
}

// WriteToF writes an alignment to a file. An empty name means standard
// output. With opts.DryRun set, nothing is written.
func WriteToF(fname string, m *msa.MSA, opts *Options) error {
	if opts == nil {
		opts = &Options{}
	}
	var outfileFp io.Writer
	switch {
	case opts.DryRun:
		outfileFp = io.Discard
	case fname == "":
		outfileFp = os.Stdout
	default:
		t, err := os.Create(fname)
		if err != nil {
			return fmt.Errorf("creating output sequence file: %w", err)
		}
		defer t.Close()
		outfileFp = t
	}
	return WriteMSA(outfileFp, m, opts)
}
