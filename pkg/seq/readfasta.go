// Reader for fasta format files.

package seq

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"

	"github.com/andrew-torda/msatool/pkg/seq/common"
	"github.com/andrew-torda/msatool/pkg/white"
)

const (
	NL       = '\n'
	cmmtChar = '>'
)

// lexer walks over the whole input. Sequences are copied out, so the
// input can be unmapped afterwards.
type lexer struct {
	input []byte
	al    *Alignment
	opts  *Options
	cmmt  string // current comment
	seq   []byte // partial sequence
	err   error
}

// line returns the next line without the newline and moves on.
func (l *lexer) line() []byte {
	var ret []byte
	if ndx := bytes.IndexByte(l.input, NL); ndx == -1 {
		ret, l.input = l.input, nil
	} else {
		ret, l.input = l.input[:ndx], l.input[ndx+1:]
	}
	return ret
}

type stateFn func(*lexer) stateFn

// gstart jumps over blank lines before the first comment.
func gstart(l *lexer) stateFn {
	for len(l.input) > 0 {
		if l.input[0] == cmmtChar {
			return gcmmt
		}
		if b := bytes.TrimSpace(l.line()); len(b) != 0 {
			l.err = errors.New("fasta file does not start with " + string(cmmtChar))
			return nil
		}
	}
	return nil
}

// We are reading a comment
func gcmmt(l *lexer) stateFn {
	l.cmmt = string(bytes.TrimSpace(l.line()[1:]))
	return gseq
}

// We are reading a sequence. It finishes at the next comment or the end.
func gseq(l *lexer) stateFn {
	for len(l.input) > 0 && l.input[0] != cmmtChar {
		b := l.line()
		n := len(l.seq)
		l.seq = append(l.seq, b...)
		tail := l.seq[n:]
		if l.opts.RmvGapsRd {
			white.RemoveIf(&tail, common.IsGap)
		} else {
			white.Remove(&tail)
		}
		l.seq = l.seq[:n+len(tail)]
	}
	if len(l.seq) == 0 {
		l.err = errors.New("zero length sequence after >" + l.cmmt)
		return nil
	}
	if l.opts.Upper {
		upper(l.seq)
	}
	label, desc := l.cmmt, ""
	if i := strings.IndexAny(l.cmmt, " \t"); i != -1 {
		label, desc = l.cmmt[:i], strings.TrimSpace(l.cmmt[i+1:])
	}
	l.al.Labels = append(l.al.Labels, label)
	l.al.Descs = append(l.al.Descs, desc)
	l.al.Rows = append(l.al.Rows, l.seq)
	l.seq = nil
	if len(l.input) == 0 {
		return nil
	}
	return gcmmt
}

// parseFasta does the work for the readers.
func parseFasta(input []byte, opts *Options) (*Alignment, error) {
	if opts == nil {
		opts = &Options{}
	}
	l := lexer{input: input, al: &Alignment{}, opts: opts}
	for state := gstart; state != nil; {
		state = state(&l)
	}
	if l.err != nil {
		return nil, l.err
	}
	if l.al.NSeq() == 0 {
		return nil, errors.New("no sequences found")
	}
	if !opts.DiffLenSeq {
		if err := l.al.checkLengths(); err != nil {
			return nil, err
		}
	}
	return l.al, nil
}

// ReadFasta reads fasta formatted sequences from rdr.
func ReadFasta(rdr io.Reader, opts *Options) (*Alignment, error) {
	b, err := io.ReadAll(rdr)
	if err != nil {
		return nil, err
	}
	return parseFasta(b, opts)
}

// Readfile takes a filename and reads sequences from it. If fname is
// empty, we read from standard input. Files are mapped into memory
// rather than read.
func Readfile(fname string, opts *Options) (*Alignment, error) {
	if fname == "" {
		return ReadFasta(os.Stdin, opts)
	}
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() == 0 { // mmap does not like empty files
		return nil, fmt.Errorf("%s: no sequences found", fname)
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer mm.Unmap()
	al, err := parseFasta(mm, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return al, nil
}
