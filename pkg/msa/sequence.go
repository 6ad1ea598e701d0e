package msa

import (
	"fmt"

	"github.com/andrew-torda/msatool/pkg/seq/common"
)

// Sequence is one row of an alignment, or a piece of one.
// A Sequence from MSA.Seq or MSA.Lookup borrows its bytes from the row
// in the alignment. Anything which selects columns gives a Sequence with
// its own copy. The back-link to the alignment is only used for the
// label and title and does not keep anything alive that the caller would
// not already be holding.
type Sequence struct {
	msa   *MSA
	row   int // row in msa, only meaningful if msa != nil
	label string
	seq   []byte
}

// Label returns the full label, including any residue range.
func (s *Sequence) Label() string {
	if s.msa != nil {
		return s.msa.labels[s.row]
	}
	return s.label
}

// CoreLabel is the label without the residue range.
func (s *Sequence) CoreLabel() string { return coreLabel(s.Label()) }

// Resnums returns the residue numbers from the label suffix.
func (s *Sequence) Resnums() (start, end int, ok bool) {
	_, start, end, ok = SplitLabel(s.Label())
	return
}

// Row says which row of which alignment this came from. Owned sequences
// say -1.
func (s *Sequence) Row() int {
	if s.msa == nil {
		return -1
	}
	return s.row
}

// Borrowed is true if the bytes belong to an alignment.
func (s *Sequence) Borrowed() bool { return s.msa != nil }

// GetSeq returns the bytes. Do not modify them if Borrowed() is true.
func (s *Sequence) GetSeq() []byte { return s.seq }

// Bytes returns a copy of the bytes.
func (s *Sequence) Bytes() []byte { return append([]byte(nil), s.seq...) }

// Len is the number of positions, residues and gaps.
func (s *Sequence) Len() int { return len(s.seq) }

// NumResidues counts the letters.
func (s *Sequence) NumResidues() (n int) {
	for _, c := range s.seq {
		if common.IsResidue(c) {
			n++
		}
	}
	return n
}

// NumGaps counts everything which is not a letter.
func (s *Sequence) NumGaps() int { return len(s.seq) - s.NumResidues() }

// Str returns the sequence as a string.
func (s *Sequence) Str() string { return string(s.seq) }

// String gives a description like
//
//	<Sequence: FOO_HUMAN (pfam[0]; length 10; 9 residues and 1 gaps)>
func (s *Sequence) String() string {
	if s.msa != nil {
		return fmt.Sprintf("<Sequence: %s (%s[%d]; length %d; %d residues and %d gaps)>",
			s.CoreLabel(), s.msa.title, s.row, s.Len(), s.NumResidues(), s.NumGaps())
	}
	return fmt.Sprintf("<Sequence: %s (length %d; %d residues and %d gaps)>",
		s.CoreLabel(), s.Len(), s.NumResidues(), s.NumGaps())
}
