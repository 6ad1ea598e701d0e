// 3 Mar 2021

// Package msa stores multiple sequence alignments and does the
// manipulations that need the alignment as a whole: picking rows and
// columns by index or by label, refining by occupancy, identity or a
// reference sequence, and merging alignments that share labels.
//
// An MSA is a value. Once built it is never changed, apart from the
// flag that says how labels are shown when iterating. Everything that
// selects, refines or merges returns a new MSA with its own storage and
// a freshly built label index.
package msa

import (
	"fmt"
	"iter"
)

// MaxSym is the limit for a byte to count as a single character.
const MaxSym byte = 127

const dfltTitle = "Unknown"

// Options are the choices when building an MSA.
type Options struct {
	Title      string           // Defaults to "Unknown"
	NotAligned bool             // Rows may have different lengths
	Mapping    map[string][]int // Use this label index instead of building one
	NoSplit    bool             // Iterate with plain labels
}

// MSA is a multiple sequence alignment.
type MSA struct {
	mat     Matrix
	labels  []string
	ndx     labelIndex // nil if there is nothing to index
	title   string
	aligned bool
	split   bool
}

// New builds an alignment. The rows are copied. labels may be nil, in
// which case every label is empty and nothing is indexed, unless
// opts.Mapping is given.
func New(rows [][]byte, labels []string, opts *Options) (*MSA, error) {
	if opts == nil {
		opts = &Options{}
	}
	aligned := !opts.NotAligned
	if aligned {
		ncol := 0
		if len(rows) > 0 {
			ncol = len(rows[0])
		}
		for i, r := range rows {
			if len(r) != ncol {
				const msg = "%w: row %d has length %d, but first row has %d"
				return nil, fmt.Errorf(msg, ErrConstruct, i, len(r), ncol)
			}
			for j, c := range r {
				if c > MaxSym {
					const msg = "%w: row %d column %d is not a single character (%d)"
					return nil, fmt.Errorf(msg, ErrConstruct, i, j, c)
				}
			}
		}
	}
	if labels != nil && len(labels) != len(rows) {
		const msg = "%w: got %d labels for %d sequences"
		return nil, fmt.Errorf(msg, ErrConstruct, len(labels), len(rows))
	}
	for k, v := range opts.Mapping {
		for _, i := range v {
			if i < 0 || i >= len(rows) {
				const msg = "%w: mapping sends %q to row %d, but there are %d rows"
				return nil, fmt.Errorf(msg, ErrConstruct, k, i, len(rows))
			}
		}
	}
	m := &MSA{
		mat:     MatrixFrom(rows),
		title:   opts.Title,
		aligned: aligned,
		split:   !opts.NoSplit,
	}
	if m.title == "" {
		m.title = dfltTitle
	}
	switch {
	case opts.Mapping != nil:
		m.ndx = copyIndex(opts.Mapping)
	case labels != nil:
		m.ndx = buildIndex(labels)
	}
	if labels == nil {
		m.labels = make([]string, len(rows))
	} else {
		m.labels = append([]string(nil), labels...)
	}
	return m, nil
}

// NewFromStrings is New for sequences held as strings.
func NewFromStrings(seqs []string, labels []string, opts *Options) (*MSA, error) {
	return New(MatrixFromStrings(seqs).Mat, labels, opts)
}

// derive builds a new alignment from pieces of m. It takes ownership of
// mat and labels. The new one has its own label index, unless m had none,
// and iterates the way m does.
func (m *MSA) derive(mat Matrix, labels []string, title string) *MSA {
	d := &MSA{
		mat:     mat,
		labels:  labels,
		title:   title,
		aligned: m.aligned,
		split:   m.split,
	}
	if m.ndx != nil {
		d.ndx = buildIndex(labels)
	}
	return d
}

// Len is the number of sequences.
func (m *MSA) Len() int { return len(m.mat.Mat) }

// NumSeqs is the number of sequences.
func (m *MSA) NumSeqs() int { return len(m.mat.Mat) }

// NumResidues is the number of columns. It is -1 for an alignment which
// is not aligned.
func (m *MSA) NumResidues() int {
	if !m.aligned {
		return -1
	}
	_, ncol := m.mat.Size()
	return ncol
}

// IsAligned is true if every row has the same length.
func (m *MSA) IsAligned() bool { return m.aligned }

// Title of the alignment.
func (m *MSA) Title() string { return m.title }

// Split says whether iteration splits labels into name and residue numbers.
func (m *MSA) Split() bool { return m.split }

// SetSplit changes how labels are shown when iterating. It is the only
// thing about an MSA that can be changed and it is not guarded. Do not
// call it while another goroutine iterates.
func (m *MSA) SetSplit(split bool) { m.split = split }

// Array returns a copy of the character matrix.
func (m *MSA) Array() Matrix { return m.mat.Copy() }

// Contains says if label is in the label index.
func (m *MSA) Contains(label string) bool {
	_, ok := m.ndx.rows(label)
	return ok
}

// Equal is true if the two character matrices have the same shape and
// contents. Labels and titles are not compared. A nil MSA is not equal
// to anything.
func (m *MSA) Equal(o *MSA) bool {
	if m == nil || o == nil {
		return false
	}
	return m.mat.Equal(o.mat)
}

// NumIndexed returns the number of sequences that can be reached through
// the label index. If every label is unique, this is the number of
// sequences.
func (m *MSA) NumIndexed() int { return m.ndx.nIndexed() }

// GetIndex returns the rows that labels map onto. With one label, this
// is the row or rows with that label. With several, the rows are joined
// in order. If any label is missing, the whole lookup fails.
func (m *MSA) GetIndex(labels ...string) ([]int, bool) {
	var ret []int
	for _, l := range labels {
		r, ok := m.ndx.rows(l)
		if !ok {
			return nil, false
		}
		ret = append(ret, r...)
	}
	if len(labels) == 0 {
		return nil, false
	}
	return ret, true
}

// CountLabel returns how many sequences label maps onto.
func (m *MSA) CountLabel(label string) int {
	r, _ := m.ndx.rows(label)
	return len(r)
}

// Label returns the label of row i. Residue numbers are removed unless
// full is true.
func (m *MSA) Label(i int, full bool) string {
	if full {
		return m.labels[i]
	}
	return coreLabel(m.labels[i])
}

// Resnums returns the residue numbers from the label of row i.
func (m *MSA) Resnums(i int) (start, end int, ok bool) {
	_, start, end, ok = SplitLabel(m.labels[i])
	return
}

// IterLabels yields the labels in row order, without residue numbers
// unless full is set.
func (m *MSA) IterLabels(full bool) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := range m.labels {
			if !yield(m.Label(i, full)) {
				return
			}
		}
	}
}

// Entry is what iteration over an alignment gives for each row.
// If Split is false, Start, End and HasRange are not filled in.
type Entry struct {
	Label    string
	Seq      string
	Start    int
	End      int
	HasRange bool
	Split    bool
}

// All yields every row in order. The split flag is read once, when
// iteration starts.
func (m *MSA) All() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		split := m.split
		for i, l := range m.labels {
			e := Entry{Seq: string(m.mat.Mat[i]), Split: split}
			if split {
				e.Label, e.Start, e.End, e.HasRange = SplitLabel(l)
			} else {
				e.Label = coreLabel(l)
			}
			if !yield(i, e) {
				return
			}
		}
	}
}

// String gives something like <MSA: piwi_seed (20 sequences, 404 residues)>
func (m *MSA) String() string {
	if m.aligned {
		return fmt.Sprintf("<MSA: %s (%d sequences, %d residues)>",
			m.title, m.NumSeqs(), m.NumResidues())
	}
	return fmt.Sprintf("<MSA: %s (%d sequences, not aligned)>", m.title, m.NumSeqs())
}
