// Picking pieces out of an alignment.
// There is one general entry point, Get(), which takes a row selector
// and a column selector. Each selector is one of a small fixed set of
// kinds, built by the functions below. Seq() and Lookup() are the two
// common cases.

package msa

import (
	"fmt"
)

type rowKind uint8

const (
	rowAll rowKind = iota
	rowAt
	rowLabel
	rowKeys
	rowRange
)

// Rows says which rows to take.
type Rows struct {
	kind   rowKind
	i      int
	label  string
	keys   []Key
	lo, hi int
}

// Key is either a label or a row number, for use in RowKeys().
type Key struct {
	label   string
	i       int
	isLabel bool
}

// LabelKey is a Key for a label.
func LabelKey(s string) Key { return Key{label: s, isLabel: true} }

// IndexKey is a Key for a row number.
func IndexKey(i int) Key { return Key{i: i} }

// AllRows takes every row.
func AllRows() Rows { return Rows{kind: rowAll} }

// RowAt takes row i.
func RowAt(i int) Rows { return Rows{kind: rowAt, i: i} }

// RowLabel takes the row or rows carrying label.
func RowLabel(label string) Rows { return Rows{kind: rowLabel, label: label} }

// RowKeys takes rows named by labels or numbers, in the order given.
// A label carried by several rows gives all of them.
func RowKeys(keys ...Key) Rows { return Rows{kind: rowKeys, keys: keys} }

// RowLabels is RowKeys for a list of labels.
func RowLabels(labels ...string) Rows {
	keys := make([]Key, len(labels))
	for i, l := range labels {
		keys[i] = LabelKey(l)
	}
	return RowKeys(keys...)
}

// RowRange takes rows lo up to, but not including hi. Like a slice
// expression, but out of range values are clipped.
func RowRange(lo, hi int) Rows { return Rows{kind: rowRange, lo: lo, hi: hi} }

type colKind uint8

const (
	colAll colKind = iota
	colAt
	colRange
	colList
)

// Cols says which columns to take.
type Cols struct {
	kind   colKind
	j      int
	lo, hi int
	list   []int
}

// AllCols takes every column.
func AllCols() Cols { return Cols{kind: colAll} }

// ColAt takes column j.
func ColAt(j int) Cols { return Cols{kind: colAt, j: j} }

// ColRange takes columns lo up to hi, clipped like RowRange.
func ColRange(lo, hi int) Cols { return Cols{kind: colRange, lo: lo, hi: hi} }

// ColList takes the listed columns, in the order given. Repeats are
// allowed.
func ColList(js ...int) Cols { return Cols{kind: colList, list: js} }

// Result of Get. Exactly one of Seq or MSA is set.
type Result struct {
	Seq *Sequence
	MSA *MSA
}

// IsSeq is true if the result is a single sequence.
func (r Result) IsSeq() bool { return r.Seq != nil }

// clip limits a range to [0, n].
func clip(lo, hi, n int) (int, int) {
	lo, hi = max(lo, 0), min(hi, n)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// Seq returns row i. The sequence borrows its bytes from the alignment.
func (m *MSA) Seq(i int) (*Sequence, error) {
	if i < 0 || i >= m.NumSeqs() {
		return nil, fmt.Errorf("%w: row %d of %d", ErrIndex, i, m.NumSeqs())
	}
	return &Sequence{msa: m, row: i, seq: m.mat.Mat[i]}, nil
}

// Lookup finds a label. If a single sequence has this label, it is
// returned, borrowing from the alignment. If there are several, we
// return a new alignment with just those rows and its own storage.
func (m *MSA) Lookup(label string) (Result, error) {
	rows, ok := m.ndx.rows(label)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q is not mapped to a sequence", ErrNotFound, label)
	}
	if len(rows) == 1 {
		s, err := m.Seq(rows[0])
		return Result{Seq: s}, err
	}
	title := fmt.Sprintf("%s[%s]", m.title, label)
	return Result{MSA: m.derive(m.mat.take(rows, nil), m.subLabels(rows), title)}, nil
}

// resolveKeys turns keys into row numbers.
func (m *MSA) resolveKeys(keys []Key) ([]int, error) {
	rows := make([]int, 0, len(keys))
	for _, k := range keys {
		if !k.isLabel {
			rows = append(rows, k.i)
			continue
		}
		r, ok := m.ndx.rows(k.label)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not mapped to a sequence", ErrNotFound, k.label)
		}
		rows = append(rows, r...)
	}
	return rows, nil
}

// resolveRows turns a row selector into row numbers. single is true if
// the selector named exactly one row by number or unique label.
func (m *MSA) resolveRows(r Rows) (rows []int, single bool, err error) {
	n := m.NumSeqs()
	switch r.kind {
	case rowAll:
		rows = make([]int, n)
		for i := range rows {
			rows[i] = i
		}
	case rowAt:
		rows, single = []int{r.i}, true
	case rowLabel:
		var ok bool
		if rows, ok = m.ndx.rows(r.label); !ok {
			return nil, false, fmt.Errorf("%w: %q is not mapped to a sequence", ErrNotFound, r.label)
		}
		single = len(rows) == 1
	case rowKeys:
		if rows, err = m.resolveKeys(r.keys); err != nil {
			return nil, false, err
		}
	case rowRange:
		lo, hi := clip(r.lo, r.hi, n)
		for i := lo; i < hi; i++ {
			rows = append(rows, i)
		}
	default:
		panic("program bug, unknown row selector")
	}
	for _, i := range rows {
		if i < 0 || i >= n {
			return nil, false, fmt.Errorf("%w: row %d of %d", ErrIndex, i, n)
		}
	}
	return rows, single, nil
}

// resolveCols turns a column selector into column numbers. nil means all.
func (m *MSA) resolveCols(c Cols) ([]int, error) {
	if c.kind == colAll {
		return nil, nil
	}
	if !m.aligned {
		return nil, fmt.Errorf("%w: cannot select columns of an unaligned alignment", ErrType)
	}
	ncol := m.NumResidues()
	var cols []int
	switch c.kind {
	case colAt:
		cols = []int{c.j}
	case colRange:
		lo, hi := clip(c.lo, c.hi, ncol)
		cols = make([]int, 0, hi-lo)
		for j := lo; j < hi; j++ {
			cols = append(cols, j)
		}
	case colList:
		cols = append(make([]int, 0, len(c.list)), c.list...)
	default:
		panic("program bug, unknown column selector")
	}
	for _, j := range cols {
		if j < 0 || j >= ncol {
			return nil, fmt.Errorf("%w: column %d of %d", ErrIndex, j, ncol)
		}
	}
	return cols, nil
}

// subLabels copies the labels of some rows.
func (m *MSA) subLabels(rows []int) []string {
	labels := make([]string, len(rows))
	for i, r := range rows {
		labels[i] = m.labels[r]
	}
	return labels
}

// Get is the general way to take pieces of an alignment.
//
// One row (by number or by a label with one row) with all columns, one
// column or a range of columns gives a Sequence. Everything else gives a
// new MSA whose title is the old one with a "'" added. Both own their
// storage, so nothing returned by Get shares memory with m.
func (m *MSA) Get(r Rows, c Cols) (Result, error) {
	rows, single, err := m.resolveRows(r)
	if err != nil {
		return Result{}, err
	}
	cols, err := m.resolveCols(c)
	if err != nil {
		return Result{}, err
	}
	if single && c.kind != colList {
		i := rows[0]
		b := m.mat.Mat[i]
		switch {
		case cols == nil: // whole row
		case len(cols) == 0:
			b = nil
		default: //          colAt and colRange are contiguous
			b = b[cols[0] : cols[len(cols)-1]+1]
		}
		s := &Sequence{label: m.labels[i], seq: append([]byte(nil), b...)}
		return Result{Seq: s}, nil
	}
	return Result{MSA: m.derive(m.mat.take(rows, cols), m.subLabels(rows), m.title+"'")}, nil
}
