// Refinement of alignments. The stages always run in the same order:
// reference label, row occupancy, sequence identity, column occupancy.
// Each one is only done if it was asked for.

package msa

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/willf/bitset"

	"github.com/andrew-torda/msatool/pkg/seq/common"
)

// RefineOpts says which refinements to do. A nil threshold means that
// stage is not run.
type RefineOpts struct {
	Label    string   // Keep only the columns where this sequence has residues
	RowOcc   *float64 // Drop rows with less occupancy than this
	SeqID    *float64 // Keep only sequences less similar than this
	ColOcc   *float64 // Drop columns with less occupancy than this
	Resolver HeaderResolver
	Reporter Reporter
}

// Float is a convenience for filling out RefineOpts.
func Float(x float64) *float64 { return &x }

const refineKey = "_refine"

// check looks at the options before anything is done.
func (o *RefineOpts) check() error {
	if o.Label == "" && o.RowOcc == nil && o.SeqID == nil && o.ColOcc == nil {
		return fmt.Errorf("%w: need label, rowocc, seqid or colocc", ErrNoCriterion)
	}
	for _, t := range []struct {
		name string
		v    *float64
	}{{"rowocc", o.RowOcc}, {"seqid", o.SeqID}, {"colocc", o.ColOcc}} {
		if t.v == nil {
			continue
		}
		if x := *t.v; math.IsNaN(x) || x < 0 || x > 1 {
			return fmt.Errorf("%w: %s is %v", ErrThreshold, t.name, x)
		}
	}
	return nil
}

func ftoa(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }

// members turns a bitset into the list of what is set.
func members(b *bitset.BitSet) []int {
	ret := make([]int, 0, b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		ret = append(ret, int(i))
	}
	return ret
}

// refineState is the work in progress. rows and cols index the
// original matrix.
type refineState struct {
	mat        Matrix
	rows, cols []int // nil cols means all
	anchor     int   // row of the reference sequence in mat, or -1
	tokens     []string
	rowsDone   bool
	rep        Reporter
}

// current is the matrix as it is after the stages so far.
func (st *refineState) current() Matrix { return st.mat.take(st.rows, st.cols) }

func (st *refineState) ncol() int {
	if st.cols != nil {
		return len(st.cols)
	}
	_, ncol := st.mat.Size()
	return ncol
}

// byLabel keeps the columns where the anchor row has a residue.
func (st *refineState) byLabel(label string) {
	before := st.ncol()
	st.rep.Timeit(refineKey)
	st.cols = make([]int, 0, before)
	for j, c := range st.mat.Mat[st.anchor] {
		if common.IsResidue(c) {
			st.cols = append(st.cols, j)
		}
	}
	st.tokens = append(st.tokens, "label="+label)
	const msg = "Label refinement reduced number of columns from %d to %d in %%.2fs."
	st.rep.Report(fmt.Sprintf(msg, before, len(st.cols)), refineKey)
}

// byRowOcc drops rows with too many gaps. The anchor always stays.
func (st *refineState) byRowOcc(r float64) {
	before := len(st.rows)
	st.rep.Timeit(refineKey)
	occ := RowOccupancy(st.current())
	keep := bitset.New(uint(before))
	for i, x := range occ {
		if x >= r || st.rows[i] == st.anchor {
			keep.Set(uint(i))
		}
	}
	st.pick(keep)
	st.tokens = append(st.tokens, "rowocc>="+ftoa(r))
	const msg = "Row occupancy refinement reduced number of rows from %d to %d in %%.2fs."
	st.rep.Report(fmt.Sprintf(msg, before, len(st.rows)), refineKey)
}

// bySeqID keeps a set of sequences which are not too similar to each
// other, plus the anchor.
func (st *refineState) bySeqID(s float64) {
	before := len(st.rows)
	st.rep.Timeit(refineKey)
	keep := Unique(st.current(), s)
	for i, r := range st.rows {
		if r == st.anchor {
			keep.Set(uint(i))
		}
	}
	st.pick(keep)
	st.tokens = append(st.tokens, "seqid>="+ftoa(s))
	const msg = "Sequence identity refinement reduced number of rows from %d to %d in %%.2fs."
	st.rep.Report(fmt.Sprintf(msg, before, len(st.rows)), refineKey)
}

// pick keeps the rows whose positions in st.rows are set in keep.
func (st *refineState) pick(keep *bitset.BitSet) {
	rows := make([]int, 0, keep.Count())
	for _, i := range members(keep) {
		rows = append(rows, st.rows[i])
	}
	st.rows = rows
	st.rowsDone = true
}

// byColOcc drops columns with too many gaps.
func (st *refineState) byColOcc(c float64) {
	before := st.ncol()
	st.rep.Timeit(refineKey)
	occ := ColOccupancy(st.current())
	keep := bitset.New(uint(before))
	for j, x := range occ {
		if x >= c {
			keep.Set(uint(j))
		}
	}
	cols := make([]int, 0, keep.Count())
	for _, j := range members(keep) {
		if st.cols != nil {
			j = st.cols[j]
		}
		cols = append(cols, j)
	}
	st.cols = cols
	st.tokens = append(st.tokens, "colocc>="+ftoa(c))
	const msg = "Column occupancy refinement reduced number of columns from %d to %d in %%.2fs."
	st.rep.Report(fmt.Sprintf(msg, before, len(st.cols)), refineKey)
}

// run does the stages after the label, which the caller has already
// handled.
func (st *refineState) run(o *RefineOpts) {
	if o.RowOcc != nil {
		st.byRowOcc(*o.RowOcc)
	}
	if o.SeqID != nil {
		st.bySeqID(*o.SeqID)
	}
	if o.ColOcc != nil {
		st.byColOcc(*o.ColOcc)
	}
}

func newRefineState(mat Matrix, o *RefineOpts) *refineState {
	rep := o.Reporter
	if rep == nil {
		rep = NopReporter{}
	}
	rows := make([]int, len(mat.Mat))
	for i := range rows {
		rows[i] = i
	}
	return &refineState{mat: mat, rows: rows, anchor: -1, rep: rep}
}

// RefineMatrix refines a bare character matrix. There are no labels, so
// asking for a reference label is an error.
func RefineMatrix(a Matrix, o *RefineOpts) (Matrix, error) {
	if o == nil {
		o = &RefineOpts{}
	}
	if err := o.check(); err != nil {
		return Matrix{}, err
	}
	if o.Label != "" {
		return Matrix{}, fmt.Errorf("%w: label refinement needs an MSA, not a matrix", ErrType)
	}
	if !a.rectangular() {
		return Matrix{}, fmt.Errorf("%w: matrix rows have different lengths", ErrType)
	}
	st := newRefineState(a, o)
	st.run(o)
	return st.current(), nil
}

// Refine removes rows and columns from an alignment. The result has its
// own storage. Its title is the old one with the refinements listed,
// like "Unknown refined (label=FOO_HUMAN, rowocc>=0.8)".
// If no rows were removed by a stage, the labels and their mapping are
// carried over as they were.
func Refine(m *MSA, o *RefineOpts) (*MSA, error) {
	if o == nil {
		o = &RefineOpts{}
	}
	if err := o.check(); err != nil {
		return nil, err
	}
	if m == nil || !m.aligned {
		return nil, fmt.Errorf("%w: refinement needs an aligned MSA", ErrType)
	}
	st := newRefineState(m.mat, o)
	if o.Label != "" {
		i, err := m.anchorRow(o.Label, o.Resolver, st.rep)
		if err != nil {
			return nil, err
		}
		st.anchor = i
		st.byLabel(o.Label)
	}
	st.run(o)

	title := m.title + " refined (" + strings.Join(st.tokens, ", ") + ")"
	d := m.derive(st.current(), m.subLabels(st.rows), title)
	if !st.rowsDone && m.ndx != nil {
		d.ndx = copyIndex(m.ndx)
	}
	return d, nil
}

// anchorRow finds the one row a label refers to. We try the label, then
// upper and lower case versions. Failing that, something like "1p38" or
// "1p38A" may be a structure, whose header says which database entries
// go with each chain.
func (m *MSA) anchorRow(label string, resolver HeaderResolver, rep Reporter) (int, error) {
	var rows []int
	var ok bool
	for _, l := range []string{label, strings.ToUpper(label), strings.ToLower(label)} {
		if rows, ok = m.ndx.rows(l); ok {
			break
		}
	}
	if !ok && resolver != nil && (len(label) == 4 || len(label) == 5) {
		rows, ok = m.fromHeader(label, resolver, rep)
	}
	if !ok {
		return -1, fmt.Errorf("%w: %q is not in %s, or it is not indexed", ErrNotFound, label, m)
	}
	if len(rows) > 1 {
		const msg = "%w: %q maps onto %d sequences, so cannot be used for refinement"
		return -1, fmt.Errorf(msg, ErrAmbiguous, label, len(rows))
	}
	return rows[0], nil
}

// fromHeader looks up the database references for a structure.
// A failure to read the header is only a warning.
func (m *MSA) fromHeader(label string, resolver HeaderResolver, rep Reporter) ([]int, bool) {
	pdbID, chid := label[:4], strings.ToUpper(label[4:])
	polymers, err := resolver.Polymers(pdbID)
	if err != nil {
		rep.Warn(fmt.Sprintf("failed to parse header for %s (%v)", pdbID, err))
		return nil, false
	}
	for _, poly := range polymers {
		if chid != "" && poly.ChainID != chid {
			continue
		}
		for _, ref := range poly.DBRefs {
			for _, code := range []string{ref.IDCode, ref.Accession} {
				if code == "" {
					continue
				}
				if rows, ok := m.ndx.rows(code); ok {
					const msg = "%s code %s for %s%s is found in %s"
					rep.Info(fmt.Sprintf(msg, ref.Database, code, pdbID, poly.ChainID, m))
					return rows, true
				}
			}
		}
	}
	return nil, false
}
