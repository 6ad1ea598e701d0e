// Simple calculations over a whole alignment. These used to live with
// the entropy code.

package msa

import (
	"github.com/andrew-torda/matrix"
	"github.com/willf/bitset"

	"github.com/andrew-torda/msatool/pkg/seq/common"
)

// RowOccupancy returns, for each row, the fraction of positions which
// are residues rather than gaps. A row with no columns has occupancy 0.
func RowOccupancy(m Matrix) []float64 {
	occ := make([]float64, len(m.Mat))
	for i, r := range m.Mat {
		if len(r) == 0 {
			continue
		}
		n := 0
		for _, c := range r {
			if common.IsResidue(c) {
				n++
			}
		}
		occ[i] = float64(n) / float64(len(r))
	}
	return occ
}

// ColOccupancy returns, for each column, the fraction of rows with a
// residue there. The matrix must be rectangular. With no rows, every
// column has occupancy 0.
func ColOccupancy(m Matrix) []float64 {
	nrow, ncol := m.Size()
	occ := make([]float64, ncol)
	if nrow == 0 {
		return occ
	}
	counts := make([]int, ncol)
	for _, r := range m.Mat {
		for j, c := range r {
			if common.IsResidue(c) {
				counts[j]++
			}
		}
	}
	for j, n := range counts {
		occ[j] = float64(n) / float64(nrow)
	}
	return occ
}

// Identity is the fraction of identical residues between two aligned
// sequences. Positions count if both have the same letter, ignoring
// case. We divide by the number of residues in the longer of the two
// (gaps removed). Two sequences with no residues at all are identical.
// If one is longer, its extra positions count as residues of that
// sequence but can never match.
func Identity(a, b []byte) float64 {
	const diff = 'a' - 'A'
	upper := func(c byte) byte {
		if 'a' <= c && c <= 'z' {
			return c - diff
		}
		return c
	}
	n := min(len(a), len(b))
	var na, nb, same int
	for _, c := range a[n:] {
		if common.IsResidue(c) {
			na++
		}
	}
	for _, c := range b[n:] {
		if common.IsResidue(c) {
			nb++
		}
	}
	for i := range n {
		ca, cb := a[i], b[i]
		ra, rb := common.IsResidue(ca), common.IsResidue(cb)
		if ra {
			na++
		}
		if rb {
			nb++
		}
		if ra && rb && upper(ca) == upper(cb) {
			same++
		}
	}
	longer := max(na, nb)
	if longer == 0 {
		return 1
	}
	return float64(same) / float64(longer)
}

// Unique picks a set of representative rows. Going through the rows in
// order, a row is kept if its identity to every row kept so far is below
// seqid. The first row is always kept, so when two rows are too similar,
// the earlier one wins.
func Unique(m Matrix, seqid float64) *bitset.BitSet {
	nrow := uint(len(m.Mat))
	keep := bitset.New(nrow)
	kept := make([]int, 0, nrow)
	for i, r := range m.Mat {
		uniq := true
		for _, k := range kept {
			if Identity(m.Mat[k], r) >= seqid {
				uniq = false
				break
			}
		}
		if uniq {
			keep.Set(uint(i))
			kept = append(kept, i)
		}
	}
	return keep
}

// SeqIDMatrix calculates the identity between every pair of rows.
// It is symmetric with ones on the diagonal.
func SeqIDMatrix(m Matrix) *matrix.FMatrix2d {
	nrow := len(m.Mat)
	ids := matrix.NewFMatrix2d(nrow, nrow)
	for i := 0; i < nrow; i++ {
		ids.Mat[i][i] = 1
		for j := i + 1; j < nrow; j++ {
			x := float32(Identity(m.Mat[i], m.Mat[j]))
			ids.Mat[i][j], ids.Mat[j][i] = x, x
		}
	}
	return ids
}
