package msa

import (
	"fmt"
	"strings"
)

// Merge joins alignments of the same proteins side by side. Rows are
// matched by label. Only labels that occur exactly once in every
// alignment are used. The rows come in the order of the first
// alignment and the columns of each input follow one another.
//
// If no label is shared by all the inputs, Merge returns nil and no
// error. Unlike every other failure in this package, the caller has to
// check for a nil result.
func Merge(msas ...*MSA) (*MSA, error) {
	if len(msas) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFew, len(msas))
	}
	for i, m := range msas {
		if m == nil {
			return nil, fmt.Errorf("%w: alignment %d is nil", ErrType, i)
		}
		if !m.aligned {
			return nil, fmt.Errorf("%w: alignment %d (%s) is not aligned", ErrType, i, m.title)
		}
	}

	common := eligible(msas[0])
	for _, m := range msas[1:] {
		other := eligible(m)
		for l := range common {
			if !other[l] {
				delete(common, l)
			}
		}
	}
	if len(common) == 0 {
		return nil, nil
	}

	var labels []string // in the order of the first alignment
	for l := range msas[0].IterLabels(false) {
		if common[l] {
			labels = append(labels, l)
			delete(common, l) // A mapping given by the caller may repeat a label
		}
	}

	width, titles := 0, make([]string, len(msas))
	for i, m := range msas {
		width += m.NumResidues()
		titles[i] = m.title
	}
	mat := NewMatrix(len(labels), width)
	mapping := make(labelIndex, len(labels))
	for i, l := range labels {
		start := 0
		for _, m := range msas {
			r, _ := m.ndx.rows(l)
			start += copy(mat.Mat[i][start:], m.mat.Mat[r[0]])
		}
		mapping[l] = []int{i}
	}
	return &MSA{
		mat:     mat,
		labels:  labels,
		ndx:     mapping,
		title:   strings.Join(titles, " + "),
		aligned: true,
		split:   true,
	}, nil
}

// eligible is the set of labels which map onto one row.
func eligible(m *MSA) map[string]bool {
	set := make(map[string]bool)
	for l := range m.IterLabels(false) {
		if m.CountLabel(l) == 1 {
			set[l] = true
		}
	}
	return set
}
