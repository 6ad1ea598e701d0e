package msa

import (
	"strconv"
	"strings"
)

// SplitLabel breaks a label like "FOO_HUMAN/12-340" into the part used
// for indexing, "FOO_HUMAN", and the residue numbers 12 and 340.
// If there is no suffix, or it is not two integers joined by a "-",
// the whole label is returned with ok false.
func SplitLabel(label string) (core string, start, end int, ok bool) {
	i := strings.LastIndexByte(label, '/')
	if i == -1 {
		return label, 0, 0, false
	}
	a, b, found := strings.Cut(label[i+1:], "-")
	if !found {
		return label, 0, 0, false
	}
	var err error
	if start, err = strconv.Atoi(a); err != nil {
		return label, 0, 0, false
	}
	if end, err = strconv.Atoi(b); err != nil {
		return label, 0, 0, false
	}
	return label[:i], start, end, true
}

// coreLabel is SplitLabel without the numbers.
func coreLabel(label string) string {
	core, _, _, _ := SplitLabel(label)
	return core
}

// labelIndex maps a core label to the rows carrying it. Most labels
// have one row. Rows are kept in ascending order.
type labelIndex map[string][]int

// buildIndex makes the index for a set of labels. It is only called
// when a container is built, so the index always matches its labels.
func buildIndex(labels []string) labelIndex {
	ndx := make(labelIndex, len(labels))
	for i, l := range labels {
		core := coreLabel(l)
		ndx[core] = append(ndx[core], i)
	}
	return ndx
}

// copyIndex makes a private copy of a caller's mapping.
func copyIndex(mapping map[string][]int) labelIndex {
	ndx := make(labelIndex, len(mapping))
	for k, v := range mapping {
		ndx[k] = append([]int(nil), v...)
	}
	return ndx
}

// rows returns the rows for a label. The slice belongs to the index.
func (ndx labelIndex) rows(label string) ([]int, bool) {
	r, ok := ndx[label]
	if !ok || len(r) == 0 {
		return nil, false
	}
	return r, true
}

// nIndexed counts each row that can be reached through the index once.
func (ndx labelIndex) nIndexed() int {
	n := 0
	for _, r := range ndx {
		n += len(r)
	}
	return n
}
