package msa_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/andrew-torda/msatool/pkg/msa"
)

func TestScenarioB(t *testing.T) {
	m1, _ := NewFromStrings([]string{"ACDE", "FGHI"}, []string{"A", "B"}, &Options{Title: "one"})
	m2, _ := NewFromStrings([]string{"KLM", "NPQ"}, []string{"B/4-6", "C"}, &Options{Title: "two"})
	m, err := Merge(m1, m2)
	if err != nil {
		t.Fatal(err)
	}
	if m.NumSeqs() != 1 || m.NumResidues() != 7 {
		t.Fatal("merged size", m)
	}
	r, err := m.Lookup("B")
	if err != nil {
		t.Fatal(err)
	}
	if r.Seq.Str() != "FGHIKLM" {
		t.Fatal("merged row", r.Seq.Str())
	}
	if m.Title() != "one + two" || m.Label(0, true) != "B" {
		t.Fatal("merged title, label", m.Title(), m.Label(0, true))
	}
}

func TestMergeSelf(t *testing.T) {
	m := tstMSA(t)
	mm, err := Merge(m, m)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"ACDEFACDEF", "A---FA---F", "-CDE--CDE-"}
	if diff := cmp.Diff(want, rows(mm)); diff != "" {
		t.Fatal("(-want +got):\n", diff)
	}
	if diff := cmp.Diff([]string{"A", "C", "D/x-y"}, labelsOf(mm)); diff != "" {
		t.Fatal("(-want +got):\n", diff)
	}
	if mm.Contains("B") {
		t.Fatal("B is on two rows and should be left out")
	}
	if mm.NumIndexed() != 3 || mm.NumResidues() != 2*m.NumResidues() {
		t.Fatal("merged index or width wrong")
	}
	if mm.Title() != "t + t" {
		t.Fatal("title", mm.Title())
	}
}

func TestMergeOrder(t *testing.T) {
	m1, _ := NewFromStrings([]string{"AA", "CC", "DD"}, []string{"x", "y", "z"}, nil)
	m2, _ := NewFromStrings([]string{"z", "y", "x"}, []string{"z", "y", "x"}, nil)
	m3, _ := NewFromStrings([]string{"1y", "2x", "3y"}, []string{"y", "x", "y"}, nil)
	m, err := Merge(m1, m2, m3)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"AAx2x"}, rows(m)); diff != "" {
		t.Fatal("(-want +got):\n", diff)
	}
}

func TestMergeEmpty(t *testing.T) {
	m1, _ := NewFromStrings([]string{"AA"}, []string{"x"}, nil)
	m2, _ := NewFromStrings([]string{"AA"}, []string{"y"}, nil)
	m, err := Merge(m1, m2)
	if m != nil || err != nil {
		t.Fatal("nothing in common should give nil, nil", m, err)
	}
	nolabels, _ := NewFromStrings([]string{"AA"}, nil, nil)
	if m, err = Merge(m1, nolabels); m != nil || err != nil {
		t.Fatal("unlabelled alignment should give nil, nil", m, err)
	}
}

func TestMergeErrors(t *testing.T) {
	m1, _ := NewFromStrings([]string{"AA"}, []string{"x"}, nil)
	unaligned, _ := NewFromStrings([]string{"AA", "A"}, []string{"x", "y"}, &Options{NotAligned: true})
	var tests = []struct {
		name string
		in   []*MSA
		want error
	}{
		{"none", nil, ErrTooFew},
		{"one", []*MSA{m1}, ErrTooFew},
		{"nil", []*MSA{m1, nil}, ErrType},
		{"unaligned", []*MSA{m1, unaligned}, ErrType},
	}
	for _, tt := range tests {
		if _, err := Merge(tt.in...); !errors.Is(err, tt.want) {
			t.Fatal(tt.name, "wanted", tt.want, "got", err)
		}
	}
}
