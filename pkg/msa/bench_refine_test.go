// go test -bench Refine
package msa_test

import (
	"fmt"
	"testing"

	. "github.com/andrew-torda/msatool/pkg/msa"
	"github.com/andrew-torda/msatool/pkg/randseq"
)

func randMSA(tb testing.TB, nseq, ncol int, iseed int64) *MSA {
	tb.Helper()
	labels := make([]string, nseq)
	for i := range labels {
		labels[i] = fmt.Sprintf("s%d/1-%d", i, ncol)
	}
	m, err := NewFromStrings(randseq.Alignment(nseq, ncol, iseed, false), labels, nil)
	if err != nil {
		tb.Fatal(err)
	}
	return m
}

// TestRandom checks what must hold on any alignment.
func TestRandom(t *testing.T) {
	for iseed := int64(1); iseed < 6; iseed++ {
		m := randMSA(t, 40, 60, iseed)
		opts := &RefineOpts{Label: "s3", RowOcc: Float(0.97), SeqID: Float(0.2), ColOcc: Float(0.95)}
		r, err := Refine(m, opts)
		if err != nil {
			t.Fatal(err)
		}
		if r.CountLabel("s3") != 1 {
			t.Fatal("reference lost with seed", iseed)
		}
		_, ncol := r.Array().Size()
		if r.NumSeqs() > m.NumSeqs() || ncol > m.NumResidues() {
			t.Fatal("refinement cannot add anything")
		}
		for _, occ := range ColOccupancy(r.Array()) {
			if occ < 0.95 {
				t.Fatal("column occupancy", occ, "left in")
			}
		}
		again, err := Refine(r, &RefineOpts{ColOcc: opts.ColOcc})
		if err != nil {
			t.Fatal(err)
		}
		if !again.Array().Equal(r.Array()) {
			t.Fatal("column refinement should change nothing the second time")
		}
	}
}

func BenchmarkRefine(b *testing.B) {
	m := randMSA(b, 500, 400, 1637)
	opts := &RefineOpts{Label: "s0", RowOcc: Float(0.9), SeqID: Float(0.9), ColOcc: Float(0.9)}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Refine(m, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSeqIDMatrix(b *testing.B) {
	a := randMSA(b, 300, 400, 1637).Array()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SeqIDMatrix(a)
	}
}
