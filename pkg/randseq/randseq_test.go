// 31 July 2020

package randseq_test

import (
	"strings"
	"testing"

	"github.com/andrew-torda/msatool/pkg/randseq"
	"github.com/andrew-torda/msatool/pkg/seq"
)

func TestSimple(t *testing.T) {
	var sb strings.Builder
	args := randseq.RandSeqArgs{
		Wrtr: &sb,
		Cmmt: "testing seq",
		Nseq: 500,
		Len:  160,
	}
	if err := randseq.RandSeqMain(&args); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(sb.String(), ">"); n != args.Nseq {
		t.Fatal("count >, got ", n, "expected", args.Nseq)
	}
	al, err := seq.ReadFasta(strings.NewReader(sb.String()), nil)
	if err != nil {
		t.Fatal(err)
	}
	if al.NSeq() != args.Nseq || len(al.Rows[0]) != args.Len {
		t.Fatal("read back", al.NSeq(), "sequences of length", len(al.Rows[0]))
	}
	if al.Labels[0] != "s001" || al.Descs[0] != "testing seq" {
		t.Fatalf("label %q desc %q", al.Labels[0], al.Descs[0])
	}
}

func TestMkErr(t *testing.T) {
	var sb strings.Builder
	args := randseq.RandSeqArgs{Wrtr: &sb, Nseq: 3, Len: 20, MkErr: true}
	if err := randseq.RandSeqMain(&args); err != nil {
		t.Fatal(err)
	}
	if _, err := seq.ReadFasta(strings.NewReader(sb.String()), nil); err == nil {
		t.Fatal("sequences of different lengths should not read")
	}
}

func TestAlignment(t *testing.T) {
	a := randseq.Alignment(4, 30, 1637, true)
	b := randseq.Alignment(4, 30, 1637, true)
	for i := range a {
		if len(a[i]) != 30 || a[i] != b[i] {
			t.Fatal("same seed should give the same rows", a[i], b[i])
		}
		if strings.ContainsRune(a[i], '-') {
			t.Fatal("gap in", a[i])
		}
	}
}
