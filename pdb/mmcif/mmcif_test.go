package mmcif_test

import (
	"bytes"
	"compress/gzip"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andrew-torda/msatool/brokenio"
	. "github.com/andrew-torda/msatool/pdb/mmcif"
	"github.com/andrew-torda/msatool/pdb/zwrap"
)

func TestMessyLine(t *testing.T) {
	// This is from 2a9w.cif. I think there should be seven pieces
	ss :=
		`GA9 non-polymer         . '3,3-BIS(3-BR-4-HYD)-7-CH-1H,3H-BEO[DE]ISO-1-ONE'
'4-CHL-3',3"-DIB-1,8-NAPHTH' 'C24 H13 Br2 Cl O4' 560.619
GLN 'L-peptide linking' y GLUTAMINE                                                                   ? 'C5 H10 N2 O3'
146.144
`
	answers := []int{4, 3, 6, 1}
	scnr := NewCmmtScanner(bytes.NewReader([]byte(ss)), '#')
	retIn := make([][]byte, 0, 40)
	ndx := 0
	for scnr.Cscan() && scnr.Cbytes() != nil {
		tt, err := SplitCifLine(scnr.Cbytes(), retIn)
		if err != nil {
			t.Error("Splitting messy string", err)
		}
		if len(tt) != answers[ndx] {
			t.Error("wrong number of entries, got", len(tt))
		}
		ndx++
	}
	if ndx != len(answers) {
		t.Fatal("expected", len(answers), "lines, got", ndx)
	}
}

func TestSplitQuote(t *testing.T) {
	got, err := SplitCifLine([]byte(`_struct.title 'Don't panic, it is a kinase'`), nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"_struct.title", "Don't panic, it is a kinase"}
	if len(got) != len(want) {
		t.Fatal("got", len(got), "pieces")
	}
	for i := range want {
		if string(got[i]) != want[i] {
			t.Errorf("piece %d got %q want %q", i, got[i], want[i])
		}
	}
	if _, err := SplitCifLine([]byte(`a 'unterminated`), nil); err == nil {
		t.Error("unterminated quote should be an error")
	}
	if HasQuote([]byte("no quotes here")) {
		t.Error("hasQuote false positive")
	}
}

func TestCommentsAndBlanks(t *testing.T) {
	ss := "# comment\n\n   \nfirst\n#\nsecond # not a comment\n"
	scnr := NewCmmtScanner(strings.NewReader(ss), '#')
	var got []string
	for scnr.Cscan() && scnr.Cbytes() != nil {
		got = append(got, string(scnr.Cbytes()))
	}
	want := []string{"first", "second # not a comment"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error("lines (-want +got):\n", diff)
	}
}

// A cut down header with the categories we read and some we do not.
const hdr1p38 = `data_1P38
#
_entry.id   1P38
#
_struct.entry_id   1P38
_struct.title
;THE STRUCTURE OF PHOSPHORYLATED P38GAMMA
IS MONOMERIC
;
#
loop_
_audit_author.name
_audit_author.pdbx_ordinal
'Bellon, S.' 1
'Fitzgibbon, M.J.' 2
#
_struct_ref.id                         1
_struct_ref.db_name                    UNP
_struct_ref.db_code                    MK14_MOUSE
_struct_ref.pdbx_db_accession          P47811
_struct_ref.entity_id                  1
#
_struct_ref_seq.align_id                      1
_struct_ref_seq.ref_id                        1
_struct_ref_seq.pdbx_PDB_id_code              1P38
_struct_ref_seq.pdbx_strand_id                A
_struct_ref_seq.db_align_beg                  1
#
loop_
_atom_site.group_PDB
_atom_site.id
_atom_site.label_atom_id
ATOM 1 N
ATOM 2 CA
_not_a_header_inside.text
;
_looks_like_an_item but is text
;
#
`

func TestHeader(t *testing.T) {
	mr := NewMmcifReader(strings.NewReader(hdr1p38))
	mr.AddItems([]string{"_entry.id", "_struct.title"})
	mr.AddTable([]string{"_struct_ref.", "_struct_ref_seq", "_audit_author"})
	md, err := mr.DoFile()
	if err != nil {
		t.Fatal(err)
	}
	if md.Data["_entry.id"] != "1P38" {
		t.Error("entry id, got", md.Data["_entry.id"])
	}
	if s := md.Data["_struct.title"]; !strings.HasPrefix(s, "THE STRUCTURE") || !strings.HasSuffix(s, "MONOMERIC") {
		t.Errorf("title from text field, got %q", s)
	}
	ref := md.Tables["_struct_ref"]
	if len(ref.Vals) != 1 {
		t.Fatal("struct_ref should have one row, got", len(ref.Vals))
	}
	if got := ref.Column("pdbx_db_accession"); len(got) != 1 || got[0] != "P47811" {
		t.Error("accession, got", got)
	}
	if got := ref.Rows()[0]["db_code"]; got != "MK14_MOUSE" {
		t.Error("db_code, got", got)
	}
	refseq := md.Tables["_struct_ref_seq"]
	if got := refseq.Column("pdbx_strand_id"); len(got) != 1 || got[0] != "A" {
		t.Error("strand, got", got)
	}
	authors := md.Tables["_audit_author"]
	if diff := cmp.Diff([]string{"Bellon, S.", "Fitzgibbon, M.J."}, authors.Column("name")); diff != "" {
		t.Error("authors (-want +got):\n", diff)
	}
	if _, ok := md.Tables["_atom_site"]; ok {
		t.Error("atom_site was not asked for")
	}
	if refseq.Column("nonsense") != nil {
		t.Error("missing column should be nil")
	}
}

const loopRef = `data_XXXX
loop_
_struct_ref_seq.ref_id
_struct_ref_seq.pdbx_strand_id
1 A
1
B
2 'C'
#
`

func TestLoopAcrossLines(t *testing.T) {
	mr := NewMmcifReader(strings.NewReader(loopRef))
	mr.AddTable([]string{"_struct_ref_seq"})
	md, err := mr.DoFile()
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"1", "A"}, {"1", "B"}, {"2", "C"}}
	if diff := cmp.Diff(want, md.Tables["_struct_ref_seq"].Vals); diff != "" {
		t.Error("rows (-want +got):\n", diff)
	}
}

func TestBroken(t *testing.T) {
	var broken = []string{
		"",
		"# only a comment\n",
		"data_x\nloop_\n_a.b\n_a.c\n1 2 3\n",
		"data_x\n_a.b\n",
		"data_x\n_a.b 1 2\n",
		"data_x\nrubbish\n",
		"data_x\n_a.b\n;text without an end\n",
	}
	for i, s := range broken {
		mr := NewMmcifReader(strings.NewReader(s))
		mr.AddTable([]string{"_a"})
		if _, err := mr.DoFile(); err == nil {
			t.Error("case", i, "should have failed")
		}
	}
	for _, n := range []int{0, 10, 300} {
		rdr := brokenio.NewReader(strings.NewReader(hdr1p38)).FailAfter(n)
		mr := NewMmcifReader(rdr)
		mr.AddTable([]string{"_struct_ref"})
		if _, err := mr.DoFile(); err == nil {
			t.Error("read should fail after", n, "bytes")
		}
	}
	var mr *MmcifReader
	if _, err := mr.DoFile(); err == nil {
		t.Error("nil reader should fail")
	}
	if NewMmcifReader(nil) != nil {
		t.Error("nil io.Reader should give nil")
	}
}

func TestCompressed(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(hdr1p38)); err != nil {
		t.Fatal(err)
	}
	zw.Close()
	fp, err := zwrap.WrapMaybe(nopCloser{bytes.NewReader(buf.Bytes())})
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	mr := NewMmcifReader(fp)
	mr.AddItems([]string{"_entry.id"})
	md, err := mr.DoFile()
	if err != nil {
		t.Fatal(err)
	}
	if md.Data["_entry.id"] != "1P38" {
		t.Error("compressed read, got", md.Data)
	}
}

func TestMissing(t *testing.T) {
	for _, s := range []string{"?", ".", ""} {
		if !Missing(s) {
			t.Errorf("%q should be missing", s)
		}
	}
	if Missing("A") {
		t.Error("A is not missing")
	}
}

type nopCloser struct{ *bytes.Reader }

func (nopCloser) Close() error { return nil }
