package cmmn_test

import (
	"testing"

	. "github.com/andrew-torda/msatool/pdb/cmmn"
)

func TestAddRef(t *testing.T) {
	var polys PolySl
	polys = polys.AddRef("A", DBRef{Database: "UNP", IDCode: "MK14_HUMAN"})
	polys = polys.AddRef("B", DBRef{Database: "UNP", IDCode: "MK14_HUMAN"})
	polys = polys.AddRef("A", DBRef{Database: "GB", Accession: "12345"})
	if len(polys) != 2 {
		t.Fatal("wanted 2 chains, got", len(polys))
	}
	if names := polys.ChainNames(); names[0] != "A" || names[1] != "B" {
		t.Fatal("chain order broken, got", names)
	}
	a, ok := polys.Chain("a")
	if !ok {
		t.Fatal("did not find chain a")
	}
	if len(a.DBRefs) != 2 || a.DBRefs[1].Accession != "12345" {
		t.Fatal("refs for chain A wrong", a.DBRefs)
	}
	if _, ok := polys.Chain("Z"); ok {
		t.Fatal("found a chain that is not there")
	}
}
