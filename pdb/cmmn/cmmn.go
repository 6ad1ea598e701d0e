// Package pdb/cmmn has common definitions for structures and
// pdb files
package cmmn

import "strings"

// A DBRef is a cross reference from a chain to a sequence database.
// For UniProt, IDCode is the entry name, like "MK14_HUMAN" and
// Accession is like "Q16539". Either can be empty.
type DBRef struct {
	Database  string
	IDCode    string
	Accession string
}

// A Polymer is one chain of a structure and its database references.
type Polymer struct {
	ChainID string // Name, like "A" or "B"
	DBRefs  []DBRef
}

// This is obviously just a slice of polymers, but we have to define a type
// if we want to define a method on it
type PolySl []Polymer

// ChainNames returns a slice with the names of the chains.
func (polys PolySl) ChainNames() (ret []string) {
	ret = make([]string, len(polys))
	for i, k := range polys {
		ret[i] = k.ChainID
	}
	return
}

// Chain returns the polymer with a given chain name. The name is not
// case sensitive.
func (polys PolySl) Chain(chid string) (Polymer, bool) {
	for _, p := range polys {
		if strings.EqualFold(p.ChainID, chid) {
			return p, true
		}
	}
	return Polymer{}, false
}

// AddRef adds a reference to the polymer called chid, creating the
// polymer if it is new. Chains stay in the order they were first seen.
func (polys PolySl) AddRef(chid string, ref DBRef) PolySl {
	for i := range polys {
		if polys[i].ChainID == chid {
			polys[i].DBRefs = append(polys[i].DBRefs, ref)
			return polys
		}
	}
	return append(polys, Polymer{ChainID: chid, DBRefs: []DBRef{ref}})
}
