// This is the upper level for reading PDB files.
// Decide if a file is compressed or not, and what format
// we are going to read. Then call the corresponding pdb or mmcif
// format reader.
// We only want the header, which says which sequence database entries
// go with each chain.

package pdb

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andrew-torda/msatool/pdb/cmmn"
	"github.com/andrew-torda/msatool/pdb/mmcif"
	"github.com/andrew-torda/msatool/pdb/zwrap"
)

const (
	old_fmt byte = iota
	mmcif_fmt
	unk_fmt
)

// comparefirst says if two words are the same, looking at the
// the length of the shorter
func comparefirst(s, t string) bool {
	l := min(len(s), len(t))
	return s[:l] == t[:l]
}

// guessFormat looks at the start of some text and guesses if it is
// in old PDB format or in mmcif.
func guessFormat(rdr io.Reader) byte {
	pdbWords := []string{"HEADER", "COMPND", "SOURCE", "REMARK", "DBREF", "SEQRES", "HETATM", "ATOM"}
	mmcifWords := []string{"data_", "_entry.id", "loop_"}
	const maxTestLines = 5000
	scnnr := bufio.NewScanner(rdr)
	for i := 0; scnnr.Scan() && i < maxTestLines; i++ {
		s := scnnr.Text()
		if s == "" {
			continue
		}
		for _, w := range mmcifWords {
			if comparefirst(s, w) {
				return mmcif_fmt
			}
		}
		for _, w := range pdbWords {
			if comparefirst(s, w) {
				return old_fmt
			}
		}
	}
	return unk_fmt
}

// oldOrMmcif decides what format we will use.
// Maybe it uses the file name or maybe it peeks inside.
// We cannot use the function from filepath to get the file type,
// since it will return .gz if we feed it a.pdb.gz.
func oldOrMmcif(fname string) (byte, error) {
	s := filepath.Base(fname)
	if i := strings.IndexByte(s, '.'); i != -1 {
		s = strings.ToLower(s[i+1:]) // change .ent to ent
		if strings.Contains(s, "pdb") || strings.Contains(s, "ent") {
			return old_fmt, nil
		} else if strings.Contains(s, "cif") {
			return mmcif_fmt, nil
		}
	}
	rdr, err := zwrap.Open(fname)
	if err != nil {
		return unk_fmt, err
	}
	defer rdr.Close()
	if t := guessFormat(rdr); t != unk_fmt {
		return t, nil
	}
	return unk_fmt, errors.New(fname + ": cannot recognise format")
}

// ReadHeader reads the sequence database references from a structure
// file in old PDB or mmcif format, compressed or not.
func ReadHeader(fname string) (cmmn.PolySl, error) {
	typ, err := oldOrMmcif(fname)
	if err != nil {
		return nil, err
	}
	rdr, err := zwrap.Open(fname)
	if err != nil {
		return nil, err
	}
	defer rdr.Close()
	var polys cmmn.PolySl
	if typ == old_fmt {
		polys, err = readOldHeader(rdr)
	} else {
		polys, err = readMmcifHeader(rdr)
	}
	if err != nil {
		return nil, errors.New(fname + ": " + err.Error())
	}
	return polys, nil
}

// readMmcifHeader joins _struct_ref_seq, which has the chains, to
// _struct_ref, which has the database codes.
func readMmcifHeader(rdr io.Reader) (cmmn.PolySl, error) {
	const (
		ref    = "_struct_ref"
		refSeq = "_struct_ref_seq"
	)
	mr := mmcif.NewMmcifReader(rdr)
	mr.AddTable([]string{ref, refSeq})
	md, err := mr.DoFile()
	if err != nil {
		return nil, err
	}
	refs := make(map[string]cmmn.DBRef)
	for _, row := range md.Tables[ref].Rows() {
		refs[row["id"]] = cmmn.DBRef{
			Database:  cleanVal(row["db_name"]),
			IDCode:    cleanVal(row["db_code"]),
			Accession: cleanVal(row["pdbx_db_accession"]),
		}
	}
	var polys cmmn.PolySl
	for _, row := range md.Tables[refSeq].Rows() {
		r, ok := refs[row["ref_id"]]
		chid := cleanVal(row["pdbx_strand_id"])
		if !ok || chid == "" {
			continue
		}
		polys = polys.AddRef(chid, r)
	}
	return polys, nil
}

// cleanVal turns the mmcif markers for missing values into empty strings.
func cleanVal(s string) string {
	if mmcif.Missing(s) {
		return ""
	}
	return s
}

// column returns the columns from..to (counting from 1, as in the
// format description), trimmed and clipped to the line.
func column(s string, from, to int) string {
	if from > len(s) {
		return ""
	}
	return strings.TrimSpace(s[from-1 : min(to, len(s))])
}

// readOldHeader gets DBREF records. Long codes are split over DBREF1
// and DBREF2 lines. The coordinates do not interest us, so we stop
// at the first ATOM record.
func readOldHeader(rdr io.Reader) (cmmn.PolySl, error) {
	var polys cmmn.PolySl
	var pending map[string]cmmn.DBRef // DBREF1 waiting for its DBREF2
	scnnr := bufio.NewScanner(rdr)
	for scnnr.Scan() {
		s := scnnr.Text()
		switch {
		case strings.HasPrefix(s, "ATOM  "), strings.HasPrefix(s, "HETATM"):
			return polys, nil
		case strings.HasPrefix(s, "DBREF1"):
			if pending == nil {
				pending = make(map[string]cmmn.DBRef)
			}
			pending[column(s, 13, 13)] = cmmn.DBRef{
				Database: column(s, 27, 32),
				IDCode:   column(s, 48, 67),
			}
		case strings.HasPrefix(s, "DBREF2"):
			chid := column(s, 13, 13)
			r, ok := pending[chid]
			if !ok {
				return nil, errors.New("DBREF2 without DBREF1 for chain " + chid)
			}
			delete(pending, chid)
			r.Accession = column(s, 19, 40)
			polys = polys.AddRef(chid, r)
		case strings.HasPrefix(s, "DBREF "):
			polys = polys.AddRef(column(s, 13, 13), cmmn.DBRef{
				Database:  column(s, 27, 32),
				Accession: column(s, 34, 41),
				IDCode:    column(s, 43, 54),
			})
		}
	}
	if err := scnnr.Err(); err != nil {
		return nil, err
	}
	return polys, nil
}

// Resolver finds structure files in a local directory. It satisfies
// msa.HeaderResolver.
type Resolver struct {
	Dir string
}

// candidates are the names a structure may be stored under.
func candidates(id string) []string {
	id = strings.ToLower(id)
	return []string{
		id + ".cif", id + ".cif.gz",
		id + ".pdb", id + ".pdb.gz",
		"pdb" + id + ".ent", "pdb" + id + ".ent.gz",
	}
}

// Polymers reads the header of the first file found for the four
// character code pdbID.
func (r Resolver) Polymers(pdbID string) ([]cmmn.Polymer, error) {
	if len(pdbID) != 4 {
		return nil, errors.New("pdb code should be four characters, not " + pdbID)
	}
	for _, c := range candidates(pdbID) {
		fname := filepath.Join(r.Dir, c)
		if _, err := os.Stat(fname); err != nil {
			continue
		}
		return ReadHeader(fname)
	}
	return nil, errors.New("no structure file for " + pdbID + " in " + r.Dir)
}
