// Package mmcif reads an mmcif formatted file. It is a subpackage of pdb.
// The first thing to do is build an MmcifReader and then call it.
package mmcif

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
)

// A Table is a loop from the file. Names are the column headings without
// the category, so "_struct_ref.db_name" is stored as "db_name".
type Table struct {
	Names []string   // table headings
	Vals  [][]string // each entry is one row
}

// Column returns the values in the column called name, or nil.
func (t Table) Column(name string) []string {
	for i, n := range t.Names {
		if n == name {
			ret := make([]string, len(t.Vals))
			for j, row := range t.Vals {
				ret[j] = row[i]
			}
			return ret
		}
	}
	return nil
}

// Rows returns each row as a map from column name to value. This costs
// memory, but the tables we keep are small.
func (t Table) Rows() []map[string]string {
	ret := make([]map[string]string, len(t.Vals))
	for j, row := range t.Vals {
		m := make(map[string]string, len(t.Names))
		for i, n := range t.Names {
			m[n] = row[i]
		}
		ret[j] = m
	}
	return ret
}

// MmcifData is what comes back from reading a file.
type MmcifData struct {
	Data   map[string]string // Data items to keep
	Tables map[string]Table  // Tables we keep, by category like "_struct_ref"
}

// MmcifReader holds the instructions to the reader, what to keep and what
// to skip.
type MmcifReader struct {
	cmmtScanner
	dataToKeep   map[string]bool
	tablesToKeep map[string]bool
	headers      [][]byte
	scrtchBytes  [][]byte
}

// NewMmcifReader returns an object to read mmcif files.
// It is given a reader, so the caller must have decided if it is
// a file, compressed file, whatever.
func NewMmcifReader(r io.Reader) *MmcifReader {
	if r == nil {
		return nil
	}
	return &MmcifReader{
		cmmtScanner:  newCmmtScanner(r, '#'),
		dataToKeep:   make(map[string]bool),
		tablesToKeep: make(map[string]bool),
		scrtchBytes:  make([][]byte, 0, 25),
	}
}

// AddItems adds data items like "_struct.title" that we will keep.
func (mr *MmcifReader) AddItems(s []string) {
	for _, a := range s {
		mr.dataToKeep[a] = true
	}
}

// AddTable says which categories to keep, like "_struct_ref". A
// trailing dot is ignored.
func (mr *MmcifReader) AddTable(s []string) {
	for _, a := range s {
		mr.tablesToKeep[strings.TrimSuffix(a, ".")] = true
	}
}

// cmmtScanner is a wrapper around bufio.Scanner that will jump over
// comment lines and blank lines.
// It also counts newlines in scanner.n, so we can print out the line
// number in error messages.
type cmmtScanner struct {
	*bufio.Scanner           // standard library scanner
	l_err          readError // fill this out as soon as an error happens
	ctoken         []byte    // Store the bytes that will be returned by cbytes()
	n              int       // line number in the mmcif file
	cmmt           byte      // Comment character
	Ok             bool      // Are we OK or have we had an error ?
}

// newCmmtScanner is a wrapper around scanner, but
//   - jumps over blank lines
//   - jumps over lines starting with a comment character
func newCmmtScanner(r io.Reader, cmmt byte) cmmtScanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 4*1024*1024) // some lines are long
	return cmmtScanner{Scanner: s, cmmt: cmmt, Ok: true}
}

// cscan is a wrapper around the library Scan(). Comment characters are
// only recognised as the first character, since they are legitimate
// elsewhere in the text.
// When finished, it sets "ctoken" to the line, or nil at end of file.
// It only returns false on a real error.
func (s *cmmtScanner) cscan() bool {
	if !s.Ok { // We have already had an error, but nobody has noticed.
		s.ctoken = nil
		return false
	}
	for {
		if !s.Scan() {
			s.ctoken = nil
			if err := s.Err(); err != nil {
				s.fill(err.Error(), true)
				return false
			}
			return true // No error, just EOF
		}
		s.n++
		b := bytes.TrimRight(s.Bytes(), " \t\r")
		if len(b) == 0 || b[0] == s.cmmt {
			continue
		}
		s.ctoken = b
		return true
	}
}

// cbytes is like Bytes from the library, but returns the current
// interesting line. It is nil at end of file.
func (s *cmmtScanner) cbytes() []byte { return s.ctoken }

// stateFn is the type of state function. It returns the next
// state function that should act on its input.
type stateFn func(*MmcifReader, *MmcifData) stateFn

// isSpecial returns true if the input in inline is not simply
// more of a table. Usually this means there is a new directive
// coming. End of file is also special.
func isSpecial(inline []byte) bool {
	switch {
	case inline == nil:
		return true
	case inline[0] == '_':
		return true
	case bytes.HasPrefix(inline, []byte("loop_")):
		return true
	case bytes.HasPrefix(inline, []byte("data_")):
		return true
	default:
		return false
	}
}

// category splits "_struct_ref.db_name" into "_struct_ref" and "db_name".
func category(b []byte) (cat, item string, ok bool) {
	c, i, found := bytes.Cut(b, []byte("."))
	if !found {
		return "", "", false
	}
	return string(c), string(i), true
}

// stateTop looks at the current line and decides what state to jump to
// next.
func stateTop(mr *MmcifReader, _ *MmcifData) stateFn {
	b := mr.cbytes() // Does not advance scanner
	switch {
	case b == nil:
		return nil
	case bytes.HasPrefix(b, []byte("loop_")):
		return stateLoop
	case bytes.HasPrefix(b, []byte("data_")):
		return stateData
	case b[0] == '_':
		return stateDItem
	default:
		return stateUnknown
	}
}

// stateData jumps over the data_xxxx line.
func stateData(mr *MmcifReader, _ *MmcifData) stateFn {
	if !mr.cscan() {
		return nil
	}
	return stateTop
}

// stateUnknown should be reached if we are confused and do not know
// what to do. It is an error and we should stop
func stateUnknown(mr *MmcifReader, _ *MmcifData) stateFn {
	mr.fill("unexpected line", true)
	return nil
}

// stateLoop is where you are if you have a loop directive.
// You just have to jump over the line and go to reading the
// headers.
func stateLoop(mr *MmcifReader, _ *MmcifData) stateFn {
	if !mr.cscan() {
		return nil
	}
	return stateLoopHdr
}

// stateLoopHdr gets the headers from a loop directive and decides if the
// table is interesting.
func stateLoopHdr(mr *MmcifReader, _ *MmcifData) stateFn {
	mr.headers = mr.headers[:0]
	for b := mr.cbytes(); b != nil && b[0] == '_'; b = mr.cbytes() {
		mr.headers = append(mr.headers, append([]byte(nil), b...))
		if !mr.cscan() {
			return nil
		}
	}
	if len(mr.headers) < 1 {
		mr.fill("no contents found while reading loop headers", true)
		return nil
	}
	cat, _, ok := category(mr.headers[0])
	if ok && mr.tablesToKeep[cat] {
		return stateLoopTable
	}
	return stateSkipLoopTable
}

// stateLoopTable reads the rows of a table we want and puts the table
// in the hash table of tables.
func stateLoopTable(mr *MmcifReader, md *MmcifData) stateFn {
	const notSplit = "could not split heading at dot: "
	var table Table
	var tblName string
	for _, word := range mr.headers { // given _struct_ref.foo, save foo
		cat, item, ok := category(word)
		if !ok {
			mr.fill(notSplit+string(word), true)
			return nil
		}
		tblName = cat
		table.Names = append(table.Names, item)
	}
	ncol := len(table.Names)
	for {
		b, ok := getNpieces(mr, ncol)
		if !ok {
			return nil
		}
		if len(b) == 0 {
			break
		}
		if len(b) != ncol {
			mr.fill("table "+tblName+" has a row with the wrong number of values", true)
			return nil
		}
		table.Vals = append(table.Vals, b)
	}
	md.Tables[tblName] = table
	return stateTop
}

// stateSkipLoopTable reads lines from a table, but does not
// save them anywhere. Most of the tables we encounter are not
// to be saved. Text fields can contain lines starting with "_", so they
// are skipped as a whole.
func stateSkipLoopTable(mr *MmcifReader, _ *MmcifData) stateFn {
	for b := mr.cbytes(); !isSpecial(b); b = mr.cbytes() {
		if b[0] == ';' {
			if !skipText(mr) {
				return nil
			}
			continue
		}
		if !mr.cscan() {
			return nil
		}
	}
	return stateTop
}

// skipText jumps over a ;-delimited text field. We are on the opening line.
func skipText(mr *MmcifReader) bool {
	for ok := mr.cscan(); ok; ok = mr.cscan() {
		b := mr.cbytes()
		if b == nil {
			mr.fill("end of file in text field", false)
			return false
		}
		if b[0] == ';' {
			return mr.cscan()
		}
	}
	return false
}

// readText reads a ;-delimited text field, starting on the opening line.
// The scanner is left on the closing line.
func readText(mr *MmcifReader) (string, bool) {
	tmp := string(mr.cbytes()[1:])
	for ok := mr.cscan(); ok; ok = mr.cscan() {
		b := mr.cbytes()
		if b == nil {
			mr.fill("end of file in text field", false)
			return "", false
		}
		if b[0] == ';' {
			return strings.TrimSpace(tmp), true
		}
		tmp = tmp + "\n" + string(b)
	}
	return "", false
}

// stateDItem gets a data item. This is often on one line, but
// the value can be on the next line, or be a text field.
// If the category of the item is one of our tables, we add it to a
// one row table.
func stateDItem(mr *MmcifReader, md *MmcifData) stateFn {
	const msg = "data item without a value"
	var value string
	t, err := splitCifLine(mr.cbytes(), mr.scrtchBytes)
	if err != nil {
		mr.fill(err.Error(), true)
		return nil
	}
	itemName := string(t[0])
	switch len(t) {
	case 2:
		value = string(t[1])
	case 1:
		if !mr.cscan() || mr.cbytes() == nil {
			mr.fill(msg, true)
			return nil
		}
		if mr.cbytes()[0] == ';' {
			var ok bool
			if value, ok = readText(mr); !ok {
				return nil
			}
		} else {
			u, err := splitCifLine(mr.cbytes(), mr.scrtchBytes)
			if err != nil || len(u) != 1 {
				mr.fill(msg, true)
				return nil
			}
			value = string(u[0])
		}
	default:
		mr.fill("too many values for "+itemName, true)
		return nil
	}

	if mr.dataToKeep[itemName] {
		md.Data[itemName] = value
	}
	if cat, item, ok := category([]byte(itemName)); ok && mr.tablesToKeep[cat] {
		tbl := md.Tables[cat]
		if len(tbl.Vals) == 0 {
			tbl.Vals = [][]string{nil}
		}
		tbl.Names = append(tbl.Names, item)
		tbl.Vals[0] = append(tbl.Vals[0], value)
		md.Tables[cat] = tbl
	}
	if !mr.cscan() {
		return nil
	}
	return stateTop
}

// getNpieces asks the scanner for lines until it has npiece values, which
// is one row of a table. It returns nothing when the table has finished.
// We have to use new strings, since calls to scan() will update the
// underlying buffer.
func getNpieces(mr *MmcifReader, npiece int) (ret []string, ok bool) {
	for len(ret) < npiece {
		b := mr.cbytes()
		if isSpecial(b) {
			if len(ret) != 0 {
				mr.fill("incomplete table row", true)
				return nil, false
			}
			return nil, true
		}
		if b[0] == ';' {
			s, ok := readText(mr)
			if !ok {
				return nil, false
			}
			ret = append(ret, s)
		} else {
			var t [][]byte
			if hasQuote(b) {
				var err error
				if t, err = splitCifLine(b, mr.scrtchBytes); err != nil {
					mr.fill(err.Error(), true)
					return nil, false
				}
			} else { //         For a clean string, just
				t = bytes.Fields(b) // use library function
			}
			for _, u := range t {
				ret = append(ret, string(u))
			}
		}
		if !mr.cscan() {
			return nil, false
		}
	}
	return ret, true
}

// DoFile reads the file and returns what we were asked to keep.
func (mr *MmcifReader) DoFile() (*MmcifData, error) {
	if mr == nil {
		return nil, errors.New("start of file, nil mmcifReader")
	}
	if !mr.cscan() {
		return nil, mr.l_err
	}
	if mr.cbytes() == nil {
		mr.fill("zero length file", false)
		return nil, mr.l_err
	}
	md := &MmcifData{
		Data:   make(map[string]string),
		Tables: make(map[string]Table),
	}
	for state := stateTop; state != nil && mr.Ok; {
		state = state(mr, md)
	}
	if !mr.Ok {
		return nil, mr.l_err
	}
	return md, nil
}

// Missing says if an mmcif value means "nothing here".
func Missing(s string) bool { return s == "?" || s == "." || s == "" }
