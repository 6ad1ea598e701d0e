// Splitting lines at spaces, but respecting quotes.

/* from https://www.iucr.org/resources/cif/spec/version1.1/cifsyntax
               character or string role
_ (underscore) identifies data name
#              identifies comment
'              delimits non-simple data values
"              delimits non-simple data values
; at beginning of line of text delimits non-simple data values
data_          identifies data block header (case-insensitive)
*/

package mmcif

import (
	"errors"
)

const (
	squote byte = '\''
	dquote byte = '"'
)

// iswhite only works for ascii spaces
var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

func iswhite(b byte) bool { return asciiSpace[b] }

// hasQuote is true if we cannot just split at white space.
func hasQuote(b []byte) bool {
	for _, c := range b {
		if c == dquote || c == squote {
			return true
		}
	}
	return false
}

type sInfo struct { // Holds the state of the state functions
	err     error
	ret     [][]byte // This is what we will really return
	byteIn  []byte
	nxtIndx int
	qtype   byte // type of quote we are inside
}
type sfn func(i int, c byte, s *sInfo) sfn // state function

// A quote only closes a quoted region if it is followed by white space,
// so 'don't' is one word.
func sfnInQuote(i int, c byte, s *sInfo) sfn {
	if c == s.qtype {
		return sfnExitQuote
	}
	if c == '\n' {
		s.err = errors.New("unterminated quote line: " + string(s.byteIn))
		return sfnWhite
	}
	return sfnInQuote
}

func sfnExitQuote(i int, c byte, s *sInfo) sfn {
	if iswhite(c) {
		s.ret = append(s.ret, s.byteIn[s.nxtIndx:i-1])
		return sfnWhite
	}
	return sfnInQuote
}

func sfnInText(i int, c byte, s *sInfo) sfn {
	if iswhite(c) {
		s.ret = append(s.ret, s.byteIn[s.nxtIndx:i])
		return sfnWhite
	}
	return sfnInText
}

func sfnWhite(i int, c byte, s *sInfo) sfn {
	switch {
	case iswhite(c):
		return sfnWhite
	case c == squote || c == dquote:
		s.qtype = c
		s.nxtIndx = i + 1
		return sfnInQuote
	default:
		s.nxtIndx = i
		return sfnInText
	}
}

// splitCifLine takes a byte slice and returns the words in it. Words are
// separated by spaces, but quoted words can contain spaces. The quotes
// are removed. retIn is scratch space which is reused if it is big enough.
// The returned slices point into byteIn.
func splitCifLine(byteIn []byte, retIn [][]byte) ([][]byte, error) {
	if len(byteIn) < 1 {
		return nil, nil
	}
	s := sInfo{ret: retIn[:0], byteIn: byteIn}
	state := sfnWhite
	for i, c := range byteIn {
		state = state(i, c, &s)
	}
	state(len(byteIn), '\n', &s) // end with newline, catches unterminated quotes
	if s.err != nil {
		return nil, s.err
	}
	return s.ret, nil
}
