// An error implementation that saves the line number and the
// line we were trying to read.
// The key is to call xxxx.fill() where xxxx is the name of the comment
// scanner/mmcif reader.
package mmcif

import (
	"strconv"
)

const maxMsgLen = 70

type readError struct {
	n      int    // line number
	inline string // The line that provoked the error
	desc   string // Description of error
}

// fill stores the problem we have seen for printing
// out when it is convenient. If there was already an error, the new
// description is added to the old one.
func (s *cmmtScanner) fill(desc string, saveLine bool) {
	const multErrStr string = "\nNew error, but there was already an error from line "
	if !s.Ok {
		ln := strconv.Itoa(s.l_err.n)
		desc = s.l_err.desc + multErrStr + ln + ":\n" + desc
	}
	s.Ok = false
	if saveLine {
		s.l_err.n = s.n
	}
	s.l_err.inline = string(s.cbytes()) // Saves current line
	s.l_err.desc = desc
}

func firstPart(s string) string {
	return s[:min(len(s), maxMsgLen)]
}

// Error gives the number of the last line read
// and any description of the error we have.
func (e readError) Error() string {
	var errmsg string
	if e.n != 0 {
		errmsg = "Line: " + strconv.Itoa(e.n) + " "
	}
	errmsg += e.desc
	if e.n != 0 && e.inline != "" {
		errmsg += "\nLine starting with\n" + firstPart(e.inline)
	}
	return errmsg
}
