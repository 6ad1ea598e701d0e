// Package report says what the programs are doing. A Logger is
// something the msa package can report progress to.
package report

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

// nopCloser is for the streams we do not own.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// LogWhere decides where to send output. "" means throw it away,
// "stdout" and "stderr" are what they say, anything else is a file
// which is appended to. The caller closes what it is given back, which
// only does something for a file.
func LogWhere(outinfo string) (*log.Logger, io.Closer, error) {
	var iowriter io.Writer
	var closer io.Closer = nopCloser{}
	switch outinfo { // Decide where to send the logged output
	case "":
		iowriter = io.Discard
	case "stdout":
		iowriter = os.Stdout
	case "stderr":
		iowriter = os.Stderr
	default:
		fp, err := os.OpenFile(outinfo, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, err
		}
		iowriter, closer = fp, fp
	}
	return log.New(iowriter, "", 0), closer, nil
}

// timePlace is replaced by the time taken in a report.
const timePlace = "%.2fs"

// Logger writes progress messages with a standard library logger.
type Logger struct {
	lg    *log.Logger
	warn  *color.Color
	start map[string]time.Time
	now   func() time.Time
}

// New wraps lg. Warnings are coloured if colour is set.
func New(lg *log.Logger, colour bool) *Logger {
	c := color.New(color.FgYellow, color.Bold)
	if colour {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return &Logger{lg: lg, warn: c, start: make(map[string]time.Time), now: time.Now}
}

// Timeit starts the clock for key.
func (l *Logger) Timeit(key string) { l.start[key] = l.now() }

// Report prints msg, with "%.2fs" replaced by the seconds since Timeit
// was called for key.
func (l *Logger) Report(msg, key string) {
	var secs float64
	if t, ok := l.start[key]; ok {
		secs = l.now().Sub(t).Seconds()
	}
	l.lg.Print(strings.Replace(msg, timePlace, fmt.Sprintf(timePlace, secs), 1))
}

// Info prints msg as it is.
func (l *Logger) Info(msg string) { l.lg.Print(msg) }

// Warn prints msg so it stands out.
func (l *Logger) Warn(msg string) { l.lg.Print(l.warn.Sprint("warning: " + msg)) }
