// Package brokenio wraps a reader so that it goes wrong on purpose.
// Typical use: you have a reader for an alignment or a structure file
// and write
//
//	rdr = brokenio.NewReader(rdr).FailAfter(100)
//
// Everything works as before until 100 bytes have gone through, then
// reading gives ErrBroken. An Empty reader returns nothing on the first
// read, which is what one often sees on a zero length file.
package brokenio

import (
	"errors"
	"fmt"
	"io"
)

// ErrBroken is what a broken read returns.
var ErrBroken = errors.New("brokenio: deliberate read failure")

// Reader counts what goes through it and fails when told to.
type Reader struct {
	rdrOrig io.Reader // Wrapped reader
	failAt  int       // Fail once this many bytes are read, -1 for never
	empty   bool
	trash   bool // zero the bytes after the failure point
	nCalled int
	nByte   int
	verbose bool
}

// NewReader returns a new Reader, a wrapper around the old one which
// does not fail until it is told to.
func NewReader(rIn io.Reader) *Reader {
	return &Reader{rdrOrig: rIn, failAt: -1}
}

// FailAfter makes reading fail once n bytes have been read.
func (r *Reader) FailAfter(n int) *Reader { r.failAt = n; return r }

// Empty makes the first read return nothing and io.EOF.
func (r *Reader) Empty() *Reader { r.empty = true; return r }

// Trash means that the part of a buffer after the failure point is
// wiped out, not just left alone.
func (r *Reader) Trash() *Reader { r.trash = true; return r }

// SetVerbose says whether to print the amount of data on Close.
func (r *Reader) SetVerbose(newV bool) { r.verbose = newV }

// Stats returns the number of calls to Read and how many bytes they
// gave back.
func (r *Reader) Stats() (nCalled, nByte int) { return r.nCalled, r.nByte }

// trashSlice wipes out p from position n on.
func trashSlice(p []byte, n int) {
	clear(p[n:])
}

// Read wraps the original reader and sums up the amount of data that
// has gone through.
func (r *Reader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.nCalled == 0 && r.empty {
		r.nCalled++
		return 0, io.EOF
	}
	r.nCalled++
	if r.failAt >= 0 && r.nByte >= r.failAt {
		return 0, ErrBroken
	}
	n, err = r.rdrOrig.Read(p)
	if r.failAt >= 0 && r.nByte+n > r.failAt {
		keep := r.failAt - r.nByte
		if r.trash {
			trashSlice(p[:n], keep)
		}
		r.nByte += keep
		return keep, fmt.Errorf("%w after %d bytes", ErrBroken, r.nByte)
	}
	r.nByte += n
	return n, err
}

// Close closes the original if it can be closed.
func (r *Reader) Close() error {
	if r.verbose {
		fmt.Println("Closing", r.nCalled, "calls and", r.nByte, "bytes")
	}
	if c, ok := r.rdrOrig.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
