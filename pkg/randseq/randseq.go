// 31 July 2020

// Package randseq makes random protein alignments. It is for testing
// and timing. Sequences are written in fasta format with rubbish white
// space scattered through them, which a reader has to cope with.
package randseq

import (
	"fmt"
	"io"
	"math/rand"
	"sync"
)

const nPadWhite = 10 // about 1 in this many characters is white space

// Letters are the residues we draw from.
var Letters = []byte("acdefghiklmnpqrstvwy")

// alphabet is Letters, with gaps unless noGap is set. There is about
// one gap for every eighty residues.
func alphabet(noGap bool) []byte {
	if noGap {
		return Letters
	}
	a := append([]byte(nil), Letters...)
	a = append(a, a...)
	a = append(a, a...)
	return append(a, '-')
}

// getseq returns a byte slice with a random sequence in it, with room
// for some white space.
func getseq(seqlen int, letters []byte, rnd *rand.Rand) []byte {
	space := seqlen + (seqlen / nPadWhite)
	ret := make([]byte, seqlen, space)
	for i := range ret {
		ret[i] = letters[rnd.Intn(len(letters))]
	}
	return ret
}

// Alignment returns nseq random rows, each ncol long.
func Alignment(nseq, ncol int, iseed int64, noGap bool) []string {
	rnd := rand.New(rand.NewSource(iseed))
	letters := alphabet(noGap)
	ret := make([]string, nseq)
	for i := range ret {
		ret[i] = string(getseq(ncol, letters, rnd))
	}
	return ret
}

// RandSeqArgs is the set of arguments passed to the main function
type RandSeqArgs struct {
	Iseed int64     // random number seed
	Wrtr  io.Writer // where we write to
	Cmmt  string    // Comment for the sequences
	Nseq  int       // number of sequences
	Len   int       // Length of sequences
	NoGap bool      // Do not add gaps
	MkErr bool      // Add an error, by making the last sequence one residue short
}

// addInner is used by addspace to add a space or newline
func addInner(s []byte, n int, c byte, spacernd *rand.Rand) []byte {
	for i := 0; i < n; i++ {
		s = append(s, 0)
		pos := spacernd.Intn(len(s))
		copy(s[pos+1:], s[pos:])
		s[pos] = c
	}
	return s
}

// addspace is given a byte array and adds white characters at random
// positions, filling up to its capacity. We flip a coin. Heads we
// don't add a newline. Tails we make about 1/9 of the spaces newlines.
func addspace(s []byte, spacernd *rand.Rand) []byte {
	toAdd := cap(s) - len(s)
	nNL := 0 // Number of new lines to add
	if spacernd.Intn(2) == 0 {
		nNL = toAdd / 9
	}
	s = addInner(s, toAdd-nNL, ' ', spacernd)
	return addInner(s, nNL, '\n', spacernd)
}

// writeseq takes sequences from sChan, adds a comment and writes them.
// The labels are "s1", "s2"..., padded so they sort in order.
func writeseq(sChan <-chan []byte, args *RandSeqArgs, wg *sync.WaitGroup, errp *error) {
	defer wg.Done()

	width := len(fmt.Sprintf("%d", args.Nseq))
	spacernd := rand.New(rand.NewSource(args.Iseed + 1))
	var i int
	for s := range sChan {
		i++
		if *errp != nil {
			continue // keep draining
		}
		s = addspace(s, spacernd)
		if _, err := fmt.Fprintf(args.Wrtr, ">s%0*d %s\n%s\n", width, i, args.Cmmt, s); err != nil {
			*errp = err
		}
	}
}

// RandSeqMain writes random sequences to an io.Writer.
func RandSeqMain(args *RandSeqArgs) error {
	var wg sync.WaitGroup
	var err error
	letters := alphabet(args.NoGap)
	rnd := rand.New(rand.NewSource(args.Iseed))
	sChan := make(chan []byte)
	wg.Add(1)
	go writeseq(sChan, args, &wg, &err)
	for i := 0; i < args.Nseq; i++ {
		n := args.Len
		if args.MkErr && i == args.Nseq-1 && n > 0 {
			n--
		}
		sChan <- getseq(n, letters, rnd)
	}
	close(sChan)
	wg.Wait()
	return err
}
