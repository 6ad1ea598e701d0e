// Package white removes white space from byte slices, in place. The
// fasta reader uses it on every line of sequence.
package white

var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

// IsWhite only knows about ascii spaces.
func IsWhite(c byte) bool { return asciiSpace[c] }

// Remove acts on a byte slice, in place and removes all the white
// space. The slice comes back with the length adjusted, but the capacity
// unchanged.
func Remove(sIn *[]byte) {
	s := *sIn
	n := 0
	for _, c := range s {
		if !asciiSpace[c] {
			s[n] = c
			n++
		}
	}
	*sIn = s[:n]
}

// RemoveIf is like Remove, but also drops anything for which drop
// returns true.
func RemoveIf(sIn *[]byte, drop func(byte) bool) {
	s := *sIn
	n := 0
	for _, c := range s {
		if !asciiSpace[c] && !drop(c) {
			s[n] = c
			n++
		}
	}
	*sIn = s[:n]
}
