package white_test

import (
	"testing"

	. "github.com/andrew-torda/msatool/pkg/white"
)

// TestWhiteRemove
func TestWhiteRemove(t *testing.T) {
	ss := []string{
		"abcdefghijk",
		" a b c d e f g h i j k",
		"a b c de fgh ijk",
		"   abcdefghijk    ",
		"a   b      cdefghijk\n ",
		"a  b  c  d   e    f     ghijk",
		"a bcdefghij   k",
		"abcdefghij\r\nk",
	}
	for _, s := range ss {
		b := []byte(s)
		Remove(&b)
		if string(b) != "abcdefghijk" {
			t.Fatalf("white remove broke on \"%s\"", s)
		}
	}
	var b []byte
	Remove(&b)
	if len(b) != 0 {
		t.Fatal("empty slice")
	}
}

func TestRemoveIf(t *testing.T) {
	b := []byte("-A C-\tD..")
	RemoveIf(&b, func(c byte) bool { return c == '-' || c == '.' })
	if string(b) != "ACD" {
		t.Fatalf("RemoveIf gave \"%s\"", b)
	}
}
