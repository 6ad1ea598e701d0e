package white_test

import (
	"strings"
	"testing"

	"github.com/andrew-torda/msatool/pkg/white"
)

func BenchmarkRemove(b *testing.B) {
	s := strings.Repeat("abcdefghij ", 6) + "\n"
	s = strings.Repeat(s, 10)
	src := []byte(s)
	tt := make([]byte, len(src))
	for i := 0; i < b.N; i++ {
		tt = append(tt[:0], src...)
		white.Remove(&tt)
	}
}
