// go test -bench ForMem -memprofile mem.out
package seq_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/andrew-torda/msatool/pkg/seq"
)

func writeTmpSeqFile(dir string) (string, error) {
	fname := filepath.Join(dir, "del_me")
	fp, err := os.Create(fname)
	if err != nil {
		return "", err
	}
	defer fp.Close()
	nseq := 20000
	nrep := 27
	for i := 0; i < nseq; i++ {
		fmt.Fprintln(fp, "> seq", i)
		for j := 0; j < nrep; j++ {
			fmt.Fprint(fp, "aaaaaaaaaaaaa ")
		}
		fmt.Fprint(fp, "\n")
	}
	return fname, nil
}

func BenchmarkForMemUse(b *testing.B) {
	fname, err := writeTmpSeqFile(b.TempDir())
	if err != nil {
		b.Fatal("program bug")
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = seq.Readfile(fname, &seq.Options{}); err != nil {
			b.Fatal("benchmark broke reading sequences", err)
		}
	}
}
