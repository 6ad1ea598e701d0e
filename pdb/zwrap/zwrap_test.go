// Test Zwrap
package zwrap_test

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/andrew-torda/msatool/pdb/zwrap"
)

const andrew = "andrewsayshello\n"

// gzipped returns s, compressed
func gzipped(s string) []byte {
	var b bytes.Buffer
	zw := gzip.NewWriter(&b)
	zw.Write([]byte(s))
	zw.Close()
	return b.Bytes()
}

var gztests = []struct {
	data    []byte
	gzipped bool
}{
	{gzipped(andrew), true},
	{[]byte(andrew), false},
	{[]byte("ab"), false}, // shorter than a gzip header
}

// writeToTmp writes a byte slice to a temporary file and returns
// its name.
func writeToTmp(t *testing.T, data []byte) string {
	name := filepath.Join(t.TempDir(), "del_me_testing")
	if err := os.WriteFile(name, data, 0644); err != nil {
		t.Fatal("fail writing to tempfile", err)
	}
	return name
}

func TestWrap(t *testing.T) {
	for _, x := range gztests {
		fp, err := os.Open(writeToTmp(t, x.data))
		if err != nil {
			t.Fatal(err)
		}
		tmpr, err := zwrap.Wrap(fp)
		if err != nil {
			fp.Close()
			if x.gzipped {
				t.Error("Fail on correctly gzipped file")
			}
			continue // It is not gzipped, so move on to next
		}
		if !x.gzipped {
			t.Error("Fail on not compressed file")
		}
		b, _ := io.ReadAll(tmpr)
		if string(b) != andrew {
			t.Errorf("wrong string: %s", b)
		}
		if err := tmpr.Close(); err != nil {
			t.Errorf("Error closing: %s", err)
		}
	}
}

// Calling Open should not fail since it guesses if the file
// is compressed or not.
func TestOpen(t *testing.T) {
	for _, x := range gztests {
		tmpr, err := zwrap.Open(writeToTmp(t, x.data))
		if err != nil {
			t.Fatalf("Fail on file where compressed was %v: %v", x.gzipped, err)
		}
		if tmpr.Compressed() != x.gzipped {
			t.Errorf("compressed says %v, wanted %v", tmpr.Compressed(), x.gzipped)
		}
		b, _ := io.ReadAll(tmpr)
		want := andrew
		if !x.gzipped {
			want = string(x.data)
		}
		if string(b) != want {
			t.Errorf("wrong string: %s", b)
		}
		if err := tmpr.Close(); err != nil {
			t.Errorf("Error closing: %s", err)
		}
	}
	if _, err := zwrap.Open("/does/not/exist"); err == nil {
		t.Error("no error on missing file")
	}
}
