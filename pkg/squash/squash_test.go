// 29 Apr 2020

package squash_test

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/andrew-torda/msatool/pkg/msa"
	"github.com/andrew-torda/msatool/pkg/seq"
	"github.com/andrew-torda/msatool/pkg/seq/common"
	. "github.com/andrew-torda/msatool/pkg/squash"
)

var seqstring string = `>s1
ABCD
> s2
-EFG
> s3
-HIJ`

func ExampleSquash() {
	fname, err := common.WrtTemp(seqstring)
	if err != nil {
		log.Fatal(err)
	}
	defer os.Remove(fname)
	if err := Squash("s2", fname, "", "", nil, nil); err != nil {
		log.Fatal("broke running squash ", err)
	}
	// Output:
	// >s1
	// BCD
	// >s2
	// EFG
	// >s3
	// HIJ
}

func TestWithOutput(t *testing.T) {
	fname, err := common.WrtTemp(seqstring)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	for _, name := range []string{"s2", "2", "s"} {
		outfname := filepath.Join(t.TempDir(), "out")
		if err := Squash(name, fname, outfname, "", nil, nil); err != nil {
			t.Fatal("broke running squash with", name, err)
		}
		fi, err := os.Stat(outfname)
		if err != nil {
			t.Fatal("stat failed", err)
		}
		const sOf = "size of output from Squash is too"
		switch name {
		case "s": // first sequence has no gaps, so ">s1\nABCD\n" and two more
			if fi.Size() != 27 {
				t.Fatal(sOf, "different", fi.Size())
			}
		default:
			if fi.Size() != 24 {
				t.Fatal(sOf, "different", fi.Size())
			}
		}
	}
}

func TestOptions(t *testing.T) {
	fname, err := common.WrtTemp(seqstring)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	outfname := filepath.Join(t.TempDir(), "out")
	if err := Squash("s2", fname, outfname, "", &seq.Options{DryRun: true}, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(outfname); err == nil {
		t.Fatal("dry run wrote", outfname)
	}
	if err := Squash("s2", fname, outfname, "", &seq.Options{RmvGapsWrt: true}, nil); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(outfname); err != nil || fi.Size() != 24 {
		t.Fatal("squashed output has no gaps to remove, got", fi, err)
	}
}

// TestBreak checks that we get an error if sequences have
// wrong lengths, or the reference is not there.
func TestBreak(t *testing.T) {
	var badLen string = `>s1
ABCD
> s2
-EF
> s3
-HIJ`
	fname, err := common.WrtTemp(badLen)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	good, err := common.WrtTemp(seqstring)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(good)
	if Squash("s2", fname, "", "", nil, nil) == nil {
		t.Error("different lengths should fail")
	}
	if err := Squash("nothere", good, "", "", nil, nil); !errors.Is(err, msa.ErrNotFound) {
		t.Error("missing reference should fail with ErrNotFound, got", err)
	}
	if Squash("s2", filepath.Join(t.TempDir(), "missing"), "", "", nil, nil) == nil {
		t.Error("missing input should fail")
	}
}
