// msatool refines, merges and compares multiple sequence alignments.
// See "msatool help" for the subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/andrew-torda/msatool/pkg/cli"
	"github.com/andrew-torda/msatool/pkg/seq/common"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(common.ExitFailure)
	}
}
