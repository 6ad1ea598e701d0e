package cli

import (
	"fmt"
	"strings"

	"github.com/exascience/pargo/parallel"
	"github.com/spf13/cobra"

	"github.com/andrew-torda/msatool/config"
	"github.com/andrew-torda/msatool/pkg/msa"
	"github.com/andrew-torda/msatool/pkg/seq"
)

// mergeCmd joins alignments of the same proteins side by side.
var mergeCmd = &cobra.Command{
	Use:   "merge input1 input2 [inputs...]",
	Short: "Merge alignments, matching rows by label",
	Long: `Merge alignments. Rows are matched by label, with residue numbers
removed, and only labels found once in every input are kept. The columns
of the inputs follow one another in the order given.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.NewConfig()
		if err != nil {
			return err
		}
		return mergeExec(c, args)
	},
	SuggestionsMinimumDistance: 3,
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}

// readAll reads the files at the same time. The first error is returned.
func readAll(fnames []string, c config.Config) ([]*msa.MSA, error) {
	msas := make([]*msa.MSA, len(fnames))
	errs := make([]error, len(fnames))
	parallel.Range(0, len(fnames), 0, func(low, high int) {
		for i := low; i < high; i++ {
			msas[i], errs[i] = readMSA(fnames[i], "", c)
		}
	})
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return msas, nil
}

func mergeExec(c config.Config, args []string) error {
	rep, closer, err := newLogger(c)
	if err != nil {
		return err
	}
	defer closer.Close()
	rep.Timeit(readKey)
	msas, err := readAll(args, c)
	if err != nil {
		return err
	}
	rep.Report(fmt.Sprintf("Read %d alignments in %%.2fs.", len(msas)), readKey)
	m, err := msa.Merge(msas...)
	if err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("no labels are common to %s", strings.Join(args, ", "))
	}
	rep.Info(m.String())
	return seq.WriteToF(c.Output, m, c.SeqOptions())
}
