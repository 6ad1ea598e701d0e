package cli

import (
	"github.com/spf13/cobra"

	"github.com/andrew-torda/msatool/config"
	"github.com/andrew-torda/msatool/pkg/squash"
)

var squashCmd = &cobra.Command{
	Use:   "squash name [input]",
	Short: "Remove columns where a reference sequence has gaps",
	Long: `Remove the columns where the named sequence has a gap.

The name argument picks the reference sequence. It is looked for, in
order, as
 - the label of a sequence, like 'P38_HUMAN' for a line '>P38_HUMAN map kinase'
 - the number of a sequence, counting from 1. Very often the first
   sequence is the reference, so you would say 1.
 - part of a label. The first sequence whose label contains the string
   is used, so be careful. 'P38' would also find 'P38A_MOUSE' if it
   comes first.
If the label of the reference occurs more than once, nothing is done.
If no input file is given, stdin will be used.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.NewConfig()
		if err != nil {
			return err
		}
		return squashExec(c, args)
	},
}

func init() {
	rootCmd.AddCommand(squashCmd)
}

func squashExec(c config.Config, args []string) error {
	rep, closer, err := newLogger(c)
	if err != nil {
		return err
	}
	defer closer.Close()
	return squash.Squash(args[0], inFile(args, 1), c.Output, c.Title, c.SeqOptions(), rep)
}
