package cli

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/msatool/config"
	"github.com/andrew-torda/msatool/pkg/msa"
)

// seqidCmd writes the identity between every pair of sequences.
var seqidCmd = &cobra.Command{
	Use:   "seqid [input]",
	Short: "Write the pairwise sequence identities of an alignment as comma separated values",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.NewConfig()
		if err != nil {
			return err
		}
		return seqidExec(c, args)
	},
}

func init() {
	rootCmd.AddCommand(seqidCmd)
}

// writeIDs writes a header line of labels, then one line per sequence.
func writeIDs(w io.Writer, m *msa.MSA) error {
	ids := msa.SeqIDMatrix(m.Array())
	cw := csv.NewWriter(w)
	record := []string{"label"}
	for l := range m.IterLabels(true) {
		record = append(record, l)
	}
	if err := cw.Write(record); err != nil {
		return err
	}
	for i, row := range ids.Mat {
		record = append(record[:0], m.Label(i, true))
		for _, x := range row {
			record = append(record, strconv.FormatFloat(float64(x), 'f', 3, 32))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func seqidExec(c config.Config, args []string) error {
	rep, closer, err := newLogger(c)
	if err != nil {
		return err
	}
	defer closer.Close()
	m, err := readOne(inFile(args, 0), c, rep)
	if err != nil {
		return err
	}
	switch {
	case c.DryRun:
		return writeIDs(io.Discard, m)
	case c.Output == "":
		return writeIDs(os.Stdout, m)
	}
	fp, err := os.Create(c.Output)
	if err != nil {
		return err
	}
	if err := writeIDs(fp, m); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}
