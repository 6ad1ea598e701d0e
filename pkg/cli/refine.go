package cli

import (
	"github.com/spf13/cobra"

	"github.com/andrew-torda/msatool/config"
	"github.com/andrew-torda/msatool/pdb"
	"github.com/andrew-torda/msatool/pkg/msa"
	"github.com/andrew-torda/msatool/pkg/seq"
)

// refineCmd removes rows and columns from an alignment.
var refineCmd = &cobra.Command{
	Use:   "refine [input]",
	Short: "Refine an alignment by a reference sequence, row occupancy, sequence identity and column occupancy",
	Long: `Refine an alignment. The steps are done in a fixed order
 1. keep only columns where the reference (--label) has residues
 2. drop rows with too few residues (--rowocc)
 3. drop rows too similar to ones already kept (--seqid)
 4. drop columns with too few residues (--colocc)
Only the steps that are asked for are done. The reference may also be a
structure, like 1p38 or 1p38A, if --pdb-dir says where to find it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.NewConfig()
		if err != nil {
			return err
		}
		return refineExec(c, args)
	},
	SuggestionsMinimumDistance: 3,
}

// set flags
func init() {
	refineCmd.Flags().StringP("label", "L", "", "label of the reference sequence")
	refineCmd.Flags().Float64P("rowocc", "r", -1, "minimum fraction of residues in a row")
	refineCmd.Flags().Float64P("seqid", "s", -1, "maximum identity between kept sequences")
	refineCmd.Flags().Float64P("colocc", "c", -1, "minimum fraction of residues in a column")
	refineCmd.Flags().StringP("pdb-dir", "p", "", "directory with structure files")
	bindFlags(refineCmd, "refine", "label", "rowocc", "seqid", "colocc", "pdb-dir")

	rootCmd.AddCommand(refineCmd)
}

func refineExec(c config.Config, args []string) error {
	rep, closer, err := newLogger(c)
	if err != nil {
		return err
	}
	defer closer.Close()
	m, err := readOne(inFile(args, 0), c, rep)
	if err != nil {
		return err
	}
	o := c.RefineOpts()
	o.Reporter = rep
	if c.Refine.PdbDir != "" {
		o.Resolver = pdb.Resolver{Dir: c.Refine.PdbDir}
	}
	r, err := msa.Refine(m, o)
	if err != nil {
		return err
	}
	rep.Info(r.String())
	return seq.WriteToF(c.Output, r, c.SeqOptions())
}
