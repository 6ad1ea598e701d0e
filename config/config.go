// Package config is for app wide settings that are unmarshalled
// from Viper (see: /pkg/cli)
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/andrew-torda/msatool/pkg/msa"
	"github.com/andrew-torda/msatool/pkg/seq"
)

// RefineFlags are those that are passed to the refine command.
// A negative threshold means that refinement is not done.
type RefineFlags struct {
	// label of the reference sequence, or a structure like 1p38A
	Label string `mapstructure:"label"`

	// minimum fraction of residues in a row
	RowOcc float64 `mapstructure:"rowocc"`

	// maximum sequence identity between kept rows
	SeqID float64 `mapstructure:"seqid"`

	// minimum fraction of residues in a column
	ColOcc float64 `mapstructure:"colocc"`

	// where structure files live, for labels like 1p38A
	PdbDir string `mapstructure:"pdb-dir"`
}

// Config is the root-level settings struct and is a mix
// of settings available in msatool.yaml and those
// available from the command line
type Config struct {
	// where log messages go, "", stdout, stderr or a file name
	Log string `mapstructure:"log"`

	// colour warnings in the log
	Colour bool `mapstructure:"colour"`

	// output file, stdout if empty
	Output string `mapstructure:"output"`

	// do not write any files
	DryRun bool `mapstructure:"dry-run"`

	// convert sequences to upper case on reading
	Upper bool `mapstructure:"upper"`

	// remove gap characters when writing
	RmGaps bool `mapstructure:"rm-gaps"`

	// title of the alignment, the input file name if empty
	Title string `mapstructure:"title"`

	// refine settings
	Refine RefineFlags `mapstructure:"refine"`
}

// NewConfig returns a new Config struct populated by
// Viper settings (either from the local msatool.yaml)
// and/or command line arguments
func NewConfig() (Config, error) {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return c, nil
}

// SeqOptions are the reading and writing choices.
func (c Config) SeqOptions() *seq.Options {
	return &seq.Options{DryRun: c.DryRun, Upper: c.Upper, RmvGapsWrt: c.RmGaps}
}

func threshold(x float64) *float64 {
	if x < 0 {
		return nil
	}
	return msa.Float(x)
}

// RefineOpts turns the flags into what msa.Refine wants. The
// resolver and reporter are left for the caller.
func (c Config) RefineOpts() *msa.RefineOpts {
	return &msa.RefineOpts{
		Label:  c.Refine.Label,
		RowOcc: threshold(c.Refine.RowOcc),
		SeqID:  threshold(c.Refine.SeqID),
		ColOcc: threshold(c.Refine.ColOcc),
	}
}
