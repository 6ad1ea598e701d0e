// Package cli is for command line interactions with msatool
package cli

import (
	"errors"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "msatool",
	Short: `Refine, merge and compare multiple sequence alignments.
Alignments are read and written in fasta format`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

// set flags
func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is ./msatool.yaml)")
	pf.StringP("log", "l", "stderr", "where to log: stdout, stderr, a file name or \"\"")
	pf.Bool("colour", false, "colour warnings in the log")
	pf.StringP("output", "o", "", "output file name (default stdout)")
	pf.BoolP("dry-run", "n", false, "do not write any files")
	pf.BoolP("upper", "u", false, "convert sequences to upper case on reading")
	pf.BoolP("rm-gaps", "g", false, "remove gap characters on output")
	pf.StringP("title", "t", "", "title of the alignment (default is the file name)")

	for _, name := range []string{"log", "colour", "output", "dry-run", "upper", "rm-gaps", "title"} {
		if err := viper.BindPFlag(name, pf.Lookup(name)); err != nil {
			log.Fatalf("binding flag %s: %v", name, err)
		}
	}
}

// initConfig reads the config file and environment variables like
// MSATOOL_DRY_RUN. Flags given on the command line win.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("msatool")
		viper.AddConfigPath(".")
	}
	viper.SetEnvPrefix("MSATOOL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatalf("reading config %s: %v", viper.ConfigFileUsed(), err)
		}
	}
}

// inFile is the optional input file argument after n others.
func inFile(args []string, n int) string {
	if len(args) > n {
		return args[n]
	}
	return ""
}

// bindFlags binds the named flags of cmd to viper keys under prefix.
func bindFlags(cmd *cobra.Command, prefix string, names ...string) {
	for _, name := range names {
		if err := viper.BindPFlag(prefix+"."+name, cmd.Flags().Lookup(name)); err != nil {
			log.Fatalf("binding flag %s: %v", name, err)
		}
	}
}
