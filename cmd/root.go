// Package cmd is for command line interactions with the assembler
package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "seqasm",
	Short: `Reconstruct a sequence from overlapping fragments (reads).
Fragments are scored pairwise, chained in a weighted overlap graph and
merged into contigs, greedily or along a max-weight Hamiltonian path`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	cobra.OnInitialize(initSettings)

	// settings is an optional parameter for a settings file that overrides the flag defaults
	rootCmd.PersistentFlags().StringP("settings", "s", "", "path to a YAML settings file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "whether to log each merge to stderr")
	viper.BindPFlag("settings", rootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initSettings reads in the settings file named on the command line,
// if there is one. Flags still win over file settings.
func initSettings() {
	settings := viper.GetString("settings")
	if settings == "" {
		return
	}

	viper.SetConfigFile(settings)
	if err := viper.ReadInConfig(); err != nil {
		stderr.Fatalf("failed to read settings file %s: %v", settings, err)
	}
}
