// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct and is a mix of settings
// available in a settings file and those set on the command line.
type Config struct {
	// the assembly mode, "greedy" or "hamilton"
	Mode string `mapstructure:"mode"`

	// whether to resolve each fragment's orientation (forward or
	// reverse-complement) before building the overlap graph
	Orientation bool `mapstructure:"orientation"`

	// whether ties between maximum-weight edges are broken at random
	// rather than deterministically
	Random bool `mapstructure:"random"`

	// seed for the tie-break generator. 0 seeds from the clock
	Seed int64 `mapstructure:"seed"`

	// wall-clock limit on the Hamiltonian path search. 0 is unbounded
	Timeout time.Duration `mapstructure:"timeout"`

	// cap on the number of search nodes the Hamiltonian path search
	// may visit. 0 is unbounded
	Steps int `mapstructure:"steps"`

	// directory to write per-merge graph snapshots to, as Graphviz
	// DOT files. empty disables snapshots
	Snapshots string `mapstructure:"snapshots"`

	// whether to log each merge to stderr during assembly
	Verbose bool `mapstructure:"verbose"`
}

// New returns a new Config struct populated by Viper settings (either
// from a local settings file) and/or command line arguments.
func New() *Config {
	var c Config

	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct: %v", err)
	}

	return &c
}
