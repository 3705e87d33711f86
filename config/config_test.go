package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestNew(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("mode", "hamilton")
	viper.Set("orientation", true)
	viper.Set("random", true)
	viper.Set("seed", 42)
	viper.Set("timeout", "5s")
	viper.Set("steps", 1000)
	viper.Set("snapshots", "out")

	c := New()

	if c.Mode != "hamilton" {
		t.Errorf("Config.Mode = %v, want hamilton", c.Mode)
	}
	if !c.Orientation {
		t.Error("Config.Orientation = false, want true")
	}
	if !c.Random {
		t.Error("Config.Random = false, want true")
	}
	if c.Seed != 42 {
		t.Errorf("Config.Seed = %v, want 42", c.Seed)
	}
	if c.Timeout != 5*time.Second {
		t.Errorf("Config.Timeout = %v, want 5s", c.Timeout)
	}
	if c.Steps != 1000 {
		t.Errorf("Config.Steps = %v, want 1000", c.Steps)
	}
	if c.Snapshots != "out" {
		t.Errorf("Config.Snapshots = %v, want out", c.Snapshots)
	}
}
