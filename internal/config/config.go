// Package config loads the tool configuration from YAML and supplies
// sensible defaults so running without a config file just works.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Strategies toggles the optional deduction strategies. The basic three
// (one-candidate-left, remaining-influencer, deep-check) are always on.
type Strategies struct {
	IndirectInfluencers bool `yaml:"indirectInfluencers"`
	PointingLines       bool `yaml:"pointingLines"`
	HiddenPairs         bool `yaml:"hiddenPairs"`
	XWing               bool `yaml:"xwing"`
	Swordfish           bool `yaml:"swordfish"`
}

type Config struct {
	// Dim is the quadrant edge length; the board edge is Dim*Dim.
	Dim int `yaml:"dim"`
	// Engine selects the exhaustive solver: "backtrack" or "dlx".
	Engine string `yaml:"engine"`
	// Cheating lets the deduction engine fall back to a precomputed
	// solution when every other strategy is stuck.
	Cheating bool `yaml:"cheating"`
	// Monitoring enables per-strategy elimination counters.
	Monitoring bool `yaml:"monitoring"`
	// MinimumOccupancy is the floor of givens the generator keeps.
	MinimumOccupancy int `yaml:"minimumOccupancy"`
	// DataDir is where generated puzzles are stored.
	DataDir string `yaml:"dataDir"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"logLevel"`

	Strategies Strategies `yaml:"strategies"`
}

func Default() Config {
	return Config{
		Dim:              3,
		Engine:           "backtrack",
		Monitoring:       true,
		MinimumOccupancy: 17,
		DataDir:          "data",
		LogLevel:         "info",
		Strategies: Strategies{
			IndirectInfluencers: true,
			PointingLines:       true,
			HiddenPairs:         true,
			XWing:               true,
			Swordfish:           true,
		},
	}
}

// Load reads path over the defaults. A missing file is not an error;
// the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Dim < 2 || c.Dim > 5 {
		return fmt.Errorf("dim must be between 2 and 5, got %d", c.Dim)
	}
	switch c.Engine {
	case "backtrack", "dlx":
	default:
		return fmt.Errorf("unknown engine %q", c.Engine)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}
