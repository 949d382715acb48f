package config

import (
	"fmt"
	"nestris/game"
	"nestris/meta"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Goroutines int    `yaml:"goroutines"`
	Playouts   int    `yaml:"playouts"`
	Breadth    int    `yaml:"breadth"`
	StartLevel int    `yaml:"startLevel"`
	MaxPieces  int    `yaml:"maxPieces"`
	Seed       uint64 `yaml:"seed"`
	Timeline   string `yaml:"timeline"`
	Trace      bool   `yaml:"trace"`

	// Weights holds partial per-mode overrides keyed by mode name; unset coefficients keep their defaults
	Weights map[string]yaml.Node `yaml:"weights"`
}

func Default() Config {
	return Config{
		Goroutines: meta.GO_ROUTINES,
		Playouts:   meta.PLAYOUTS,
		Breadth:    meta.BREADTH,
		StartLevel: meta.START_LEVEL,
		MaxPieces:  meta.MAX_PIECES,
		Seed:       meta.SEED,
		Timeline:   string(game.Timeline15Hz),
	}
}

// Load reads a YAML config file over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

func (c Config) Validate() error {
	if c.Goroutines < 1 {
		return fmt.Errorf("goroutines must be positive, got %d", c.Goroutines)
	}
	if c.Playouts < 1 {
		return fmt.Errorf("playouts must be positive, got %d", c.Playouts)
	}
	if c.Playouts > game.NumCanonicalSequences {
		return fmt.Errorf("playouts must be at most %d, got %d", game.NumCanonicalSequences, c.Playouts)
	}
	if c.Breadth < 1 {
		return fmt.Errorf("breadth must be positive, got %d", c.Breadth)
	}
	if c.StartLevel < 0 {
		return fmt.Errorf("start level must not be negative, got %d", c.StartLevel)
	}
	if strings.Trim(c.Timeline, "X.") != "" || !strings.Contains(c.Timeline, "X") {
		return fmt.Errorf("timeline must be made of 'X' and '.' with at least one 'X', got %q", c.Timeline)
	}
	if _, err := c.WeightTable(); err != nil {
		return err
	}
	return nil
}

// WeightTable applies the configured overrides to the default weights
func (c Config) WeightTable() (game.WeightTable, error) {
	table := game.DefaultWeightTable()
	for name, node := range c.Weights {
		mode, err := game.ParseAiMode(name)
		if err != nil {
			return table, fmt.Errorf("invalid weights: %w", err)
		}
		if err := checkWeightKeys(node); err != nil {
			return table, fmt.Errorf("invalid %s weights: %w", mode, err)
		}
		weights := table[mode]
		if err := node.Decode(&weights); err != nil {
			return table, fmt.Errorf("invalid %s weights: %w", mode, err)
		}
		table[mode] = weights
	}
	return table, nil
}

// weightKeys is the set of coefficient names a weights override may set
var weightKeys = func() map[string]bool {
	data, err := yaml.Marshal(game.FastEvalWeights{})
	if err != nil {
		panic(err)
	}
	fields := map[string]any{}
	if err := yaml.Unmarshal(data, &fields); err != nil {
		panic(err)
	}
	keys := make(map[string]bool, len(fields))
	for key := range fields {
		keys[key] = true
	}
	return keys
}()

func checkWeightKeys(node yaml.Node) error {
	var fields map[string]yaml.Node
	if err := node.Decode(&fields); err != nil {
		return err
	}
	for key := range fields {
		if !weightKeys[key] {
			return fmt.Errorf("unknown coefficient %q", key)
		}
	}
	return nil
}

func (c Config) Rules() (game.StandardRules, error) {
	table, err := c.WeightTable()
	if err != nil {
		return game.StandardRules{}, err
	}
	return game.NewStandardRules(
		game.WithWeightTable(table),
		game.WithTimeline(game.InputFrameTimeline(c.Timeline)),
	), nil
}
