// Package config loads the YAML run configuration: game parameters, seat
// assignments, and output settings.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration parses YAML strings like "30s" or "2m".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Game holds the match parameters.
type Game struct {
	VictoryPoints int      `yaml:"victory_points"`
	MaxTurns      int      `yaml:"max_turns"`
	TurnDeadline  Duration `yaml:"turn_deadline"`
	SelectRetries int      `yaml:"select_retries"`
	Seed          uint64   `yaml:"seed"`
	Matches       int      `yaml:"matches"`
}

// Seat assigns one agent to one seat.
type Seat struct {
	Seat  string `yaml:"seat"`
	Agent string `yaml:"agent"`
	Mode  string `yaml:"mode"`
	Model string `yaml:"model"`
}

// Logging holds output settings.
type Logging struct {
	OutputDir string `yaml:"output_dir"`
	Level     string `yaml:"level"`
}

// Config is the full run configuration.
type Config struct {
	Game    Game    `yaml:"game"`
	Seats   []Seat  `yaml:"seats"`
	Logging Logging `yaml:"logging"`
}

// Default returns a runnable configuration: two random baseline seats, one
// per interaction mode.
func Default() Config {
	return Config{
		Game: Game{
			VictoryPoints: 10,
			MaxTurns:      300,
			TurnDeadline:  Duration(30 * time.Second),
			SelectRetries: 2,
			Seed:          1,
			Matches:       1,
		},
		Seats: []Seat{
			{Seat: "red", Agent: "random", Mode: "structured"},
			{Seat: "blue", Agent: "random", Mode: "free-text"},
		},
		Logging: Logging{
			OutputDir: "results",
			Level:     "info",
		},
	}
}

// Load reads and validates a YAML config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the parts that would otherwise fail mid-run.
func (c Config) Validate() error {
	if len(c.Seats) < 2 {
		return fmt.Errorf("at least 2 seats required, got %d", len(c.Seats))
	}
	seen := make(map[string]bool, len(c.Seats))
	for _, s := range c.Seats {
		if s.Seat == "" {
			return fmt.Errorf("seat name must not be empty")
		}
		if seen[s.Seat] {
			return fmt.Errorf("duplicate seat %q", s.Seat)
		}
		seen[s.Seat] = true
	}
	if c.Game.VictoryPoints < 1 {
		return fmt.Errorf("victory_points must be positive, got %d", c.Game.VictoryPoints)
	}
	if c.Game.MaxTurns < 1 {
		return fmt.Errorf("max_turns must be positive, got %d", c.Game.MaxTurns)
	}
	if c.Game.TurnDeadline <= 0 {
		return fmt.Errorf("turn_deadline must be positive, got %s", time.Duration(c.Game.TurnDeadline))
	}
	if c.Game.Matches < 1 {
		return fmt.Errorf("matches must be positive, got %d", c.Game.Matches)
	}
	return nil
}
