package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFolder is the routine folder used when the config does not
// name one.
const DefaultFolder = "Juggernaut"

// Lift identifies one of the four main lifts.
type Lift string

const (
	Squat    Lift = "squat"
	Bench    Lift = "bench"
	Deadlift Lift = "deadlift"
	OHP      Lift = "ohp"
)

// AllLifts returns the four main lifts in training-day order.
func AllLifts() []Lift {
	return []Lift{Squat, Bench, Deadlift, OHP}
}

// LiftConfig holds the per-lift state: the training max driving all
// generated weights, the Hevy exercise template backing the main lift,
// and any accessory exercises appended after it.
//
// Accessories are opaque exercise payloads in the remote service's
// schema; they are stored verbatim and replayed on every update.
type LiftConfig struct {
	TrainingMax float64          `yaml:"training_max"`
	ExerciseID  string           `yaml:"exercise_id"`
	Accessories []map[string]any `yaml:"accessories,omitempty"`
}

// Config is the persisted program state, loaded once per invocation.
type Config struct {
	APIKey string `yaml:"api_key"`
	Folder string `yaml:"folder,omitempty"`

	Squat    LiftConfig `yaml:"squat"`
	Bench    LiftConfig `yaml:"bench"`
	Deadlift LiftConfig `yaml:"deadlift"`
	OHP      LiftConfig `yaml:"ohp"`
}

// LiftConfig returns the state for a lift.
func (c *Config) LiftConfig(l Lift) *LiftConfig {
	switch l {
	case Squat:
		return &c.Squat
	case Bench:
		return &c.Bench
	case Deadlift:
		return &c.Deadlift
	default:
		return &c.OHP
	}
}

// FolderName returns the configured routine folder, or the default.
func (c *Config) FolderName() string {
	if c.Folder == "" {
		return DefaultFolder
	}
	return c.Folder
}

// Load reads config from a YAML file, then applies environment variable
// overrides. JUGGSYNC_API_KEY overrides the stored credential.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if v := os.Getenv("JUGGSYNC_API_KEY"); v != "" {
		cfg.APIKey = v
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Save writes the config back to path, backing up the previous file to
// path.bak first so an aborted write never loses training maxes.
func Save(cfg *Config, path string) error {
	if prev, err := os.ReadFile(path); err == nil {
		if err := os.WriteFile(path+".bak", prev, 0o644); err != nil {
			return fmt.Errorf("backing up config: %w", err)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func (c *Config) validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("api_key is required")
	}
	for _, lift := range AllLifts() {
		lc := c.LiftConfig(lift)
		if lc.TrainingMax <= 0 {
			return fmt.Errorf("%s.training_max is required", lift)
		}
		if lc.ExerciseID == "" {
			return fmt.Errorf("%s.exercise_id is required", lift)
		}
	}
	return nil
}
