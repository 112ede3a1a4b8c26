package grouper

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// RosterConfig controls how roster columns are resolved from CSV headers.
type RosterConfig struct {
	// NameAliases are the header values (case-insensitive) recognized as the
	// student name column.
	NameAliases []string `yaml:"nameAliases"`

	// CategoryAliases are the header values (case-insensitive) recognized as
	// the study program column.
	CategoryAliases []string `yaml:"categoryAliases"`
}

// SnapshotConfig configures the optional snapshot persistence collaborator.
type SnapshotConfig struct {
	// Bucket is the key-value bucket name snapshots are stored under.
	Bucket string `yaml:"bucket"`

	// TTL is how long snapshots remain in the store (0 = no expiration).
	// Saved class lists are long-lived by nature; keep 0 unless the store is
	// shared with short-lived test data.
	TTL time.Duration `yaml:"ttl"`
}

// Config is the configuration for the Planner.
type Config struct {
	// DefaultCapacity is the group capacity used when a build is requested
	// with a non-positive capacity. Must be a positive integer.
	DefaultCapacity int `yaml:"defaultCapacity"`

	// Roster controls CSV column resolution.
	Roster RosterConfig `yaml:"roster"`

	// Snapshots controls the snapshot store bucket.
	Snapshots SnapshotConfig `yaml:"snapshots"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// The roster aliases match the header variants observed in real exported
// class lists (see roster package documentation).
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		DefaultCapacity: 4,
		Roster: RosterConfig{
			NameAliases:     []string{"name", "student", "student_name", "student name"},
			CategoryAliases: []string{"program", "programme", "study_program", "study programme", "studyprogram", "major"},
		},
		Snapshots: SnapshotConfig{
			Bucket: "grouper-snapshots",
			TTL:    0, // No TTL - saved class lists persist indefinitely
		},
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.DefaultCapacity == 0 {
		cfg.DefaultCapacity = defaults.DefaultCapacity
	}
	if len(cfg.Roster.NameAliases) == 0 {
		cfg.Roster.NameAliases = defaults.Roster.NameAliases
	}
	if len(cfg.Roster.CategoryAliases) == 0 {
		cfg.Roster.CategoryAliases = defaults.Roster.CategoryAliases
	}
	if cfg.Snapshots.Bucket == "" {
		cfg.Snapshots.Bucket = defaults.Snapshots.Bucket
	}
	// Note: Snapshots.TTL of 0 is valid (no expiration), so we don't apply a default
}

// Validate checks configuration constraints and returns an error for invalid values.
//
// Returns:
//   - error: Validation error with clear explanation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.DefaultCapacity <= 0 {
		return fmt.Errorf("DefaultCapacity must be > 0, got %d", cfg.DefaultCapacity)
	}
	if len(cfg.Roster.NameAliases) == 0 {
		return fmt.Errorf("Roster.NameAliases must not be empty")
	}
	if len(cfg.Roster.CategoryAliases) == 0 {
		return fmt.Errorf("Roster.CategoryAliases must not be empty")
	}
	if cfg.Snapshots.TTL < 0 {
		return fmt.Errorf("Snapshots.TTL must be >= 0, got %v", cfg.Snapshots.TTL)
	}

	return nil
}

// LoadConfig reads a YAML configuration file, applies defaults for missing
// values, and validates the result.
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - Config: Loaded configuration with defaults applied
//   - error: Read, parse, or validation error
func LoadConfig(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}
