package drift

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults used by DefaultConfig.
const (
	DefaultCount             = 100
	DefaultSpeed             = 32.0
	DefaultParticleSize      = 64.0
	DefaultRepeatInterval    = 2.0
	DefaultSmoothingDuration = 1.0
	DefaultEasing            = "linear"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config controls how particles are spawned and how they move.
type Config struct {
	// Count is the fixed population size created by Spawn.
	Count int `yaml:"count"`
	// Speed scales random velocity components: each axis is drawn uniformly
	// from [-Speed, Speed]. In distance units per second.
	Speed float64 `yaml:"speed"`
	// ParticleSize is the side length of a particle's square sprite at scale 1.
	ParticleSize float64 `yaml:"particle_size"`
	// RepeatInterval is the number of seconds between velocity randomizations.
	RepeatInterval float64 `yaml:"repeat_interval"`
	// SmoothingDuration is how long, in seconds, the blend from the previous
	// velocity to the new one takes. Only used when Smoothing is set.
	SmoothingDuration float64 `yaml:"smoothing_duration"`
	// Smoothing, when true, interpolates from the last velocity toward the
	// current one and scales each sprite by its interpolated speed. When
	// false, new velocities apply instantly and scales are never touched.
	Smoothing bool `yaml:"smoothing"`
	// EdgeMargin, when true, insets the reflection boundary by half the
	// particle size so sprites bounce with their edges rather than centers.
	EdgeMargin bool `yaml:"edge_margin"`
	// Easing names the curve applied to the blend factor. See EasingNames.
	Easing string `yaml:"easing"`
}

// DefaultConfig returns the stock demo settings: smoothed velocity changes
// with the half-size boundary margin.
func DefaultConfig() Config {
	return Config{
		Count:             DefaultCount,
		Speed:             DefaultSpeed,
		ParticleSize:      DefaultParticleSize,
		RepeatInterval:    DefaultRepeatInterval,
		SmoothingDuration: DefaultSmoothingDuration,
		Smoothing:         true,
		EdgeMargin:        true,
		Easing:            DefaultEasing,
	}
}

// Margin returns the inset applied to the reflection boundary.
func (c Config) Margin() float64 {
	if !c.EdgeMargin {
		return 0
	}
	return c.ParticleSize / 2
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Count < 0:
		return fmt.Errorf("drift: count %d is negative: %w", c.Count, ErrInvalidConfig)
	case c.Speed <= 0:
		return fmt.Errorf("drift: speed %v must be positive: %w", c.Speed, ErrInvalidConfig)
	case c.ParticleSize < 0:
		return fmt.Errorf("drift: particle size %v is negative: %w", c.ParticleSize, ErrInvalidConfig)
	case c.RepeatInterval <= 0:
		return fmt.Errorf("drift: repeat interval %v must be positive: %w", c.RepeatInterval, ErrInvalidConfig)
	case c.Smoothing && c.SmoothingDuration <= 0:
		return fmt.Errorf("drift: smoothing duration %v must be positive: %w", c.SmoothingDuration, ErrInvalidConfig)
	}
	if _, ok := easingFuncs[c.Easing]; !ok {
		return fmt.Errorf("drift: unknown easing %q: %w", c.Easing, ErrInvalidConfig)
	}
	return nil
}

// ParseConfig decodes YAML over DefaultConfig, so keys missing from data keep
// their default values, and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("drift: failed to parse config: %w", err)
	}
	if cfg.Easing == "" {
		cfg.Easing = DefaultEasing
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a YAML config file. See ParseConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("drift: failed to read config: %w", err)
	}
	return ParseConfig(data)
}
