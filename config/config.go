package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hjson/hjson-go"
	"gopkg.in/yaml.v3"

	"github.com/contexD/ray-tracer-challenge/projectile"
	"github.com/contexD/ray-tracer-challenge/tuple"
)

// ErrInvalidConfig is returned by Validate and LoadConfig for scenarios
// that cannot be simulated.
var ErrInvalidConfig = errors.New("invalid config")

// Config describes a projectile scenario.
type Config struct {
	Position tuple.Point  `json:"position"`
	Velocity tuple.Vector `json:"velocity"`
	Speed    float64      `json:"speed"`
	Gravity  tuple.Vector `json:"gravity"`
	Wind     tuple.Vector `json:"wind"`
	MaxTicks int          `json:"max-ticks"`
	Sweep    Sweep        `json:"sweep"`
}

// Sweep lists launch speeds to simulate side by side.
type Sweep struct {
	Speeds  []float64 `json:"speeds"`
	Workers int       `json:"workers"`
}

// Default returns the canonical scenario: launched from (0, 1, 0) along
// (1, 1, 0) at unit speed, with gravity (0, -0.1, 0) and wind
// (-0.01, 0, 0).
func Default() Config {
	return Config{
		Position: tuple.NewPoint(0, 1, 0),
		Velocity: tuple.NewVector(1, 1, 0),
		Speed:    1,
		Gravity:  tuple.NewVector(0, -0.1, 0),
		Wind:     tuple.NewVector(-0.01, 0, 0),
		MaxTicks: projectile.DefaultMaxTicks,
	}
}

// LoadConfig reads the scenario at path. Files ending in .yaml or .yml are
// parsed as YAML, anything else as HJSON. Keys missing from the file keep
// their Default values.
func LoadConfig(path string) (conf Config, err error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		conf, err = ParseYAML(bytes)
	default:
		conf, err = ParseHJSON(bytes)
	}
	if err != nil {
		err = fmt.Errorf("failed to load %v: %w", path, err)
	}
	return
}

// ParseHJSON decodes an HJSON scenario on top of Default.
func ParseHJSON(bytes []byte) (Config, error) {
	var mdat map[string]interface{}
	if err := hjson.Unmarshal(bytes, &mdat); err != nil {
		return Config{}, err
	}
	return fromMap(mdat)
}

// ParseYAML decodes a YAML scenario on top of Default.
func ParseYAML(bytes []byte) (Config, error) {
	var mdat map[string]interface{}
	if err := yaml.Unmarshal(bytes, &mdat); err != nil {
		return Config{}, err
	}
	return fromMap(mdat)
}

// fromMap re-encodes a generic document as JSON so the tuple decoders
// enforce component counts and discriminants.
func fromMap(mdat map[string]interface{}) (conf Config, err error) {
	conf = Default()
	bytes, err := json.Marshal(mdat)
	if err != nil {
		return
	}
	if err = json.Unmarshal(bytes, &conf); err != nil {
		return
	}
	err = conf.Validate()
	return
}

// Validate checks that the scenario can be simulated.
func (c Config) Validate() error {
	switch {
	case c.MaxTicks < 0:
		return fmt.Errorf("%w: max-ticks %d is negative", ErrInvalidConfig, c.MaxTicks)
	case c.Sweep.Workers < 0:
		return fmt.Errorf("%w: sweep workers %d is negative", ErrInvalidConfig, c.Sweep.Workers)
	case !(c.Velocity.Magnitude() > 0):
		return fmt.Errorf("%w: velocity %v has no direction", ErrInvalidConfig, c.Velocity)
	case !(c.Speed > 0):
		return fmt.Errorf("%w: speed %v must be positive", ErrInvalidConfig, c.Speed)
	}
	for _, s := range c.Sweep.Speeds {
		if !(s > 0) {
			return fmt.Errorf("%w: sweep speed %v must be positive", ErrInvalidConfig, s)
		}
	}
	return nil
}

// Projectile returns the launch state described by c.
func (c Config) Projectile() projectile.Projectile {
	return projectile.Launch(c.Position, c.Velocity, c.Speed)
}

// Environment returns the accelerations described by c.
func (c Config) Environment() projectile.Environment {
	return projectile.Environment{Gravity: c.Gravity, Wind: c.Wind}
}
