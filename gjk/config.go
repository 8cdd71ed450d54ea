package gjk

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid narrow phase config")

// Config holds the numeric policy of the narrow phase.
type Config struct {
	// EPA stops once a new support point improves the distance
	// to the closest edge by less than Tolerance.
	Tolerance float64 `yaml:"tolerance"`

	// With a curved shape involved, EPA also stops once the improvement
	// changes by less than CurvedTolerance between two iterations.
	// Zero disables this criterion.
	CurvedTolerance float64 `yaml:"curved_tolerance"`

	// MaxIterations caps both the GJK refinement and the EPA expansion.
	MaxIterations int `yaml:"max_iterations"`
}

func DefaultConfig() Config {
	return Config{
		Tolerance:       1e-6,
		CurvedTolerance: 1e-10,
		MaxIterations:   256,
	}
}

func (c Config) Validate() error {
	var errs []error

	if !(c.Tolerance > 0) {
		errs = append(errs, fmt.Errorf("%w: tolerance must be positive, got %v", ErrInvalidConfig, c.Tolerance))
	}

	if !(c.CurvedTolerance >= 0) {
		errs = append(errs, fmt.Errorf("%w: curved_tolerance must not be negative, got %v", ErrInvalidConfig, c.CurvedTolerance))
	}

	if c.MaxIterations < 1 {
		errs = append(errs, fmt.Errorf("%w: max_iterations must be at least 1, got %d", ErrInvalidConfig, c.MaxIterations))
	}

	return errors.Join(errs...)
}

// LoadConfig reads a YAML document. Fields missing in the
// document keep their value from DefaultConfig.
func LoadConfig(r io.Reader) (Config, error) {
	config := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode narrow phase config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}
