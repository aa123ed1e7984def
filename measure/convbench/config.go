package convbench

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-conv/dsp/conv"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("convbench: invalid config")

// Config describes one benchmark case.
type Config struct {
	// Name labels the case in reports and logs.
	Name string `yaml:"name"`

	// Length is the input length in samples.
	Length int `yaml:"length"`

	// KernelLength is the kernel length in samples.
	KernelLength int `yaml:"kernelLength"`

	// Loops is the number of convolutions per timed trial.
	Loops int `yaml:"loops"`

	// Trials is the number of timed batches; the fastest one is reported.
	Trials int `yaml:"trials"`

	// Strategy selects the convolution code path, see conv.ParseStrategy.
	Strategy conv.Strategy `yaml:"strategy"`

	// Workers is passed to conv.WithWorkers.
	Workers int `yaml:"workers"`

	// Seed drives the deterministic input and kernel noise.
	Seed int64 `yaml:"seed"`

	// Tolerance is the accepted error of non-exact strategies, relative to
	// max|input| * sum|kernel|. Exact strategies must match bit for bit.
	Tolerance float64 `yaml:"tolerance"`
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the standard setup: a 1024-sample input, a
// 16-tap kernel, 10 trials of 1000 loops.
func DefaultConfig() Config {
	return Config{
		Name:         "default",
		Length:       1024,
		KernelLength: 16,
		Loops:        1000,
		Trials:       10,
		Strategy:     conv.StrategyAuto,
		Workers:      1,
		Seed:         1,
		Tolerance:    1e-4,
	}
}

// WithName sets the case name.
func WithName(name string) Option {
	return func(cfg *Config) {
		if name != "" {
			cfg.Name = name
		}
	}
}

// WithLengths sets the input and kernel lengths.
func WithLengths(length, kernelLength int) Option {
	return func(cfg *Config) {
		cfg.Length = length
		cfg.KernelLength = kernelLength
	}
}

// WithLoops sets the number of convolutions per trial.
func WithLoops(loops int) Option {
	return func(cfg *Config) {
		cfg.Loops = loops
	}
}

// WithTrials sets the number of timed trials.
func WithTrials(trials int) Option {
	return func(cfg *Config) {
		cfg.Trials = trials
	}
}

// WithStrategy sets the convolution strategy.
func WithStrategy(s conv.Strategy) Option {
	return func(cfg *Config) {
		cfg.Strategy = s
	}
}

// WithWorkers sets the Convolver worker count.
func WithWorkers(workers int) Option {
	return func(cfg *Config) {
		cfg.Workers = workers
	}
}

// WithSeed sets the signal seed.
func WithSeed(seed int64) Option {
	return func(cfg *Config) {
		cfg.Seed = seed
	}
}

// ApplyOptions applies zero or more options to DefaultConfig.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate checks that the case can run.
func (c Config) Validate() error {
	switch {
	case c.KernelLength < 1:
		return fmt.Errorf("%w: kernelLength must be >= 1, got %d", ErrInvalidConfig, c.KernelLength)
	case c.Length < c.KernelLength:
		return fmt.Errorf("%w: length %d shorter than kernelLength %d", ErrInvalidConfig, c.Length, c.KernelLength)
	case c.Loops < 1:
		return fmt.Errorf("%w: loops must be >= 1, got %d", ErrInvalidConfig, c.Loops)
	case c.Trials < 1:
		return fmt.Errorf("%w: trials must be >= 1, got %d", ErrInvalidConfig, c.Trials)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers)
	case c.Tolerance < 0:
		return fmt.Errorf("%w: tolerance must be >= 0, got %g", ErrInvalidConfig, c.Tolerance)
	}
	if !slices.Contains(conv.Strategies(), c.Strategy) {
		return fmt.Errorf("%w: unknown strategy %v", ErrInvalidConfig, c.Strategy)
	}
	return nil
}

// Profile is a list of benchmark cases.
type Profile struct {
	Cases []Config
}

// LoadProfile reads a YAML profile of the form
//
//	defaults:
//	  loops: 500
//	cases:
//	  - name: classic
//	  - name: long-kernel
//	    kernelLength: 512
//	    strategy: fft
//
// Each case starts from DefaultConfig, overlaid with defaults, then with its
// own fields. Unnamed cases are called case-1, case-2, ...
func LoadProfile(r io.Reader) (Profile, error) {
	var doc struct {
		Defaults yaml.Node   `yaml:"defaults"`
		Cases    []yaml.Node `yaml:"cases"`
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return Profile{}, fmt.Errorf("convbench: decode profile: %w", err)
	}
	if len(doc.Cases) == 0 {
		return Profile{}, fmt.Errorf("%w: profile has no cases", ErrInvalidConfig)
	}

	base := DefaultConfig()
	if !doc.Defaults.IsZero() {
		if err := decodeStrict(&doc.Defaults, &base); err != nil {
			return Profile{}, fmt.Errorf("convbench: decode defaults: %w", err)
		}
	}

	profile := Profile{Cases: make([]Config, 0, len(doc.Cases))}
	for i := range doc.Cases {
		cfg := base
		cfg.Name = fmt.Sprintf("case-%d", i+1)
		if err := decodeStrict(&doc.Cases[i], &cfg); err != nil {
			return Profile{}, fmt.Errorf("convbench: decode case %d: %w", i+1, err)
		}
		if err := cfg.Validate(); err != nil {
			return Profile{}, fmt.Errorf("case %q: %w", cfg.Name, err)
		}
		profile.Cases = append(profile.Cases, cfg)
	}

	return profile, nil
}

// decodeStrict decodes node into cfg, rejecting unknown fields.
// yaml.Node.Decode does not honor Decoder.KnownFields, so the node is
// re-encoded and read back through a strict decoder.
func decodeStrict(node *yaml.Node, cfg *Config) error {
	raw, err := yaml.Marshal(node)
	if err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	return dec.Decode(cfg)
}
