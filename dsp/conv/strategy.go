package conv

import (
	"fmt"
	"strings"
)

// Strategy selects how the valid-range convolution is computed.
type Strategy int

const (
	// StrategyAuto uses the best exact kernel registered for the CPU.
	StrategyAuto Strategy = iota

	// StrategyNaive uses the portable sequential kernel.
	StrategyNaive

	// StrategyFFT multiplies spectra computed with algo-fft. Not bit-exact.
	StrategyFFT

	// StrategyBLAS computes every output with a BLAS dot product against the
	// reversed kernel. Not bit-exact.
	StrategyBLAS
)

var strategyNames = [...]string{
	StrategyAuto:  "auto",
	StrategyNaive: "naive",
	StrategyFFT:   "fft",
	StrategyBLAS:  "blas",
}

// Strategies lists every supported strategy.
func Strategies() []Strategy {
	return []Strategy{StrategyAuto, StrategyNaive, StrategyFFT, StrategyBLAS}
}

// String returns the lower-case strategy name.
func (s Strategy) String() string {
	if s.valid() {
		return strategyNames[s]
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Exact reports whether the strategy is bit-identical to StrategyNaive.
func (s Strategy) Exact() bool {
	return s == StrategyAuto || s == StrategyNaive
}

func (s Strategy) valid() bool {
	return s >= StrategyAuto && s <= StrategyBLAS
}

// ParseStrategy parses a strategy name, ignoring case and surrounding space.
func ParseStrategy(name string) (Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for s, n := range strategyNames {
		if n == key {
			return Strategy(s), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
