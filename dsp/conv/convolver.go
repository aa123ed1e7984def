package conv

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/cwbudde/algo-conv/internal/kernel/arch/generic"
)

// minParallelOutputs is the smallest output length split across workers.
// Shorter outputs are computed on the calling goroutine.
const minParallelOutputs = 256

// Options configures a Convolver.
type Options struct {
	// Strategy selects the computation method. Default StrategyAuto.
	Strategy Strategy

	// Workers is the number of goroutines sharing the output range of one
	// Process call. 0 means runtime.GOMAXPROCS(0). Default 1.
	// Ignored by StrategyFFT.
	Workers int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns single-threaded StrategyAuto options.
func DefaultOptions() Options {
	return Options{
		Strategy: StrategyAuto,
		Workers:  1,
	}
}

// WithStrategy sets the computation strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// Convolver applies one kernel to many inputs. It keeps its own copy of the
// kernel and caches FFT plans per transform size.
//
// A Convolver is not safe for concurrent use.
type Convolver struct {
	kernel   []float32
	reversed []float32
	strategy Strategy
	workers  int

	plans map[int]*fftPlan
}

// NewConvolver creates a Convolver for kernel.
func NewConvolver(kernel []float32, opts ...Option) (*Convolver, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if !o.Strategy.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(o.Strategy))
	}
	if o.Workers < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeWorkers, o.Workers)
	}
	if o.Workers == 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}

	k := make([]float32, len(kernel))
	copy(k, kernel)

	return &Convolver{
		kernel:   k,
		reversed: reversed(k),
		strategy: o.Strategy,
		workers:  o.Workers,
		plans:    make(map[int]*fftPlan),
	}, nil
}

// KernelLen returns the kernel length.
func (c *Convolver) KernelLen() int { return len(c.kernel) }

// Strategy returns the configured strategy.
func (c *Convolver) Strategy() Strategy { return c.strategy }

// Workers returns the resolved worker count.
func (c *Convolver) Workers() int { return c.workers }

// Implementation names the code path Process runs: the registered kernel
// variant for StrategyAuto, "generic" for StrategyNaive, otherwise the
// strategy name.
func (c *Convolver) Implementation() string {
	switch c.strategy {
	case StrategyAuto:
		return Implementation()
	case StrategyNaive:
		return "generic"
	default:
		return c.strategy.String()
	}
}

// Process writes the valid-range convolution of input with the kernel into
// dst[:ValidLen(len(input), KernelLen())].
func (c *Convolver) Process(dst, input []float32) error {
	n, err := check(dst, input, c.kernel)
	if err != nil {
		return err
	}
	dst = dst[:n]

	switch c.strategy {
	case StrategyAuto:
		fn := validImplementation()
		c.split(dst, input, func(d, in []float32) { fn(d, in, c.kernel) })
	case StrategyNaive:
		c.split(dst, input, func(d, in []float32) { generic.Valid(d, in, c.kernel) })
	case StrategyBLAS:
		c.split(dst, input, func(d, in []float32) { validBLAS(d, in, c.reversed) })
	case StrategyFFT:
		plan, err := c.plan(fftSizeFor(len(input), len(c.kernel)))
		if err != nil {
			return err
		}
		return plan.valid(dst, input, len(c.kernel))
	}

	return nil
}

// plan returns the cached FFT plan for size, creating it on first use.
func (c *Convolver) plan(size int) (*fftPlan, error) {
	if p, ok := c.plans[size]; ok {
		return p, nil
	}
	p, err := newFFTPlan(c.kernel, size)
	if err != nil {
		return nil, err
	}
	c.plans[size] = p
	return p, nil
}

// split runs fn over contiguous output chunks, one goroutine per chunk.
// Output i depends only on input[i:i+m], so chunk [lo, hi) needs
// input[lo:hi+m-1] and every sample is computed exactly as in a single call.
func (c *Convolver) split(dst, input []float32, fn func(dst, input []float32)) {
	n := len(dst)
	workers := min(c.workers, n/minParallelOutputs)
	if workers <= 1 {
		fn(dst, input)
		return
	}

	m := len(c.kernel)
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(dst[lo:hi], input[lo:hi+m-1])
		}(lo, hi)
	}
	wg.Wait()
}
