package convbench

import (
	"context"
	"fmt"
	"math"
	"time"

	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-conv/dsp/conv"
	"github.com/cwbudde/algo-conv/dsp/signal"
	"github.com/cwbudde/algo-conv/stats/timing"
)

// Report is the outcome of one benchmark case.
type Report struct {
	// ID identifies this run in logs.
	ID string

	Config Config

	// Implementation is the code path that ran, see conv.Convolver.Implementation.
	Implementation string

	// PerLoop holds the microseconds per convolution of every trial.
	PerLoop []float64

	// Min and Mean summarize PerLoop in microseconds. Min is the headline
	// figure.
	Min  float64
	Mean float64

	// Timing holds the full statistics of PerLoop.
	Timing timing.Summary

	// MaxAbsError is the largest deviation from the sequential reference.
	MaxAbsError float64

	// Valid reports whether the final output passed validation.
	Valid bool
}

// Run executes one benchmark case. The input and kernel are deterministic
// noise derived from cfg.Seed. ctx is checked between trials. A nil logger
// uses the logrus standard logger.
func Run(ctx context.Context, cfg Config, logger logrus.FieldLogger) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	input, err := signal.NewGenerator(signal.WithSeed(cfg.Seed)).Noise(1, cfg.Length)
	if err != nil {
		return Report{}, fmt.Errorf("convbench: input: %w", err)
	}
	kernel, err := signal.NewGenerator(signal.WithSeed(cfg.Seed+1)).Noise(1, cfg.KernelLength)
	if err != nil {
		return Report{}, fmt.Errorf("convbench: kernel: %w", err)
	}

	c, err := conv.NewConvolver(kernel, conv.WithStrategy(cfg.Strategy), conv.WithWorkers(cfg.Workers))
	if err != nil {
		return Report{}, err
	}

	report := Report{
		ID:             uuid.NewString(),
		Config:         cfg,
		Implementation: c.Implementation(),
	}
	log := logger.WithFields(logrus.Fields{
		"run":            report.ID,
		"case":           cfg.Name,
		"strategy":       cfg.Strategy.String(),
		"implementation": report.Implementation,
	})
	log.WithFields(logrus.Fields{
		"length": cfg.Length,
		"kernel": cfg.KernelLength,
		"loops":  cfg.Loops,
		"trials": cfg.Trials,
	}).Info("running tests")

	dst := make([]float32, conv.ValidLen(cfg.Length, cfg.KernelLength))
	totals := make([]float64, cfg.Trials)
	for trial := range cfg.Trials {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}

		start := time.Now()
		if err := RepeatWith(c, dst, input, cfg.Loops); err != nil {
			return Report{}, err
		}
		totals[trial] = float64(time.Since(start).Nanoseconds())

		log.WithFields(logrus.Fields{
			"trial":   trial,
			"totalNs": totals[trial],
		}).Debug("trial finished")
	}

	// ns per trial -> us per loop
	report.PerLoop = make([]float64, cfg.Trials)
	vecmath.ScaleBlock(report.PerLoop, totals, 1/(1e3*float64(cfg.Loops)))
	report.Timing = timing.Summarize(report.PerLoop)
	report.Min, report.Mean = report.Timing.Min, report.Timing.Mean

	ref := make([]float32, len(dst))
	if err := conv.ValidNaive(ref, input, kernel); err != nil {
		return Report{}, err
	}
	report.MaxAbsError, report.Valid = validate(dst, ref, input, kernel, cfg)

	entry := log.WithFields(logrus.Fields{
		"minUsPerLoop":  report.Min,
		"meanUsPerLoop": report.Mean,
		"stdDevUs":      report.Timing.StdDev,
		"bestTrial":     report.Timing.MinPos,
		"maxAbsError":   report.MaxAbsError,
	})
	if report.Valid {
		entry.Info("convolution is valid")
	} else {
		entry.Warn("computed convolution is incorrect")
	}

	return report, nil
}

// validate compares got with the sequential reference. Exact strategies
// must match bit for bit; others must stay within cfg.Tolerance scaled by
// the largest output magnitude the data allows.
func validate(got, ref, input, kernel []float32, cfg Config) (maxErr float64, ok bool) {
	bitExact := true
	for i := range got {
		if math.Float32bits(got[i]) != math.Float32bits(ref[i]) {
			bitExact = false
		}
		maxErr = math.Max(maxErr, math.Abs(float64(got[i])-float64(ref[i])))
	}

	if cfg.Strategy.Exact() {
		return maxErr, bitExact
	}

	var peak, mass float64
	for _, v := range input {
		peak = math.Max(peak, math.Abs(float64(v)))
	}
	for _, v := range kernel {
		mass += math.Abs(float64(v))
	}
	return maxErr, maxErr <= cfg.Tolerance*peak*mass
}
