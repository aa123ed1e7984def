// Package convbench times valid-range convolution. A case runs a number of
// trials, each calling the convolution Loops times back to back, reports the
// fastest per-loop time and checks the final output against the sequential
// reference kernel.
//
// Repetition lives here rather than in package conv; the library exposes
// single calls only.
//
// # Usage
//
//	cfg := convbench.ApplyOptions(convbench.WithStrategy(conv.StrategyFFT))
//	report, err := convbench.Run(ctx, cfg, logrus.StandardLogger())
//	fmt.Printf("%.3f us/loop, valid=%v\n", report.Min, report.Valid)
//
// Benchmark cases can also be loaded from a YAML profile, see LoadProfile.
package convbench
