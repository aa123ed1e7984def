package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-conv/dsp/conv"
	"github.com/cwbudde/algo-conv/internal/cpu"
	"github.com/cwbudde/algo-conv/internal/kernel/registry"
	"github.com/cwbudde/algo-conv/measure/convbench"
)

const (
	exitOK          = 0
	exitInvalid     = 1
	exitUsage       = 2
	exitInterrupted = 130
)

// caseFlags describe a single case and conflict with -profile.
var caseFlags = []string{"length", "kernel", "loops", "trials", "strategy", "workers", "seed"}

// run parses args, executes the cases and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	def := convbench.DefaultConfig()

	fs := flag.NewFlagSet("convbench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	length := fs.Int("length", def.Length, "input length in samples")
	kernelLen := fs.Int("kernel", def.KernelLength, "kernel length in samples")
	loops := fs.Int("loops", def.Loops, "convolutions per trial")
	trials := fs.Int("trials", def.Trials, "number of timed trials")
	strategy := fs.String("strategy", def.Strategy.String(), "convolution strategy (see -list)")
	workers := fs.Int("workers", def.Workers, "goroutines per convolution, 0 for GOMAXPROCS")
	seed := fs.Int64("seed", def.Seed, "seed for the generated input and kernel")
	profile := fs.String("profile", "", "YAML file with benchmark cases")
	verbose := fs.Bool("v", false, "log every trial")
	list := fs.Bool("list", false, "list strategies and kernel implementations")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: convbench [flags]\n\n")
		fmt.Fprintf(stderr, "Times valid-range convolution and validates it against the sequential reference.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  convbench -length 8192 -kernel 512 -strategy fft\n")
		fmt.Fprintf(stderr, "  convbench -profile cases.yaml -v\n")
		fmt.Fprintf(stderr, "  convbench -list\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if *list {
		printList(stdout)
		return exitOK
	}

	logger := logrus.New()
	logger.SetOutput(stderr)
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}

	if fs.NArg() > 0 {
		logger.WithField("args", fs.Args()).Error("unexpected positional arguments")
		return exitUsage
	}

	var cases []convbench.Config
	if *profile != "" {
		if conflicts := setFlags(fs, caseFlags); len(conflicts) > 0 {
			logger.WithField("flags", conflicts).Error("case flags cannot be combined with -profile")
			return exitUsage
		}

		loaded, err := loadProfile(*profile)
		if err != nil {
			logger.WithError(err).WithField("profile", *profile).Error("cannot load profile")
			return exitUsage
		}
		cases = loaded.Cases
	} else {
		s, err := conv.ParseStrategy(*strategy)
		if err != nil {
			logger.WithError(err).Error("invalid -strategy")
			return exitUsage
		}
		cases = []convbench.Config{convbench.ApplyOptions(
			convbench.WithLengths(*length, *kernelLen),
			convbench.WithLoops(*loops),
			convbench.WithTrials(*trials),
			convbench.WithStrategy(s),
			convbench.WithWorkers(*workers),
			convbench.WithSeed(*seed),
		)}
	}

	reports := make([]convbench.Report, 0, len(cases))
	for _, cfg := range cases {
		report, err := convbench.Run(ctx, cfg, logger)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			logger.WithField("case", cfg.Name).Warn("benchmark interrupted")
			return exitInterrupted
		}
		if err != nil {
			logger.WithError(err).WithField("case", cfg.Name).Error("benchmark failed")
			return exitUsage
		}
		reports = append(reports, report)
	}

	printReports(stdout, reports)

	for _, r := range reports {
		if !r.Valid {
			return exitInvalid
		}
	}
	return exitOK
}

// setFlags returns the names among names that were set on the command line.
func setFlags(fs *flag.FlagSet, names []string) []string {
	var set []string
	fs.Visit(func(f *flag.Flag) {
		if slices.Contains(names, f.Name) {
			set = append(set, "-"+f.Name)
		}
	})
	return set
}

func loadProfile(path string) (convbench.Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return convbench.Profile{}, err
	}
	defer f.Close()

	return convbench.LoadProfile(f)
}

func printList(w io.Writer) {
	features := cpu.DetectFeatures()

	fmt.Fprintln(w, "strategies:")
	for _, s := range conv.Strategies() {
		exact := "approximate"
		if s.Exact() {
			exact = "bit-exact"
		}
		fmt.Fprintf(w, "  %-6s %s\n", s, exact)
	}

	fmt.Fprintf(w, "\nkernels (%s, selected: %s):\n", features.Architecture, conv.Implementation())
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  name\tsimd\tpriority\tsupported")
	for _, e := range registry.Global.ListEntries() {
		fmt.Fprintf(tw, "  %s\t%s\t%d\t%t\n", e.Name, e.SIMDLevel, e.Priority, cpu.Supports(features, e.SIMDLevel))
	}
	tw.Flush()
}

func printReports(w io.Writer, reports []convbench.Report) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "case\tstrategy\timpl\tlength\tkernel\tmin us/loop\tmean us/loop\tstddev\tvalid\tmax err")
	fmt.Fprintln(tw, "----\t--------\t----\t------\t------\t-----------\t------------\t------\t-----\t-------")
	for _, r := range reports {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%.3f\t%.3f\t%.3f\t%t\t%.3g\n",
			r.Config.Name,
			r.Config.Strategy,
			r.Implementation,
			r.Config.Length,
			r.Config.KernelLength,
			r.Min,
			r.Mean,
			r.Timing.StdDev,
			r.Valid,
			r.MaxAbsError,
		)
	}
	tw.Flush()
}
