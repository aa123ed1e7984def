// Command convbench times valid-range convolution and checks the result
// against the sequential reference.
//
// Usage:
//
//	convbench [flags]
//
// Without -profile it runs a single case built from the flags.
//
// Examples:
//
//	convbench
//	convbench -length 8192 -kernel 512 -strategy fft
//	convbench -workers 4 -loops 200
//	convbench -profile cases.yaml -v
//	convbench -list
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
