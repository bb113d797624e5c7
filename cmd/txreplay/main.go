// Command txreplay replays a transaction stream and prints the final
// account balances as CSV on stdout.
//
// Usage:
//
//	txreplay [flags] <file> [gen|genrandom]
//
// With no operation the transactions in <file> are processed and the balance
// summary is written to stdout. The "gen" operation writes a weighted
// synthetic stream to <file>; "genrandom" writes a fully random one.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/finvolt/txreplay"
	"github.com/finvolt/txreplay/gen"
	"github.com/finvolt/txreplay/source"
)

func main() {
	var (
		workers = flag.Int("workers", 0, "worker count (0 = number of CPUs)")
		buffer  = flag.Int("buffer", 0, "per-worker channel capacity (0 = default)")
		count   = flag.Int("count", 10_000_000, "records to generate (gen/genrandom)")
		seed    = flag.Uint64("seed", 42, "generator seed (gen/genrandom)")
		verbose = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 || flag.NArg() > 2 {
		usage()
		os.Exit(2)
	}
	file := flag.Arg(0)

	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{"stderr"}
	if *verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	zlog, err := zcfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = zlog.Sync() }()
	logger := txreplay.NewZapLogger(zlog.Sugar())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch op := flag.Arg(1); op {
	case "":
		err = process(ctx, file, *workers, *buffer, logger)
	case "gen":
		err = generate(ctx, file, gen.NewRealistic(*seed), *count)
	case "genrandom":
		err = generate(ctx, file, gen.NewUniform(*seed), *count)
	default:
		err = fmt.Errorf("unknown operation %q (want gen or genrandom)", op)
	}
	if err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: txreplay [flags] <file> [gen|genrandom]\n\n")
	fmt.Fprintf(os.Stderr, "Processes the transactions in <file> and writes the balance summary\n")
	fmt.Fprintf(os.Stderr, "to stdout, or generates a synthetic stream into <file>.\n\nFlags:\n")
	flag.PrintDefaults()
}

// process replays the CSV stream in file and writes balances to stdout.
func process(ctx context.Context, file string, workers int, buffer int, logger txreplay.Logger) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	cfg := txreplay.DefaultConfig()
	if workers > 0 {
		cfg.Workers = workers
	}
	if buffer > 0 {
		cfg.ChannelCapacity = buffer
	}

	eng, err := txreplay.New(&cfg, txreplay.WithLogger(logger))
	if err != nil {
		return err
	}

	outputs, err := eng.Run(ctx, source.NewCSV(f))
	if err != nil {
		return err
	}

	w := source.NewOutputWriter(os.Stdout)
	for _, out := range outputs {
		if err := w.Write(out); err != nil {
			return err
		}
	}

	return w.Flush()
}

// generate writes n synthetic transactions to file.
func generate(ctx context.Context, file string, g gen.Generator, n int) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	w := source.NewTransactionWriter(f)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.Write(g.Next()); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	return f.Close()
}
