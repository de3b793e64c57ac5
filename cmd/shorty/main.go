// Command shorty demonstrates short-code allocation against an in-memory store.
//
// It shortens a set of targets with the digest strategy, swaps to the
// snowflake strategy at runtime, and shortens the first target again. The
// allocation table, store and filter diagnostics, and collected metrics are
// printed at the end.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/hupe1980/shorty"
	"github.com/hupe1980/shorty/allocator/digest"
	"github.com/hupe1980/shorty/allocator/sequential"
	"github.com/hupe1980/shorty/bloom"
	"github.com/hupe1980/shorty/store"
)

var demoTargets = []string{
	"https://example.com/a",
	"https://example.com/b",
	"https://go.dev/blog/slices-intro",
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := pflag.NewFlagSet("shorty", pflag.ContinueOnError)
	fs.SetInterspersed(true)

	var (
		method     string
		codeLength int
		maxRetries int
		verbose    bool
		bench      int
		qps        int
	)

	fs.StringVarP(&method, "method", "m", "md5", "digest method: md5, sha1 or crc32")
	fs.IntVarP(&codeLength, "length", "l", digest.DefaultCodeLength, "code length in characters")
	fs.IntVar(&maxRetries, "max-retries", digest.DefaultMaxRetries, "collision chain budget per allocation")
	fs.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	fs.IntVar(&bench, "bench", 0, "allocate N random targets concurrently and report throughput")
	fs.IntVar(&qps, "qps", 0, "bench allocation rate limit, 0 means unlimited")

	fs.Usage = func() {
		_, _ = fmt.Fprint(os.Stderr, `Usage: shorty [options] [target ...]

Shortens the given targets with the digest strategy, swaps to the snowflake
strategy at runtime, and shortens the first target again. Without targets, a
built-in demo set is used.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger := shorty.NoopLogger()
	if verbose {
		logger = shorty.NewTextLogger(slog.LevelDebug)
	}

	if bench > 0 {
		return runBench(bench, qps, logger)
	}

	targets := fs.Args()
	if len(targets) == 0 {
		targets = demoTargets
	}

	return runDemo(targets, digest.Method(method), codeLength, maxRetries, logger)
}

func runDemo(targets []string, method digest.Method, codeLength, maxRetries int, logger *shorty.Logger) int {
	ctx := context.Background()

	// Store and filter are shared so codes survive the strategy swap.
	db := store.NewMapStore()
	members := bloom.New(bloom.DefaultSlots)
	metrics := &shorty.BasicMetricsCollector{}

	s, err := shorty.Hash().
		Method(method).
		CodeLength(codeLength).
		MaxRetries(maxRetries).
		Store(db).
		Membership(members).
		Logger(logger).
		Metrics(metrics).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Strategy", "Code", "Target"})

	// Shorten every target, then the first one again to show collision chaining.
	work := append(append([]string{}, targets...), targets[0])
	var firstCode string
	for i, target := range work {
		code, err := s.Shorten(ctx, target)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: shorten %q: %v\n", target, err)
			return 1
		}
		if i == 0 {
			firstCode = code
		}
		t.AppendRow(table.Row{s.Strategy(), code, target})
	}

	// Swap to the snowflake strategy over the same store.
	seq, err := sequential.New(func(o *sequential.Options) {
		o.Store = db
		o.Membership = members
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := s.SetStrategy(seq); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	code, err := s.Shorten(ctx, targets[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: shorten %q: %v\n", targets[0], err)
		return 1
	}
	t.AppendRow(table.Row{s.Strategy(), code, targets[0]})
	t.Render()

	target, err := s.Resolve(ctx, firstCode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: resolve %q: %v\n", firstCode, err)
		return 1
	}
	fmt.Printf("\nresolve %s -> %s\n", firstCode, target)

	stats := metrics.GetStats()
	fmt.Printf("%d codes stored, filter fill %.4f, estimated false positive rate %.6f\n",
		db.Len(), members.FillRatio(), members.EstimatedFalsePositiveRate())
	fmt.Printf("%d shortens, avg latency %s\n",
		stats.ShortenCount, time.Duration(stats.ShortenAvgNanos))

	return 0
}

func runBench(n, qps int, logger *shorty.Logger) int {
	const workers = 8

	ctx := context.Background()
	metrics := &shorty.BasicMetricsCollector{}

	// nil limiter means unlimited.
	var limiter *rate.Limiter
	if qps > 0 {
		limiter = rate.NewLimiter(rate.Limit(qps), qps)
	}

	// Size the filter to the workload so saturation does not skew the run.
	s, err := shorty.Hash().
		Slots(uint(10 * n)).
		Logger(logger).
		Metrics(metrics).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	per := n / workers
	if per == 0 {
		per = 1
	}
	total := per * workers

	start := time.Now()

	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		eg.Go(func() error {
			for i := 0; i < per; i++ {
				if limiter != nil {
					if err := limiter.Wait(ctx); err != nil {
						return err
					}
				}
				if _, err := s.Shorten(ctx, "https://example.com/"+uuid.NewString()); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	elapsed := time.Since(start)
	stats := metrics.GetStats()

	fmt.Printf("allocated %d codes in %s (%.0f codes/s)\n",
		total, elapsed.Round(time.Millisecond), float64(total)/elapsed.Seconds())
	fmt.Printf("avg shorten latency %s, collisions %d\n",
		time.Duration(stats.ShortenAvgNanos), s.Stats().Collisions)

	return 0
}
