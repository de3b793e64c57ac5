package shorty_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/shorty"
	"github.com/hupe1980/shorty/allocator/sequential"
	"github.com/hupe1980/shorty/store"
)

// Example_hashBuilder demonstrates creating a hash-based shortener with the fluent builder.
func Example_hashBuilder() {
	// Create hash strategy with fluent builder
	s, err := shorty.Hash().
		MD5().            // Digest method
		CodeLength(7).    // Code length in characters
		MaxRetries(1000). // Collision chain budget
		Build()
	if err != nil {
		log.Fatal(err)
	}

	code, err := s.Shorten(context.Background(), "https://example.com/a")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(code)
	// Output: cd69b81
}

// Example_snowflakeBuilder demonstrates creating a snowflake-based shortener.
func Example_snowflakeBuilder() {
	s, err := shorty.Snowflake().
		Build()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// Codes are unique per call, so identical targets get distinct codes.
	code, err := s.Shorten(ctx, "https://example.com/a")
	if err != nil {
		log.Fatal(err)
	}

	target, err := s.Resolve(ctx, code)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(target)
	// Output: https://example.com/a
}

// Example_batchShorten demonstrates shortening many targets in one call.
func Example_batchShorten() {
	s, err := shorty.Hash().
		Build()
	if err != nil {
		log.Fatal(err)
	}

	result := s.BatchShorten(context.Background(), []string{
		"https://example.com/a",
		"https://example.com/b",
	})
	for i, code := range result.Codes {
		if result.Errors[i] != nil {
			log.Fatal(result.Errors[i])
		}
		fmt.Println(code)
	}
	// Output:
	// cd69b81
	// 43cc12e
}

// Example_strategySwap demonstrates swapping the allocation strategy at runtime.
// Sharing one store keeps previously issued codes resolvable.
func Example_strategySwap() {
	db := store.NewMapStore()

	s, err := shorty.Hash().
		Store(db).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	code, err := s.Shorten(ctx, "https://example.com/a")
	if err != nil {
		log.Fatal(err)
	}

	seq, err := sequential.New(func(o *sequential.Options) {
		o.Store = db
	})
	if err != nil {
		log.Fatal(err)
	}
	if err := s.SetStrategy(seq); err != nil {
		log.Fatal(err)
	}

	target, err := s.Resolve(ctx, code)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(s.Strategy())
	fmt.Println(target)
	// Output:
	// sequential
	// https://example.com/a
}

// Example_metrics demonstrates collecting operational metrics.
func Example_metrics() {
	metrics := &shorty.BasicMetricsCollector{}

	s, err := shorty.Hash().
		Metrics(metrics).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	for _, target := range []string{"https://example.com/a", "https://example.com/b"} {
		if _, err := s.Shorten(ctx, target); err != nil {
			log.Fatal(err)
		}
	}

	stats := metrics.GetStats()
	fmt.Printf("shortens: %d, errors: %d\n", stats.ShortenCount, stats.ShortenErrors)
	// Output: shortens: 2, errors: 0
}
