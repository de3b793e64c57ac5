package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hupe1980/shorty"
	"github.com/hupe1980/shorty/testutil"
)

func main() {
	seed := int64(4711)
	size := 50000

	rng := testutil.NewRNG(seed)
	targets := rng.URLs(size)

	ctx := context.Background()

	fmt.Println("--- Hash ---")
	fmt.Println("Targets:", size)

	hash := shorty.Hash().
		Slots(uint(10 * size)).
		MustBuild()

	start := time.Now()

	for _, target := range targets {
		if _, err := hash.Shorten(ctx, target); err != nil {
			log.Fatal(err)
		}
	}

	end := time.Since(start)

	printStats(hash)
	fmt.Printf("Seconds: %.2f\n\n", end.Seconds())

	fmt.Println("--- Snowflake ---")

	snow := shorty.Snowflake().
		Slots(uint(10 * size)).
		MustBuild()

	start = time.Now()

	for _, target := range targets {
		if _, err := snow.Shorten(ctx, target); err != nil {
			log.Fatal(err)
		}
	}

	end = time.Since(start)

	printStats(snow)
	fmt.Printf("Seconds: %.2f\n", end.Seconds())
}

func printStats(s *shorty.Shortener) {
	stats := s.Stats()
	fmt.Printf("Strategy: %s, Allocated: %d, Collisions: %d\n", s.Strategy(), stats.Allocated, stats.Collisions)
}
