// Package testutil provides testing utilities for Shorty.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random target URLs, building skewed
// workloads, and verifying code uniqueness.
//
// # Random Target Generation
//
//	rng := testutil.NewRNG(seed)
//	target := rng.URL()
//	targets := rng.URLs(1000)
//
// # Skewed Workloads
//
//	targets := rng.ZipfURLs(10000, 100, 1.5) // heavy-tail draws over 100 distinct targets
//
// # Uniqueness Verification
//
//	ok := testutil.AllDistinct(codes)
package testutil
