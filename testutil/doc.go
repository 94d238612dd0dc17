// Package testutil provides testing utilities for succtree.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random number generator and a
// brute-force reference model for verifying successor and range query
// results against ground truth.
package testutil
