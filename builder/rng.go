// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// rng.go — RNG utilities for stochastic maze construction.
//
// Goals:
//   - Determinism: same seed ⇒ identical mazes across platforms.
//   - Injection: any source with Intn works, so tests can script the draws.
//   - No time-based sources hidden anywhere; callers choose the seed.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a Rand across goroutines.

package builder

import "math/rand"

// Rand is the random source consumed by Random. *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a uniform int in [0, n). n is always > 0.
	Intn(n int) int
}

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// pickDistinct moves k uniformly chosen elements of a to its front with a
// partial Fisher–Yates shuffle and returns a[:k].
// Exactly k draws are consumed from r.
//
// Complexity: O(k) time, O(1) extra space.
func pickDistinct(a []int, k int, r Rand) []int {
	var i, j int
	for i = 0; i < k; i++ {
		j = i + r.Intn(len(a)-i)
		a[i], a[j] = a[j], a[i]
	}

	return a[:k]
}
