// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Random itself never panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "fmt"

// Option customizes Random by mutating a builderConfig before construction.
type Option func(*builderConfig)

// WithRand injects the random source used for every draw.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand from seed (seed 0 maps to a fixed default).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithBarriers sets how many distinct barrier cells Random places.
// Panics on n < 0.
func WithBarriers(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("builder: WithBarriers(%d)", n))
	}
	return func(c *builderConfig) {
		c.barriers = n
	}
}

// WithStartColumns sets the width of the leftmost column band the start is
// drawn from. Panics on k < 1.
func WithStartColumns(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("builder: WithStartColumns(%d)", k))
	}
	return func(c *builderConfig) {
		c.startColumns = k
	}
}

// WithGoalColumns sets the width of the rightmost column band the goal is
// drawn from. Panics on k < 1.
func WithGoalColumns(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("builder: WithGoalColumns(%d)", k))
	}
	return func(c *builderConfig) {
		c.goalColumns = k
	}
}

// WithReachableGoal makes Random redraw the whole maze, up to attempts times,
// until the goal is king-connected to the start. Panics on attempts < 1.
func WithReachableGoal(attempts int) Option {
	if attempts < 1 {
		panic(fmt.Sprintf("builder: WithReachableGoal(%d)", attempts))
	}
	return func(c *builderConfig) {
		c.reachable = true
		c.attempts = attempts
	}
}
