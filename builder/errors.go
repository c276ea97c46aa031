// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`.
//   • Runtime paths never panic; validation panics are confined to the
//     option constructors (WithX...).

package builder

import "errors"

// ErrTooSmall indicates that rows, cols or a column band is too small (or too
// wide) for the requested maze.
var ErrTooSmall = errors.New("builder: grid too small")

// ErrTooManyBarriers indicates that the barrier count cannot fit in the grid
// once start and goal are placed.
var ErrTooManyBarriers = errors.New("builder: too many barriers")

// ErrNeedRandSource indicates that Random was called without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that WithReachableGoal exhausted its attempts
// without drawing a maze whose goal is reachable from its start.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadLayout indicates a malformed text layout: ragged rows, an unknown rune,
// or a missing/duplicate start or goal.
var ErrBadLayout = errors.New("builder: invalid layout")
