// SPDX-License-Identifier: MIT

// Package builder constructs validated gridgraph mazes for the solvers.
//
// The package offers two entry points:
//
//   - Random(rows, cols, opts...): a stochastic maze driven by an injected RNG.
//     – start: uniform over the first StartColumns columns (default 2).
//     – goal:  uniform over the last GoalColumns columns (default 2), never the start.
//     – barriers: Barriers distinct cells (default 4) drawn from the rest of the grid.
//     – WithReachableGoal(n) retries up to n times until the goal is reachable.
//   - FromLayout(lines): a deterministic maze parsed from rows of text, for
//     fixtures and examples.
//
// Cell draws use the column-major node number of gridgraph: a node n on a grid
// with R rows decodes to (x, y) = (n / R, n % R). "The first two columns" is
// therefore the node range [0, 2R).
//
// Guarantees:
//
//   - Determinism: the same rows, cols, options and seed produce the same grid.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime validation problems surface as sentinel errors wrapped with %w.
//
// Complexity:
//
//   - Random: O(W×H) per attempt (candidate list + grid allocation), plus
//     O(W×H×8) per attempt when WithReachableGoal is set.
//   - FromLayout: O(W×H).
package builder
