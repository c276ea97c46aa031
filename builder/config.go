// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng          = nil   (Random fails with ErrNeedRandSource)
//   • barriers     = 4
//   • startColumns = 2
//   • goalColumns  = 2
//   • attempts     = 1     (no reachability retry)

package builder

const (
	defaultBarriers     = 4
	defaultStartColumns = 2
	defaultGoalColumns  = 2
	defaultAttempts     = 1
)

// builderConfig aggregates all knobs used by Random.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	rng          Rand
	barriers     int
	startColumns int
	goalColumns  int
	attempts     int
	reachable    bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		rng:          nil,
		barriers:     defaultBarriers,
		startColumns: defaultStartColumns,
		goalColumns:  defaultGoalColumns,
		attempts:     defaultAttempts,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
