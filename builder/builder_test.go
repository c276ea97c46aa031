// Package builder_test contains functional tests for Random and FromLayout,
// verifying draw order, validation errors and determinism.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/builder"
	"github.com/katalvlaran/lvmaze/gridgraph"
)

// scripted is a fake Rand replaying fixed draws.
type scripted struct {
	t     *testing.T
	draws []int
	next  int
}

func (s *scripted) Intn(n int) int {
	s.t.Helper()
	require.Less(s.t, s.next, len(s.draws), "script exhausted")
	v := s.draws[s.next]
	s.next++
	require.True(s.t, v >= 0 && v < n, "draw %d outside [0,%d)", v, n)

	return v
}

func script(t *testing.T, draws ...int) *scripted {
	return &scripted{t: t, draws: draws}
}

// TestRandom_DrawOrder pins the start → goal → barriers draw sequence.
func TestRandom_DrawOrder(t *testing.T) {
	r := script(t, 7, 11, 0, 0, 0, 0)
	g, err := builder.Random(6, 6, builder.WithRand(r))
	require.NoError(t, err)

	assert.Equal(t, gridgraph.Cell{X: 1, Y: 1}, g.Start(), "node 7 on 6 rows")
	assert.Equal(t, gridgraph.Cell{X: 5, Y: 5}, g.Goal(), "node 24+11")
	assert.Equal(t, []gridgraph.Cell{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}}, g.Barriers())
	assert.Equal(t, 6, r.next, "every draw consumed")
}

// TestRandom_GoalSkipsStart covers bands that overlap on narrow grids.
func TestRandom_GoalSkipsStart(t *testing.T) {
	opts := func(r builder.Rand) []builder.Option {
		return []builder.Option{
			builder.WithRand(r),
			builder.WithBarriers(0),
			builder.WithStartColumns(3),
			builder.WithGoalColumns(2),
		}
	}

	g, err := builder.Random(1, 3, opts(script(t, 2, 0))...)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Cell{X: 2, Y: 0}, g.Start())
	assert.Equal(t, gridgraph.Cell{X: 1, Y: 0}, g.Goal())

	g, err = builder.Random(1, 3, opts(script(t, 1, 0))...)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Cell{X: 1, Y: 0}, g.Start())
	assert.Equal(t, gridgraph.Cell{X: 2, Y: 0}, g.Goal(), "draw past the start node")
}

func TestRandom_ReachableGoal(t *testing.T) {
	// Attempt 1 walls off the middle column; attempt 2 leaves a diagonal open.
	draws := []int{0, 0, 1, 1, 0, 0, 0, 0}
	opts := []builder.Option{
		builder.WithBarriers(2),
		builder.WithStartColumns(1),
		builder.WithGoalColumns(1),
	}

	_, err := builder.Random(2, 3, append(opts, builder.WithRand(script(t, draws...)), builder.WithReachableGoal(1))...)
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	r := script(t, draws...)
	g, err := builder.Random(2, 3, append(opts, builder.WithRand(r), builder.WithReachableGoal(3))...)
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Cell{{X: 1, Y: 0}, {X: 0, Y: 1}}, g.Barriers())
	assert.True(t, g.Connected(g.Start(), g.Goal()))
	assert.Equal(t, len(draws), r.next)
}

func TestRandom_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		opts       []builder.Option
		err        error
	}{
		{"NoRNG", 6, 6, nil, builder.ErrNeedRandSource},
		{"ZeroRows", 0, 6, []builder.Option{builder.WithSeed(1)}, builder.ErrTooSmall},
		{"SingleCell", 1, 1, []builder.Option{builder.WithSeed(1)}, builder.ErrTooSmall},
		{"BandTooWide", 6, 3, []builder.Option{builder.WithSeed(1), builder.WithGoalColumns(4)}, builder.ErrTooSmall},
		{"TooManyBarriers", 2, 2, []builder.Option{builder.WithSeed(1), builder.WithBarriers(3)}, builder.ErrTooManyBarriers},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.Random(tc.rows, tc.cols, tc.opts...)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithBarriers(-1) })
	assert.Panics(t, func() { builder.WithStartColumns(0) })
	assert.Panics(t, func() { builder.WithGoalColumns(0) })
	assert.Panics(t, func() { builder.WithReachableGoal(0) })
}

// TestRandom_SeededInvariants sweeps seeds on the default 6×6 setup.
func TestRandom_SeededInvariants(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		g, err := builder.Random(6, 6, builder.WithSeed(seed))
		require.NoError(t, err)

		start, goal := g.Start(), g.Goal()
		require.Less(t, start.X, 2, "seed %d", seed)
		require.GreaterOrEqual(t, goal.X, 4, "seed %d", seed)

		bs := g.Barriers()
		require.Len(t, bs, 4, "seed %d", seed)
		for _, b := range bs {
			require.NotEqual(t, start, b)
			require.NotEqual(t, goal, b)
		}

		again, err := builder.Random(6, 6, builder.WithSeed(seed))
		require.NoError(t, err)
		require.Equal(t, g, again, "seed %d not deterministic", seed)
	}
}

func TestFromLayout(t *testing.T) {
	g, err := builder.FromLayout([]string{
		"S.X",
		".#.",
		"..E",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, gridgraph.Cell{X: 0, Y: 0}, g.Start())
	assert.Equal(t, gridgraph.Cell{X: 2, Y: 2}, g.Goal())
	assert.Equal(t, []gridgraph.Cell{{X: 2, Y: 0}, {X: 1, Y: 1}}, g.Barriers())
}

func TestFromLayout_Errors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		err   error
	}{
		{"Empty", nil, builder.ErrTooSmall},
		{"Ragged", []string{"S..", "G."}, builder.ErrBadLayout},
		{"UnknownRune", []string{"S?G"}, builder.ErrBadLayout},
		{"TwoStarts", []string{"SSG"}, builder.ErrBadLayout},
		{"TwoGoals", []string{"SGE"}, builder.ErrBadLayout},
		{"NoGoal", []string{"S.."}, builder.ErrBadLayout},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.FromLayout(tc.lines)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}
