package dfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/bfs"
	"github.com/katalvlaran/lvmaze/builder"
	"github.com/katalvlaran/lvmaze/dfs"
	"github.com/katalvlaran/lvmaze/gridgraph"
)

func mustLayout(t *testing.T, lines ...string) *gridgraph.Grid {
	t.Helper()
	g, err := builder.FromLayout(lines)
	require.NoError(t, err)

	return g
}

// requireValidPath checks endpoints, adjacency and barrier-freedom of path.
func requireValidPath(t *testing.T, g *gridgraph.Grid, start gridgraph.Cell, path []gridgraph.Cell) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0], "path must begin at start")
	require.Equal(t, g.Goal(), path[len(path)-1], "path must end at goal")
	for i := 1; i < len(path); i++ {
		require.True(t, gridgraph.Adjacent(path[i-1], path[i]), "step %v→%v", path[i-1], path[i])
		require.False(t, g.IsBarrier(path[i]), "%v is a barrier", path[i])
	}
}

func TestSolve_NilGrid(t *testing.T) {
	res, err := dfs.Solve(nil, gridgraph.Cell{})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGridNil)
}

func TestSolve_BadStart(t *testing.T) {
	g := mustLayout(t, "SX", ".G")

	_, err := dfs.Solve(g, gridgraph.Cell{X: -1, Y: 0})
	assert.ErrorIs(t, err, dfs.ErrStartOutOfBounds)

	_, err = dfs.Solve(g, gridgraph.Cell{X: 1, Y: 0})
	assert.ErrorIs(t, err, dfs.ErrStartBlocked)
}

// TestSolve_StartIsGoal: one visited cell, path of one.
func TestSolve_StartIsGoal(t *testing.T) {
	c := gridgraph.Cell{X: 2, Y: 3}
	g, err := gridgraph.NewGrid(6, 6, c, c, nil)
	require.NoError(t, err)

	res, err := dfs.Solve(g, g.Start())
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []gridgraph.Cell{c}, res.Path)
	assert.Equal(t, 1, res.TimeToGoal)
	assert.Len(t, res.Visited, 1)
}

// TestSolve_OpenGrid pins the snake-like trace on an empty 6×6 grid: DFS
// sweeps every cell before reaching the far corner.
func TestSolve_OpenGrid(t *testing.T) {
	g, err := gridgraph.NewGrid(6, 6, gridgraph.Cell{}, gridgraph.Cell{X: 5, Y: 5}, nil)
	require.NoError(t, err)

	res, err := dfs.Solve(g, g.Start())
	require.NoError(t, err)
	require.True(t, res.Found)
	requireValidPath(t, g, g.Start(), res.Path)

	assert.Equal(t, 36, res.TimeToGoal)
	assert.Len(t, res.Path, 32)
	assert.Equal(t, []gridgraph.Cell{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}, {X: 5, Y: 0},
		{X: 4, Y: 1}, {X: 3, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}, res.Path[:11])
	assert.Equal(t, []gridgraph.Cell{{X: 5, Y: 4}, {X: 4, Y: 5}, {X: 5, Y: 5}}, res.Path[29:])
}

// TestSolve_Fixture pins the exact path on a barrier-strewn maze.
func TestSolve_Fixture(t *testing.T) {
	g := mustLayout(t,
		"S.X...",
		".X..X.",
		"..X...",
		"...X..",
		"......",
		"....XG",
	)
	res, err := dfs.Solve(g, g.Start())
	require.NoError(t, err)
	require.True(t, res.Found)

	want := []gridgraph.Cell{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2},
		{X: 2, Y: 1}, {X: 3, Y: 0}, {X: 4, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 1},
		{X: 4, Y: 2}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 2, Y: 3}, {X: 1, Y: 3},
		{X: 0, Y: 3}, {X: 0, Y: 4}, {X: 1, Y: 4}, {X: 2, Y: 4}, {X: 3, Y: 4},
		{X: 4, Y: 3}, {X: 5, Y: 2}, {X: 5, Y: 3}, {X: 4, Y: 4}, {X: 5, Y: 4},
		{X: 5, Y: 5},
	}
	assert.Equal(t, want, res.Path)
	assert.Equal(t, 26, res.TimeToGoal)
	requireValidPath(t, g, g.Start(), res.Path)
}

// TestSolve_NotShortest shows DFS settling for a longer route than BFS.
func TestSolve_NotShortest(t *testing.T) {
	g := mustLayout(t,
		"S.X.",
		"..X.",
		".XX.",
		"...G",
	)
	res, err := dfs.Solve(g, g.Start())
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []gridgraph.Cell{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 2},
		{X: 0, Y: 3}, {X: 1, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 2}, {X: 3, Y: 3},
	}, res.Path)
	assert.Equal(t, 12, res.TimeToGoal)

	ref, err := bfs.Solve(g, g.Start())
	require.NoError(t, err)
	shortest, ok := ref.Distance(g.Goal())
	require.True(t, ok)
	assert.Equal(t, 5, shortest)
	assert.Greater(t, len(res.Path)-1, shortest)
}

// TestSolve_GoalWalledOff: every neighbor of the goal is a barrier.
func TestSolve_GoalWalledOff(t *testing.T) {
	g := mustLayout(t,
		"S....",
		".XXX.",
		".XGX.",
		".XXX.",
		".....",
	)
	res, err := dfs.Solve(g, g.Start())
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Empty(t, res.Path)
	assert.Equal(t, 16, res.TimeToGoal, "the whole outer ring is searched")
	assert.False(t, res.Visited[g.Goal()])
}

// TestSolve_NeverRevisits checks Visited/Order bookkeeping.
func TestSolve_NeverRevisits(t *testing.T) {
	g := mustLayout(t,
		"S..",
		".XX",
		".XG",
	)
	res, err := dfs.Solve(g, g.Start())
	require.NoError(t, err)
	require.False(t, res.Found)

	seen := map[gridgraph.Cell]bool{}
	for _, c := range res.Order {
		require.False(t, seen[c], "%v visited twice", c)
		seen[c] = true
	}
	assert.Equal(t, seen, res.Visited)
	assert.Equal(t, len(res.Order), res.TimeToGoal)
}

// TestSolve_MatchesReachability: on an undirected grid, DFS without
// unmarking fails exactly when the goal is unreachable.
func TestSolve_MatchesReachability(t *testing.T) {
	var found, missed int
	for seed := int64(1); seed <= 300; seed++ {
		g, err := builder.Random(6, 6, builder.WithSeed(seed), builder.WithBarriers(12))
		require.NoError(t, err)

		res, err := dfs.Solve(g, g.Start())
		require.NoError(t, err)
		ref, err := bfs.Solve(g, g.Start())
		require.NoError(t, err)

		_, reachable := ref.Distance(g.Goal())
		require.Equal(t, reachable, res.Found, "seed %d", seed)
		if res.Found {
			found++
			requireValidPath(t, g, g.Start(), res.Path)
		} else {
			missed++
			require.Empty(t, res.Path)
			require.Equal(t, len(ref.Order), res.TimeToGoal, "seed %d: DFS must exhaust the start region", seed)
		}
	}
	assert.Positive(t, found)
	t.Logf("reachable=%d unreachable=%d", found, missed)
}

func TestSolve_Hooks(t *testing.T) {
	g := mustLayout(t,
		"S..",
		".XX",
		".XG",
	)

	var visits, backtracks []gridgraph.Cell
	res, err := dfs.Solve(g, g.Start(),
		dfs.WithOnVisit(func(c gridgraph.Cell) error { visits = append(visits, c); return nil }),
		dfs.WithOnBacktrack(func(c gridgraph.Cell) error { backtracks = append(backtracks, c); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, res.Order, visits)
	assert.ElementsMatch(t, visits, backtracks, "every cell is a dead end")
	assert.Equal(t, g.Start(), backtracks[len(backtracks)-1], "start is abandoned last")

	halt := errors.New("halt")
	_, err = dfs.Solve(g, g.Start(), dfs.WithOnVisit(func(c gridgraph.Cell) error {
		if c == (gridgraph.Cell{X: 1, Y: 0}) {
			return halt
		}
		return nil
	}))
	assert.ErrorIs(t, err, halt)

	_, err = dfs.Solve(g, g.Start(), dfs.WithOnBacktrack(func(gridgraph.Cell) error { return halt }))
	assert.ErrorIs(t, err, halt)
}

// TestSolve_DoesNotMutateGrid runs twice and compares results.
func TestSolve_DoesNotMutateGrid(t *testing.T) {
	g, err := builder.Random(8, 8, builder.WithSeed(99), builder.WithBarriers(10))
	require.NoError(t, err)

	a, err := dfs.Solve(g, g.Start())
	require.NoError(t, err)
	b, err := dfs.Solve(g, g.Start())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
