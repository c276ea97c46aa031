// Package render prints a gridgraph.Grid as text, one line per row, with an
// optional highlighted path.
//
// Cell tokens:
//
//   - "S", "G" and "X" for start, goal and barriers.
//   - Free cells show their column-major node number, left-justified to a
//     width of three.
//   - Every token is followed by a single space.
//
// Path cells are wrapped in bright red ANSI escapes when color is on. With
// color off, free path cells print "*" in place of their number so the
// path stays visible in plain logs.
package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// ErrGridNil is returned when Write is given a nil grid.
var ErrGridNil = errors.New("render: grid is nil")

const (
	pathOn  = "\x1b[91m"
	pathOff = "\x1b[0m"
)

// Options controls how Write draws a grid.
type Options struct {
	// Color enables ANSI highlighting of path cells.
	Color bool
}

// Option configures Write.
type Option func(*Options)

// DefaultOptions returns Options with color enabled.
func DefaultOptions() Options {
	return Options{Color: true}
}

// WithColor switches ANSI highlighting on or off.
func WithColor(on bool) Option {
	return func(o *Options) {
		o.Color = on
	}
}

// ColorFor reports whether f is attached to a terminal, in which case
// escapes are worth emitting.
func ColorFor(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// Write draws g to w, highlighting the cells of path (which may be nil).
// Output is buffered and flushed once at the end; the first write error is
// returned.
func Write(w io.Writer, g *gridgraph.Grid, path []gridgraph.Cell, opts ...Option) error {
	if g == nil {
		return ErrGridNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	onPath := make(map[gridgraph.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	bw := bufio.NewWriter(w)
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			c := gridgraph.Cell{X: x, Y: y}
			tok := token(g, c, onPath[c] && !cfg.Color)
			if onPath[c] && cfg.Color {
				tok = pathOn + tok + pathOff
			}
			if _, err := bw.WriteString(tok); err != nil {
				return fmt.Errorf("render: row %d: %w", y, err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("render: row %d: %w", y, err)
		}
	}

	return bw.Flush()
}

// token returns the printed form of c including its trailing space.
func token(g *gridgraph.Grid, c gridgraph.Cell, star bool) string {
	k, _ := g.Classify(c.X, c.Y)
	switch k {
	case gridgraph.Start, gridgraph.Goal, gridgraph.Barrier:
		return k.String() + " "
	}
	if star {
		return fmt.Sprintf("%-3s ", "*")
	}

	return fmt.Sprintf("%-3d ", g.CellIndex(c))
}
