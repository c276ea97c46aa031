// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// impl_layout.go — FromLayout: a maze from rows of text.
//
// Alphabet:
//   • '.' or ' '  free
//   • 'X' or '#'  barrier
//   • 'S'         start (exactly one)
//   • 'G' or 'E'  goal  (exactly one)
//
// Line y is row y; rune x of a line is column x.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

const methodFromLayout = "FromLayout"

// FromLayout parses lines into a Grid. All lines must have the same rune count.
// Returns ErrBadLayout (wrapping context) on ragged rows, unknown runes or a
// missing/duplicate start or goal, and ErrTooSmall on an empty layout.
// Complexity: O(W×H).
func FromLayout(lines []string) (*gridgraph.Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, fmt.Errorf("%s: empty layout: %w", methodFromLayout, ErrTooSmall)
	}

	var (
		cols                = len([]rune(lines[0]))
		start, goal         gridgraph.Cell
		haveStart, haveGoal bool
		barriers            []gridgraph.Cell
	)
	for y, line := range lines {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, fmt.Errorf("%s: row %d has %d cells, want %d: %w",
				methodFromLayout, y, len(runes), cols, ErrBadLayout)
		}
		for x, r := range runes {
			c := gridgraph.Cell{X: x, Y: y}
			switch r {
			case '.', ' ':
			case 'X', '#':
				barriers = append(barriers, c)
			case 'S':
				if haveStart {
					return nil, fmt.Errorf("%s: second start at %v: %w", methodFromLayout, c, ErrBadLayout)
				}
				start, haveStart = c, true
			case 'G', 'E':
				if haveGoal {
					return nil, fmt.Errorf("%s: second goal at %v: %w", methodFromLayout, c, ErrBadLayout)
				}
				goal, haveGoal = c, true
			default:
				return nil, fmt.Errorf("%s: rune %q at %v: %w", methodFromLayout, r, c, ErrBadLayout)
			}
		}
	}
	if !haveStart || !haveGoal {
		return nil, fmt.Errorf("%s: start=%t goal=%t: %w", methodFromLayout, haveStart, haveGoal, ErrBadLayout)
	}

	g, err := gridgraph.NewGrid(len(lines), cols, start, goal, barriers)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromLayout, err)
	}

	return g, nil
}
