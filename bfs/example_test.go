package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/bfs"
	"github.com/katalvlaran/lvmaze/builder"
)

// ExampleResult_PathTo finds the fewest-move route around a wall.
func ExampleResult_PathTo() {
	g, err := builder.FromLayout([]string{
		"S....",
		"XXXX.",
		"G....",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, _ := bfs.Solve(g, g.Start())
	d, _ := res.Distance(g.Goal())
	path, _ := res.PathTo(g.Goal())
	fmt.Println("moves:", d)
	fmt.Println(path)
	// Output:
	// moves: 8
	// [(0,0) (1,0) (2,0) (3,0) (4,1) (3,2) (2,2) (1,2) (0,2)]
}
