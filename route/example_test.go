package route_test

import (
	"fmt"

	"github.com/katrelda/routecraft/env"
	"github.com/katrelda/routecraft/grid"
	"github.com/katrelda/routecraft/route"
)

// ExampleBuild demonstrates one full planning cycle: snapshot → planner →
// path → movement commands.
func ExampleBuild() {
	// A 3×3 world with a wall splitting the top row.
	g, _ := grid.NewGrid(3)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			g.SetUnchecked(grid.NewCoordinate(r, c), &grid.Tile{Terrain: grid.Grass})
		}
	}
	g.SetUnchecked(grid.NewCoordinate(0, 1), &grid.Tile{Terrain: grid.Wall})

	p, err := route.Build(g, env.Conditions{Weather: env.Sunny, TimeOfDay: env.Morning})
	if err != nil {
		fmt.Println("build failed:", err)

		return
	}

	total, path, ok := p.ShortestPath(grid.NewCoordinate(0, 0), grid.NewCoordinate(0, 2))
	if !ok {
		fmt.Println("no route")

		return
	}
	dirs, _ := route.Directions(path)

	fmt.Println("cost:", total)
	fmt.Println("steps:", len(path)-1)
	fmt.Println("first move:", dirs[0])
	// Output:
	// cost: 4
	// steps: 4
	// first move: Down
}
