package cost_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katrelda/routecraft/cost"
	"github.com/katrelda/routecraft/env"
	"github.com/katrelda/routecraft/grid"
)

var calm = env.Conditions{Weather: env.Sunny, TimeOfDay: env.Morning}

// twoTiles builds a 2×2 snapshot with from at (0,0) and to at (0,1).
func twoTiles(t *testing.T, from, to *grid.Tile) *grid.Grid {
	t.Helper()
	g, err := grid.NewGrid(2)
	require.NoError(t, err)
	g.SetUnchecked(grid.NewCoordinate(0, 0), from)
	g.SetUnchecked(grid.NewCoordinate(0, 1), to)

	return g
}

func TestMove_FlatGroundIsBaseCost(t *testing.T) {
	cases := []struct {
		terrain grid.Terrain
		want    int64
	}{
		{grid.Grass, 1},
		{grid.Sand, 3},
		{grid.ShallowWater, 5},
		{grid.Mountain, 10},
	}
	for _, tc := range cases {
		g := twoTiles(t, &grid.Tile{Terrain: tc.terrain}, &grid.Tile{Terrain: grid.Grass})
		got, err := cost.Move(g, grid.NewCoordinate(0, 0), grid.NewCoordinate(0, 1), calm, nil)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "terrain %v", tc.terrain)
	}
}

func TestMove_UphillQuadraticPenalty(t *testing.T) {
	cases := []struct {
		name     string
		fromElev int
		toElev   int
		want     int64 // grass base 1 (+ penalty)
	}{
		{"Level", 3, 3, 1},
		{"Downhill", 5, 2, 1},
		{"UpOne", 0, 1, 2},
		{"UpThree", 2, 5, 10},
		{"UpTen", 0, 10, 101},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := twoTiles(t,
				&grid.Tile{Terrain: grid.Grass, Elevation: tc.fromElev},
				&grid.Tile{Terrain: grid.Grass, Elevation: tc.toElev},
			)
			got, err := cost.Move(g, grid.NewCoordinate(0, 0), grid.NewCoordinate(0, 1), calm, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMove_EnvironmentAdjustment(t *testing.T) {
	g := twoTiles(t, &grid.Tile{Terrain: grid.Sand}, &grid.Tile{Terrain: grid.Sand})
	rainy := env.Conditions{Weather: env.Rainy, TimeOfDay: env.Afternoon}

	// Default adjuster: sand base 3 × 150% rain = 4.
	got, err := cost.Move(g, grid.NewCoordinate(0, 0), grid.NewCoordinate(0, 1), rainy, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got)

	// A substituted collaborator takes full control of the adjustment.
	double := func(base int64, _ env.Conditions, _ grid.Terrain) int64 { return base * 2 }
	got, err = cost.Move(g, grid.NewCoordinate(0, 0), grid.NewCoordinate(0, 1), rainy, double)
	require.NoError(t, err)
	assert.Equal(t, int64(6), got)
}

func TestMove_ContractViolations(t *testing.T) {
	g := twoTiles(t, &grid.Tile{Terrain: grid.Grass}, &grid.Tile{Terrain: grid.Grass})

	// Undiscovered destination.
	_, err := cost.Move(g, grid.NewCoordinate(0, 0), grid.NewCoordinate(1, 0), calm, nil)
	assert.ErrorIs(t, err, cost.ErrUndiscovered)

	// Out of bounds reads as undiscovered.
	_, err = cost.Move(g, grid.NewCoordinate(0, 0), grid.NewCoordinate(0, 5), calm, nil)
	assert.ErrorIs(t, err, cost.ErrUndiscovered)

	// Identical coordinates have no step between them.
	_, err = cost.Move(g, grid.NewCoordinate(0, 0), grid.NewCoordinate(0, 0), calm, nil)
	assert.ErrorIs(t, err, cost.ErrNotAdjacent)

	// Diagonal pair on a fully discovered 2×2.
	g.SetUnchecked(grid.NewCoordinate(1, 1), &grid.Tile{Terrain: grid.Grass})
	_, err = cost.Move(g, grid.NewCoordinate(0, 0), grid.NewCoordinate(1, 1), calm, nil)
	assert.ErrorIs(t, err, cost.ErrNotAdjacent)
}

// TestMove_NonNegative sweeps conditions and terrains to pin the
// cost ≥ 0 invariant.
func TestMove_NonNegative(t *testing.T) {
	for w := env.Sunny; w <= env.Blizzard; w++ {
		for _, terr := range []grid.Terrain{grid.Grass, grid.Sand, grid.Snow, grid.Mountain, grid.Teleport} {
			g := twoTiles(t, &grid.Tile{Terrain: terr}, &grid.Tile{Terrain: grid.Grass})
			got, err := cost.Move(g, grid.NewCoordinate(0, 0), grid.NewCoordinate(0, 1),
				env.Conditions{Weather: w, TimeOfDay: env.Night}, nil)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got, int64(0))
		}
	}
}
