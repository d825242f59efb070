package poi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katrelda/routecraft/grid"
	"github.com/katrelda/routecraft/poi"
)

func TestRegistry_SaveAndGet(t *testing.T) {
	r := poi.NewRegistry[grid.ContentKind]()

	r.Save(grid.ContentWater, grid.NewCoordinate(2, 3), 10)
	r.Save(grid.ContentWater, grid.NewCoordinate(7, 1), 4)
	r.Save(grid.ContentCoin, grid.NewCoordinate(0, 0), 1)

	water := r.Get(grid.ContentWater)
	require.Len(t, water, 2)
	assert.Equal(t, grid.NewCoordinate(2, 3), water[0].At)
	assert.Equal(t, 10, water[0].Quantity)
	assert.Equal(t, 2, r.Count(grid.ContentWater))

	assert.Nil(t, r.Get(grid.ContentFish), "unseen key reads as nil")
	assert.Equal(t, 0, r.Count(grid.ContentFish))

	// Get hands out a copy; mutating it must not corrupt the registry.
	water[0].Quantity = 999
	assert.Equal(t, 10, r.Get(grid.ContentWater)[0].Quantity)
}

func TestRegistry_Most(t *testing.T) {
	r := poi.NewRegistry[grid.ContentKind]()

	if _, ok := r.Most(grid.ContentRock); ok {
		t.Fatal("Most on an empty key should be absent")
	}

	r.Save(grid.ContentRock, grid.NewCoordinate(1, 1), 5)
	r.Save(grid.ContentRock, grid.NewCoordinate(2, 2), 12)
	r.Save(grid.ContentRock, grid.NewCoordinate(3, 3), 12) // tie: earliest wins
	r.Save(grid.ContentRock, grid.NewCoordinate(4, 4), 3)

	most, ok := r.Most(grid.ContentRock)
	require.True(t, ok)
	assert.Equal(t, grid.NewCoordinate(2, 2), most.At)
	assert.Equal(t, 12, most.Quantity)
}

func TestRegistry_Nearest(t *testing.T) {
	r := poi.NewRegistry[grid.ContentKind]()

	if _, ok := r.Nearest(grid.ContentTree, grid.NewCoordinate(0, 0)); ok {
		t.Fatal("Nearest on an empty key should be absent")
	}

	r.Save(grid.ContentTree, grid.NewCoordinate(0, 9), 1)
	r.Save(grid.ContentTree, grid.NewCoordinate(5, 5), 1)
	r.Save(grid.ContentTree, grid.NewCoordinate(9, 0), 1)

	near, ok := r.Nearest(grid.ContentTree, grid.NewCoordinate(4, 4))
	require.True(t, ok)
	assert.Equal(t, grid.NewCoordinate(5, 5), near.At)

	near, ok = r.Nearest(grid.ContentTree, grid.NewCoordinate(0, 7))
	require.True(t, ok)
	assert.Equal(t, grid.NewCoordinate(0, 9), near.At)

	// Keys never mix: the nearest water is not the nearest tree.
	r.Save(grid.ContentWater, grid.NewCoordinate(4, 4), 1)
	near, ok = r.Nearest(grid.ContentTree, grid.NewCoordinate(4, 4))
	require.True(t, ok)
	assert.Equal(t, grid.NewCoordinate(5, 5), near.At)
}

func TestFromGrid_Projection(t *testing.T) {
	g, err := grid.NewGrid(3)
	require.NoError(t, err)
	g.SetUnchecked(grid.NewCoordinate(0, 0), &grid.Tile{
		Terrain: grid.Grass,
		Content: grid.Content{Kind: grid.ContentCoin, Quantity: 7},
	})
	g.SetUnchecked(grid.NewCoordinate(1, 2), &grid.Tile{
		Terrain: grid.Sand,
		Content: grid.Content{Kind: grid.ContentCoin, Quantity: 2},
	})
	g.SetUnchecked(grid.NewCoordinate(2, 2), &grid.Tile{Terrain: grid.Wall})

	// Project coins only.
	r := poi.FromGrid(g, func(tile *grid.Tile) (grid.ContentKind, int, bool) {
		if tile.Content.Kind != grid.ContentCoin {
			return 0, 0, false
		}

		return tile.Content.Kind, tile.Content.Quantity, true
	})

	require.Equal(t, 2, r.Count(grid.ContentCoin))
	most, ok := r.Most(grid.ContentCoin)
	require.True(t, ok)
	assert.Equal(t, grid.NewCoordinate(0, 0), most.At)

	near, ok := r.Nearest(grid.ContentCoin, grid.NewCoordinate(2, 2))
	require.True(t, ok)
	assert.Equal(t, grid.NewCoordinate(1, 2), near.At)
}

// TestRegistry_TerrainKeys exercises a second key type to pin the
// generic surface: terrains work as well as content kinds.
func TestRegistry_TerrainKeys(t *testing.T) {
	r := poi.NewRegistry[grid.Terrain]()
	r.Save(grid.Teleport, grid.NewCoordinate(0, 4), 1)
	r.Save(grid.Teleport, grid.NewCoordinate(1, 2), 1)

	near, ok := r.Nearest(grid.Teleport, grid.NewCoordinate(1, 1))
	require.True(t, ok)
	assert.Equal(t, grid.NewCoordinate(1, 2), near.At)
}
