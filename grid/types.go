// Package grid: sentinel errors, terrain/tile model, and movement directions.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a snapshot with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: snapshot must have at least one row and one column")

	// ErrNotSquare indicates a snapshot whose rows and columns disagree.
	ErrNotSquare = errors.New("grid: snapshot must be square")

	// ErrOffGrid indicates a coordinate outside the snapshot bounds.
	ErrOffGrid = errors.New("grid: coordinate out of bounds")

	// ErrAlreadyCharted indicates an attempt to overwrite a discovered tile.
	ErrAlreadyCharted = errors.New("grid: tile already charted")

	// ErrDimensionMismatch indicates two snapshots of different dimensions.
	ErrDimensionMismatch = errors.New("grid: snapshot dimensions differ")

	// ErrNoStep indicates a coordinate pair with no single movement
	// command between them (identical, diagonal, or farther apart).
	ErrNoStep = errors.New("grid: no direction between coordinates")
)

// Terrain classifies a tile's ground type. Walkability and base movement
// cost derive from the classification via Properties.
type Terrain uint8

const (
	// DeepWater cannot be traversed.
	DeepWater Terrain = iota
	// ShallowWater is slow but walkable.
	ShallowWater
	// Grass is ordinary open ground.
	Grass
	// Sand slows movement.
	Sand
	// Street is paved ground, as cheap as grass.
	Street
	// Hill is walkable rising ground.
	Hill
	// Mountain is barely traversable high ground.
	Mountain
	// Snow is cold but passable.
	Snow
	// Lava cannot be traversed.
	Lava
	// Wall cannot be traversed.
	Wall
	// Teleport links to every other discovered teleport at a fixed fee.
	Teleport
)

// TerrainProperties carries the traversal attributes derived from a Terrain.
type TerrainProperties struct {
	// Walkable reports whether an agent may occupy the tile.
	Walkable bool
	// BaseCost is the flat energy cost of stepping off the tile,
	// before environmental adjustment and elevation penalties.
	BaseCost int64
}

// terrainProps is the per-terrain attribute table.
var terrainProps = [...]TerrainProperties{
	DeepWater:    {Walkable: false, BaseCost: 0},
	ShallowWater: {Walkable: true, BaseCost: 5},
	Grass:        {Walkable: true, BaseCost: 1},
	Sand:         {Walkable: true, BaseCost: 3},
	Street:       {Walkable: true, BaseCost: 1},
	Hill:         {Walkable: true, BaseCost: 5},
	Mountain:     {Walkable: true, BaseCost: 10},
	Snow:         {Walkable: true, BaseCost: 3},
	Lava:         {Walkable: false, BaseCost: 0},
	Wall:         {Walkable: false, BaseCost: 0},
	Teleport:     {Walkable: true, BaseCost: 1},
}

// Properties returns the traversal attributes of the terrain.
// Unknown values are treated as unwalkable.
func (t Terrain) Properties() TerrainProperties {
	if int(t) >= len(terrainProps) {
		return TerrainProperties{}
	}

	return terrainProps[t]
}

// Walkable reports whether the terrain permits traversal.
func (t Terrain) Walkable() bool { return t.Properties().Walkable }

// IsTeleport reports whether the terrain is a deployable teleport.
func (t Terrain) IsTeleport() bool { return t == Teleport }

// terrainNames is indexed by Terrain.
var terrainNames = [...]string{
	"DeepWater", "ShallowWater", "Grass", "Sand", "Street",
	"Hill", "Mountain", "Snow", "Lava", "Wall", "Teleport",
}

// String returns the terrain name.
func (t Terrain) String() string {
	if int(t) >= len(terrainNames) {
		return "Unknown"
	}

	return terrainNames[t]
}

// ContentKind classifies what, if anything, sits on a tile.
type ContentKind uint8

const (
	ContentNone ContentKind = iota
	ContentRock
	ContentTree
	ContentCoin
	ContentWater
	ContentMarket
	ContentGarbage
	ContentFish
)

// Content is a tile's surface content and its quantity.
// The route engine ignores content; the poi registry keys on it.
type Content struct {
	Kind     ContentKind
	Quantity int
}

// Tile is one discovered cell of the world.
//
// The route engine consumes tiles read-only; mutating a tile after it
// has been handed to a Grid is the caller's bug.
type Tile struct {
	// Terrain classifies the ground and derives walkability and base cost.
	Terrain Terrain
	// Elevation is the tile height. Never negative.
	Elevation int
	// Content is whatever sits on the tile.
	Content Content
}

// Direction is one of the four discrete movement commands an agent
// understands.
type Direction uint8

const (
	// Up decreases the row.
	Up Direction = iota
	// Down increases the row.
	Down
	// Left decreases the column.
	Left
	// Right increases the column.
	Right
)

// Offset returns the unit (row, col) delta of the direction.
func (d Direction) Offset() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}

	return 0, 0
}

// Apply moves the coordinate one step in the direction.
// No bounds check is performed; callers validate against their Grid.
func (d Direction) Apply(c Coordinate) Coordinate {
	dr, dc := d.Offset()

	return Coordinate{Row: c.Row + dr, Col: c.Col + dc}
}

// directionNames is indexed by Direction.
var directionNames = [...]string{"Up", "Down", "Left", "Right"}

// String returns the direction name.
func (d Direction) String() string {
	if int(d) >= len(directionNames) {
		return "Unknown"
	}

	return directionNames[d]
}
