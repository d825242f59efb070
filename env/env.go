package env

import "github.com/katrelda/routecraft/grid"

// Weather classifies the current sky.
type Weather uint8

const (
	Sunny Weather = iota
	Rainy
	Foggy
	Stormy
	Blizzard
)

// weatherNames is indexed by Weather.
var weatherNames = [...]string{"Sunny", "Rainy", "Foggy", "Stormy", "Blizzard"}

// String returns the weather name.
func (w Weather) String() string {
	if int(w) >= len(weatherNames) {
		return "Unknown"
	}

	return weatherNames[w]
}

// TimeOfDay classifies the current daylight phase.
type TimeOfDay uint8

const (
	Morning TimeOfDay = iota
	Afternoon
	Night
)

// timeNames is indexed by TimeOfDay.
var timeNames = [...]string{"Morning", "Afternoon", "Night"}

// String returns the phase name.
func (td TimeOfDay) String() string {
	if int(td) >= len(timeNames) {
		return "Unknown"
	}

	return timeNames[td]
}

// Conditions is the environmental snapshot consumed by the cost model.
// The route engine treats it as opaque and only hands it to an Adjuster.
type Conditions struct {
	Weather   Weather
	TimeOfDay TimeOfDay
}

// Adjuster maps a base terrain cost and the current conditions to an
// effective movement cost. Implementations must be pure, deterministic,
// and never return a negative value.
type Adjuster func(base int64, cond Conditions, terrain grid.Terrain) int64

// weatherPercent returns the weather cost multiplier for a terrain, in
// percent. 100 means "no change".
func weatherPercent(w Weather, terrain grid.Terrain) int64 {
	switch w {
	case Sunny:
		return 100
	case Foggy:
		return 120
	case Rainy:
		// Rain turns loose ground into mud and swells shallow water.
		switch terrain {
		case grid.Grass, grid.Sand, grid.Hill:
			return 150
		case grid.ShallowWater:
			return 200
		default:
			return 120
		}
	case Stormy:
		if terrain == grid.Hill || terrain == grid.Mountain {
			return 250
		}

		return 180
	case Blizzard:
		if terrain == grid.Snow || terrain == grid.Mountain {
			return 300
		}

		return 200
	}

	return 100
}

// Adjust is the default cost-adjustment collaborator: it scales the base
// cost by a per-(weather, terrain) percentage and applies a 50% night
// surcharge. Integer arithmetic throughout; the result is never negative.
//
// Complexity: O(1).
func Adjust(base int64, cond Conditions, terrain grid.Terrain) int64 {
	if base < 0 {
		base = 0
	}
	v := base * weatherPercent(cond.Weather, terrain) / 100
	if cond.TimeOfDay == Night {
		v = v * 3 / 2
	}

	return v
}
