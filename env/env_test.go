package env_test

import (
	"testing"

	"github.com/katrelda/routecraft/env"
	"github.com/katrelda/routecraft/grid"
)

// TestAdjust_SunnyMorningIsIdentity pins the neutral case: clear weather
// in daylight must not change the base cost.
func TestAdjust_SunnyMorningIsIdentity(t *testing.T) {
	cond := env.Conditions{Weather: env.Sunny, TimeOfDay: env.Morning}
	for _, base := range []int64{0, 1, 3, 10} {
		if got := env.Adjust(base, cond, grid.Grass); got != base {
			t.Errorf("Adjust(%d, sunny/morning) = %d; want %d", base, got, base)
		}
	}
}

func TestAdjust_WeatherScaling(t *testing.T) {
	cases := []struct {
		name    string
		weather env.Weather
		terrain grid.Terrain
		base    int64
		want    int64
	}{
		{"RainOnSand", env.Rainy, grid.Sand, 4, 6},
		{"RainOnShallowWater", env.Rainy, grid.ShallowWater, 5, 10},
		{"RainOnStreet", env.Rainy, grid.Street, 10, 12},
		{"FogAnywhere", env.Foggy, grid.Mountain, 10, 12},
		{"StormOnMountain", env.Stormy, grid.Mountain, 10, 25},
		{"StormOnGrass", env.Stormy, grid.Grass, 10, 18},
		{"BlizzardOnSnow", env.Blizzard, grid.Snow, 3, 9},
		{"BlizzardOnGrass", env.Blizzard, grid.Grass, 1, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cond := env.Conditions{Weather: tc.weather, TimeOfDay: env.Afternoon}
			if got := env.Adjust(tc.base, cond, tc.terrain); got != tc.want {
				t.Errorf("Adjust = %d; want %d", got, tc.want)
			}
		})
	}
}

func TestAdjust_NightSurcharge(t *testing.T) {
	day := env.Conditions{Weather: env.Sunny, TimeOfDay: env.Afternoon}
	night := env.Conditions{Weather: env.Sunny, TimeOfDay: env.Night}

	if got := env.Adjust(10, night, grid.Grass); got != 15 {
		t.Errorf("night Adjust(10) = %d; want 15", got)
	}
	if d, n := env.Adjust(4, day, grid.Grass), env.Adjust(4, night, grid.Grass); n <= d {
		t.Errorf("night cost %d should exceed day cost %d", n, d)
	}
}

// TestAdjust_NeverNegative exercises the non-negativity guarantee across
// the whole enum space.
func TestAdjust_NeverNegative(t *testing.T) {
	terrains := []grid.Terrain{
		grid.DeepWater, grid.ShallowWater, grid.Grass, grid.Sand, grid.Street,
		grid.Hill, grid.Mountain, grid.Snow, grid.Lava, grid.Wall, grid.Teleport,
	}
	for w := env.Sunny; w <= env.Blizzard; w++ {
		for td := env.Morning; td <= env.Night; td++ {
			for _, terr := range terrains {
				for _, base := range []int64{-5, 0, 1, 100} {
					if got := env.Adjust(base, env.Conditions{Weather: w, TimeOfDay: td}, terr); got < 0 {
						t.Fatalf("Adjust(%d, %v/%v, %v) = %d; want >= 0", base, w, td, terr, got)
					}
				}
			}
		}
	}
}
