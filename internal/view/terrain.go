package view

import (
	"math"

	"cubestorm/internal/sim"
)

// Scrolling ground grid beneath the arena.
const (
	TerrainHalfTiles = 8
	TerrainTileSize  = 2.0
	TerrainBaseY     = -2.0
	TerrainWave      = 0.3
)

// TerrainTiles calls fn with the near-left corner of every ground tile at
// time t. The grid scrolls toward the camera and undulates.
func TerrainTiles(t float32, fn func(corner sim.Vec3)) {
	scroll := float32(math.Mod(float64(t)*2, TerrainTileSize))
	for i := -TerrainHalfTiles; i < TerrainHalfTiles; i++ {
		for j := -TerrainHalfTiles; j < TerrainHalfTiles; j++ {
			x := float32(i) * TerrainTileSize
			z := float32(j)*TerrainTileSize + scroll
			h := float32(math.Sin(float64(x*0.3+z*0.3+t))) * TerrainWave
			fn(sim.Vec3{X: x, Y: TerrainBaseY + h, Z: z})
		}
	}
}
