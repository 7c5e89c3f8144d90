package view

import (
	"slices"

	"cubestorm/internal/sim"
)

// PointSprite is one projected square, sized in framebuffer pixels.
type PointSprite struct {
	X, Y     float32
	Size     float32
	Color    RGB
	Rotation float32
	Depth    float32
	Kind     sim.SpriteKind
}

// Scene is a frame's worth of projected sprites split by how they are
// drawn. Slices are reused between frames.
type Scene struct {
	Ground []PointSprite // flat tiles, drawn first
	Solid  []PointSprite // player and enemies, far to near
	Glow   []PointSprite // projectiles and particles, additive
}

// Build projects snap through pr. Anything behind the camera or well off
// screen is dropped.
func (sc *Scene) Build(snap *sim.Snapshot, pr Projector, t float32) {
	sc.Ground = sc.Ground[:0]
	sc.Solid = sc.Solid[:0]
	sc.Glow = sc.Glow[:0]

	TerrainTiles(t, func(corner sim.Vec3) {
		centre := corner.Add(sim.Vec3{X: TerrainTileSize / 2, Z: TerrainTileSize / 2})
		sp, ok := pr.Project(centre)
		if !ok || !pr.OnScreen(sp, sp.Scale*TerrainTileSize) {
			return
		}
		// Checker the grid so motion reads.
		shade := uint8(255)
		if (int(corner.X/TerrainTileSize)+int(corner.Z/TerrainTileSize))&1 == 0 {
			shade = 200
		}
		sc.Ground = append(sc.Ground, PointSprite{
			X: sp.X, Y: sp.Y,
			Size:  sp.Scale * TerrainTileSize,
			Color: Palette.Ground.Mul(shade),
			Depth: sp.Depth,
		})
	})

	for _, s := range snap.Sprites {
		sp, ok := pr.Project(s.Pos)
		if !ok {
			continue
		}
		c, half := Style(s)
		ps := PointSprite{
			X: sp.X, Y: sp.Y,
			Size:     max(1, 2*half*sp.Scale),
			Color:    c,
			Rotation: s.Heading,
			Depth:    sp.Depth,
			Kind:     s.Kind,
		}
		if !pr.OnScreen(sp, ps.Size) {
			continue
		}
		switch s.Kind {
		case sim.SpritePlayer, sim.SpriteEnemy:
			sc.Solid = append(sc.Solid, ps)
		default:
			sc.Glow = append(sc.Glow, ps)
		}
	}

	farFirst := func(a, b PointSprite) int {
		switch {
		case a.Depth > b.Depth:
			return -1
		case a.Depth < b.Depth:
			return 1
		}
		return 0
	}
	slices.SortStableFunc(sc.Ground, farFirst)
	slices.SortStableFunc(sc.Solid, farFirst)
}
