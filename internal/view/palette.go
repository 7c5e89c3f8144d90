package view

import "cubestorm/internal/sim"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Mul scales every channel by k/255.
func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

// Floats returns the channels in 0..1 for GL uniforms and vertex data.
func (c RGB) Floats() (r, g, b float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

// FromABGR converts a packed 0xAABBGGRR colour.
func FromABGR(c sim.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{R: r, G: g, B: b}
}

var Palette = struct {
	Sky         RGB
	Ground      RGB
	Player      RGB
	Wing        RGB
	Bullet      RGB
	EnemyBullet RGB
	Text        RGB
	Debug       RGB
}{
	Sky:         FromABGR(0xFFFFE0C0),
	Ground:      FromABGR(0xFF00CC00),
	Player:      FromABGR(0xFFDDDDDD),
	Wing:        FromABGR(0xFF0080FF),
	Bullet:      FromABGR(0xFF00FFFF),
	EnemyBullet: FromABGR(0xFFFF0000),
	Text:        FromABGR(0xFFFFFFFF),
	Debug:       FromABGR(0xFF00FF00),
}

var enemyColors = [sim.ArchetypeCount]RGB{
	sim.ArchetypeBasic:     FromABGR(0xFF0000FF),
	sim.ArchetypeZigzag:    FromABGR(0xFFFF00FF),
	sim.ArchetypeCircler:   FromABGR(0xFF00FF00),
	sim.ArchetypeShooter:   FromABGR(0xFF0088FF),
	sim.ArchetypeTank:      FromABGR(0xFFFFAA00),
	sim.ArchetypeSpeedster: FromABGR(0xFF00FFFF),
}

// EnemyColor returns the body colour of an archetype.
func EnemyColor(a sim.Archetype) RGB {
	if !a.Valid() {
		a = sim.ArchetypeBasic
	}
	return enemyColors[a]
}

// Half extents in world units.
const (
	PlayerSize      = 0.25
	BulletSize      = 0.08
	EnemyBulletSize = 0.08
	EnemySize       = 0.4
	ParticleSize    = 0.06
)

// Style returns the colour and half extent a sprite is drawn with.
// Particles fade over their final ticks.
func Style(s sim.Sprite) (RGB, float32) {
	switch s.Kind {
	case sim.SpritePlayer:
		return Palette.Player, PlayerSize
	case sim.SpriteBullet:
		return Palette.Bullet, BulletSize
	case sim.SpriteEnemyBullet:
		return Palette.EnemyBullet, EnemyBulletSize
	case sim.SpriteEnemy:
		return EnemyColor(s.Enemy), EnemySize
	case sim.SpriteParticle:
		c := FromABGR(s.Color)
		if s.Life < fadeTicks {
			c = c.Mul(uint8(255 * max(s.Life, 0) / fadeTicks))
		}
		return c, ParticleSize
	}
	return Palette.Text, ParticleSize
}

const fadeTicks = 10
