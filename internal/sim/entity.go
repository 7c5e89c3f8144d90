package sim

// Vec3 is a position or velocity in arena space. The camera looks down -Z.
type Vec3 struct {
	X, Y, Z float32
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Dist2 returns the squared distance between v and o.
func (v Vec3) Dist2(o Vec3) float32 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	dz := v.Z - o.Z
	return dx*dx + dy*dy + dz*dz
}

// Color is a packed 0xAABBGGRR value, the layout the particle palette was
// authored in.
type Color uint32

// RGBA unpacks the channels.
func (c Color) RGBA() (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// Burst palette.
var burstColors = [...]Color{0xFF0000FF, 0xFF0088FF, 0xFF00FFFF}

type Player struct {
	Pos    Vec3
	Health Health
}

type Bullet struct {
	Pos Vec3
}

type EnemyBullet struct {
	Pos Vec3
}

type Enemy struct {
	Pos           Vec3
	Heading       float32
	Kind          Archetype
	Health        int
	ShootCooldown int
	Phase         float32 // movement pattern accumulator
}

type Particle struct {
	Pos   Vec3
	Vel   Vec3
	Life  int // ticks remaining
	Color Color
}
