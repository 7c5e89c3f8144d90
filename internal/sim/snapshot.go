package sim

// SpriteKind tags a render-facing entity.
type SpriteKind uint8

const (
	SpritePlayer SpriteKind = iota
	SpriteBullet
	SpriteEnemyBullet
	SpriteEnemy
	SpriteParticle
)

// Sprite is everything a renderer may need about one entity.
type Sprite struct {
	Kind    SpriteKind
	Pos     Vec3
	Heading float32
	Enemy   Archetype // valid when Kind == SpriteEnemy
	Color   Color     // valid when Kind == SpriteParticle
	Life    int       // particle ticks remaining
}

// Snapshot is the per-frame render view of the simulation.
type Snapshot struct {
	Player   Vec3
	Sprites  []Sprite
	Counters Counters
}

// NewSnapshot returns a snapshot sized for every pool at full capacity.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Sprites: make([]Sprite, 0, 1+MaxBullets+MaxEnemyBullets+MaxEnemies+MaxParticles),
	}
}

// Fill overwrites snap with the current state, reusing its storage.
func (sm *Simulation) Fill(snap *Snapshot) {
	s := sm.Session
	snap.Player = s.Player.Pos
	snap.Counters = sm.Counters()
	buf := snap.Sprites[:0]

	buf = append(buf, Sprite{Kind: SpritePlayer, Pos: s.Player.Pos})
	s.Bullets.Each(func(_ int, b *Bullet) {
		buf = append(buf, Sprite{Kind: SpriteBullet, Pos: b.Pos})
	})
	s.EnemyBullets.Each(func(_ int, b *EnemyBullet) {
		buf = append(buf, Sprite{Kind: SpriteEnemyBullet, Pos: b.Pos})
	})
	s.Enemies.Each(func(_ int, e *Enemy) {
		buf = append(buf, Sprite{Kind: SpriteEnemy, Pos: e.Pos, Heading: e.Heading, Enemy: e.Kind})
	})
	s.Particles.Each(func(_ int, p *Particle) {
		buf = append(buf, Sprite{Kind: SpriteParticle, Pos: p.Pos, Color: p.Color, Life: p.Life})
	})
	snap.Sprites = buf
}

// Driver is what a frontend needs from the simulation: one Step per tick
// and a render snapshot per frame.
type Driver interface {
	Step(in Intents)
	Fill(snap *Snapshot)
}

var _ Driver = (*Simulation)(nil)
