package sim

type State int

const (
	StatePlaying State = iota
	StateConfigMenu
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateConfigMenu:
		return "config"
	case StateGameOver:
		return "gameover"
	}
	return "unknown"
}

// PoolID names one of the session's entity pools.
type PoolID int

const (
	PoolBullets PoolID = iota
	PoolEnemyBullets
	PoolEnemies
	PoolParticles
	poolCount
)

func (p PoolID) String() string {
	switch p {
	case PoolBullets:
		return "bullets"
	case PoolEnemyBullets:
		return "enemy_bullets"
	case PoolEnemies:
		return "enemies"
	case PoolParticles:
		return "particles"
	}
	return "unknown"
}

// Session aggregates every pool plus score, timers and the state tag.
// Exactly one exists per run; Reset returns it to its constructed state.
type Session struct {
	State  State
	Player Player

	Bullets      *Pool[Bullet]
	EnemyBullets *Pool[EnemyBullet]
	Enemies      *Pool[Enemy]
	Particles    *Pool[Particle]

	Score        int
	SpawnTimer   int // ticks since the last enemy spawn
	FireCooldown int
	Time         float32

	// Drops counts spawns discarded because a pool was full.
	Drops [poolCount]int
}

func NewSession() *Session {
	s := &Session{
		Bullets:      NewPool[Bullet](MaxBullets),
		EnemyBullets: NewPool[EnemyBullet](MaxEnemyBullets),
		Enemies:      NewPool[Enemy](MaxEnemies),
		Particles:    NewPool[Particle](MaxParticles),
	}
	s.Reset()
	return s
}

// Reset clears all pools, zeroes score and timers and re-centres the player
// at full health.
func (s *Session) Reset() {
	s.State = StatePlaying
	s.Player = Player{Health: NewHealth(PlayerMaxHealth)}
	s.Bullets.Clear()
	s.EnemyBullets.Clear()
	s.Enemies.Clear()
	s.Particles.Clear()
	s.Score = 0
	s.SpawnTimer = 0
	s.FireCooldown = 0
	s.Time = 0
	s.Drops = [poolCount]int{}
}

// SpawnCadence returns the number of ticks between enemy spawns at score.
func SpawnCadence(score int) int {
	c := BaseSpawnCadence - score/SpawnScoreDivisor
	if c < MinSpawnCadence {
		c = MinSpawnCadence
	}
	return c
}

// Counters is the read-only UI surface.
type Counters struct {
	State        State
	Score        int
	Health       int
	MaxHealth    int
	Bullets      int
	EnemyBullets int
	Enemies      int
	Particles    int
	Volume       int
	Time         float32
	Drops        [poolCount]int
}

func (s *Session) counters(volume int) Counters {
	return Counters{
		State:        s.State,
		Score:        s.Score,
		Health:       s.Player.Health.Current,
		MaxHealth:    s.Player.Health.Max,
		Bullets:      s.Bullets.Len(),
		EnemyBullets: s.EnemyBullets.Len(),
		Enemies:      s.Enemies.Len(),
		Particles:    s.Particles.Len(),
		Volume:       volume,
		Time:         s.Time,
		Drops:        s.Drops,
	}
}
