package sim

// Pool capacities.
const (
	MaxBullets      = 30
	MaxEnemies      = 15
	MaxParticles    = 100
	MaxEnemyBullets = 20
)

// Player.
const (
	PlayerMaxHealth = 3
	PlayerStepX     = 0.08
	PlayerStepY     = 0.06
	ArenaMinX       = -3.0
	ArenaMaxX       = 3.0
	ArenaMinY       = -1.5
	ArenaMaxY       = 1.5
)

// Projectiles.
const (
	FireCooldownTicks = 8
	BulletSpeed       = 0.3
	BulletCullZ       = -15.0
	EnemyBulletSpeed  = 0.15
	EnemyBulletCullZ  = 5.0
)

// Enemies.
const (
	EnemySpawnZ       = -10.0
	EnemyCullZ        = 5.0
	EnemyPhaseStep    = 0.05
	ShooterCooldown   = 60
	ShooterBandNear   = 0.0
	ShooterBandFar    = -8.0
	CirclerRadius     = 2.0
	CirclerSteer      = 0.02
	BaseEnemySpeed    = 0.025
	EnemySpeedDivisor = 5000.0
	MaxEnemySpeed     = 0.06
)

// Spawn cadence in ticks.
const (
	BaseSpawnCadence  = 80
	SpawnScoreDivisor = 50
	MinSpawnCadence   = 30
)

// Squared collision radii.
const (
	BulletEnemyRadius2       = 0.5
	EnemyBulletPlayerRadius2 = 0.4
	EnemyPlayerRadius2       = 0.8
)

// Particles.
const (
	BurstSize        = 15
	ParticleGravity  = 0.01
	ParticleBaseLife = 30
	ParticleLifeJit  = 20
)

// TickDelta is the fixed amount of elapsed time per simulation tick.
const TickDelta = 0.016

// Volume range for the music level.
const (
	MinVolume     = 0
	MaxVolume     = 10
	DefaultVolume = 7
)
