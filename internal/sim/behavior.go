package sim

import "math"

// Archetype selects an enemy's movement and shooting policy.
type Archetype uint8

const (
	ArchetypeBasic     Archetype = iota // straight approach
	ArchetypeZigzag                     // lateral sine weave
	ArchetypeCircler                    // orbits near the player
	ArchetypeShooter                    // fires at the player
	ArchetypeTank                       // slow, tough
	ArchetypeSpeedster                  // fast, erratic, fragile
	archetypeCount
)

// ArchetypeCount is the number of defined archetypes.
const ArchetypeCount = int(archetypeCount)

var archetypeNames = [archetypeCount]string{
	"basic", "zigzag", "circler", "shooter", "tank", "speedster",
}

func (a Archetype) String() string {
	if a >= archetypeCount {
		return "unknown"
	}
	return archetypeNames[a]
}

// Valid reports whether a names a defined archetype.
func (a Archetype) Valid() bool { return a < archetypeCount }

// MoveFunc advances one enemy by a tick given the player position and the
// global speed scalar. It returns the new state and whether the enemy fires.
type MoveFunc func(e Enemy, player Vec3, speed float32) (Enemy, bool)

// ArchetypeSpec is one row of the behavior table.
type ArchetypeSpec struct {
	Health int
	Points int
	Move   MoveFunc
}

// archetypes is indexed by Archetype; every row must be filled.
var archetypes = [archetypeCount]ArchetypeSpec{
	ArchetypeBasic:     {Health: 2, Points: 10, Move: moveBasic},
	ArchetypeZigzag:    {Health: 2, Points: 12, Move: moveZigzag},
	ArchetypeCircler:   {Health: 2, Points: 20, Move: moveCircler},
	ArchetypeShooter:   {Health: 2, Points: 25, Move: moveShooter},
	ArchetypeTank:      {Health: 3, Points: 30, Move: moveTank},
	ArchetypeSpeedster: {Health: 1, Points: 15, Move: moveSpeedster},
}

// Spec returns the behavior table row for a.
func (a Archetype) Spec() ArchetypeSpec {
	if a >= archetypeCount {
		return archetypes[ArchetypeBasic]
	}
	return archetypes[a]
}

// SpeedScalar is the difficulty ramp: linear in score up to a ceiling.
func SpeedScalar(score int) float32 {
	s := float32(BaseEnemySpeed) + float32(score)/EnemySpeedDivisor
	if s > MaxEnemySpeed {
		s = MaxEnemySpeed
	}
	return s
}

func sinf(x float32) float32 { return float32(math.Sin(float64(x))) }
func cosf(x float32) float32 { return float32(math.Cos(float64(x))) }

func moveBasic(e Enemy, _ Vec3, speed float32) (Enemy, bool) {
	e.Pos.Z += speed
	e.Heading += 0.05
	return e, false
}

func moveZigzag(e Enemy, _ Vec3, speed float32) (Enemy, bool) {
	e.Pos.Z += speed
	e.Pos.X += sinf(e.Phase*3) * 0.05
	e.Heading += 0.08
	return e, false
}

func moveCircler(e Enemy, player Vec3, speed float32) (Enemy, bool) {
	e.Pos.Z += speed * 0.7
	tx := player.X + cosf(e.Phase)*CirclerRadius
	ty := player.Y + sinf(e.Phase)*CirclerRadius
	e.Pos.X += (tx - e.Pos.X) * CirclerSteer
	e.Pos.Y += (ty - e.Pos.Y) * CirclerSteer
	e.Heading += 0.1
	return e, false
}

func moveShooter(e Enemy, _ Vec3, speed float32) (Enemy, bool) {
	e.Pos.Z += speed * 0.6
	e.Heading += 0.05
	if e.ShootCooldown <= 0 && e.Pos.Z > ShooterBandFar && e.Pos.Z < ShooterBandNear {
		e.ShootCooldown = ShooterCooldown
		return e, true
	}
	return e, false
}

func moveTank(e Enemy, _ Vec3, speed float32) (Enemy, bool) {
	e.Pos.Z += speed * 0.5
	e.Heading += 0.03
	return e, false
}

func moveSpeedster(e Enemy, _ Vec3, speed float32) (Enemy, bool) {
	e.Pos.Z += speed * 1.5
	e.Pos.X += sinf(e.Phase*5) * 0.08
	e.Pos.Y += cosf(e.Phase*4) * 0.06
	e.Heading += 0.15
	return e, false
}

// stepEnemy runs the shared per-tick bookkeeping and dispatches to the
// archetype's policy.
func stepEnemy(e Enemy, player Vec3, speed float32) (Enemy, bool) {
	if e.ShootCooldown > 0 {
		e.ShootCooldown--
	}
	e.Phase += EnemyPhaseStep
	return e.Kind.Spec().Move(e, player, speed)
}
