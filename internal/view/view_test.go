package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cubestorm/internal/sim"
)

func TestFollowProjectsLookPointToCentre(t *testing.T) {
	player := sim.Vec3{X: 1.5, Y: -0.5}
	cam := Follow(player, 0)
	assert.InDelta(t, DefaultAspect, cam.Aspect, 1e-6)

	pr := cam.Projector(960, 544)
	sp, ok := pr.Project(sim.Vec3{X: player.X, Y: player.Y, Z: player.Z - LookAhead})
	require.True(t, ok)
	assert.InDelta(t, 480, sp.X, 0.01)
	assert.InDelta(t, 272, sp.Y, 0.01)
}

func TestProjectOrientation(t *testing.T) {
	pr := Follow(sim.Vec3{}, DefaultAspect).Projector(960, 544)

	self, ok := pr.Project(sim.Vec3{})
	require.True(t, ok)
	assert.Greater(t, self.Y, float32(272), "player sits below the look point")

	right, ok := pr.Project(sim.Vec3{X: 1, Z: -5})
	require.True(t, ok)
	left, ok := pr.Project(sim.Vec3{X: -1, Z: -5})
	require.True(t, ok)
	assert.Greater(t, right.X, left.X)

	near, _ := pr.Project(sim.Vec3{Z: -2})
	far, _ := pr.Project(sim.Vec3{Z: -10})
	assert.Greater(t, near.Scale, far.Scale)
	assert.Less(t, near.Depth, far.Depth)
	assert.True(t, pr.OnScreen(far, 0))
}

func TestProjectRejectsBehindCamera(t *testing.T) {
	pr := Follow(sim.Vec3{}, DefaultAspect).Projector(960, 544)
	_, ok := pr.Project(sim.Vec3{Z: 5})
	assert.False(t, ok)
	_, ok = pr.Project(sim.Vec3{Z: -2000})
	assert.False(t, ok)
}

func TestPalette(t *testing.T) {
	assert.Equal(t, RGB{255, 0, 0}, EnemyColor(sim.ArchetypeBasic))
	assert.Equal(t, RGB{0, 0xAA, 0xFF}, EnemyColor(sim.ArchetypeTank))
	assert.Equal(t, RGB{0xFF, 0x88, 0}, EnemyColor(sim.ArchetypeShooter))
	assert.Equal(t, EnemyColor(sim.ArchetypeBasic), EnemyColor(sim.Archetype(40)))
	assert.Equal(t, RGB{0xC0, 0xE0, 0xFF}, Palette.Sky)

	r, g, b := RGB{255, 0, 51}.Floats()
	assert.InDelta(t, 1.0, r, 1e-6)
	assert.InDelta(t, 0.0, g, 1e-6)
	assert.InDelta(t, 0.2, b, 1e-6)
}

func TestStyle(t *testing.T) {
	c, size := Style(sim.Sprite{Kind: sim.SpriteEnemy, Enemy: sim.ArchetypeCircler})
	assert.Equal(t, RGB{0, 255, 0}, c)
	assert.Equal(t, float32(EnemySize), size)

	c, _ = Style(sim.Sprite{Kind: sim.SpriteParticle, Color: 0xFF0000FF, Life: 40})
	assert.Equal(t, RGB{255, 0, 0}, c)

	c, size = Style(sim.Sprite{Kind: sim.SpriteParticle, Color: 0xFF0000FF, Life: 5})
	assert.Equal(t, RGB{127, 0, 0}, c)
	assert.Equal(t, float32(ParticleSize), size)
}

func TestTerrainTiles(t *testing.T) {
	n := 0
	TerrainTiles(3.7, func(p sim.Vec3) {
		n++
		assert.GreaterOrEqual(t, p.Y, float32(TerrainBaseY-TerrainWave-1e-4))
		assert.LessOrEqual(t, p.Y, float32(TerrainBaseY+TerrainWave+1e-4))
		assert.GreaterOrEqual(t, p.Z, float32(-16))
		assert.Less(t, p.Z, float32(16))
	})
	assert.Equal(t, 4*TerrainHalfTiles*TerrainHalfTiles, n)
}

func TestStatusLines(t *testing.T) {
	c := sim.Counters{State: sim.StatePlaying, Score: 120, Health: 2, MaxHealth: 3, Volume: 7}
	assert.Equal(t, "Score: 120 | Health: 2/3", StatusLines(c)[0])

	c.State = sim.StateGameOver
	assert.Contains(t, strings.Join(StatusLines(c), "\n"), "Final Score: 120")

	c.State = sim.StateConfigMenu
	assert.Contains(t, StatusLines(c)[1], "7/10 [#######...]")

	c = sim.Counters{Enemies: 3, Bullets: 2, EnemyBullets: 1, Particles: 15}
	assert.Equal(t, "Enemies: 3 | Bullets: 2 | EBullets: 1 | Particles: 15", DebugLine(c))
}

func TestVolumeBar(t *testing.T) {
	assert.Equal(t, "[..........]", VolumeBar(0))
	assert.Equal(t, "[##########]", VolumeBar(10))
	assert.Equal(t, "[##########]", VolumeBar(14))
	assert.Equal(t, "[..........]", VolumeBar(-3))
}

func TestSceneBuild(t *testing.T) {
	sm := sim.New(sim.DefaultSeed, sim.DefaultVolume, nil)
	e, err := sm.Session.Enemies.Allocate()
	require.NoError(t, err)
	*sm.Session.Enemies.Get(e) = sim.Enemy{Pos: sim.Vec3{X: 0.5, Z: -8}, Kind: sim.ArchetypeTank, Health: 3}
	behind, err := sm.Session.Enemies.Allocate()
	require.NoError(t, err)
	*sm.Session.Enemies.Get(behind) = sim.Enemy{Pos: sim.Vec3{Z: 4.9}, Health: 2}
	b, err := sm.Session.Bullets.Allocate()
	require.NoError(t, err)
	sm.Session.Bullets.Get(b).Pos = sim.Vec3{Z: -3}

	snap := sim.NewSnapshot()
	sm.Fill(snap)

	var sc Scene
	sc.Build(snap, Follow(snap.Player, DefaultAspect).Projector(960, 544), 0)

	require.Len(t, sc.Solid, 2, "player and the visible enemy")
	assert.Equal(t, sim.SpriteEnemy, sc.Solid[0].Kind, "far sprites first")
	assert.Equal(t, sim.SpritePlayer, sc.Solid[1].Kind)
	assert.Equal(t, EnemyColor(sim.ArchetypeTank), sc.Solid[0].Color)

	require.Len(t, sc.Glow, 1)
	assert.Equal(t, sim.SpriteBullet, sc.Glow[0].Kind)
	assert.NotEmpty(t, sc.Ground)
	for i := 1; i < len(sc.Ground); i++ {
		assert.GreaterOrEqual(t, sc.Ground[i-1].Depth, sc.Ground[i].Depth)
	}

	ground := cap(sc.Ground)
	sc.Build(snap, Follow(snap.Player, DefaultAspect).Projector(960, 544), 0)
	assert.Equal(t, ground, cap(sc.Ground))
}
