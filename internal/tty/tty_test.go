package tty

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cubestorm/internal/sim"
	"cubestorm/internal/view"
)

type grid struct {
	w, h  int
	cells map[[2]int]rune
}

func newGrid(w, h int) *grid { return &grid{w: w, h: h, cells: map[[2]int]rune{}} }

func (g *grid) Size() (int, int) { return g.w, g.h }

func (g *grid) SetContent(x, y int, r rune, _ []rune, _ tcell.Style) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.cells[[2]int{x, y}] = r
}

func (g *grid) row(y int) string {
	var b strings.Builder
	for x := 0; x < g.w; x++ {
		r, ok := g.cells[[2]int{x, y}]
		if !ok {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

// fakeScreen embeds tcell.Screen so only the methods Run uses need bodies.
type fakeScreen struct {
	tcell.Screen
	*grid
	mu    sync.Mutex
	shows int
	fini  chan struct{}
	once  sync.Once
}

func newFakeScreen(w, h int) *fakeScreen {
	return &fakeScreen{grid: newGrid(w, h), fini: make(chan struct{})}
}

func (f *fakeScreen) Init() error { return nil }
func (f *fakeScreen) Fini()       { f.once.Do(func() { close(f.fini) }) }
func (f *fakeScreen) HideCursor() {}
func (f *fakeScreen) Clear()      {}
func (f *fakeScreen) Sync()       {}
func (f *fakeScreen) Size() (int, int) {
	return f.grid.Size()
}
func (f *fakeScreen) SetContent(x, y int, r rune, comb []rune, s tcell.Style) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.grid.SetContent(x, y, r, comb, s)
}
func (f *fakeScreen) Show() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shows++
}
func (f *fakeScreen) PollEvent() tcell.Event {
	<-f.fini
	return nil
}

type countingDriver struct {
	sim    *sim.Simulation
	steps  int
	stopAt int
	cancel context.CancelFunc
}

func (d *countingDriver) Step(in sim.Intents) {
	d.sim.Step(in)
	d.steps++
	if d.steps == d.stopAt {
		d.cancel()
	}
}

func (d *countingDriver) Fill(snap *sim.Snapshot) { d.sim.Fill(snap) }

func TestKeysMovementIsOneTickImpulse(t *testing.T) {
	var k Keys
	assert.True(t, k.Press(tcell.KeyLeft, 0))
	assert.True(t, k.Press(tcell.KeyRune, 'w'))

	in := k.Take()
	assert.Equal(t, float32(-1), in.MoveX)
	assert.Equal(t, float32(1), in.MoveY)

	assert.Equal(t, sim.Intents{}, k.Take())
}

func TestKeysMapping(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want sim.Intents
	}{
		{"space fires", tcell.KeyRune, ' ', sim.Intents{Fire: true}},
		{"tab toggles menu", tcell.KeyTab, 0, sim.Intents{ToggleMenu: true}},
		{"m toggles menu", tcell.KeyRune, 'm', sim.Intents{ToggleMenu: true}},
		{"enter restarts", tcell.KeyEnter, 0, sim.Intents{Restart: true}},
		{"plus raises volume", tcell.KeyRune, '+', sim.Intents{VolumeUp: true}},
		{"minus lowers volume", tcell.KeyRune, '-', sim.Intents{VolumeDown: true}},
		{"page down lowers volume", tcell.KeyPgDn, 0, sim.Intents{VolumeDown: true}},
		{"right moves", tcell.KeyRight, 0, sim.Intents{MoveX: 1}},
		{"s moves down", tcell.KeyRune, 's', sim.Intents{MoveY: -1}},
		{"escape exits", tcell.KeyEscape, 0, sim.Intents{Exit: true}},
		{"q exits", tcell.KeyRune, 'q', sim.Intents{Exit: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var k Keys
			require.True(t, k.Press(tt.key, tt.r))
			assert.Equal(t, tt.want, k.Take())
		})
	}
}

func TestKeysUnknownIgnored(t *testing.T) {
	var k Keys
	assert.False(t, k.Press(tcell.KeyRune, 'z'))
	assert.False(t, k.Press(tcell.KeyF5, 0))
	assert.Equal(t, sim.Intents{}, k.Take())
}

func TestKeysExitLatches(t *testing.T) {
	var k Keys
	k.Press(tcell.KeyEscape, 0)
	assert.True(t, k.Take().Exit)
	assert.True(t, k.Take().Exit)
}

func TestFramebuffer(t *testing.T) {
	w, h := Framebuffer(80, 24, StatusRows)
	assert.Equal(t, 80, w)
	assert.Equal(t, 42, h)

	w, h = Framebuffer(80, 2, StatusRows)
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestDrawSceneGlyphs(t *testing.T) {
	g := newGrid(20, 10)
	sc := &view.Scene{
		Solid: []view.PointSprite{{X: 5, Y: 4, Size: 1, Color: view.Palette.Player, Kind: sim.SpritePlayer}},
		Glow: []view.PointSprite{
			{X: 10, Y: 10, Size: 1, Color: view.Palette.Bullet, Kind: sim.SpriteBullet},
			{X: 12, Y: 2, Size: 1, Color: view.Palette.EnemyBullet, Kind: sim.SpriteEnemyBullet},
			{X: 99, Y: 2, Size: 1, Kind: sim.SpriteParticle},
		},
	}
	DrawScene(g, sc, 20, 20)

	assert.Equal(t, 'A', g.cells[[2]int{5, 2}])
	assert.Equal(t, '|', g.cells[[2]int{10, 5}])
	assert.Equal(t, 'o', g.cells[[2]int{12, 1}])
	// Background is cleared everywhere else.
	assert.Equal(t, ' ', g.cells[[2]int{0, 0}])
	assert.Len(t, g.cells, 20*10)
}

func TestDrawSceneLargeSolidFillsFootprint(t *testing.T) {
	g := newGrid(20, 10)
	sc := &view.Scene{
		Solid: []view.PointSprite{{X: 10, Y: 10, Size: 4, Color: view.EnemyColor(sim.ArchetypeTank), Kind: sim.SpriteEnemy}},
	}
	DrawScene(g, sc, 20, 20)

	for x := 8; x <= 12; x++ {
		assert.Equal(t, '#', g.cells[[2]int{x, 5}], "x=%d", x)
	}
	assert.Equal(t, '#', g.cells[[2]int{10, 4}])
	assert.Equal(t, '#', g.cells[[2]int{10, 6}])
	assert.Equal(t, ' ', g.cells[[2]int{10, 7}])
}

func TestDrawStatusPadsAndClips(t *testing.T) {
	g := newGrid(12, 4)
	DrawStatus(g, 2, []string{"Score: 5", "Health: 3/3 and more", "dropped"})

	assert.Equal(t, "Score: 5    ", g.row(2))
	assert.Equal(t, "Health: 3/3 ", g.row(3))
}

func TestTerminalRunStepsUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scr := newFakeScreen(40, 12)
	drv := &countingDriver{sim: sim.New(sim.DefaultSeed, sim.DefaultVolume, nil), stopAt: 5, cancel: cancel}
	term := &Terminal{
		Log:       zerolog.Nop(),
		NewScreen: func() (tcell.Screen, error) { return scr, nil },
		Frame:     time.Millisecond,
	}

	require.NoError(t, term.Run(ctx, drv))

	assert.Equal(t, 5, drv.steps)
	assert.GreaterOrEqual(t, scr.shows, 4)
	assert.True(t, strings.HasPrefix(scr.row(12-StatusRows), "Score: 0 | Health: 3/3"))
	select {
	case <-scr.fini:
	default:
		t.Fatal("screen not finalised")
	}
}

func TestTerminalScreenError(t *testing.T) {
	boom := errors.New("no tty")
	term := &Terminal{
		Log:       zerolog.Nop(),
		NewScreen: func() (tcell.Screen, error) { return nil, boom },
	}
	err := term.Run(context.Background(), sim.New(sim.DefaultSeed, sim.DefaultVolume, nil))
	require.ErrorIs(t, err, boom)
}
