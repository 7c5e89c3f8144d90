package tty

import (
	"github.com/gdamore/tcell/v2"

	"cubestorm/internal/sim"
	"cubestorm/internal/view"
)

// Canvas is the part of tcell.Screen the renderer draws through.
type Canvas interface {
	Size() (int, int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Cells are roughly twice as tall as wide, so the scene is projected onto
// a virtual framebuffer of cols x rows*2 and each cell covers two rows.
const cellAspect = 2

// Framebuffer returns the virtual framebuffer for a cols x rows grid. The
// bottom rows are reserved for the status lines.
func Framebuffer(cols, rows, statusRows int) (fbW, fbH int) {
	rows -= statusRows
	if rows < 1 || cols < 1 {
		return 0, 0
	}
	return cols, rows * cellAspect
}

func colour(c view.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func glyph(kind sim.SpriteKind) rune {
	switch kind {
	case sim.SpritePlayer:
		return 'A'
	case sim.SpriteEnemy:
		return '#'
	case sim.SpriteBullet:
		return '|'
	case sim.SpriteEnemyBullet:
		return 'o'
	}
	return '.'
}

// DrawScene rasterises sc onto c. Solid sprites larger than a cell fill
// their footprint; everything else is a single glyph.
func DrawScene(c Canvas, sc *view.Scene, fbW, fbH int) {
	sky := tcell.StyleDefault.Background(colour(view.Palette.Sky))
	cols, rows := fbW, fbH/cellAspect
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c.SetContent(x, y, ' ', nil, sky)
		}
	}

	for _, s := range sc.Ground {
		x, y, ok := cell(s, cols, rows)
		if !ok {
			continue
		}
		c.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(colour(s.Color)))
	}

	for _, s := range sc.Solid {
		style := tcell.StyleDefault.Foreground(colour(s.Color)).Background(colour(s.Color.Mul(160))).Bold(true)
		halfW := int(s.Size / 2)
		halfH := int(s.Size / (2 * cellAspect))
		cx, cy, _ := cell(s, cols, rows)
		for y := cy - halfH; y <= cy+halfH; y++ {
			for x := cx - halfW; x <= cx+halfW; x++ {
				if x < 0 || y < 0 || x >= cols || y >= rows {
					continue
				}
				c.SetContent(x, y, glyph(s.Kind), nil, style)
			}
		}
	}

	for _, s := range sc.Glow {
		x, y, ok := cell(s, cols, rows)
		if !ok {
			continue
		}
		c.SetContent(x, y, glyph(s.Kind), nil, sky.Foreground(colour(s.Color)).Bold(true))
	}
}

func cell(s view.PointSprite, cols, rows int) (x, y int, ok bool) {
	x = int(s.X)
	y = int(s.Y) / cellAspect
	return x, y, x >= 0 && y >= 0 && x < cols && y < rows
}

// DrawStatus writes lines from row top down, clearing each row first.
func DrawStatus(c Canvas, top int, lines []string) {
	cols, rows := c.Size()
	style := tcell.StyleDefault.Foreground(colour(view.Palette.Text)).Background(tcell.ColorBlack)
	for i, line := range lines {
		y := top + i
		if y >= rows {
			return
		}
		x := 0
		for _, r := range line {
			if x >= cols {
				break
			}
			c.SetContent(x, y, r, nil, style)
			x++
		}
		for ; x < cols; x++ {
			c.SetContent(x, y, ' ', nil, style)
		}
	}
}
