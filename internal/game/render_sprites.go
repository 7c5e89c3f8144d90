package game

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"cubestorm/internal/view"
)

// packSprites appends sprites to buf in vertex layout
// [x, y, size, r, g, b, a, rotation], capped at MaxSpriteRender.
func packSprites(buf []float32, sprites []view.PointSprite) []float32 {
	buf = buf[:0]
	if len(sprites) > MaxSpriteRender {
		sprites = sprites[:MaxSpriteRender]
	}
	for _, s := range sprites {
		cr, cg, cb := s.Color.Floats()
		buf = append(buf, s.X, s.Y, s.Size, cr, cg, cb, 1, s.Rotation)
	}
	return buf
}

// DrawSprites renders one batch of point sprites with the program for mode.
// Glow batches blend additively; the others use standard alpha blending.
func (r *Renderer) DrawSprites(sprites []view.PointSprite, mode spriteMode, fbW, fbH int) {
	if len(sprites) == 0 {
		return
	}
	r.buf = packSprites(r.buf, sprites)
	count := len(r.buf) / spriteStride

	gl.UseProgram(r.progs[mode])
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.Uniform2f(r.uRes[mode], float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	if mode == modeGlow {
		gl.BlendFunc(gl.ONE, gl.ONE)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}

	gl.BufferData(gl.ARRAY_BUFFER, len(r.buf)*4, gl.Ptr(r.buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}
