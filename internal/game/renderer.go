package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"cubestorm/internal/view"
)

// MaxSpriteRender bounds one draw call: the ground grid plus every pool at
// capacity fits with room to spare.
const MaxSpriteRender = 1024

// Floats per sprite vertex: x, y, size, r, g, b, a, rotation.
const spriteStride = 8

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// spriteMode selects the fragment program for a batch.
type spriteMode int

const (
	modeFlat spriteMode = iota
	modeCube
	modeGlow
	modeCount
)

type Renderer struct {
	progs [modeCount]uint32
	uRes  [modeCount]int32

	spriteVAO uint32
	spriteVBO uint32

	// Reusable vertex buffer to avoid per-frame heap allocations.
	buf []float32
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{buf: make([]float32, 0, MaxSpriteRender*spriteStride)}
	frags := [modeCount]string{flatFragSrc, cubeFragSrc, glowFragSrc}
	names := [modeCount]string{"flat", "cube", "glow"}
	for m, frag := range frags {
		prog, err := linkProgram(spriteVertSrc, frag)
		if err != nil {
			r.Destroy()
			return nil, fmt.Errorf("%s program: %w", names[m], err)
		}
		r.progs[m] = prog
		gl.UseProgram(prog)
		r.uRes[m] = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	}

	// Sprite VAO/VBO: streaming buffer for point sprites.
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride := int32(spriteStride * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxSpriteRender*int(stride), nil, gl.STREAM_DRAW)
	// aScreenPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	// aRotation (float)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))
	r.spriteVAO = sVAO
	r.spriteVBO = sVBO

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.spriteVBO != 0 {
		gl.DeleteBuffers(1, &r.spriteVBO)
	}
	if r.spriteVAO != 0 {
		gl.DeleteVertexArrays(1, &r.spriteVAO)
	}
	for _, id := range r.progs {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

// BeginFrame clears to the sky colour.
func (r *Renderer) BeginFrame(fbW, fbH int, sky view.RGB) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	cr, cg, cb := sky.Floats()
	gl.ClearColor(cr, cg, cb, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawScene draws ground, then solids far to near, then glowing sprites.
func (r *Renderer) DrawScene(sc *view.Scene, fbW, fbH int) {
	r.DrawSprites(sc.Ground, modeFlat, fbW, fbH)
	r.DrawSprites(sc.Solid, modeCube, fbW, fbH)
	r.DrawSprites(sc.Glow, modeGlow, fbW, fbH)
}
