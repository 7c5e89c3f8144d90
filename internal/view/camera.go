package view

import (
	"github.com/go-gl/mathgl/mgl32"

	"cubestorm/internal/sim"
)

// Chase camera placement relative to the player.
const (
	FovYDegrees   = 75.0
	DefaultAspect = 16.0 / 9.0
	NearPlane     = 0.5
	FarPlane      = 1000.0

	EyeRise   = 1.5
	EyeBack   = 3.5
	LookAhead = 2.0
)

// Camera is a perspective chase camera. Frontends derive one from the
// player every frame.
type Camera struct {
	Eye, Center, Up mgl32.Vec3
	FovY            float32 // radians
	Aspect          float32
	Near, Far       float32
}

// Follow places the camera above and behind player, looking down the lane.
func Follow(player sim.Vec3, aspect float32) Camera {
	if aspect <= 0 {
		aspect = DefaultAspect
	}
	p := vec(player)
	return Camera{
		Eye:    p.Add(mgl32.Vec3{0, EyeRise, EyeBack}),
		Center: p.Add(mgl32.Vec3{0, 0, -LookAhead}),
		Up:     mgl32.Vec3{0, 1, 0},
		FovY:   mgl32.DegToRad(FovYDegrees),
		Aspect: aspect,
		Near:   NearPlane,
		Far:    FarPlane,
	}
}

func (c Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(c.FovY, c.Aspect, c.Near, c.Far)
}

func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Center, c.Up)
}

func (c Camera) ViewProj() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}

// ScreenPoint is a projected position in framebuffer pixels, origin top
// left. Scale is pixels per world unit at that depth.
type ScreenPoint struct {
	X, Y  float32
	Depth float32 // NDC z, -1 near .. 1 far
	Scale float32
}

// Projector caches the matrices for projecting many points per frame.
type Projector struct {
	vp    mgl32.Mat4
	focal float32
	fbW   float32
	fbH   float32
	near  float32
}

func (c Camera) Projector(fbW, fbH int) Projector {
	proj := c.Projection()
	return Projector{
		vp:    proj.Mul4(c.View()),
		focal: proj.At(1, 1),
		fbW:   float32(fbW),
		fbH:   float32(fbH),
		near:  c.Near,
	}
}

// Project maps p to the framebuffer. ok is false when p is behind the
// near plane or beyond the far plane.
func (pr Projector) Project(p sim.Vec3) (ScreenPoint, bool) {
	clip := pr.vp.Mul4x1(vec(p).Vec4(1))
	w := clip.W()
	if w < pr.near {
		return ScreenPoint{}, false
	}
	ndc := clip.Vec3().Mul(1 / w)
	if ndc.Z() < -1 || ndc.Z() > 1 {
		return ScreenPoint{}, false
	}
	return ScreenPoint{
		X:     (ndc.X() + 1) * 0.5 * pr.fbW,
		Y:     (1 - ndc.Y()) * 0.5 * pr.fbH,
		Depth: ndc.Z(),
		Scale: pr.fbH * 0.5 * pr.focal / w,
	}, true
}

// OnScreen reports whether the point lies within the framebuffer, with a
// margin in pixels.
func (pr Projector) OnScreen(sp ScreenPoint, margin float32) bool {
	return sp.X >= -margin && sp.Y >= -margin && sp.X <= pr.fbW+margin && sp.Y <= pr.fbH+margin
}

func vec(v sim.Vec3) mgl32.Vec3 { return mgl32.Vec3{v.X, v.Y, v.Z} }
