// Package transform builds model matrices from a position, Euler angles and scale.
package transform

import (
	"github.com/Faultbox/gldemo/pkg/math"
)

// Scale is either a Uniform factor or a PerAxis vector.
type Scale interface {
	axes() (x, y, z float32)
}

// Uniform scales all three axes by the same factor.
type Uniform float32

func (u Uniform) axes() (float32, float32, float32) {
	s := float32(u)
	return s, s, s
}

// PerAxis scales each axis independently.
type PerAxis struct {
	X, Y, Z float32
}

func (p PerAxis) axes() (float32, float32, float32) {
	return p.X, p.Y, p.Z
}

// Transform places an object in world space.
//
// The matrix is built once by New. After changing any field, call Rebuild;
// Matrix never recomputes on its own.
type Transform struct {
	Position math.Vec3

	// Rotations about X, Y and Z, in degrees.
	Pitch float32
	Yaw   float32
	Roll  float32

	Scale Scale

	m math.Mat4
}

// New creates a transform and builds its matrix. A nil scale means Uniform(1).
func New(position math.Vec3, pitch, yaw, roll float32, scale Scale) *Transform {
	t := &Transform{
		Position: position,
		Pitch:    pitch,
		Yaw:      yaw,
		Roll:     roll,
		Scale:    scale,
	}
	t.Rebuild()
	return t
}

// Rebuild recomputes the matrix as T · Rz · Ry · Rx · S,
// so scale is applied first and translation last.
func (t *Transform) Rebuild() {
	sx, sy, sz := float32(1), float32(1), float32(1)
	if t.Scale != nil {
		sx, sy, sz = t.Scale.axes()
	}

	m := math.Scale(sx, sy, sz)
	m = math.RotateX(math.Radians(t.Pitch)).Mul(m)
	m = math.RotateY(math.Radians(t.Yaw)).Mul(m)
	m = math.RotateZ(math.Radians(t.Roll)).Mul(m)
	m = math.TranslateVec3(t.Position).Mul(m)
	t.m = m
}

// Matrix returns the most recently built matrix.
func (t *Transform) Matrix() math.Mat4 {
	return t.m
}

// SetMatrix replaces the matrix, bypassing the fields until the next Rebuild.
func (t *Transform) SetMatrix(m math.Mat4) {
	t.m = m
}
