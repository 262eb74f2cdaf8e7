// Package mathtest provides comparison helpers for matrix tests.
package mathtest

import "github.com/Faultbox/gldemo/pkg/math"

// ApproxEqual reports whether every element of a is within eps of b.
func ApproxEqual(a, b math.Mat4, eps float32) bool {
	for i := range a {
		d := a[i] - b[i]
		if d < -eps || d > eps {
			return false
		}
	}
	return true
}

// Apply transforms the point v by m, dividing by w when it is not 0 or 1.
func Apply(m math.Mat4, v math.Vec3) math.Vec3 {
	x := m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]
	y := m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]
	z := m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]
	w := m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]
	if w != 0 && w != 1 {
		return math.Vec3{X: x / w, Y: y / w, Z: z / w}
	}
	return math.Vec3{X: x, Y: y, Z: z}
}
