package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestMulOrder(t *testing.T) {
	// Translate after scale: the point is scaled, then moved.
	m := Translate(10, 0, 0).Mul(Scale(2, 2, 2))
	got := transformPoint(m, [3]float32{1, 1, 1})
	want := [3]float32{12, 2, 2}
	if got != want {
		t.Errorf("T * S applied to (1,1,1): got %v, want %v", got, want)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation should be in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3, 4)

	if m[0] != 2 || m[5] != 3 || m[10] != 4 {
		t.Errorf("Scale diagonal: got (%f, %f, %f), want (2, 3, 4)", m[0], m[5], m[10])
	}
}

func TestTranslateMovesPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	p := [3]float32{1, 2, 3}
	result := transformPoint(m, p)

	expected := [3]float32{11, 22, 33}
	if result != expected {
		t.Errorf("Translate applied to point: got %v, want %v", result, expected)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2)) // 90 degrees
	p := [3]float32{1, 0, 0}           // Point on X axis
	result := transformPoint(m, p)

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if abs(result[0]) > 0.001 || abs(result[1]) > 0.001 || abs(result[2]+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestRadians(t *testing.T) {
	if got := Radians(180); abs(got-math.Pi) > 1e-6 {
		t.Errorf("Radians(180) = %v, want pi", got)
	}
	if got := Radians(0); got != 0 {
		t.Errorf("Radians(0) = %v, want 0", got)
	}
}

// The builders must agree with mathgl, which uses the same column-major
// right-handed convention.
func TestBuildersMatchMathgl(t *testing.T) {
	angles := []float32{0, 0.3, -1.2, float32(math.Pi / 2), 3}

	for _, a := range angles {
		cases := []struct {
			name string
			got  Mat4
			want mgl32.Mat4
		}{
			{"RotateX", RotateX(a), mgl32.HomogRotate3DX(a)},
			{"RotateY", RotateY(a), mgl32.HomogRotate3DY(a)},
			{"RotateZ", RotateZ(a), mgl32.HomogRotate3DZ(a)},
		}
		for _, c := range cases {
			if !approxEqual(c.got, Mat4(c.want), 1e-6) {
				t.Errorf("%s(%v) = %v, mathgl %v", c.name, a, c.got, c.want)
			}
		}
	}

	if got, want := Translate(1, -2, 3), mgl32.Translate3D(1, -2, 3); got != Mat4(want) {
		t.Errorf("Translate = %v, mathgl %v", got, want)
	}
	if got, want := Scale(2, 3, 4), mgl32.Scale3D(2, 3, 4); got != Mat4(want) {
		t.Errorf("Scale = %v, mathgl %v", got, want)
	}

	fov := Radians(90)
	got := Perspective(fov, 16.0/9.0, 0.1, 25)
	want := mgl32.Perspective(fov, 16.0/9.0, 0.1, 25)
	if !approxEqual(got, Mat4(want), 1e-5) {
		t.Errorf("Perspective = %v, mathgl %v", got, want)
	}
}

func TestMulMatchesMathgl(t *testing.T) {
	a := Translate(1, 2, 3).Mul(RotateZ(0.4))
	b := RotateX(1.1).Mul(Scale(2, 1, 0.5))
	want := mgl32.Mat4(a).Mul4(mgl32.Mat4(b))

	if got := a.Mul(b); !approxEqual(got, Mat4(want), 1e-5) {
		t.Errorf("Mul = %v, mathgl %v", got, want)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1, 0.1, 100)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestPerspectiveDegenerate(t *testing.T) {
	if Perspective(1, 0, 0.1, 10).IsFinite() {
		t.Error("zero aspect should produce non-finite entries")
	}
	if !Perspective(1, 1, 0.1, 10).IsFinite() {
		t.Error("valid perspective should be finite")
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func approxEqual(a, b Mat4, eps float32) bool {
	for i := range a {
		if abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func transformPoint(m Mat4, p [3]float32) [3]float32 {
	return [3]float32{
		m[0]*p[0] + m[4]*p[1] + m[8]*p[2] + m[12],
		m[1]*p[0] + m[5]*p[1] + m[9]*p[2] + m[13],
		m[2]*p[0] + m[6]*p[1] + m[10]*p[2] + m[14],
	}
}
