package transform

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/gldemo/pkg/math"
	"github.com/Faultbox/gldemo/pkg/math/mathtest"
)

func TestTranslationRoundTrip(t *testing.T) {
	positions := []math.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 2, Z: 3},
		{X: -4.5, Y: 0.25, Z: 100},
	}

	for _, p := range positions {
		tr := New(p, 0, 0, 0, Uniform(1))
		got := mathtest.Apply(tr.Matrix(), math.Vec3{})
		if got != p {
			t.Errorf("origin through %v: got %v", p, got)
		}
	}
}

func TestRebuildDeterministic(t *testing.T) {
	a := New(math.Vec3{X: 1.5, Y: -2, Z: 7}, 12, 245, -33, PerAxis{1, 2, 0.5})
	b := New(math.Vec3{X: 1.5, Y: -2, Z: 7}, 12, 245, -33, PerAxis{1, 2, 0.5})

	first := a.Matrix()
	a.Rebuild()
	if a.Matrix() != first {
		t.Error("rebuild with unchanged fields changed the matrix")
	}
	if a.Matrix() != b.Matrix() {
		t.Error("equal inputs produced different matrices")
	}
}

func TestCompositionOrder(t *testing.T) {
	tr := New(math.Vec3{X: 1, Y: 2, Z: 3}, 30, 60, 90, PerAxis{2, 3, 4})

	want := mgl32.Translate3D(1, 2, 3).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(90))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(60))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(30))).
		Mul4(mgl32.Scale3D(2, 3, 4))

	if got := tr.Matrix(); !mathtest.ApproxEqual(got, math.Mat4(want), 1e-5) {
		t.Errorf("matrix = %v, want %v", got, want)
	}
}

func TestUniformScale(t *testing.T) {
	tests := []struct {
		name  string
		scale Scale
		want  math.Vec3
	}{
		{"uniform", Uniform(0.5), math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}},
		{"per axis", PerAxis{1, 2, 3}, math.Vec3{X: 1, Y: 2, Z: 3}},
		{"nil means one", nil, math.Vec3{X: 1, Y: 1, Z: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New(math.Vec3{}, 0, 0, 0, tt.scale)
			got := mathtest.Apply(tr.Matrix(), math.Vec3{X: 1, Y: 1, Z: 1})
			if got != tt.want {
				t.Errorf("scaled (1,1,1) = %v, want %v", got, tt.want)
			}
			if tr.Matrix()[15] != 1 {
				t.Errorf("w component = %v, want 1", tr.Matrix()[15])
			}
		})
	}
}

func TestMutationNeedsRebuild(t *testing.T) {
	tr := New(math.Vec3{}, 0, 0, 0, Uniform(1))
	before := tr.Matrix()

	tr.Position = math.Vec3{X: 5}
	if tr.Matrix() != before {
		t.Fatal("matrix changed without Rebuild")
	}

	tr.Rebuild()
	if got := tr.Matrix()[12]; got != 5 {
		t.Errorf("translation x after Rebuild = %v, want 5", got)
	}
}

func TestSetMatrix(t *testing.T) {
	tr := New(math.Vec3{X: 1}, 0, 0, 0, Uniform(1))
	custom := math.Scale(3, 3, 3)

	tr.SetMatrix(custom)
	if tr.Matrix() != custom {
		t.Error("SetMatrix did not override the matrix")
	}

	tr.Rebuild()
	if tr.Matrix() == custom {
		t.Error("Rebuild should restore the field-based matrix")
	}
}

func TestZeroScaleIsSingular(t *testing.T) {
	tr := New(math.Vec3{}, 0, 0, 0, Uniform(0))
	m := tr.Matrix()
	if m[0] != 0 || m[5] != 0 || m[10] != 0 {
		t.Errorf("zero scale diagonal = (%v, %v, %v)", m[0], m[5], m[10])
	}
}
