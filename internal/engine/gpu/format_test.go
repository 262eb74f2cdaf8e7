package gpu

import "testing"

func TestFormatStride(t *testing.T) {
	if got := Float3.Stride(); got != 12 {
		t.Errorf("Float3 stride = %d, want 12", got)
	}
	if got := Float2.String(); got != "2f" {
		t.Errorf("Float2 string = %q, want 2f", got)
	}
}

func TestPrimitiveString(t *testing.T) {
	if Lines.String() != "lines" || Triangles.String() != "triangles" {
		t.Errorf("unexpected names %q %q", Lines, Triangles)
	}
	if Primitive(99).String() != "unknown" {
		t.Error("out of range primitive should be unknown")
	}
}
