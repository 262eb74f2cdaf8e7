package gpu

import "strconv"

// Format describes one vertex attribute: Components 32-bit floats per vertex.
type Format struct {
	Components int
}

// Float2 and friends are the common attribute layouts.
var (
	Float1 = Format{Components: 1}
	Float2 = Format{Components: 2}
	Float3 = Format{Components: 3}
	Float4 = Format{Components: 4}
)

// Stride is the byte size of one vertex.
func (f Format) Stride() int {
	return f.Components * 4
}

func (f Format) String() string {
	return strconv.Itoa(f.Components) + "f"
}
