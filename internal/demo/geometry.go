package demo

import "math"

// CubeVertices returns the eight corners of the cube spanning -1..1.
func CubeVertices() []float32 {
	return []float32{
		1, 1, 1,
		-1, 1, 1,
		-1, 1, -1,
		1, 1, -1,
		1, -1, 1,
		-1, -1, 1,
		-1, -1, -1,
		1, -1, -1,
	}
}

// CubeColors returns one RGB colour per cube corner.
func CubeColors() []float32 {
	return []float32{
		1, 1, 1,
		1, 0, 0,
		0, 0, 1,
		0, 1, 0,
		1, 1, 0,
		1, 0, 1,
		0, 1, 1,
		0.5, 0.5, 0.5,
	}
}

// CubeIndices returns two counter-clockwise triangles per face.
func CubeIndices() []uint32 {
	return []uint32{
		0, 2, 1, 0, 3, 2, // top
		0, 5, 4, 0, 1, 5, // front
		0, 7, 3, 0, 4, 7, // right
		2, 5, 1, 2, 6, 5, // left
		3, 6, 2, 3, 7, 6, // back
		6, 4, 5, 6, 7, 4, // bottom
	}
}

// CircleVertices places n points evenly on a circle of the given radius,
// starting on the +X axis.
func CircleVertices(n int, radius float32) []float32 {
	v := make([]float32, 0, 2*n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		v = append(v,
			radius*float32(math.Cos(angle)),
			radius*float32(math.Sin(angle)),
		)
	}
	return v
}

// ModuloIndices connects point i to point floor(i*k mod n) for every i,
// as line pairs.
func ModuloIndices(n int, k float64) []uint32 {
	idx := make([]uint32, 0, 2*n)
	for i := 0; i < n; i++ {
		j := int(math.Mod(float64(i)*k, float64(n)))
		if j < 0 {
			j += n
		}
		idx = append(idx, uint32(i), uint32(j))
	}
	return idx
}

// TriangleVertices returns a triangle filling clip space.
func TriangleVertices() []float32 {
	return []float32{
		-1, -1,
		1, -1,
		0, 1,
	}
}

// TriangleColors returns red, green and blue corners.
func TriangleColors() []float32 {
	return []float32{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}
