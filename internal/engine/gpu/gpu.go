// Package gpu defines the graphics context the meshes and demos draw through,
// along with an OpenGL implementation of it.
package gpu

import (
	"github.com/Faultbox/gldemo/pkg/math"
)

// Usage hints how often a buffer's content changes.
type Usage int

const (
	// StaticDraw buffers are written once.
	StaticDraw Usage = iota
	// DynamicDraw buffers are rewritten in place.
	DynamicDraw
)

func (u Usage) String() string {
	if u == DynamicDraw {
		return "dynamic"
	}
	return "static"
}

// Target selects the binding point of a buffer.
type Target int

const (
	// ArrayBuffer holds vertex attributes.
	ArrayBuffer Target = iota
	// ElementArrayBuffer holds 32-bit indices.
	ElementArrayBuffer
)

// Buffer is a GPU buffer handle with its allocated size in bytes.
type Buffer struct {
	ID     uint32
	Target Target
	Size   int
	Usage  Usage
}

// Program is a linked shader program handle.
type Program uint32

// VertexArray is a vertex-array object handle.
type VertexArray uint32

// Primitive is a draw topology.
type Primitive int

const (
	Points Primitive = iota
	Lines
	LineStrip
	LineLoop
	Triangles
	TriangleStrip
	TriangleFan
)

var primitiveNames = [...]string{"points", "lines", "line_strip", "line_loop", "triangles", "triangle_strip", "triangle_fan"}

func (p Primitive) String() string {
	if p >= 0 && int(p) < len(primitiveNames) {
		return primitiveNames[p]
	}
	return "unknown"
}

// Capability is a pipeline state toggled with SetCapability.
type Capability int

const (
	DepthTest Capability = iota
	CullFace
)

// AttribBinding ties one vertex buffer to a shader attribute location.
type AttribBinding struct {
	Buffer   Buffer
	Format   Format
	Location uint32
}

// Context is the set of graphics operations the demos need.
// All calls must happen on the thread that owns the GL context.
type Context interface {
	// NewBuffer allocates a buffer holding data.
	NewBuffer(target Target, data []byte, usage Usage) (Buffer, error)
	// ReserveBuffer allocates size bytes of uninitialised storage.
	ReserveBuffer(target Target, size int, usage Usage) (Buffer, error)
	// WriteBuffer overwrites data at offset without reallocating.
	WriteBuffer(buf Buffer, offset int, data []byte) error
	DeleteBuffer(buf Buffer)

	NewProgram(vertexSrc, fragmentSrc string) (Program, error)
	DeleteProgram(p Program)
	UseProgram(p Program)
	// AttribLocation reports the location of an active vertex attribute.
	AttribLocation(p Program, name string) (uint32, bool)
	// UniformLocation reports the location of an active uniform.
	UniformLocation(p Program, name string) (int32, bool)
	SetUniformMat4(location int32, m math.Mat4)
	SetUniformVec3(location int32, v [3]float32)

	// NewVertexArray records attribute bindings and an optional index buffer.
	NewVertexArray(attribs []AttribBinding, index *Buffer) (VertexArray, error)
	DeleteVertexArray(va VertexArray)
	// Draw issues count vertices (or indices when indexed) from va.
	Draw(va VertexArray, mode Primitive, count int, indexed bool) error

	SetClearColor(r, g, b, a float32)
	Clear()
	Viewport(x, y, width, height int)
	SetCapability(c Capability, enabled bool)
}
