// Package mesh owns the vertex and index buffers of one drawable object and
// its vertex-array binding.
package mesh

import (
	"errors"
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/Faultbox/gldemo/internal/engine/gpu"
	"github.com/Faultbox/gldemo/internal/logger"
)

var (
	// ErrCapacityExceeded is returned when new indices do not fit the reserved index buffer.
	ErrCapacityExceeded = errors.New("index data exceeds reserved capacity")
	// ErrStaticIndices is returned when rewriting the indices of a static mesh.
	ErrStaticIndices = errors.New("index buffer is static")
	// ErrNoIndexBuffer is returned by SetIndices on a mesh built without indices.
	ErrNoIndexBuffer = errors.New("mesh has no index buffer")
	// ErrNoVertexData is returned when binding a mesh with no vertex buffers.
	ErrNoVertexData = errors.New("no vertex data added")
	// ErrVertexDataSize is returned when data does not divide into whole vertices.
	ErrVertexDataSize = errors.New("vertex data length does not match format")
	// ErrAttributeNotFound is returned when a buffer's attribute is not active in the program.
	ErrAttributeNotFound = errors.New("attribute not found in shader program")
	// ErrBindingCreated is returned when modifying the layout after CreateBinding.
	ErrBindingCreated = errors.New("binding already created")
	// ErrNotInitialized is returned when drawing before CreateBinding.
	ErrNotInitialized = errors.New("binding not created")
)

const indexSize = 4 // uint32

type vertexBuffer struct {
	buf       gpu.Buffer
	format    gpu.Format
	attribute string
	vertices  int
}

// Mesh is a set of vertex buffers, an optional index buffer and the vertex
// array binding them to a shader program. Setup order: New, AddVertexData
// for each attribute, CreateBinding; then Draw every frame and Close at the end.
type Mesh struct {
	ctx gpu.Context

	index    *gpu.Buffer
	dynamic  bool
	capacity int // indices the index buffer can hold
	count    int // indices currently in use

	vertices []vertexBuffer
	vao      gpu.VertexArray
	bound    bool
}

type options struct {
	dynamic bool
	reserve int
}

// Option configures index buffer allocation.
type Option func(*options)

// Dynamic allocates the index buffer for in-place rewrites, with capacity
// equal to the initial index count.
func Dynamic() Option {
	return func(o *options) { o.dynamic = true }
}

// Reserve sets the dynamic index capacity to at least n indices.
// It implies Dynamic.
func Reserve(n int) Option {
	return func(o *options) {
		o.dynamic = true
		o.reserve = n
	}
}

// New creates a mesh. Without options the indices are uploaded to a static
// buffer of exactly their size. With no indices and no reservation the mesh
// has no index buffer and draws its vertices in order.
func New(ctx gpu.Context, indices []uint32, opts ...Option) (*Mesh, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	m := &Mesh{ctx: ctx, dynamic: o.dynamic}

	switch {
	case o.dynamic:
		capacity := max(len(indices), o.reserve)
		if capacity == 0 {
			return nil, fmt.Errorf("dynamic index buffer needs indices or a positive reserve")
		}
		buf, err := ctx.ReserveBuffer(gpu.ElementArrayBuffer, capacity*indexSize, gpu.DynamicDraw)
		if err != nil {
			return nil, fmt.Errorf("reserving index buffer: %w", err)
		}
		m.index = &buf
		m.capacity = capacity
		if err := m.SetIndices(indices); err != nil {
			m.Close()
			return nil, err
		}

	case len(indices) > 0:
		buf, err := ctx.NewBuffer(gpu.ElementArrayBuffer, uint32Bytes(indices), gpu.StaticDraw)
		if err != nil {
			return nil, fmt.Errorf("creating index buffer: %w", err)
		}
		m.index = &buf
		m.capacity = len(indices)
		m.count = len(indices)
	}

	logger.Debug("mesh created",
		zap.Int("indices", m.count),
		zap.Int("capacity", m.capacity),
		zap.Bool("dynamic", m.dynamic),
	)
	return m, nil
}

// SetIndices overwrites the index buffer in place. Only dynamic meshes accept
// new indices, and never more than their reserved capacity.
func (m *Mesh) SetIndices(indices []uint32) error {
	switch {
	case m.index == nil:
		return ErrNoIndexBuffer
	case !m.dynamic:
		return ErrStaticIndices
	case len(indices) > m.capacity:
		return fmt.Errorf("%w: %d indices, capacity %d", ErrCapacityExceeded, len(indices), m.capacity)
	}

	if err := m.ctx.WriteBuffer(*m.index, 0, uint32Bytes(indices)); err != nil {
		return fmt.Errorf("writing indices: %w", err)
	}
	m.count = len(indices)
	return nil
}

// AddVertexData uploads one attribute's data to an immutable buffer.
// attribute is the input name in the vertex shader.
func (m *Mesh) AddVertexData(attribute string, format gpu.Format, data []float32) error {
	if m.bound {
		return fmt.Errorf("adding %q: %w", attribute, ErrBindingCreated)
	}
	if format.Components < 1 || len(data) == 0 || len(data)%format.Components != 0 {
		return fmt.Errorf("%w: %q has %d floats for format %s", ErrVertexDataSize, attribute, len(data), format)
	}

	buf, err := m.ctx.NewBuffer(gpu.ArrayBuffer, float32Bytes(data), gpu.StaticDraw)
	if err != nil {
		return fmt.Errorf("creating buffer for %q: %w", attribute, err)
	}

	m.vertices = append(m.vertices, vertexBuffer{
		buf:       buf,
		format:    format,
		attribute: attribute,
		vertices:  len(data) / format.Components,
	})
	return nil
}

// CreateBinding builds the vertex array for program. It must be the last
// setup step: buffers added afterwards are rejected.
func (m *Mesh) CreateBinding(program gpu.Program) error {
	if m.bound {
		return ErrBindingCreated
	}
	if len(m.vertices) == 0 {
		return ErrNoVertexData
	}

	attribs := make([]gpu.AttribBinding, 0, len(m.vertices))
	for _, v := range m.vertices {
		loc, ok := m.ctx.AttribLocation(program, v.attribute)
		if !ok {
			return fmt.Errorf("%w: %q in program %d", ErrAttributeNotFound, v.attribute, program)
		}
		attribs = append(attribs, gpu.AttribBinding{Buffer: v.buf, Format: v.format, Location: loc})
	}

	vao, err := m.ctx.NewVertexArray(attribs, m.index)
	if err != nil {
		return fmt.Errorf("creating vertex array: %w", err)
	}
	m.vao = vao
	m.bound = true
	return nil
}

// Draw renders the mesh with the given topology using the current program.
func (m *Mesh) Draw(mode gpu.Primitive) error {
	if !m.bound {
		return ErrNotInitialized
	}
	if err := m.ctx.Draw(m.vao, mode, m.drawCount(), m.index != nil); err != nil {
		return fmt.Errorf("drawing %s: %w", mode, err)
	}
	return nil
}

// DrawTriangles draws the mesh as a triangle list.
func (m *Mesh) DrawTriangles() error {
	return m.Draw(gpu.Triangles)
}

// DrawLines draws the mesh as a line list.
func (m *Mesh) DrawLines() error {
	return m.Draw(gpu.Lines)
}

func (m *Mesh) drawCount() int {
	if m.index != nil {
		return m.count
	}
	n := m.vertices[0].vertices
	for _, v := range m.vertices[1:] {
		n = min(n, v.vertices)
	}
	return n
}

// IndexCount returns the number of indices currently in use.
func (m *Mesh) IndexCount() int {
	return m.count
}

// Capacity returns how many indices the index buffer can hold.
func (m *Mesh) Capacity() int {
	return m.capacity
}

// Close releases the vertex array and every buffer. Safe to call twice.
func (m *Mesh) Close() {
	if m.bound {
		m.ctx.DeleteVertexArray(m.vao)
		m.vao = 0
		m.bound = false
	}
	for _, v := range m.vertices {
		m.ctx.DeleteBuffer(v.buf)
	}
	m.vertices = nil
	if m.index != nil {
		m.ctx.DeleteBuffer(*m.index)
		m.index = nil
	}
	m.count = 0
	m.capacity = 0
}

func float32Bytes(v []float32) []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*4)
}

func uint32Bytes(v []uint32) []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*indexSize)
}
