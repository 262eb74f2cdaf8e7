// Package gputest provides an in-memory gpu.Context for tests.
package gputest

import (
	"errors"
	"fmt"

	"github.com/Faultbox/gldemo/internal/engine/gpu"
	"github.com/Faultbox/gldemo/pkg/math"
)

// DrawCall records one Draw invocation.
type DrawCall struct {
	VertexArray gpu.VertexArray
	Mode        gpu.Primitive
	Count       int
	Indexed     bool
	Program     gpu.Program
}

// VertexArrayState is what a fake vertex array captured at creation.
type VertexArrayState struct {
	Attribs []gpu.AttribBinding
	Index   *gpu.Buffer
}

// ProgramState describes the attributes and uniforms a fake program exposes.
type ProgramState struct {
	Attributes []string
	Uniforms   []string
}

// Context is a gpu.Context backed by maps. Buffers keep their bytes so tests
// can inspect uploads.
type Context struct {
	Buffers      map[uint32][]byte
	VertexArrays map[gpu.VertexArray]VertexArrayState
	Programs     map[gpu.Program]ProgramState
	Draws        []DrawCall
	Mat4s        map[int32]math.Mat4
	Vec3s        map[int32][3]float32
	Capabilities map[gpu.Capability]bool
	Clears       int
	ViewportSize [2]int

	// Shader is what every program made by NewProgram exposes.
	Shader ProgramState

	// FailNext makes the next allocation return this error.
	FailNext error

	nextID  uint32
	current gpu.Program
}

var _ gpu.Context = (*Context)(nil)

// New returns an empty fake context.
func New() *Context {
	return &Context{
		Buffers:      make(map[uint32][]byte),
		VertexArrays: make(map[gpu.VertexArray]VertexArrayState),
		Programs:     make(map[gpu.Program]ProgramState),
		Mat4s:        make(map[int32]math.Mat4),
		Vec3s:        make(map[int32][3]float32),
		Capabilities: make(map[gpu.Capability]bool),
	}
}

func (c *Context) id() uint32 {
	c.nextID++
	return c.nextID
}

func (c *Context) takeFailure() error {
	err := c.FailNext
	c.FailNext = nil
	return err
}

// AddProgram registers a program that exposes the given names.
func (c *Context) AddProgram(attributes, uniforms []string) gpu.Program {
	p := gpu.Program(c.id())
	c.Programs[p] = ProgramState{Attributes: attributes, Uniforms: uniforms}
	return p
}

// NewBuffer copies data into a new fake buffer.
func (c *Context) NewBuffer(target gpu.Target, data []byte, usage gpu.Usage) (gpu.Buffer, error) {
	if err := c.takeFailure(); err != nil {
		return gpu.Buffer{}, err
	}
	if len(data) == 0 {
		return gpu.Buffer{}, errors.New("buffer data is empty")
	}
	id := c.id()
	c.Buffers[id] = append([]byte(nil), data...)
	return gpu.Buffer{ID: id, Target: target, Size: len(data), Usage: usage}, nil
}

// ReserveBuffer allocates zeroed storage.
func (c *Context) ReserveBuffer(target gpu.Target, size int, usage gpu.Usage) (gpu.Buffer, error) {
	if err := c.takeFailure(); err != nil {
		return gpu.Buffer{}, err
	}
	if size <= 0 {
		return gpu.Buffer{}, fmt.Errorf("buffer size %d must be positive", size)
	}
	id := c.id()
	c.Buffers[id] = make([]byte, size)
	return gpu.Buffer{ID: id, Target: target, Size: size, Usage: usage}, nil
}

// WriteBuffer copies data into an existing buffer.
func (c *Context) WriteBuffer(buf gpu.Buffer, offset int, data []byte) error {
	b, ok := c.Buffers[buf.ID]
	if !ok {
		return fmt.Errorf("buffer %d does not exist", buf.ID)
	}
	if offset < 0 || offset+len(data) > len(b) {
		return fmt.Errorf("write of %d bytes at %d exceeds %d", len(data), offset, len(b))
	}
	copy(b[offset:], data)
	return nil
}

// DeleteBuffer forgets the buffer.
func (c *Context) DeleteBuffer(buf gpu.Buffer) {
	delete(c.Buffers, buf.ID)
}

// NewProgram registers a program exposing Shader's names. Empty sources
// fail like a compile error would.
func (c *Context) NewProgram(vertexSrc, fragmentSrc string) (gpu.Program, error) {
	if err := c.takeFailure(); err != nil {
		return 0, err
	}
	if vertexSrc == "" || fragmentSrc == "" {
		return 0, errors.New("empty shader source")
	}
	return c.AddProgram(c.Shader.Attributes, c.Shader.Uniforms), nil
}

// DeleteProgram forgets the program.
func (c *Context) DeleteProgram(p gpu.Program) {
	delete(c.Programs, p)
}

// UseProgram records the current program.
func (c *Context) UseProgram(p gpu.Program) {
	c.current = p
}

// AttribLocation returns the attribute's position in the program's list.
func (c *Context) AttribLocation(p gpu.Program, name string) (uint32, bool) {
	for i, a := range c.Programs[p].Attributes {
		if a == name {
			return uint32(i), true
		}
	}
	return 0, false
}

// UniformLocation returns the uniform's position in the program's list.
func (c *Context) UniformLocation(p gpu.Program, name string) (int32, bool) {
	for i, u := range c.Programs[p].Uniforms {
		if u == name {
			return int32(i), true
		}
	}
	return -1, false
}

// SetUniformMat4 records the matrix.
func (c *Context) SetUniformMat4(location int32, m math.Mat4) {
	c.Mat4s[location] = m
}

// SetUniformVec3 records the vector.
func (c *Context) SetUniformVec3(location int32, v [3]float32) {
	c.Vec3s[location] = v
}

// NewVertexArray records the bindings.
func (c *Context) NewVertexArray(attribs []gpu.AttribBinding, index *gpu.Buffer) (gpu.VertexArray, error) {
	if err := c.takeFailure(); err != nil {
		return 0, err
	}
	va := gpu.VertexArray(c.id())
	state := VertexArrayState{Attribs: append([]gpu.AttribBinding(nil), attribs...)}
	if index != nil {
		idx := *index
		state.Index = &idx
	}
	c.VertexArrays[va] = state
	return va, nil
}

// DeleteVertexArray forgets the vertex array.
func (c *Context) DeleteVertexArray(va gpu.VertexArray) {
	delete(c.VertexArrays, va)
}

// Draw records the call.
func (c *Context) Draw(va gpu.VertexArray, mode gpu.Primitive, count int, indexed bool) error {
	if _, ok := c.VertexArrays[va]; !ok {
		return fmt.Errorf("vertex array %d does not exist", va)
	}
	c.Draws = append(c.Draws, DrawCall{VertexArray: va, Mode: mode, Count: count, Indexed: indexed, Program: c.current})
	return nil
}

// SetClearColor is a no-op.
func (c *Context) SetClearColor(r, g, b, a float32) {}

// Clear counts clears.
func (c *Context) Clear() { c.Clears++ }

// Viewport records the size.
func (c *Context) Viewport(x, y, width, height int) {
	c.ViewportSize = [2]int{width, height}
}

// SetCapability records the flag.
func (c *Context) SetCapability(capability gpu.Capability, enabled bool) {
	c.Capabilities[capability] = enabled
}

// Live reports how many buffers and vertex arrays are still allocated.
func (c *Context) Live() int {
	return len(c.Buffers) + len(c.VertexArrays)
}
