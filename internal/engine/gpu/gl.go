package gpu

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/gldemo/internal/engine/shader"
	"github.com/Faultbox/gldemo/internal/logger"
	"github.com/Faultbox/gldemo/pkg/math"
)

// GL implements Context on top of an OpenGL 3.3 core context.
type GL struct{}

var _ Context = (*GL)(nil)

// NewGL loads the OpenGL function pointers.
// IMPORTANT: Must be called AFTER the window has made its context current!
func NewGL() (*GL, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)
	return &GL{}, nil
}

func glTarget(t Target) uint32 {
	if t == ElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

func glUsage(u Usage) uint32 {
	if u == DynamicDraw {
		return gl.DYNAMIC_DRAW
	}
	return gl.STATIC_DRAW
}

var glModes = [...]uint32{
	Points:        gl.POINTS,
	Lines:         gl.LINES,
	LineStrip:     gl.LINE_STRIP,
	LineLoop:      gl.LINE_LOOP,
	Triangles:     gl.TRIANGLES,
	TriangleStrip: gl.TRIANGLE_STRIP,
	TriangleFan:   gl.TRIANGLE_FAN,
}

// NewBuffer allocates a buffer holding data.
func (c *GL) NewBuffer(target Target, data []byte, usage Usage) (Buffer, error) {
	if len(data) == 0 {
		return Buffer{}, errors.New("buffer data is empty")
	}
	buf, err := c.ReserveBuffer(target, len(data), usage)
	if err != nil {
		return Buffer{}, err
	}
	if err := c.WriteBuffer(buf, 0, data); err != nil {
		c.DeleteBuffer(buf)
		return Buffer{}, err
	}
	return buf, nil
}

// ReserveBuffer allocates size bytes without initialising them.
func (c *GL) ReserveBuffer(target Target, size int, usage Usage) (Buffer, error) {
	if size <= 0 {
		return Buffer{}, fmt.Errorf("buffer size %d must be positive", size)
	}

	var id uint32
	gl.GenBuffers(1, &id)
	if id == 0 {
		return Buffer{}, errors.New("glGenBuffers returned no buffer")
	}

	t := glTarget(target)
	gl.BindBuffer(t, id)
	gl.BufferData(t, size, nil, glUsage(usage))
	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.DeleteBuffers(1, &id)
		return Buffer{}, fmt.Errorf("allocating %d bytes: gl error 0x%x", size, code)
	}
	gl.BindBuffer(t, 0)

	logger.Debug("buffer created",
		zap.Uint32("id", id),
		zap.Int("size", size),
		zap.Stringer("usage", usage),
	)
	return Buffer{ID: id, Target: target, Size: size, Usage: usage}, nil
}

// WriteBuffer overwrites data at offset.
func (c *GL) WriteBuffer(buf Buffer, offset int, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if offset < 0 || offset+len(data) > buf.Size {
		return fmt.Errorf("write of %d bytes at %d exceeds buffer %d of %d bytes",
			len(data), offset, buf.ID, buf.Size)
	}

	// Index buffers are staged through ARRAY_BUFFER so the write does not
	// disturb whichever vertex array is bound.
	gl.BindBuffer(gl.ARRAY_BUFFER, buf.ID)
	gl.BufferSubData(gl.ARRAY_BUFFER, offset, len(data), gl.Ptr(data))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return nil
}

// DeleteBuffer releases the buffer.
func (c *GL) DeleteBuffer(buf Buffer) {
	if buf.ID != 0 {
		gl.DeleteBuffers(1, &buf.ID)
	}
}

// NewProgram compiles and links a shader program.
func (c *GL) NewProgram(vertexSrc, fragmentSrc string) (Program, error) {
	id, err := shader.CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return 0, err
	}
	logger.Debug("shader program created", zap.Uint32("program", id))
	return Program(id), nil
}

// DeleteProgram releases the program.
func (c *GL) DeleteProgram(p Program) {
	if p != 0 {
		gl.DeleteProgram(uint32(p))
	}
}

// UseProgram makes p current.
func (c *GL) UseProgram(p Program) {
	gl.UseProgram(uint32(p))
}

// AttribLocation looks up an active vertex attribute.
func (c *GL) AttribLocation(p Program, name string) (uint32, bool) {
	loc := shader.GetAttrib(uint32(p), name)
	if loc < 0 {
		return 0, false
	}
	return uint32(loc), true
}

// UniformLocation looks up an active uniform.
func (c *GL) UniformLocation(p Program, name string) (int32, bool) {
	loc := shader.GetUniform(uint32(p), name)
	return loc, loc >= 0
}

// SetUniformMat4 uploads a column-major matrix to the current program.
func (c *GL) SetUniformMat4(location int32, m math.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, m.Ptr())
}

// SetUniformVec3 uploads a vec3 to the current program.
func (c *GL) SetUniformVec3(location int32, v [3]float32) {
	gl.Uniform3f(location, v[0], v[1], v[2])
}

// NewVertexArray creates a VAO recording each attribute pointer and the index buffer.
func (c *GL) NewVertexArray(attribs []AttribBinding, index *Buffer) (VertexArray, error) {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	if vao == 0 {
		return 0, errors.New("glGenVertexArrays returned no vertex array")
	}
	gl.BindVertexArray(vao)

	for _, a := range attribs {
		gl.BindBuffer(gl.ARRAY_BUFFER, a.Buffer.ID)
		gl.VertexAttribPointerWithOffset(a.Location, int32(a.Format.Components), gl.FLOAT, false, int32(a.Format.Stride()), 0)
		gl.EnableVertexAttribArray(a.Location)
	}

	// The element binding is VAO state, so it must stay bound until the VAO is unbound.
	if index != nil {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, index.ID)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.DeleteVertexArrays(1, &vao)
		return 0, fmt.Errorf("building vertex array: gl error 0x%x", code)
	}

	logger.Debug("vertex array created",
		zap.Uint32("vao", vao),
		zap.Int("attributes", len(attribs)),
		zap.Bool("indexed", index != nil),
	)
	return VertexArray(vao), nil
}

// DeleteVertexArray releases the VAO.
func (c *GL) DeleteVertexArray(va VertexArray) {
	if va != 0 {
		id := uint32(va)
		gl.DeleteVertexArrays(1, &id)
	}
}

// Draw renders count elements of va with the current program.
func (c *GL) Draw(va VertexArray, mode Primitive, count int, indexed bool) error {
	if mode < 0 || int(mode) >= len(glModes) {
		return fmt.Errorf("unknown primitive %d", mode)
	}
	if count == 0 {
		return nil
	}

	gl.BindVertexArray(uint32(va))
	if indexed {
		gl.DrawElements(glModes[mode], int32(count), gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(glModes[mode], 0, int32(count))
	}
	gl.BindVertexArray(0)
	return nil
}

// SetClearColor sets the color used by Clear.
func (c *GL) SetClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

// Clear clears the color and depth buffers.
func (c *GL) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Viewport sets the viewport rectangle.
func (c *GL) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

// SetCapability enables or disables depth testing or face culling.
func (c *GL) SetCapability(capability Capability, enabled bool) {
	var flag uint32
	switch capability {
	case DepthTest:
		flag = gl.DEPTH_TEST
		if enabled {
			gl.DepthFunc(gl.LESS)
		}
	case CullFace:
		flag = gl.CULL_FACE
	default:
		return
	}

	if enabled {
		gl.Enable(flag)
	} else {
		gl.Disable(flag)
	}
}
