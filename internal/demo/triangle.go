package demo

import (
	"github.com/Faultbox/gldemo/internal/config"
	"github.com/Faultbox/gldemo/internal/engine/gpu"
	"github.com/Faultbox/gldemo/internal/engine/mesh"
)

// Triangle draws a single RGB triangle in clip space.
type Triangle struct {
	ctx      gpu.Context
	program  gpu.Program
	triangle *mesh.Mesh
}

// NewTriangle builds the triangle scene.
func NewTriangle(ctx gpu.Context, cfg *config.Config, width, height int) (Scene, error) {
	s := &Triangle{ctx: ctx}
	if err := s.setup(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Triangle) setup() error {
	var err error
	if s.program, err = loadProgram(s.ctx, "triangle.vert", "color.frag"); err != nil {
		return err
	}

	if s.triangle, err = mesh.New(s.ctx, []uint32{0, 1, 2}); err != nil {
		return err
	}
	if err := s.triangle.AddVertexData("in_vert", gpu.Float2, TriangleVertices()); err != nil {
		return err
	}
	if err := s.triangle.AddVertexData("in_color", gpu.Float3, TriangleColors()); err != nil {
		return err
	}
	return s.triangle.CreateBinding(s.program)
}

func (s *Triangle) Resize(width, height int) error { return nil }

func (s *Triangle) Update(dt float64) error { return nil }

func (s *Triangle) Draw() error {
	s.ctx.UseProgram(s.program)
	return s.triangle.DrawTriangles()
}

func (s *Triangle) Close() {
	if s.triangle != nil {
		s.triangle.Close()
		s.triangle = nil
	}
	if s.program != 0 {
		s.ctx.DeleteProgram(s.program)
		s.program = 0
	}
}
