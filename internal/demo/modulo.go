package demo

import (
	stdmath "math"

	"github.com/Faultbox/gldemo/internal/config"
	"github.com/Faultbox/gldemo/internal/engine/gpu"
	"github.com/Faultbox/gldemo/internal/engine/mesh"
)

// Modulo draws the times-table circle: point i joined to point i*k mod n,
// with k growing over time.
type Modulo struct {
	ctx     gpu.Context
	program gpu.Program
	circle  *mesh.Mesh
	uColor  int32

	vertices       int
	multiplier     float64
	multiplierRate float64
	hue            float64
	hueRate        float64
	saturation     float64
	value          float64
	color          [3]float32
}

// NewModulo builds the modulo circle scene.
func NewModulo(ctx gpu.Context, cfg *config.Config, width, height int) (Scene, error) {
	mc := cfg.Modulo
	s := &Modulo{
		ctx:            ctx,
		vertices:       mc.Vertices,
		multiplier:     mc.Multiplier,
		multiplierRate: mc.MultiplierRate,
		hueRate:        mc.HueRate,
		saturation:     mc.Saturation,
		value:          mc.Value,
	}
	if err := s.setup(mc.Radius); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Modulo) setup(radius float32) error {
	var err error
	if s.program, err = loadProgram(s.ctx, "modulo.vert", "modulo.frag"); err != nil {
		return err
	}
	locs, err := uniforms(s.ctx, s.program, "color")
	if err != nil {
		return err
	}
	s.uColor = locs[0]

	// Every regeneration yields exactly two indices per vertex, so the
	// initial allocation is also the capacity the scene ever needs.
	s.circle, err = mesh.New(s.ctx, ModuloIndices(s.vertices, s.multiplier), mesh.Dynamic())
	if err != nil {
		return err
	}
	if err := s.circle.AddVertexData("position", gpu.Float2, CircleVertices(s.vertices, radius)); err != nil {
		return err
	}
	if err := s.circle.CreateBinding(s.program); err != nil {
		return err
	}

	s.color = hsv(s.hue, s.saturation, s.value)
	s.ctx.SetCapability(gpu.DepthTest, false)
	s.ctx.SetCapability(gpu.CullFace, false)
	return nil
}

// Multiplier returns the current times-table factor.
func (s *Modulo) Multiplier() float64 { return s.multiplier }

// Color returns the current line colour.
func (s *Modulo) Color() [3]float32 { return s.color }

func (s *Modulo) Resize(width, height int) error { return nil }

func (s *Modulo) Update(dt float64) error {
	s.multiplier += s.multiplierRate * dt
	if err := s.circle.SetIndices(ModuloIndices(s.vertices, s.multiplier)); err != nil {
		return err
	}

	s.hue = stdmath.Mod(s.hue+s.hueRate*dt, 1)
	s.color = hsv(s.hue, s.saturation, s.value)
	return nil
}

func (s *Modulo) Draw() error {
	s.ctx.UseProgram(s.program)
	s.ctx.SetUniformVec3(s.uColor, s.color)
	return s.circle.DrawLines()
}

func (s *Modulo) Close() {
	if s.circle != nil {
		s.circle.Close()
		s.circle = nil
	}
	if s.program != 0 {
		s.ctx.DeleteProgram(s.program)
		s.program = 0
	}
}
