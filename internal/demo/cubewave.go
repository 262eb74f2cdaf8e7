package demo

import (
	stdmath "math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/gldemo/internal/config"
	"github.com/Faultbox/gldemo/internal/engine/camera"
	"github.com/Faultbox/gldemo/internal/engine/gpu"
	"github.com/Faultbox/gldemo/internal/engine/mesh"
	"github.com/Faultbox/gldemo/internal/engine/transform"
	"github.com/Faultbox/gldemo/pkg/math"
)

type waveCube struct {
	model *transform.Transform
	color [3]float32
}

// CubeWave draws a grid of cubes bobbing on sin(x² + z² + t).
type CubeWave struct {
	ctx      gpu.Context
	program  gpu.Program
	cube     *mesh.Mesh
	camera   *camera.Camera
	cubes    []waveCube
	yawSpeed float32
	elapsed  float64

	uColor    int32
	uModel    int32
	uViewProj int32
}

// NewCubeWave builds the cube wave scene.
func NewCubeWave(ctx gpu.Context, cfg *config.Config, width, height int) (Scene, error) {
	s := &CubeWave{ctx: ctx, yawSpeed: cfg.CubeWave.YawSpeed}
	if err := s.setup(cfg, width, height); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *CubeWave) setup(cfg *config.Config, width, height int) error {
	var err error
	if s.program, err = loadProgram(s.ctx, "wave.vert", "color.frag"); err != nil {
		return err
	}
	locs, err := uniforms(s.ctx, s.program, "color", "u_mm", "u_vpc")
	if err != nil {
		return err
	}
	s.uColor, s.uModel, s.uViewProj = locs[0], locs[1], locs[2]

	if s.cube, err = newCubeMesh(s.ctx, s.program, false); err != nil {
		return err
	}
	if s.camera, err = orbitCamera(cfg, width, height); err != nil {
		return err
	}

	// The cube spans -1..1, so half the spacing makes neighbours touch.
	spacing := cfg.CubeWave.Spacing
	for _, x := range gridSteps(cfg.CubeWave.GridSize, spacing) {
		for _, z := range gridSteps(cfg.CubeWave.GridSize, spacing) {
			s.cubes = append(s.cubes, waveCube{
				model: transform.New(math.Vec3{X: x, Z: z}, 0, 0, 0, transform.Uniform(spacing/2)),
			})
		}
	}
	s.wave()

	s.ctx.SetCapability(gpu.DepthTest, true)
	s.ctx.SetCapability(gpu.CullFace, true)
	return nil
}

// gridSteps returns the coordinates from -size/2 to size/2 inclusive.
func gridSteps(size int, spacing float32) []float32 {
	half := float32(size) / 2
	n := int(stdmath.Floor(float64(float32(size)/spacing)+1e-6)) + 1
	steps := make([]float32, n)
	for i := range steps {
		steps[i] = -half + float32(i)*spacing
	}
	return steps
}

// wave moves every cube to its height at the current time and recolours it.
func (s *CubeWave) wave() {
	for i := range s.cubes {
		c := &s.cubes[i]
		p := c.model.Position
		y := stdmath.Sin(float64(p.X*p.X+p.Z*p.Z) + s.elapsed)
		c.model.Position.Y = float32(y)
		c.model.Rebuild()
		c.color = hsv((y+1)/3, 1, 1)
	}
}

// hsv converts a hue in turns plus saturation and value to sRGB.
func hsv(hue, saturation, value float64) [3]float32 {
	hue = stdmath.Mod(hue, 1)
	if hue < 0 {
		hue++
	}
	c := colorful.Hsv(hue*360, saturation, value).Clamped()
	return [3]float32{float32(c.R), float32(c.G), float32(c.B)}
}

// Camera returns the scene camera.
func (s *CubeWave) Camera() *camera.Camera { return s.camera }

// Len returns the number of cubes in the grid.
func (s *CubeWave) Len() int { return len(s.cubes) }

func (s *CubeWave) Resize(width, height int) error {
	return s.camera.Resize(width, height)
}

func (s *CubeWave) Update(dt float64) error {
	s.elapsed += dt
	advanceYaw(s.camera, s.yawSpeed, dt)
	s.wave()
	return nil
}

func (s *CubeWave) Draw() error {
	s.ctx.UseProgram(s.program)
	s.ctx.SetUniformMat4(s.uViewProj, s.camera.Matrix())
	for _, c := range s.cubes {
		s.ctx.SetUniformVec3(s.uColor, c.color)
		s.ctx.SetUniformMat4(s.uModel, c.model.Matrix())
		if err := s.cube.DrawTriangles(); err != nil {
			return err
		}
	}
	return nil
}

func (s *CubeWave) Close() {
	if s.cube != nil {
		s.cube.Close()
		s.cube = nil
	}
	if s.program != 0 {
		s.ctx.DeleteProgram(s.program)
		s.program = 0
	}
}
