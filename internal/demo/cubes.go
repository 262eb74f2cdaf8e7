package demo

import (
	stdmath "math"

	"github.com/Faultbox/gldemo/internal/config"
	"github.com/Faultbox/gldemo/internal/engine/camera"
	"github.com/Faultbox/gldemo/internal/engine/gpu"
	"github.com/Faultbox/gldemo/internal/engine/mesh"
	"github.com/Faultbox/gldemo/internal/engine/transform"
	"github.com/Faultbox/gldemo/pkg/math"
)

// CubesYawSpeed is the orbit speed of the cubes camera in degrees per second.
const CubesYawSpeed = 90

// Cubes draws two coloured cubes watched by an orbiting camera.
type Cubes struct {
	ctx     gpu.Context
	program gpu.Program
	cube    *mesh.Mesh
	camera  *camera.Camera
	models  []*transform.Transform

	uModel    int32
	uViewProj int32
}

// NewCubes builds the cubes scene.
func NewCubes(ctx gpu.Context, cfg *config.Config, width, height int) (Scene, error) {
	s := &Cubes{ctx: ctx}
	if err := s.setup(cfg, width, height); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Cubes) setup(cfg *config.Config, width, height int) error {
	var err error
	if s.program, err = loadProgram(s.ctx, "cube.vert", "color.frag"); err != nil {
		return err
	}
	locs, err := uniforms(s.ctx, s.program, "u_mm", "u_vpc")
	if err != nil {
		return err
	}
	s.uModel, s.uViewProj = locs[0], locs[1]

	if s.cube, err = newCubeMesh(s.ctx, s.program, true); err != nil {
		return err
	}

	if s.camera, err = orbitCamera(cfg, width, height); err != nil {
		return err
	}

	s.models = []*transform.Transform{
		transform.New(math.Vec3{}, 0, 0, 0, transform.Uniform(1)),
		transform.New(math.Vec3{Z: -3}, 0, 180, 0, transform.Uniform(1)),
	}

	s.ctx.SetCapability(gpu.DepthTest, true)
	s.ctx.SetCapability(gpu.CullFace, true)
	return nil
}

// newCubeMesh uploads the unit cube, with per-corner colours if requested,
// and binds it to program.
func newCubeMesh(ctx gpu.Context, program gpu.Program, colored bool) (*mesh.Mesh, error) {
	m, err := mesh.New(ctx, CubeIndices())
	if err != nil {
		return nil, err
	}
	if err := m.AddVertexData("position", gpu.Float3, CubeVertices()); err != nil {
		m.Close()
		return nil, err
	}
	if colored {
		if err := m.AddVertexData("color", gpu.Float3, CubeColors()); err != nil {
			m.Close()
			return nil, err
		}
	}
	if err := m.CreateBinding(program); err != nil {
		m.Close()
		return nil, err
	}
	return m, nil
}

// orbitCamera places a third-person camera around the origin.
func orbitCamera(cfg *config.Config, width, height int) (*camera.Camera, error) {
	return camera.New(camera.Config{
		Pitch:               cfg.Camera.Pitch,
		Width:               width,
		Height:              height,
		FOV:                 cfg.Camera.FOV,
		Near:                cfg.Camera.Near,
		Far:                 cfg.Camera.Far,
		ThirdPerson:         true,
		ThirdPersonDistance: cfg.Camera.Distance,
	})
}

// advanceYaw turns the camera by speed degrees per second, wrapped to [0, 360).
func advanceYaw(c *camera.Camera, speed float32, dt float64) {
	yaw := stdmath.Mod(float64(c.Yaw)+float64(speed)*dt, 360)
	if yaw < 0 {
		yaw += 360
	}
	c.Yaw = float32(yaw)
	c.RebuildView()
}

// Camera returns the scene camera.
func (s *Cubes) Camera() *camera.Camera { return s.camera }

func (s *Cubes) Resize(width, height int) error {
	return s.camera.Resize(width, height)
}

func (s *Cubes) Update(dt float64) error {
	advanceYaw(s.camera, CubesYawSpeed, dt)
	return nil
}

func (s *Cubes) Draw() error {
	s.ctx.UseProgram(s.program)
	s.ctx.SetUniformMat4(s.uViewProj, s.camera.Matrix())
	for _, m := range s.models {
		s.ctx.SetUniformMat4(s.uModel, m.Matrix())
		if err := s.cube.DrawTriangles(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Cubes) Close() {
	if s.cube != nil {
		s.cube.Close()
		s.cube = nil
	}
	if s.program != 0 {
		s.ctx.DeleteProgram(s.program)
		s.program = 0
	}
}
