package demo

import (
	"errors"
	"math"
	"testing"
	"unsafe"

	"github.com/Faultbox/gldemo/internal/config"
	"github.com/Faultbox/gldemo/internal/engine/gpu"
	"github.com/Faultbox/gldemo/internal/engine/gpu/gputest"
	"github.com/Faultbox/gldemo/internal/logger"
	"github.com/Faultbox/gldemo/pkg/math/mathtest"
)

func init() {
	logger.InitNop()
}

func newContext(attributes, uniforms []string) *gputest.Context {
	ctx := gputest.New()
	ctx.Shader = gputest.ProgramState{Attributes: attributes, Uniforms: uniforms}
	return ctx
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-4
}

func TestCubesScene(t *testing.T) {
	ctx := newContext([]string{"position", "color"}, []string{"u_mm", "u_vpc"})

	scene, err := NewCubes(ctx, config.Default(), 750, 750)
	if err != nil {
		t.Fatalf("NewCubes: %v", err)
	}
	cubes := scene.(*Cubes)

	if !ctx.Capabilities[gpu.DepthTest] || !ctx.Capabilities[gpu.CullFace] {
		t.Error("cubes should enable depth test and face culling")
	}

	if err := scene.Update(0.5); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if yaw := cubes.Camera().Yaw; !near(float64(yaw), 45) {
		t.Errorf("yaw after 0.5s = %v, want 45", yaw)
	}
	if err := scene.Update(4); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if yaw := cubes.Camera().Yaw; !near(float64(yaw), 45) {
		t.Errorf("yaw should wrap at 360, got %v", yaw)
	}

	if err := scene.Draw(); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(ctx.Draws) != 2 {
		t.Fatalf("expected 2 draws, got %d", len(ctx.Draws))
	}
	for _, d := range ctx.Draws {
		if d.Mode != gpu.Triangles || d.Count != 36 || !d.Indexed {
			t.Errorf("unexpected draw %+v", d)
		}
	}
	if got := ctx.Mat4s[1]; !mathtest.ApproxEqual(got, cubes.Camera().Matrix(), 1e-6) {
		t.Error("u_vpc should hold the camera matrix")
	}
	if got := ctx.Mat4s[0]; !mathtest.ApproxEqual(got, cubes.models[1].Matrix(), 1e-6) {
		t.Error("u_mm should hold the last cube's model matrix")
	}

	scene.Close()
	if ctx.Live() != 0 || len(ctx.Programs) != 0 {
		t.Errorf("Close leaked %d objects and %d programs", ctx.Live(), len(ctx.Programs))
	}
}

func TestCubesResize(t *testing.T) {
	ctx := newContext([]string{"position", "color"}, []string{"u_mm", "u_vpc"})
	scene, err := NewCubes(ctx, config.Default(), 750, 750)
	if err != nil {
		t.Fatalf("NewCubes: %v", err)
	}
	defer scene.Close()

	if err := scene.Resize(1000, 500); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	cam := scene.(*Cubes).Camera()
	if cam.Width != 1000 || cam.Height != 500 {
		t.Errorf("camera size = %dx%d, want 1000x500", cam.Width, cam.Height)
	}
	if err := scene.Resize(1000, 0); err == nil {
		t.Error("zero height should fail")
	}
}

func TestSceneMissingUniform(t *testing.T) {
	ctx := newContext([]string{"position", "color"}, []string{"u_mm"})

	_, err := NewCubes(ctx, config.Default(), 750, 750)
	if !errors.Is(err, ErrUniformNotFound) {
		t.Fatalf("expected ErrUniformNotFound, got %v", err)
	}
	if ctx.Live() != 0 || len(ctx.Programs) != 0 {
		t.Errorf("failed setup leaked %d objects and %d programs", ctx.Live(), len(ctx.Programs))
	}
}

func TestSceneProgramFailure(t *testing.T) {
	ctx := newContext(nil, nil)
	ctx.FailNext = errors.New("compile failed")

	if _, err := NewTriangle(ctx, config.Default(), 10, 10); err == nil {
		t.Error("expected program error")
	}
}

func TestCubeWaveScene(t *testing.T) {
	ctx := newContext([]string{"position"}, []string{"color", "u_mm", "u_vpc"})

	scene, err := NewCubeWave(ctx, config.Default(), 750, 750)
	if err != nil {
		t.Fatalf("NewCubeWave: %v", err)
	}
	defer scene.Close()
	wave := scene.(*CubeWave)

	if wave.Len() != 49 {
		t.Fatalf("expected a 7x7 grid, got %d cubes", wave.Len())
	}

	if err := scene.Update(1); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if yaw := wave.Camera().Yaw; !near(float64(yaw), 45) {
		t.Errorf("yaw after 1s = %v, want 45", yaw)
	}

	for _, c := range wave.cubes {
		p := c.model.Position
		want := math.Sin(float64(p.X*p.X+p.Z*p.Z) + 1)
		if !near(float64(p.Y), want) {
			t.Fatalf("cube at (%v, %v) has y %v, want %v", p.X, p.Z, p.Y, want)
		}
		if got := c.model.Matrix()[13]; !near(float64(got), float64(p.Y)) {
			t.Fatalf("model matrix not rebuilt: ty %v, y %v", got, p.Y)
		}
		wantColor := hsv((want+1)/3, 1, 1)
		for i := range wantColor {
			if !near(float64(c.color[i]), float64(wantColor[i])) {
				t.Fatalf("cube colour %v, want %v", c.color, wantColor)
			}
		}
	}

	if err := scene.Draw(); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(ctx.Draws) != 49 {
		t.Errorf("expected 49 draws, got %d", len(ctx.Draws))
	}
}

func indexBuffer(t *testing.T, ctx *gputest.Context) []uint32 {
	t.Helper()
	for _, va := range ctx.VertexArrays {
		if va.Index == nil {
			continue
		}
		raw := ctx.Buffers[va.Index.ID]
		return unsafe.Slice((*uint32)(unsafe.Pointer(&raw[0])), len(raw)/4)
	}
	t.Fatal("no indexed vertex array")
	return nil
}

func TestModuloScene(t *testing.T) {
	ctx := newContext([]string{"position"}, []string{"color"})

	scene, err := NewModulo(ctx, config.Default(), 750, 750)
	if err != nil {
		t.Fatalf("NewModulo: %v", err)
	}
	defer scene.Close()
	mod := scene.(*Modulo)

	if got := indexBuffer(t, ctx); got[2*200+1] != 300 {
		t.Errorf("initial line 200 ends at %d, want 300", got[2*200+1])
	}
	if c := mod.Color(); !near(float64(c[0]), 1) || !near(float64(c[1]), 0) {
		t.Errorf("initial colour %v, want red", c)
	}

	if err := scene.Update(1); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !near(mod.Multiplier(), 5) {
		t.Errorf("multiplier = %v, want 5", mod.Multiplier())
	}
	if got := indexBuffer(t, ctx); got[2*3+1] != 15 {
		t.Errorf("line 3 ends at %d, want 15", got[2*3+1])
	}

	if err := scene.Draw(); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	last := ctx.Draws[len(ctx.Draws)-1]
	if last.Mode != gpu.Lines || last.Count != 1000 || !last.Indexed {
		t.Errorf("unexpected draw %+v", last)
	}
	if got := ctx.Vec3s[0]; got != mod.Color() {
		t.Errorf("colour uniform %v, want %v", got, mod.Color())
	}

	// 0.125 turns per second: eight seconds in total comes back to red.
	if err := scene.Update(7); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if c := mod.Color(); !near(float64(c[0]), 1) || !near(float64(c[2]), 0) {
		t.Errorf("colour after a full cycle %v, want red", c)
	}
}

func TestTriangleScene(t *testing.T) {
	ctx := newContext([]string{"in_vert", "in_color"}, nil)

	scene, err := NewTriangle(ctx, config.Default(), 750, 750)
	if err != nil {
		t.Fatalf("NewTriangle: %v", err)
	}

	if err := scene.Draw(); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(ctx.Draws) != 1 || ctx.Draws[0].Count != 3 || ctx.Draws[0].Mode != gpu.Triangles {
		t.Errorf("unexpected draws %+v", ctx.Draws)
	}

	scene.Close()
	if ctx.Live() != 0 {
		t.Errorf("Close leaked %d objects", ctx.Live())
	}
}
