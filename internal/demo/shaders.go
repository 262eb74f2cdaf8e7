package demo

import (
	"embed"
	"fmt"

	"github.com/Faultbox/gldemo/internal/engine/gpu"
)

//go:embed shaders/*.vert shaders/*.frag
var shaderFS embed.FS

// loadProgram compiles the named vertex and fragment shaders from the
// embedded shader directory.
func loadProgram(ctx gpu.Context, vertex, fragment string) (gpu.Program, error) {
	vs, err := shaderFS.ReadFile("shaders/" + vertex)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", vertex, err)
	}
	fs, err := shaderFS.ReadFile("shaders/" + fragment)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", fragment, err)
	}

	p, err := ctx.NewProgram(string(vs), string(fs))
	if err != nil {
		return 0, fmt.Errorf("program %s/%s: %w", vertex, fragment, err)
	}
	return p, nil
}

// uniforms resolves uniform locations by name.
func uniforms(ctx gpu.Context, p gpu.Program, names ...string) ([]int32, error) {
	locs := make([]int32, len(names))
	for i, name := range names {
		loc, ok := ctx.UniformLocation(p, name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUniformNotFound, name)
		}
		locs[i] = loc
	}
	return locs, nil
}
