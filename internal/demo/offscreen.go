package demo

import (
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/Faultbox/gldemo/internal/config"
	"github.com/Faultbox/gldemo/internal/engine/framebuffer"
	"github.com/Faultbox/gldemo/internal/engine/gpu"
	"github.com/Faultbox/gldemo/internal/engine/window"
	"github.com/Faultbox/gldemo/internal/logger"
	"github.com/Faultbox/gldemo/internal/snapshot"
)

// pixelSource is a render target whose colour can be read back.
type pixelSource interface {
	Size() (width, height int)
	ReadPixels() []byte
}

// RenderToFile draws one frame of a scene into an offscreen framebuffer and
// writes it to cfg.Output.Path. A hidden window supplies the GL context.
func RenderToFile(cfg *config.Config, title string, build Builder) error {
	win, err := window.New(windowConfig(cfg, title, true))
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer win.Close()

	ctx, err := gpu.NewGL()
	if err != nil {
		return err
	}

	scale := cfg.Output.Supersample
	width, height := cfg.Output.Width*scale, cfg.Output.Height*scale

	fb, err := framebuffer.New(width, height)
	if err != nil {
		return err
	}
	defer fb.Close()

	restore := fb.Bind()
	defer restore()

	scene, err := build(ctx, cfg, width, height)
	if err != nil {
		return fmt.Errorf("failed to create scene: %w", err)
	}
	defer scene.Close()

	img, err := capture(ctx, scene, fb, cfg.Output.Width, cfg.Output.Height)
	if err != nil {
		return err
	}
	return snapshot.Save(cfg.Output.Path, img)
}

// capture renders scene once into target and returns the image scaled to
// width x height.
func capture(ctx gpu.Context, scene Scene, target pixelSource, width, height int) (*image.RGBA, error) {
	tw, th := target.Size()
	ctx.Viewport(0, 0, tw, th)
	ctx.SetClearColor(0, 0, 0, 1)
	ctx.Clear()
	if err := scene.Draw(); err != nil {
		return nil, fmt.Errorf("render error: %w", err)
	}

	img, err := snapshot.FromPixels(target.ReadPixels(), tw, th)
	if err != nil {
		return nil, err
	}

	if tw != width || th != height {
		logger.Debug("downsampling",
			zap.Int("from_width", tw),
			zap.Int("from_height", th),
			zap.Int("width", width),
			zap.Int("height", height),
		)
		img = snapshot.Downsample(img, width, height)
	}
	return img, nil
}
