package demo

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/gldemo/internal/config"
	"github.com/Faultbox/gldemo/internal/logger"
)

// Main parses flags, loads the config, then opens a window and runs the
// scene until it is closed. It returns the process exit code.
func Main(title string, build Builder) int {
	cfg, ok := bootstrap()
	if !ok {
		return 1
	}
	defer logger.Sync()

	app, err := New(cfg, title, build)
	if err != nil {
		logger.Error("failed to start demo", zap.Error(err))
		return 1
	}
	defer app.Close()

	if err := app.Run(); err != nil {
		logger.Error("demo error", zap.Error(err))
		return 1
	}

	logger.Info("demo closed normally")
	return 0
}

// RenderMain is Main for offscreen demos: it renders one frame of the
// scene to the configured output file.
func RenderMain(title string, build Builder) int {
	cfg, ok := bootstrap()
	if !ok {
		return 1
	}
	defer logger.Sync()

	if err := RenderToFile(cfg, title, build); err != nil {
		logger.Error("render failed", zap.Error(err), zap.String("output", cfg.Output.Path))
		return 1
	}
	return 0
}

func bootstrap() (*config.Config, bool) {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return nil, false
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return nil, false
	}

	logger.Sugar.Debugf("Config: %+v", cfg)
	return cfg, true
}
