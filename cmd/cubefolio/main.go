// Command cubefolio shows the portfolio cube in an SDL2 window.
package main

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/cubefolio/internal/app"
	"github.com/Faultbox/cubefolio/internal/config"
	"github.com/Faultbox/cubefolio/internal/logger"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if config.WriteConfig() {
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("config written to", config.ConfigDir())
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== cubefolio ===",
		zap.String("route", cfg.StartRoute),
		zap.String("textures", cfg.Assets.TextureDir),
	)

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	runErr := a.Run()
	a.Close()
	if runErr != nil {
		logger.Error("frame loop failed", zap.Error(runErr))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("bye")
}
