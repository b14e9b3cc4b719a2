package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"crawl-server/internal/domain"
	"crawl-server/internal/engine"
	"crawl-server/internal/server"
	"crawl-server/internal/version"
	"crawl-server/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	var seed int64
	var replayPath string
	var configPath string
	flag.Int64Var(&seed, "seed", 0, "World seed (0 for random)")
	flag.StringVar(&replayPath, "replay", "", "Path to .crrp replay file to simulate")
	flag.StringVar(&configPath, "config", "", "Path to gameplay config JSON")
	flag.Parse()

	logger.Log.Info("Starting crawl server...")
	logger.Log.Info(version.String())

	cfg := engine.NewConfig()
	cfg.ConfigPath = configPath
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("Using explicit seed: %d", seed)
	} else {
		logger.Log.Infof("Using random seed: %d", cfg.Seed)
	}

	// Replay mode: simulate the recorded run and exit.
	if replayPath != "" {
		logger.Log.Info("Mode: replay simulation")

		service, err := engine.NewService(cfg)
		if err != nil {
			logger.Log.Fatal("Failed to create service: ", err)
		}

		session, err := service.Replays.Load(replayPath)
		if err != nil {
			logger.Log.Fatal("Failed to load replay: ", err)
		}

		gameplay, err := domain.LoadConfig(configPath)
		if err != nil {
			logger.Log.Fatal("Failed to load gameplay config: ", err)
		}

		state, err := service.RunPlayback(session, gameplay)
		if err != nil {
			logger.Log.Fatal("Playback failed: ", err)
		}

		logger.Log.Infof("Playback complete: %s", state)
		return
	}

	port := os.Getenv("CRAWL_PORT")
	if port == "" {
		port = "8080"
	}

	service, err := engine.NewService(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to create service: ", err)
	}
	service.Start()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	srv := server.New(service, port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error: ", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	service.SaveReplay()

	logger.Log.Info("Done.")
}
