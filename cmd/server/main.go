package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/nfrund/dashboard/internal/config"
	"github.com/nfrund/dashboard/internal/logging"
	"github.com/nfrund/dashboard/internal/server"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	logger := logging.New(cfg.LogFormat, cfg.LogLevel)

	s, err := server.New(cfg, logger)
	if err != nil {
		slog.Error("Failed to build server", "error", err)
		os.Exit(1)
	}
	if err := s.Start(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
