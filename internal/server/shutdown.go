package server

import (
	"os"
	"os/signal"
	"syscall"
)

// waitForShutdown returns a channel that fires once on an interrupt or
// terminate signal.
func waitForShutdown() <-chan os.Signal {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	return quit
}
