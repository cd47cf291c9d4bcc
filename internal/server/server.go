// Package server assembles the HTTP application from its services.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/dashboard/internal/config"
	"github.com/nfrund/dashboard/internal/events"
	"github.com/samber/do/v2"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	Cfg *config.Config

	injector *do.RootScope
	logger   *slog.Logger
	stopSubs context.CancelFunc
}

// New creates a new Server instance from cfg.
func New(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	injector := do.New(Package)
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)

	e, err := do.Invoke[*echo.Echo](injector)
	if err != nil {
		injector.Shutdown()
		return nil, fmt.Errorf("build http server: %w", err)
	}

	bus := do.MustInvoke[*eventBus](injector)
	ctx, cancel := context.WithCancel(context.Background())
	if err := events.StartLogSubscriber(ctx, bus, logger); err != nil {
		cancel()
		injector.Shutdown()
		return nil, fmt.Errorf("start event log subscriber: %w", err)
	}

	return &Server{
		E:        e,
		Cfg:      cfg,
		injector: injector,
		logger:   logger,
		stopSubs: cancel,
	}, nil
}

// Shutdown stops accepting requests, waits for in-flight ones and releases
// every service held by the container.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error
	if err := s.E.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	// The bus is closed before its subscriptions are cancelled.
	if report := s.injector.ShutdownWithContext(ctx); report != nil && !report.Succeed {
		errs = append(errs, fmt.Errorf("service shutdown: %s", report.Error()))
	}
	s.stopSubs()
	return errors.Join(errs...)
}
