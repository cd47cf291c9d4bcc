package cmd

import (
	"fmt"

	"github.com/nfrund/dashboard/internal/config"
	"github.com/nfrund/dashboard/internal/logging"
	"github.com/nfrund/dashboard/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long: `Run the dashboard HTTP server until interrupted.

Configuration is read from the environment and an optional .env file
(APP_ADDR, SESSION_SECRET, THEME_DEFAULT, VIEWPORT_BREAKPOINT, ...).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if addr != "" {
				cfg.Addr = addr
			}
			logger := logging.New(cfg.LogFormat, cfg.LogLevel)

			s, err := server.New(cfg, logger)
			if err != nil {
				return err
			}
			return s.Start()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides APP_ADDR)")
	return cmd
}
