package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/nfrund/dashboard/internal/rendering"
	"github.com/nfrund/dashboard/internal/routes"
	"github.com/nfrund/dashboard/internal/theme"
	"github.com/nfrund/dashboard/internal/viewport"
	"github.com/nfrund/dashboard/web/layouts"
	"github.com/nfrund/dashboard/web/pages"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	width       int
	breakpoint  int
	theme       string
	prefersDark bool
	layout      string
}

func newRenderCmd() *cobra.Command {
	opts := renderOptions{}
	cmd := &cobra.Command{
		Use:   "render PATH",
		Short: "Render a page to stdout",
		Long: `Render the page served at PATH, as a browser with the given width and
theme would receive it. The root path follows its redirect.

Examples:
  dashctl render /dashboard
  dashctl render /dashboard/users --width 390 --theme light
  dashctl render /dashboard/settings --layout default`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			html, err := renderPath(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(html)
			return err
		},
	}
	cmd.Flags().IntVar(&opts.width, "width", 0, "Viewport width in pixels (0 means unknown)")
	cmd.Flags().IntVar(&opts.breakpoint, "breakpoint", viewport.DefaultBreakpoint, "Compact layout breakpoint")
	cmd.Flags().StringVar(&opts.theme, "theme", string(theme.Default), "Theme (light, dark, system)")
	cmd.Flags().BoolVar(&opts.prefersDark, "prefers-dark", true, "OS colour scheme used to resolve the system theme")
	cmd.Flags().StringVar(&opts.layout, "layout", "", "Layout to wrap the page in (dashboard, auth, default); defaults to the route's own")
	return cmd
}

func renderPath(ctx context.Context, path string, opts renderOptions) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	entry, ok := routes.Final(path)
	if !ok {
		return nil, fmt.Errorf("no page is served at %q", path)
	}
	if opts.layout != "" {
		l, err := routes.ParseLayout(opts.layout)
		if err != nil {
			return nil, err
		}
		entry.Layout = l
	}

	t, err := theme.Parse(opts.theme)
	if err != nil {
		return nil, err
	}
	store := theme.NewStore(theme.NewMemoryPersister(t), theme.Default)
	if err := store.Init(ctx); err != nil {
		return nil, err
	}

	detector := viewport.NewDetector(opts.breakpoint)
	detector.SetWidth(opts.width)
	_, known := detector.Width()

	chrome := layouts.Chrome{
		Title:         entry.Title,
		Path:          entry.Path,
		Theme:         store.Current(),
		ResolvedTheme: store.Resolve(opts.prefersDark),
		Compact:       detector.IsCompact(),
		WidthKnown:    known,
		Breakpoint:    detector.Breakpoint(),
		Menu:          routes.Menu(),
		Year:          time.Now().Year(),
	}
	content := pages.Content(entry.Page, pages.FormData{Action: entry.Path})
	return rendering.NewUniversalRenderer().RenderComponent(ctx, layouts.Render(entry.Layout, chrome, content))
}
