// Package output prints the route table for dashctl.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nfrund/dashboard/internal/routes"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Formats accepted by WriteRoutes.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
	FormatJSON  = "json"
)

// RouteDisplay is one route as printed.
type RouteDisplay struct {
	Path   string `json:"path" yaml:"path"`
	Layout string `json:"layout" yaml:"layout"`
	Page   string `json:"page" yaml:"page"`
	Title  string `json:"title" yaml:"title"`
}

func toDisplay(entries []routes.Entry) []RouteDisplay {
	out := make([]RouteDisplay, len(entries))
	for i, e := range entries {
		out[i] = RouteDisplay{Path: e.Path, Layout: e.Layout.String(), Page: e.Page.String(), Title: e.Title}
	}
	return out
}

// WriteRoutes prints entries in format.
func WriteRoutes(w io.Writer, format string, entries []routes.Entry) error {
	switch format {
	case FormatTable, "":
		return writeTable(w, entries)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(map[string]any{"routes": toDisplay(entries), "redirects": redirects()}); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Routes []RouteDisplay `json:"routes"`
			Count  int            `json:"count"`
		}{toDisplay(entries), len(entries)})
	default:
		return fmt.Errorf("unsupported output format %q (use table, yaml or json)", format)
	}
}

func redirects() map[string]string {
	return map[string]string{routes.RootPath: routes.Resolve(routes.RootPath).RedirectTo}
}

func writeTable(w io.Writer, entries []routes.Entry) error {
	title := cases.Title(language.English)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "PATH\tLAYOUT\tPAGE\tTITLE")
	fmt.Fprintln(tw, "----\t------\t----\t-----")
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", routes.RootPath, "-", "redirect", "→ "+routes.HomePath)
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			e.Path,
			title.String(e.Layout.String()),
			title.String(e.Page.String()),
			e.Title)
	}
	return tw.Flush()
}
