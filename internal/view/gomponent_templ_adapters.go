package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// gomponentComponent lets a gomponents tree travel through the templ
// rendering pipeline.
type gomponentComponent struct {
	node gomponents.Node
}

// Render implements templ.Component. The context is checked once so a
// cancelled request does not render a whole page.
func (a gomponentComponent) Render(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return a.node.Render(w)
}

// Component converts a gomponents node into a templ.Component.
func Component(node gomponents.Node) templ.Component {
	return gomponentComponent{node: node}
}
