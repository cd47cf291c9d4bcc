package components

import (
	"github.com/nfrund/dashboard/internal/view"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Flashes renders the one-shot messages collected for this request.
func Flashes(data view.FlashData) g.Node {
	if data.Empty() {
		return nil
	}
	return Div(ID("flashes"), Role("status"),
		g.Map(data.Error, func(msg string) g.Node {
			return Div(Class("flash flash-error"), g.Text(msg))
		}),
		g.Map(data.Success, func(msg string) g.Node {
			return Div(Class("flash flash-success"), g.Text(msg))
		}),
	)
}
