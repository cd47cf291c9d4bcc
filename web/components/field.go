package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// FieldProps describes one labelled input of an authentication form.
type FieldProps struct {
	Name         string
	Label        string
	Type         string
	Placeholder  string
	AutoComplete string
	Value        string
	Error        string
}

// Field renders a labelled input followed by its validation message, if any.
func Field(p FieldProps) g.Node {
	id := "field-" + p.Name
	errID := id + "-error"
	return Div(Class("field"),
		g.If(p.Error != "", g.Attr("data-invalid")),
		g.El("label", For(id), g.Text(p.Label)),
		Input(
			ID(id),
			Name(p.Name),
			Type(p.Type),
			Placeholder(p.Placeholder),
			g.If(p.AutoComplete != "", AutoComplete(p.AutoComplete)),
			g.If(p.Value != "", Value(p.Value)),
			g.If(p.Error != "", g.Group([]g.Node{
				Aria("invalid", "true"),
				Aria("describedby", errID),
			})),
		),
		g.If(p.Error != "", P(ID(errID), Class("field-error"), g.Text(p.Error))),
	)
}

// SubmitButton is the full-width primary action of a form.
func SubmitButton(label string) g.Node {
	return Button(Type("submit"), Class("btn btn-primary"), g.Text(label))
}
