package pages

import (
	"github.com/nfrund/dashboard/internal/forms"
	"github.com/nfrund/dashboard/web/components"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// FormData is what an authentication page needs to redraw its form.
type FormData struct {
	Action string
	Values forms.Values
	Errors forms.FieldErrors
}

func (d FormData) field(p components.FieldProps) g.Node {
	p.Value = d.Values[p.Name]
	p.Error = d.Errors[p.Name]
	return components.Field(p)
}

func authHeading(title, subtitle string) g.Node {
	return html.Div(html.Class("links"),
		html.H1(g.Text(title)),
		html.P(html.Class("muted"), g.Text(subtitle)),
	)
}

func authForm(d FormData, submit string, fields ...g.Node) g.Node {
	return g.El("form",
		html.Method("post"),
		html.Action(d.Action),
		g.Attr("novalidate"),
		g.Group(fields),
		components.SubmitButton(submit),
	)
}

func link(href, text string) g.Node {
	return html.A(html.Href(href), g.Text(text))
}

var (
	emailField = components.FieldProps{
		Name: "email", Label: "Email", Type: "email",
		Placeholder: "you@example.com", AutoComplete: "email",
	}
	passwordField = components.FieldProps{
		Name: "password", Label: "Password", Type: "password",
		Placeholder: "Enter your password", AutoComplete: "current-password",
	}
)

// Login is the sign-in form.
func Login(d FormData) g.Node {
	return html.Div(html.Class("stack"),
		authHeading("Sign In", "Enter your credentials to access your account"),
		authForm(d, "Sign In", d.field(emailField), d.field(passwordField)),
		html.Div(html.Class("links"),
			html.Div(link("/forgot-password", "Forgot password?")),
			html.Div(html.Class("muted"), g.Text("Don't have an account? "), link("/signup", "Sign up")),
		),
	)
}

// Signup is the account creation form.
func Signup(d FormData) g.Node {
	pw := passwordField
	pw.Placeholder = "Create a password"
	pw.AutoComplete = "new-password"

	return html.Div(html.Class("stack"),
		authHeading("Create Account", "Enter your details to create a new account"),
		authForm(d, "Create Account", d.field(emailField), d.field(pw)),
		html.Div(html.Class("links muted"),
			g.Text("Already have an account? "), link("/login", "Sign in"),
		),
	)
}

// ForgotPassword requests a password reset link.
func ForgotPassword(d FormData) g.Node {
	return html.Div(html.Class("stack"),
		authHeading("Reset Password", "Enter your email address and we'll send you a link to reset your password"),
		authForm(d, "Send Reset Link", d.field(emailField)),
		html.Div(html.Class("links muted"),
			g.Text("Remember your password? "), link("/login", "Back to sign in"),
		),
	)
}
