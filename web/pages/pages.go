package pages

import (
	"github.com/nfrund/dashboard/internal/routes"
	g "maragu.dev/gomponents"
)

// Content returns the body of page. Form pages are drawn from d; the other
// pages ignore it.
func Content(page routes.Page, d FormData) g.Node {
	switch page {
	case routes.PageUsers:
		return Users()
	case routes.PageAnalytics:
		return Analytics()
	case routes.PageSettings:
		return Settings()
	case routes.PageLogin:
		return Login(d)
	case routes.PageSignup:
		return Signup(d)
	case routes.PageForgotPassword:
		return ForgotPassword(d)
	default:
		return Overview()
	}
}
