// Package routes is the static route table of the dashboard: which layout
// and page each URL path renders, plus the navigation menu.
package routes

import (
	"fmt"
	"strings"
)

// Layout selects the chrome a page is wrapped in.
type Layout int

const (
	LayoutDashboard Layout = iota
	LayoutAuth
	LayoutDefault
)

func (l Layout) String() string {
	switch l {
	case LayoutDashboard:
		return "dashboard"
	case LayoutAuth:
		return "auth"
	case LayoutDefault:
		return "default"
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

// ParseLayout returns the layout named s.
func ParseLayout(s string) (Layout, error) {
	for _, l := range []Layout{LayoutDashboard, LayoutAuth, LayoutDefault} {
		if strings.EqualFold(strings.TrimSpace(s), l.String()) {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown layout %q (want dashboard, auth or default)", s)
}

// Page identifies the content rendered inside a layout.
type Page int

const (
	PageOverview Page = iota
	PageUsers
	PageAnalytics
	PageSettings
	PageLogin
	PageSignup
	PageForgotPassword
)

func (p Page) String() string {
	switch p {
	case PageOverview:
		return "overview"
	case PageUsers:
		return "users"
	case PageAnalytics:
		return "analytics"
	case PageSettings:
		return "settings"
	case PageLogin:
		return "login"
	case PageSignup:
		return "signup"
	case PageForgotPassword:
		return "forgot-password"
	}
	return fmt.Sprintf("Page(%d)", int(p))
}

// IsForm reports whether the page accepts a POST submission.
func (p Page) IsForm() bool {
	return p == PageLogin || p == PageSignup || p == PageForgotPassword
}

const (
	// RootPath always redirects to HomePath.
	RootPath = "/"
	// HomePath is the dashboard overview.
	HomePath = "/dashboard"
)

// Entry maps a URL path to a layout and page.
type Entry struct {
	Path   string `yaml:"path"`
	Layout Layout `yaml:"layout"`
	Page   Page   `yaml:"page"`
	Title  string `yaml:"title"`
}

var table = []Entry{
	{Path: HomePath, Layout: LayoutDashboard, Page: PageOverview, Title: "Overview"},
	{Path: "/dashboard/users", Layout: LayoutDashboard, Page: PageUsers, Title: "Users"},
	{Path: "/dashboard/analytics", Layout: LayoutDashboard, Page: PageAnalytics, Title: "Analytics"},
	{Path: "/dashboard/settings", Layout: LayoutDashboard, Page: PageSettings, Title: "Settings"},
	{Path: "/login", Layout: LayoutAuth, Page: PageLogin, Title: "Sign In"},
	{Path: "/signup", Layout: LayoutAuth, Page: PageSignup, Title: "Create Account"},
	{Path: "/forgot-password", Layout: LayoutAuth, Page: PageForgotPassword, Title: "Reset Password"},
}

// Table returns a copy of the route table in registration order.
func Table() []Entry {
	out := make([]Entry, len(table))
	copy(out, table)
	return out
}

// Lookup returns the entry registered for page.
func Lookup(p Page) (Entry, bool) {
	for _, e := range table {
		if e.Page == p {
			return e, true
		}
	}
	return Entry{}, false
}

// Resolution is the outcome of resolving a path.
type Resolution struct {
	Entry      Entry
	RedirectTo string
	Matched    bool
}

// Redirect reports whether the path resolves to a redirect.
func (r Resolution) Redirect() bool {
	return r.RedirectTo != ""
}

// Resolve selects the entry for path. The root path redirects to HomePath.
// Unknown paths are reported as unmatched; no not-found page is defined.
func Resolve(path string) Resolution {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" || path == RootPath {
		return Resolution{RedirectTo: HomePath, Matched: true}
	}
	path = strings.TrimSuffix(path, "/")
	for _, e := range table {
		if e.Path == path {
			return Resolution{Entry: e, Matched: true}
		}
	}
	return Resolution{}
}

// Final follows redirects and returns the entry that ends up rendered.
func Final(path string) (Entry, bool) {
	for range 3 {
		r := Resolve(path)
		if !r.Matched {
			return Entry{}, false
		}
		if !r.Redirect() {
			return r.Entry, true
		}
		path = r.RedirectTo
	}
	return Entry{}, false
}

// MarshalYAML writes the layout by name.
func (l Layout) MarshalYAML() (any, error) { return l.String(), nil }

// MarshalYAML writes the page by name.
func (p Page) MarshalYAML() (any, error) { return p.String(), nil }
