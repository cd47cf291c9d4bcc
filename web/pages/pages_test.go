package pages

import (
	"strings"
	"testing"

	"github.com/nfrund/dashboard/internal/forms"
	"github.com/nfrund/dashboard/internal/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestOverview(t *testing.T) {
	out := render(t, Overview())

	assert.Contains(t, out, "Dashboard Overview")
	assert.Contains(t, out, "Welcome to your dashboard")
	for _, s := range Stats {
		assert.Contains(t, out, s.Title)
		assert.Contains(t, out, s.Value)
		assert.Contains(t, out, s.Change)
	}
	assert.Contains(t, out, "Recent Activity")
	assert.Equal(t, 3, strings.Count(out, "User activity"))
	assert.Equal(t, 3, strings.Count(out, `<span class="badge">Active</span>`))
}

func TestSections(t *testing.T) {
	tests := []struct {
		page routes.Page
		want []string
	}{
		{routes.PageUsers, []string{"Users", "All Users", "Users list will be displayed here"}},
		{routes.PageAnalytics, []string{"Analytics", "Analytics Data", "Analytics charts will be displayed here"}},
		{routes.PageSettings, []string{"Settings", "Application Settings", "Settings form will be displayed here"}},
	}
	for _, tt := range tests {
		t.Run(tt.page.String(), func(t *testing.T) {
			out := render(t, Content(tt.page, FormData{}))
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestLogin_ShowsErrorsAndKeepsEmail(t *testing.T) {
	out := render(t, Login(FormData{
		Action: "/login",
		Values: forms.Values{"email": "a@b.co", "password": ""},
		Errors: forms.FieldErrors{"password": forms.MsgShortPassword},
	}))

	assert.Contains(t, out, `action="/login"`)
	assert.Contains(t, out, `value="a@b.co"`)
	assert.Contains(t, out, forms.MsgShortPassword)
	assert.NotContains(t, out, forms.MsgInvalidEmail)
	assert.Contains(t, out, `href="/forgot-password"`)
	assert.Contains(t, out, `href="/signup"`)
}

func TestForgotPassword(t *testing.T) {
	out := render(t, ForgotPassword(FormData{
		Action: "/forgot-password",
		Errors: forms.FieldErrors{"email": forms.MsgInvalidEmail},
	}))

	assert.Contains(t, out, "Reset Password")
	assert.Contains(t, out, "Send Reset Link")
	assert.Contains(t, out, "Back to sign in")
	assert.Contains(t, out, forms.MsgInvalidEmail)
	assert.NotContains(t, out, `name="password"`)
}

func TestSignup(t *testing.T) {
	out := render(t, Signup(FormData{Action: "/signup"}))

	assert.Contains(t, out, "Create Account")
	assert.Contains(t, out, `href="/login"`)
	assert.NotContains(t, out, "field-error")
}
