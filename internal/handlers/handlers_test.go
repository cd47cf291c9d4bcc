package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/dashboard/internal/forms"
	"github.com/nfrund/dashboard/internal/handlers"
	"github.com/nfrund/dashboard/internal/middleware"
	"github.com/nfrund/dashboard/internal/pubsub"
	"github.com/nfrund/dashboard/internal/rendering"
	"github.com/nfrund/dashboard/internal/routes"
	"github.com/nfrund/dashboard/internal/testutils"
	"github.com/nfrund/dashboard/internal/theme"
	"github.com/nfrund/dashboard/internal/viewport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSubmitter struct {
	mu     sync.Mutex
	calls  int
	kind   forms.Kind
	values forms.Values
}

func (s *countingSubmitter) Submit(ctx context.Context, kind forms.Kind, values forms.Values) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.kind = kind
	s.values = values
	return nil
}

func (s *countingSubmitter) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type recordingPublisher struct {
	mu   sync.Mutex
	msgs []pubsub.Message
}

func (p *recordingPublisher) Publish(ctx context.Context, msg pubsub.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, msg)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.msgs)
}

type failingPersister struct{}

func (failingPersister) Load(ctx context.Context) (theme.Theme, error) { return "", theme.ErrNotFound }
func (failingPersister) Save(ctx context.Context, t theme.Theme) error {
	return errors.New("storage unavailable")
}

type testApp struct {
	e   *echo.Echo
	sub *countingSubmitter
	pub *recordingPublisher
}

func setupApp(extra ...echo.MiddlewareFunc) *testApp {
	e := echo.New()
	e.Validator = handlers.NewValidator()
	e.Use(session.Middleware(testutils.SessionStore()))
	e.Use(middleware.Preferences(middleware.PreferencesConfig{
		ThemeKey:     theme.DefaultKey,
		DefaultTheme: theme.Dark,
		Breakpoint:   viewport.DefaultBreakpoint,
	}))
	e.Use(extra...)

	app := &testApp{e: e, sub: &countingSubmitter{}, pub: &recordingPublisher{}}
	v := handlers.NewView(rendering.NewUniversalRenderer())
	pagesH := handlers.NewPageHandler(v)
	authH := handlers.NewAuthHandler(v, app.sub)
	themeH := handlers.NewThemeHandler(app.pub)

	e.GET(routes.RootPath, pagesH.Root)
	for _, entry := range routes.Table() {
		e.GET(entry.Path, pagesH.Show(entry))
	}
	e.POST("/login", authH.LoginPost)
	e.POST("/signup", authH.SignupPost)
	e.POST("/forgot-password", authH.ForgotPasswordPost)
	e.POST("/theme", themeH.Set)
	e.POST("/theme/toggle", themeH.Toggle)
	e.POST("/viewport", handlers.NewViewportHandler().Report)
	return app
}

// client carries cookies between requests the way a browser would.
type client struct {
	t       *testing.T
	app     *testApp
	cookies map[string]*http.Cookie
}

func newClient(t *testing.T, app *testApp) *client {
	return &client{t: t, app: app, cookies: map[string]*http.Cookie{}}
}

func (cl *client) do(req *http.Request) *httptest.ResponseRecorder {
	for _, ck := range cl.cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	cl.app.e.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		cl.cookies[ck.Name] = ck
	}
	return rec
}

func (cl *client) get(path string) *httptest.ResponseRecorder {
	return cl.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (cl *client) post(path string, form url.Values, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	return cl.do(req)
}

func TestRootRedirectsToDashboard(t *testing.T) {
	cl := newClient(t, setupApp())

	rec := cl.get("/")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, routes.HomePath, rec.Header().Get(echo.HeaderLocation))

	home := cl.get(rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, http.StatusOK, home.Code)
	assert.Contains(t, home.Body.String(), "Dashboard Overview")
}

func TestPages_RenderInTheirLayout(t *testing.T) {
	cl := newClient(t, setupApp())

	for _, entry := range routes.Table() {
		t.Run(entry.Path, func(t *testing.T) {
			rec := cl.get(entry.Path)
			require.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			assert.Contains(t, body, "<title>"+entry.Title+" - Dashboard</title>")
			if entry.Layout == routes.LayoutDashboard {
				assert.Contains(t, body, `id="sidebar"`)
			} else {
				assert.Contains(t, body, `class="auth"`)
				assert.NotContains(t, body, `id="sidebar"`)
			}
		})
	}
}

func TestUnknownPathIsNotFound(t *testing.T) {
	rec := newClient(t, setupApp()).get("/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLogin_InvalidThenValid(t *testing.T) {
	app := setupApp()
	cl := newClient(t, app)

	rec := cl.post("/login", url.Values{"email": {"a@b.co"}, "password": {"123"}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), forms.MsgShortPassword)
	assert.Contains(t, rec.Body.String(), `value="a@b.co"`)
	assert.Equal(t, 0, app.sub.Calls())

	rec = cl.post("/login", url.Values{"email": {"a@b.co"}, "password": {"123456"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "field-error")
	assert.NotContains(t, rec.Body.String(), `value="123456"`)
	assert.Equal(t, 1, app.sub.Calls())
	assert.Equal(t, forms.KindLogin, app.sub.kind)
	assert.Equal(t, forms.Values{"email": "a@b.co", "password": "123456"}, app.sub.values)
}

func TestForgotPassword_RejectsEmailWithoutTLD(t *testing.T) {
	app := setupApp()
	rec := newClient(t, app).post("/forgot-password", url.Values{"email": {"user@example"}})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), forms.MsgInvalidEmail)
	assert.Equal(t, 0, app.sub.Calls())
}

func TestSignup_Valid(t *testing.T) {
	app := setupApp()
	rec := newClient(t, app).post("/signup", url.Values{"email": {"new@example.com"}, "password": {"hunter22"}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, app.sub.Calls())
	assert.Equal(t, forms.KindSignup, app.sub.kind)
}

func TestThemeToggle_TwiceRoundTrips(t *testing.T) {
	app := setupApp()
	cl := newClient(t, app)

	assert.Contains(t, cl.get(routes.HomePath).Body.String(), `data-theme="dark"`)

	rec := cl.post("/theme/toggle", url.Values{}, "HX-Request", "true")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "true", rec.Header().Get("HX-Refresh"))
	assert.Contains(t, cl.get(routes.HomePath).Body.String(), `data-theme="light"`)

	cl.post("/theme/toggle", url.Values{}, "HX-Request", "true")
	assert.Contains(t, cl.get(routes.HomePath).Body.String(), `data-theme="dark"`)
	assert.Equal(t, 2, app.pub.Count())
}

func TestThemeSet(t *testing.T) {
	t.Run("plain form post redirects back", func(t *testing.T) {
		cl := newClient(t, setupApp())
		rec := cl.post("/theme", url.Values{"theme": {"system"}, "return_to": {"/dashboard/users"}})

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard/users", rec.Header().Get(echo.HeaderLocation))

		req := httptest.NewRequest(http.MethodGet, "/dashboard/users", nil)
		req.Header.Set(middleware.HeaderPrefersColorScheme, "light")
		body := cl.do(req).Body.String()
		assert.Contains(t, body, `data-theme="system"`)
		assert.Contains(t, body, `class="light"`)
		assert.Contains(t, body, handlers.ThemeSavedMessage(theme.System))
	})

	t.Run("invalid theme", func(t *testing.T) {
		app := setupApp()
		rec := newClient(t, app).post("/theme", url.Values{"theme": {"sepia"}})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, 0, app.pub.Count())
	})

	t.Run("missing theme", func(t *testing.T) {
		rec := newClient(t, setupApp()).post("/theme", url.Values{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("same theme publishes nothing", func(t *testing.T) {
		app := setupApp()
		rec := newClient(t, app).post("/theme", url.Values{"theme": {"dark"}}, "HX-Request", "true")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, 0, app.pub.Count())
	})
}

func TestThemeToggle_FromSystemUsesReportedScheme(t *testing.T) {
	tests := []struct {
		name    string
		prefers string
		hint    string
		want    string
	}{
		{"reported light without hint", "light", "", "dark"},
		{"reported dark without hint", "dark", "", "light"},
		{"reported scheme beats hint", "light", "dark", "dark"},
		{"hint used when nothing reported", "", "light", "dark"},
		{"dark when neither is known", "", "", "light"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cl := newClient(t, setupApp())
			cl.post("/theme", url.Values{"theme": {"system"}}, "HX-Request", "true")

			headers := []string{"HX-Request", "true"}
			if tt.hint != "" {
				headers = append(headers, middleware.HeaderPrefersColorScheme, tt.hint)
			}
			rec := cl.post("/theme/toggle", url.Values{"prefers": {tt.prefers}}, headers...)
			require.Equal(t, http.StatusNoContent, rec.Code)

			assert.Contains(t, cl.get(routes.HomePath).Body.String(), `data-theme="`+tt.want+`"`)
		})
	}
}

func TestThemeSet_HTMXDoesNotFlash(t *testing.T) {
	cl := newClient(t, setupApp())
	cl.post("/theme", url.Values{"theme": {"light"}}, "HX-Request", "true")
	assert.NotContains(t, cl.get(routes.HomePath).Body.String(), handlers.ThemeSavedMessage(theme.Light))
}

func TestThemeToggle_StorageFailureIsFlashed(t *testing.T) {
	failing := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method == http.MethodPost {
				c.Set(middleware.ThemeStoreKey, theme.NewStore(failingPersister{}, theme.Dark))
			}
			return next(c)
		}
	}
	cl := newClient(t, setupApp(failing))

	rec := cl.post("/theme/toggle", url.Values{"return_to": {"/login"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))

	body := cl.get("/login").Body.String()
	assert.Contains(t, body, handlers.MsgThemeNotSaved)
	assert.Contains(t, body, `data-theme="dark"`)
}

func TestViewport_CompactAfterReport(t *testing.T) {
	cl := newClient(t, setupApp())

	assert.Contains(t, cl.get(routes.HomePath).Body.String(), `id="sidebar"`)

	rec := cl.post("/viewport", url.Values{"width": {"390"}})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "true", rec.Header().Get("HX-Refresh"))

	body := cl.get(routes.HomePath).Body.String()
	assert.NotContains(t, body, `id="sidebar"`)
	assert.Contains(t, body, `data-drawer-trigger`)

	rec = cl.post("/viewport", url.Values{"width": {"400"}})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("HX-Refresh"))

	rec = cl.post("/viewport", url.Values{"width": {"1280"}})
	assert.Equal(t, "true", rec.Header().Get("HX-Refresh"))
	assert.Contains(t, cl.get(routes.HomePath).Body.String(), `id="sidebar"`)
}

func TestViewport_InvalidWidth(t *testing.T) {
	cl := newClient(t, setupApp())
	for _, w := range []string{"abc", "0", "-5", ""} {
		rec := cl.post("/viewport", url.Values{"width": {w}})
		assert.Equal(t, http.StatusBadRequest, rec.Code, "width %q", w)
	}
}

func TestSafeReturnTo(t *testing.T) {
	tests := map[string]string{
		"":                      routes.HomePath,
		"/dashboard/settings":   "/dashboard/settings",
		"/login?x=1":            "/login?x=1",
		"//evil.example":        routes.HomePath,
		"https://evil.example/": routes.HomePath,
		"/\\evil.example":       routes.HomePath,
		"dashboard":             routes.HomePath,
	}
	for in, want := range tests {
		assert.Equal(t, want, handlers.SafeReturnTo(in), "input %q", in)
	}
}
