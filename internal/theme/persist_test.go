package theme

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilePersister(t *testing.T) {
	ctx := context.Background()
	memFs := afero.NewMemMapFs()
	p := NewFilePersister(memFs, "/config/dashctl/preferences.json")

	_, err := p.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, p.Save(ctx, Light))

	data, err := afero.ReadFile(memFs, "/config/dashctl/preferences.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"theme":"light"}`, string(data))

	got, err := p.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Light, got)
}

func TestFilePersister_CorruptDocument(t *testing.T) {
	memFs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memFs, "prefs.json", []byte("{not json"), 0o644))

	s := NewStore(NewFilePersister(memFs, "prefs.json"), Default)
	assert.Error(t, s.Init(context.Background()))
	assert.Equal(t, Dark, s.Current())
}

func TestSessionPersister(t *testing.T) {
	e := echo.New()
	store := sessions.NewCookieStore([]byte("a-very-secret-key-for-testing-!"))

	// First request saves the preference and returns the session cookie.
	req := httptest.NewRequest(http.MethodPost, "/theme", nil)
	rec := httptest.NewRecorder()
	save := func(c echo.Context) error {
		return NewSessionPersister(c, "preferences", DefaultKey).Save(c.Request().Context(), Light)
	}
	require.NoError(t, session.Middleware(store)(save)(e.NewContext(req, rec)))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	// Second request reads it back from the cookie.
	req = httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec = httptest.NewRecorder()

	var loaded Theme
	load := func(c echo.Context) error {
		var err error
		loaded, err = NewSessionPersister(c, "preferences", DefaultKey).Load(c.Request().Context())
		return err
	}
	require.NoError(t, session.Middleware(store)(load)(e.NewContext(req, rec)))
	assert.Equal(t, Light, loaded)
}

func TestSessionPersister_Empty(t *testing.T) {
	e := echo.New()
	store := sessions.NewCookieStore([]byte("a-very-secret-key-for-testing-!"))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	var loadErr error
	h := func(c echo.Context) error {
		_, loadErr = NewSessionPersister(c, "preferences", "").Load(c.Request().Context())
		return nil
	}
	require.NoError(t, session.Middleware(store)(h)(e.NewContext(req, rec)))
	assert.ErrorIs(t, loadErr, ErrNotFound)
}
