package theme

import (
	"context"
	"fmt"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// SessionPersister keeps the preference in a gorilla session cookie, the
// server-side stand-in for the browser's local storage.
type SessionPersister struct {
	c           echo.Context
	sessionName string
	key         string
}

// NewSessionPersister binds a persister to the current request. The session
// middleware must already be installed on the echo instance.
func NewSessionPersister(c echo.Context, sessionName, key string) *SessionPersister {
	if key == "" {
		key = DefaultKey
	}
	return &SessionPersister{c: c, sessionName: sessionName, key: key}
}

// Load implements Persister.
func (p *SessionPersister) Load(ctx context.Context) (Theme, error) {
	sess, err := session.Get(p.sessionName, p.c)
	if err != nil {
		return "", fmt.Errorf("open session %q: %w", p.sessionName, err)
	}
	raw, ok := sess.Values[p.key].(string)
	if !ok || raw == "" {
		return "", ErrNotFound
	}
	return Parse(raw)
}

// Save implements Persister.
func (p *SessionPersister) Save(ctx context.Context, t Theme) error {
	sess, err := session.Get(p.sessionName, p.c)
	if err != nil {
		return fmt.Errorf("open session %q: %w", p.sessionName, err)
	}
	sess.Values[p.key] = string(t)
	return sess.Save(p.c.Request(), p.c.Response())
}
