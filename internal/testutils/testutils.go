// Package testutils holds helpers shared by the package tests.
package testutils

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"
	"github.com/nfrund/dashboard/internal/config"
)

// SessionSecret signs the cookies of test session stores.
const SessionSecret = "a-very-secret-key-for-testing-!"

// ConfigForTests applies the project's .env.test file, when there is one,
// and returns the parsed configuration.
func ConfigForTests(t *testing.T) *config.Config {
	t.Helper()

	// Find the project root by looking for go.mod.
	path, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			break
		}
		if path == filepath.Dir(path) {
			t.Fatalf("could not find project root with go.mod")
		}
		path = filepath.Dir(path)
	}

	env, err := godotenv.Read(filepath.Join(path, ".env.test"))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("failed to load .env.test file: %v", err)
	}
	for key, value := range env {
		t.Setenv(key, value)
	}

	cfg, err := config.Parse()
	if err != nil {
		t.Fatalf("invalid test configuration: %v", err)
	}
	return cfg
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SessionStore returns a cookie store signed with SessionSecret.
func SessionStore() sessions.Store {
	return sessions.NewCookieStore([]byte(SessionSecret))
}
