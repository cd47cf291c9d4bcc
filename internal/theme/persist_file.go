package theme

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// preferencesFile is the on-disk document written by FilePersister.
type preferencesFile struct {
	Theme Theme `json:"theme"`
}

// FilePersister stores the preference as a small JSON document.
type FilePersister struct {
	fs   afero.Fs
	path string
}

// NewFilePersister creates a persister writing to path on fsys.
func NewFilePersister(fsys afero.Fs, path string) *FilePersister {
	return &FilePersister{fs: fsys, path: path}
}

// Load implements Persister.
func (p *FilePersister) Load(ctx context.Context) (Theme, error) {
	data, err := afero.ReadFile(p.fs, p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}

	var doc preferencesFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("decode %s: %w", p.path, err)
	}
	if doc.Theme == "" {
		return "", ErrNotFound
	}
	return Parse(string(doc.Theme))
}

// Save implements Persister.
func (p *FilePersister) Save(ctx context.Context, t Theme) error {
	if err := p.fs.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(preferencesFile{Theme: t}, "", "  ")
	if err != nil {
		return err
	}
	return afero.WriteFile(p.fs, p.path, data, 0o644)
}
