package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mark3labs/dnvquote/internal/form"
	"github.com/mark3labs/dnvquote/internal/logger"
)

// FileStore keeps the draft in a JSON file inside a directory.
type FileStore struct {
	dir string
}

// NewFileStore returns a store rooted at dir. The directory is created on
// the first save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Path is the location of the draft file.
func (s *FileStore) Path() string {
	return filepath.Join(s.dir, Key+".json")
}

func (s *FileStore) Load(_ context.Context) (form.Draft, bool, error) {
	data, err := os.ReadFile(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return form.Draft{}, false, nil
	}
	if err != nil {
		return form.Draft{}, false, fmt.Errorf("reading draft: %w", err)
	}
	d, err := decode(data)
	if err != nil {
		return form.Draft{}, false, err
	}
	return d, true, nil
}

// Save writes to a temp file and renames it over the draft so a crash never
// leaves a half written file behind.
func (s *FileStore) Save(_ context.Context, d form.Draft) error {
	data, err := encode(d)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, Key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path()); err != nil {
		return fmt.Errorf("replacing draft: %w", err)
	}

	logger.Debug("Draft saved to %s", s.Path())
	return nil
}

func (s *FileStore) Clear(_ context.Context) error {
	err := os.Remove(s.Path())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing draft: %w", err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
