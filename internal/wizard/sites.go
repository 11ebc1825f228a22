package wizard

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/dnvquote/internal/form"
)

// ErrUnsupportedFile is returned for uploads with a disallowed extension.
var ErrUnsupportedFile = errors.New("unsupported file type")

// SitesEditor edits the site configuration and the uploaded file list
// (step 4). Only file names and sizes are recorded.
type SitesEditor struct {
	editor[form.Sites]
	allowed []string
}

func NewSitesEditor(d form.Draft, opts Options) *SitesEditor {
	return &SitesEditor{
		editor: editor[form.Sites]{
			step:     StepSites,
			value:    d.Sites,
			validate: form.ValidateSites,
			assign:   func(d *form.Draft, v form.Sites) { d.Sites = v },
			clone: func(s form.Sites) form.Sites {
				s.Files = append(form.FileSet(nil), s.Files...)
				return s
			},
		},
		allowed: opts.UploadExtensions,
	}
}

func (e *SitesEditor) Value() form.Sites { return e.value }

// Allowed lists the accepted extensions.
func (e *SitesEditor) Allowed() []string { return e.allowed }

func (e *SitesEditor) SetMode(m form.SiteMode) {
	e.value.Mode = m
	e.touch()
}

// AddFile records a file descriptor. Duplicates by name and size are
// ignored and reported as false.
func (e *SitesEditor) AddFile(f form.FileDescriptor) (bool, error) {
	if !form.AcceptsUpload(f.Name, e.allowed) {
		return false, fmt.Errorf("%w: %s (accepted: %s)", ErrUnsupportedFile, f.Name, strings.Join(e.allowed, ", "))
	}
	added := e.value.Files.Add(f)
	e.touch()
	return added, nil
}

// AddPath stats path and records its base name and size.
func (e *SitesEditor) AddPath(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("reading file info: %w", err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("%s is a directory", path)
	}
	return e.AddFile(form.FileDescriptor{Name: filepath.Base(path), Size: info.Size()})
}

func (e *SitesEditor) RemoveFile(name string, size int64) bool {
	removed := e.value.Files.Remove(name, size)
	e.touch()
	return removed
}
