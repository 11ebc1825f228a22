package form

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// FileDescriptor is the metadata kept for an uploaded site-information file.
// The file contents are never read.
type FileDescriptor struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// SizeLabel formats the size in kilobytes with one decimal.
func (f FileDescriptor) SizeLabel() string {
	return fmt.Sprintf("%.1f KB", float64(f.Size)/1024)
}

// FileSet is an ordered set of file descriptors keyed on (name, size).
type FileSet []FileDescriptor

// Contains reports whether an entry with the same name and size exists.
func (s FileSet) Contains(name string, size int64) bool {
	return slices.ContainsFunc(s, func(f FileDescriptor) bool {
		return f.Name == name && f.Size == size
	})
}

// Add appends f unless a file with the same name and size is present.
func (s *FileSet) Add(f FileDescriptor) bool {
	if s.Contains(f.Name, f.Size) {
		return false
	}
	*s = append(*s, f)
	return true
}

// Remove deletes the entry matching name and size.
func (s *FileSet) Remove(name string, size int64) bool {
	i := slices.IndexFunc(*s, func(f FileDescriptor) bool {
		return f.Name == name && f.Size == size
	})
	if i < 0 {
		return false
	}
	*s = slices.Delete(*s, i, i+1)
	return true
}

// AcceptsUpload reports whether name has one of the allowed extensions.
func AcceptsUpload(name string, allowed []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return false
	}
	return slices.Contains(allowed, ext)
}
