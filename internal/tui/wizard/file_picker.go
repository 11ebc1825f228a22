package wizard

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/dnvquote/internal/form"
)

// FileItem represents a file or directory in the file picker.
type FileItem struct {
	name  string
	path  string
	size  int64
	isDir bool
}

// Render returns the display line for the item, truncated to width.
func (f *FileItem) Render(width int) string {
	icon := "📄"
	if f.isDir {
		icon = "📁"
	}
	display := icon + " " + f.name
	if !f.isDir {
		display += "  " + form.FileDescriptor{Name: f.name, Size: f.size}.SizeLabel()
	}

	runes := []rune(display)
	if width > 5 && len(runes) > width-2 {
		display = string(runes[:width-5]) + "..."
	}
	return display
}

// FilePicker browses the filesystem for site information files. Only
// directories and files with an accepted extension are listed.
type FilePicker struct {
	currentPath string
	allowed     []string
	items       []*FileItem
	selectedIdx int
	err         string
	width       int
	height      int
}

// NewFilePicker opens a picker in dir, or the working directory when dir
// is empty.
func NewFilePicker(dir string, allowed []string) *FilePicker {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			cwd = "."
		}
		dir = cwd
	}

	fp := &FilePicker{
		allowed: allowed,
		width:   60,
		height:  10,
	}
	if err := fp.loadDirectory(dir); err != nil {
		fp.err = err.Error()
	}
	return fp
}

// loadDirectory lists path with directories first, then accepted files.
func (f *FilePicker) loadDirectory(path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	f.items = f.items[:0]

	absPath, err := filepath.Abs(path)
	if err == nil && absPath != filepath.Dir(absPath) {
		f.items = append(f.items, &FileItem{name: "..", path: filepath.Dir(absPath), isDir: true})
	}

	var dirs, files []*FileItem
	for _, entry := range entries {
		fullPath := filepath.Join(path, entry.Name())
		if entry.IsDir() {
			dirs = append(dirs, &FileItem{name: entry.Name(), path: fullPath, isDir: true})
			continue
		}
		if !form.AcceptsUpload(entry.Name(), f.allowed) {
			continue
		}
		var size int64
		if info, err := entry.Info(); err == nil {
			size = info.Size()
		}
		files = append(files, &FileItem{name: entry.Name(), path: fullPath, size: size})
	}

	byName := func(items []*FileItem) {
		sort.Slice(items, func(i, j int) bool {
			return strings.ToLower(items[i].name) < strings.ToLower(items[j].name)
		})
	}
	byName(dirs)
	byName(files)

	f.items = append(f.items, dirs...)
	f.items = append(f.items, files...)
	f.currentPath = path
	f.selectedIdx = 0
	f.err = ""
	return nil
}

// SetSize updates the dimensions for the file picker.
func (f *FilePicker) SetSize(width, height int) {
	f.width = width
	f.height = height
}

// Update handles navigation. Choosing a file emits FileSelectedMsg and esc
// emits FilePickerClosedMsg.
func (f *FilePicker) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "up", "k":
		if f.selectedIdx > 0 {
			f.selectedIdx--
		}
	case "down", "j":
		if f.selectedIdx < len(f.items)-1 {
			f.selectedIdx++
		}
	case "enter":
		if f.selectedIdx < 0 || f.selectedIdx >= len(f.items) {
			return nil
		}
		item := f.items[f.selectedIdx]
		if item.isDir {
			if err := f.loadDirectory(item.path); err != nil {
				f.err = err.Error()
			}
			return nil
		}
		return func() tea.Msg { return FileSelectedMsg{Path: item.path} }
	case "backspace":
		parentPath := filepath.Dir(f.currentPath)
		if parentPath != f.currentPath {
			if err := f.loadDirectory(parentPath); err != nil {
				f.err = err.Error()
			}
		}
	case "esc":
		return func() tea.Msg { return FilePickerClosedMsg{} }
	}
	return nil
}

// View renders the current directory listing.
func (f *FilePicker) View() string {
	s := styles()
	var b strings.Builder

	b.WriteString(s.Label.Render(f.currentPath))
	b.WriteString("\n")
	b.WriteString(s.Muted.Render("Accepted: " + strings.Join(f.allowed, ", ")))
	b.WriteString("\n\n")

	hasFiles := false
	for _, item := range f.items {
		if !item.isDir {
			hasFiles = true
			break
		}
	}

	// Window the listing around the selection.
	rows := max(f.height-6, 3)
	start := 0
	if f.selectedIdx >= rows {
		start = f.selectedIdx - rows + 1
	}
	end := min(start+rows, len(f.items))
	for i := start; i < end; i++ {
		b.WriteString(renderCursorLine(i == f.selectedIdx, f.items[i].Render(f.width)))
		b.WriteString("\n")
	}
	if !hasFiles {
		b.WriteString(s.Muted.Render("No accepted files in this directory"))
		b.WriteString("\n")
	}
	if f.err != "" {
		b.WriteString(renderError(f.err))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderHintBar(
		"↑↓/j/k", "navigate",
		"enter", "select",
		"backspace", "up",
		"esc", "close",
	))
	return b.String()
}

// SelectedPath returns the currently selected file path (empty if directory selected).
func (f *FilePicker) SelectedPath() string {
	if f.selectedIdx >= 0 && f.selectedIdx < len(f.items) {
		if item := f.items[f.selectedIdx]; !item.isDir {
			return item.path
		}
	}
	return ""
}

// FileSelectedMsg is sent when a file is selected.
type FileSelectedMsg struct {
	Path string
}

// FilePickerClosedMsg is sent when the picker is dismissed without a choice.
type FilePickerClosedMsg struct{}
