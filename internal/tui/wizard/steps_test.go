package wizard

import (
	"os"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/dnvquote/internal/form"
	"github.com/mark3labs/dnvquote/internal/review"
	wiz "github.com/mark3labs/dnvquote/internal/wizard"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("x"), 0644))
	}
}

func TestFilePicker_ListsAcceptedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "sites.csv", "notes.txt")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0755))

	fp := NewFilePicker(dir, wiz.DefaultOptions().UploadExtensions)
	v := fp.View()
	require.Contains(t, v, "sites.csv")
	require.Contains(t, v, "archive")
	require.NotContains(t, v, "notes.txt")

	// "..", then the directory, then the file.
	fp.Update(keyDown)
	fp.Update(keyDown)
	require.Equal(t, filepath.Join(dir, "sites.csv"), fp.SelectedPath())

	cmd := fp.Update(keyEnter)
	require.NotNil(t, cmd)
	require.Equal(t, FileSelectedMsg{Path: filepath.Join(dir, "sites.csv")}, cmd())

	require.IsType(t, FilePickerClosedMsg{}, fp.Update(keyEsc)())
}

func TestSitesStep_AddsFilesAndTemplates(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "sites.xlsx", "notes.txt")

	d := completeDraft()
	d.Sites.Mode = form.SiteMultiple
	ed := wiz.NewSitesEditor(d, wiz.DefaultOptions())
	s := newSitesStep(ed, dir)
	s.SetSize(80, 40)
	s.Focus()

	s.Update(openPickerMsg{})
	require.True(t, s.Capturing())
	s.Update(FilePickerClosedMsg{})
	require.False(t, s.Capturing())

	s.Update(FileSelectedMsg{Path: filepath.Join(dir, "sites.xlsx")})
	require.Len(t, ed.Value().Files, 1)
	require.Contains(t, s.View(), "Added")
	require.Contains(t, s.View(), "sites.xlsx")

	s.Update(FileSelectedMsg{Path: filepath.Join(dir, "sites.xlsx")})
	require.Contains(t, s.View(), "File already added")

	s.Update(FileSelectedMsg{Path: filepath.Join(dir, "notes.txt")})
	require.Len(t, ed.Value().Files, 1)
	require.Contains(t, s.View(), "unsupported file type")

	s.Update(writeTemplateMsg{format: review.FormatCSV})
	require.FileExists(t, filepath.Join(dir, review.TemplateCSVFileName))
	require.Contains(t, s.View(), "Template saved to")
}

func TestSitesStep_FileListOnlyForMultiple(t *testing.T) {
	d := completeDraft()
	ed := wiz.NewSitesEditor(d, wiz.DefaultOptions())
	s := newSitesStep(ed, t.TempDir())
	s.SetSize(80, 40)
	s.Focus()
	require.NotContains(t, s.View(), "Site Information Files")

	s.Update(keyDown)
	s.Update(keySpace)
	require.Equal(t, form.SiteMultiple, ed.Value().Mode)
	require.Contains(t, s.View(), "Site Information Files")
}

func TestServicesStep_OtherServicesEditor(t *testing.T) {
	t.Setenv("EDITOR", "")
	ed := wiz.NewServicesEditor(completeDraft())
	s := newServicesStep(ed)
	s.SetSize(80, 40)
	s.Focus()

	require.Nil(t, s.Update(tea.KeyPressMsg{Code: 'e', Mod: tea.ModCtrl}))
	require.Contains(t, s.View(), "Set $EDITOR")

	s.Update(OtherServicesEditedMsg{Names: []string{"Telehealth", "", "Telehealth", "Sleep Lab"}})
	require.Equal(t, []string{"Telehealth", "Sleep Lab"}, ed.Value().Other)
}

func TestServicesStep_ToggleFirstService(t *testing.T) {
	ed := wiz.NewServicesEditor(completeDraft())
	s := newServicesStep(ed)
	s.Focus()

	s.Update(keySpace)
	cat := form.ServiceCatalog[0]
	require.True(t, ed.Value().IsSelected(cat.Name, cat.Services[0]))
}
