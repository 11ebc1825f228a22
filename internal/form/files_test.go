package form

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileSet_DedupOnNameAndSize(t *testing.T) {
	var s FileSet
	require.True(t, s.Add(FileDescriptor{Name: "sites.csv", Size: 1024}))
	require.False(t, s.Add(FileDescriptor{Name: "sites.csv", Size: 1024}))
	require.Len(t, s, 1)

	// Same name with a different size is a different file.
	require.True(t, s.Add(FileDescriptor{Name: "sites.csv", Size: 2048}))
	// Same size with a different name too.
	require.True(t, s.Add(FileDescriptor{Name: "other.csv", Size: 1024}))
	require.Len(t, s, 3)
}

func TestFileSet_AddOrderIndependent(t *testing.T) {
	files := []FileDescriptor{
		{Name: "a.csv", Size: 1},
		{Name: "b.xlsx", Size: 2},
		{Name: "a.csv", Size: 1},
		{Name: "b.xlsx", Size: 2},
		{Name: "c.pdf", Size: 3},
	}

	var forward FileSet
	added := 0
	for _, f := range files {
		if forward.Add(f) {
			added++
		}
	}
	require.Equal(t, 3, added)

	var backward FileSet
	for i := len(files) - 1; i >= 0; i-- {
		backward.Add(files[i])
	}

	require.ElementsMatch(t, forward, backward)
	seen := map[FileDescriptor]bool{}
	for _, f := range backward {
		require.False(t, seen[f], "duplicate %v", f)
		seen[f] = true
	}
}

func TestFileSet_Remove(t *testing.T) {
	var s FileSet
	s.Add(FileDescriptor{Name: "a.csv", Size: 1})
	s.Add(FileDescriptor{Name: "b.csv", Size: 2})

	require.False(t, s.Remove("a.csv", 99))
	require.True(t, s.Remove("a.csv", 1))
	require.Equal(t, FileSet{{Name: "b.csv", Size: 2}}, s)
}

func TestFileDescriptor_SizeLabel(t *testing.T) {
	require.Equal(t, "1.0 KB", FileDescriptor{Size: 1024}.SizeLabel())
	require.Equal(t, "1.5 KB", FileDescriptor{Size: 1536}.SizeLabel())
}

func TestAcceptsUpload(t *testing.T) {
	allowed := []string{".csv", ".xls", ".xlsx", ".pdf"}
	tests := []struct {
		name string
		want bool
	}{
		{"sites.csv", true},
		{"SITES.XLSX", true},
		{"legacy.xls", true},
		{"scan.pdf", true},
		{"notes.txt", false},
		{"noext", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, AcceptsUpload(tt.name, allowed))
		})
	}
	require.False(t, AcceptsUpload("scan.pdf", []string{".csv"}))
}
