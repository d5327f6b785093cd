package textfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	require.NoError(t, Write(path, "merged content\n"))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "merged content\n", got)
}

func TestReadValidatesExtension(t *testing.T) {
	for _, name := range []string{"template.txt", "template.md", "template.xml", "TEMPLATE.TXT"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
		_, err := Read(path)
		assert.NoError(t, err, name)
	}

	_, err := Read(filepath.Join(t.TempDir(), "template.docx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestWriteRejectsEmptyData(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "out.txt"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty output")
}

func TestWriteRejectsUnsupportedExtension(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "out.bin"), "data")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestWriteReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.md")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))
	require.NoError(t, Write(path, "new"))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "new", got)

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSupportedExts(t *testing.T) {
	assert.Equal(t, []string{".md", ".txt", ".xml"}, SupportedExts())
}
