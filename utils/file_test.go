package utils

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tieubaoca/reporto-be/types"
)

func TestDetectMediaType(t *testing.T) {
	assert.Equal(t, types.MediaTypePDF, DetectMediaType("report.PDF", nil))
	assert.Equal(t, types.MediaTypeJPEG, DetectMediaType("scan.jpeg", nil))
	assert.Equal(t, types.MediaTypeJPEG, DetectMediaType("scan.jpg", nil))
	assert.Equal(t, types.MediaTypePNG, DetectMediaType("scan.png", nil))
	assert.Equal(t, types.MediaTypeWEBP, DetectMediaType("scan.webp", nil))
	assert.Equal(t, types.MediaTypePDF, DetectMediaType("noext", []byte("%PDF-1.4\n")))
	assert.Equal(t, "text/plain", DetectMediaType("notes", []byte("hello")))
}

func TestListFiles_SkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.pdf"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.png"), []byte("y"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	files, err := ListFiles(dir)
	require.NoError(t, err)
	sort.Strings(files)
	require.Equal(t, []string{filepath.Join(dir, "a.pdf"), filepath.Join(dir, "b.png")}, files)
}

func TestNewLogger(t *testing.T) {
	_, err := NewLogger("debug", "console")
	require.NoError(t, err)
	_, err = NewLogger("loud", "json")
	require.Error(t, err)
	_, err = NewLogger("info", "xml")
	require.Error(t, err)
}
