package utils

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/tieubaoca/reporto-be/types"
)

var extensionMediaTypes = map[string]string{
	".pdf":  types.MediaTypePDF,
	".jpg":  types.MediaTypeJPEG,
	".jpeg": types.MediaTypeJPEG,
	".png":  types.MediaTypePNG,
	".webp": types.MediaTypeWEBP,
}

// DetectMediaType guesses the media type of a local file from its extension,
// falling back to content sniffing for unknown extensions.
func DetectMediaType(path string, content []byte) string {
	if mt, ok := extensionMediaTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return mt
	}
	mt := http.DetectContentType(content)
	if idx := strings.Index(mt, ";"); idx != -1 {
		mt = mt[:idx]
	}
	return mt
}

// ReadDocument reads a local file and returns its content with the detected
// media type.
func ReadDocument(path string) ([]byte, string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read file: %w", err)
	}
	return content, DetectMediaType(path, content), nil
}

// ListFiles returns the regular files directly inside dir.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}
	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}
