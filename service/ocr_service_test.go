package service

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tieubaoca/reporto-be/types"
)

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.Black)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNormalizeImage(t *testing.T) {
	out, err := normalizeImage(testPNG(t))
	require.NoError(t, err)

	img, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 4, img.Bounds().Dx())
}

func TestOCRService_UndecodableImage(t *testing.T) {
	svc := NewOCRService(types.OCRConfig{Command: filepath.Join(t.TempDir(), "missing")})

	_, err := svc.ExtractText(context.Background(), []byte("not an image"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode image")
}

func TestOCRService_MissingBinary(t *testing.T) {
	svc := NewOCRService(types.OCRConfig{Command: filepath.Join(t.TempDir(), "missing")})

	_, err := svc.ExtractText(context.Background(), testPNG(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tesseract")
}

func TestOCRService_RunsCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script stub")
	}
	script := filepath.Join(t.TempDir(), "fake-tesseract")
	// Prints its language argument so the test can check the flags.
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\ncat >/dev/null\necho \"recognised $4\"\n"), 0o755))

	svc := NewOCRService(types.OCRConfig{Command: script, Language: "eng+vie"})
	text, err := svc.ExtractText(context.Background(), testPNG(t))
	require.NoError(t, err)
	assert.Equal(t, "recognised eng+vie\n", text)
}

func TestNewOCRService_Defaults(t *testing.T) {
	svc := NewOCRService(types.OCRConfig{})
	assert.Equal(t, "tesseract", svc.command)
	assert.Equal(t, "eng", svc.language)
}
