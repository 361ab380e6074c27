package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os/exec"

	_ "golang.org/x/image/webp"

	"github.com/tieubaoca/reporto-be/types"
)

// OCRService recognises text in images with the tesseract binary
type OCRService struct {
	command  string
	language string
}

func NewOCRService(config types.OCRConfig) *OCRService {
	command := config.Command
	if command == "" {
		command = "tesseract"
	}
	language := config.Language
	if language == "" {
		language = "eng"
	}
	return &OCRService{
		command:  command,
		language: language,
	}
}

// ExtractText decodes data as JPEG, PNG or WebP and runs tesseract on it.
func (s *OCRService) ExtractText(ctx context.Context, data []byte) (string, error) {
	normalized, err := normalizeImage(data)
	if err != nil {
		return "", err
	}

	ocrCmd := exec.CommandContext(ctx, s.command,
		"stdin",
		"stdout",
		"-l", s.language,
		"--oem", "3", // LSTM engine
		"--psm", "3", // Automatic page segmentation
	)
	var ocrOut, ocrErr bytes.Buffer
	ocrCmd.Stdin = bytes.NewReader(normalized)
	ocrCmd.Stdout = &ocrOut
	ocrCmd.Stderr = &ocrErr
	if err := ocrCmd.Run(); err != nil {
		return "", fmt.Errorf("failed to run tesseract: %w: %s", err, bytes.TrimSpace(ocrErr.Bytes()))
	}
	return ocrOut.String(), nil
}

// normalizeImage decodes any supported image format and re-encodes it as PNG,
// which every tesseract build can read.
func normalizeImage(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
