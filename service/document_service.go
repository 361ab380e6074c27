package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tieubaoca/reporto-be/types"
)

// TextExtractor turns raw document bytes into plain text.
type TextExtractor interface {
	ExtractText(ctx context.Context, data []byte) (string, error)
}

// DocumentService dispatches uploaded files to the PDF or OCR extractor by
// media type.
type DocumentService struct {
	pdf    TextExtractor
	ocr    TextExtractor
	logger *zap.Logger
}

func NewDocumentService(pdf, ocr TextExtractor, logger *zap.Logger) *DocumentService {
	return &DocumentService{
		pdf:    pdf,
		ocr:    ocr,
		logger: logger,
	}
}

// Extract returns the text of data. It fails with ErrUnsupportedType before
// touching any extractor, with ErrExtractionEmpty when the text is blank, and
// with an error wrapping ErrExtraction when the underlying library fails.
func (s *DocumentService) Extract(ctx context.Context, data []byte, mediaType string) (string, error) {
	if !types.IsSupportedMediaType(mediaType) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, mediaType)
	}

	extractor := s.ocr
	if mediaType == types.MediaTypePDF {
		extractor = s.pdf
	}

	text, err := extractor.ExtractText(ctx, data)
	if err != nil {
		s.logger.Warn("text extraction failed",
			zap.String("media_type", mediaType),
			zap.Int("size", len(data)),
			zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrExtraction, err)
	}

	if strings.TrimSpace(text) == "" {
		return "", ErrExtractionEmpty
	}

	s.logger.Debug("text extracted",
		zap.String("media_type", mediaType),
		zap.Int("size", len(data)),
		zap.Int("chars", len(text)))
	return text, nil
}
