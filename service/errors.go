package service

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrExtractionEmpty = errors.New("could not extract any text from the document")
	ErrExtraction      = errors.New("text extraction failed")
	ErrProvider        = errors.New("ai provider error")
)
