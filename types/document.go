package types

const (
	MediaTypePDF  = "application/pdf"
	MediaTypeJPEG = "image/jpeg"
	MediaTypePNG  = "image/png"
	MediaTypeWEBP = "image/webp"
)

var SupportedMediaTypes = []string{
	MediaTypePDF,
	MediaTypeJPEG,
	MediaTypePNG,
	MediaTypeWEBP,
}

func IsSupportedMediaType(mediaType string) bool {
	for _, t := range SupportedMediaTypes {
		if t == mediaType {
			return true
		}
	}
	return false
}

type UploadResponse struct {
	Filename      string `json:"filename"`
	ExtractedText string `json:"extractedText"`
}

// OCRConfig contains configuration options for image text recognition
type OCRConfig struct {
	Command  string // Path or name of the tesseract binary
	Language string // Tesseract language pack(s), e.g. "eng" or "eng+vie"
}
