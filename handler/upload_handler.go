package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tieubaoca/reporto-be/service"
	"github.com/tieubaoca/reporto-be/types"
)

// multipartOverhead allows for boundaries and part headers around the file.
const multipartOverhead = 1 << 20

type UploadHandler struct {
	documentService *service.DocumentService
	maxUploadSize   int64
	logger          *zap.Logger
}

func NewUploadHandler(documentService *service.DocumentService, maxUploadSize int64, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		documentService: documentService,
		maxUploadSize:   maxUploadSize,
		logger:          logger,
	}
}

func (h *UploadHandler) HandleUpload(c *gin.Context) {
	bodyLimit := h.maxUploadSize + multipartOverhead
	if c.Request.ContentLength > bodyLimit {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Detail: "File too large."})
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, bodyLimit)

	file, header, err := c.Request.FormFile("file")
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Detail: "File too large."})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Detail: "Invalid file"})
		return
	}
	defer file.Close()

	mediaType := header.Header.Get("Content-Type")
	if !types.IsSupportedMediaType(mediaType) {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Detail: "Unsupported file type."})
		return
	}

	if header.Size > h.maxUploadSize {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Detail: "File too large."})
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Detail: "Failed to process file: " + err.Error()})
		return
	}

	text, err := h.documentService.Extract(c.Request.Context(), content, mediaType)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrUnsupportedType):
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Detail: "Unsupported file type."})
		return
	case errors.Is(err, service.ErrExtractionEmpty):
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Detail: "Could not extract any text from the document."})
		return
	default:
		h.logger.Error("failed to process upload",
			zap.String("filename", header.Filename),
			zap.String("media_type", mediaType),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Detail: "Failed to process file: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, types.UploadResponse{
		Filename:      header.Filename,
		ExtractedText: text,
	})
}
