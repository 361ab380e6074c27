package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tieubaoca/reporto-be/service"
	"github.com/tieubaoca/reporto-be/types"
)

const streamContentType = "text/stream"

type ChatHandler struct {
	chatService *service.ChatService
	logger      *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, types.ErrorResponse{Detail: "Invalid request body"})
		return
	}

	prompt := service.BuildChatPrompt(req.Message, req.ContextText, req.ConversationHistory)

	header := c.Writer.Header()
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	header.Set("Content-Type", streamContentType)
	c.Status(http.StatusOK)
	c.Writer.WriteHeaderNow()
	c.Writer.Flush()

	// The request context is cancelled when the client goes away, which
	// stops the provider stream.
	for ev := range h.chatService.StreamChat(c.Request.Context(), prompt) {
		if err := writeEvent(c.Writer, ev); err != nil {
			h.logger.Info("client stopped reading chat stream", zap.Error(err))
			return
		}
		c.Writer.Flush()
	}
}

// writeEvent frames ev as "data: <json>\n\n".
func writeEvent(w io.Writer, ev types.StreamEvent) error {
	var buf bytes.Buffer
	buf.WriteString("data: ")
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(ev); err != nil {
		return err
	}
	buf.WriteString("\n")
	_, err := w.Write(buf.Bytes())
	return err
}
