package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tieubaoca/reporto-be/service"
	"github.com/tieubaoca/reporto-be/types"
)

type TitleHandler struct {
	titleService *service.TitleService
}

func NewTitleHandler(titleService *service.TitleService) *TitleHandler {
	return &TitleHandler{
		titleService: titleService,
	}
}

func (h *TitleHandler) HandleGenerateTitle(c *gin.Context) {
	var req types.TitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, types.ErrorResponse{Detail: "Invalid request body"})
		return
	}

	title := h.titleService.GenerateTitle(c.Request.Context(), req.FirstUserMessage, req.FirstAiMessage)
	c.JSON(http.StatusOK, types.TitleResponse{Title: title})
}
