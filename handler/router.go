package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tieubaoca/reporto-be/middleware"
	"github.com/tieubaoca/reporto-be/service"
)

type Handlers struct {
	Upload    *UploadHandler
	Chat      *ChatHandler
	Title     *TitleHandler
	WebSocket *service.WebSocketService
}

func NewRouter(h Handlers, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	// Apply global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(NewCorsHandler().CorsMiddleware)

	router.GET("/", HandleHealth)
	router.POST("/upload", h.Upload.HandleUpload)
	router.POST("/generate-title", h.Title.HandleGenerateTitle)
	router.POST("/chat", h.Chat.HandleChat)
	if h.WebSocket != nil {
		router.GET("/ws", gin.WrapF(h.WebSocket.HandleChat))
	}
	return router
}
