/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tieubaoca/reporto-be/handler"
	"github.com/tieubaoca/reporto-be/service"
	"github.com/tieubaoca/reporto-be/types"
)

const shutdownTimeout = 10 * time.Second

// startServerCmd represents the start command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the chat server",
	Long:  `Starts the HTTP server for document upload, chat streaming and title generation`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		// Initialize services
		aiService := service.NewAIService(ctx, service.ProviderConfigFrom(cfg), logger)
		documentService := service.NewDocumentService(
			service.NewPDFService(),
			service.NewOCRService(types.OCRConfig{
				Command:  cfg.OCR.Command,
				Language: cfg.OCR.Language,
			}),
			logger,
		)
		chatService := service.NewChatService(aiService, logger)
		titleService := service.NewTitleService(aiService, logger)

		gin.SetMode(gin.ReleaseMode)
		router := handler.NewRouter(handler.Handlers{
			Upload:    handler.NewUploadHandler(documentService, cfg.MaxUploadSize, logger),
			Chat:      handler.NewChatHandler(chatService, logger),
			Title:     handler.NewTitleHandler(titleService),
			WebSocket: service.NewWebSocketService(chatService, logger),
		}, logger)

		server := &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("Starting server", zap.String("port", cfg.Port), zap.String("provider", cfg.Provider), zap.String("model", cfg.Model))
			errCh <- server.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Server error", zap.Error(err))
				return err
			}
			return nil
		case <-ctx.Done():
		}

		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", zap.Error(err))
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startServerCmd)
	startServerCmd.Flags().StringP("port", "p", "", "port to listen on (overrides config)")
}
