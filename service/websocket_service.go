package service

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/tieubaoca/reporto-be/types"
)

const (
	wsReadLimit   = 4 << 20
	wsIdleTimeout = 5 * time.Minute

	wsMessageBuffer = 16
)

// WebSocketService serves chat over a WebSocket connection. Every chat
// message is answered with the same event sequence as the streaming HTTP
// endpoint, one JSON frame per event.
type WebSocketService struct {
	chat     *ChatService
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

func NewWebSocketService(chat *ChatService, logger *zap.Logger) *WebSocketService {
	return &WebSocketService{
		chat: chat,
		upgrader: websocket.Upgrader{
			// Same open posture as the HTTP CORS policy.
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		logger: logger,
	}
}

func (s *WebSocketService) HandleChat(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	conn.SetReadLimit(wsReadLimit)

	// The request context is not cancelled once the connection is hijacked,
	// so a peer going away is detected by the reader and cancels ctx. That
	// aborts any in-flight provider stream.
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	messages := s.readMessages(ctx, cancel, conn)

	for p := range messages {
		var req types.WebsocketRequest
		if err := json.Unmarshal(p, &req); err != nil {
			if s.writeError(conn, "Invalid message") != nil {
				return
			}
			continue
		}

		switch req.Type {
		case types.TypeWebsocketChat:
			var payload types.ChatRequest
			if err := json.Unmarshal(req.Payload, &payload); err != nil {
				if s.writeError(conn, "Invalid chat payload") != nil {
					return
				}
				continue
			}
			prompt := BuildChatPrompt(payload.Message, payload.ContextText, payload.ConversationHistory)
			for ev := range s.chat.StreamChat(ctx, prompt) {
				if err := conn.WriteJSON(types.WebSocketResponse{Type: types.TypeWebsocketChat, Payload: ev}); err != nil {
					s.logger.Info("websocket write failed", zap.Error(err))
					return
				}
			}
		case types.TypeWebsocketPing:
			if err := conn.WriteJSON(types.WebSocketResponse{Type: types.TypeWebsocketPong}); err != nil {
				return
			}
		default:
			if s.writeError(conn, "Invalid message type") != nil {
				return
			}
		}
	}
}

// readMessages owns every read on conn. The returned channel is closed, and
// ctx cancelled, when reading fails.
func (s *WebSocketService) readMessages(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn) <-chan []byte {
	messages := make(chan []byte, wsMessageBuffer)
	go func() {
		defer close(messages)
		defer cancel()
		for {
			conn.SetReadDeadline(time.Now().Add(wsIdleTimeout))
			_, p, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					s.logger.Info("websocket read error", zap.Error(err))
				}
				return
			}
			select {
			case messages <- p:
			case <-ctx.Done():
				return
			}
		}
	}()
	return messages
}

func (s *WebSocketService) writeError(conn *websocket.Conn, message string) error {
	return conn.WriteJSON(types.WebSocketResponse{
		Type:    types.TypeWebsocketError,
		Payload: types.ErrorResponse{Detail: message},
	})
}
