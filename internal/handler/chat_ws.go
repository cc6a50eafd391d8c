package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/divineverse/divineverse-api/internal/auth"
	"github.com/divineverse/divineverse-api/internal/gemini"
	"github.com/divineverse/divineverse-api/internal/krishna"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type ChatWSHandler struct {
	svc       Asker
	jwtSecret []byte
	logger    *zap.Logger
}

func NewChatWSHandler(svc Asker, jwtSecret []byte, logger *zap.Logger) *ChatWSHandler {
	return &ChatWSHandler{svc: svc, jwtSecret: jwtSecret, logger: logger}
}

// HandleChat godoc
// @Summary      Live chat WebSocket
// @Description  Upgrades to a WebSocket session. Each text frame is treated as a question and answered with a JSON frame {response, reference}.
// @Description  Not a standard HTTP API: connect with ws:// or wss://. Authentication is via the 'token' query parameter, not a header.
// @Tags         WebSocket
// @Param        token query string true "JWT issued at login"
// @Success      101 {string} string "switching protocols"
// @Failure      401 {object} handler.ErrorResponse "missing or invalid token"
// @Router       /ws/chat [get]
func (h *ChatWSHandler) HandleChat(c *gin.Context) {
	tokenString := c.Query("token")
	claims, err := auth.ValidateToken(tokenString, h.jwtSecret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Invalid token"})
		return
	}
	userID := claims.UserID

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("failed to upgrade to websocket", zap.String("user_id", userID), zap.Error(err))
		return
	}
	defer conn.Close()
	h.logger.Info("chat session started", zap.String("user_id", userID))

	ctx := c.Request.Context()
ReadLoop:
	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			break ReadLoop
		}
		if messageType != websocket.TextMessage {
			continue
		}

		answer, err := h.svc.Ask(ctx, userID, string(message))
		if err != nil {
			answer = &krishna.Answer{Response: upstreamFailText, Reference: krishna.NoReference}
			if errors.Is(err, gemini.ErrRateLimited) {
				answer.Response = rateLimitedText
			} else if errors.Is(err, krishna.ErrEmptyQuestion) {
				answer.Response = emptyQuestionMsg
			}
		}

		payload, _ := json.Marshal(answer)
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			break ReadLoop
		}
	}
	h.logger.Info("chat session ended", zap.String("user_id", userID))
}
