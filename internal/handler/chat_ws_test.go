package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/divineverse/divineverse-api/internal/auth"
	"github.com/divineverse/divineverse-api/internal/gemini"
	"github.com/divineverse/divineverse-api/internal/krishna"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newChatWSServer(t *testing.T, svc Asker) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewChatWSHandler(svc, testSecret, zap.NewNop())
	router := gin.New()
	router.GET("/ws/chat", h.HandleChat)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestChatWSRejectsBadToken(t *testing.T) {
	srv := newChatWSServer(t, &fakeAsker{})

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/chat?token=garbage"
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestChatWSAnswersEachFrame(t *testing.T) {
	svc := &fakeAsker{answer: &krishna.Answer{Response: "Peace, dear one.", Reference: "2.66"}}
	srv := newChatWSServer(t, svc)

	token, err := auth.GenerateToken("user-7", testSecret)
	require.NoError(t, err)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/chat?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("How do I find peace?")))

	_, message, err := conn.ReadMessage()
	require.NoError(t, err)

	var answer krishna.Answer
	require.NoError(t, json.Unmarshal(message, &answer))
	assert.Equal(t, "Peace, dear one.", answer.Response)
	assert.Equal(t, "2.66", answer.Reference)
	assert.Equal(t, "user-7", svc.gotID)
	assert.Equal(t, "How do I find peace?", svc.gotQ)
}

func TestChatWSWrappedRateLimitStillAnswersInCharacter(t *testing.T) {
	svc := &fakeAsker{err: fmt.Errorf("generate: %w", gemini.ErrRateLimited)}
	srv := newChatWSServer(t, svc)

	token, err := auth.GenerateToken("user-7", testSecret)
	require.NoError(t, err)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/chat?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("hello")))

	_, message, err := conn.ReadMessage()
	require.NoError(t, err)

	var answer krishna.Answer
	require.NoError(t, json.Unmarshal(message, &answer))
	assert.Equal(t, rateLimitedText, answer.Response)
	assert.Equal(t, krishna.NoReference, answer.Reference)
}
