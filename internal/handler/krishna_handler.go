package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/divineverse/divineverse-api/internal/gemini"
	"github.com/divineverse/divineverse-api/internal/krishna"
	"github.com/divineverse/divineverse-api/internal/models"
	"github.com/divineverse/divineverse-api/internal/speech"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Fixed fallback bodies for the two upstream failure modes. Whatever goes
// wrong, the client always receives a body with a response field.
const (
	rateLimitedText  = "Krishna rests for a while, dear one. Too many prayers at once — please try again shortly."
	upstreamFailText = "The eternal silence prevails, Arjuna. Try again when your heart is still."
	emptyQuestionMsg = "Please share your question, dear seeker."
)

// Asker answers a seeker's question on behalf of a user.
type Asker interface {
	Ask(ctx context.Context, userID, question string) (*krishna.Answer, error)
}

// HistoryReader returns a user's chat turns in insertion order.
type HistoryReader interface {
	GetHistory(ctx context.Context, userID string) ([]models.ChatTurn, error)
}

type KrishnaHandler struct {
	svc               Asker
	history           HistoryReader
	googleCredentials string
	logger            *zap.Logger
}

func NewKrishnaHandler(svc Asker, history HistoryReader, googleCredentials string, logger *zap.Logger) *KrishnaHandler {
	return &KrishnaHandler{svc: svc, history: history, googleCredentials: googleCredentials, logger: logger}
}

type AskRequest struct {
	Question string `json:"question" example:"Explain chapter 2 verse 47"`
}

type AskResponse struct {
	Success   bool   `json:"success"`
	Question  string `json:"question,omitempty"`
	Response  string `json:"response"`
	Reference string `json:"reference"`
}

// Ask godoc
// @Summary      Ask Krishna
// @Description  Sends a question through the divine chat proxy and appends the exchange to the seeker's history.
// @Tags         Krishna
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.AskRequest true "the seeker's question"
// @Success      200 {object} handler.AskResponse
// @Failure      400 {object} handler.ErrorResponse "empty question"
// @Failure      401 {object} handler.ErrorResponse "missing or invalid token"
// @Failure      429 {object} handler.AskResponse "upstream rate limited"
// @Failure      500 {object} handler.AskResponse "upstream or server failure"
// @Router       /api/krishna/ask [post]
func (h *KrishnaHandler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: emptyQuestionMsg})
		return
	}
	h.answer(c, c.GetString("userID"), req.Question, "")
}

// AskVoice godoc
// @Summary      Ask Krishna by voice
// @Description  Transcribes an uploaded audio clip (LINEAR16, 16 kHz, mono) with Google Speech and runs the transcript through the chat proxy.
// @Tags         Krishna
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        audio formData file true "audio clip of the question"
// @Success      200 {object} handler.AskResponse
// @Failure      400 {object} handler.ErrorResponse "missing audio or empty transcript"
// @Failure      401 {object} handler.ErrorResponse "missing or invalid token"
// @Failure      503 {object} handler.ErrorResponse "speech credentials not configured"
// @Router       /api/krishna/ask-voice [post]
func (h *KrishnaHandler) AskVoice(c *gin.Context) {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "An audio file named 'audio' is required."})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Could not read the uploaded audio."})
		return
	}
	defer file.Close()
	audio, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Could not read the uploaded audio."})
		return
	}

	ctx := c.Request.Context()
	transcriber, err := speech.NewTranscriber(ctx, h.googleCredentials)
	if err != nil {
		if errors.Is(err, speech.ErrNoCredentials) {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Message: "Voice questions are not available right now."})
			return
		}
		h.logger.Error("failed to create transcriber", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Voice questions are not available right now."})
		return
	}
	defer transcriber.Close()

	question, err := transcriber.Transcribe(ctx, audio)
	if err != nil {
		h.logger.Error("transcription failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Could not understand the recording, dear one."})
		return
	}
	if question == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: emptyQuestionMsg})
		return
	}

	h.answer(c, c.GetString("userID"), question, question)
}

// answer runs the ask flow and writes the response, mapping the upstream
// failure modes to their fixed in-character bodies.
func (h *KrishnaHandler) answer(c *gin.Context, userID, question, transcript string) {
	answer, err := h.svc.Ask(c.Request.Context(), userID, question)
	if err != nil {
		switch {
		case errors.Is(err, krishna.ErrEmptyQuestion):
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: emptyQuestionMsg})
		case errors.Is(err, gemini.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, AskResponse{
				Success: false, Response: rateLimitedText, Reference: krishna.NoReference,
			})
		default:
			h.logger.Error("krishna ask failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, AskResponse{
				Success: false, Response: upstreamFailText, Reference: krishna.NoReference,
			})
		}
		return
	}

	c.JSON(http.StatusOK, AskResponse{
		Success:   true,
		Question:  transcript,
		Response:  answer.Response,
		Reference: answer.Reference,
	})
}

type HistoryResponse struct {
	Success bool              `json:"success"`
	History []models.ChatTurn `json:"history"`
}

// History godoc
// @Summary      Chat history
// @Description  Returns the seeker's past exchanges in conversation order.
// @Tags         Krishna
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.HistoryResponse
// @Failure      401 {object} handler.ErrorResponse "missing or invalid token"
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/krishna/history [get]
func (h *KrishnaHandler) History(c *gin.Context) {
	userID := c.GetString("userID")
	turns, err := h.history.GetHistory(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("failed to fetch history", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Could not fetch your history right now."})
		return
	}
	if turns == nil {
		turns = []models.ChatTurn{}
	}
	c.JSON(http.StatusOK, HistoryResponse{Success: true, History: turns})
}
