package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/divineverse/divineverse-api/internal/speech"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScriptureSource serves Bhagavad Gita documents.
type ScriptureSource interface {
	Chapters(ctx context.Context) (json.RawMessage, error)
	Chapter(ctx context.Context, num int) (json.RawMessage, error)
	Slok(ctx context.Context, chapter, verse int) (json.RawMessage, error)
}

type GitaHandler struct {
	src               ScriptureSource
	googleCredentials string
	logger            *zap.Logger
}

func NewGitaHandler(src ScriptureSource, googleCredentials string, logger *zap.Logger) *GitaHandler {
	return &GitaHandler{src: src, googleCredentials: googleCredentials, logger: logger}
}

// Chapters godoc
// @Summary      List chapters
// @Tags         Gita
// @Produce      json
// @Success      200 {array} object
// @Failure      502 {object} handler.ErrorResponse "scripture source unavailable"
// @Router       /api/gita/chapters [get]
func (h *GitaHandler) Chapters(c *gin.Context) {
	doc, err := h.src.Chapters(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to fetch chapters", zap.Error(err))
		c.JSON(http.StatusBadGateway, ErrorResponse{Message: "The scripture source is unreachable right now."})
		return
	}
	c.Data(http.StatusOK, "application/json", doc)
}

// Chapter godoc
// @Summary      Chapter summary
// @Tags         Gita
// @Produce      json
// @Param        num path int true "chapter number"
// @Success      200 {object} object
// @Failure      400 {object} handler.ErrorResponse "invalid chapter number"
// @Failure      502 {object} handler.ErrorResponse "scripture source unavailable"
// @Router       /api/gita/chapter/{num} [get]
func (h *GitaHandler) Chapter(c *gin.Context) {
	num, ok := positiveIntParam(c, "num")
	if !ok {
		return
	}
	doc, err := h.src.Chapter(c.Request.Context(), num)
	if err != nil {
		h.logger.Error("failed to fetch chapter", zap.Int("chapter", num), zap.Error(err))
		c.JSON(http.StatusBadGateway, ErrorResponse{Message: "The scripture source is unreachable right now."})
		return
	}
	c.Data(http.StatusOK, "application/json", doc)
}

// Slok godoc
// @Summary      Verse text
// @Tags         Gita
// @Produce      json
// @Param        chapter path int true "chapter number"
// @Param        verse   path int true "verse number"
// @Success      200 {object} object
// @Failure      400 {object} handler.ErrorResponse "invalid chapter or verse"
// @Failure      502 {object} handler.ErrorResponse "scripture source unavailable"
// @Router       /api/gita/slok/{chapter}/{verse} [get]
func (h *GitaHandler) Slok(c *gin.Context) {
	chapter, ok := positiveIntParam(c, "chapter")
	if !ok {
		return
	}
	verse, ok := positiveIntParam(c, "verse")
	if !ok {
		return
	}
	doc, err := h.src.Slok(c.Request.Context(), chapter, verse)
	if err != nil {
		h.logger.Error("failed to fetch slok", zap.Int("chapter", chapter), zap.Int("verse", verse), zap.Error(err))
		c.JSON(http.StatusBadGateway, ErrorResponse{Message: "The scripture source is unreachable right now."})
		return
	}
	c.Data(http.StatusOK, "application/json", doc)
}

// SlokAudio godoc
// @Summary      Verse recitation audio
// @Description  Fetches the verse and synthesizes its Sanskrit text as MP3.
// @Tags         Gita
// @Produce      audio/mpeg
// @Param        chapter path int true "chapter number"
// @Param        verse   path int true "verse number"
// @Success      200 {file} file "MP3 audio"
// @Failure      400 {object} handler.ErrorResponse "invalid chapter or verse"
// @Failure      502 {object} handler.ErrorResponse "scripture source unavailable"
// @Failure      503 {object} handler.ErrorResponse "speech credentials not configured"
// @Router       /api/gita/slok/{chapter}/{verse}/audio [get]
func (h *GitaHandler) SlokAudio(c *gin.Context) {
	chapter, ok := positiveIntParam(c, "chapter")
	if !ok {
		return
	}
	verse, ok := positiveIntParam(c, "verse")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	doc, err := h.src.Slok(ctx, chapter, verse)
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Message: "The scripture source is unreachable right now."})
		return
	}

	// The vedicscriptures verse document carries the Sanskrit in "slok".
	var verseDoc struct {
		Slok string `json:"slok"`
	}
	if err := json.Unmarshal(doc, &verseDoc); err != nil || verseDoc.Slok == "" {
		c.JSON(http.StatusBadGateway, ErrorResponse{Message: "The verse text could not be read."})
		return
	}

	synth, err := speech.NewSynthesizer(ctx, h.googleCredentials)
	if err != nil {
		if errors.Is(err, speech.ErrNoCredentials) {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Message: "Recitation audio is not available right now."})
			return
		}
		h.logger.Error("failed to create synthesizer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Recitation audio is not available right now."})
		return
	}
	defer synth.Close()

	audio, err := synth.Synthesize(ctx, verseDoc.Slok)
	if err != nil {
		h.logger.Error("synthesis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Recitation audio is not available right now."})
		return
	}
	c.Data(http.StatusOK, "audio/mpeg", audio)
}

func positiveIntParam(c *gin.Context, name string) (int, bool) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil || n <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Chapter and verse must be positive numbers."})
		return 0, false
	}
	return n, true
}
