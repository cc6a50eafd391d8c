// Package krishna is the chat proxy: it classifies a seeker's question,
// builds the divine prompt, calls Gemini, normalizes the reply, and appends
// the exchange to the seeker's persisted history.
package krishna

import (
	"context"
	"errors"
	"strings"

	"github.com/divineverse/divineverse-api/internal/models"

	"go.uber.org/zap"
)

// ErrEmptyQuestion rejects blank questions before anything else happens.
var ErrEmptyQuestion = errors.New("krishna: empty question")

// Fixed fallback texts. The product goal is "always say something in
// character", so upstream failures turn into these rather than raw errors.
const (
	apologyText       = "Even divine words may falter through human noise, dear one. Reflect calmly and seek again."
	silentFailureText = "Even the divine may fall silent, dear one. The message could not be formed."
)

// Generator produces the raw reply text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// HistoryStore persists chat turns for a user.
type HistoryStore interface {
	AppendTurns(ctx context.Context, userID string, turns ...models.ChatTurn) error
}

type Service struct {
	gen    Generator
	store  HistoryStore
	logger *zap.Logger
}

func NewService(gen Generator, store HistoryStore, logger *zap.Logger) *Service {
	return &Service{gen: gen, store: store, logger: logger}
}

// Answer is what a successful (or gracefully degraded) ask returns.
type Answer struct {
	Response  string `json:"response"`
	Reference string `json:"reference"`
}

// Ask runs the full chat exchange for an authenticated user. Upstream
// errors (including rate limiting and missing configuration) are returned
// to the caller for status mapping and persist nothing. On success the
// question and answer are appended to the user's history best-effort: a
// failed append is logged, never surfaced, and never fails the response.
func (s *Service) Ask(ctx context.Context, userID, question string) (*Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	raw, err := s.gen.Generate(ctx, BuildPrompt(question))
	if err != nil {
		return nil, err
	}

	extracted := Extract(raw)
	if extracted == nil {
		s.logger.Warn("no usable content in gemini reply", zap.String("user_id", userID))
		extracted = &Extracted{Response: apologyText, Reference: NoReference}
	}
	if extracted.Reference == "" {
		extracted.Reference = NoReference
	}

	assistantText := strings.TrimSpace(extracted.Response)
	if assistantText == "" {
		assistantText = silentFailureText
	}
	turns := []models.ChatTurn{
		{Role: models.RoleUser, Content: question},
		{Role: models.RoleAssistant, Content: assistantText},
	}
	if err := s.store.AppendTurns(ctx, userID, turns...); err != nil {
		s.logger.Warn("failed to persist chat turns", zap.String("user_id", userID), zap.Error(err))
	}

	return &Answer{Response: extracted.Response, Reference: extracted.Reference}, nil
}
