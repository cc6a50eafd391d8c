// Package gita proxies the public Bhagavad Gita API
// (vedicscriptures.github.io) so the frontend talks only to this server.
// Responses are passed through as-is and cached briefly; the scripture
// content never changes, the cache just keeps us polite to the upstream.
package gita

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	cache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const defaultBaseURL = "https://vedicscriptures.github.io"

type Service struct {
	baseURL    string
	httpClient *http.Client
	cache      *cache.Cache
	logger     *zap.Logger
}

func NewService(logger *zap.Logger) *Service {
	return &Service{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		cache:      cache.New(10*time.Minute, 15*time.Minute),
		logger:     logger,
	}
}

// Chapters returns the chapter list document.
func (s *Service) Chapters(ctx context.Context) (json.RawMessage, error) {
	return s.fetch(ctx, "/chapters")
}

// Chapter returns one chapter's summary document.
func (s *Service) Chapter(ctx context.Context, num int) (json.RawMessage, error) {
	return s.fetch(ctx, fmt.Sprintf("/chapter/%d/", num))
}

// Slok returns one verse document (Sanskrit, transliteration, commentaries).
func (s *Service) Slok(ctx context.Context, chapter, verse int) (json.RawMessage, error) {
	return s.fetch(ctx, fmt.Sprintf("/slok/%d/%d/", chapter, verse))
}

func (s *Service) fetch(ctx context.Context, path string) (json.RawMessage, error) {
	if cached, found := s.cache.Get(path); found {
		return cached.(json.RawMessage), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gita: upstream returned %s for %s", resp.Status, path)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("gita: upstream returned invalid JSON for %s", path)
	}

	doc := json.RawMessage(body)
	s.cache.Set(path, doc, cache.DefaultExpiration)
	s.logger.Debug("fetched scripture document", zap.String("path", path), zap.Int("bytes", len(doc)))
	return doc, nil
}
