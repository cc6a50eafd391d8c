package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/divineverse/divineverse-api/internal/auth"
	"github.com/divineverse/divineverse-api/internal/models"
	"github.com/divineverse/divineverse-api/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testSecret = []byte("test-secret")

type fakeUserStore struct {
	byEmail map[string]models.User
	err     error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: make(map[string]models.User)}
}

func (f *fakeUserStore) CreateUser(ctx context.Context, user models.User) error {
	if f.err != nil {
		return f.err
	}
	if _, exists := f.byEmail[user.Email]; exists {
		return storage.ErrEmailExists
	}
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserStore) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	if f.err != nil {
		return models.User{}, f.err
	}
	user, exists := f.byEmail[email]
	if !exists {
		return models.User{}, storage.ErrNotFound
	}
	return user, nil
}

func newAuthRouter(store *fakeUserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(store, testSecret, zap.NewNop())
	router := gin.New()
	router.POST("/api/auth/signup", h.Signup)
	router.POST("/api/auth/login", h.Login)
	router.POST("/api/auth/logout", h.Logout)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestSignupValidation(t *testing.T) {
	router := newAuthRouter(newFakeUserStore())

	tests := []struct {
		name string
		body SignupRequest
	}{
		{"missing name", SignupRequest{Email: "a@b.com", Password: "secret1"}},
		{"bad email", SignupRequest{Name: "A", Email: "not-an-email", Password: "secret1"}},
		{"short password", SignupRequest{Name: "A", Email: "a@b.com", Password: "five5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, "/api/auth/signup", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSignupIssuesUsableToken(t *testing.T) {
	store := newFakeUserStore()
	router := newAuthRouter(store)

	w := postJSON(t, router, "/api/auth/signup", SignupRequest{
		Name: "Arjuna", Email: "arjuna@kurukshetra.in", Password: "gandiva108",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Welcome aboard, Arjuna!", resp.Message)
	require.NotNil(t, resp.User)
	assert.Equal(t, "Arjuna", resp.User.Name)
	assert.Equal(t, "arjuna@kurukshetra.in", resp.User.Email)
	assert.NotEmpty(t, resp.User.ID)

	claims, err := auth.ValidateToken(resp.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)

	// the stored hash must not be the plaintext
	stored := store.byEmail["arjuna@kurukshetra.in"]
	assert.NotEqual(t, "gandiva108", stored.PasswordHash)
}

func TestSignupDuplicateEmail(t *testing.T) {
	router := newAuthRouter(newFakeUserStore())

	body := SignupRequest{Name: "Arjuna", Email: "arjuna@kurukshetra.in", Password: "gandiva108"}
	w := postJSON(t, router, "/api/auth/signup", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, router, "/api/auth/signup", body)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginAfterSignup(t *testing.T) {
	router := newAuthRouter(newFakeUserStore())

	w := postJSON(t, router, "/api/auth/signup", SignupRequest{
		Name: "Arjuna", Email: "arjuna@kurukshetra.in", Password: "gandiva108",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, router, "/api/auth/login", LoginRequest{
		Email: "arjuna@kurukshetra.in", Password: "gandiva108",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Welcome back, Arjuna!", resp.Message)

	_, err := auth.ValidateToken(resp.Token, testSecret)
	assert.NoError(t, err)
}

func TestLoginUnknownEmail(t *testing.T) {
	router := newAuthRouter(newFakeUserStore())

	w := postJSON(t, router, "/api/auth/login", LoginRequest{
		Email: "nobody@nowhere.in", Password: "whatever1",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	router := newAuthRouter(newFakeUserStore())

	w := postJSON(t, router, "/api/auth/signup", SignupRequest{
		Name: "Arjuna", Email: "arjuna@kurukshetra.in", Password: "gandiva108",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, router, "/api/auth/login", LoginRequest{
		Email: "arjuna@kurukshetra.in", Password: "wrong-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutIdempotent(t *testing.T) {
	store := newFakeUserStore()
	router := newAuthRouter(store)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
	assert.Empty(t, store.byEmail, "logout never mutates server state")
}
