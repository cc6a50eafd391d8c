/**
* Name:         auth_handler.go
* Description:  Gin HTTP handlers for the auth endpoints
* Workflow:     signup, login, logout
 */
package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/divineverse/divineverse-api/internal/auth"
	"github.com/divineverse/divineverse-api/internal/models"
	"github.com/divineverse/divineverse-api/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the slice of the credential store the auth handlers need.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) error
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
}

type AuthHandler struct {
	store     UserStore
	jwtSecret []byte
	logger    *zap.Logger
}

func NewAuthHandler(store UserStore, jwtSecret []byte, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{store: store, jwtSecret: jwtSecret, logger: logger}
}

type SignupRequest struct {
	Name     string `json:"name" example:"Arjuna"`
	Email    string `json:"email" example:"arjuna@kurukshetra.in"`
	Password string `json:"password" example:"gandiva108"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"arjuna@kurukshetra.in"`
	Password string `json:"password" example:"gandiva108"`
}

type AuthResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Token   string             `json:"token,omitempty"`
	User    *models.PublicView `json:"user,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"reason for the failure"`
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Signup godoc
// @Summary      Create an account
// @Description  Registers a new seeker and signs them in immediately.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body handler.SignupRequest true "signup payload"
// @Success      201 {object} handler.AuthResponse
// @Failure      400 {object} handler.ErrorResponse "missing or malformed fields"
// @Failure      409 {object} handler.ErrorResponse "email already registered"
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Please fill all fields correctly."})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Name == "" || !emailRe.MatchString(req.Email) || len(req.Password) < 6 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Please fill all fields correctly."})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.logger.Error("failed to hash password", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Something went wrong while creating your account. Please try again later."})
		return
	}

	user := models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
	}
	if err := h.store.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, storage.ErrEmailExists) {
			c.JSON(http.StatusConflict, ErrorResponse{Message: "This email is already registered."})
			return
		}
		h.logger.Error("failed to create user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Something went wrong while creating your account. Please try again later."})
		return
	}

	token, err := auth.GenerateToken(user.ID, h.jwtSecret)
	if err != nil {
		h.logger.Error("failed to generate token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Something went wrong while creating your account. Please try again later."})
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		Success: true,
		Message: fmt.Sprintf("Welcome aboard, %s!", user.Name),
		Token:   token,
		User:    user.Public(),
	})
}

// Login godoc
// @Summary      Sign in
// @Description  Verifies credentials and issues a fresh 7-day token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body handler.LoginRequest true "login payload"
// @Success      200 {object} handler.AuthResponse
// @Failure      400 {object} handler.ErrorResponse "missing or malformed fields"
// @Failure      401 {object} handler.ErrorResponse "wrong password"
// @Failure      404 {object} handler.ErrorResponse "no account for this email"
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Please fill all fields correctly."})
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if !emailRe.MatchString(req.Email) || req.Password == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Please fill all fields correctly."})
		return
	}

	user, err := h.store.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "No account found with this email."})
			return
		}
		h.logger.Error("failed to look up user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Unable to log you in right now. Please try again later."})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Incorrect password. Please try again."})
		return
	}

	token, err := auth.GenerateToken(user.ID, h.jwtSecret)
	if err != nil {
		h.logger.Error("failed to generate token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Unable to log you in right now. Please try again later."})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: fmt.Sprintf("Welcome back, %s!", user.Name),
		Token:   token,
		User:    user.Public(),
	})
}

// Logout godoc
// @Summary      Sign out
// @Description  Pure acknowledgment; the server holds no session state, the client just discards its token.
// @Tags         Auth
// @Produce      json
// @Success      200 {object} handler.AuthResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "You've been logged out successfully.",
	})
}
