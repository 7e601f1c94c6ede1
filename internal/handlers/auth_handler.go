package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	apperrors "moneymanager/internal/errors"
	"moneymanager/internal/middleware"
)

// AuthHandler exchanges the owner's passphrase for an access token.
type AuthHandler struct {
	enabled        bool
	passphraseHash []byte
	jwtSecret      string
	tokenTTL       time.Duration
}

// NewAuthHandler creates a new AuthHandler. passphraseHash is a bcrypt hash.
func NewAuthHandler(enabled bool, passphraseHash, jwtSecret string, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		enabled:        enabled,
		passphraseHash: []byte(passphraseHash),
		jwtSecret:      jwtSecret,
		tokenTTL:       tokenTTL,
	}
}

// TokenRequest represents the token request payload
type TokenRequest struct {
	Passphrase string `json:"passphrase" binding:"required,max=256"`
}

// TokenResponse represents the issued access token
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IssueToken handles passphrase login
// @Summary     Issue an access token
// @Description Exchange the configured passphrase for a bearer token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body TokenRequest true "Passphrase"
// @Success     200 {object} TokenResponse "Token issued"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid passphrase"
// @Failure     404 {object} ErrorResponse "Authentication disabled"
// @Router      /auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	if !h.enabled {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrNotFound, "Authentication is disabled"))
		return
	}

	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := bcrypt.CompareHashAndPassword(h.passphraseHash, []byte(req.Passphrase)); err != nil {
		respondWithError(c, apperrors.ErrInvalidCredentials)
		return
	}

	token, expiresAt, err := middleware.GenerateAccessToken(h.jwtSecret, h.tokenTTL)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token, ExpiresAt: expiresAt})
}
