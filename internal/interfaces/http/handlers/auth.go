// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/shopfront/internal/pkg/auth"
)

// LoginRequest represents the admin login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthHandler handles admin authentication
type AuthHandler struct {
	authenticator *auth.AdminAuthenticator
	logger        logrus.FieldLogger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(a *auth.AdminAuthenticator, logger logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{authenticator: a, logger: logger}
}

// Login handles POST /admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	session, err := h.authenticator.Login(req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		h.logger.WithFields(logrus.Fields{
			"email":     req.Email,
			"client_ip": c.ClientIP(),
		}).Warn("Admin login failed")
		respondError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("Admin token issue failed")
		respondError(c, http.StatusInternalServerError, "Login failed")
		return
	}

	h.logger.WithField("email", session.Email).Info("Admin logged in")
	respondOK(c, "Login successful", session)
}
