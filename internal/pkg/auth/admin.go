// internal/pkg/auth/admin.go
package auth

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/your-org/shopfront/internal/config"
)

// ErrInvalidCredentials is returned for any failed login
var ErrInvalidCredentials = errors.New("invalid email or password")

// Session is an issued admin token
type Session struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	Email       string    `json:"email"`
}

// AdminAuthenticator checks the configured dashboard credential
type AdminAuthenticator struct {
	email        string
	passwordHash string
	passwords    *PasswordManager
	tokens       *JWTManager
}

// NewAdminAuthenticator creates an authenticator for the configured admin
func NewAdminAuthenticator(cfg *config.Config, tokens *JWTManager) *AdminAuthenticator {
	return &AdminAuthenticator{
		email:        strings.ToLower(cfg.Admin.Email),
		passwordHash: cfg.Admin.PasswordHash,
		passwords:    NewPasswordManager(cfg.Security.BcryptCost),
		tokens:       tokens,
	}
}

// Login verifies the credential and issues an admin access token. With no
// password hash configured every login fails.
func (a *AdminAuthenticator) Login(email, password string) (*Session, error) {
	if a.passwordHash == "" {
		return nil, ErrInvalidCredentials
	}

	email = strings.ToLower(strings.TrimSpace(email))
	emailMatch := subtle.ConstantTimeCompare([]byte(email), []byte(a.email)) == 1
	passwordErr := a.passwords.VerifyPassword(password, a.passwordHash)
	if !emailMatch || passwordErr != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := a.tokens.GenerateAccessToken(a.email, true)
	if err != nil {
		return nil, err
	}

	return &Session{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		Email:       a.email,
	}, nil
}
