package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"vango/internal/config"
	"vango/internal/middleware"
	"vango/internal/utils"
	"vango/pkg/logger"
)

var ErrInvalidCredentials = errors.New(utils.ErrInvalidCredentials)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type AuthService interface {
	Login(ctx context.Context, request *LoginRequest) (*AuthResponse, error)
}

type authService struct {
	security *config.SecurityConfig
	logger   *logger.Logger
}

func NewAuthService(security *config.SecurityConfig, log *logger.Logger) AuthService {
	return &authService{
		security: security,
		logger:   log,
	}
}

func (s *authService) Login(ctx context.Context, request *LoginRequest) (*AuthResponse, error) {
	email := utils.NormalizeEmail(request.Email)

	if s.security.AdminPassword == "" {
		return nil, ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(email), []byte(strings.ToLower(s.security.AdminEmail))) != 1 {
		s.logger.LogSecurityEvent("login_failed", "low", map[string]interface{}{"email": utils.MaskEmail(email)})
		return nil, ErrInvalidCredentials
	}
	if !passwordMatches(s.security.AdminPassword, request.Password) {
		s.logger.LogSecurityEvent("login_failed", "medium", map[string]interface{}{"email": utils.MaskEmail(email)})
		return nil, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.security.JWTAccessTokenTTL)
	claims := &middleware.JWTClaims{
		Email: email,
		Role:  "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.security.JWTSecret))
	if err != nil {
		return nil, err
	}

	s.logger.WithField("email", email).Info("admin login")

	return &AuthResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

// passwordMatches accepts either a bcrypt hash or, for development setups,
// the plain configured password.
func passwordMatches(configured, supplied string) bool {
	if strings.HasPrefix(configured, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(supplied)) == 1
}
