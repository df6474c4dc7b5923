package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"vango/internal/config"
	"vango/internal/middleware"
)

func testSecurityConfig(password string) *config.SecurityConfig {
	return &config.SecurityConfig{
		JWTSecret:         "test-secret",
		JWTAccessTokenTTL: time.Hour,
		AdminEmail:        "ops@vango.local",
		AdminPassword:     password,
	}
}

func TestLogin(t *testing.T) {
	service := NewAuthService(testSecurityConfig("van-keys"), testLogger(t))

	response, err := service.Login(context.Background(), &LoginRequest{
		Email:    "Ops@VanGo.local",
		Password: "van-keys",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer", response.TokenType)
	assert.WithinDuration(t, time.Now().Add(time.Hour), response.ExpiresAt, time.Minute)

	claims := &middleware.JWTClaims{}
	token, err := jwt.ParseWithClaims(response.AccessToken, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	assert.Equal(t, "ops@vango.local", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestLogin_BcryptPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("van-keys"), bcrypt.MinCost)
	require.NoError(t, err)

	service := NewAuthService(testSecurityConfig(string(hash)), testLogger(t))

	_, err = service.Login(context.Background(), &LoginRequest{
		Email:    "ops@vango.local",
		Password: "van-keys",
	})
	assert.NoError(t, err)

	_, err = service.Login(context.Background(), &LoginRequest{
		Email:    "ops@vango.local",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		config   *config.SecurityConfig
		email    string
		password string
	}{
		{"wrong email", testSecurityConfig("van-keys"), "intruder@vango.local", "van-keys"},
		{"wrong password", testSecurityConfig("van-keys"), "ops@vango.local", "guess"},
		{"no password configured", testSecurityConfig(""), "ops@vango.local", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewAuthService(tt.config, testLogger(t))

			_, err := service.Login(context.Background(), &LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			})
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}
