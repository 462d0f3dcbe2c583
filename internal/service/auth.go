package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/hazelkitchen/recipebook/backend/internal/types"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService issues and validates admin session tokens. The site has a
// single admin identity configured at deploy time; there are no user
// accounts.
type AuthService struct {
	username     string
	passwordHash string
	jwtSecret    string
	tokenTTL     time.Duration
}

// NewAuthService creates an auth service for the configured admin identity.
func NewAuthService(username, passwordHash, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		username:     username,
		passwordHash: passwordHash,
		jwtSecret:    jwtSecret,
		tokenTTL:     tokenTTL,
	}
}

// Login checks the credentials against the configured admin identity and
// returns a signed session token.
func (s *AuthService) Login(username, password string) (string, error) {
	if username != s.username {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.generateToken(username)
}

func (s *AuthService) generateToken(username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": username,
		"iat": now.Unix(),
		"exp": now.Add(s.tokenTTL).Unix(),
	})
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses and verifies a session token.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, errors.New("invalid token subject")
	}
	return &types.TokenClaims{Username: sub}, nil
}
