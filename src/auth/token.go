package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"fintrack-server/src/apperr"
)

// TokenService issues and verifies HS256 bearer tokens. The signing secret
// is loaded once at startup and never rotated at runtime.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue mints a token asserting {user_id, exp} with the configured TTL.
func (s *TokenService) Issue(userID int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(s.ttl).Unix(),
	})
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded user id.
// Expired tokens are distinguished from malformed/forged ones so callers can
// log the difference; both are the same rejection to clients.
func (s *TokenService) Verify(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, apperr.ErrTokenExpired
		}
		return 0, apperr.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, apperr.ErrTokenInvalid
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, apperr.ErrTokenInvalid
	}
	return int64(userID), nil
}
