package services

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// Identity is the decoded subject of a verified session token.
type Identity struct {
	UserID string
	Email  string
}

// TokenService issues and verifies signed, time-limited session tokens.
// The signing secret is process-wide configuration. There is no refresh
// mechanism and no server-side revocation: expiry forces a full re-login.
type TokenService struct {
	secret   []byte
	validity time.Duration
}

// DefaultTokenValidity is how long an issued token stays valid.
const DefaultTokenValidity = 24 * time.Hour

// NewTokenService creates a new TokenService.
func NewTokenService(secret string, validity time.Duration) *TokenService {
	if validity <= 0 {
		validity = DefaultTokenValidity
	}
	return &TokenService{
		secret:   []byte(secret),
		validity: validity,
	}
}

// Issue produces a signed token bound to the given user identity, expiring
// a fixed duration after issuance.
func (s *TokenService) Issue(userID, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":   userID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.validity).Unix(),
	})

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Verify parses and validates a token, returning the identity it encodes.
func (s *TokenService) Verify(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	uid, _ := claims["uid"].(string)
	email, _ := claims["email"].(string)
	if uid == "" {
		return nil, ErrInvalidToken
	}
	return &Identity{UserID: uid, Email: email}, nil
}
