package services

import (
	"encoding/json"
	"errors"
	"log"
	"strings"

	"grostory/internal/models"
	"grostory/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor for password hashing.
const bcryptCost = 12

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 6

// AuthService orchestrates signup, login, and session verification over the
// credential store and the token service. Logout has no server-side effect;
// it is a client-local token discard.
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   *TokenService
	events   EventPublisher
}

// NewAuthService creates a new AuthService. The event publisher may be nil,
// in which case signup events are skipped.
func NewAuthService(userRepo repositories.UserRepository, tokens *TokenService, events EventPublisher) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		events:   events,
	}
}

// SignUp registers a new user, hashes their password, and issues a session
// token.
func (s *AuthService) SignUp(email, password string) (*models.User, string, error) {
	email = repositories.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", ErrValidation
	}
	if len(password) < minPasswordLength {
		return nil, "", ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		return nil, "", ErrInternal
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, "", ErrDuplicateEmail
		}
		log.Printf("Failed to create user: %v", err)
		return nil, "", ErrInternal
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		log.Printf("Failed to issue token for user %s: %v", user.ID, err)
		return nil, "", ErrInternal
	}

	if s.events != nil {
		body, merr := json.Marshal(map[string]interface{}{"userID": user.ID})
		if merr == nil {
			if perr := s.events.Publish("storefront", "user.signed_up", body); perr != nil {
				log.Printf("Warning: failed to publish signup event: %v", perr)
			}
		}
	}
	return user, token, nil
}

// LogIn authenticates a user and issues a session token. An unknown email
// and a wrong password return the same error.
func (s *AuthService) LogIn(email, password string) (*models.User, string, error) {
	email = repositories.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", ErrValidation
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		log.Printf("Failed to look up user during login: %v", err)
		return nil, "", ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		log.Printf("Failed to issue token for user %s: %v", user.ID, err)
		return nil, "", ErrInternal
	}
	return user, token, nil
}

// Verify returns the identity encoded in a session token, or ErrInvalidToken.
// Callers must treat a failure as "not authenticated" and clear any cached
// identity.
func (s *AuthService) Verify(tokenString string) (*Identity, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, ErrInvalidToken
	}
	return s.tokens.Verify(tokenString)
}
