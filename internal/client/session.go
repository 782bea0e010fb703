package client

import (
	"fmt"
	"log"
	"sync"

	"grostory/internal/models"
)

// AuthState is the session lifecycle state.
type AuthState int

const (
	// StateAnonymous means no verified identity is held.
	StateAnonymous AuthState = iota
	// StateAuthenticating means a signup, login, or restore is in flight.
	StateAuthenticating
	// StateAuthenticated means a verified identity is held.
	StateAuthenticated
)

// Session manages the client-side authentication lifecycle:
// Anonymous -> Authenticating -> Authenticated -> Anonymous. Successful
// signup and login persist the token and a user snapshot into the local
// store so the session survives a restart.
type Session struct {
	api   *APIClient
	store *LocalStore

	mu    sync.Mutex
	state AuthState
	user  *models.User
}

// NewSession creates a Session over the given API client and local store.
func NewSession(api *APIClient, store *LocalStore) *Session {
	return &Session{
		api:   api,
		store: store,
		state: StateAnonymous,
	}
}

// State returns the current lifecycle state.
func (s *Session) State() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CurrentUser returns the authenticated user, nil when anonymous.
func (s *Session) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Token returns the cached session token, empty when none is stored.
func (s *Session) Token() string {
	var token string
	if _, err := s.store.Get(KeyAuthToken, &token); err != nil {
		log.Printf("Failed to read cached token: %v", err)
		return ""
	}
	return token
}

func (s *Session) persistIdentity(user *models.User, token string) error {
	if err := s.store.Set(KeyAuthToken, token); err != nil {
		return err
	}
	return s.store.Set(KeyUser, user)
}

func (s *Session) setState(state AuthState, user *models.User) {
	s.mu.Lock()
	s.state = state
	s.user = user
	s.mu.Unlock()
}

// SignUp creates an account and enters the authenticated state.
func (s *Session) SignUp(email, password string) (*models.User, error) {
	s.setState(StateAuthenticating, nil)

	resp, err := s.api.SignUp(email, password)
	if err != nil {
		s.setState(StateAnonymous, nil)
		return nil, err
	}
	if err := s.persistIdentity(resp.User, resp.Token); err != nil {
		log.Printf("Failed to persist session: %v", err)
	}
	s.setState(StateAuthenticated, resp.User)
	return resp.User, nil
}

// LogIn authenticates and enters the authenticated state.
func (s *Session) LogIn(email, password string) (*models.User, error) {
	s.setState(StateAuthenticating, nil)

	resp, err := s.api.LogIn(email, password)
	if err != nil {
		s.setState(StateAnonymous, nil)
		return nil, err
	}
	if err := s.persistIdentity(resp.User, resp.Token); err != nil {
		log.Printf("Failed to persist session: %v", err)
	}
	s.setState(StateAuthenticated, resp.User)
	return resp.User, nil
}

// LogOut discards the cached token, user snapshot, and cart mirror. It is a
// client-local operation: the server keeps no revocation list, so the token
// stays valid until its natural expiry.
func (s *Session) LogOut() error {
	s.setState(StateAnonymous, nil)
	if err := s.store.Remove(KeyAuthToken, KeyUser, KeyCart); err != nil {
		return fmt.Errorf("failed to clear cached session: %w", err)
	}
	return nil
}

// Restore rebuilds the session from the local store on startup: it loads the
// cached user, then verifies the cached token with the server. Any failure
// clears the cached identity and leaves the session anonymous.
func (s *Session) Restore() (*models.User, error) {
	var stored models.User
	ok, err := s.store.Get(KeyUser, &stored)
	if err != nil {
		log.Printf("Failed to read cached user: %v", err)
	}
	token := s.Token()
	if !ok || token == "" {
		s.setState(StateAnonymous, nil)
		return nil, nil
	}

	s.setState(StateAuthenticating, nil)
	user, err := s.api.Verify(token)
	if err != nil {
		s.setState(StateAnonymous, nil)
		if removeErr := s.store.Remove(KeyAuthToken, KeyUser); removeErr != nil {
			log.Printf("Failed to clear stale session: %v", removeErr)
		}
		return nil, nil
	}

	// The verify response carries only the token identity; keep the richer
	// stored snapshot fields like displayName.
	stored.ID = user.ID
	stored.Email = user.Email
	s.setState(StateAuthenticated, &stored)
	return &stored, nil
}

// UpdateProfile updates the display name in the local cache only. The
// backend exposes no profile endpoint; this stays client-side on purpose.
func (s *Session) UpdateProfile(displayName string) error {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return ErrUnauthorized
	}
	updated := *s.user
	updated.DisplayName = &displayName
	s.user = &updated
	s.mu.Unlock()

	return s.store.Set(KeyUser, &updated)
}
