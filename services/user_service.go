package services

import (
	"sync"

	"luxelane/models"
)

// UserStore owns the session's authentication state. It performs no
// credential verification; the authenticator is the sole producer of Login
// payloads. Gating: adding to the cart requires IsAuthenticated.
type UserStore struct {
	mu    sync.Mutex
	state models.UserState
}

func NewUserStore() *UserStore {
	return &UserStore{}
}

func (s *UserStore) Login(user models.User) models.UserState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = models.UserState{
		IsAuthenticated: true,
		User:            &user,
	}
	return s.state
}

// Logout resets to the exact initial unauthenticated state with no residual
// user data.
func (s *UserStore) Logout() models.UserState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = models.UserState{}
	return s.state
}

func (s *UserStore) State() models.UserState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *UserStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsAuthenticated
}
