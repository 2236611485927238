package services

import (
	"errors"
	"sync"
	"time"

	"luxelane/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrSessionNotFound = errors.New("session not found or expired")

// SessionManager owns the in-memory session registry. A session is the
// server-side analogue of one application run; everything it holds dies with
// the process.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*AppSession
	catalog  *repository.CatalogRepository
	ttl      time.Duration
	toastTTL time.Duration
	logger   *zap.Logger
}

func NewSessionManager(catalog *repository.CatalogRepository, ttl, toastTTL time.Duration, logger *zap.Logger) *SessionManager {
	return &SessionManager{
		sessions: make(map[uuid.UUID]*AppSession),
		catalog:  catalog,
		ttl:      ttl,
		toastTTL: toastTTL,
		logger:   logger,
	}
}

func (m *SessionManager) Create() *AppSession {
	session := NewAppSession(m.catalog, m.toastTTL, m.logger)
	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()
	m.logger.Info("Session created", zap.String("session_id", session.ID.String()))
	return session
}

// Get returns the live session for the id, refreshing its idle timer.
// Expired sessions are dropped on access.
func (m *SessionManager) Get(id uuid.UUID) (*AppSession, error) {
	m.mu.RLock()
	session, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	if time.Since(session.LastSeen()) > m.ttl {
		m.mu.Lock()
		delete(m.sessions, id)
		m.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	session.Touch()
	return session, nil
}

func (m *SessionManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
