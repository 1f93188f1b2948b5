// Package session persists the authenticated user's token and role.
//
// Only two keys are ever written: KeyToken and KeyRole. There is no
// client-side expiry; the backend rejects stale tokens with 401 and the
// HTTP client clears the store in response.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/hrverify/internal/client/models"
)

const (
	KeyToken = "token"
	KeyRole  = "role"
)

var ErrEmptyToken = errors.New("session token is empty")

// Store is the Session Store contract.
type Store interface {
	Set(ctx context.Context, token string, role models.Role) error
	// Get returns ok=false when no token is stored.
	Get(ctx context.Context) (models.Session, bool, error)
	Clear(ctx context.Context) error
}

// MemoryStore keeps the session in process memory only.
type MemoryStore struct {
	mu      sync.Mutex
	session models.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Set(_ context.Context, token string, role models.Role) error {
	if token == "" {
		return ErrEmptyToken
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = models.Session{Token: token, Role: role}
	return nil
}

func (m *MemoryStore) Get(_ context.Context) (models.Session, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session, m.session.Authenticated(), nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = models.Session{}
	return nil
}
