package auth

import (
	"context"
	"errors"

	"github.com/yougile/go-yougile/pkg/yougile"
)

// Manager pairs the credential store with the negotiator. The first request
// finding the store empty triggers negotiation; afterwards the stored key is
// reused until a 401 invalidates it.
type Manager struct {
	store      *Store
	negotiator *Negotiator
}

// NewManager creates a manager over a fresh store.
func NewManager(negotiator *Negotiator) *Manager {
	return &Manager{
		store:      NewStore(),
		negotiator: negotiator,
	}
}

// Current returns a usable credential, negotiating one when the store is
// empty.
func (m *Manager) Current(ctx context.Context) (*Credential, error) {
	credential, err := m.store.Current()
	if err == nil {
		return credential, nil
	}

	if !errors.Is(err, yougile.ErrAuthenticationRequired) {
		return nil, err
	}

	return m.Refresh(ctx)
}

// Refresh negotiates a fresh credential and installs it.
func (m *Manager) Refresh(ctx context.Context) (*Credential, error) {
	credential, err := m.negotiator.Refresh(ctx)
	if err != nil {
		return nil, err
	}

	m.store.Set(credential)

	return credential, nil
}

// Invalidate drops the rejected key from the store.
func (m *Manager) Invalidate(key string) {
	m.store.Invalidate(key)
}

// SetCredential installs a credential directly, bypassing negotiation.
func (m *Manager) SetCredential(credential *Credential) {
	m.store.Set(credential)
}

// Negotiator exposes the underlying negotiator for login-time operations.
func (m *Manager) Negotiator() *Negotiator {
	return m.negotiator
}
