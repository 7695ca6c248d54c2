package auth

import (
	"sync"
	"time"

	"github.com/yougile/go-yougile/pkg/yougile"
)

// Credential is an issued API key scoped to a company.
type Credential struct {
	Key       string
	CompanyID string
	IssuedAt  time.Time
}

// Store holds the current credential. Reads never block behind the
// authentication sequence; an empty store reports ErrAuthenticationRequired
// and the caller decides whether to negotiate.
type Store struct {
	mutex      sync.RWMutex
	credential *Credential
}

// NewStore creates an empty credential store.
func NewStore() *Store {
	return &Store{}
}

// Current returns the stored credential, or ErrAuthenticationRequired when
// none has been set.
func (s *Store) Current() (*Credential, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.credential == nil {
		return nil, yougile.ErrAuthenticationRequired
	}

	return s.credential, nil
}

// Set replaces the stored credential.
func (s *Store) Set(credential *Credential) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.credential = credential
}

// Invalidate clears the store only if the rejected key is still current, so
// a concurrent refresh that already installed a newer key is not clobbered.
func (s *Store) Invalidate(key string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.credential != nil && s.credential.Key == key {
		s.credential = nil
	}
}

// Clear unconditionally drops the stored credential.
func (s *Store) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.credential = nil
}
