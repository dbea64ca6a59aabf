package faucet

import (
	"context"
	"time"

	"github.com/bornholm/scaffold/internal/syncx"
)

// GrantStore records when an address was last served by the faucet.
type GrantStore interface {
	// LastGrant returns the zero time when the address was never served.
	LastGrant(ctx context.Context, address string) (time.Time, error)
	RecordGrant(ctx context.Context, address string, at time.Time) error
}

type MemoryStore struct {
	grants syncx.Map[string, time.Time]
}

// LastGrant implements GrantStore.
func (s *MemoryStore) LastGrant(ctx context.Context, address string) (time.Time, error) {
	at, _ := s.grants.Load(address)
	return at, nil
}

// RecordGrant implements GrantStore.
func (s *MemoryStore) RecordGrant(ctx context.Context, address string, at time.Time) error {
	s.grants.Store(address, at)
	return nil
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

var _ GrantStore = &MemoryStore{}
