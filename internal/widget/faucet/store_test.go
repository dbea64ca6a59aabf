package faucet

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestGrantStores(t *testing.T) {
	type testCase struct {
		Name  string
		Store func(t *testing.T) GrantStore
	}

	testCases := []testCase{
		{
			Name: "memory",
			Store: func(t *testing.T) GrantStore {
				return NewMemoryStore()
			},
		},
		{
			Name: "sqlite",
			Store: func(t *testing.T) GrantStore {
				store := NewSQLiteStore(filepath.Join(t.TempDir(), "grants.sqlite"))
				t.Cleanup(func() {
					if err := store.Close(); err != nil {
						t.Errorf("%+v", errors.WithStack(err))
					}
				})
				return store
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			ctx := context.Background()
			store := tc.Store(t)

			last, err := store.LastGrant(ctx, "0xabc")
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if !last.IsZero() {
				t.Errorf("last grant: expected zero time, got '%v'", last)
			}

			first := time.UnixMilli(time.Now().UnixMilli())
			second := first.Add(time.Minute)

			for _, at := range []time.Time{first, second} {
				if err := store.RecordGrant(ctx, "0xabc", at); err != nil {
					t.Fatalf("%+v", errors.WithStack(err))
				}
			}

			last, err = store.LastGrant(ctx, "0xabc")
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := second, last; !e.Equal(g) {
				t.Errorf("last grant: expected '%v', got '%v'", e, g)
			}

			last, err = store.LastGrant(ctx, "0xdef")
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if !last.IsZero() {
				t.Errorf("last grant of another address: expected zero time, got '%v'", last)
			}
		})
	}
}
