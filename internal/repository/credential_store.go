package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"authdemo/internal/kv"
	"authdemo/internal/logging"
	"authdemo/internal/model"
)

var errSeedPresent = errors.New("seed user present")

// UserStore defines the operations the auth flows need from persistence.
type UserStore interface {
	Load(ctx context.Context) []model.User
	Mutate(ctx context.Context, fn func(users []model.User) ([]model.User, error)) error
}

// CredentialStore keeps the whole user list as one JSON array in a single
// key-value slot. Writes reload the list, apply a change and overwrite the
// slot; concurrent writers are last-writer-wins with no locking.
type CredentialStore struct {
	kv   kv.Store
	key  string
	seed model.User
}

var _ UserStore = (*CredentialStore)(nil)

// NewCredentialStore creates a store over slot key of backend. seed is the
// demo account installed by EnsureSeedUser.
func NewCredentialStore(backend kv.Store, key string, seed model.User) *CredentialStore {
	return &CredentialStore{kv: backend, key: key, seed: seed}
}

// Load reads the persisted list. Missing or unreadable data yields an empty
// list; the failure is logged and never returned.
func (s *CredentialStore) Load(ctx context.Context) []model.User {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		logging.L.Warn("load users failed, treating as empty", "key", s.key, "err", err)
		return []model.User{}
	}
	if len(raw) == 0 {
		return []model.User{}
	}

	var users []model.User
	if err := json.Unmarshal(raw, &users); err != nil {
		logging.L.Warn("stored users are not valid JSON, treating as empty", "key", s.key, "err", err)
		return []model.User{}
	}
	if users == nil {
		users = []model.User{}
	}
	return users
}

// Save serializes the full list and overwrites the slot.
func (s *CredentialStore) Save(ctx context.Context, users []model.User) error {
	if users == nil {
		users = []model.User{}
	}
	payload, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("marshal users: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, payload); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}

// Mutate reloads the list, hands it to fn and persists what fn returns.
// Nothing is written when fn fails.
func (s *CredentialStore) Mutate(ctx context.Context, fn func(users []model.User) ([]model.User, error)) error {
	users, err := fn(s.Load(ctx))
	if err != nil {
		return err
	}
	return s.Save(ctx, users)
}

// EnsureSeedUser appends the demo account unless a user with the same email
// (ignoring case) already exists. It reports whether the account was created.
func (s *CredentialStore) EnsureSeedUser(ctx context.Context) (bool, error) {
	created := false
	err := s.Mutate(ctx, func(users []model.User) ([]model.User, error) {
		if FindByEmail(users, s.seed.Email) != nil {
			return nil, errSeedPresent
		}
		created = true
		return append(users, s.seed), nil
	})
	if errors.Is(err, errSeedPresent) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("seed demo user: %w", err)
	}
	return created, nil
}

// FindByEmail returns a pointer into users for the first entry whose email
// matches ignoring case, or nil.
func FindByEmail(users []model.User, email string) *model.User {
	for i := range users {
		if users[i].SameEmail(email) {
			return &users[i]
		}
	}
	return nil
}
