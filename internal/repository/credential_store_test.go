package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"authdemo/internal/kv"
	"authdemo/internal/model"
)

const testKey = "eb_users"

var demo = model.User{Name: "Demo User", Email: "user@enquero.com", Password: "Enquero@123"}

// MockKV is a mock implementation of kv.Store.
type MockKV struct {
	mock.Mock
}

func (m *MockKV) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockKV) Set(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockKV) Close() error {
	return m.Called().Error(0)
}

func TestCredentialStore_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewCredentialStore(kv.NewMemory(), testKey, demo)

	users := []model.User{
		{Name: "Ann", Email: "ann@x.com", Password: "Passw0rd"},
		{Email: "noname@x.com", Password: "Secret123"},
	}
	require.NoError(t, store.Save(ctx, users))

	assert.Equal(t, users, store.Load(ctx))
}

func TestCredentialStore_PersistenceFormat(t *testing.T) {
	ctx := context.Background()
	backend := kv.NewMemory()
	store := NewCredentialStore(backend, testKey, demo)

	require.NoError(t, store.Save(ctx, []model.User{{Email: "a@b.com", Password: "x"}}))

	raw, err := backend.Get(ctx, testKey)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"email":"a@b.com","password":"x"}]`, string(raw))
}

func TestCredentialStore_LoadFailsSoft(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		setup func(*MockKV)
	}{
		{
			name:  "missing slot",
			setup: func(m *MockKV) { m.On("Get", mock.Anything, testKey).Return(nil, nil) },
		},
		{
			name:  "corrupt json",
			setup: func(m *MockKV) { m.On("Get", mock.Anything, testKey).Return([]byte("{not json"), nil) },
		},
		{
			name:  "json null",
			setup: func(m *MockKV) { m.On("Get", mock.Anything, testKey).Return([]byte("null"), nil) },
		},
		{
			name:  "backend error",
			setup: func(m *MockKV) { m.On("Get", mock.Anything, testKey).Return(nil, errors.New("connection refused")) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(MockKV)
			tt.setup(m)

			users := NewCredentialStore(m, testKey, demo).Load(ctx)

			assert.NotNil(t, users)
			assert.Empty(t, users)
			m.AssertExpectations(t)
		})
	}
}

func TestCredentialStore_SaveReturnsBackendError(t *testing.T) {
	m := new(MockKV)
	m.On("Set", mock.Anything, testKey, mock.Anything).Return(errors.New("quota exceeded"))

	err := NewCredentialStore(m, testKey, demo).Save(context.Background(), nil)

	assert.ErrorContains(t, err, "quota exceeded")
	m.AssertExpectations(t)
}

func TestCredentialStore_EnsureSeedUserIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewCredentialStore(kv.NewMemory(), testKey, demo)

	created, err := store.EnsureSeedUser(ctx)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = store.EnsureSeedUser(ctx)
	require.NoError(t, err)
	assert.False(t, created)

	users := store.Load(ctx)
	require.Len(t, users, 1)
	assert.Equal(t, demo, users[0])
}

func TestCredentialStore_EnsureSeedUserMatchesCaseInsensitively(t *testing.T) {
	ctx := context.Background()
	store := NewCredentialStore(kv.NewMemory(), testKey, demo)
	existing := model.User{Name: "Mine", Email: "USER@Enquero.com", Password: "Changed99"}
	require.NoError(t, store.Save(ctx, []model.User{existing}))

	created, err := store.EnsureSeedUser(ctx)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, []model.User{existing}, store.Load(ctx))
}

func TestCredentialStore_EnsureSeedUserAppends(t *testing.T) {
	ctx := context.Background()
	store := NewCredentialStore(kv.NewMemory(), testKey, demo)
	other := model.User{Name: "Ann", Email: "ann@x.com", Password: "Passw0rd"}
	require.NoError(t, store.Save(ctx, []model.User{other}))

	created, err := store.EnsureSeedUser(ctx)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, []model.User{other, demo}, store.Load(ctx))
}

func TestCredentialStore_MutateSkipsSaveOnError(t *testing.T) {
	m := new(MockKV)
	m.On("Get", mock.Anything, testKey).Return([]byte(`[]`), nil)
	store := NewCredentialStore(m, testKey, demo)

	boom := errors.New("boom")
	err := store.Mutate(context.Background(), func(users []model.User) ([]model.User, error) {
		return nil, boom
	})

	assert.ErrorIs(t, err, boom)
	m.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestCredentialStore_LastWriterWins(t *testing.T) {
	ctx := context.Background()
	backend := kv.NewMemory()
	tabA := NewCredentialStore(backend, testKey, demo)
	tabB := NewCredentialStore(backend, testKey, demo)

	// Both tabs read the same empty list before either writes.
	listA := tabA.Load(ctx)
	listB := tabB.Load(ctx)

	require.NoError(t, tabA.Save(ctx, append(listA, model.User{Email: "a@x.com", Password: "Passw0rd"})))
	require.NoError(t, tabB.Save(ctx, append(listB, model.User{Email: "b@x.com", Password: "Passw0rd"})))

	users := tabA.Load(ctx)
	require.Len(t, users, 1)
	assert.Equal(t, "b@x.com", users[0].Email)
}

func TestFindByEmail(t *testing.T) {
	users := []model.User{
		{Name: "Ann", Email: "Ann@X.com"},
		{Name: "Bob", Email: "bob@x.com"},
	}

	found := FindByEmail(users, "ann@x.COM")
	require.NotNil(t, found)
	assert.Equal(t, "Ann", found.Name)

	found.Password = "mutated"
	assert.Equal(t, "mutated", users[0].Password)

	assert.Nil(t, FindByEmail(users, "carol@x.com"))
	assert.Nil(t, FindByEmail(nil, "ann@x.com"))
}
