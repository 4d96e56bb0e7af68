package theme

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Domenick1991/airdesk/config"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Load(ctx context.Context) (Mode, bool, error) {
	args := m.Called(ctx)
	return args.Get(0).(Mode), args.Bool(1), args.Error(2)
}

func (m *MockStore) Save(ctx context.Context, mode Mode) error {
	args := m.Called(ctx, mode)
	return args.Error(0)
}

func TestState_InitPrefersSavedMode(t *testing.T) {
	store := &MockStore{}
	ctx := context.Background()
	store.On("Load", ctx).Return(Dark, true, nil).Once()

	state := NewState(store, false)

	assert.Equal(t, Dark, state.Init(ctx))
	assert.Equal(t, Dark, state.Mode())
	store.AssertExpectations(t)
}

func TestState_InitFallsBackToSystem(t *testing.T) {
	ctx := context.Background()

	store := &MockStore{}
	store.On("Load", ctx).Return(Mode(""), false, nil).Once()
	assert.Equal(t, Dark, NewState(store, true).Init(ctx))

	broken := &MockStore{}
	broken.On("Load", ctx).Return(Mode(""), false, errors.New("redis down")).Once()
	assert.Equal(t, Light, NewState(broken, false).Init(ctx))
}

func TestState_Toggle(t *testing.T) {
	store := &MockStore{}
	ctx := context.Background()
	store.On("Load", ctx).Return(Mode(""), false, nil).Once()
	store.On("Save", ctx, Dark).Return(nil).Once()
	store.On("Save", ctx, Light).Return(errors.New("disk full")).Once()

	state := NewState(store, false)
	state.Init(ctx)

	mode, err := state.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, Dark, mode)

	mode, err = state.Toggle(ctx)
	assert.Error(t, err)
	assert.Equal(t, Dark, mode)
	assert.Equal(t, Dark, state.Mode())

	store.AssertExpectations(t)
}

func TestState_SetRejectsUnknownMode(t *testing.T) {
	store := &MockStore{}
	state := NewState(store, false)

	_, err := state.Set(context.Background(), Mode("sepia"))

	assert.Error(t, err)
	store.AssertNotCalled(t, "Save")
}

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prefs", "theme.json")
	store := NewFileStore(path)

	_, ok, err := store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(ctx, Dark))
	mode, ok, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, Dark, mode)

	require.NoError(t, os.WriteFile(path, []byte(`{"theme":"neon"}`), 0o600))
	_, ok, err = store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewRedisStore(t *testing.T) {
	store := NewRedisStore(config.RedisConfig{Addr: "localhost:6379"})
	assert.NotNil(t, store)
	assert.NoError(t, store.Close())
}

func TestNewPGStore(t *testing.T) {
	pool := &pgxpool.Pool{}
	assert.NotNil(t, NewPGStore(pool))
}

func TestMode_Toggled(t *testing.T) {
	assert.Equal(t, Dark, Light.Toggled())
	assert.Equal(t, Light, Dark.Toggled())
	_, ok := ParseMode("DARK")
	assert.False(t, ok)
}
