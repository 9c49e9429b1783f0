package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/inventory-keeper/internal/models"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestStore_SaveAndLoad(t *testing.T) {
	s := newStore(t)

	profile := &models.Profile{ID: "u1", Username: "testuser", Email: "test@example.com"}
	require.NoError(t, s.Save("tok-1", profile))

	token, got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	require.NotNil(t, got)
	assert.Equal(t, "testuser", got.Username)
	assert.Equal(t, "u1", got.ID)
}

func TestStore_LoadEmpty(t *testing.T) {
	s := newStore(t)

	token, profile, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Nil(t, profile)
}

func TestStore_SaveRejectsPartialSession(t *testing.T) {
	s := newStore(t)

	assert.Error(t, s.Save("", &models.Profile{ID: "u1"}))
	assert.Error(t, s.Save("tok-1", nil))
}

func TestStore_LoadClearsPartialPair(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	// Только токен, без профиля
	require.NoError(t, os.WriteFile(filepath.Join(dir, "token"), []byte("tok-1"), 0o600))

	token, profile, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Nil(t, profile)

	_, statErr := os.Stat(filepath.Join(dir, "token"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestStore_LoadClearsCorruptProfile(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "token"), []byte("tok-1"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "user"), []byte("{broken"), 0o600))

	token, profile, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Nil(t, profile)
}

func TestStore_Clear(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.Save("tok-1", &models.Profile{ID: "u1", Username: "testuser"}))
	require.NoError(t, s.Clear())

	token, profile, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Nil(t, profile)

	// Повторная очистка не возвращает ошибку
	require.NoError(t, s.Clear())
}
