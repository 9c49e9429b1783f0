// Package storage реализует долговременное хранение клиентской сессии.
//
// Токен и профиль лежат в двух файлах каталога состояния. Запись атомарна
// на уровне пары: сохраняются оба значения или ни одного. Частично
// сохранённая сессия при чтении считается повреждённой и вычищается.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/magabrotheeeer/inventory-keeper/internal/models"
)

const (
	tokenFile = "token"
	userFile  = "user"
)

// Store хранит сессию в файлах каталога состояния.
type Store struct {
	dir string
}

// New создает Store поверх каталога состояния, создавая его при необходимости.
func New(dir string) (*Store, error) {
	const op = "client.storage.New"
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Store{dir: dir}, nil
}

// Save записывает токен и профиль. Если запись профиля не удалась,
// уже записанный токен удаляется, чтобы не оставить половину сессии.
func (s *Store) Save(token string, profile *models.Profile) error {
	const op = "client.storage.Save"
	if token == "" || profile == nil {
		return fmt.Errorf("%s: empty session", op)
	}

	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := os.WriteFile(s.path(tokenFile), []byte(token), 0o600); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.WriteFile(s.path(userFile), data, 0o600); err != nil {
		_ = os.Remove(s.path(tokenFile))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Load читает сохранённую сессию. Если сохранена только часть пары
// или профиль не разбирается, сессия вычищается и возвращается пустой
// результат без ошибки.
func (s *Store) Load() (string, *models.Profile, error) {
	const op = "client.storage.Load"

	tokenBytes, tokenErr := os.ReadFile(s.path(tokenFile))
	userBytes, userErr := os.ReadFile(s.path(userFile))

	if errors.Is(tokenErr, os.ErrNotExist) && errors.Is(userErr, os.ErrNotExist) {
		return "", nil, nil
	}
	if tokenErr != nil || userErr != nil {
		if !errors.Is(tokenErr, os.ErrNotExist) && tokenErr != nil {
			return "", nil, fmt.Errorf("%s: %w", op, tokenErr)
		}
		if !errors.Is(userErr, os.ErrNotExist) && userErr != nil {
			return "", nil, fmt.Errorf("%s: %w", op, userErr)
		}
		// Сохранилась только половина пары
		_ = s.Clear()
		return "", nil, nil
	}

	var profile models.Profile
	if err := json.Unmarshal(userBytes, &profile); err != nil {
		_ = s.Clear()
		return "", nil, nil
	}
	token := string(tokenBytes)
	if token == "" {
		_ = s.Clear()
		return "", nil, nil
	}
	return token, &profile, nil
}

// Clear удаляет сохранённую сессию.
func (s *Store) Clear() error {
	const op = "client.storage.Clear"
	var firstErr error
	for _, name := range []string{tokenFile, userFile} {
		if err := os.Remove(s.path(name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", op, err)
			}
		}
	}
	return firstErr
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}
