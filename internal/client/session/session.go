// Package session управляет состоянием клиентской сессии.
//
// Store находится ровно в одном из двух состояний: аутентифицирован
// (есть токен и профиль) или аноним (нет ни того, ни другого).
// Все переходы сериализуются мьютексом.
package session

import (
	"context"
	"sync"

	"github.com/magabrotheeeer/inventory-keeper/internal/models"
)

// API описывает вызовы сервера, которые нужны сессии.
type API interface {
	Login(ctx context.Context, login, password string) (string, *models.Profile, error)
	Register(ctx context.Context, username, email, password string) (*models.Profile, error)
}

// Persistence описывает долговременное хранилище сессии.
type Persistence interface {
	Save(token string, profile *models.Profile) error
	Load() (string, *models.Profile, error)
	Clear() error
}

// Store держит текущее состояние сессии.
type Store struct {
	mu      sync.Mutex
	api     API
	storage Persistence

	token   string
	profile *models.Profile
	loading bool
}

// New создает Store в анонимном состоянии.
func New(api API, storage Persistence) *Store {
	return &Store{
		api:     api,
		storage: storage,
	}
}

// Login выполняет вход. При успехе сессия сохраняется и состояние
// становится аутентифицированным, при любой ошибке остаётся анонимным.
//
// Мьютекс не удерживается на время сетевого вызова: диспетчер при 401
// сам вызывает Logout, и блокировка привела бы к взаимной блокировке.
func (s *Store) Login(ctx context.Context, login, password string) error {
	s.setLoading(true)
	defer s.setLoading(false)

	token, profile, err := s.api.Login(ctx, login, password)
	if err != nil {
		return err
	}

	if err := s.storage.Save(token, profile); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = token
	s.profile = profile
	s.mu.Unlock()
	return nil
}

// Register создает учётную запись. Состояние сессии не меняется:
// после регистрации клиент должен выполнить вход.
func (s *Store) Register(ctx context.Context, username, email, password string) (*models.Profile, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	return s.api.Register(ctx, username, email, password)
}

// Logout переводит сессию в анонимное состояние и чистит хранилище.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

// Restore восстанавливает сессию из хранилища при старте клиента.
// Неполная или повреждённая сессия оставляет состояние анонимным.
func (s *Store) Restore() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = true
	defer func() { s.loading = false }()

	token, profile, err := s.storage.Load()
	if err != nil {
		return err
	}
	if token == "" || profile == nil {
		s.token = ""
		s.profile = nil
		return nil
	}
	s.token = token
	s.profile = profile
	return nil
}

// IsAuthenticated сообщает, аутентифицирована ли сессия.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != "" && s.profile != nil
}

// IsLoading сообщает, выполняется ли сейчас операция входа или восстановления.
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Token возвращает текущий токен или пустую строку для анонима.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Profile возвращает профиль текущего пользователя или nil для анонима.
func (s *Store) Profile() *models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

func (s *Store) reset() {
	s.token = ""
	s.profile = nil
	_ = s.storage.Clear()
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}
