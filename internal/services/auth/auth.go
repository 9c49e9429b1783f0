// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/inventory-keeper/internal/lib/jwt"
	"github.com/magabrotheeeer/inventory-keeper/internal/lib/password"
	"github.com/magabrotheeeer/inventory-keeper/internal/models"
)

// Ошибки аутентификации и регистрации.
var (
	// ErrInvalidCredentials логин не найден либо пароль не подошел.
	// Снаружи эти два случая неразличимы, чтобы нельзя было перебором
	// выяснить существование учётной записи.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserExists username или email уже заняты.
	ErrUserExists = errors.New("user already exists")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его UID.
	RegisterUser(ctx context.Context, user models.User) (string, error)

	// GetUserByLogin возвращает пользователя по username или email.
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)

	// ExistsUser проверяет, занят ли username или email.
	ExistsUser(ctx context.Context, username, email string) (bool, error)
}

// AuthService отвечает за регистрацию, вход и валидацию JWT.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля.
// Токен при регистрации не выпускается, вход — отдельный явный шаг.
func (s *AuthService) Register(ctx context.Context, username, email, rawPassword string) (*models.Profile, error) {
	const op = "services.auth.Register"

	exists, err := s.users.ExistsUser(ctx, username, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if exists {
		return nil, ErrUserExists
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
	}
	uid, err := s.users.RegisterUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &models.Profile{
		ID:       uid,
		Username: username,
		Email:    email,
	}, nil
}

// Login проверяет пароль пользователя и выпускает JWT.
// login сопоставляется и с username, и с email.
func (s *AuthService) Login(ctx context.Context, login, rawPassword string) (string, *models.Profile, error) {
	user, err := s.users.GetUserByLogin(ctx, login)
	if err != nil {
		// Отсутствие пользователя неотличимо от неверного пароля.
		return "", nil, ErrInvalidCredentials
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	token, err := s.jwtMaker.Issue(user.UID, user.Username, user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("services.auth.Login: %w", err)
	}
	profile := user.Profile()
	return token, &profile, nil
}

// ValidateToken проверяет JWT и возвращает профиль субъекта.
func (s *AuthService) ValidateToken(_ context.Context, token string) (*models.Profile, error) {
	claims, err := s.jwtMaker.Verify(token)
	if err != nil {
		return nil, err
	}
	return &models.Profile{
		ID:       claims.UserUID,
		Username: claims.Username,
		Email:    claims.Email,
	}, nil
}
