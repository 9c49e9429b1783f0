// Package services содержит бизнес-логику счетов пользователя.
package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/magabrotheeeer/inventory-keeper/internal/models"
)

// Ошибки операций со счетами.
var (
	// ErrAccountNotFound счёт не существует или принадлежит другому пользователю.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountInUse на счёт ссылаются операции или строки книги учёта.
	ErrAccountInUse = errors.New("account is referenced by transactions")
)

// AccountRepository определяет методы работы хранилища со счетами.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account models.Account) (string, error)
	ListAccounts(ctx context.Context, userUID string) ([]*models.Account, error)
	GetAccount(ctx context.Context, userUID, accountUID string) (*models.Account, error)
	// UpdateAccount изменяет счёт и возвращает количество изменённых строк.
	UpdateAccount(ctx context.Context, userUID string, account models.Account) (int, error)
	// DeleteAccount удаляет неиспользуемый счёт и возвращает количество
	// удалённых строк.
	DeleteAccount(ctx context.Context, userUID, accountUID string) (int, error)
}

// AccountService реализует бизнес-логику счетов.
type AccountService struct {
	repo AccountRepository
	log  *slog.Logger
}

// NewAccountService создает новый экземпляр AccountService.
func NewAccountService(repo AccountRepository, log *slog.Logger) *AccountService {
	return &AccountService{
		repo: repo,
		log:  log,
	}
}

// Create регистрирует новый счёт пользователя.
func (s *AccountService) Create(ctx context.Context, userUID string, req models.DummyAccount) (string, error) {
	account := models.Account{
		UserUID: userUID,
		Name:    req.Name,
		Type:    req.Type,
	}
	uid, err := s.repo.CreateAccount(ctx, account)
	if err != nil {
		return "", err
	}
	s.log.Info("created account", slog.String("uid", uid))
	return uid, nil
}

// List возвращает все счета пользователя.
func (s *AccountService) List(ctx context.Context, userUID string) ([]*models.Account, error) {
	return s.repo.ListAccounts(ctx, userUID)
}

// Read возвращает счёт по идентификатору в пределах пользователя.
func (s *AccountService) Read(ctx context.Context, userUID, accountUID string) (*models.Account, error) {
	account, err := s.repo.GetAccount(ctx, userUID, accountUID)
	if err != nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

// Update изменяет название и тип счёта.
func (s *AccountService) Update(ctx context.Context, userUID, accountUID string, req models.DummyAccount) error {
	account := models.Account{
		UID:  accountUID,
		Name: req.Name,
		Type: req.Type,
	}
	rows, err := s.repo.UpdateAccount(ctx, userUID, account)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrAccountNotFound
	}
	s.log.Info("updated account", slog.String("uid", accountUID))
	return nil
}

// Delete удаляет счёт пользователя. Счёт, задействованный в операциях,
// удалить нельзя: строки книги учёта должны оставаться привязанными.
func (s *AccountService) Delete(ctx context.Context, userUID, accountUID string) error {
	rows, err := s.repo.DeleteAccount(ctx, userUID, accountUID)
	if err != nil {
		return err
	}
	if rows == 0 {
		if _, err := s.repo.GetAccount(ctx, userUID, accountUID); err != nil {
			return ErrAccountNotFound
		}
		return ErrAccountInUse
	}
	s.log.Info("deleted account", slog.String("uid", accountUID))
	return nil
}
