package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/inventory-keeper/internal/models"
)

// CreateAccount сохраняет новый счёт пользователя и возвращает его UID.
func (s *Storage) CreateAccount(ctx context.Context, account models.Account) (string, error) {
	const op = "storage.CreateAccount"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO accounts (user_uid, name, type)
			  VALUES ($1, $2, $3)
			  RETURNING uid;`
	if err := s.DB.QueryRowContext(ctx, query,
		account.UserUID, account.Name, account.Type).Scan(&newUID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// ListAccounts возвращает все счета пользователя.
func (s *Storage) ListAccounts(ctx context.Context, userUID string) ([]*models.Account, error) {
	const op = "storage.ListAccounts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, user_uid, name, type, created_at
			  FROM accounts
			  WHERE user_uid = $1
			  ORDER BY created_at`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Account
	for rows.Next() {
		var a models.Account
		if err = rows.Scan(&a.UID, &a.UserUID, &a.Name, &a.Type, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateAccount изменяет название и тип счёта, возвращает количество
// изменённых строк.
func (s *Storage) UpdateAccount(ctx context.Context, userUID string, account models.Account) (int, error) {
	const op = "storage.UpdateAccount"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE accounts
			  SET name = $1, type = $2
			  WHERE uid = $3 AND user_uid = $4`
	res, err := s.DB.ExecContext(ctx, query, account.Name, account.Type, account.UID, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rows), nil
}

// DeleteAccount удаляет счёт пользователя и возвращает количество
// удалённых строк. Счёт, на который ссылаются операции или строки книги
// учёта, не удаляется: условие в запросе оставляет такую строку на месте.
func (s *Storage) DeleteAccount(ctx context.Context, userUID, accountUID string) (int, error) {
	const op = "storage.DeleteAccount"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM accounts
			  WHERE uid = $1 AND user_uid = $2
			    AND NOT EXISTS (SELECT 1 FROM stock_transactions WHERE account_uid = $1)
			    AND NOT EXISTS (SELECT 1 FROM ledger_entries WHERE account_uid = $1)`
	res, err := s.DB.ExecContext(ctx, query, accountUID, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rows), nil
}

// GetAccount возвращает счёт по UID в пределах одного пользователя.
func (s *Storage) GetAccount(ctx context.Context, userUID, accountUID string) (*models.Account, error) {
	const op = "storage.GetAccount"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, user_uid, name, type, created_at
			  FROM accounts
			  WHERE uid = $1 AND user_uid = $2`
	a := &models.Account{}
	row := s.DB.QueryRowContext(ctx, query, accountUID, userUID)
	if err := row.Scan(&a.UID, &a.UserUID, &a.Name, &a.Type, &a.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return a, nil
}
