package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/inventory-keeper/internal/models"
)

// CreateTransaction сохраняет складскую операцию вместе с парой строк
// двойной записи и, при необходимости, переводит предмет в статус REMOVED.
// Всё выполняется в одной транзакции базы данных.
func (s *Storage) CreateTransaction(ctx context.Context, stockTx models.StockTransaction,
	entries []models.LedgerEntry, markItemRemoved bool) (string, error) {
	const op = "storage.CreateTransaction"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var newUID string
	query := `INSERT INTO stock_transactions (user_uid, item_uid, type, quantity,
			      unit_price, total_amount, transaction_date, reason, notes, account_uid)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING uid;`
	if err = tx.QueryRowContext(ctx, query,
		stockTx.UserUID, stockTx.ItemUID, stockTx.Type, stockTx.Quantity,
		stockTx.UnitPrice, stockTx.TotalAmount, stockTx.TransactionDate,
		stockTx.Reason, stockTx.Notes, stockTx.AccountUID).Scan(&newUID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	entryQuery := `INSERT INTO ledger_entries (user_uid, item_uid, account_uid,
			           transaction_date, amount, direction, category_code, note)
			       VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, entry := range entries {
		if _, err = tx.ExecContext(ctx, entryQuery,
			entry.UserUID, entry.ItemUID, entry.AccountUID, entry.TransactionDate,
			entry.Amount, entry.Direction, entry.CategoryCode, entry.Note); err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
	}

	if markItemRemoved {
		if _, err = tx.ExecContext(ctx,
			`UPDATE items SET status = $1, updated_at = NOW() WHERE uid = $2 AND user_uid = $3`,
			models.ItemStatusRemoved, stockTx.ItemUID, stockTx.UserUID); err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// GetTransaction возвращает складскую операцию по UID в пределах пользователя.
func (s *Storage) GetTransaction(ctx context.Context, userUID, txUID string) (*models.StockTransaction, error) {
	const op = "storage.GetTransaction"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, user_uid, item_uid, type, quantity, unit_price, total_amount,
			      transaction_date, reason, notes, account_uid, created_at
			  FROM stock_transactions
			  WHERE uid = $1 AND user_uid = $2`
	t := &models.StockTransaction{}
	row := s.DB.QueryRowContext(ctx, query, txUID, userUID)
	if err := row.Scan(&t.UID, &t.UserUID, &t.ItemUID, &t.Type, &t.Quantity,
		&t.UnitPrice, &t.TotalAmount, &t.TransactionDate, &t.Reason, &t.Notes,
		&t.AccountUID, &t.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return t, nil
}

// ListTransactions возвращает складские операции пользователя с фильтрами
// и пагинацией, новые записи первыми.
func (s *Storage) ListTransactions(ctx context.Context, userUID string, filter models.TxFilter) ([]*models.StockTransaction, error) {
	const op = "storage.ListTransactions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, user_uid, item_uid, type, quantity, unit_price, total_amount,
			      transaction_date, reason, notes, account_uid, created_at
			  FROM stock_transactions
			  WHERE user_uid = $1
			    AND ($2 = '' OR type = $2)
			    AND ($3 = '' OR item_uid::text = $3)
			    AND ($4::date IS NULL OR transaction_date >= $4)
			    AND ($5::date IS NULL OR transaction_date <= $5)
			  ORDER BY transaction_date DESC, created_at DESC
			  LIMIT $6 OFFSET $7`
	rows, err := s.DB.QueryContext(ctx, query,
		userUID, filter.Type, filter.ItemUID, filter.StartDate, filter.EndDate,
		filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.StockTransaction
	for rows.Next() {
		var t models.StockTransaction
		if err = rows.Scan(&t.UID, &t.UserUID, &t.ItemUID, &t.Type, &t.Quantity,
			&t.UnitPrice, &t.TotalAmount, &t.TransactionDate, &t.Reason, &t.Notes,
			&t.AccountUID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
