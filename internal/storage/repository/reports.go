package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/magabrotheeeer/inventory-keeper/internal/models"
)

// GetTotalInventoryValue возвращает суммарную стоимость активного инвентаря.
func (s *Storage) GetTotalInventoryValue(ctx context.Context, userUID string) (float64, error) {
	const op = "storage.GetTotalInventoryValue"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COALESCE(SUM(purchase_price), 0)
			  FROM items
			  WHERE user_uid = $1 AND status = $2 AND deleted_at IS NULL`
	var total float64
	if err := s.DB.QueryRowContext(ctx, query, userUID, models.ItemStatusActive).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}

// GetValueByBrand возвращает стоимость активного инвентаря с разбивкой по брендам.
func (s *Storage) GetValueByBrand(ctx context.Context, userUID string) ([]models.BrandValue, error) {
	const op = "storage.GetValueByBrand"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COALESCE(NULLIF(brand, ''), 'unknown'), SUM(purchase_price)
			  FROM items
			  WHERE user_uid = $1 AND status = $2 AND deleted_at IS NULL
			  GROUP BY 1
			  ORDER BY 2 DESC`
	rows, err := s.DB.QueryContext(ctx, query, userUID, models.ItemStatusActive)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.BrandValue
	for rows.Next() {
		var bv models.BrandValue
		if err = rows.Scan(&bv.Brand, &bv.Value); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, bv)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetOutboundAmountByReason возвращает суммы выбытий по причинам за период.
func (s *Storage) GetOutboundAmountByReason(ctx context.Context, userUID string,
	startDate, endDate time.Time) ([]models.ReasonAmount, error) {
	const op = "storage.GetOutboundAmountByReason"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT reason, SUM(total_amount)
			  FROM stock_transactions
			  WHERE user_uid = $1 AND type = $2
			    AND transaction_date BETWEEN $3 AND $4
			  GROUP BY reason
			  ORDER BY 2 DESC`
	rows, err := s.DB.QueryContext(ctx, query, userUID, models.TxTypeOut, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.ReasonAmount
	for rows.Next() {
		var ra models.ReasonAmount
		if err = rows.Scan(&ra.Reason, &ra.Amount); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, ra)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetTotalAmountByType возвращает сумму операций заданного типа за период.
func (s *Storage) GetTotalAmountByType(ctx context.Context, userUID, txType string,
	startDate, endDate time.Time) (float64, error) {
	const op = "storage.GetTotalAmountByType"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COALESCE(SUM(total_amount), 0)
			  FROM stock_transactions
			  WHERE user_uid = $1 AND type = $2
			    AND transaction_date BETWEEN $3 AND $4`
	var total float64
	if err := s.DB.QueryRowContext(ctx, query, userUID, txType, startDate, endDate).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}

// ListLedgerEntries возвращает строки книги учёта пользователя
// с фильтрами по счёту и периоду, новые записи первыми.
func (s *Storage) ListLedgerEntries(ctx context.Context, userUID string,
	filter models.LedgerFilter) ([]*models.LedgerEntry, error) {
	const op = "storage.ListLedgerEntries"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, user_uid, item_uid, account_uid, transaction_date,
			      amount, direction, category_code, note, created_at
			  FROM ledger_entries
			  WHERE user_uid = $1
			    AND ($2 = '' OR account_uid::text = $2)
			    AND ($3::date IS NULL OR transaction_date >= $3)
			    AND ($4::date IS NULL OR transaction_date <= $4)
			  ORDER BY transaction_date DESC, created_at DESC
			  LIMIT $5 OFFSET $6`
	rows, err := s.DB.QueryContext(ctx, query,
		userUID, filter.AccountUID, filter.StartDate, filter.EndDate,
		filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.LedgerEntry
	for rows.Next() {
		var e models.LedgerEntry
		if err = rows.Scan(&e.UID, &e.UserUID, &e.ItemUID, &e.AccountUID,
			&e.TransactionDate, &e.Amount, &e.Direction, &e.CategoryCode,
			&e.Note, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetAccountBalance возвращает дебетовый и кредитовый обороты счёта за период.
func (s *Storage) GetAccountBalance(ctx context.Context, userUID, accountUID string,
	startDate, endDate time.Time) (*models.AccountBalance, error) {
	const op = "storage.GetAccountBalance"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT direction, SUM(amount)
			  FROM ledger_entries
			  WHERE user_uid = $1 AND account_uid = $2
			    AND transaction_date BETWEEN $3 AND $4
			  GROUP BY direction`
	rows, err := s.DB.QueryContext(ctx, query, userUID, accountUID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	balance := &models.AccountBalance{}
	for rows.Next() {
		var direction string
		var amount float64
		if err = rows.Scan(&direction, &amount); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		switch direction {
		case models.DirectionDebit:
			balance.DebitTotal = amount
		case models.DirectionCredit:
			balance.CreditTotal = amount
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	balance.Balance = balance.DebitTotal - balance.CreditTotal
	return balance, nil
}
