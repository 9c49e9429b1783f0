package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/magabrotheeeer/inventory-keeper/internal/models"
)

// CreateItem сохраняет новый предмет и возвращает его UID.
func (s *Storage) CreateItem(ctx context.Context, item models.Item) (string, error) {
	const op = "storage.CreateItem"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	images, err := json.Marshal(item.Images)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	var newUID string
	query := `INSERT INTO items (user_uid, name, brand, size, color, purchase_price,
			      purchase_date, location, images, status)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING uid;`
	if err := s.DB.QueryRowContext(ctx, query,
		item.UserUID, item.Name, item.Brand, item.Size, item.Color, item.PurchasePrice,
		item.PurchaseDate, item.Location, images, item.Status).Scan(&newUID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// ReadItem возвращает предмет по UID в пределах одного пользователя.
// Мягко удалённые записи не возвращаются.
func (s *Storage) ReadItem(ctx context.Context, userUID, itemUID string) (*models.Item, error) {
	const op = "storage.ReadItem"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, user_uid, name, brand, size, color, purchase_price,
			      purchase_date, location, images, status, created_at, updated_at
			  FROM items
			  WHERE uid = $1 AND user_uid = $2 AND deleted_at IS NULL`
	row := s.DB.QueryRowContext(ctx, query, itemUID, userUID)

	item, err := scanItem(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return item, nil
}

// ListItems возвращает предметы пользователя с фильтрами и пагинацией,
// новые записи первыми.
func (s *Storage) ListItems(ctx context.Context, userUID string, filter models.ItemFilter) ([]*models.Item, error) {
	const op = "storage.ListItems"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, user_uid, name, brand, size, color, purchase_price,
			      purchase_date, location, images, status, created_at, updated_at
			  FROM items
			  WHERE user_uid = $1 AND deleted_at IS NULL
			    AND ($2 = '' OR name ILIKE '%' || $2 || '%' OR brand ILIKE '%' || $2 || '%')
			    AND ($3 = '' OR status = $3)
			  ORDER BY created_at DESC
			  LIMIT $4 OFFSET $5`
	rows, err := s.DB.QueryContext(ctx, query,
		userUID, filter.Search, filter.Status, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateItem обновляет атрибуты предмета и возвращает количество изменённых строк.
func (s *Storage) UpdateItem(ctx context.Context, userUID string, item models.Item) (int, error) {
	const op = "storage.UpdateItem"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	images, err := json.Marshal(item.Images)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	query := `UPDATE items
			  SET name = $1, brand = $2, size = $3, color = $4, purchase_price = $5,
			      purchase_date = $6, location = $7, images = $8, updated_at = NOW()
			  WHERE uid = $9 AND user_uid = $10 AND deleted_at IS NULL`
	res, err := s.DB.ExecContext(ctx, query,
		item.Name, item.Brand, item.Size, item.Color, item.PurchasePrice,
		item.PurchaseDate, item.Location, images, item.UID, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(count), nil
}

// RemoveItem выполняет мягкое удаление предмета и возвращает количество
// изменённых строк.
func (s *Storage) RemoveItem(ctx context.Context, userUID, itemUID string) (int, error) {
	const op = "storage.RemoveItem"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE items
			  SET deleted_at = NOW()
			  WHERE uid = $1 AND user_uid = $2 AND deleted_at IS NULL`
	res, err := s.DB.ExecContext(ctx, query, itemUID, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(count), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*models.Item, error) {
	item := &models.Item{}
	var images []byte
	var purchaseDate time.Time
	if err := row.Scan(&item.UID, &item.UserUID, &item.Name, &item.Brand, &item.Size,
		&item.Color, &item.PurchasePrice, &purchaseDate, &item.Location, &images,
		&item.Status, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, err
	}
	item.PurchaseDate = purchaseDate
	if len(images) > 0 {
		if err := json.Unmarshal(images, &item.Images); err != nil {
			return nil, err
		}
	}
	return item, nil
}
