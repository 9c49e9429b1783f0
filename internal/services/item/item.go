// Package services содержит бизнес-логику для управления предметами инвентаря.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/inventory-keeper/internal/models"
)

// ErrItemNotFound предмет не найден или принадлежит другому пользователю.
var ErrItemNotFound = errors.New("item not found")

// ItemRepository определяет методы для работы с предметами в хранилище.
type ItemRepository interface {
	// CreateItem добавляет новый предмет и возвращает его UID.
	CreateItem(ctx context.Context, item models.Item) (string, error)
	// ReadItem возвращает предмет по UID в пределах пользователя.
	ReadItem(ctx context.Context, userUID, itemUID string) (*models.Item, error)
	// ListItems возвращает предметы пользователя с фильтрами и пагинацией.
	ListItems(ctx context.Context, userUID string, filter models.ItemFilter) ([]*models.Item, error)
	// UpdateItem обновляет предмет и возвращает количество изменённых строк.
	UpdateItem(ctx context.Context, userUID string, item models.Item) (int, error)
	// RemoveItem выполняет мягкое удаление и возвращает количество изменённых строк.
	RemoveItem(ctx context.Context, userUID, itemUID string) (int, error)
	// GetTotalInventoryValue возвращает суммарную стоимость активного инвентаря.
	GetTotalInventoryValue(ctx context.Context, userUID string) (float64, error)
	// GetValueByBrand возвращает стоимость активного инвентаря по брендам.
	GetValueByBrand(ctx context.Context, userUID string) ([]models.BrandValue, error)
}

// ItemService реализует бизнес-логику работы с предметами инвентаря.
type ItemService struct {
	repo ItemRepository
	log  *slog.Logger
}

// NewItemService создает новый экземпляр ItemService.
func NewItemService(repo ItemRepository, log *slog.Logger) *ItemService {
	return &ItemService{
		repo: repo,
		log:  log,
	}
}

// Create создает новый предмет для пользователя и возвращает его UID.
func (s *ItemService) Create(ctx context.Context, userUID string, req models.DummyItem) (string, error) {
	purchaseDate, err := time.Parse("2006-01-02", req.PurchaseDate)
	if err != nil {
		return "", fmt.Errorf("invalid purchase date: %w", err)
	}

	item := models.Item{
		UserUID:       userUID,
		Name:          req.Name,
		Brand:         req.Brand,
		Size:          req.Size,
		Color:         req.Color,
		PurchasePrice: req.PurchasePrice,
		PurchaseDate:  purchaseDate,
		Location:      req.Location,
		Images:        req.Images,
		Status:        models.ItemStatusActive,
	}

	uid, err := s.repo.CreateItem(ctx, item)
	if err != nil {
		return "", err
	}

	s.log.Info("created new item", slog.String("uid", uid))
	return uid, nil
}

// Read возвращает предмет по UID.
func (s *ItemService) Read(ctx context.Context, userUID, itemUID string) (*models.Item, error) {
	item, err := s.repo.ReadItem(ctx, userUID, itemUID)
	if err != nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// List возвращает предметы пользователя с фильтрами и пагинацией.
func (s *ItemService) List(ctx context.Context, userUID string, filter models.ItemFilter) ([]*models.Item, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.repo.ListItems(ctx, userUID, filter)
}

// Update обновляет атрибуты предмета.
func (s *ItemService) Update(ctx context.Context, userUID, itemUID string, req models.DummyItem) error {
	purchaseDate, err := time.Parse("2006-01-02", req.PurchaseDate)
	if err != nil {
		return fmt.Errorf("invalid purchase date: %w", err)
	}

	item := models.Item{
		UID:           itemUID,
		Name:          req.Name,
		Brand:         req.Brand,
		Size:          req.Size,
		Color:         req.Color,
		PurchasePrice: req.PurchasePrice,
		PurchaseDate:  purchaseDate,
		Location:      req.Location,
		Images:        req.Images,
	}

	count, err := s.repo.UpdateItem(ctx, userUID, item)
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrItemNotFound
	}
	return nil
}

// Remove выполняет мягкое удаление предмета.
func (s *ItemService) Remove(ctx context.Context, userUID, itemUID string) error {
	count, err := s.repo.RemoveItem(ctx, userUID, itemUID)
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrItemNotFound
	}
	s.log.Info("removed item", slog.String("uid", itemUID))
	return nil
}

// Stats возвращает сводку по активному инвентарю пользователя:
// суммарную стоимость и разбивку по брендам.
func (s *ItemService) Stats(ctx context.Context, userUID string) (*models.ItemStats, error) {
	total, err := s.repo.GetTotalInventoryValue(ctx, userUID)
	if err != nil {
		return nil, err
	}
	brands, err := s.repo.GetValueByBrand(ctx, userUID)
	if err != nil {
		return nil, err
	}
	return &models.ItemStats{
		TotalValue:  total,
		BrandValues: brands,
	}, nil
}
