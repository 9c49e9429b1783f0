package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/inventory-keeper/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateItem(ctx context.Context, item models.Item) (string, error) {
	args := m.Called(ctx, item)
	return args.String(0), args.Error(1)
}
func (m *RepoMock) ReadItem(ctx context.Context, userUID, itemUID string) (*models.Item, error) {
	args := m.Called(ctx, userUID, itemUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}
func (m *RepoMock) ListItems(ctx context.Context, userUID string, filter models.ItemFilter) ([]*models.Item, error) {
	args := m.Called(ctx, userUID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Item), args.Error(1)
}
func (m *RepoMock) UpdateItem(ctx context.Context, userUID string, item models.Item) (int, error) {
	args := m.Called(ctx, userUID, item)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) RemoveItem(ctx context.Context, userUID, itemUID string) (int, error) {
	args := m.Called(ctx, userUID, itemUID)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) GetTotalInventoryValue(ctx context.Context, userUID string) (float64, error) {
	args := m.Called(ctx, userUID)
	return args.Get(0).(float64), args.Error(1)
}
func (m *RepoMock) GetValueByBrand(ctx context.Context, userUID string) ([]models.BrandValue, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BrandValue), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestItemService_Create(t *testing.T) {
	repo := new(RepoMock)
	service := NewItemService(repo, newNoopLogger())

	req := models.DummyItem{
		Name:          "Air Jordan 1",
		Brand:         "Nike",
		Size:          "42",
		PurchasePrice: 180.50,
		PurchaseDate:  "2026-05-10",
		Location:      "closet A",
	}
	repo.On("CreateItem", mock.Anything, mock.MatchedBy(func(item models.Item) bool {
		return item.UserUID == "u1" &&
			item.Name == "Air Jordan 1" &&
			item.Status == models.ItemStatusActive &&
			item.PurchaseDate.Equal(time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC))
	})).Return("item-1", nil).Once()

	uid, err := service.Create(context.Background(), "u1", req)
	require.NoError(t, err)
	assert.Equal(t, "item-1", uid)
	repo.AssertExpectations(t)
}

func TestItemService_Create_InvalidDate(t *testing.T) {
	service := NewItemService(new(RepoMock), newNoopLogger())

	_, err := service.Create(context.Background(), "u1", models.DummyItem{
		Name:          "item",
		PurchasePrice: 10,
		PurchaseDate:  "10-05-2026",
	})
	assert.Error(t, err)
}

func TestItemService_List_DefaultsPagination(t *testing.T) {
	repo := new(RepoMock)
	service := NewItemService(repo, newNoopLogger())

	repo.On("ListItems", mock.Anything, "u1",
		models.ItemFilter{Search: "nike", Limit: 20, Offset: 0}).
		Return([]*models.Item{{UID: "item-1"}}, nil).Once()

	items, err := service.List(context.Background(), "u1", models.ItemFilter{Search: "nike", Limit: 0, Offset: -5})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	repo.AssertExpectations(t)
}

func TestItemService_Read_NotFound(t *testing.T) {
	repo := new(RepoMock)
	service := NewItemService(repo, newNoopLogger())

	repo.On("ReadItem", mock.Anything, "u1", "missing").
		Return(nil, errors.New("sql: no rows in result set")).Once()

	item, err := service.Read(context.Background(), "u1", "missing")
	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.Nil(t, item)
}

func TestItemService_UpdateAndRemove_NotFound(t *testing.T) {
	repo := new(RepoMock)
	service := NewItemService(repo, newNoopLogger())

	repo.On("UpdateItem", mock.Anything, "u1", mock.Anything).Return(0, nil).Once()
	repo.On("RemoveItem", mock.Anything, "u1", "missing").Return(0, nil).Once()

	err := service.Update(context.Background(), "u1", "missing", models.DummyItem{
		Name:          "item",
		PurchasePrice: 10,
		PurchaseDate:  "2026-05-10",
	})
	assert.ErrorIs(t, err, ErrItemNotFound)

	err = service.Remove(context.Background(), "u1", "missing")
	assert.ErrorIs(t, err, ErrItemNotFound)
	repo.AssertExpectations(t)
}

func TestItemService_Stats(t *testing.T) {
	repo := new(RepoMock)
	service := NewItemService(repo, newNoopLogger())

	repo.On("GetTotalInventoryValue", mock.Anything, "user-1").Return(1920.0, nil)
	repo.On("GetValueByBrand", mock.Anything, "user-1").Return([]models.BrandValue{
		{Brand: "Nike", Value: 1200.0},
		{Brand: "Chanel", Value: 720.0},
	}, nil)

	stats, err := service.Stats(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1920.0, stats.TotalValue)
	assert.Len(t, stats.BrandValues, 2)
	repo.AssertExpectations(t)
}

func TestItemService_Stats_RepoError(t *testing.T) {
	repo := new(RepoMock)
	service := NewItemService(repo, newNoopLogger())

	repo.On("GetTotalInventoryValue", mock.Anything, "user-1").
		Return(0.0, errors.New("connection refused"))

	_, err := service.Stats(context.Background(), "user-1")
	assert.Error(t, err)
}
