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

type RepoMock struct {
	mock.Mock
}

func (m *RepoMock) GetTotalInventoryValue(ctx context.Context, userUID string) (float64, error) {
	args := m.Called(ctx, userUID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *RepoMock) GetValueByBrand(ctx context.Context, userUID string) ([]models.BrandValue, error) {
	args := m.Called(ctx, userUID)
	return args.Get(0).([]models.BrandValue), args.Error(1)
}

func (m *RepoMock) GetOutboundAmountByReason(ctx context.Context, userUID string, startDate, endDate time.Time) ([]models.ReasonAmount, error) {
	args := m.Called(ctx, userUID, startDate, endDate)
	return args.Get(0).([]models.ReasonAmount), args.Error(1)
}

func (m *RepoMock) GetTotalAmountByType(ctx context.Context, userUID, txType string, startDate, endDate time.Time) (float64, error) {
	args := m.Called(ctx, userUID, txType, startDate, endDate)
	return args.Get(0).(float64), args.Error(1)
}

func (m *RepoMock) GetAccountBalance(ctx context.Context, userUID, accountUID string, startDate, endDate time.Time) (*models.AccountBalance, error) {
	args := m.Called(ctx, userUID, accountUID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AccountBalance), args.Error(1)
}

func (m *RepoMock) ListLedgerEntries(ctx context.Context, userUID string, filter models.LedgerFilter) ([]*models.LedgerEntry, error) {
	args := m.Called(ctx, userUID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.LedgerEntry), args.Error(1)
}

type CacheMock struct {
	mock.Mock
}

func (m *CacheMock) Get(ctx context.Context, key string, result any) (bool, error) {
	args := m.Called(ctx, key, result)
	return args.Bool(0), args.Error(1)
}

func (m *CacheMock) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *CacheMock) InvalidateByPrefix(ctx context.Context, prefix string) error {
	args := m.Called(ctx, prefix)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestReportService_InventoryValue_CacheMiss(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := NewReportService(repo, cache, newNoopLogger())

	cache.On("Get", mock.Anything, "reports:user-1:inventory-value", mock.Anything).
		Return(false, nil)
	repo.On("GetTotalInventoryValue", mock.Anything, "user-1").Return(350.0, nil)
	repo.On("GetValueByBrand", mock.Anything, "user-1").Return([]models.BrandValue{
		{Brand: "nike", Value: 200.0},
		{Brand: "unknown", Value: 150.0},
	}, nil)
	cache.On("Set", mock.Anything, "reports:user-1:inventory-value", mock.Anything, reportCacheTTL).
		Return(nil)

	report, err := svc.InventoryValue(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 350.0, report.TotalValue)
	assert.Len(t, report.BrandValues, 2)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestReportService_InventoryValue_CacheHit(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := NewReportService(repo, cache, newNoopLogger())

	cache.On("Get", mock.Anything, "reports:user-1:inventory-value", mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(2).(*models.InventoryValueReport)
			out.TotalValue = 99.0
		}).
		Return(true, nil)

	report, err := svc.InventoryValue(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 99.0, report.TotalValue)
	repo.AssertNotCalled(t, "GetTotalInventoryValue", mock.Anything, mock.Anything)
}

func TestReportService_InventoryValue_CacheErrorFallsThrough(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := NewReportService(repo, cache, newNoopLogger())

	cache.On("Get", mock.Anything, mock.Anything, mock.Anything).
		Return(false, errors.New("redis down"))
	repo.On("GetTotalInventoryValue", mock.Anything, "user-1").Return(10.0, nil)
	repo.On("GetValueByBrand", mock.Anything, "user-1").Return([]models.BrandValue{}, nil)
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("redis down"))

	report, err := svc.InventoryValue(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 10.0, report.TotalValue)
}

func TestReportService_Trends_ComputesNet(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := NewReportService(repo, cache, newNoopLogger())

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	cache.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	repo.On("GetTotalAmountByType", mock.Anything, "user-1", models.TxTypeIn, start, end).
		Return(500.0, nil)
	repo.On("GetTotalAmountByType", mock.Anything, "user-1", models.TxTypeOut, start, end).
		Return(320.0, nil)
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	report, err := svc.Trends(context.Background(), "user-1", start, end)
	require.NoError(t, err)
	assert.Equal(t, 500.0, report.InboundAmount)
	assert.Equal(t, 320.0, report.OutboundAmount)
	assert.Equal(t, 180.0, report.NetAmount)
}

func TestReportService_InvalidateReports(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := NewReportService(repo, cache, newNoopLogger())

	cache.On("InvalidateByPrefix", mock.Anything, "reports:user-1:").Return(nil)

	err := svc.InvalidateReports(context.Background(), "user-1")
	require.NoError(t, err)
	cache.AssertExpectations(t)
}

func TestReportService_Ledger_DefaultsPagination(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := NewReportService(repo, cache, newNoopLogger())

	repo.On("ListLedgerEntries", mock.Anything, "user-1",
		mock.MatchedBy(func(f models.LedgerFilter) bool {
			return f.Limit == 20 && f.Offset == 0 && f.AccountUID == "acc-1"
		})).Return([]*models.LedgerEntry{
		{UID: "le-1", Direction: models.DirectionDebit, Amount: 100.0},
		{UID: "le-2", Direction: models.DirectionCredit, Amount: 100.0},
	}, nil)

	entries, err := svc.Ledger(context.Background(), "user-1", models.LedgerFilter{
		AccountUID: "acc-1",
		Limit:      -5,
		Offset:     -1,
	})
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	repo.AssertExpectations(t)
}
