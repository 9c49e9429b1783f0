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

func (m *RepoMock) CreateTransaction(ctx context.Context, stockTx models.StockTransaction,
	entries []models.LedgerEntry, markItemRemoved bool) (string, error) {
	args := m.Called(ctx, stockTx, entries, markItemRemoved)
	return args.String(0), args.Error(1)
}
func (m *RepoMock) ListTransactions(ctx context.Context, userUID string, filter models.TxFilter) ([]*models.StockTransaction, error) {
	args := m.Called(ctx, userUID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.StockTransaction), args.Error(1)
}
func (m *RepoMock) ReadItem(ctx context.Context, userUID, itemUID string) (*models.Item, error) {
	args := m.Called(ctx, userUID, itemUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}
func (m *RepoMock) GetAccount(ctx context.Context, userUID, accountUID string) (*models.Account, error) {
	args := m.Called(ctx, userUID, accountUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}
func (m *RepoMock) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *RepoMock) GetTransaction(ctx context.Context, userUID, txUID string) (*models.StockTransaction, error) {
	args := m.Called(ctx, userUID, txUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StockTransaction), args.Error(1)
}
func (m *RepoMock) GetTotalAmountByType(ctx context.Context, userUID, txType string, startDate, endDate time.Time) (float64, error) {
	args := m.Called(ctx, userUID, txType, startDate, endDate)
	return args.Get(0).(float64), args.Error(1)
}
func (m *RepoMock) GetOutboundAmountByReason(ctx context.Context, userUID string, startDate, endDate time.Time) ([]models.ReasonAmount, error) {
	args := m.Called(ctx, userUID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReasonAmount), args.Error(1)
}

type PublisherMock struct{ mock.Mock }

func (m *PublisherMock) PublishStockEvent(event models.StockEvent) error {
	return m.Called(event).Error(0)
}

type ReportsMock struct{ mock.Mock }

func (m *ReportsMock) InvalidateReports(ctx context.Context, userUID string) error {
	return m.Called(ctx, userUID).Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func validRequest(txType, reason string) models.DummyStockTransaction {
	return models.DummyStockTransaction{
		ItemUID:         "9c8e7d6f-0000-1111-2222-333344445555",
		Type:            txType,
		Quantity:        2,
		UnitPrice:       50,
		TransactionDate: "2026-06-15",
		Reason:          reason,
		AccountUID:      "1a2b3c4d-0000-1111-2222-333344445555",
	}
}

func setupMocks(repo *RepoMock) {
	repo.On("ReadItem", mock.Anything, "u1", mock.Anything).
		Return(&models.Item{UID: "9c8e7d6f-0000-1111-2222-333344445555", Name: "Air Jordan 1"}, nil)
	repo.On("GetAccount", mock.Anything, "u1", mock.Anything).
		Return(&models.Account{UID: "1a2b3c4d-0000-1111-2222-333344445555"}, nil)
	repo.On("GetUser", mock.Anything, "u1").
		Return(&models.User{UID: "u1", Email: "t@example.com"}, nil)
}

func TestTxService_Create_LedgerGeneration(t *testing.T) {
	tests := []struct {
		name           string
		txType         string
		reason         string
		wantDebit      string
		wantCredit     string
		wantMarkRemove bool
	}{
		{
			name:       "stock in",
			txType:     models.TxTypeIn,
			reason:     models.TxReasonPurchase,
			wantDebit:  models.LedgerCategoryInventory,
			wantCredit: models.LedgerCategoryCash,
		},
		{
			name:           "sell out",
			txType:         models.TxTypeOut,
			reason:         models.TxReasonSell,
			wantDebit:      models.LedgerCategoryCash,
			wantCredit:     models.LedgerCategoryInventory,
			wantMarkRemove: true,
		},
		{
			name:           "dispose out",
			txType:         models.TxTypeOut,
			reason:         models.TxReasonDispose,
			wantDebit:      models.LedgerCategoryLoss,
			wantCredit:     models.LedgerCategoryInventory,
			wantMarkRemove: true,
		},
		{
			name:       "adjust",
			txType:     models.TxTypeAdjust,
			reason:     models.TxReasonAdjust,
			wantDebit:  models.LedgerCategoryInventory,
			wantCredit: models.LedgerCategoryInventory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			publisher := new(PublisherMock)
			reports := new(ReportsMock)
			setupMocks(repo)
			publisher.On("PublishStockEvent", mock.Anything).Return(nil).Once()
			reports.On("InvalidateReports", mock.Anything, "u1").Return(nil).Once()

			repo.On("CreateTransaction", mock.Anything,
				mock.MatchedBy(func(stockTx models.StockTransaction) bool {
					return stockTx.TotalAmount == 100 &&
						stockTx.TransactionDate.Equal(time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC))
				}),
				mock.MatchedBy(func(entries []models.LedgerEntry) bool {
					return len(entries) == 2 &&
						entries[0].Direction == models.DirectionDebit &&
						entries[0].CategoryCode == tt.wantDebit &&
						entries[1].Direction == models.DirectionCredit &&
						entries[1].CategoryCode == tt.wantCredit &&
						entries[0].Amount == 100 && entries[1].Amount == 100
				}),
				tt.wantMarkRemove).Return("tx-1", nil).Once()

			service := NewTxService(repo, publisher, reports, newNoopLogger())
			uid, err := service.Create(context.Background(), "u1", validRequest(tt.txType, tt.reason))

			require.NoError(t, err)
			assert.Equal(t, "tx-1", uid)
			repo.AssertExpectations(t)
			publisher.AssertExpectations(t)
			reports.AssertExpectations(t)
		})
	}
}

func TestTxService_Create_UnknownItem(t *testing.T) {
	repo := new(RepoMock)
	repo.On("ReadItem", mock.Anything, "u1", mock.Anything).
		Return(nil, errors.New("sql: no rows in result set")).Once()

	service := NewTxService(repo, new(PublisherMock), new(ReportsMock), newNoopLogger())
	_, err := service.Create(context.Background(), "u1", validRequest(models.TxTypeIn, models.TxReasonPurchase))

	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestTxService_Create_PublishFailureDoesNotFailOperation(t *testing.T) {
	repo := new(RepoMock)
	publisher := new(PublisherMock)
	reports := new(ReportsMock)
	setupMocks(repo)
	repo.On("CreateTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("tx-1", nil).Once()
	reports.On("InvalidateReports", mock.Anything, "u1").Return(nil).Once()
	publisher.On("PublishStockEvent", mock.Anything).Return(errors.New("broker down")).Once()

	service := NewTxService(repo, publisher, reports, newNoopLogger())
	uid, err := service.Create(context.Background(), "u1", validRequest(models.TxTypeIn, models.TxReasonPurchase))

	require.NoError(t, err)
	assert.Equal(t, "tx-1", uid)
}

func TestTxService_List_DefaultsPagination(t *testing.T) {
	repo := new(RepoMock)
	repo.On("ListTransactions", mock.Anything, "u1",
		models.TxFilter{Type: models.TxTypeOut, Limit: 20, Offset: 0}).
		Return([]*models.StockTransaction{{UID: "tx-1"}}, nil).Once()

	service := NewTxService(repo, new(PublisherMock), new(ReportsMock), newNoopLogger())
	list, err := service.List(context.Background(), "u1", models.TxFilter{Type: models.TxTypeOut, Limit: 1000})

	require.NoError(t, err)
	assert.Len(t, list, 1)
	repo.AssertExpectations(t)
}

func TestTxService_Read(t *testing.T) {
	repo := new(RepoMock)
	svc := NewTxService(repo, new(PublisherMock), new(ReportsMock), newNoopLogger())

	repo.On("GetTransaction", mock.Anything, "user-1", "tx-1").
		Return(&models.StockTransaction{UID: "tx-1", Type: models.TxTypeIn}, nil)

	stockTx, err := svc.Read(context.Background(), "user-1", "tx-1")
	require.NoError(t, err)
	assert.Equal(t, "tx-1", stockTx.UID)
}

func TestTxService_Read_NotFound(t *testing.T) {
	repo := new(RepoMock)
	svc := NewTxService(repo, new(PublisherMock), new(ReportsMock), newNoopLogger())

	repo.On("GetTransaction", mock.Anything, "user-1", "missing").
		Return(nil, errors.New("sql: no rows in result set"))

	_, err := svc.Read(context.Background(), "user-1", "missing")
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestTxService_Stats(t *testing.T) {
	repo := new(RepoMock)
	svc := NewTxService(repo, new(PublisherMock), new(ReportsMock), newNoopLogger())

	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC)

	repo.On("GetTotalAmountByType", mock.Anything, "user-1", models.TxTypeIn, start, end).
		Return(1920.0, nil)
	repo.On("GetTotalAmountByType", mock.Anything, "user-1", models.TxTypeOut, start, end).
		Return(300.0, nil)
	repo.On("GetOutboundAmountByReason", mock.Anything, "user-1", start, end).
		Return([]models.ReasonAmount{{Reason: models.TxReasonSell, Amount: 300.0}}, nil)

	stats, err := svc.Stats(context.Background(), "user-1", start, end)
	require.NoError(t, err)
	assert.Equal(t, 1920.0, stats.InboundAmount)
	assert.Equal(t, 300.0, stats.OutboundAmount)
	assert.Len(t, stats.DisposalAmounts, 1)
	repo.AssertExpectations(t)
}
