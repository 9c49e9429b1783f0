// Package services содержит бизнес-логику складских операций:
// запись движения предметов, генерацию проводок двойной записи
// и публикацию событий для сервиса уведомлений.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/inventory-keeper/internal/lib/sl"
	"github.com/magabrotheeeer/inventory-keeper/internal/models"
)

// Ошибки складских операций.
var (
	// ErrItemNotFound предмет не найден или принадлежит другому пользователю.
	ErrItemNotFound = errors.New("item not found")
	// ErrAccountNotFound счёт не найден или принадлежит другому пользователю.
	ErrAccountNotFound = errors.New("account not found")
	// ErrTransactionNotFound операция не найдена или принадлежит другому пользователю.
	ErrTransactionNotFound = errors.New("transaction not found")
)

// TxRepository определяет методы хранилища для складских операций.
type TxRepository interface {
	// CreateTransaction сохраняет операцию с проводками в одной транзакции БД.
	CreateTransaction(ctx context.Context, stockTx models.StockTransaction,
		entries []models.LedgerEntry, markItemRemoved bool) (string, error)
	// ListTransactions возвращает операции пользователя с фильтрами и пагинацией.
	ListTransactions(ctx context.Context, userUID string, filter models.TxFilter) ([]*models.StockTransaction, error)
	// GetTransaction возвращает операцию по UID в пределах пользователя.
	GetTransaction(ctx context.Context, userUID, txUID string) (*models.StockTransaction, error)
	// GetTotalAmountByType возвращает сумму операций заданного типа за период.
	GetTotalAmountByType(ctx context.Context, userUID, txType string, startDate, endDate time.Time) (float64, error)
	// GetOutboundAmountByReason возвращает суммы выбытий по причинам за период.
	GetOutboundAmountByReason(ctx context.Context, userUID string, startDate, endDate time.Time) ([]models.ReasonAmount, error)
	// ReadItem возвращает предмет по UID в пределах пользователя.
	ReadItem(ctx context.Context, userUID, itemUID string) (*models.Item, error)
	// GetAccount возвращает счёт по UID в пределах пользователя.
	GetAccount(ctx context.Context, userUID, accountUID string) (*models.Account, error)
	// GetUser возвращает пользователя по UID.
	GetUser(ctx context.Context, userUID string) (*models.User, error)
}

// EventPublisher публикует событие складской операции в очередь.
type EventPublisher interface {
	PublishStockEvent(event models.StockEvent) error
}

// ReportCacheInvalidator сбрасывает кэш отчётов пользователя после записи.
type ReportCacheInvalidator interface {
	InvalidateReports(ctx context.Context, userUID string) error
}

// TxService реализует бизнес-логику складских операций.
type TxService struct {
	repo      TxRepository
	publisher EventPublisher
	reports   ReportCacheInvalidator
	log       *slog.Logger
}

// NewTxService создает новый экземпляр TxService.
func NewTxService(repo TxRepository, publisher EventPublisher, reports ReportCacheInvalidator, log *slog.Logger) *TxService {
	return &TxService{
		repo:      repo,
		publisher: publisher,
		reports:   reports,
		log:       log,
	}
}

// Create записывает складскую операцию для пользователя и возвращает её UID.
//
// Итоговая сумма всегда вычисляется как quantity * unit_price. Операция OUT
// переводит предмет в статус REMOVED. Каждая операция порождает
// сбалансированную пару строк двойной записи.
func (s *TxService) Create(ctx context.Context, userUID string, req models.DummyStockTransaction) (string, error) {
	txDate, err := time.Parse("2006-01-02", req.TransactionDate)
	if err != nil {
		return "", fmt.Errorf("invalid transaction date: %w", err)
	}

	item, err := s.repo.ReadItem(ctx, userUID, req.ItemUID)
	if err != nil {
		return "", ErrItemNotFound
	}
	if _, err = s.repo.GetAccount(ctx, userUID, req.AccountUID); err != nil {
		return "", ErrAccountNotFound
	}

	totalAmount := float64(req.Quantity) * req.UnitPrice
	stockTx := models.StockTransaction{
		UserUID:         userUID,
		ItemUID:         req.ItemUID,
		Type:            req.Type,
		Quantity:        req.Quantity,
		UnitPrice:       req.UnitPrice,
		TotalAmount:     totalAmount,
		TransactionDate: txDate,
		Reason:          req.Reason,
		Notes:           req.Notes,
		AccountUID:      req.AccountUID,
	}

	entries := buildLedgerEntries(stockTx)
	markRemoved := req.Type == models.TxTypeOut

	uid, err := s.repo.CreateTransaction(ctx, stockTx, entries, markRemoved)
	if err != nil {
		return "", err
	}
	s.log.Info("created stock transaction",
		slog.String("uid", uid), slog.String("type", req.Type), slog.String("reason", req.Reason))

	if err := s.reports.InvalidateReports(ctx, userUID); err != nil {
		s.log.Warn("failed to invalidate report cache", sl.Err(err))
	}

	s.publishEvent(ctx, userUID, item, stockTx)

	return uid, nil
}

// Read возвращает складскую операцию по UID.
func (s *TxService) Read(ctx context.Context, userUID, txUID string) (*models.StockTransaction, error) {
	stockTx, err := s.repo.GetTransaction(ctx, userUID, txUID)
	if err != nil {
		return nil, ErrTransactionNotFound
	}
	return stockTx, nil
}

// Stats возвращает сводку по операциям пользователя за период:
// суммы поступлений, выбытий и разбивку выбытий по причинам.
func (s *TxService) Stats(ctx context.Context, userUID string, startDate, endDate time.Time) (*models.TxStats, error) {
	inbound, err := s.repo.GetTotalAmountByType(ctx, userUID, models.TxTypeIn, startDate, endDate)
	if err != nil {
		return nil, err
	}
	outbound, err := s.repo.GetTotalAmountByType(ctx, userUID, models.TxTypeOut, startDate, endDate)
	if err != nil {
		return nil, err
	}
	disposals, err := s.repo.GetOutboundAmountByReason(ctx, userUID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return &models.TxStats{
		InboundAmount:   inbound,
		OutboundAmount:  outbound,
		DisposalAmounts: disposals,
	}, nil
}

// List возвращает складские операции пользователя.
func (s *TxService) List(ctx context.Context, userUID string, filter models.TxFilter) ([]*models.StockTransaction, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.repo.ListTransactions(ctx, userUID, filter)
}

// buildLedgerEntries генерирует сбалансированную пару проводок для операции.
//
// IN: дебет INVENTORY, кредит CASH.
// OUT по причине SELL: дебет CASH, кредит INVENTORY.
// Прочие OUT (DISPOSE, GIFT, LOST): дебет LOSS, кредит INVENTORY.
// ADJUST: дебет и кредит INVENTORY, запись корректировочная.
func buildLedgerEntries(stockTx models.StockTransaction) []models.LedgerEntry {
	entry := func(direction, category, note string) models.LedgerEntry {
		return models.LedgerEntry{
			UserUID:         stockTx.UserUID,
			ItemUID:         stockTx.ItemUID,
			AccountUID:      stockTx.AccountUID,
			TransactionDate: stockTx.TransactionDate,
			Amount:          stockTx.TotalAmount,
			Direction:       direction,
			CategoryCode:    category,
			Note:            note,
		}
	}

	switch stockTx.Type {
	case models.TxTypeIn:
		return []models.LedgerEntry{
			entry(models.DirectionDebit, models.LedgerCategoryInventory, "stock in"),
			entry(models.DirectionCredit, models.LedgerCategoryCash, "stock in"),
		}
	case models.TxTypeOut:
		if stockTx.Reason == models.TxReasonSell {
			return []models.LedgerEntry{
				entry(models.DirectionDebit, models.LedgerCategoryCash, "item sold"),
				entry(models.DirectionCredit, models.LedgerCategoryInventory, "item sold"),
			}
		}
		return []models.LedgerEntry{
			entry(models.DirectionDebit, models.LedgerCategoryLoss, "item disposed"),
			entry(models.DirectionCredit, models.LedgerCategoryInventory, "item disposed"),
		}
	default:
		return []models.LedgerEntry{
			entry(models.DirectionDebit, models.LedgerCategoryInventory, "adjustment"),
			entry(models.DirectionCredit, models.LedgerCategoryInventory, "adjustment"),
		}
	}
}

// publishEvent отправляет событие операции в очередь уведомлений.
// Ошибка публикации не откатывает уже записанную операцию.
func (s *TxService) publishEvent(ctx context.Context, userUID string, item *models.Item, stockTx models.StockTransaction) {
	user, err := s.repo.GetUser(ctx, userUID)
	if err != nil {
		s.log.Warn("failed to load user for stock event", sl.Err(err))
		return
	}
	event := models.StockEvent{
		EventUID:    uuid.NewString(),
		UserUID:     userUID,
		Email:       user.Email,
		ItemUID:     item.UID,
		ItemName:    item.Name,
		Type:        stockTx.Type,
		Reason:      stockTx.Reason,
		TotalAmount: stockTx.TotalAmount,
		OccurredAt:  time.Now().UTC(),
	}
	if err := s.publisher.PublishStockEvent(event); err != nil {
		s.log.Warn("failed to publish stock event", sl.Err(err))
	}
}
