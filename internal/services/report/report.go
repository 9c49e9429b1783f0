// Package services содержит бизнес-логику агрегированных отчётов
// с кэшированием результатов в Redis.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/inventory-keeper/internal/lib/sl"
	"github.com/magabrotheeeer/inventory-keeper/internal/models"
)

// reportCacheTTL время жизни кэшированного отчёта.
const reportCacheTTL = 10 * time.Minute

// ReportRepository определяет агрегирующие запросы хранилища.
type ReportRepository interface {
	GetTotalInventoryValue(ctx context.Context, userUID string) (float64, error)
	GetValueByBrand(ctx context.Context, userUID string) ([]models.BrandValue, error)
	GetOutboundAmountByReason(ctx context.Context, userUID string, startDate, endDate time.Time) ([]models.ReasonAmount, error)
	GetTotalAmountByType(ctx context.Context, userUID, txType string, startDate, endDate time.Time) (float64, error)
	GetAccountBalance(ctx context.Context, userUID, accountUID string, startDate, endDate time.Time) (*models.AccountBalance, error)
	ListLedgerEntries(ctx context.Context, userUID string, filter models.LedgerFilter) ([]*models.LedgerEntry, error)
}

// Cache описывает методы для кэширования отчётов.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(ctx context.Context, key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	// InvalidateByPrefix удаляет все ключи с заданным префиксом.
	InvalidateByPrefix(ctx context.Context, prefix string) error
}

// ReportService реализует бизнес-логику отчётов, включая кеширование.
type ReportService struct {
	repo  ReportRepository
	cache Cache
	log   *slog.Logger
}

// NewReportService создает новый экземпляр ReportService.
func NewReportService(repo ReportRepository, cache Cache, log *slog.Logger) *ReportService {
	return &ReportService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

func reportPrefix(userUID string) string {
	return fmt.Sprintf("reports:%s:", userUID)
}

// InventoryValue возвращает стоимость текущего инвентаря с разбивкой по брендам.
func (s *ReportService) InventoryValue(ctx context.Context, userUID string) (*models.InventoryValueReport, error) {
	cacheKey := reportPrefix(userUID) + "inventory-value"
	var cached models.InventoryValueReport
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		s.log.Warn("report cache lookup failed", sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	total, err := s.repo.GetTotalInventoryValue(ctx, userUID)
	if err != nil {
		return nil, err
	}
	brands, err := s.repo.GetValueByBrand(ctx, userUID)
	if err != nil {
		return nil, err
	}

	report := &models.InventoryValueReport{
		TotalValue:  total,
		BrandValues: brands,
	}
	if err := s.cache.Set(ctx, cacheKey, report, reportCacheTTL); err != nil {
		s.log.Warn("failed to cache report", slog.String("key", cacheKey), sl.Err(err))
	}
	return report, nil
}

// DisposalProfit возвращает суммы выбытий по причинам за период.
func (s *ReportService) DisposalProfit(ctx context.Context, userUID string, startDate, endDate time.Time) (*models.DisposalProfitReport, error) {
	cacheKey := fmt.Sprintf("%sdisposal-profit:%s:%s",
		reportPrefix(userUID), startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))
	var cached models.DisposalProfitReport
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		s.log.Warn("report cache lookup failed", sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	amounts, err := s.repo.GetOutboundAmountByReason(ctx, userUID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	report := &models.DisposalProfitReport{DisposalAmounts: amounts}
	if err := s.cache.Set(ctx, cacheKey, report, reportCacheTTL); err != nil {
		s.log.Warn("failed to cache report", slog.String("key", cacheKey), sl.Err(err))
	}
	return report, nil
}

// Trends возвращает движение средств за период.
func (s *ReportService) Trends(ctx context.Context, userUID string, startDate, endDate time.Time) (*models.TrendsReport, error) {
	cacheKey := fmt.Sprintf("%strends:%s:%s",
		reportPrefix(userUID), startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))
	var cached models.TrendsReport
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		s.log.Warn("report cache lookup failed", sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	inbound, err := s.repo.GetTotalAmountByType(ctx, userUID, models.TxTypeIn, startDate, endDate)
	if err != nil {
		return nil, err
	}
	outbound, err := s.repo.GetTotalAmountByType(ctx, userUID, models.TxTypeOut, startDate, endDate)
	if err != nil {
		return nil, err
	}

	report := &models.TrendsReport{
		InboundAmount:  inbound,
		OutboundAmount: outbound,
		NetAmount:      inbound - outbound,
	}
	if err := s.cache.Set(ctx, cacheKey, report, reportCacheTTL); err != nil {
		s.log.Warn("failed to cache report", slog.String("key", cacheKey), sl.Err(err))
	}
	return report, nil
}

// AccountBalance возвращает сальдо счёта за период. Не кэшируется:
// запрос точечный и дешевый.
func (s *ReportService) AccountBalance(ctx context.Context, userUID, accountUID string, startDate, endDate time.Time) (*models.AccountBalance, error) {
	return s.repo.GetAccountBalance(ctx, userUID, accountUID, startDate, endDate)
}

// Ledger возвращает строки книги учёта пользователя с фильтрами по счёту
// и периоду. Не кэшируется: параметры пагинации размножили бы ключи.
func (s *ReportService) Ledger(ctx context.Context, userUID string, filter models.LedgerFilter) ([]*models.LedgerEntry, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.repo.ListLedgerEntries(ctx, userUID, filter)
}

// InvalidateReports сбрасывает кэш отчётов пользователя.
// Вызывается сервисом складских операций после каждой записи.
func (s *ReportService) InvalidateReports(ctx context.Context, userUID string) error {
	return s.cache.InvalidateByPrefix(ctx, reportPrefix(userUID))
}
