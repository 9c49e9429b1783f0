// Package ledger реализует HTTP-обработчик выписки из книги учёта.
package ledger

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/inventory-keeper/internal/http/middlewarectx"
	"github.com/magabrotheeeer/inventory-keeper/internal/http/response"
	"github.com/magabrotheeeer/inventory-keeper/internal/lib/sl"
	"github.com/magabrotheeeer/inventory-keeper/internal/models"
)

// Handler обрабатывает запросы выписки из книги учёта.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики выписки.
type Service interface {
	Ledger(ctx context.Context, userUID string, filter models.LedgerFilter) ([]*models.LedgerEntry, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Выписка из книги учёта
// @Description Возвращает строки двойной записи текущего пользователя с фильтрами по счёту и периоду.
// @Tags Reports
// @Produce  json
// @Security BearerAuth
// @Param account_id query string false "UID счёта"
// @Param start_date query string false "Начало периода в формате 2006-01-02"
// @Param end_date query string false "Конец периода в формате 2006-01-02"
// @Param limit query int false "Размер страницы"
// @Param offset query int false "Смещение"
// @Success 200 {object} map[string]any "Строки книги учёта"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /reports/ledger [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.report.ledger"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	filter := models.LedgerFilter{
		AccountUID: r.URL.Query().Get("account_id"),
		Limit:      limit,
		Offset:     offset,
	}
	if raw := r.URL.Query().Get("start_date"); raw != "" {
		if startDate, err := time.Parse("2006-01-02", raw); err == nil {
			filter.StartDate = &startDate
		}
	}
	if raw := r.URL.Query().Get("end_date"); raw != "" {
		if endDate, err := time.Parse("2006-01-02", raw); err == nil {
			filter.EndDate = &endDate
		}
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user identification missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error(http.StatusUnauthorized, "unauthorized"))
		return
	}

	res, err := h.service.Ledger(r.Context(), userUID, filter)
	if err != nil {
		log.Error("failed to list ledger entries", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(http.StatusInternalServerError, "could not list ledger entries"))
		return
	}

	log.Info("list ledger entries", "count", len(res))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"list_count": len(res),
		"entries":    res,
	}))
}
