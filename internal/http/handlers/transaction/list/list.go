// Package list реализует HTTP-обработчик для получения истории складских операций.
package list

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

// Handler обрабатывает запросы на получение истории операций.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка операций.
type Service interface {
	List(ctx context.Context, userUID string, filter models.TxFilter) ([]*models.StockTransaction, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary История складских операций
// @Description Возвращает операции текущего пользователя с фильтрами по типу, предмету и периоду.
// @Tags Transactions
// @Produce  json
// @Security BearerAuth
// @Param type query string false "Тип операции: IN, OUT или ADJUST"
// @Param item_id query string false "UID предмета"
// @Param start_date query string false "Начало периода в формате 2006-01-02"
// @Param end_date query string false "Конец периода в формате 2006-01-02"
// @Param limit query int false "Размер страницы"
// @Param offset query int false "Смещение"
// @Success 200 {object} map[string]any "Список операций"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /transactions [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.transaction.list"

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

	filter := models.TxFilter{
		Type:    r.URL.Query().Get("type"),
		ItemUID: r.URL.Query().Get("item_id"),
		Limit:   limit,
		Offset:  offset,
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

	res, err := h.service.List(r.Context(), userUID, filter)
	if err != nil {
		log.Error("failed to list transactions", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(http.StatusInternalServerError, "could not list transactions"))
		return
	}

	log.Info("list transactions", "count", len(res))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"list_count":   len(res),
		"transactions": res,
	}))
}
