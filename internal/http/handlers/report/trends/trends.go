// Package trends реализует HTTP-обработчик отчёта о движении средств за период.
package trends

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/report/daterange"
	"github.com/magabrotheeeer/inventory-keeper/internal/http/middlewarectx"
	"github.com/magabrotheeeer/inventory-keeper/internal/http/response"
	"github.com/magabrotheeeer/inventory-keeper/internal/lib/sl"
	"github.com/magabrotheeeer/inventory-keeper/internal/models"
)

// Handler обрабатывает запросы отчёта о движении средств.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики отчёта.
type Service interface {
	Trends(ctx context.Context, userUID string, startDate, endDate time.Time) (*models.TrendsReport, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Движение средств
// @Description Возвращает суммы поступлений, выбытий и сальдо за период. По умолчанию берутся последние 30 дней.
// @Tags Reports
// @Produce  json
// @Security BearerAuth
// @Param start_date query string false "Начало периода в формате 2006-01-02"
// @Param end_date query string false "Конец периода в формате 2006-01-02"
// @Success 200 {object} map[string]any "Отчёт о движении средств"
// @Failure 400 {object} response.ErrorResponse "Некорректный период"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /reports/trends [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.report.trends"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	startDate, endDate, err := daterange.Parse(r)
	if err != nil {
		log.Error("failed to parse report period", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user identification missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error(http.StatusUnauthorized, "unauthorized"))
		return
	}

	res, err := h.service.Trends(r.Context(), userUID, startDate, endDate)
	if err != nil {
		log.Error("failed to build trends report", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(http.StatusInternalServerError, "could not build report"))
		return
	}

	log.Info("trends report built")
	render.JSON(w, r, response.OKWithData(map[string]any{
		"report": res,
	}))
}
