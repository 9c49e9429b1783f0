// Package accountbalance реализует HTTP-обработчик отчёта о сальдо счёта.
package accountbalance

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/report/daterange"
	"github.com/magabrotheeeer/inventory-keeper/internal/http/middlewarectx"
	"github.com/magabrotheeeer/inventory-keeper/internal/http/response"
	"github.com/magabrotheeeer/inventory-keeper/internal/lib/sl"
	"github.com/magabrotheeeer/inventory-keeper/internal/models"
	accountsvc "github.com/magabrotheeeer/inventory-keeper/internal/services/account"
)

// Handler обрабатывает запросы отчёта о сальдо счёта.
type Handler struct {
	log      *slog.Logger
	service  Service
	accounts AccountService
}

// Service описывает интерфейс бизнес-логики отчёта.
type Service interface {
	AccountBalance(ctx context.Context, userUID, accountUID string, startDate, endDate time.Time) (*models.AccountBalance, error)
}

// AccountService проверяет принадлежность счёта пользователю.
type AccountService interface {
	Read(ctx context.Context, userUID, accountUID string) (*models.Account, error)
}

// New создает новый Handler с переданными логгером и сервисами.
func New(log *slog.Logger, service Service, accounts AccountService) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		accounts: accounts,
	}
}

// ServeHTTP godoc
// @Summary Сальдо счёта
// @Description Возвращает обороты и сальдо счёта за период. По умолчанию берутся последние 30 дней.
// @Tags Reports
// @Produce  json
// @Security BearerAuth
// @Param uid path string true "UID счёта"
// @Param start_date query string false "Начало периода в формате 2006-01-02"
// @Param end_date query string false "Конец периода в формате 2006-01-02"
// @Success 200 {object} map[string]any "Сальдо счёта"
// @Failure 400 {object} response.ErrorResponse "Некорректный период"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Счёт не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /reports/account-balance/{uid} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.report.accountbalance"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	accountUID := chi.URLParam(r, "uid")
	if accountUID == "" {
		log.Error("missing account uid in url")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(http.StatusBadRequest, "missing account uid"))
		return
	}

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

	if _, err := h.accounts.Read(r.Context(), userUID, accountUID); err != nil {
		if errors.Is(err, accountsvc.ErrAccountNotFound) {
			log.Error("account not found", slog.String("uid", accountUID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(http.StatusNotFound, "account not found"))
			return
		}
		log.Error("failed to read account", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(http.StatusInternalServerError, "could not read account"))
		return
	}

	res, err := h.service.AccountBalance(r.Context(), userUID, accountUID, startDate, endDate)
	if err != nil {
		log.Error("failed to build account balance report", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(http.StatusInternalServerError, "could not build report"))
		return
	}

	log.Info("account balance report built")
	render.JSON(w, r, response.OKWithData(map[string]any{
		"report": res,
	}))
}
