// Package read реализует HTTP-обработчик для получения счёта по UID.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/inventory-keeper/internal/http/middlewarectx"
	"github.com/magabrotheeeer/inventory-keeper/internal/http/response"
	"github.com/magabrotheeeer/inventory-keeper/internal/lib/sl"
	"github.com/magabrotheeeer/inventory-keeper/internal/models"
	services "github.com/magabrotheeeer/inventory-keeper/internal/services/account"
)

// Handler обрабатывает запросы на получение счёта по уникальному идентификатору.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения счёта.
type Service interface {
	Read(ctx context.Context, userUID, accountUID string) (*models.Account, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить счёт
// @Description Возвращает счёт текущего пользователя по UID.
// @Tags Accounts
// @Produce  json
// @Security BearerAuth
// @Param uid path string true "UID счёта"
// @Success 200 {object} map[string]any "Данные счёта"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Счёт не найден"
// @Router /accounts/{uid} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.account.read"

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

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user identification missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error(http.StatusUnauthorized, "unauthorized"))
		return
	}

	res, err := h.service.Read(r.Context(), userUID, accountUID)
	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
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

	log.Info("success to read account", slog.String("uid", accountUID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"account": res,
	}))
}
