// Package remove реализует HTTP-обработчик удаления счёта пользователя.
//
// Счёт, на который уже ссылаются складские операции или строки книги
// учёта, удалить нельзя: такой запрос завершается конфликтом.
package remove

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
	services "github.com/magabrotheeeer/inventory-keeper/internal/services/account"
)

// Handler обрабатывает запросы на удаление счёта.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления счёта.
type Service interface {
	Delete(ctx context.Context, userUID, accountUID string) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить счёт
// @Description Удаляет неиспользуемый счёт текущего пользователя по UID.
// @Tags Accounts
// @Produce  json
// @Security BearerAuth
// @Param uid path string true "UID счёта"
// @Success 200 {object} response.Response "Успешное удаление"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Счёт не найден"
// @Failure 409 {object} response.ErrorResponse "Счёт задействован в операциях"
// @Router /accounts/{uid} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.account.remove"

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

	if err := h.service.Delete(r.Context(), userUID, accountUID); err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			log.Error("account not found", slog.String("uid", accountUID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(http.StatusNotFound, "account not found"))
			return
		}
		if errors.Is(err, services.ErrAccountInUse) {
			log.Error("account is in use", slog.String("uid", accountUID))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error(http.StatusConflict, "account is referenced by transactions"))
			return
		}
		log.Error("failed to delete account", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(http.StatusInternalServerError, "could not delete account"))
		return
	}

	log.Info("success to delete account", slog.String("uid", accountUID))
	render.JSON(w, r, response.OK())
}
