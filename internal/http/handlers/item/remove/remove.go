// Package remove реализует HTTP-обработчик мягкого удаления предмета.
//
// Запись не удаляется из хранилища, предмету проставляется отметка
// об удалении, после чего он исчезает из выборок.
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
	services "github.com/magabrotheeeer/inventory-keeper/internal/services/item"
)

// Handler обрабатывает запросы на удаление предмета.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления предмета.
type Service interface {
	Remove(ctx context.Context, userUID, itemUID string) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить предмет
// @Description Мягко удаляет предмет текущего пользователя по UID.
// @Tags Items
// @Produce  json
// @Security BearerAuth
// @Param uid path string true "UID предмета"
// @Success 200 {object} response.Response "Успешное удаление"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Предмет не найден"
// @Router /items/{uid} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.item.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	itemUID := chi.URLParam(r, "uid")
	if itemUID == "" {
		log.Error("missing item uid in url")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(http.StatusBadRequest, "missing item uid"))
		return
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user identification missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error(http.StatusUnauthorized, "unauthorized"))
		return
	}

	if err := h.service.Remove(r.Context(), userUID, itemUID); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			log.Error("item not found", slog.String("uid", itemUID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(http.StatusNotFound, "item not found"))
			return
		}
		log.Error("failed to remove item", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(http.StatusInternalServerError, "could not remove item"))
		return
	}

	log.Info("success to remove item", slog.String("uid", itemUID))
	render.JSON(w, r, response.OK())
}
