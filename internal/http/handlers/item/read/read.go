// Package read реализует HTTP-обработчик для получения предмета по UID.
//
// Handler извлекает UID из URL-параметров, вызывает бизнес-логику чтения
// предмета и возвращает данные в JSON-формате.
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
	services "github.com/magabrotheeeer/inventory-keeper/internal/services/item"
)

// Handler обрабатывает запросы на получение предмета по уникальному идентификатору.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения предмета.
type Service interface {
	Read(ctx context.Context, userUID, itemUID string) (*models.Item, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить предмет
// @Description Возвращает предмет текущего пользователя по UID.
// @Tags Items
// @Produce  json
// @Security BearerAuth
// @Param uid path string true "UID предмета"
// @Success 200 {object} map[string]any "Данные предмета"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Предмет не найден"
// @Router /items/{uid} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.item.read"

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

	res, err := h.service.Read(r.Context(), userUID, itemUID)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			log.Error("item not found", slog.String("uid", itemUID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(http.StatusNotFound, "item not found"))
			return
		}
		log.Error("failed to read item", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(http.StatusInternalServerError, "could not read item"))
		return
	}

	log.Info("success to read item", slog.String("uid", itemUID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"item": res,
	}))
}
