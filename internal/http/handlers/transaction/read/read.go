// Package read реализует HTTP-обработчик для получения складской операции по UID.
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
	services "github.com/magabrotheeeer/inventory-keeper/internal/services/transaction"
)

// Handler обрабатывает запросы на получение операции по уникальному идентификатору.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения операции.
type Service interface {
	Read(ctx context.Context, userUID, txUID string) (*models.StockTransaction, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить складскую операцию
// @Description Возвращает операцию текущего пользователя по UID.
// @Tags Transactions
// @Produce  json
// @Security BearerAuth
// @Param uid path string true "UID операции"
// @Success 200 {object} map[string]any "Данные операции"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Операция не найдена"
// @Router /transactions/{uid} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.transaction.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	txUID := chi.URLParam(r, "uid")
	if txUID == "" {
		log.Error("missing transaction uid in url")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(http.StatusBadRequest, "missing transaction uid"))
		return
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user identification missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error(http.StatusUnauthorized, "unauthorized"))
		return
	}

	res, err := h.service.Read(r.Context(), userUID, txUID)
	if err != nil {
		if errors.Is(err, services.ErrTransactionNotFound) {
			log.Error("transaction not found", slog.String("uid", txUID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(http.StatusNotFound, "transaction not found"))
			return
		}
		log.Error("failed to read transaction", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(http.StatusInternalServerError, "could not read transaction"))
		return
	}

	log.Info("success to read transaction", slog.String("uid", txUID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"transaction": res,
	}))
}
