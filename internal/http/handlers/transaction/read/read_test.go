package read

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/inventory-keeper/internal/http/middlewarectx"
	"github.com/magabrotheeeer/inventory-keeper/internal/models"
	services "github.com/magabrotheeeer/inventory-keeper/internal/services/transaction"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Read(ctx context.Context, userUID, txUID string) (*models.StockTransaction, error) {
	args := m.Called(ctx, userUID, txUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StockTransaction), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestReadHandler_ServeHTTP(t *testing.T) {
	svcMock := new(ServiceMock)
	logger := newNoopLogger()

	handler := New(logger, svcMock)

	tests := []struct {
		name           string
		txUID          string
		mockTx         *models.StockTransaction
		mockErr        error
		wantStatusCode int
		wantMessage    string
	}{
		{
			name:           "valid transaction",
			txUID:          "tx-1",
			mockTx:         &models.StockTransaction{UID: "tx-1", Type: models.TxTypeIn},
			wantStatusCode: http.StatusOK,
			wantMessage:    "success",
		},
		{
			name:           "transaction not found",
			txUID:          "missing",
			mockErr:        services.ErrTransactionNotFound,
			wantStatusCode: http.StatusNotFound,
			wantMessage:    "transaction not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcMock.ExpectedCalls = nil
			svcMock.Calls = nil

			svcMock.On("Read", mock.Anything, "u1", tt.txUID).
				Return(tt.mockTx, tt.mockErr).Once()

			req := httptest.NewRequest(http.MethodGet, "/transactions/"+tt.txUID, nil)
			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123")
			ctx = context.WithValue(ctx, middlewarectx.UserUID, "u1")

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("uid", tt.txUID)
			ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
			req = req.WithContext(ctx)

			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, float64(tt.wantStatusCode), got["code"])
			assert.Equal(t, tt.wantMessage, got["message"])

			if tt.mockTx != nil {
				data, ok := got["data"].(map[string]any)
				assert.True(t, ok)
				assert.NotNil(t, data["transaction"])
			}

			svcMock.AssertExpectations(t)
		})
	}
}
