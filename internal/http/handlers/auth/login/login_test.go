package login

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/inventory-keeper/internal/models"
	services "github.com/magabrotheeeer/inventory-keeper/internal/services/auth"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Login(ctx context.Context, login, password string) (string, *models.Profile, error) {
	args := m.Called(ctx, login, password)
	profile, _ := args.Get(1).(*models.Profile)
	return args.String(0), profile, args.Error(2)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestLoginHandler_ServeHTTP(t *testing.T) {
	authMock := new(AuthServiceMock)
	logger := newNoopLogger()

	handler := New(logger, authMock)

	profile := &models.Profile{ID: "u1", Username: "user1", Email: "user1@example.com"}

	tests := []struct {
		name           string
		requestBody    interface{}
		mockToken      string
		mockProfile    *models.Profile
		mockErr        error
		wantStatusCode int
		wantToken      string
		wantMessage    string
	}{
		{
			name:           "valid login",
			requestBody:    Request{Username: "user1", Password: "password123"},
			mockToken:      "tok-1",
			mockProfile:    profile,
			mockErr:        nil,
			wantStatusCode: http.StatusOK,
			wantToken:      "tok-1",
			wantMessage:    "success",
		},
		{
			name:           "valid login via email",
			requestBody:    Request{Username: "user1@example.com", Password: "password123"},
			mockToken:      "tok-2",
			mockProfile:    profile,
			mockErr:        nil,
			wantStatusCode: http.StatusOK,
			wantToken:      "tok-2",
			wantMessage:    "success",
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "invalid request body",
		},
		{
			name:           "validation error - missing password",
			requestBody:    Request{Username: "user1"},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantMessage:    "field Password is a required field",
		},
		{
			// Неверный пароль отдаётся как 400, а не 401: статус 401
			// зарезервирован за просроченной сессией.
			name:           "invalid credentials",
			requestBody:    Request{Username: "user1", Password: "wrongpassword"},
			mockErr:        services.ErrInvalidCredentials,
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "invalid credentials",
		},
		{
			name:           "internal error",
			requestBody:    Request{Username: "user1", Password: "password123"},
			mockErr:        errors.New("storage down"),
			wantStatusCode: http.StatusInternalServerError,
			wantMessage:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock.ExpectedCalls = nil
			authMock.Calls = nil

			if tt.mockProfile != nil || tt.mockErr != nil {
				authMock.On("Login", mock.Anything, tt.requestBody.(Request).Username, tt.requestBody.(Request).Password).
					Return(tt.mockToken, tt.mockProfile, tt.mockErr).Once()
			}

			var bodyBytes []byte
			var err error
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(bodyBytes))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))

			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err = json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			assert.Equal(t, float64(tt.wantStatusCode), got["code"])
			assert.Equal(t, tt.wantMessage, got["message"])

			if tt.wantToken != "" {
				data, ok := got["data"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, tt.wantToken, data["token"])
				assert.Equal(t, "u1", data["id"])
				assert.Equal(t, "user1", data["username"])
				assert.Equal(t, "user1@example.com", data["email"])
			} else {
				assert.Nil(t, got["data"])
			}

			if tt.mockProfile != nil || tt.mockErr != nil {
				authMock.AssertExpectations(t)
			}
		})
	}
}
