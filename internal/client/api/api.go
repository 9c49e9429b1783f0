// Package api реализует клиентский диспетчер запросов к серверу.
//
// Dispatcher прикладывает токен к каждому запросу, разбирает единый
// конверт ответа и переводит ошибки сервера в ошибки Go. Ответ 401
// принудительно завершает сессию: это единственный сигнал её
// недействительности на клиенте.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/magabrotheeeer/inventory-keeper/internal/models"
)

// ErrUnauthorized возвращается для ответов 401 после сброса сессии.
var ErrUnauthorized = errors.New("session is no longer valid")

// Session описывает методы сессии, которые нужны диспетчеру.
type Session interface {
	Token() string
	Logout()
}

// envelope единый конверт ответов сервера.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Dispatcher выполняет HTTP-запросы к серверу.
type Dispatcher struct {
	baseURL string
	client  *http.Client
	session Session
}

// New создает Dispatcher для сервера по базовому адресу.
// Сессию можно привязать позже через SetSession: диспетчер и сессия
// ссылаются друг на друга.
func New(baseURL string, session Session) *Dispatcher {
	return &Dispatcher{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		session: session,
	}
}

// SetSession привязывает сессию к диспетчеру.
func (d *Dispatcher) SetSession(session Session) {
	d.session = session
}

// do выполняет запрос и раскладывает data конверта в out.
func (d *Dispatcher) do(ctx context.Context, method, path string, body any, out any) error {
	const op = "client.api.do"

	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, d.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if d.session != nil {
		if token := d.session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if d.session != nil {
			d.session.Logout()
		}
		return ErrUnauthorized
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if env.Code != http.StatusOK {
		return fmt.Errorf("server: %s", env.Message)
	}
	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	return nil
}

// Login выполняет вход и возвращает токен с профилем.
func (d *Dispatcher) Login(ctx context.Context, login, password string) (string, *models.Profile, error) {
	var data struct {
		Token    string `json:"token"`
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	err := d.do(ctx, http.MethodPost, "/auth/login", map[string]string{
		"username": login,
		"password": password,
	}, &data)
	if err != nil {
		return "", nil, err
	}
	return data.Token, &models.Profile{ID: data.ID, Username: data.Username, Email: data.Email}, nil
}

// Register создает учётную запись и возвращает профиль.
func (d *Dispatcher) Register(ctx context.Context, username, email, password string) (*models.Profile, error) {
	var profile models.Profile
	err := d.do(ctx, http.MethodPost, "/auth/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}, &profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Me возвращает профиль текущего пользователя с сервера.
func (d *Dispatcher) Me(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	if err := d.do(ctx, http.MethodGet, "/auth/me", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListItems возвращает предметы пользователя.
func (d *Dispatcher) ListItems(ctx context.Context) ([]*models.Item, error) {
	var data struct {
		Items []*models.Item `json:"items"`
	}
	if err := d.do(ctx, http.MethodGet, "/items", nil, &data); err != nil {
		return nil, err
	}
	return data.Items, nil
}

// CreateItem добавляет предмет и возвращает его UID.
func (d *Dispatcher) CreateItem(ctx context.Context, item models.DummyItem) (string, error) {
	var data struct {
		UID string `json:"uid"`
	}
	if err := d.do(ctx, http.MethodPost, "/items", item, &data); err != nil {
		return "", err
	}
	return data.UID, nil
}

// CreateTransaction записывает складскую операцию и возвращает её UID.
func (d *Dispatcher) CreateTransaction(ctx context.Context, tx models.DummyStockTransaction) (string, error) {
	var data struct {
		UID string `json:"uid"`
	}
	if err := d.do(ctx, http.MethodPost, "/transactions", tx, &data); err != nil {
		return "", err
	}
	return data.UID, nil
}

// ListAccounts возвращает счета пользователя.
func (d *Dispatcher) ListAccounts(ctx context.Context) ([]*models.Account, error) {
	var data struct {
		Accounts []*models.Account `json:"accounts"`
	}
	if err := d.do(ctx, http.MethodGet, "/accounts", nil, &data); err != nil {
		return nil, err
	}
	return data.Accounts, nil
}

// CreateAccount регистрирует счёт и возвращает его UID.
func (d *Dispatcher) CreateAccount(ctx context.Context, account models.DummyAccount) (string, error) {
	var data struct {
		UID string `json:"uid"`
	}
	if err := d.do(ctx, http.MethodPost, "/accounts", account, &data); err != nil {
		return "", err
	}
	return data.UID, nil
}

// InventoryValue возвращает отчёт о стоимости инвентаря.
func (d *Dispatcher) InventoryValue(ctx context.Context) (*models.InventoryValueReport, error) {
	var data struct {
		Report *models.InventoryValueReport `json:"report"`
	}
	if err := d.do(ctx, http.MethodGet, "/reports/inventory-value", nil, &data); err != nil {
		return nil, err
	}
	return data.Report, nil
}
