// Package cli реализует консольный клиент учёта личных вещей.
// Команды читаются в простом REPL-цикле, проверка доступа к командам
// выполняется навигационной защитой по состоянию сессии.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/magabrotheeeer/inventory-keeper/internal/client/api"
	"github.com/magabrotheeeer/inventory-keeper/internal/client/config"
	"github.com/magabrotheeeer/inventory-keeper/internal/client/session"
	"github.com/magabrotheeeer/inventory-keeper/internal/client/storage"
	"github.com/magabrotheeeer/inventory-keeper/internal/models"
)

// apiClient описывает вызовы сервера, нужные командам клиента.
// Реализуется диспетчером api.Dispatcher, в тестах подменяется заглушкой.
type apiClient interface {
	Me(ctx context.Context) (*models.Profile, error)
	ListItems(ctx context.Context) ([]*models.Item, error)
	CreateItem(ctx context.Context, item models.DummyItem) (string, error)
	CreateTransaction(ctx context.Context, tx models.DummyStockTransaction) (string, error)
	ListAccounts(ctx context.Context) ([]*models.Account, error)
	CreateAccount(ctx context.Context, account models.DummyAccount) (string, error)
	InventoryValue(ctx context.Context) (*models.InventoryValueReport, error)
}

// sessionStore описывает операции сессии, нужные командам клиента.
type sessionStore interface {
	Login(ctx context.Context, login, password string) error
	Register(ctx context.Context, username, email, password string) (*models.Profile, error)
	Logout()
	Restore() error
	IsAuthenticated() bool
	Profile() *models.Profile
}

// App связывает сессию, диспетчер запросов и ввод-вывод консоли.
type App struct {
	session sessionStore
	api     apiClient
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp собирает клиента: файловое хранилище сессии, диспетчер запросов
// и хранилище состояния сессии. Диспетчер и сессия ссылаются друг на друга,
// поэтому сессия привязывается к диспетчеру после создания обоих.
func NewApp(cfg *config.Config) (*App, error) {
	store, err := storage.New(cfg.StateDir)
	if err != nil {
		return nil, err
	}

	dispatcher := api.New(cfg.ServerURL, nil)
	sess := session.New(dispatcher, store)
	dispatcher.SetSession(sess)

	return &App{
		session: sess,
		api:     dispatcher,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run восстанавливает сессию из хранилища и запускает цикл команд.
func (a *App) Run(ctx context.Context) {
	if err := a.session.Restore(); err != nil {
		printlnFn("Warning: could not restore session:", err.Error())
	}
	if a.session.IsAuthenticated() {
		if profile := a.session.Profile(); profile != nil {
			printlnFn("Restored session for", profile.Username)
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) status() string {
	if profile := a.session.Profile(); profile != nil {
		return profile.Username
	}
	return "anonymous"
}
