// Package inventorykeeper собирает и запускает основное HTTP-приложение.
package inventorykeeper

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/inventory-keeper/internal/cache"
	"github.com/magabrotheeeer/inventory-keeper/internal/config"
	"github.com/magabrotheeeer/inventory-keeper/internal/lib/jwt"
	"github.com/magabrotheeeer/inventory-keeper/internal/migrations"
	"github.com/magabrotheeeer/inventory-keeper/internal/rabbitmq"
	accountservice "github.com/magabrotheeeer/inventory-keeper/internal/services/account"
	authservice "github.com/magabrotheeeer/inventory-keeper/internal/services/auth"
	itemservice "github.com/magabrotheeeer/inventory-keeper/internal/services/item"
	reportservice "github.com/magabrotheeeer/inventory-keeper/internal/services/report"
	txservice "github.com/magabrotheeeer/inventory-keeper/internal/services/transaction"
	"github.com/magabrotheeeer/inventory-keeper/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	conn   *amqp.Connection
	ch     *amqp.Channel
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	conn, err := rabbitmq.Connect(cfg.RabbitConnection.AddressRabbit, cfg.RabbitConnection.MaxRetries, cfg.RabbitConnection.RetryDelay)
	if err != nil {
		return nil, err
	}
	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetStockQueues(cfg.RabbitConnection.StockQueue))
	if err != nil {
		conn.Close()
		return nil, err
	}

	jwtMaker := jwt.NewMaker(cfg.JWTToken.JWTSecretKey, cfg.JWTToken.TokenTTL)

	authService := authservice.NewAuthService(db, jwtMaker)
	itemService := itemservice.NewItemService(db, logger)
	accountService := accountservice.NewAccountService(db, logger)
	reportService := reportservice.NewReportService(db, cacheRedis, logger)
	txService := txservice.NewTxService(db, rabbitmq.NewStockPublisher(ch), reportService, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, authService, itemService, txService, accountService, reportService)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.TimeoutHTTP,
		WriteTimeout: cfg.HTTPServer.TimeoutHTTP,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		conn:   conn,
		ch:     ch,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if cerr := a.ch.Close(); cerr != nil {
			a.logger.Error("failed to close channel", slog.Any("err", cerr))
		}
		if cerr := a.conn.Close(); cerr != nil {
			a.logger.Error("failed to close connection", slog.Any("err", cerr))
		}
		a.db.DB.Close()
		return err
	}
}
