// Package inventorykeeper предоставляет маршруты для основного приложения.
package inventorykeeper

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	accountcreate "github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/account/create"
	accountlist "github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/account/list"
	accountread "github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/account/read"
	accountremove "github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/account/remove"
	accountupdate "github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/account/update"
	"github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/auth/me"
	"github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/health"
	itemcreate "github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/item/create"
	itemlist "github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/item/list"
	itemread "github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/item/read"
	itemremove "github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/item/remove"
	itemstats "github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/item/stats"
	itemupdate "github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/item/update"
	"github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/report/accountbalance"
	"github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/report/disposalprofit"
	"github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/report/inventoryvalue"
	"github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/report/ledger"
	"github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/report/trends"
	txcreate "github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/transaction/create"
	txlist "github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/transaction/list"
	txread "github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/transaction/read"
	txstats "github.com/magabrotheeeer/inventory-keeper/internal/http/handlers/transaction/stats"
	"github.com/magabrotheeeer/inventory-keeper/internal/http/middlewarectx"
	accountservice "github.com/magabrotheeeer/inventory-keeper/internal/services/account"
	authservice "github.com/magabrotheeeer/inventory-keeper/internal/services/auth"
	itemservice "github.com/magabrotheeeer/inventory-keeper/internal/services/item"
	reportservice "github.com/magabrotheeeer/inventory-keeper/internal/services/report"
	txservice "github.com/magabrotheeeer/inventory-keeper/internal/services/transaction"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	authService *authservice.AuthService,
	itemService *itemservice.ItemService,
	txService *txservice.TxService,
	accountService *accountservice.AccountService,
	reportService *reportservice.ReportService,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/auth/register", register.New(logger, authService).ServeHTTP)
		r.Post("/auth/login", login.New(logger, authService).ServeHTTP)
		r.Get("/health", health.New(logger).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Get("/auth/me", me.New(logger).ServeHTTP)

			r.Post("/items", itemcreate.New(logger, itemService).ServeHTTP)
			r.Get("/items", itemlist.New(logger, itemService).ServeHTTP)
			r.Get("/items/stats", itemstats.New(logger, itemService).ServeHTTP)
			r.Get("/items/{uid}", itemread.New(logger, itemService).ServeHTTP)
			r.Put("/items/{uid}", itemupdate.New(logger, itemService).ServeHTTP)
			r.Delete("/items/{uid}", itemremove.New(logger, itemService).ServeHTTP)

			r.Post("/transactions", txcreate.New(logger, txService).ServeHTTP)
			r.Get("/transactions", txlist.New(logger, txService).ServeHTTP)
			r.Get("/transactions/stats", txstats.New(logger, txService).ServeHTTP)
			r.Get("/transactions/{uid}", txread.New(logger, txService).ServeHTTP)

			r.Post("/accounts", accountcreate.New(logger, accountService).ServeHTTP)
			r.Get("/accounts", accountlist.New(logger, accountService).ServeHTTP)
			r.Get("/accounts/{uid}", accountread.New(logger, accountService).ServeHTTP)
			r.Put("/accounts/{uid}", accountupdate.New(logger, accountService).ServeHTTP)
			r.Delete("/accounts/{uid}", accountremove.New(logger, accountService).ServeHTTP)

			r.Get("/reports/inventory-value", inventoryvalue.New(logger, reportService).ServeHTTP)
			r.Get("/reports/disposal-profit", disposalprofit.New(logger, reportService).ServeHTTP)
			r.Get("/reports/trends", trends.New(logger, reportService).ServeHTTP)
			r.Get("/reports/ledger", ledger.New(logger, reportService).ServeHTTP)
			r.Get("/reports/account-balance/{uid}", accountbalance.New(logger, reportService, accountService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
