// Package sender собирает и запускает сервис почтовых уведомлений.
//
// Сервис читает события складских операций из очереди RabbitMQ
// и отправляет письма владельцам предметов.
package sender

import (
	"context"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/inventory-keeper/internal/config"
	"github.com/magabrotheeeer/inventory-keeper/internal/lib/smtp"
	"github.com/magabrotheeeer/inventory-keeper/internal/rabbitmq"
	senderservice "github.com/magabrotheeeer/inventory-keeper/internal/services/sender"
)

type App struct {
	conn          *amqp.Connection
	ch            *amqp.Channel
	stockQueue    string
	senderService *senderservice.SenderService
	logger        *slog.Logger
}

func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	conn, err := rabbitmq.Connect(cfg.RabbitConnection.AddressRabbit, cfg.RabbitConnection.MaxRetries, cfg.RabbitConnection.RetryDelay)
	if err != nil {
		return nil, err
	}

	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetStockQueues(cfg.RabbitConnection.StockQueue))
	if err != nil {
		conn.Close()
		return nil, err
	}

	newTransport := smtp.NewTransport(cfg.SMTP, logger)
	senderService := senderservice.NewSenderService(logger, newTransport)

	return &App{
		conn:          conn,
		ch:            ch,
		stockQueue:    cfg.RabbitConnection.StockQueue,
		senderService: senderService,
		logger:        logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	err := rabbitmq.ConsumerMessage(ctx, a.ch, a.stockQueue, a.senderService.SendStockNotification)
	if err != nil {
		a.logger.Error("failed to start stock events consumer", slog.Any("err", err))
		return err
	}

	<-ctx.Done()
	a.logger.Info("sender service shutting down gracefully")

	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", slog.Any("err", err))
	}

	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", slog.Any("err", err))
	}

	return nil
}
