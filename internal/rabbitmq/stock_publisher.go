package rabbitmq

import (
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/inventory-keeper/internal/models"
)

// RoutingKeyRecorded ключ маршрутизации записанных складских операций.
const RoutingKeyRecorded = "recorded"

// StockPublisher публикует события складских операций в обменник stock.
type StockPublisher struct {
	ch *amqp.Channel
}

// NewStockPublisher создает новый StockPublisher поверх открытого канала.
func NewStockPublisher(ch *amqp.Channel) *StockPublisher {
	return &StockPublisher{ch: ch}
}

// PublishStockEvent отправляет событие в очередь уведомлений.
func (p *StockPublisher) PublishStockEvent(event models.StockEvent) error {
	return PublishMessage(p.ch, ExchangeStock, RoutingKeyRecorded, event)
}
