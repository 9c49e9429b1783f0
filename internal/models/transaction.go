// Package models содержит доменные структуры складских операций.
package models

import "time"

// Типы складских операций.
const (
	// TxTypeIn поступление предмета в инвентарь.
	TxTypeIn = "IN"
	// TxTypeOut выбытие предмета из инвентаря.
	TxTypeOut = "OUT"
	// TxTypeAdjust корректировка количества или стоимости.
	TxTypeAdjust = "ADJUST"
)

// Причины складских операций.
const (
	TxReasonPurchase = "PURCHASE"
	TxReasonSell     = "SELL"
	TxReasonDispose  = "DISPOSE"
	TxReasonGift     = "GIFT"
	TxReasonLost     = "LOST"
	TxReasonAdjust   = "ADJUST"
)

// StockTransaction представляет складскую операцию над предметом.
// TotalAmount всегда равен Quantity * UnitPrice и вычисляется сервисом.
type StockTransaction struct {
	UID             string    // Уникальный идентификатор операции
	UserUID         string    // Пользователь, выполнивший операцию
	ItemUID         string    // Предмет, к которому относится операция
	Type            string    // IN, OUT или ADJUST
	Quantity        int       // Количество
	UnitPrice       float64   // Цена за единицу
	TotalAmount     float64   // Итоговая сумма операции
	TransactionDate time.Time // Дата операции
	Reason          string    // Причина операции
	Notes           string    // Произвольный комментарий
	AccountUID      string    // Счёт, через который проходит операция
	CreatedAt       time.Time // Дата создания записи
}

// DummyStockTransaction используется для приёма данных из JSON-запроса.
type DummyStockTransaction struct {
	ItemUID         string  `json:"item_id" validate:"required,uuid"`                           // Предмет
	Type            string  `json:"type" validate:"required,oneof=IN OUT ADJUST"`               // Тип операции
	Quantity        int     `json:"quantity" validate:"required,gt=0"`                          // Количество (>0)
	UnitPrice       float64 `json:"unit_price" validate:"required,gte=0"`                       // Цена за единицу
	TransactionDate string  `json:"transaction_date" validate:"required"`                       // Дата в формате 2006-01-02
	Reason          string  `json:"reason" validate:"required,oneof=PURCHASE SELL DISPOSE GIFT LOST ADJUST"`
	Notes           string  `json:"notes" validate:"max=2000"`                                  // Комментарий
	AccountUID      string  `json:"account_id" validate:"required,uuid"`                        // Счёт
}

// TxStats сводка по складским операциям за период.
type TxStats struct {
	InboundAmount   float64        `json:"inbound_amount"`
	OutboundAmount  float64        `json:"outbound_amount"`
	DisposalAmounts []ReasonAmount `json:"disposal_amounts"`
}

// TxFilter параметры выборки списка складских операций.
type TxFilter struct {
	Type      string // Фильтр по типу, пустая строка — все
	ItemUID   string // Фильтр по предмету
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

// StockEvent событие складской операции, публикуемое в очередь
// для сервиса уведомлений.
type StockEvent struct {
	EventUID    string    `json:"event_uid"`
	UserUID     string    `json:"user_uid"`
	Email       string    `json:"email"`
	ItemUID     string    `json:"item_uid"`
	ItemName    string    `json:"item_name"`
	Type        string    `json:"type"`
	Reason      string    `json:"reason"`
	TotalAmount float64   `json:"total_amount"`
	OccurredAt  time.Time `json:"occurred_at"`
}
