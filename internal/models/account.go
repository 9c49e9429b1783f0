// Package models содержит доменную модель счёта пользователя.
package models

import "time"

// Типы счетов.
const (
	AccountTypeCash     = "CASH"
	AccountTypeBank     = "BANK"
	AccountTypePlatform = "PLATFORM"
	AccountTypeOther    = "OTHER"
)

// Account представляет счёт пользователя, через который проходят операции.
type Account struct {
	UID       string    // Уникальный идентификатор счёта
	UserUID   string    // Владелец счёта
	Name      string    // Название счёта
	Type      string    // CASH, BANK, PLATFORM или OTHER
	CreatedAt time.Time // Дата создания
}

// DummyAccount используется для приёма данных из JSON-запроса.
type DummyAccount struct {
	Name string `json:"name" validate:"required,max=100"`
	Type string `json:"type" validate:"required,oneof=CASH BANK PLATFORM OTHER"`
}
