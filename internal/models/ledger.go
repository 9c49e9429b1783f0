// Package models содержит доменные структуры двойной записи.
package models

import "time"

// Направления бухгалтерской записи.
const (
	// DirectionDebit дебет.
	DirectionDebit = "DEBIT"
	// DirectionCredit кредит.
	DirectionCredit = "CREDIT"
)

// Коды учётных категорий, используемые при генерации проводок.
const (
	LedgerCategoryInventory = "INVENTORY"
	LedgerCategoryCash      = "CASH"
	LedgerCategoryLoss      = "LOSS"
)

// LedgerEntry представляет одну строку двойной записи.
// Каждая складская операция порождает сбалансированную пару строк.
type LedgerEntry struct {
	UID             string    // Уникальный идентификатор записи
	UserUID         string    // Владелец записи
	ItemUID         string    // Предмет, к которому относится запись
	AccountUID      string    // Счёт
	TransactionDate time.Time // Дата операции
	Amount          float64   // Сумма
	Direction       string    // DEBIT или CREDIT
	CategoryCode    string    // INVENTORY, CASH или LOSS
	Note            string    // Пояснение
	CreatedAt       time.Time // Дата создания записи
}

// LedgerFilter параметры выборки строк книги учёта.
type LedgerFilter struct {
	AccountUID string // Фильтр по счёту, пустая строка — все
	StartDate  *time.Time
	EndDate    *time.Time
	Limit      int
	Offset     int
}
