// Package models содержит доменные структуры предметов инвентаря,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// Статусы предмета инвентаря.
const (
	// ItemStatusActive предмет числится в инвентаре.
	ItemStatusActive = "ACTIVE"
	// ItemStatusRemoved предмет выбыл (продан, подарен, утилизирован).
	ItemStatusRemoved = "REMOVED"
)

// Item представляет собой предмет личного инвентаря.
// Поле DeletedAt ненулевое для мягко удалённых записей, такие записи
// не участвуют в выборках и отчётах.
type Item struct {
	UID           string     // Уникальный идентификатор предмета
	UserUID       string     // Владелец предмета
	Name          string     // Название предмета
	Brand         string     // Бренд
	Size          string     // Размер
	Color         string     // Цвет
	PurchasePrice float64    // Цена покупки
	PurchaseDate  time.Time  // Дата покупки
	Location      string     // Место хранения
	Images        []string   // Ссылки на изображения
	Status        string     // ACTIVE или REMOVED
	CreatedAt     time.Time  // Дата создания записи
	UpdatedAt     time.Time  // Дата последнего изменения
	DeletedAt     *time.Time // Дата мягкого удаления
}

// DummyItem используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в Item. Дата приходит строкой,
// чтобы её можно было валидировать и парсить вручную.
type DummyItem struct {
	Name          string   `json:"name" validate:"required,max=200"`            // Название
	Brand         string   `json:"brand" validate:"max=100"`                    // Бренд
	Size          string   `json:"size" validate:"max=50"`                      // Размер
	Color         string   `json:"color" validate:"max=50"`                     // Цвет
	PurchasePrice float64  `json:"purchase_price" validate:"required,gt=0"`     // Цена покупки (>0)
	PurchaseDate  string   `json:"purchase_date" validate:"required"`           // Дата в формате 2006-01-02
	Location      string   `json:"location" validate:"max=200"`                 // Место хранения
	Images        []string `json:"images" validate:"omitempty,dive,max=500"`    // Изображения
}

// ItemStats сводка по активному инвентарю пользователя.
type ItemStats struct {
	TotalValue  float64      `json:"total_value"`
	BrandValues []BrandValue `json:"brand_values"`
}

// ItemFilter параметры выборки списка предметов.
type ItemFilter struct {
	Search string // Подстрока названия или бренда
	Status string // Фильтр по статусу, пустая строка — все
	Limit  int
	Offset int
}
