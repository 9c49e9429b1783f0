// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи и хэш пароля.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
type User struct {
	UID          string    // Уникальный идентификатор пользователя
	Username     string    // Имя пользователя (уникальное)
	Email        string    // Электронная почта (уникальная)
	PasswordHash string    // Хэш пароля пользователя
	CreatedAt    time.Time // Дата создания учётной записи
}

// Profile публичная часть учётной записи, отдаваемая клиенту.
// Хэш пароля наружу не выходит.
type Profile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Profile конвертирует пользователя в публичный профиль.
func (u *User) Profile() Profile {
	return Profile{
		ID:       u.UID,
		Username: u.Username,
		Email:    u.Email,
	}
}
