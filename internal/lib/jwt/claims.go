// Package jwt реализует выпуск и проверку JWT токенов сессии.
//
// Токен переносит идентичность субъекта (uid, username, email) и ограничен
// по времени жизни. Проверка — чистая функция от токена и секрета сервера,
// без обращений к внешнему состоянию.
package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims описывает пользовательские данные, хранящиеся в JWT.
type CustomClaims struct {
	UserUID              string `json:"uid"`      // Уникальный идентификатор пользователя
	Username             string `json:"username"` // Имя пользователя
	Email                string `json:"email"`    // Электронная почта
	jwt.RegisteredClaims        // Встроенные стандартные claims JWT (ExpiresAt, IssuedAt и пр.)
}

// Maker описывает интерфейс для выпуска и проверки токенов сессии.
type Maker interface {
	// Issue создает токен для субъекта с заданными uid, username и email.
	Issue(userUID, username, email string) (string, error)
	// Verify проверяет токен и возвращает *CustomClaims либо одну из
	// ошибок ErrTokenMalformed, ErrTokenExpired, ErrTokenSignatureInvalid.
	Verify(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
