package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Ошибки проверки токена. Наружу (в HTTP-ответ) они не различаются,
// но сервис и тесты опираются на конкретный вид отказа.
var (
	// ErrTokenMalformed токен структурно некорректен.
	ErrTokenMalformed = errors.New("token is malformed")
	// ErrTokenExpired срок действия токена истек.
	ErrTokenExpired = errors.New("token is expired")
	// ErrTokenSignatureInvalid подпись токена не совпадает с секретом сервера.
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
)

// Issue создает JWT токен для субъекта, подписывая его секретным ключом.
//
// Окно действия токена определяется полем tokenTTL и отсчитывается
// от момента выпуска.
func (j *MakerImpl) Issue(userUID, username, email string) (string, error) {
	claims := CustomClaims{
		UserUID:  userUID,
		Username: username,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// Verify парсит JWT токен, проверяет его подпись и срок действия,
// возвращает CustomClaims с данными субъекта, если токен корректен.
func (j *MakerImpl) Verify(tokenStr string) (*CustomClaims, error) {
	const op = "jwt.Verify"
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, fmt.Errorf("%s: %w", op, ErrTokenSignatureInvalid)
		default:
			return nil, fmt.Errorf("%s: %w", op, ErrTokenMalformed)
		}
	}
	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: %w", op, ErrTokenMalformed)
	}
	return claims, nil
}
