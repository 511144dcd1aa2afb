package handlers

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenIssuer значение iss в токенах сессий
const tokenIssuer = "vaultkeeper-ledger"

// SessionClaims JWT claims сессии кошелька. ID сессии хранится в jti.
type SessionClaims struct {
	Address string `json:"address"`
	jwt.RegisteredClaims
}

// JWTConfig содержит конфигурацию для JWT
type JWTConfig struct {
	Secret     []byte
	SessionTTL time.Duration
}

// GenerateSessionToken подписывает токен сессии для адреса.
// Возвращает токен и время жизни в секундах.
func GenerateSessionToken(cfg JWTConfig, address, sessionID string, now time.Time) (string, int64, error) {
	claims := SessionClaims{
		Address: address,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   address,
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(cfg.Secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, int64(cfg.SessionTTL.Seconds()), nil
}

// ValidateSessionToken валидирует и парсит токен сессии
func ValidateSessionToken(cfg JWTConfig, tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (any, error) {
		// Проверяем что используется правильный алгоритм подписи
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return cfg.Secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.ID == "" || claims.Address == "" {
		return nil, fmt.Errorf("token has no session")
	}
	return claims, nil
}
