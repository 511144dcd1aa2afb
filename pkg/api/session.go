package api

// SessionRequest запрос на подключение кошелька.
// Signature подписывает строку "vaultkeeper-connect:<address>:<timestamp>".
type SessionRequest struct {
	Address   string `json:"address"`    // адрес кошелька (0x + 64 hex)
	PublicKey string `json:"public_key"` // ed25519 публичный ключ (base64)
	Signature string `json:"signature"`  // подпись connect сообщения (base64)
	Timestamp int64  `json:"timestamp"`  // unix seconds, когда сообщение подписано
}

// SessionResponse ответ с токеном сессии
type SessionResponse struct {
	Token     string `json:"token"`      // JWT session token
	Address   string `json:"address"`    // адрес, к которому привязана сессия
	ExpiresIn int64  `json:"expires_in"` // время жизни токена в секундах
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status     string `json:"status"`
	Version    string `json:"version,omitempty"`
	Checkpoint int64  `json:"checkpoint"` // номер последнего коммита
}
