package vault

import (
	"errors"
	"fmt"
)

// ErrInvalidInput параметры операции не прошли проверку на клиенте
var ErrInvalidInput = errors.New("invalid input")

// OwnershipCode код ошибки проверки владения
type OwnershipCode string

const (
	CodeNotOwner           OwnershipCode = "NOT_OWNER"
	CodeVaultNotFound      OwnershipCode = "VAULT_NOT_FOUND"
	CodeWalletNotConnected OwnershipCode = "WALLET_NOT_CONNECTED"
)

// OwnershipError хранилище не принадлежит подключенному кошельку
type OwnershipError struct {
	Err     error
	Code    OwnershipCode
	VaultID string
}

func (e *OwnershipError) Error() string {
	switch e.Code {
	case CodeNotOwner:
		if e.Err != nil {
			return fmt.Sprintf("vault %s is not owned by the connected wallet: %v", e.VaultID, e.Err)
		}
		return fmt.Sprintf("vault %s is not owned by the connected wallet", e.VaultID)
	case CodeVaultNotFound:
		return fmt.Sprintf("vault %s not found", e.VaultID)
	case CodeWalletNotConnected:
		return "wallet not connected"
	}
	return fmt.Sprintf("ownership check failed for %s: %v", e.VaultID, e.Err)
}

func (e *OwnershipError) Unwrap() error {
	return e.Err
}

// IsOwnership сообщает, является ли ошибка ошибкой владения с заданным кодом
func IsOwnership(err error, code OwnershipCode) bool {
	var oe *OwnershipError
	return errors.As(err, &oe) && oe.Code == code
}
