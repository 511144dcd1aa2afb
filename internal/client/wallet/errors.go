package wallet

import "errors"

var (
	// ErrNoWallet кошелек еще не создан
	ErrNoWallet = errors.New("wallet not found, run `vaultctl wallet create`")

	// ErrWalletExists кошелек уже создан в этой базе
	ErrWalletExists = errors.New("wallet already exists")

	// ErrLocked приватный ключ не расшифрован
	ErrLocked = errors.New("wallet is locked")

	// ErrWrongPassphrase passphrase не подходит к keystore
	ErrWrongPassphrase = errors.New("wrong passphrase")

	// ErrDeclined пользователь отказался подписывать
	ErrDeclined = errors.New("signature declined by user")
)
