package wallet

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/vaultkeeper/internal/client/ledger"
	"github.com/iudanet/vaultkeeper/internal/client/storage"
	"github.com/iudanet/vaultkeeper/internal/clock"
	"github.com/iudanet/vaultkeeper/internal/crypto"
	"github.com/iudanet/vaultkeeper/pkg/api"
)

// SessionAPI часть API леджера, нужная для подключения
type SessionAPI interface {
	CreateSession(ctx context.Context, req api.SessionRequest) (*api.SessionResponse, error)
	BaseURL() string
}

// ConfirmFunc спрашивает пользователя, подписывать ли транзакцию
type ConfirmFunc func(summary string) (bool, error)

// Wallet реализация Service
type Wallet struct {
	keys     storage.KeyStorage
	sessions storage.SessionStorage
	api      SessionAPI
	confirm  ConfirmFunc
	clock    clock.Clock
	logger   *slog.Logger

	priv    ed25519.PrivateKey
	address string
	mu      sync.RWMutex
}

var _ Service = (*Wallet)(nil)

// Option настраивает Wallet
type Option func(*Wallet)

// WithConfirm задает функцию подтверждения подписи
func WithConfirm(fn ConfirmFunc) Option {
	return func(w *Wallet) {
		w.confirm = fn
	}
}

// WithAutoApprove подписывает транзакции без вопросов
func WithAutoApprove() Option {
	return func(w *Wallet) {
		w.confirm = func(string) (bool, error) { return true, nil }
	}
}

// WithClock подменяет источник времени (для тестов)
func WithClock(c clock.Clock) Option {
	return func(w *Wallet) {
		w.clock = c
	}
}

// New создает Wallet. Без WithConfirm/WithAutoApprove все подписи отклоняются.
func New(keys storage.KeyStorage, sessions storage.SessionStorage, sessionAPI SessionAPI, logger *slog.Logger, opts ...Option) *Wallet {
	w := &Wallet{
		keys:     keys,
		sessions: sessions,
		api:      sessionAPI,
		clock:    clock.Real{},
		logger:   logger,
		confirm:  func(string) (bool, error) { return false, nil },
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Create генерирует ключ и сохраняет его зашифрованным под passphrase
func (w *Wallet) Create(ctx context.Context, passphrase string) (string, error) {
	if _, err := w.keys.GetKey(ctx); err == nil {
		return "", ErrWalletExists
	} else if !errors.Is(err, storage.ErrKeyNotFound) {
		return "", fmt.Errorf("failed to check keystore: %w", err)
	}

	pub, priv, err := crypto.GenerateKeypair()
	if err != nil {
		return "", err
	}
	address, err := crypto.AddressFromPublicKey(pub)
	if err != nil {
		return "", err
	}

	salt, err := crypto.GenerateSalt()
	if err != nil {
		return "", err
	}
	encKey, err := crypto.DeriveKey(passphrase, salt)
	if err != nil {
		return "", fmt.Errorf("failed to derive keystore key: %w", err)
	}
	sealed, err := crypto.Seal(priv.Seed(), encKey, []byte(address))
	if err != nil {
		return "", fmt.Errorf("failed to encrypt private key: %w", err)
	}

	key := &storage.KeyData{
		Address:      address,
		PublicKey:    pub,
		EncryptedKey: sealed,
		Salt:         salt,
		CreatedAt:    w.clock.Now().Unix(),
	}
	if err := w.keys.SaveKey(ctx, key); err != nil {
		return "", fmt.Errorf("failed to save wallet key: %w", err)
	}

	w.mu.Lock()
	w.priv = priv
	w.address = address
	w.mu.Unlock()

	w.logger.Info("Wallet created", "address", address)
	return address, nil
}

// Unlock расшифровывает приватный ключ
func (w *Wallet) Unlock(ctx context.Context, passphrase string) error {
	key, err := w.loadKey(ctx)
	if err != nil {
		return err
	}

	encKey, err := crypto.DeriveKey(passphrase, key.Salt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrongPassphrase, err)
	}
	seed, err := crypto.Open(key.EncryptedKey, encKey, []byte(key.Address))
	if err != nil {
		return ErrWrongPassphrase
	}
	if len(seed) != ed25519.SeedSize {
		return fmt.Errorf("keystore is corrupted: seed is %d bytes", len(seed))
	}

	priv := ed25519.NewKeyFromSeed(seed)
	address, err := crypto.AddressFromPublicKey(priv.Public().(ed25519.PublicKey))
	if err != nil {
		return err
	}
	if address != key.Address {
		return fmt.Errorf("keystore is corrupted: key does not match address %s", key.Address)
	}

	w.mu.Lock()
	w.priv = priv
	w.address = address
	w.mu.Unlock()

	w.logger.Debug("Wallet unlocked", "address", address)
	return nil
}

// Lock забывает расшифрованный ключ
func (w *Wallet) Lock() {
	w.mu.Lock()
	defer w.mu.Unlock()
	clear(w.priv)
	w.priv = nil
}

// Address адрес кошелька
func (w *Wallet) Address(ctx context.Context) (string, error) {
	w.mu.RLock()
	address := w.address
	w.mu.RUnlock()
	if address != "" {
		return address, nil
	}

	key, err := w.loadKey(ctx)
	if err != nil {
		return "", err
	}
	return key.Address, nil
}

// Connect подписывает connect сообщение и сохраняет токен сессии
func (w *Wallet) Connect(ctx context.Context) (*storage.Session, error) {
	priv, address, err := w.unlocked()
	if err != nil {
		return nil, err
	}

	now := w.clock.Now()
	sig, err := crypto.SignBase64(priv, crypto.ConnectMessage(address, now.Unix()))
	if err != nil {
		return nil, err
	}

	resp, err := w.api.CreateSession(ctx, api.SessionRequest{
		Address:   address,
		PublicKey: base64.StdEncoding.EncodeToString(priv.Public().(ed25519.PublicKey)),
		Signature: sig,
		Timestamp: now.Unix(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect wallet: %w", err)
	}

	session := &storage.Session{
		Address:   address,
		Token:     resp.Token,
		Server:    w.api.BaseURL(),
		ExpiresAt: now.Unix() + resp.ExpiresIn,
	}
	if err := w.sessions.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	w.logger.Info("Wallet connected", "address", address, "server", session.Server)
	return session, nil
}

// Disconnect удаляет сессию. Отсутствие сессии не ошибка.
func (w *Wallet) Disconnect(ctx context.Context) error {
	if err := w.sessions.DeleteSession(ctx); err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Session возвращает действующую сессию
func (w *Wallet) Session(ctx context.Context) (*storage.Session, error) {
	session, err := w.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, ledger.ErrNotConnected
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session.Expired(w.clock.Now()) {
		return nil, fmt.Errorf("%w: session expired", ledger.ErrNotConnected)
	}
	if session.Server != "" && session.Server != w.api.BaseURL() {
		return nil, fmt.Errorf("%w: session belongs to %s", ledger.ErrNotConnected, session.Server)
	}
	return session, nil
}

// SignTransaction запрашивает подтверждение и подписывает транзакцию.
// Отказ пользователя возвращает ErrDeclined.
func (w *Wallet) SignTransaction(ctx context.Context, tx *api.TransactionRequest, summary string) error {
	priv, address, err := w.unlocked()
	if err != nil {
		return err
	}
	if tx.Sender != "" && tx.Sender != address {
		return fmt.Errorf("transaction sender %s is not wallet %s", tx.Sender, address)
	}
	tx.Sender = address

	ok, err := w.confirm(summary)
	if err != nil {
		return fmt.Errorf("failed to confirm signature: %w", err)
	}
	if !ok {
		w.logger.Info("Signature declined", "operation", tx.Operation)
		return ErrDeclined
	}

	tx.PublicKey = base64.StdEncoding.EncodeToString(priv.Public().(ed25519.PublicKey))
	sig, err := crypto.SignBase64(priv, tx.SigningBytes())
	if err != nil {
		return err
	}
	tx.Signature = sig
	return nil
}

func (w *Wallet) loadKey(ctx context.Context) (*storage.KeyData, error) {
	key, err := w.keys.GetKey(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, ErrNoWallet
		}
		return nil, fmt.Errorf("failed to load wallet key: %w", err)
	}
	return key, nil
}

func (w *Wallet) unlocked() (ed25519.PrivateKey, string, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.priv == nil {
		return nil, "", ErrLocked
	}
	return w.priv, w.address, nil
}
