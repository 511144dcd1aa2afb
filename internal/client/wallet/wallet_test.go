package wallet

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/vaultkeeper/internal/client/ledger"
	"github.com/iudanet/vaultkeeper/internal/client/storage"
	"github.com/iudanet/vaultkeeper/internal/client/storage/boltdb"
	"github.com/iudanet/vaultkeeper/internal/clock"
	"github.com/iudanet/vaultkeeper/internal/crypto"
	"github.com/iudanet/vaultkeeper/pkg/api"
)

const testPassphrase = "correct horse battery"

// fakeSessionAPI проверяет подпись connect сообщения как это делает леджер
type fakeSessionAPI struct {
	err  error
	last api.SessionRequest
}

func (f *fakeSessionAPI) CreateSession(ctx context.Context, req api.SessionRequest) (*api.SessionResponse, error) {
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	msg := crypto.ConnectMessage(req.Address, req.Timestamp)
	if err := crypto.VerifyBase64(req.Address, req.PublicKey, req.Signature, msg); err != nil {
		return nil, err
	}
	return &api.SessionResponse{Token: "token-for-" + req.Address, Address: req.Address, ExpiresIn: 3600}, nil
}

func (f *fakeSessionAPI) BaseURL() string {
	return "http://ledger.test"
}

type walletFixture struct {
	wallet *Wallet
	store  *boltdb.Storage
	api    *fakeSessionAPI
	clock  *clock.Recorder
}

func newWalletFixture(t *testing.T, opts ...Option) *walletFixture {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "wallet.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	rec := clock.NewRecorder(time.Unix(1700000000, 0))
	fapi := &fakeSessionAPI{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	opts = append([]Option{WithClock(rec)}, opts...)

	return &walletFixture{
		wallet: New(store, store, fapi, logger, opts...),
		store:  store,
		api:    fapi,
		clock:  rec,
	}
}

func TestWallet_CreateAndUnlock(t *testing.T) {
	ctx := context.Background()
	f := newWalletFixture(t)

	address, err := f.wallet.Create(ctx, testPassphrase)
	require.NoError(t, err)
	assert.Regexp(t, `^0x[0-9a-f]{64}$`, address)

	// Приватный ключ хранится только в зашифрованном виде
	key, err := f.store.GetKey(ctx)
	require.NoError(t, err)
	assert.Equal(t, address, key.Address)
	assert.NotEmpty(t, key.EncryptedKey)
	assert.Len(t, key.Salt, crypto.SaltSize)

	// Новый экземпляр поверх той же базы
	other := New(f.store, f.store, f.api, slog.New(slog.NewTextHandler(io.Discard, nil)))
	got, err := other.Address(ctx)
	require.NoError(t, err)
	assert.Equal(t, address, got)

	require.ErrorIs(t, other.Unlock(ctx, "wrong passphrase!"), ErrWrongPassphrase)
	require.ErrorIs(t, other.Unlock(ctx, "short"), ErrWrongPassphrase)
	require.NoError(t, other.Unlock(ctx, testPassphrase))
}

func TestWallet_CreateTwice(t *testing.T) {
	ctx := context.Background()
	f := newWalletFixture(t)

	_, err := f.wallet.Create(ctx, testPassphrase)
	require.NoError(t, err)

	_, err = f.wallet.Create(ctx, testPassphrase)
	assert.ErrorIs(t, err, ErrWalletExists)
}

func TestWallet_NoWallet(t *testing.T) {
	ctx := context.Background()
	f := newWalletFixture(t)

	_, err := f.wallet.Address(ctx)
	assert.ErrorIs(t, err, ErrNoWallet)
	assert.ErrorIs(t, f.wallet.Unlock(ctx, testPassphrase), ErrNoWallet)
}

func TestWallet_ConnectAndSession(t *testing.T) {
	ctx := context.Background()
	f := newWalletFixture(t)

	_, err := f.wallet.Session(ctx)
	require.ErrorIs(t, err, ledger.ErrNotConnected)

	address, err := f.wallet.Create(ctx, testPassphrase)
	require.NoError(t, err)

	session, err := f.wallet.Connect(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-for-"+address, session.Token)
	assert.Equal(t, int64(1700000000+3600), session.ExpiresAt)
	assert.Equal(t, int64(1700000000), f.api.last.Timestamp)

	got, err := f.wallet.Session(ctx)
	require.NoError(t, err)
	assert.Equal(t, session, got)

	// После истечения сессии кошелек считается не подключенным
	f.clock.After(2 * time.Hour)
	_, err = f.wallet.Session(ctx)
	require.ErrorIs(t, err, ledger.ErrNotConnected)

	require.NoError(t, f.wallet.Disconnect(ctx))
	require.NoError(t, f.wallet.Disconnect(ctx))
	_, err = f.store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestWallet_ConnectRequiresUnlock(t *testing.T) {
	ctx := context.Background()
	f := newWalletFixture(t)

	_, err := f.wallet.Create(ctx, testPassphrase)
	require.NoError(t, err)
	f.wallet.Lock()

	_, err = f.wallet.Connect(ctx)
	assert.ErrorIs(t, err, ErrLocked)
}

func TestWallet_ConnectAPIError(t *testing.T) {
	ctx := context.Background()
	f := newWalletFixture(t)
	f.api.err = errors.New("boom")

	_, err := f.wallet.Create(ctx, testPassphrase)
	require.NoError(t, err)

	_, err = f.wallet.Connect(ctx)
	require.Error(t, err)
	_, err = f.store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestWallet_SignTransaction(t *testing.T) {
	ctx := context.Background()
	var summaries []string
	f := newWalletFixture(t, WithConfirm(func(summary string) (bool, error) {
		summaries = append(summaries, summary)
		return true, nil
	}))

	address, err := f.wallet.Create(ctx, testPassphrase)
	require.NoError(t, err)

	tx := &api.TransactionRequest{
		Operation: "record_deposit",
		EntityID:  "0x01",
		Nonce:     "n-1",
		Params:    []byte(`{"amount":10}`),
	}
	require.NoError(t, f.wallet.SignTransaction(ctx, tx, "deposit 10"))

	assert.Equal(t, address, tx.Sender)
	assert.Equal(t, []string{"deposit 10"}, summaries)
	assert.NoError(t, crypto.VerifyBase64(address, tx.PublicKey, tx.Signature, tx.SigningBytes()))

	// Подпись привязана к параметрам
	tx.Params = []byte(`{"amount":11}`)
	assert.Error(t, crypto.VerifyBase64(address, tx.PublicKey, tx.Signature, tx.SigningBytes()))
}

func TestWallet_SignDeclinedByDefault(t *testing.T) {
	ctx := context.Background()
	f := newWalletFixture(t)

	_, err := f.wallet.Create(ctx, testPassphrase)
	require.NoError(t, err)

	tx := &api.TransactionRequest{Operation: "create_vault"}
	err = f.wallet.SignTransaction(ctx, tx, "create")
	assert.ErrorIs(t, err, ErrDeclined)
	assert.Empty(t, tx.Signature)
}

func TestWallet_SignAutoApprove(t *testing.T) {
	ctx := context.Background()
	f := newWalletFixture(t, WithAutoApprove())

	_, err := f.wallet.Create(ctx, testPassphrase)
	require.NoError(t, err)

	tx := &api.TransactionRequest{Operation: "create_vault"}
	require.NoError(t, f.wallet.SignTransaction(ctx, tx, "create"))
	assert.NotEmpty(t, tx.Signature)
}

func TestWallet_SignForeignSender(t *testing.T) {
	ctx := context.Background()
	f := newWalletFixture(t, WithAutoApprove())

	_, err := f.wallet.Create(ctx, testPassphrase)
	require.NoError(t, err)

	tx := &api.TransactionRequest{Operation: "create_vault", Sender: "0xsomeoneelse"}
	assert.Error(t, f.wallet.SignTransaction(ctx, tx, "create"))
}
