package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"crypto"
	"time"

	"global-crypto-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// KeyPairProvider generates and serializes wallet identities.
type KeyPairProvider interface {
	Generate() (domain.KeyPair, error)
	// SerializePublic returns the SubjectPublicKeyInfo PEM of the public half.
	SerializePublic(kp domain.KeyPair) (string, error)
	// SerializePrivate returns PKCS#8 PEM, encrypted when passphrase is non-empty.
	SerializePrivate(kp domain.KeyPair, passphrase []byte) ([]byte, error)
	ParsePrivate(data []byte, passphrase []byte) (domain.KeyPair, error)
}

// IntentSigner signs transaction intents with the wallet identity.
type IntentSigner interface {
	Sign(kp domain.KeyPair, intent domain.TransactionIntent) (string, error)
	Verify(pub crypto.PublicKey, intent domain.TransactionIntent, signature string) bool
}

// LedgerClient talks to the remote balance/transaction authority.
// Failures are *apperror.AppError values with LED_* codes.
type LedgerClient interface {
	FetchBalances(ctx context.Context, endpoint, address string) (domain.Balances, error)
	// SubmitTransaction returns nil only when the ledger answered 2xx.
	SubmitTransaction(ctx context.Context, endpoint string, intent domain.TransactionIntent) error
}

// IdempotencyCache is the Redis-layer transfer deduplication store.
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached result JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// TokenService handles operator JWT operations.
type TokenService interface {
	Generate(walletID uuid.UUID, subject string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	WalletID uuid.UUID
	Subject  string
}

// --- Service Ports (Business Logic) ---

// WalletService is the public surface of a wallet.
type WalletService interface {
	Info() domain.WalletInfo
	ExportPublicIdentity() string
	ExportPrivateIdentity(passphrase []byte) ([]byte, error)
	GetBalance(currency string) decimal.Decimal
	Balances() domain.Balances
	SyncBalance(ctx context.Context, endpoint, address string) domain.SyncResult
	Transfer(ctx context.Context, req domain.TransferRequest) (*domain.TransferResult, error)
	GetTransactionHistory() []domain.TransactionRecord
}
