package ports

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"

	"global-crypto-wallet/internal/core/domain"

	"github.com/google/uuid"
)

// TransactionJournal is the durable, append-only mirror of a wallet's
// committed history. Rows are never updated or deleted.
type TransactionJournal interface {
	Append(ctx context.Context, walletID uuid.UUID, record domain.TransactionRecord) error
	// ListByWallet returns records in commit order (ascending sequence).
	ListByWallet(ctx context.Context, walletID uuid.UUID) ([]domain.TransactionRecord, error)
}
