package postgres

import (
	"context"
	"fmt"

	"global-crypto-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// journalSchema creates the append-only wallet journal.
const journalSchema = `CREATE TABLE IF NOT EXISTS wallet_transactions (
	id           UUID PRIMARY KEY,
	wallet_id    UUID NOT NULL,
	sequence     BIGINT NOT NULL,
	to_address   TEXT NOT NULL,
	currency     TEXT NOT NULL,
	amount       NUMERIC NOT NULL CHECK (amount > 0),
	reference_id TEXT,
	created_at   TIMESTAMPTZ NOT NULL,
	UNIQUE (wallet_id, sequence)
)`

// TransactionJournal implements ports.TransactionJournal.
type TransactionJournal struct {
	pool Pool
}

// NewTransactionJournal creates a new TransactionJournal.
func NewTransactionJournal(pool Pool) *TransactionJournal {
	return &TransactionJournal{pool: pool}
}

// EnsureSchema creates the journal table if it does not exist.
func (r *TransactionJournal) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, journalSchema); err != nil {
		return fmt.Errorf("create wallet_transactions: %w", err)
	}
	return nil
}

// Append inserts a committed record. Re-appending the same record ID is a no-op.
func (r *TransactionJournal) Append(ctx context.Context, walletID uuid.UUID, rec domain.TransactionRecord) error {
	query := `INSERT INTO wallet_transactions (id, wallet_id, sequence, to_address, currency, amount, reference_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6::numeric, $7, $8)
		ON CONFLICT (id) DO NOTHING`

	var referenceID *string
	if rec.ReferenceID != "" {
		referenceID = &rec.ReferenceID
	}

	_, err := r.pool.Exec(ctx, query,
		rec.ID, walletID, rec.Sequence, rec.ToAddress, rec.Currency,
		rec.Amount.String(), referenceID, rec.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert wallet transaction: %w", err)
	}
	return nil
}

// ListByWallet returns a wallet's records ordered by sequence.
func (r *TransactionJournal) ListByWallet(ctx context.Context, walletID uuid.UUID) ([]domain.TransactionRecord, error) {
	query := `SELECT id, sequence, to_address, currency, amount::text, reference_id, created_at
		FROM wallet_transactions WHERE wallet_id = $1 ORDER BY sequence ASC`

	rows, err := r.pool.Query(ctx, query, walletID)
	if err != nil {
		return nil, fmt.Errorf("list wallet transactions: %w", err)
	}
	defer rows.Close()

	records := []domain.TransactionRecord{}
	for rows.Next() {
		var (
			rec         domain.TransactionRecord
			amount      string
			referenceID *string
		)
		if err := rows.Scan(&rec.ID, &rec.Sequence, &rec.ToAddress, &rec.Currency, &amount, &referenceID, &rec.Timestamp); err != nil {
			return nil, fmt.Errorf("scan wallet transaction row: %w", err)
		}
		rec.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("parse amount of %s: %w", rec.ID, err)
		}
		if referenceID != nil {
			rec.ReferenceID = *referenceID
		}
		rec.Timestamp = rec.Timestamp.UTC()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallet transaction rows: %w", err)
	}
	return records, nil
}
