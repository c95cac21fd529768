package domain

import "github.com/google/uuid"

// BuildTransferIdempotencyKey constructs the key format for transfer deduplication.
func BuildTransferIdempotencyKey(walletID uuid.UUID, referenceID string) string {
	return walletID.String() + ":transfer:" + referenceID
}
