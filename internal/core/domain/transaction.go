package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferStatus is the outcome of a transfer submission.
type TransferStatus string

const (
	TransferStatusAccepted TransferStatus = "ACCEPTED"
	TransferStatusFailed   TransferStatus = "FAILED"
)

// FailureKind classifies a remote-side failure. Remote failures never
// surface as errors to the caller, only as a result kind.
type FailureKind string

const (
	FailureNone              FailureKind = ""
	FailureRemoteUnavailable FailureKind = "REMOTE_UNAVAILABLE"
	FailureRemoteRejected    FailureKind = "REMOTE_REJECTED"
	FailureMalformedResponse FailureKind = "MALFORMED_RESPONSE"
)

// TransactionRecord is an immutable history entry for an accepted transfer.
type TransactionRecord struct {
	ID          uuid.UUID       `json:"id"`
	Sequence    int64           `json:"sequence"`
	Timestamp   time.Time       `json:"timestamp"`
	ToAddress   string          `json:"to"`
	Currency    string          `json:"currency"`
	Amount      decimal.Decimal `json:"amount"`
	ReferenceID string          `json:"reference_id,omitempty"`
}

// TransactionIntent is what the wallet submits to the ledger.
type TransactionIntent struct {
	From      string
	To        string
	Currency  string
	Amount    decimal.Decimal
	Timestamp time.Time
	Signature string // base64, empty when signing is disabled
}

// ISOTimestamp is the ISO-8601 form of Timestamp used on the wire and in signatures.
func (i TransactionIntent) ISOTimestamp() string {
	return i.Timestamp.UTC().Format(time.RFC3339Nano)
}

// TransferRequest holds the caller's input for an outgoing transfer.
type TransferRequest struct {
	ToAddress   string
	Currency    string
	Amount      decimal.Decimal
	Endpoint    string
	ReferenceID string // optional; deduplicates retries of one logical transfer
}

// TransferResult reports what happened to a transfer that passed validation.
type TransferResult struct {
	Status      TransferStatus     `json:"status"`
	Record      *TransactionRecord `json:"record,omitempty"`
	Duplicate   bool               `json:"duplicate"`
	FailureKind FailureKind        `json:"failure_kind,omitempty"`
	Err         error              `json:"-"`
}

// Accepted reports whether the ledger acknowledged the transfer.
func (r *TransferResult) Accepted() bool {
	return r != nil && r.Status == TransferStatusAccepted
}
