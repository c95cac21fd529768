package dto

import (
	"encoding/json"
	"time"

	"global-crypto-wallet/internal/core/domain"
	"global-crypto-wallet/pkg/apperror"

	"github.com/shopspring/decimal"
)

// TokenRequest is the request body for operator token issuance.
type TokenRequest struct {
	OperatorKey string `json:"operator_key" binding:"required"`
}

// TokenResponse is the response body for a successful token issuance.
type TokenResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// ExportRequest is the request body for private identity export. The API
// only ever returns encrypted keys.
type ExportRequest struct {
	Passphrase string `json:"passphrase" binding:"required,min=12,max=1024"`
}

// ExportResponse carries an encrypted private key PEM.
type ExportResponse struct {
	PrivateKey string `json:"private_key"`
}

// SyncRequest is the optional request body for a balance sync. Empty fields
// fall back to the daemon's configured ledger and address.
//
// Addresses and endpoints are opaque to the wallet and skip SanitizeStruct.
type SyncRequest struct {
	Address  string `json:"address,omitempty" binding:"omitempty,max=256" sanitize:"-"`
	Endpoint string `json:"endpoint,omitempty" binding:"omitempty,safe_url" sanitize:"-"`
}

// TransferRequest is the request body for an outgoing transfer. To, Endpoint
// and ReferenceID reach the ledger exactly as sent.
type TransferRequest struct {
	To          string      `json:"to" binding:"required,max=256" sanitize:"-"`
	Currency    string      `json:"currency" binding:"required,currency"`
	Amount      json.Number `json:"amount" binding:"required"`
	ReferenceID string      `json:"reference_id,omitempty" binding:"omitempty,max=100,safe_id" sanitize:"-"`
	Endpoint    string      `json:"endpoint,omitempty" binding:"omitempty,safe_url" sanitize:"-"`
}

// ParseAmount converts the wire amount into an exact decimal.
func (r TransferRequest) ParseAmount() (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(r.Amount.String())
	if err != nil {
		return decimal.Zero, apperror.ErrInvalidAmount()
	}
	return amount, nil
}

// TransactionResponse is the wire form of a history record.
type TransactionResponse struct {
	ID          string `json:"id"`
	Sequence    int64  `json:"sequence"`
	To          string `json:"to"`
	Currency    string `json:"currency"`
	Amount      string `json:"amount"`
	ReferenceID string `json:"reference_id,omitempty"`
	Timestamp   string `json:"timestamp"`
}

// NewTransactionResponse maps a domain record to its wire form.
func NewTransactionResponse(r domain.TransactionRecord) TransactionResponse {
	return TransactionResponse{
		ID:          r.ID.String(),
		Sequence:    r.Sequence,
		To:          r.ToAddress,
		Currency:    r.Currency,
		Amount:      r.Amount.String(),
		ReferenceID: r.ReferenceID,
		Timestamp:   r.Timestamp.UTC().Format(time.RFC3339Nano),
	}
}

// TransferResponse is the response body for a transfer that passed validation.
type TransferResponse struct {
	Status      string               `json:"status"`
	Duplicate   bool                 `json:"duplicate"`
	FailureKind string               `json:"failure_kind,omitempty"`
	Error       string               `json:"error,omitempty"`
	Record      *TransactionResponse `json:"record,omitempty"`
}

// NewTransferResponse maps a domain transfer result to its wire form.
func NewTransferResponse(res *domain.TransferResult) TransferResponse {
	out := TransferResponse{
		Status:      string(res.Status),
		Duplicate:   res.Duplicate,
		FailureKind: string(res.FailureKind),
	}
	if res.Err != nil {
		out.Error = apperror.CodeOf(res.Err)
	}
	if res.Record != nil {
		rec := NewTransactionResponse(*res.Record)
		out.Record = &rec
	}
	return out
}

// SyncResponse is the response body for a balance sync.
type SyncResponse struct {
	Status      string   `json:"status"`
	Address     string   `json:"address"`
	Updated     []string `json:"updated"`
	FailureKind string   `json:"failure_kind,omitempty"`
}

// BalancesResponse lists every known balance.
type BalancesResponse struct {
	Balances map[string]string `json:"balances"`
}

// NewBalancesResponse renders balances as exact decimal strings.
func NewBalancesResponse(b domain.Balances) BalancesResponse {
	out := make(map[string]string, len(b))
	for currency, amount := range b {
		out[currency] = amount.String()
	}
	return BalancesResponse{Balances: out}
}

// BalanceResponse is the response for a single-currency balance query.
type BalanceResponse struct {
	Currency string `json:"currency"`
	Balance  string `json:"balance"`
}

// TransactionListResponse wraps the wallet history.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Total int                   `json:"total"`
}
