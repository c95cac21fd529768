package dto

import (
	"encoding/json"
	"testing"
	"time"

	"global-crypto-wallet/internal/core/domain"
	"global-crypto-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := TransferRequest{Currency: " ETH "}
	SanitizeStruct(&req)

	assert.Equal(t, "ETH", req.Currency)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	req := struct{ Memo string }{Memo: "memo<script>alert('x')</script>"}
	SanitizeStruct(&req)

	assert.Contains(t, req.Memo, "&lt;script&gt;")
	assert.NotContains(t, req.Memo, "<script>")
}

func TestSanitizeStruct_LeavesAddressesAndEndpointsVerbatim(t *testing.T) {
	transfer := TransferRequest{
		To:          " addr<1>&'x ",
		ReferenceID: "TX-001",
		Endpoint:    "https://ledger.example.com/api?net=main&v=2",
	}
	SanitizeStruct(&transfer)

	assert.Equal(t, " addr<1>&'x ", transfer.To)
	assert.Equal(t, "TX-001", transfer.ReferenceID)
	assert.Equal(t, "https://ledger.example.com/api?net=main&v=2", transfer.Endpoint)

	sync := SyncRequest{Address: "addr&<2>", Endpoint: "https://l.example.com/?a=1&b=2"}
	SanitizeStruct(&sync)

	assert.Equal(t, "addr&<2>", sync.Address)
	assert.Equal(t, "https://l.example.com/?a=1&b=2", sync.Endpoint)
}

func TestSanitizeStruct_HandlesPointerAndSkipTag(t *testing.T) {
	note := "  <b>hi</b>  "
	req := struct {
		Note   *string
		Secret string `sanitize:"-"`
		Empty  *string
	}{Note: &note, Secret: "  pass <word>  "}
	SanitizeStruct(&req)

	assert.Equal(t, "&lt;b&gt;hi&lt;/b&gt;", *req.Note)
	assert.Equal(t, "  pass <word>  ", req.Secret)
	assert.Nil(t, req.Empty)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

// --- Custom Validator tests ---

func TestSafeID_Valid(t *testing.T) {
	cases := []string{"ref-001", "REF_002", "a.b.c", "simple123", "ABC-def_GHI.123"}
	for _, tc := range cases {
		assert.True(t, safeStringRe.MatchString(tc), "expected valid: %s", tc)
	}
}

func TestSafeID_Invalid(t *testing.T) {
	cases := []string{
		"ref 001",  // space
		"ref<001>", // angle brackets
		"ref;DROP", // semicolon
		"",         // empty
		"ref\n001", // newline
	}
	for _, tc := range cases {
		assert.False(t, safeStringRe.MatchString(tc), "expected invalid: %s", tc)
	}
}

func TestCurrency(t *testing.T) {
	for _, tc := range []string{"ETH", "btc", "USDT.e", "wrapped-eth", "A"} {
		assert.True(t, currencyRe.MatchString(tc), "expected valid: %s", tc)
	}
	for _, tc := range []string{"", "E TH", "ETH/USD", "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456"} {
		assert.False(t, currencyRe.MatchString(tc), "expected invalid: %s", tc)
	}
}

// --- Mapping tests ---

func TestTransferRequest_ParseAmount(t *testing.T) {
	var req TransferRequest
	require.NoError(t, json.Unmarshal([]byte(`{"to":"b","currency":"BTC","amount":0.00012}`), &req))

	amount, err := req.ParseAmount()
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("0.00012").Equal(amount))

	require.NoError(t, json.Unmarshal([]byte(`{"amount":"1.5"}`), &req))
	amount, err = req.ParseAmount()
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1.5").Equal(amount))

	_, err = TransferRequest{Amount: "abc"}.ParseAmount()
	assert.Equal(t, apperror.CodeInvalidAmount, apperror.CodeOf(err))
}

func TestNewTransferResponse(t *testing.T) {
	rec := domain.TransactionRecord{
		ID:        uuid.New(),
		Sequence:  3,
		Timestamp: time.Date(2024, 3, 1, 10, 4, 5, 0, time.UTC),
		ToAddress: "b",
		Currency:  "ETH",
		Amount:    decimal.RequireFromString("1.50"),
	}

	out := NewTransferResponse(&domain.TransferResult{Status: domain.TransferStatusAccepted, Record: &rec})
	assert.Equal(t, "ACCEPTED", out.Status)
	require.NotNil(t, out.Record)
	assert.Equal(t, "1.5", out.Record.Amount)
	assert.Equal(t, "2024-03-01T10:04:05Z", out.Record.Timestamp)

	failed := NewTransferResponse(&domain.TransferResult{
		Status:      domain.TransferStatusFailed,
		FailureKind: domain.FailureRemoteRejected,
		Err:         apperror.ErrLedgerRejected(400),
	})
	assert.Nil(t, failed.Record)
	assert.Equal(t, "REMOTE_REJECTED", failed.FailureKind)
	assert.Equal(t, apperror.CodeLedgerRejected, failed.Error)
}

func TestNewBalancesResponse(t *testing.T) {
	out := NewBalancesResponse(domain.Balances{"ETH": decimal.RequireFromString("4.000")})
	assert.Equal(t, map[string]string{"ETH": "4"}, out.Balances)
}
