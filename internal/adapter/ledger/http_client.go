package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"global-crypto-wallet/internal/core/domain"
	"global-crypto-wallet/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// maxBodyBytes bounds every ledger response read.
const maxBodyBytes = 1 << 20

// HTTPClient implements ports.LedgerClient over JSON/HTTP.
type HTTPClient struct {
	http *http.Client
	log  zerolog.Logger
}

// NewHTTPClient creates a ledger client whose requests time out after timeout.
func NewHTTPClient(timeout time.Duration, log zerolog.Logger) *HTTPClient {
	return &HTTPClient{
		http: &http.Client{Timeout: timeout},
		log:  log,
	}
}

// transactionBody is the wire form of domain.TransactionIntent.
type transactionBody struct {
	From      string      `json:"from"`
	To        string      `json:"to"`
	Currency  string      `json:"currency"`
	Amount    json.Number `json:"amount"`
	Timestamp string      `json:"timestamp"`
	Signature string      `json:"signature,omitempty"`
}

// FetchBalances calls GET {endpoint}/address/{address}/balance and decodes a
// JSON object of currency to amount.
func (c *HTTPClient) FetchBalances(ctx context.Context, endpoint, address string) (domain.Balances, error) {
	target := baseURL(endpoint) + "/address/" + url.PathEscape(address) + "/balance"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, apperror.ErrLedgerUnavailable(err)
	}
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var raw map[string]json.Number
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, apperror.ErrLedgerMalformed(err)
	}
	if raw == nil {
		return nil, apperror.ErrLedgerMalformed(fmt.Errorf("balance response is not an object"))
	}

	balances := make(domain.Balances, len(raw))
	for currency, n := range raw {
		amount, err := decimal.NewFromString(n.String())
		if err != nil {
			return nil, apperror.ErrLedgerMalformed(fmt.Errorf("balance for %q: %w", currency, err))
		}
		balances[currency] = amount
	}
	return balances, nil
}

// SubmitTransaction calls POST {endpoint}/transactions. Any 2xx is acceptance;
// the response body is not interpreted.
func (c *HTTPClient) SubmitTransaction(ctx context.Context, endpoint string, intent domain.TransactionIntent) error {
	payload, err := json.Marshal(transactionBody{
		From:      intent.From,
		To:        intent.To,
		Currency:  intent.Currency,
		Amount:    json.Number(intent.Amount.String()),
		Timestamp: intent.ISOTimestamp(),
		Signature: intent.Signature,
	})
	if err != nil {
		return apperror.ErrLedgerUnavailable(fmt.Errorf("encoding transaction: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL(endpoint)+"/transactions", bytes.NewReader(payload))
	if err != nil {
		return apperror.ErrLedgerUnavailable(err)
	}
	req.Header.Set("Content-Type", "application/json")

	_, err = c.do(req)
	return err
}

func (c *HTTPClient) do(req *http.Request) ([]byte, error) {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperror.ErrLedgerUnavailable(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))

	c.log.Debug().
		Str("method", req.Method).
		Str("url", req.URL.Redacted()).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("Ledger request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperror.ErrLedgerRejected(resp.StatusCode)
	}
	if err != nil {
		return nil, apperror.ErrLedgerMalformed(fmt.Errorf("reading body: %w", err))
	}
	return body, nil
}

func baseURL(endpoint string) string {
	return strings.TrimRight(strings.TrimSpace(endpoint), "/")
}
