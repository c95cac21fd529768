package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"global-crypto-wallet/internal/core/domain"
	"global-crypto-wallet/internal/core/ports"
	"global-crypto-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const idempotencyTTL = 24 * time.Hour

var (
	currencyPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,32}$`)

	// walletNamespace scopes wallet IDs derived from public identities.
	walletNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:global-crypto-wallet:wallet"))
)

// WalletDeps holds the collaborators of a Wallet. Keys and Ledger are
// required; the rest are optional.
type WalletDeps struct {
	Keys       ports.KeyPairProvider
	Ledger     ports.LedgerClient
	Signer     ports.IntentSigner       // nil submits unsigned intents
	IdempCache ports.IdempotencyCache   // nil disables cross-restart deduplication
	Journal    ports.TransactionJournal // nil keeps history in memory only
	Identity   *domain.KeyPair          // nil generates a fresh identity
	Logger     zerolog.Logger
	Now        func() time.Time
}

// Wallet implements ports.WalletService. All state is guarded by mu, which
// is never held across a ledger call.
type Wallet struct {
	id        uuid.UUID
	identity  domain.KeyPair
	publicPEM string

	keys       ports.KeyPairProvider
	ledger     ports.LedgerClient
	signer     ports.IntentSigner
	idempCache ports.IdempotencyCache
	journal    ports.TransactionJournal
	log        zerolog.Logger
	now        func() time.Time

	mu          sync.Mutex
	balances    domain.Balances
	pending     domain.Balances // reserved by in-flight transfers
	history     []domain.TransactionRecord
	nextSeq     int64          // sequence of the next committed record
	byReference map[string]int // reference ID -> index into history
	inFlight    map[string]struct{}
}

// NewWallet creates a wallet with empty balances and history.
func NewWallet(deps WalletDeps) (*Wallet, error) {
	if deps.Keys == nil {
		return nil, fmt.Errorf("wallet requires a key provider")
	}
	if deps.Ledger == nil {
		return nil, fmt.Errorf("wallet requires a ledger client")
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	var identity domain.KeyPair
	if deps.Identity != nil {
		identity = *deps.Identity
	} else {
		kp, err := deps.Keys.Generate()
		if err != nil {
			return nil, apperror.ErrKeyFailure(err)
		}
		identity = kp
	}

	publicPEM, err := deps.Keys.SerializePublic(identity)
	if err != nil {
		return nil, apperror.ErrKeyFailure(err)
	}

	w := &Wallet{
		id:          uuid.NewSHA1(walletNamespace, []byte(publicPEM)),
		identity:    identity,
		publicPEM:   publicPEM,
		keys:        deps.Keys,
		ledger:      deps.Ledger,
		signer:      deps.Signer,
		idempCache:  deps.IdempCache,
		journal:     deps.Journal,
		now:         deps.Now,
		balances:    make(domain.Balances),
		pending:     make(domain.Balances),
		nextSeq:     1,
		byReference: make(map[string]int),
		inFlight:    make(map[string]struct{}),
	}
	w.log = deps.Logger.With().Str("wallet_id", w.id.String()).Logger()
	return w, nil
}

// ID returns the wallet ID, derived from the public identity.
func (w *Wallet) ID() uuid.UUID {
	return w.id
}

// Info returns the public description of the wallet.
func (w *Wallet) Info() domain.WalletInfo {
	return domain.WalletInfo{ID: w.id, PublicKey: w.publicPEM}
}

// ExportPublicIdentity returns the SubjectPublicKeyInfo PEM of the wallet key.
func (w *Wallet) ExportPublicIdentity() string {
	return w.publicPEM
}

// ExportPrivateIdentity returns the PKCS#8 PEM of the wallet key, encrypted
// when passphrase is non-empty.
func (w *Wallet) ExportPrivateIdentity(passphrase []byte) ([]byte, error) {
	out, err := w.keys.SerializePrivate(w.identity, passphrase)
	if err != nil {
		return nil, apperror.ErrKeyFailure(err)
	}
	w.log.Info().Bool("encrypted", len(passphrase) > 0).Msg("private identity exported")
	return out, nil
}

// GetBalance returns the balance for currency, zero if never seen.
func (w *Wallet) GetBalance(currency string) decimal.Decimal {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.balances.Get(currency)
}

// Balances returns a snapshot of all balances.
func (w *Wallet) Balances() domain.Balances {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.balances.Clone()
}

// GetTransactionHistory returns a copy of the history in commit order.
func (w *Wallet) GetTransactionHistory() []domain.TransactionRecord {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]domain.TransactionRecord, len(w.history))
	copy(out, w.history)
	return out
}

// SyncBalance overwrites local balances with those reported by the ledger
// for address. Currencies absent from the response are left untouched. A
// failed fetch leaves every balance as it was and yields a STALE result.
func (w *Wallet) SyncBalance(ctx context.Context, endpoint, address string) domain.SyncResult {
	result := domain.SyncResult{Status: domain.SyncStatusStale, Address: address, Updated: []string{}}

	if strings.TrimSpace(endpoint) == "" || strings.TrimSpace(address) == "" {
		result.Err = apperror.Validation("endpoint and address are required")
		w.log.Warn().Err(result.Err).Msg("balance sync skipped")
		return result
	}

	remote, err := w.ledger.FetchBalances(ctx, endpoint, address)
	if err != nil {
		result.FailureKind = failureKindOf(err)
		result.Err = err
		w.log.Warn().
			Err(err).
			Str("address", address).
			Str("failure_kind", string(result.FailureKind)).
			Msg("balance sync failed, keeping local balances")
		return result
	}

	var negative []string
	w.mu.Lock()
	for currency, amount := range remote {
		w.balances[currency] = amount
		result.Updated = append(result.Updated, currency)
		if amount.IsNegative() {
			negative = append(negative, currency)
		}
	}
	w.mu.Unlock()

	sort.Strings(result.Updated)
	result.Status = domain.SyncStatusSynced

	if len(negative) > 0 {
		sort.Strings(negative)
		w.log.Warn().Strs("currencies", negative).Str("address", address).Msg("ledger reported negative balances")
	}
	w.log.Debug().Str("address", address).Strs("updated", result.Updated).Msg("balances synced")
	return result
}

// Transfer submits an outgoing transfer to the ledger. Funds are checked and
// reserved before any network call; the debit and history record are
// committed together only after the ledger accepts. A ledger failure is
// reported through the result, never as an error.
func (w *Wallet) Transfer(ctx context.Context, req domain.TransferRequest) (*domain.TransferResult, error) {
	if err := validateTransfer(req); err != nil {
		return nil, err
	}

	var idempKey string
	if req.ReferenceID != "" {
		idempKey = domain.BuildTransferIdempotencyKey(w.id, req.ReferenceID)
		if cached := w.cachedTransfer(ctx, idempKey); cached != nil {
			return cached, nil
		}
	}

	if prior, err := w.reserve(req); err != nil || prior != nil {
		return prior, err
	}

	intent := domain.TransactionIntent{
		From:      w.publicPEM,
		To:        req.ToAddress,
		Currency:  req.Currency,
		Amount:    req.Amount,
		Timestamp: w.now().UTC(),
	}
	if w.signer != nil {
		sig, err := w.signer.Sign(w.identity, intent)
		if err != nil {
			w.mu.Lock()
			w.releaseLocked(req)
			w.mu.Unlock()
			return nil, apperror.ErrKeyFailure(err)
		}
		intent.Signature = sig
	}

	submitErr := w.ledger.SubmitTransaction(ctx, req.Endpoint, intent)

	w.mu.Lock()
	w.releaseLocked(req)
	if submitErr != nil {
		w.mu.Unlock()
		kind := failureKindOf(submitErr)
		w.log.Warn().
			Err(submitErr).
			Str("to", req.ToAddress).
			Str("currency", req.Currency).
			Str("amount", req.Amount.String()).
			Str("failure_kind", string(kind)).
			Msg("transfer failed, balances unchanged")
		return &domain.TransferResult{Status: domain.TransferStatusFailed, FailureKind: kind, Err: submitErr}, nil
	}
	record := w.commitLocked(req)
	w.mu.Unlock()

	result := &domain.TransferResult{Status: domain.TransferStatusAccepted, Record: &record}
	w.afterCommit(context.WithoutCancel(ctx), idempKey, record, result)

	w.log.Info().
		Str("tx_id", record.ID.String()).
		Int64("sequence", record.Sequence).
		Str("to", record.ToAddress).
		Str("currency", record.Currency).
		Str("amount", record.Amount.String()).
		Msg("transfer accepted")

	return result, nil
}

// LoadHistory restores history from the journal into an empty wallet.
// Balances are not touched; they come from the ledger.
func (w *Wallet) LoadHistory(ctx context.Context) error {
	if w.journal == nil {
		return nil
	}
	records, err := w.journal.ListByWallet(ctx, w.id)
	if err != nil {
		return fmt.Errorf("loading journal: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.history) > 0 {
		return fmt.Errorf("wallet history already populated")
	}
	w.history = append(w.history, records...)
	for i, r := range w.history {
		if r.ReferenceID != "" {
			w.byReference[r.ReferenceID] = i
		}
		// The journal may have gaps where an Append failed.
		if r.Sequence >= w.nextSeq {
			w.nextSeq = r.Sequence + 1
		}
	}
	w.log.Info().Int("records", len(records)).Msg("history restored from journal")
	return nil
}

// reserve checks funds and marks req in flight. A non-nil result means the
// reference was already committed and that prior outcome is returned.
func (w *Wallet) reserve(req domain.TransferRequest) (*domain.TransferResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if req.ReferenceID != "" {
		if i, ok := w.byReference[req.ReferenceID]; ok {
			record := w.history[i]
			return &domain.TransferResult{Status: domain.TransferStatusAccepted, Record: &record, Duplicate: true}, nil
		}
		if _, ok := w.inFlight[req.ReferenceID]; ok {
			return nil, apperror.ErrTransferInProgress()
		}
	}

	available := w.balances.Get(req.Currency).Sub(w.pending.Get(req.Currency))
	if available.LessThan(req.Amount) {
		return nil, apperror.ErrInsufficientBalance()
	}

	w.pending[req.Currency] = w.pending.Get(req.Currency).Add(req.Amount)
	if req.ReferenceID != "" {
		w.inFlight[req.ReferenceID] = struct{}{}
	}
	return nil, nil
}

func (w *Wallet) releaseLocked(req domain.TransferRequest) {
	left := w.pending.Get(req.Currency).Sub(req.Amount)
	if left.IsPositive() {
		w.pending[req.Currency] = left
	} else {
		delete(w.pending, req.Currency)
	}
	if req.ReferenceID != "" {
		delete(w.inFlight, req.ReferenceID)
	}
}

// commitLocked debits the balance and appends the record in one step.
//
// A sync that lands while the transfer is in flight may already reflect the
// ledger's debit, in which case the local debit counts it twice. The balance
// is then clamped to zero and the shortfall is logged at error level for
// reconciliation; the next sync restores the ledger's figure.
func (w *Wallet) commitLocked(req domain.TransferRequest) domain.TransactionRecord {
	balance := w.balances.Get(req.Currency).Sub(req.Amount)
	if balance.IsNegative() {
		w.log.Error().
			Str("currency", req.Currency).
			Str("amount", req.Amount.String()).
			Str("shortfall", balance.Neg().String()).
			Msg("accepted transfer exceeds synced balance, clamping to zero; reconcile with ledger")
		balance = decimal.Zero
	}
	w.balances[req.Currency] = balance

	return w.recordTransaction(req)
}

// recordTransaction appends to history. Callers hold mu.
func (w *Wallet) recordTransaction(req domain.TransferRequest) domain.TransactionRecord {
	record := domain.TransactionRecord{
		ID:          uuid.New(),
		Sequence:    w.nextSeq,
		Timestamp:   w.now().UTC(),
		ToAddress:   req.ToAddress,
		Currency:    req.Currency,
		Amount:      req.Amount,
		ReferenceID: req.ReferenceID,
	}
	w.nextSeq++
	w.history = append(w.history, record)
	if req.ReferenceID != "" {
		w.byReference[req.ReferenceID] = len(w.history) - 1
	}
	return record
}

// afterCommit runs the best-effort side effects of an accepted transfer.
func (w *Wallet) afterCommit(ctx context.Context, idempKey string, record domain.TransactionRecord, result *domain.TransferResult) {
	if w.journal != nil {
		if err := w.journal.Append(ctx, w.id, record); err != nil {
			w.log.Error().Err(err).Str("tx_id", record.ID.String()).Msg("failed to journal transaction")
		}
	}

	if idempKey == "" || w.idempCache == nil {
		return
	}
	payload, err := json.Marshal(result)
	if err != nil {
		w.log.Warn().Err(err).Str("key", idempKey).Msg("failed to encode transfer result for cache")
		return
	}
	if err := w.idempCache.Set(ctx, idempKey, payload, idempotencyTTL); err != nil {
		w.log.Warn().Err(err).Str("key", idempKey).Msg("failed to cache idempotency in redis")
	}
}

// cachedTransfer returns a previously accepted result for idempKey, or nil.
// Cache errors fall through to the in-memory check.
func (w *Wallet) cachedTransfer(ctx context.Context, idempKey string) *domain.TransferResult {
	if w.idempCache == nil {
		return nil
	}
	cached, err := w.idempCache.Get(ctx, idempKey)
	if err != nil {
		w.log.Warn().Err(err).Str("key", idempKey).Msg("redis idempotency check failed, falling through to memory")
		return nil
	}
	if cached == nil {
		return nil
	}

	var result domain.TransferResult
	if err := json.Unmarshal(cached, &result); err != nil || result.Record == nil {
		w.log.Warn().Err(err).Str("key", idempKey).Msg("discarding unreadable cached transfer")
		return nil
	}
	result.Duplicate = true
	return &result
}

func validateTransfer(req domain.TransferRequest) error {
	if !req.Amount.IsPositive() {
		return apperror.ErrInvalidAmount()
	}
	if !currencyPattern.MatchString(req.Currency) {
		return apperror.ErrInvalidCurrency(req.Currency)
	}
	if strings.TrimSpace(req.ToAddress) == "" {
		return apperror.Validation("destination address is required")
	}
	if strings.TrimSpace(req.Endpoint) == "" {
		return apperror.Validation("ledger endpoint is required")
	}
	return nil
}

// failureKindOf maps a ledger error to the result kind reported to callers.
func failureKindOf(err error) domain.FailureKind {
	switch apperror.CodeOf(err) {
	case apperror.CodeLedgerRejected:
		return domain.FailureRemoteRejected
	case apperror.CodeLedgerMalformed:
		return domain.FailureMalformedResponse
	default:
		return domain.FailureRemoteUnavailable
	}
}
