package service

import (
	"context"
	"time"

	"global-crypto-wallet/internal/core/domain"

	"github.com/rs/zerolog"
)

// BalanceSyncer is the part of a wallet the sync worker drives.
type BalanceSyncer interface {
	SyncBalance(ctx context.Context, endpoint, address string) domain.SyncResult
}

// SyncWorker refreshes wallet balances from the ledger on a fixed interval.
type SyncWorker struct {
	wallet   BalanceSyncer
	endpoint string
	address  string
	interval time.Duration
	log      zerolog.Logger
}

// NewSyncWorker creates a worker. An interval <= 0 makes Run a no-op.
func NewSyncWorker(wallet BalanceSyncer, endpoint, address string, interval time.Duration, log zerolog.Logger) *SyncWorker {
	return &SyncWorker{
		wallet:   wallet,
		endpoint: endpoint,
		address:  address,
		interval: interval,
		log:      log,
	}
}

// Run syncs once immediately and then on every tick until ctx is done.
func (w *SyncWorker) Run(ctx context.Context) error {
	if w.interval <= 0 || w.address == "" {
		w.log.Info().Msg("background balance sync disabled")
		return nil
	}

	w.log.Info().
		Str("address", w.address).
		Dur("interval", w.interval).
		Msg("background balance sync started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	stale := 0
	for {
		res := w.wallet.SyncBalance(ctx, w.endpoint, w.address)
		if res.Synced() {
			if stale > 0 {
				w.log.Info().Int("stale_rounds", stale).Msg("balance sync recovered")
			}
			stale = 0
		} else {
			stale++
		}

		select {
		case <-ctx.Done():
			w.log.Info().Msg("background balance sync stopped")
			return nil
		case <-ticker.C:
		}
	}
}
