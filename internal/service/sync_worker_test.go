package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"global-crypto-wallet/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSyncer struct {
	calls  atomic.Int32
	synced bool
}

func (s *countingSyncer) SyncBalance(_ context.Context, endpoint, address string) domain.SyncResult {
	s.calls.Add(1)
	if s.synced {
		return domain.SyncResult{Status: domain.SyncStatusSynced, Address: address}
	}
	return domain.SyncResult{Status: domain.SyncStatusStale, Address: address}
}

func TestSyncWorker_RunsUntilCancelled(t *testing.T) {
	syncer := &countingSyncer{synced: true}
	worker := NewSyncWorker(syncer, testEndpoint, "wallet1-address", 5*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	require.Eventually(t, func() bool { return syncer.calls.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}

	stopped := syncer.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, syncer.calls.Load(), "no syncs after stop")
}

func TestSyncWorker_KeepsRunningWhenStale(t *testing.T) {
	syncer := &countingSyncer{}
	worker := NewSyncWorker(syncer, testEndpoint, "addr", 5*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	require.Eventually(t, func() bool { return syncer.calls.Load() >= 3 }, time.Second, time.Millisecond)
}

func TestSyncWorker_Disabled(t *testing.T) {
	syncer := &countingSyncer{}

	require.NoError(t, NewSyncWorker(syncer, testEndpoint, "addr", 0, zerolog.Nop()).Run(context.Background()))
	require.NoError(t, NewSyncWorker(syncer, testEndpoint, "", time.Second, zerolog.Nop()).Run(context.Background()))
	assert.Equal(t, int32(0), syncer.calls.Load())
}
