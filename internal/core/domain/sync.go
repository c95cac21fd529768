package domain

// SyncStatus is the outcome of a balance synchronization.
type SyncStatus string

const (
	SyncStatusSynced SyncStatus = "SYNCED"
	// SyncStatusStale means the remote call failed and local balances were left as they were.
	SyncStatusStale SyncStatus = "STALE"
)

// SyncResult reports a balance synchronization.
type SyncResult struct {
	Status      SyncStatus  `json:"status"`
	Address     string      `json:"address"`
	Updated     []string    `json:"updated"` // currencies overwritten from the remote response
	FailureKind FailureKind `json:"failure_kind,omitempty"`
	Err         error       `json:"-"`
}

// Synced reports whether balances were refreshed.
func (r SyncResult) Synced() bool {
	return r.Status == SyncStatusSynced
}
