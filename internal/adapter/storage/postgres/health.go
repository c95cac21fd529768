package postgres

import "context"

// HealthCheck reports whether the transaction journal is readable. A reachable
// server without the journal table counts as unhealthy.
type HealthCheck struct {
	pool Pool
}

// NewHealthCheck wraps the journal pool.
func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

// Ping touches the journal table.
func (h *HealthCheck) Ping(ctx context.Context) error {
	_, err := h.pool.Exec(ctx, "SELECT 1 FROM wallet_transactions LIMIT 1")
	return err
}

// Name is the key this check reports under in /health.
func (h *HealthCheck) Name() string {
	return "journal"
}
