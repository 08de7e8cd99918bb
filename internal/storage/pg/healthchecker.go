package pg

import (
	"context"
	"log/slog"
	"time"
)

const healthTimeout = 2 * time.Second

// HealthChecker pings the pool with a short deadline so a stalled database
// fails the probe instead of hanging it.
type HealthChecker struct {
	pool *ConnectionPool
}

func NewHealthChecker(pool *ConnectionPool) *HealthChecker {
	return &HealthChecker{pool: pool}
}

func (hc *HealthChecker) Healthy(ctx context.Context) bool {
	if hc.pool == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	if err := hc.pool.Ping(ctx); err != nil {
		stat := hc.pool.conn.Stat()
		slog.Warn("Postgres health check failed",
			"error", err,
			"total_conns", stat.TotalConns(),
			"idle_conns", stat.IdleConns(),
		)
		return false
	}
	return true
}
