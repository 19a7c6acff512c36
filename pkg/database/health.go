package database

import (
	"context"
	"database/sql"
	"time"
)

// HealthStatus reports reachability plus the pool counters worth alerting on.
// JSON keys are camelCase to match the rest of the API surface.
type HealthStatus struct {
	Status         string `json:"status"`
	ResponseTimeMs int64  `json:"responseTimeMs"`
	OpenConns      int    `json:"openConns"`
	InUseConns     int    `json:"inUseConns"`
	WaitCount      int64  `json:"waitCount"`
}

// Health pings the database and snapshots pool statistics. On ping failure
// the returned status is "unhealthy" and the error is non-nil.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()
	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:         "unhealthy",
			ResponseTimeMs: time.Since(start).Milliseconds(),
		}, err
	}

	stats := db.Stats()
	return &HealthStatus{
		Status:         "healthy",
		ResponseTimeMs: time.Since(start).Milliseconds(),
		OpenConns:      stats.OpenConnections,
		InUseConns:     stats.InUse,
		WaitCount:      stats.WaitCount,
	}, nil
}
