package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// HealthChecker reports database connectivity for the readiness endpoint.
type HealthChecker struct {
	db *gorm.DB
}

// NewHealthChecker creates a health checker for the given database handle.
func NewHealthChecker(db *gorm.DB) *HealthChecker {
	return &HealthChecker{db: db}
}

// Name identifies this checker in readiness output.
func (h *HealthChecker) Name() string {
	return "database"
}

// HealthCheck pings the underlying connection pool.
func (h *HealthChecker) HealthCheck(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return fmt.Errorf("acquiring connection pool: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
