package storage

import (
	"context"
	"testing"
)

func TestHealthChecker(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	checker := NewHealthChecker(db)

	if got := checker.Name(); got != "database" {
		t.Errorf("Name() = %q, want %q", got, "database")
	}
	if err := checker.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}
}
