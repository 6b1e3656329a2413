package service

import (
	"context"

	"metchera-backend/internal/features/identity/models"
)

// IdentityService is the single entry point used by delivery and by the
// expiration scheduler.
type IdentityService interface {
	// CreateIdentity generates a fresh identity and persists it. docType may
	// be empty (random choice); autoDeleteMinutes > 0 enables the rolling
	// auto-delete clock.
	CreateIdentity(ctx context.Context, docType models.DocumentType, autoDeleteMinutes int) (*models.Identity, error)

	GetIdentity(ctx context.Context, id string) (*models.Identity, error)

	ListRecent(ctx context.Context, count int) ([]*models.Identity, error)

	// DeleteIdentity is idempotent; a missing id is not an error.
	DeleteIdentity(ctx context.Context, id string) error

	UpdateAutoDelete(ctx context.Context, id string, enabled bool, timeoutMinutes int) (*models.Identity, error)

	// DeleteExpired removes every identity whose auto-delete clock has
	// elapsed and returns the number successfully deleted. Per-record
	// failures are isolated; the sweep itself never fails.
	DeleteExpired(ctx context.Context) (int, error)
}
