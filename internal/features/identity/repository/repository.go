// Package repository defines the storage contract shared by the remote and
// local identity store adapters.
package repository

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"metchera-backend/internal/features/identity/models"
)

// ErrNotFound is returned by GetByID and UpdateAutoDelete for a missing id.
// Delete is idempotent and never returns it.
var ErrNotFound = errors.New("identity not found")

// ErrStorageUnavailable wraps backend I/O failures. Callers decide the retry
// policy; the adapters never retry on their own.
var ErrStorageUnavailable = errors.New("identity storage unavailable")

// IdentityRepository is the adapter contract. Both backends must behave
// identically to callers: same logical record shape, same sparsity after a
// round trip, same not-found semantics.
type IdentityRepository interface {
	// Create persists the identity and returns its id. An identity arriving
	// without an id is assigned one.
	Create(ctx context.Context, identity *models.Identity) (string, error)

	// GetByID returns ErrNotFound for a missing id.
	GetByID(ctx context.Context, id string) (*models.Identity, error)

	// ListRecent returns at most n identities, newest first by creation time.
	ListRecent(ctx context.Context, n int) ([]*models.Identity, error)

	// Delete removes an identity. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error

	// UpdateAutoDelete replaces the auto-delete sub-record, recomputing
	// DeleteAt from the moment of the call, and returns the updated record.
	UpdateAutoDelete(ctx context.Context, id string, enabled bool, timeoutMinutes int) (*models.Identity, error)

	// FindExpired returns identities with auto-delete enabled whose DeleteAt
	// is at or before now.
	FindExpired(ctx context.Context, now time.Time) ([]*models.Identity, error)
}

// NewID produces a fresh unique identity id. uuid draws from crypto/rand; if
// that fails the fallback constructs a v4-shaped token from the weak source,
// which is acceptable for an opaque record key.
func NewID() string {
	if id, err := uuid.NewRandom(); err == nil {
		return id.String()
	}

	b := make([]byte, 16)
	for i := range b {
		b[i] = byte(rand.Intn(256))
	}
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}

// ApplyTimeDefaults substitutes documented defaults for timestamps that come
// back absent or corrupt from a backend. Reads never fail on a bad timestamp;
// the substitution is the only signal that the value was never set.
func ApplyTimeDefaults(identity *models.Identity, now time.Time) {
	if identity.CreatedAt.IsZero() {
		identity.CreatedAt = now
	}
	if identity.ExpiresAt.IsZero() {
		identity.ExpiresAt = now.Add(7 * 24 * time.Hour)
	}
	if identity.AutoDelete.DeleteAt.IsZero() {
		identity.AutoDelete.DeleteAt = now.Add(24 * time.Hour)
	}
	if identity.AutoDelete.TimeoutMinutes == 0 {
		identity.AutoDelete.TimeoutMinutes = 24 * 60
	}
	if identity.AvatarURL == "" {
		identity.AvatarURL = models.AvatarURL(identity.ID)
	}
}
