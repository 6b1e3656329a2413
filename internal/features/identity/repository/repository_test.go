package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"metchera-backend/internal/features/identity/models"
)

func TestNewIDShapeAndUniqueness(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, id)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestApplyTimeDefaults(t *testing.T) {
	now := time.Now()

	identity := &models.Identity{ID: "abc"}
	ApplyTimeDefaults(identity, now)

	assert.True(t, identity.CreatedAt.Equal(now))
	assert.True(t, identity.ExpiresAt.Equal(now.Add(7*24*time.Hour)))
	assert.True(t, identity.AutoDelete.DeleteAt.Equal(now.Add(24*time.Hour)))
	assert.Equal(t, 24*60, identity.AutoDelete.TimeoutMinutes)
	assert.Equal(t, models.AvatarURL("abc"), identity.AvatarURL)
}

func TestApplyTimeDefaultsKeepsSetValues(t *testing.T) {
	now := time.Now()
	created := now.Add(-time.Hour)
	deleteAt := now.Add(time.Minute)

	identity := &models.Identity{
		ID:        "abc",
		CreatedAt: created,
		ExpiresAt: created.Add(7 * 24 * time.Hour),
		AutoDelete: models.AutoDelete{
			Enabled:        true,
			DeleteAt:       deleteAt,
			TimeoutMinutes: 61,
		},
		AvatarURL: "https://i.pravatar.cc/150?u=abc",
	}
	ApplyTimeDefaults(identity, now)

	assert.True(t, identity.CreatedAt.Equal(created))
	assert.True(t, identity.AutoDelete.DeleteAt.Equal(deleteAt))
	assert.Equal(t, 61, identity.AutoDelete.TimeoutMinutes)
}
