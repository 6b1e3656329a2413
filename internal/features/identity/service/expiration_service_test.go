package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metchera-backend/internal/features/identity/models"
)

func TestSweepDeletesOnlyOverdue(t *testing.T) {
	repo := newMemoryRepository()
	svc := NewIdentityService(repo)
	ctx := context.Background()

	past := time.Now().Add(-time.Minute)
	for i := 0; i < 4; i++ {
		identity, err := svc.CreateIdentity(ctx, "", 5)
		require.NoError(t, err)
		identity.AutoDelete.DeleteAt = past
	}
	for i := 0; i < 3; i++ {
		_, err := svc.CreateIdentity(ctx, "", 60)
		require.NoError(t, err)
	}

	exp := NewExpirationService(svc, time.Hour)
	defer exp.Stop()

	deleted := exp.Sweep()
	assert.Equal(t, 4, deleted)
	assert.Equal(t, 3, repo.count())

	// Idempotent: a second sweep finds nothing.
	assert.Equal(t, 0, exp.Sweep())
	assert.Equal(t, 3, repo.count())
}

func TestSweepIgnoresFixedExpiry(t *testing.T) {
	repo := newMemoryRepository()
	svc := NewIdentityService(repo)

	// Past the 7-day absolute deadline but with auto-delete disabled: the
	// sweep must leave it alone, the two clocks are independent.
	identity, err := svc.CreateIdentity(context.Background(), "", 0)
	require.NoError(t, err)
	identity.ExpiresAt = time.Now().Add(-time.Hour)

	exp := NewExpirationService(svc, time.Hour)
	defer exp.Stop()

	assert.Equal(t, 0, exp.Sweep())
	assert.Equal(t, 1, repo.count())
}

func TestStartRunsImmediateSweep(t *testing.T) {
	repo := newMemoryRepository()
	svc := NewIdentityService(repo)

	identity, err := svc.CreateIdentity(context.Background(), "", 5)
	require.NoError(t, err)
	identity.AutoDelete.DeleteAt = time.Now().Add(-time.Minute)

	// Interval far longer than the test: only the immediate sweep can fire.
	exp := NewExpirationService(svc, time.Hour)
	exp.Start()
	defer exp.Stop()

	require.Eventually(t, func() bool {
		return repo.count() == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestStopIsIdempotent(t *testing.T) {
	exp := NewExpirationService(NewIdentityService(newMemoryRepository()), time.Hour)
	exp.Start()

	exp.Stop()
	exp.Stop()
}

// blockingRepository parks FindExpired until released, to hold a sweep in
// flight.
type blockingRepository struct {
	*memoryRepository
	release chan struct{}
	entered chan struct{}
	once    sync.Once
}

func (b *blockingRepository) FindExpired(ctx context.Context, now time.Time) ([]*models.Identity, error) {
	b.once.Do(func() { close(b.entered) })
	<-b.release
	return b.memoryRepository.FindExpired(ctx, now)
}

func TestOverlappingSweepIsSkipped(t *testing.T) {
	repo := &blockingRepository{
		memoryRepository: newMemoryRepository(),
		release:          make(chan struct{}),
		entered:          make(chan struct{}),
	}
	svc := NewIdentityService(repo)
	exp := NewExpirationService(svc, time.Hour)

	done := make(chan int)
	go func() { done <- exp.Sweep() }()

	<-repo.entered

	// A fire while the first sweep is still in flight is a no-op.
	assert.Equal(t, 0, exp.Sweep())

	close(repo.release)
	<-done
	exp.Stop()
}
