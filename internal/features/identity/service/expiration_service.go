package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"metchera-backend/internal/common/logger"
)

// ExpirationService runs the recurring auto-delete sweep. It owns its own
// cancellation; construct it in main and stop it during shutdown. Only the
// auto-delete clock is swept. The fixed 7-day ExpiresAt deadline stays an
// informational value and is never purged here.
type ExpirationService struct {
	ctx      context.Context
	cancel   context.CancelFunc
	service  IdentityService
	interval time.Duration
	wg       sync.WaitGroup
	sweeping atomic.Bool
	stopOnce sync.Once
}

// NewExpirationService creates a stopped scheduler sweeping at the given
// interval.
func NewExpirationService(svc IdentityService, interval time.Duration) *ExpirationService {
	ctx, cancel := context.WithCancel(context.Background())
	return &ExpirationService{
		ctx:      ctx,
		cancel:   cancel,
		service:  svc,
		interval: interval,
	}
}

// Start launches the sweep loop. An immediate sweep runs before the first
// interval elapses so records expired while the process was down are cleared
// promptly.
func (s *ExpirationService) Start() {
	logger.Info().Dur("interval", s.interval).Msg("Starting expiration service")

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		s.Sweep()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.Sweep()
			case <-s.ctx.Done():
				return
			}
		}
	}()
}

// Stop cancels future firings and waits for an in-flight sweep to finish.
// Safe to call more than once.
func (s *ExpirationService) Stop() {
	s.stopOnce.Do(func() {
		logger.Info().Msg("Stopping expiration service")
		s.cancel()
		s.wg.Wait()
		logger.Info().Msg("Expiration service stopped")
	})
}

// Sweep runs one query-and-delete pass and returns the number of records
// deleted. If a sweep is already in flight the call is skipped, not queued.
func (s *ExpirationService) Sweep() int {
	if !s.sweeping.CompareAndSwap(false, true) {
		logger.Debug().Msg("Sweep already in progress, skipping")
		return 0
	}
	defer s.sweeping.Store(false)

	deleted, err := s.service.DeleteExpired(s.ctx)
	if err != nil {
		// The sweep never raises; failures surface as logs and a zero count.
		logger.Error().Err(err).Msg("Expiration sweep failed")
		return 0
	}

	return deleted
}
