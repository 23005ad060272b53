package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/store"
)

// HousekeepingService periodically deletes refresh rows and blacklist
// entries past their expiry. Expired tokens are already rejected on use;
// this only bounds table growth.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given interval.
// If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}

	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start launches the background worker. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop blocks until any in-progress cleanup has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.cleanup(time.Now())

	for {
		select {
		case <-ticker.C:
			s.cleanup(time.Now())
		case <-s.stopCh:
			return
		}
	}
}

// cleanup deletes expired rows. Each table is independent; a failure in
// one does not stop the other.
func (s *HousekeepingService) cleanup(now time.Time) (refresh, blacklist int64) {
	ctx := context.Background()

	refresh, err := s.Store.RefreshTokens().DeleteExpiredRefreshTokens(ctx, now)
	if err != nil {
		s.Logger.Error("failed to delete expired refresh tokens", "error", err)
	}

	blacklist, err = s.Store.Blacklist().DeleteExpiredTokens(ctx, now)
	if err != nil {
		s.Logger.Error("failed to delete expired blacklist entries", "error", err)
	}

	s.Logger.Info("housekeeping cleanup completed",
		"refresh_tokens_deleted", refresh,
		"blacklist_entries_deleted", blacklist,
	)
	return refresh, blacklist
}
