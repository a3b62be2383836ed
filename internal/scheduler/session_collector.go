package scheduler

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/linkhub/internal/index"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
)

const (
	// DefaultSessionIdleTTL is the idle time after which an editor session is dropped
	DefaultSessionIdleTTL = 30 * time.Minute
	// DefaultSessionGCInterval is how often idle sessions are collected
	DefaultSessionGCInterval = 5 * time.Minute
)

// SessionCollector drops editor sessions whose client went away. Dropping a
// session ends any drag it had in progress; the profile keeps the order the
// drag reached.
type SessionCollector struct {
	index    *index.MemoryIndex
	logger   logger.Logger
	interval time.Duration
	idleTTL  time.Duration
	stopCh   chan struct{}
	now      func() time.Time
}

// NewSessionCollector creates a new session collector
func NewSessionCollector(
	idx *index.MemoryIndex,
	log logger.Logger,
	interval time.Duration,
	idleTTL time.Duration,
) *SessionCollector {
	if interval <= 0 {
		interval = DefaultSessionGCInterval
	}
	if idleTTL <= 0 {
		idleTTL = DefaultSessionIdleTTL
	}

	return &SessionCollector{
		index:    idx,
		logger:   log,
		interval: interval,
		idleTTL:  idleTTL,
		stopCh:   make(chan struct{}),
		now:      time.Now,
	}
}

// Start begins the periodic collection
func (sc *SessionCollector) Start(ctx context.Context) error {
	ticker := time.NewTicker(sc.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sc.Collect()
			case <-sc.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the collector
func (sc *SessionCollector) Stop() {
	close(sc.stopCh)
}

// Collect removes sessions idle for longer than the TTL and returns how many
func (sc *SessionCollector) Collect() int {
	cutoff := sc.now().Add(-sc.idleTTL)
	deleted := 0
	dragsEnded := 0

	for id, s := range sc.index.GetAllSessions() {
		if !s.LastSeen.Before(cutoff) {
			continue
		}
		// The session may have been touched since the snapshot
		if !sc.index.DeleteSessionIfIdle(id, cutoff) {
			continue
		}
		if s.Drag.Active() {
			dragsEnded++
		}
		deleted++
	}

	if deleted > 0 {
		sc.logger.Info("collected idle editor sessions",
			logger.Int("sessions_deleted", deleted),
			logger.Int("drags_ended", dragsEnded),
			logger.Duration("idle_ttl", sc.idleTTL))
	} else {
		sc.logger.Debug("no idle sessions to collect")
	}

	return deleted
}
