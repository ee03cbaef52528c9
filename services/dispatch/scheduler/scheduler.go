// Package scheduler drives the periodic dispatch sweep.
//
// Startup is two-phase: the recovery pass must complete without error
// before the tick loop is started at all. A process whose recovery failed
// keeps serving reads and bookings but never dispatches against the
// unrecovered state.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/skycab/ridepool/internal/pkg/logger"
	"github.com/skycab/ridepool/internal/pkg/models"
	"github.com/skycab/ridepool/services/dispatch"
)

type Scheduler struct {
	cfg *models.Config
	uc  dispatch.DispatchUC

	mu      sync.Mutex
	stop    chan struct{}
	done    chan struct{}
	running bool
}

func New(cfg *models.Config, uc dispatch.DispatchUC) *Scheduler {
	return &Scheduler{
		cfg: cfg,
		uc:  uc,
	}
}

// Start runs the recovery pass and, only if it succeeds, launches the tick
// loop. Returns the recovery error otherwise; the scheduler stays disabled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return nil
	}

	if err := s.uc.RunRecovery(ctx); err != nil {
		logger.Error("Startup recovery failed, dispatch scheduler disabled", logger.Err(err))
		return err
	}

	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	s.running = true
	go s.loop(ctx)

	logger.Info("Dispatch scheduler started",
		logger.Int("interval_ms", s.cfg.Dispatch.IntervalMs))
	return nil
}

// Stop halts the tick loop and waits for an in-flight sweep to finish
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	close(s.stop)
	<-s.done
	s.running = false
	logger.Info("Dispatch scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(time.Duration(s.cfg.Dispatch.IntervalMs) * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.uc.DispatchReadyPools(ctx); err != nil {
				logger.Error("Dispatch sweep finished with errors", logger.Err(err))
			}
		}
	}
}
