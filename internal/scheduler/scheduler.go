package scheduler

import (
	"context"
	"sync"
	"time"

	"yatra/backend/internal/service"
	"yatra/backend/pkg/logger"
)

// Scheduler runs the maintenance sweep on a fixed interval. The ledgers do
// not depend on the sweep for correctness, so a missed run is harmless.
type Scheduler struct {
	maintenance service.MaintenanceService
	interval    time.Duration
	stopCh      chan struct{}
	wg          sync.WaitGroup
	cancelFunc  context.CancelFunc // cancels the current sweep
	mu          sync.Mutex         // protects cancelFunc
}

func New(maintenance service.MaintenanceService, interval time.Duration) *Scheduler {
	return &Scheduler{
		maintenance: maintenance,
		interval:    interval,
		stopCh:      make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "module", "scheduler", "interval", s.interval)
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	logger.Info("scheduler stopped", "module", "scheduler")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	// Run immediately on start
	s.sweep()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)

	s.mu.Lock()
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	s.maintenance.Sweep(ctx)
}
