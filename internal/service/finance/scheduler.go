package finance

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the nightly ledger resync over all salons. It repairs
// appointments whose on-completion processing failed and completions that
// predate the reconciler.
type Scheduler struct {
	cron    *cron.Cron
	service *Service
	logger  Logger
}

// NewScheduler creates a scheduler running the resync on the given cron
// schedule (standard 5-field syntax).
func NewScheduler(schedule string, service *Service, logger Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:    cron.New(),
		service: service,
		logger:  logger,
	}

	if _, err := s.cron.AddFunc(schedule, s.run); err != nil {
		return nil, err
	}

	return s, nil
}

// Start launches the cron loop in its own goroutine.
func (s *Scheduler) Start() {
	s.logger.Info("finance scheduler: started")
	s.cron.Start()
}

// Stop stops the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("finance scheduler: stopped")
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	created, err := s.service.ResyncAll(ctx)
	if err != nil {
		s.logger.Error("finance scheduler: resync failed: %v", err)
		return
	}
	s.logger.Info("finance scheduler: resync done, %d transactions created", created)
}
