package flats

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// TryAgainMessage is sent to subscribers when a scheduled pass fails.
const TryAgainMessage = "Could not refresh the listings. Try again later."

// Notifier delivers reports to subscribers.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// Job runs scheduled passes and sends their reports.
type Job struct {
	service    *Service
	notifier   Notifier
	firstDelay time.Duration
	interval   time.Duration
	logger     *zap.Logger
}

// NewJob creates a job with the configured schedule.
func NewJob(service *Service, notifier Notifier, cfg Config, logger *zap.Logger) *Job {
	return &Job{
		service:    service,
		notifier:   notifier,
		firstDelay: cfg.FirstDelay(),
		interval:   cfg.Interval(),
		logger:     logger,
	}
}

// Run waits the first delay, then runs a pass every interval until ctx is done.
// A pass that outlasts the interval delays the next one; passes never overlap.
func (j *Job) Run(ctx context.Context) {
	j.logger.Info("Scheduler started",
		zap.Duration("first_delay", j.firstDelay),
		zap.Duration("interval", j.interval),
	)

	timer := time.NewTimer(j.firstDelay)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info("Scheduler stopped")
			return
		case <-timer.C:
			j.RunOnce(ctx)
			timer.Reset(j.interval)
		}
	}
}

// RunOnce runs one pass and notifies subscribers of its report, or of the failure.
func (j *Job) RunOnce(ctx context.Context) {
	report, err := j.service.UpdateFromSource(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		j.logger.Error("Scheduled pass failed", zap.Error(err))
		report = TryAgainMessage
	}

	if err := j.notifier.Notify(ctx, report); err != nil {
		j.logger.Error("Sending report failed", zap.Error(err))
	}
}
