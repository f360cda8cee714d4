package worker

//go:generate mockgen -source=outbox_dispatcher.go -destination=../../tests/mock/worker/publisher.go -package=workermock

import (
	"context"
	"log/slog"
	"time"

	"restaurant-booking/internal/pkg/clock"
	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/usecase/shared"
)

const (
	baseRetryDelay = 5 * time.Second
	maxRetryDelay  = 5 * time.Minute
)

type EventPublisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

type OutboxDispatcher struct {
	uow         shared.OutboxUnitOfWork
	publisher   EventPublisher
	clock       clock.Clock
	interval    time.Duration
	batchSize   int
	maxAttempts int

	stop chan struct{}
	done chan struct{}
}

func NewOutboxDispatcher(uow shared.OutboxUnitOfWork, publisher EventPublisher, clk clock.Clock, cfg config.OutboxConfig) *OutboxDispatcher {
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}
	batch := int(cfg.BatchSize)
	if batch <= 0 {
		batch = 50
	}
	attempts := int(cfg.MaxAttempts)
	if attempts <= 0 {
		attempts = 5
	}
	return &OutboxDispatcher{
		uow:         uow,
		publisher:   publisher,
		clock:       clk,
		interval:    interval,
		batchSize:   batch,
		maxAttempts: attempts,
	}
}

// Start polls in the background until Stop is called.
func (d *OutboxDispatcher) Start() {
	d.stop = make(chan struct{})
	d.done = make(chan struct{})

	go func() {
		defer close(d.done)
		ticker := time.NewTicker(d.interval)
		defer ticker.Stop()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			<-d.stop
			cancel()
		}()

		for {
			if _, err := d.DispatchOnce(ctx); err != nil && ctx.Err() == nil {
				slog.Error("outbox dispatch failed", "error", err.Error())
			}
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

func (d *OutboxDispatcher) Stop(ctx context.Context) error {
	if d.stop == nil {
		return nil
	}
	close(d.stop)
	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// DispatchOnce claims one batch of due jobs and returns how many were published.
func (d *OutboxDispatcher) DispatchOnce(ctx context.Context) (int, error) {
	sent := 0
	err := d.uow.WithinOutbox(ctx, func(ctx context.Context, jobs shared.OutboxRepository) error {
		sent = 0
		now := d.clock.Now()
		due, err := jobs.DueJobs(ctx, now, d.batchSize)
		if err != nil {
			return err
		}

		for i, job := range due {
			if pubErr := d.publisher.Publish(ctx, job.Topic, job.Payload); pubErr != nil {
				if err := d.markFailure(ctx, jobs, job, now, pubErr); err != nil {
					return err
				}
				// remaining jobs stay queued for the next poll
				if errs.Is(pubErr, shared.ErrPublisherUnavailable) {
					slog.WarnContext(ctx, "publisher unavailable, batch cut short",
						"skipped", len(due)-i-1)
					return nil
				}
				continue
			}
			if err := jobs.MarkJob(ctx, job.ID, shared.JobStatusSent, nil, nil); err != nil {
				return err
			}
			sent++
		}
		return nil
	})
	return sent, err
}

func (d *OutboxDispatcher) markFailure(ctx context.Context, jobs shared.OutboxRepository, job shared.OutboxJob, now time.Time, cause error) error {
	msg := cause.Error()
	attempt := job.Attempts + 1

	if attempt >= d.maxAttempts {
		slog.ErrorContext(ctx, "outbox job gave up",
			"job_id", job.ID,
			"topic", job.Topic,
			"attempts", attempt,
			"error", msg)
		return jobs.MarkJob(ctx, job.ID, shared.JobStatusFailed, &msg, nil)
	}

	retryAt := now.Add(RetryDelay(attempt))
	slog.WarnContext(ctx, "outbox job rescheduled",
		"job_id", job.ID,
		"topic", job.Topic,
		"attempts", attempt,
		"retry_at", retryAt,
		"error", msg)
	return jobs.MarkJob(ctx, job.ID, shared.JobStatusQueued, &msg, &retryAt)
}

// RetryDelay doubles per attempt from baseRetryDelay, capped at maxRetryDelay.
func RetryDelay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	delay := baseRetryDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= maxRetryDelay {
			return maxRetryDelay
		}
	}
	return delay
}
