package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fieldbook/internal/infra/metrics"
	"fieldbook/internal/infra/mq"
	"fieldbook/internal/infra/repository"
	sqlc "fieldbook/internal/infra/sqlc/generated"
	"fieldbook/internal/pkg/clock"
	"fieldbook/internal/pkg/config"
	"fieldbook/internal/pkg/errs"
	"fieldbook/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	retryBaseDelay = 5 * time.Second
	retryMaxDelay  = 10 * time.Minute
	sweepInterval  = time.Hour
	lastErrorLimit = 500
)

type Publisher interface {
	Publish(ctx context.Context, msg mq.Message) error
}

type JobStore interface {
	ClaimDue(ctx context.Context, tx sqlc.DBTX, limit int32) ([]repository.NotificationJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID) error
	MarkRetry(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, lastError string, nextRunAt time.Time, maxAttempts int32) error
}

type JobStats interface {
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type KeySweeper interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// OutboxRelay moves queued notification jobs to the message broker.
type OutboxRelay struct {
	uow       shared.UnitOfWork
	jobs      JobStore
	stats     JobStats
	sweeper   KeySweeper
	publisher Publisher
	clock     clock.Clock
	cfg       config.OutboxConfig
	logger    *slog.Logger

	lastSweep time.Time
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

func NewOutboxRelay(
	uow shared.UnitOfWork,
	jobs JobStore,
	stats JobStats,
	sweeper KeySweeper,
	publisher Publisher,
	clk clock.Clock,
	cfg config.OutboxConfig,
	logger *slog.Logger,
) *OutboxRelay {
	return &OutboxRelay{
		uow:       uow,
		jobs:      jobs,
		stats:     stats,
		sweeper:   sweeper,
		publisher: publisher,
		clock:     clk,
		cfg:       cfg,
		logger:    logger,
	}
}

// Start launches the poll loop. Stop cancels it and waits for the current batch.
func (r *OutboxRelay) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(context.WithoutCancel(ctx))
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.run(ctx)
	}()
	r.logger.Info("outbox relay started", "poll_interval", r.cfg.PollInterval, "batch_size", r.cfg.BatchSize)
}

func (r *OutboxRelay) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
	r.logger.Info("outbox relay stopped")
}

func (r *OutboxRelay) run(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := r.RunOnce(ctx); err != nil && ctx.Err() == nil {
				r.logger.Error("outbox batch failed", "error", err.Error())
			}
			r.refreshGauges(ctx)
			r.sweepIdempotencyKeys(ctx)
		}
	}
}

// RunOnce claims one batch and returns how many jobs were published.
func (r *OutboxRelay) RunOnce(ctx context.Context) (int, error) {
	sent := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		jobs, err := r.jobs.ClaimDue(ctx, tx.DB(), r.cfg.BatchSize)
		if err != nil {
			return errs.Wrap(err, "claim due jobs")
		}

		for _, job := range jobs {
			now := r.clock.Now()
			pubErr := r.publish(ctx, mq.Message{
				ID:         job.ID.String(),
				RoutingKey: job.Topic,
				Body:       job.Payload,
				Timestamp:  now,
			})
			metrics.ObserveOutboxPublish(job.Topic, pubErr)

			if pubErr == nil {
				if err := r.jobs.MarkSent(ctx, tx.DB(), job.ID); err != nil {
					return errs.Wrap(err, "mark job sent")
				}
				sent++
				continue
			}

			r.logger.Warn("notification publish failed",
				"job_id", job.ID,
				"topic", job.Topic,
				"attempts", job.Attempts+1,
				"error", pubErr.Error(),
			)
			next := now.Add(RetryDelay(job.Attempts + 1))
			if err := r.jobs.MarkRetry(ctx, tx.DB(), job.ID, truncate(pubErr.Error(), lastErrorLimit), next, r.cfg.MaxAttempts); err != nil {
				return errs.Wrap(err, "mark job retry")
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return sent, nil
}

func (r *OutboxRelay) publish(ctx context.Context, msg mq.Message) error {
	if r.cfg.PublishTimeout <= 0 {
		return r.publisher.Publish(ctx, msg)
	}
	ctx, cancel := context.WithTimeout(ctx, r.cfg.PublishTimeout)
	defer cancel()
	return r.publisher.Publish(ctx, msg)
}

func (r *OutboxRelay) refreshGauges(ctx context.Context) {
	counts, err := r.stats.CountByStatus(ctx)
	if err != nil {
		r.logger.Warn("failed to count notification jobs", "error", err.Error())
		return
	}
	for status, n := range counts {
		metrics.SetOutboxJobs(status, n)
	}
}

func (r *OutboxRelay) sweepIdempotencyKeys(ctx context.Context) {
	now := r.clock.Now()
	if !r.lastSweep.IsZero() && now.Sub(r.lastSweep) < sweepInterval {
		return
	}
	r.lastSweep = now

	n, err := r.sweeper.DeleteExpired(ctx)
	if err != nil {
		r.logger.Warn("failed to delete expired idempotency keys", "error", err.Error())
		return
	}
	if n > 0 {
		r.logger.Info("deleted expired idempotency keys", "count", n)
	}
}

// RetryDelay doubles per attempt from retryBaseDelay up to retryMaxDelay.
func RetryDelay(attempt int32) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := retryBaseDelay
	for i := int32(1); i < attempt; i++ {
		d *= 2
		if d >= retryMaxDelay {
			return retryMaxDelay
		}
	}
	return d
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
