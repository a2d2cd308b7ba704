package repository

import (
	"context"
	"time"

	"fieldbook/internal/infra"
	sqlc "fieldbook/internal/infra/sqlc/generated"
	"fieldbook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.NotificationJobs, error)
	MarkNotificationJobSent(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	MarkNotificationJobRetry(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobRetryParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries NotificationWriteQueries) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
	}
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int32
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	params := sqlc.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
	}

	err := r.queries.CreateNotificationJob(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

// ClaimDue locks up to limit queued jobs; rows stay locked until tx ends.
func (r *NotificationRepository) ClaimDue(ctx context.Context, tx sqlc.DBTX, limit int32) ([]NotificationJob, error) {
	rows, err := r.queries.ClaimDueNotificationJobs(ctx, tx, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]NotificationJob, len(rows))
	for i, row := range rows {
		jobs[i] = NotificationJob{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Payload:  row.Payload,
			Attempts: row.Attempts,
		}
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID) error {
	if err := r.queries.MarkNotificationJobSent(ctx, tx, jobID); err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

// MarkRetry records a failed attempt. The job turns failed once maxAttempts is reached.
func (r *NotificationRepository) MarkRetry(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, lastError string, nextRunAt time.Time, maxAttempts int32) error {
	params := sqlc.MarkNotificationJobRetryParams{
		MaxAttempts: maxAttempts,
		LastError:   pgconv.TextOrNull(lastError),
		NextRunAt:   pgconv.TimeToPgtype(nextRunAt),
		ID:          jobID,
	}

	if err := r.queries.MarkNotificationJobRetry(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to mark notification job retry", err)
	}
	return nil
}
