package repository

//go:generate mockgen -source=notification.go -destination=../../../tests/mock/repository/notification_queries.go -package=repositorymock

import (
	"context"
	"time"

	"restaurant-booking/internal/infra"
	sqlc "restaurant-booking/internal/infra/sqlc/generated"
	"restaurant-booking/internal/pkg/pgconv"
	"restaurant-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	GetDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.GetDueNotificationJobsParams) ([]sqlc.NotificationJobs, error)
	UpdateNotificationJobStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateNotificationJobStatusParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	params := sqlc.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
		Status:  shared.JobStatusQueued,
	}

	err := r.queries.CreateNotificationJob(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

// DueJobs locks the returned rows until the surrounding transaction ends.
func (r *NotificationRepository) DueJobs(ctx context.Context, now time.Time, limit int) ([]shared.OutboxJob, error) {
	rows, err := r.queries.GetDueNotificationJobs(ctx, r.db, sqlc.GetDueNotificationJobsParams{
		Now:       pgconv.TimeToPgtype(now),
		BatchSize: pgconv.IntToInt32(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch due notification jobs", err)
	}

	jobs := make([]shared.OutboxJob, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, shared.OutboxJob{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Payload:  row.Payload,
			RunAt:    pgconv.TimeFromPgtype(row.RunAt),
			Attempts: int(row.Attempts),
		})
	}
	return jobs, nil
}

// MarkJob records one delivery attempt. A non-nil retryAt reschedules the job.
func (r *NotificationRepository) MarkJob(ctx context.Context, jobID uuid.UUID, status string, lastError *string, retryAt *time.Time) error {
	params := sqlc.UpdateNotificationJobStatusParams{
		ID:        jobID,
		Status:    status,
		LastError: pgconv.StringPtrToPgtype(lastError),
		RunAt:     pgtype.Timestamptz{Valid: false},
	}
	if retryAt != nil {
		params.RunAt = pgconv.TimeToPgtype(*retryAt)
	}

	err := r.queries.UpdateNotificationJobStatus(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}

	return nil
}
