package shared

import (
	"context"
	"time"

	"restaurant-booking/internal/domain/booking"
	"restaurant-booking/internal/domain/table"
	"restaurant-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

// Tx exposes repositories bound to the running transaction.
type Tx interface {
	Bookings() BookingRepository
	Notifications() NotificationRepository
	Reads() CommandReads
}

type CommandReads interface {
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	TablesByIDs(ctx context.Context, ids []uuid.UUID) ([]*table.Table, error)
	RestaurantExists(ctx context.Context, id uuid.UUID) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	// Save overwrites the whole row and bumps its version. A non-nil
	// expectedVersion turns the write into a compare-and-swap.
	Save(ctx context.Context, b *booking.Booking, expectedVersion *int64) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}

const (
	JobStatusQueued = "queued"
	JobStatusSent   = "sent"
	JobStatusFailed = "failed"
)

type OutboxJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	RunAt    time.Time
	Attempts int
}

type OutboxRepository interface {
	DueJobs(ctx context.Context, now time.Time, limit int) ([]OutboxJob, error)
	MarkJob(ctx context.Context, jobID uuid.UUID, status string, lastError *string, retryAt *time.Time) error
}

// ErrPublisherUnavailable marks publish errors raised before any message could
// reach the broker. The dispatcher stops the batch on it.
var ErrPublisherUnavailable = errs.New("event publisher unavailable")

// OutboxUnitOfWork runs the dispatcher's claim-publish-mark cycle in one transaction.
type OutboxUnitOfWork interface {
	WithinOutbox(ctx context.Context, fn func(ctx context.Context, jobs OutboxRepository) error) error
}
