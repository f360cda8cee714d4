package commands

import (
	"context"
	"encoding/json"
	"time"

	"restaurant-booking/internal/domain/booking"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const notificationKindEvent = "event"

const (
	TopicBookingCreated                  = "booking.created"
	TopicBookingTablesAssigned           = "booking.tables_assigned"
	TopicBookingReservationStatusChanged = "booking.reservation_status_changed"
)

// BookingEvent is the outbox payload published for booking state changes.
type BookingEvent struct {
	BookingID         uuid.UUID   `json:"booking_id"`
	RestaurantID      uuid.UUID   `json:"restaurant_id"`
	BookingTime       time.Time   `json:"booking_time"`
	Status            string      `json:"status"`
	TableIDs          []uuid.UUID `json:"table_ids,omitempty"`
	ReservationStatus string      `json:"reservation_status,omitempty"`
	Version           int64       `json:"version"`
	OccurredAt        time.Time   `json:"occurred_at"`
}

func newBookingEvent(b *booking.Booking, now time.Time) BookingEvent {
	ev := BookingEvent{
		BookingID:    b.ID(),
		RestaurantID: b.RestaurantID(),
		BookingTime:  b.BookingTime(),
		Status:       b.Status().String(),
		TableIDs:     b.TableIDs(),
		Version:      b.Version(),
		OccurredAt:   now,
	}
	if res := b.Reservation(); res != nil {
		ev.ReservationStatus = res.Status().String()
	}
	return ev
}

func enqueueEvent(ctx context.Context, tx shared.Tx, topic string, ev BookingEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "failed to marshal booking event")
	}
	if err := tx.Notifications().CreateJob(ctx, notificationKindEvent, topic, payload, ev.OccurredAt); err != nil {
		return errs.Mark(err, errs.ErrPersistence)
	}
	return nil
}
