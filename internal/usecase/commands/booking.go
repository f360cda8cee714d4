package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"restaurant-booking/internal/domain/allocation"
	"restaurant-booking/internal/domain/booking"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/pkg/clock"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RestaurantID  uuid.UUID
	CustomerID    *uuid.UUID
	GuestID       *uuid.UUID
	BookingTime   time.Time
	AdultsCount   *int
	ChildrenCount *int
	Note          string
	DishIDs       []uuid.UUID
}

type AssignTablesRequest struct {
	BookingID uuid.UUID
	TableIDs  []uuid.UUID
	// Status defaults to RESERVED when empty.
	Status          string
	ExpectedVersion *int64
}

type SetReservationStatusRequest struct {
	BookingID       uuid.UUID
	Status          string
	ExpectedVersion *int64
}

type PatchFieldsRequest struct {
	BookingID       uuid.UUID
	BookingTime     *time.Time
	AdultsCount     *int
	ChildrenCount   *int
	Note            *string
	Status          *string
	ExpectedVersion *int64
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*booking.Booking, error)
	AssignTables(ctx context.Context, req AssignTablesRequest) (*booking.Booking, error)
	SetReservationStatus(ctx context.Context, req SetReservationStatusRequest) (*booking.Booking, error)
	PatchFields(ctx context.Context, req PatchFieldsRequest) (*booking.Booking, error)
}

type bookingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk}
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest) (*booking.Booking, error) {
	b, err := booking.NewBooking(uc.clock, booking.NewBookingParams{
		RestaurantID:  req.RestaurantID,
		CustomerID:    req.CustomerID,
		GuestID:       req.GuestID,
		BookingTime:   req.BookingTime,
		AdultsCount:   req.AdultsCount,
		ChildrenCount: req.ChildrenCount,
		Note:          req.Note,
		DishIDs:       req.DishIDs,
	})
	if err != nil {
		return nil, classifyDomainErr(err)
	}

	var created *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, derr := tx.Reads().RestaurantExists(ctx, req.RestaurantID)
		if derr != nil {
			return errs.Mark(derr, errs.ErrPersistence)
		}
		if !ok {
			return errs.Mark(ErrRestaurantNotFound, errs.ErrNotFound)
		}

		if derr = tx.Bookings().Create(ctx, b); derr != nil {
			return classifyStoreErr(derr)
		}
		created, derr = uc.reload(ctx, tx, b.ID())
		if derr != nil {
			return derr
		}
		return enqueueEvent(ctx, tx, TopicBookingCreated, newBookingEvent(created, uc.clock.Now()))
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "booking created",
		"booking_id", created.ID().String(),
		"restaurant_id", created.RestaurantID().String(),
		"booking_time", created.BookingTime())
	return created, nil
}

func (uc *bookingUseCaseImpl) AssignTables(ctx context.Context, req AssignTablesRequest) (*booking.Booking, error) {
	if len(req.TableIDs) == 0 {
		return nil, errs.Mark(booking.ErrEmptyTableList, errs.ErrInvalidArgument)
	}
	status := booking.ParseReservationStatus(req.Status)

	var updated *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// table ids are checked before the booking is looked up
		distinct := booking.DistinctIDs(req.TableIDs)
		found, derr := tx.Reads().TablesByIDs(ctx, distinct)
		if derr != nil {
			return errs.Mark(derr, errs.ErrPersistence)
		}
		if missing := allocation.MissingIDs(distinct, found); len(missing) > 0 {
			slog.WarnContext(ctx, "table assignment rejected",
				"booking_id", req.BookingID.String(),
				"missing_table_ids", missing)
			return errs.Mark(ErrTablesNotFound, errs.ErrValidation)
		}

		b, derr := uc.load(ctx, tx, req.BookingID, req.ExpectedVersion)
		if derr != nil {
			return derr
		}
		if derr = b.AssignTables(req.TableIDs, status, uc.clock.Now()); derr != nil {
			return classifyDomainErr(derr)
		}
		if updated, derr = uc.save(ctx, tx, b, req.ExpectedVersion); derr != nil {
			return derr
		}
		return enqueueEvent(ctx, tx, TopicBookingTablesAssigned, newBookingEvent(updated, uc.clock.Now()))
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "tables assigned",
		"booking_id", updated.ID().String(),
		"table_ids", updated.TableIDs(),
		"reservation_status", updated.Reservation().Status().String(),
		"version", updated.Version())
	return updated, nil
}

func (uc *bookingUseCaseImpl) SetReservationStatus(ctx context.Context, req SetReservationStatusRequest) (*booking.Booking, error) {
	status := booking.ParseReservationStatus(req.Status)
	if status == "" {
		return nil, errs.Mark(booking.ErrEmptyReservationStatus, errs.ErrInvalidArgument)
	}

	var (
		updated  *booking.Booking
		previous booking.ReservationStatus
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := uc.load(ctx, tx, req.BookingID, req.ExpectedVersion)
		if derr != nil {
			return derr
		}
		if res := b.Reservation(); res != nil {
			previous = res.Status()
		}

		if derr = b.SetReservationStatus(status, uc.clock.Now()); derr != nil {
			return classifyDomainErr(derr)
		}
		if updated, derr = uc.save(ctx, tx, b, req.ExpectedVersion); derr != nil {
			return derr
		}
		return enqueueEvent(ctx, tx, TopicBookingReservationStatusChanged, newBookingEvent(updated, uc.clock.Now()))
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "reservation status changed",
		"booking_id", updated.ID().String(),
		"from", previous.String(),
		"to", status.String(),
		"version", updated.Version())
	return updated, nil
}

func (uc *bookingUseCaseImpl) PatchFields(ctx context.Context, req PatchFieldsRequest) (*booking.Booking, error) {
	p := booking.Patch{
		BookingTime:   req.BookingTime,
		AdultsCount:   req.AdultsCount,
		ChildrenCount: req.ChildrenCount,
		Note:          req.Note,
	}
	if req.Status != nil {
		s := booking.NormalizeStatus(*req.Status)
		p.Status = &s
	}

	var updated *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := uc.load(ctx, tx, req.BookingID, req.ExpectedVersion)
		if derr != nil {
			return derr
		}
		// nothing to set: the booking is returned as stored
		if p.IsEmpty() {
			updated = b
			return nil
		}
		b.ApplyPatch(p, uc.clock.Now())
		updated, derr = uc.save(ctx, tx, b, req.ExpectedVersion)
		return derr
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "booking fields patched",
		"booking_id", updated.ID().String(),
		"version", updated.Version())
	return updated, nil
}

// load fetches the booking and rejects a stale expectedVersion before any
// mutation happens.
func (uc *bookingUseCaseImpl) load(ctx context.Context, tx shared.Tx, id uuid.UUID, expectedVersion *int64) (*booking.Booking, error) {
	b, err := tx.Reads().BookingByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(ErrBookingNotFound, errs.ErrNotFound)
		}
		return nil, errs.Mark(err, errs.ErrPersistence)
	}
	if expectedVersion != nil && b.Version() != *expectedVersion {
		return nil, errs.Mark(
			errs.Wrapf(ErrStaleBooking, "expected version %d, current %d", *expectedVersion, b.Version()),
			errs.ErrVersionConflict)
	}
	return b, nil
}

func (uc *bookingUseCaseImpl) save(ctx context.Context, tx shared.Tx, b *booking.Booking, expectedVersion *int64) (*booking.Booking, error) {
	if err := tx.Bookings().Save(ctx, b, expectedVersion); err != nil {
		return nil, classifyStoreErr(err)
	}
	return uc.reload(ctx, tx, b.ID())
}

func (uc *bookingUseCaseImpl) reload(ctx context.Context, tx shared.Tx, id uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Reads().BookingByID(ctx, id)
	if err != nil {
		return nil, classifyStoreErr(err)
	}
	return b, nil
}
