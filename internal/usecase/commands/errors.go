package commands

import (
	"restaurant-booking/internal/domain/booking"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/pkg/errs"
)

var (
	ErrBookingNotFound    = errs.New("booking not found")
	ErrRestaurantNotFound = errs.New("restaurant not found")
	ErrTablesNotFound     = errs.New("one or more table IDs do not exist")
	ErrStaleBooking       = errs.New("booking was modified by another request")
)

// classifyDomainErr attaches the engine kind to errors raised by the booking aggregate.
func classifyDomainErr(err error) error {
	switch {
	case errs.Is(err, booking.ErrReservationNotFound):
		return errs.Mark(err, errs.ErrValidation)
	case errs.Is(err, booking.ErrInvalidTransition):
		return errs.Mark(err, errs.ErrValidation)
	default:
		return errs.Mark(err, errs.ErrInvalidArgument)
	}
}

// classifyStoreErr maps repository failures onto engine kinds.
func classifyStoreErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(errs.Wrap(err, ErrBookingNotFound.Error()), errs.ErrNotFound)
	case infra.IsKind(err, infra.KindStaleVersion):
		return errs.Mark(errs.Wrap(err, ErrStaleBooking.Error()), errs.ErrVersionConflict)
	case infra.IsKind(err, infra.KindCheckViolated), infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, errs.ErrValidation)
	default:
		return errs.Mark(err, errs.ErrPersistence)
	}
}
