package booking

import "strings"

// Status is the booking-level status column.
type Status string

const (
	StatusPending       Status = "PENDING"
	StatusTableAssigned Status = "TABLE_ASSIGNED"
	StatusConfirmed     Status = "CONFIRMED"
	StatusCompleted     Status = "COMPLETED"
	StatusCancelled     Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusTableAssigned, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// NormalizeStatus upper-cases and trims s. Unknown values are kept so the
// store can reject them.
func NormalizeStatus(s string) Status {
	return Status(strings.ToUpper(strings.TrimSpace(s)))
}

// SlotCountingStatuses are the booking statuses whose table-slots count as
// "tables ever assigned" in statistics.
var SlotCountingStatuses = []Status{StatusTableAssigned, StatusCompleted}

// ReservationStatus is the status of the reservation sub-record. The engine
// only sets RESERVED; every other value comes from the caller.
type ReservationStatus string

const (
	ReservationReserved  ReservationStatus = "RESERVED"
	ReservationConfirmed ReservationStatus = "CONFIRMED"
	ReservationSeated    ReservationStatus = "SEATED"
	ReservationCompleted ReservationStatus = "COMPLETED"
	ReservationCancelled ReservationStatus = "CANCELLED"
	ReservationNoShow    ReservationStatus = "NO_SHOW"
)

func (s ReservationStatus) String() string {
	return string(s)
}

// IsKnown reports whether s is one of the statuses this service names.
// Unknown statuses are still accepted by SetReservationStatus.
func (s ReservationStatus) IsKnown() bool {
	switch s {
	case ReservationReserved, ReservationConfirmed, ReservationSeated,
		ReservationCompleted, ReservationCancelled, ReservationNoShow:
		return true
	default:
		return false
	}
}

// ParseReservationStatus trims s and keeps its case. Reservation statuses are
// stored as the caller supplied them.
func ParseReservationStatus(s string) ReservationStatus {
	return ReservationStatus(strings.TrimSpace(s))
}

// ReservationState is derived from whether a reservation sub-record exists.
type ReservationState string

const (
	StateUnassigned ReservationState = "UNASSIGNED"
	StateAssigned   ReservationState = "ASSIGNED"
)

// Assigning tables is the only transition the engine drives. Reassignment
// replaces the previous reservation. Status changes within ASSIGNED are
// caller-driven and not constrained here.
var transitions = map[ReservationState][]ReservationState{
	StateUnassigned: {StateAssigned},
	StateAssigned:   {StateAssigned},
}

func (s ReservationState) CanTransitionTo(next ReservationState) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
