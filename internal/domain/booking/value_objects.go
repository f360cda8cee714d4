package booking

import (
	"strings"

	"github.com/google/uuid"
)

// Party is the identified party of a booking: exactly one of a registered
// customer or a guest.
type Party struct {
	customerID *uuid.UUID
	guestID    *uuid.UUID
}

func NewParty(customerID, guestID *uuid.UUID) (Party, error) {
	customerID = nilIfZero(customerID)
	guestID = nilIfZero(guestID)

	switch {
	case customerID == nil && guestID == nil:
		return Party{}, ErrPartyRequired
	case customerID != nil && guestID != nil:
		return Party{}, ErrAmbiguousParty
	}
	return Party{customerID: copyID(customerID), guestID: copyID(guestID)}, nil
}

// reconstructParty trusts stored data.
func reconstructParty(customerID, guestID *uuid.UUID) Party {
	return Party{customerID: copyID(customerID), guestID: copyID(guestID)}
}

func (p Party) CustomerID() *uuid.UUID { return copyID(p.customerID) }
func (p Party) GuestID() *uuid.UUID    { return copyID(p.guestID) }
func (p Party) IsGuest() bool          { return p.guestID != nil }

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}

// Reservation is the sub-record attached once tables are committed.
type Reservation struct {
	tableIDs []uuid.UUID
	status   ReservationStatus
}

func NewReservation(tableIDs []uuid.UUID, status ReservationStatus) (*Reservation, error) {
	if len(tableIDs) == 0 {
		return nil, ErrEmptyTableList
	}
	if status == "" {
		status = ReservationReserved
	}
	return &Reservation{tableIDs: copyIDs(tableIDs), status: status}, nil
}

func ReconstructReservation(tableIDs []uuid.UUID, status ReservationStatus) *Reservation {
	return &Reservation{tableIDs: copyIDs(tableIDs), status: status}
}

// TableIDs keeps the assigned order and any duplicates.
func (r *Reservation) TableIDs() []uuid.UUID      { return copyIDs(r.tableIDs) }
func (r *Reservation) Status() ReservationStatus { return r.status }
func (r *Reservation) SlotCount() int            { return len(r.tableIDs) }

// DistinctIDs deduplicates ids keeping first-seen order.
func DistinctIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func nilIfZero(id *uuid.UUID) *uuid.UUID {
	if id == nil || *id == uuid.Nil {
		return nil
	}
	return id
}

func copyID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func copyIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return nil
	}
	out := make([]uuid.UUID, len(ids))
	copy(out, ids)
	return out
}
