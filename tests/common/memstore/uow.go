//go:build unit

package memstore

import (
	"context"
	"time"

	"restaurant-booking/internal/domain/booking"
	"restaurant-booking/internal/domain/table"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type undo func()

type memTx struct {
	s    *Store
	undo []undo
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := &memTx{s: s}
	if err := fn(ctx, tx); err != nil {
		tx.rollback()
		return err
	}
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &memTx{s: s}
}

func (t *memTx) rollback() {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
}

func (t *memTx) Bookings() shared.BookingRepository           { return t }
func (t *memTx) Notifications() shared.NotificationRepository { return notifications{t} }
func (t *memTx) Reads() shared.CommandReads                   { return t }

func (t *memTx) Create(ctx context.Context, b *booking.Booking) error {
	s := t.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failed("failed to create booking"); err != nil {
		return err
	}
	if _, ok := s.bookings[b.ID()]; ok {
		return infra.WrapRepoErr("bookings_pkey", nil, infra.KindDuplicateKey)
	}
	if _, ok := s.restaurants[b.RestaurantID()]; !ok {
		return infra.WrapRepoErr("bookings_restaurant_id_fkey", nil, infra.KindForeignKeyViolated)
	}
	if err := checkRow(b); err != nil {
		return err
	}
	id := b.ID()
	s.bookings[id] = clone(b, 1)
	t.undo = append(t.undo, func() { delete(s.bookings, id) })
	return nil
}

func (t *memTx) Save(ctx context.Context, b *booking.Booking, expectedVersion *int64) error {
	s := t.s
	s.mu.Lock()
	hook := s.onSave
	s.onSave = nil
	s.mu.Unlock()
	if hook != nil {
		hook()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failed("failed to save booking"); err != nil {
		return err
	}
	current, ok := s.bookings[b.ID()]
	if !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	if expectedVersion != nil && current.Version() != *expectedVersion {
		return infra.WrapRepoErr("booking version changed", nil, infra.KindStaleVersion)
	}
	if err := checkRow(b); err != nil {
		return err
	}
	id := b.ID()
	s.bookings[id] = clone(b, current.Version()+1)
	t.undo = append(t.undo, func() { s.bookings[id] = current })
	return nil
}

func (t *memTx) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return t.s.FindByID(ctx, id)
}

func (t *memTx) TablesByIDs(ctx context.Context, ids []uuid.UUID) ([]*table.Table, error) {
	return t.s.FindByIDs(ctx, ids)
}

func (t *memTx) RestaurantExists(ctx context.Context, id uuid.UUID) (bool, error) {
	s := t.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failed("failed to check restaurant"); err != nil {
		return false, err
	}
	_, ok := s.restaurants[id]
	return ok, nil
}

type notifications struct{ t *memTx }

func (n notifications) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	s := n.t.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failed("failed to create notification job"); err != nil {
		return err
	}
	id := uuid.New()
	s.jobs = append(s.jobs, Job{ID: id, Kind: kind, Topic: topic, Payload: payload, RunAt: runAt})
	n.t.undo = append(n.t.undo, func() {
		for i, j := range s.jobs {
			if j.ID == id {
				s.jobs = append(s.jobs[:i], s.jobs[i+1:]...)
				return
			}
		}
	})
	return nil
}
