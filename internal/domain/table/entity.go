package table

import (
	"bytes"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Table is a referenceable physical table. The allocation engine only relies
// on its ID; the descriptive fields are carried through to callers.
type Table struct {
	id           uuid.UUID
	restaurantID uuid.UUID
	name         string
	capacity     int
}

func ReconstructTable(id, restaurantID uuid.UUID, name string, capacity int) *Table {
	return &Table{
		id:           id,
		restaurantID: restaurantID,
		name:         strings.TrimSpace(name),
		capacity:     capacity,
	}
}

func (t *Table) ID() uuid.UUID           { return t.id }
func (t *Table) RestaurantID() uuid.UUID { return t.restaurantID }
func (t *Table) Name() string            { return t.name }
func (t *Table) Capacity() int           { return t.capacity }

// IndexByID maps tables by ID. Later duplicates overwrite earlier ones.
func IndexByID(tables []*Table) map[uuid.UUID]*Table {
	idx := make(map[uuid.UUID]*Table, len(tables))
	for _, t := range tables {
		if t != nil {
			idx[t.id] = t
		}
	}
	return idx
}

// CompareIDs orders UUIDs by their bytes, matching Postgres uuid ordering.
func CompareIDs(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}

// SortByID returns a copy of tables ordered by ID.
func SortByID(tables []*Table) []*Table {
	out := make([]*Table, 0, len(tables))
	for _, t := range tables {
		if t != nil {
			out = append(out, t)
		}
	}
	slices.SortFunc(out, func(a, b *Table) int { return CompareIDs(a.id, b.id) })
	return out
}
