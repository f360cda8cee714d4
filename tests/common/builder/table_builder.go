//go:build unit || e2e

package builder

import (
	"fmt"

	"restaurant-booking/internal/domain/table"

	"github.com/google/uuid"
)

type TableBuilder struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	Name         string
	Capacity     int
}

func NewTableBuilder() *TableBuilder {
	id := uuid.New()
	return &TableBuilder{
		ID:           id,
		RestaurantID: uuid.New(),
		Name:         fmt.Sprintf("T-%s", id.String()[:4]),
		Capacity:     4,
	}
}

func (b *TableBuilder) With(mutate func(*TableBuilder)) *TableBuilder {
	mutate(b)
	return b
}

func (b *TableBuilder) WithName(name string) *TableBuilder {
	b.Name = name
	return b
}

func (b *TableBuilder) WithRestaurantID(id uuid.UUID) *TableBuilder {
	b.RestaurantID = id
	return b
}

func (b *TableBuilder) BuildDomain() *table.Table {
	return table.ReconstructTable(b.ID, b.RestaurantID, b.Name, b.Capacity)
}

// OrderedTables returns n tables in one restaurant whose IDs ascend with the
// given names, so ID order equals name order.
func OrderedTables(restaurantID uuid.UUID, names ...string) []*table.Table {
	out := make([]*table.Table, 0, len(names))
	for i, name := range names {
		id := uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", i+1))
		out = append(out, table.ReconstructTable(id, restaurantID, name, 4))
	}
	return out
}
