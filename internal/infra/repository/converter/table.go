package converter

import (
	"restaurant-booking/internal/domain/table"
	sqlc "restaurant-booking/internal/infra/sqlc/generated"
)

func TableFromRow(row sqlc.RestaurantTables) *table.Table {
	return table.ReconstructTable(row.ID, row.RestaurantID, row.Name, int(row.Capacity))
}

func TablesFromRows(rows []sqlc.RestaurantTables) []*table.Table {
	out := make([]*table.Table, 0, len(rows))
	for _, r := range rows {
		out = append(out, TableFromRow(r))
	}
	return out
}
