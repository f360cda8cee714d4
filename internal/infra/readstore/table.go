package readstore

//go:generate mockgen -source=table.go -destination=../../../tests/mock/readstore/table_queries.go -package=readstoremock

import (
	"context"

	"restaurant-booking/internal/domain/table"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/infra/repository/converter"
	sqlc "restaurant-booking/internal/infra/sqlc/generated"
	"restaurant-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type TableViewQueries interface {
	GetTablesByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.RestaurantTables, error)
	GetTablesExcludingIDs(ctx context.Context, db sqlc.DBTX, arg sqlc.GetTablesExcludingIDsParams) ([]sqlc.RestaurantTables, error)
	RestaurantExists(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error)
}

type TableReadStore struct {
	queries TableViewQueries
	db      sqlc.DBTX
}

func NewTableReadStore(queries TableViewQueries, db sqlc.DBTX) *TableReadStore {
	return &TableReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByIDs returns only the tables that exist, ordered by ID.
func (r *TableReadStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*table.Table, error) {
	if len(ids) == 0 {
		return []*table.Table{}, nil
	}
	rows, err := r.queries.GetTablesByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find tables by IDs", err)
	}
	return converter.TablesFromRows(rows), nil
}

func (r *TableReadStore) FindExcludingIDs(ctx context.Context, ids []uuid.UUID, restaurantID *uuid.UUID) ([]*table.Table, error) {
	if ids == nil {
		ids = []uuid.UUID{}
	}
	rows, err := r.queries.GetTablesExcludingIDs(ctx, r.db, sqlc.GetTablesExcludingIDsParams{
		Ids:          ids,
		RestaurantID: pgconv.UUIDPtrToPgtype(restaurantID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tables", err)
	}
	return converter.TablesFromRows(rows), nil
}

func (r *TableReadStore) RestaurantExists(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := r.queries.RestaurantExists(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check restaurant existence", err)
	}
	return ok, nil
}
