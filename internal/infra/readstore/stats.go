package readstore

import (
	"context"

	"restaurant-booking/internal/domain/booking"
	"restaurant-booking/internal/infra"
	sqlc "restaurant-booking/internal/infra/sqlc/generated"
	"restaurant-booking/internal/usecase/queries"
)

type StatsViewQueries interface {
	CountBookings(ctx context.Context, db sqlc.DBTX) (int64, error)
	CountBookingsByStatus(ctx context.Context, db sqlc.DBTX) ([]sqlc.CountBookingsByStatusRow, error)
	CountTableSlotsByStatuses(ctx context.Context, db sqlc.DBTX, statuses []string) (int64, error)
	CountBookingsByMonth(ctx context.Context, db sqlc.DBTX, timeZone string) ([]sqlc.CountBookingsByMonthRow, error)
	TopCustomers(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.TopCustomersRow, error)
	TopRestaurants(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.TopRestaurantsRow, error)
	CountCustomers(ctx context.Context, db sqlc.DBTX) (int64, error)
	CountGuests(ctx context.Context, db sqlc.DBTX) (int64, error)
	CountRestaurants(ctx context.Context, db sqlc.DBTX) (int64, error)
	CountTables(ctx context.Context, db sqlc.DBTX) (int64, error)
}

// StatsReadStore buckets months in timeZone, the booking zone name.
type StatsReadStore struct {
	queries  StatsViewQueries
	db       sqlc.DBTX
	timeZone string
}

func NewStatsReadStore(queries StatsViewQueries, db sqlc.DBTX, timeZone string) *StatsReadStore {
	return &StatsReadStore{
		queries:  queries,
		db:       db,
		timeZone: timeZone,
	}
}

func (r *StatsReadStore) CountBookings(ctx context.Context) (int64, error) {
	return r.count(ctx, "bookings", r.queries.CountBookings)
}

func (r *StatsReadStore) CountCustomers(ctx context.Context) (int64, error) {
	return r.count(ctx, "customers", r.queries.CountCustomers)
}

func (r *StatsReadStore) CountGuests(ctx context.Context) (int64, error) {
	return r.count(ctx, "guests", r.queries.CountGuests)
}

func (r *StatsReadStore) CountRestaurants(ctx context.Context) (int64, error) {
	return r.count(ctx, "restaurants", r.queries.CountRestaurants)
}

func (r *StatsReadStore) CountTables(ctx context.Context) (int64, error) {
	return r.count(ctx, "tables", r.queries.CountTables)
}

func (r *StatsReadStore) count(ctx context.Context, what string, q func(context.Context, sqlc.DBTX) (int64, error)) (int64, error) {
	n, err := q(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count "+what, err)
	}
	return n, nil
}

func (r *StatsReadStore) CountBookingsByStatus(ctx context.Context) ([]queries.StatusCount, error) {
	rows, err := r.queries.CountBookingsByStatus(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings by status", err)
	}
	out := make([]queries.StatusCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, queries.StatusCount{Status: row.Status, Count: row.Total})
	}
	return out, nil
}

func (r *StatsReadStore) CountTableSlotsByStatuses(ctx context.Context, statuses []booking.Status) (int64, error) {
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}
	n, err := r.queries.CountTableSlotsByStatuses(ctx, r.db, names)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count table slots", err)
	}
	return n, nil
}

func (r *StatsReadStore) CountBookingsByMonth(ctx context.Context) ([]queries.MonthCount, error) {
	rows, err := r.queries.CountBookingsByMonth(ctx, r.db, r.timeZone)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings by month", err)
	}
	out := make([]queries.MonthCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, queries.MonthCount{Month: row.Month, Count: row.Total})
	}
	return out, nil
}

func (r *StatsReadStore) TopCustomers(ctx context.Context, limit int32) ([]queries.RankedEntity, error) {
	rows, err := r.queries.TopCustomers(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to rank customers", err)
	}
	out := make([]queries.RankedEntity, 0, len(rows))
	for _, row := range rows {
		out = append(out, queries.RankedEntity{ID: row.ID, Name: row.Name, Bookings: row.Total})
	}
	return out, nil
}

func (r *StatsReadStore) TopRestaurants(ctx context.Context, limit int32) ([]queries.RankedEntity, error) {
	rows, err := r.queries.TopRestaurants(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to rank restaurants", err)
	}
	out := make([]queries.RankedEntity, 0, len(rows))
	for _, row := range rows {
		out = append(out, queries.RankedEntity{ID: row.ID, Name: row.Name, Bookings: row.Total})
	}
	return out, nil
}
