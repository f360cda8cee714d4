//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestRestaurant(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO restaurants (id, name) VALUES ($1, $2)", id, name)
	require.NoError(t, err)
	return id
}

func CreateTestCustomer(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO customers (id, name) VALUES ($1, $2)", id, name)
	require.NoError(t, err)
	return id
}

func CreateTestGuest(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO guests (id, name) VALUES ($1, $2)", id, name)
	require.NoError(t, err)
	return id
}

func CreateTestTable(t *testing.T, db DBLike, restaurantID uuid.UUID, name string, capacity int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO restaurant_tables (id, restaurant_id, name, capacity) VALUES ($1, $2, $3, $4)",
		id, restaurantID, name, capacity)
	require.NoError(t, err)
	return id
}

func DeleteTestTable(t *testing.T, db DBLike, id uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), "DELETE FROM restaurant_tables WHERE id = $1", id)
	require.NoError(t, err)
}

// OutboxTopics lists queued notification topics for a booking in insertion order.
func OutboxTopics(t *testing.T, db DBLike, bookingID uuid.UUID) []string {
	t.Helper()

	var topics []string
	err := db.QueryRow(context.Background(), `
		SELECT coalesce(array_agg(topic ORDER BY created_at, topic), '{}')
		FROM notification_jobs
		WHERE payload->>'booking_id' = $1`, bookingID.String()).Scan(&topics)
	require.NoError(t, err)
	return topics
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
