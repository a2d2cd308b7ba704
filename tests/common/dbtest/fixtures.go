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

// CreateTestProfile stores a profile; an empty phone leaves it without contact info.
func CreateTestProfile(t *testing.T, db DBLike, userID, email, phone, role string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO users (id, email, display_name, phone, role) VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET phone = EXCLUDED.phone, role = EXCLUDED.role`,
		userID, email, strings.Split(email, "@")[0], phone, role)
	require.NoError(t, err)
}

func CreateTestField(t *testing.T, db DBLike, name string, capacity int, price string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO fields (name, capacity, price_per_person) VALUES ($1, $2, $3::numeric) RETURNING id",
		name, capacity, price).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestMatch inserts an empty roster starting at startMinute on date.
func CreateTestMatch(t *testing.T, db DBLike, fieldID uuid.UUID, date time.Time, startMinute, maxParticipants int) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO matches (field_id, match_date, start_minute, duration_minutes, max_participants)
		 VALUES ($1, $2, $3, 120, $4) RETURNING id`,
		fieldID, date.Format("2006-01-02"), startMinute, maxParticipants).Scan(&id)
	require.NoError(t, err)
	return id
}

func CountActiveReservations(t *testing.T, db DBLike, fieldID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM reservations WHERE field_id = $1 AND status = 'active'", fieldID).Scan(&n)
	require.NoError(t, err)
	return n
}

func RosterSize(t *testing.T, db DBLike, matchID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT jsonb_array_length(participants) FROM matches WHERE id = $1", matchID).Scan(&n)
	require.NoError(t, err)
	return n
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
