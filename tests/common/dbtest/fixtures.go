//go:build unit || e2e

package dbtest

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// InsertReservation writes a reservation row directly, bypassing the overlap lock.
func InsertReservation(t *testing.T, db DBLike, userID uuid.UUID, roomID string, start, end time.Time, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO reservations (id, user_id, room_id, start_time, end_time, status) VALUES ($1, $2, $3, $4, $5, $6)",
		id, userID, roomID, start, end, status)
	require.NoError(t, err)
	return id
}

func ReservationStatus(t *testing.T, db DBLike, id uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM reservations WHERE id = $1", id).Scan(&status)
	require.NoError(t, err)
	return status
}

// SetTrustScore upserts a score given in hundredths.
func SetTrustScore(t *testing.T, db DBLike, userID uuid.UUID, centi int) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO trust_scores (user_id, score_centi) VALUES ($1, $2) ON CONFLICT (user_id) DO UPDATE SET score_centi = EXCLUDED.score_centi",
		userID, centi)
	require.NoError(t, err)
}

func SetPointBalance(t *testing.T, db DBLike, userID uuid.UUID, balance int) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO point_balances (user_id, balance) VALUES ($1, $2) ON CONFLICT (user_id) DO UPDATE SET balance = EXCLUDED.balance",
		userID, balance)
	require.NoError(t, err)
}

func CountPointEvents(t *testing.T, db DBLike, userID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM point_events WHERE user_id = $1", userID).Scan(&n)
	require.NoError(t, err)
	return n
}

// CountActiveReservations counts reserved or in-use rows for a room.
func CountActiveReservations(t *testing.T, db DBLike, roomID string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM reservations WHERE room_id = $1 AND status IN ('reserved', 'in_use')", roomID).Scan(&n)
	require.NoError(t, err)
	return n
}

// TrustScoreCenti reads a stored score in hundredths.
func TrustScoreCenti(t *testing.T, db DBLike, userID uuid.UUID) int {
	t.Helper()

	var centi int
	err := db.QueryRow(context.Background(), "SELECT score_centi FROM trust_scores WHERE user_id = $1", userID).Scan(&centi)
	require.NoError(t, err)
	return centi
}

// appTables lists every table the service writes, children first.
var appTables = []string{"point_events", "point_balances", "trust_scores", "reservations"}

// ResetDB empties the application tables between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE "+strings.Join(appTables, ", "))
	return err
}
