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

const defaultHours = `{
	"monday":    {"open": "09:00", "close": "17:00"},
	"tuesday":   {"open": "09:00", "close": "17:00"},
	"wednesday": {"open": "09:00", "close": "17:00"},
	"thursday":  {"open": "09:00", "close": "17:00"},
	"friday":    {"open": "09:00", "close": "17:00"},
	"saturday":  {"open": "10:00", "close": "14:00"},
	"sunday":    {"isOpen": false}
}`

// CreateTestBusiness inserts a business with Mon-Fri 09-17, Sat 10-14 hours
// and an empty roster.
func CreateTestBusiness(t *testing.T, db DBLike, ownerID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO businesses (id, owner_id, name, working_hours) VALUES ($1, $2, $3, $4::jsonb)`,
		id, ownerID, name, defaultHours)
	require.NoError(t, err)
	return id
}

// AddTestEmployee appends a roster entry directly to the JSONB document.
func AddTestEmployee(t *testing.T, db DBLike, businessID, userID uuid.UUID, role string, perms map[string]bool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`UPDATE businesses
		    SET employees = employees || jsonb_build_array(jsonb_build_object(
		        'id', $2::uuid, 'userId', $3::uuid, 'role', $4::text,
		        'permissions', jsonb_build_object(
		            'manageBookings', $5::boolean, 'manageServices', $6::boolean,
		            'viewAnalytics', $7::boolean, 'editProfile', $8::boolean),
		        'addedAt', now()))
		  WHERE id = $1`,
		businessID, id, userID, role,
		perms["manageBookings"], perms["manageServices"], perms["viewAnalytics"], perms["editProfile"])
	require.NoError(t, err)
	return id
}

func CreateTestService(t *testing.T, db DBLike, businessID uuid.UUID, name string, priceCents int64, durationMinutes int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO services (id, business_id, name, price_cents, duration_minutes) VALUES ($1, $2, $3, $4, $5)`,
		id, businessID, name, priceCents, durationMinutes)
	require.NoError(t, err)
	return id
}

type BookingFixture struct {
	UserID     uuid.UUID
	BusinessID uuid.UUID
	ServiceID  uuid.UUID
	Date       string
	StartTime  string
	EndTime    string
	Status     string
	Rating     *int
}

// CreateTestBooking copies the service snapshot from the services row, so the
// service must exist.
func CreateTestBooking(t *testing.T, db DBLike, f BookingFixture) uuid.UUID {
	t.Helper()

	if f.Status == "" {
		f.Status = "pending"
	}
	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO bookings (
		    id, user_id, business_id, service_id, service_name, service_price_cents,
		    service_duration_minutes, booking_date, start_time, end_time, status,
		    total_price_cents, rating)
		 SELECT $1, $2, $3, s.id, s.name, s.price_cents, s.duration_minutes,
		        $5::date, $6, $7, $8, s.price_cents, $9
		   FROM services s WHERE s.id = $4`,
		id, f.UserID, f.BusinessID, f.ServiceID, f.Date, f.StartTime, f.EndTime, f.Status, f.Rating)
	require.NoError(t, err)
	return id
}

// BusinessRating reads the stored aggregate, not a recomputation.
func BusinessRating(t *testing.T, db DBLike, businessID uuid.UUID) (float64, int) {
	t.Helper()

	var (
		avg float64
		n   int
	)
	err := db.QueryRow(context.Background(),
		`SELECT rating, num_reviews FROM businesses WHERE id = $1`, businessID).Scan(&avg, &n)
	require.NoError(t, err)
	return avg, n
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
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
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
