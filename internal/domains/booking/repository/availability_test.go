package repository_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pms/infras/otel/mocks"
	"pms/infras/postgres"
	"pms/internal/domains/booking/model"
	"pms/internal/domains/booking/repository"
)

var conflictColumns = []string{"room_id", "room_no", "booking_id", "booking_status"}

// overlapPredicate matches a claim only while it is uncancelled, held by one of
// the passed statuses and intersecting [arrival, departure). Touching ranges
// fail the strict comparisons.
var overlapPredicate = inOrder(
	"WHERE rd.room_id = ANY($1::uuid[])",
	"AND rd.is_cancelled = false",
	"AND b.booking_status = ANY($2::text[])",
	"(b.estimated_arrival < $3 AND COALESCE(b.actual_departure, b.estimated_departure) > $4)",
	"OR ($5 AND b.booking_status = 'CHECKED_IN')",
	"AND ($6::uuid IS NULL OR b.id <> $6::uuid)",
)

func inOrder(fragments ...string) string {
	quoted := make([]string, len(fragments))
	for i, fragment := range fragments {
		quoted[i] = regexp.QuoteMeta(fragment)
	}

	return "(?s)" + strings.Join(quoted, ".*")
}

// textArray matches a pq encoded text[] argument.
type textArray []string

func (a textArray) Match(v driver.Value) bool {
	want, err := pq.Array([]string(a)).Value()

	return err == nil && v == want
}

func statusNames(statuses ...model.Status) textArray {
	names := make(textArray, len(statuses))
	for i, status := range statuses {
		names[i] = string(status)
	}

	return names
}

func newAvailability(t *testing.T) (repository.Availability, *postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	conn := postgres.NewFromDB(sqlx.NewDb(db, "postgres"), 0, sql.LevelDefault)

	return repository.NewAvailability(conn, mocks.NewOtel()), conn, mock
}

func TestAvailability_FindConflicts(t *testing.T) {
	arrival := time.Date(2024, 6, 3, 14, 0, 0, 0, time.UTC)
	departure := time.Date(2024, 6, 7, 11, 0, 0, 0, time.UTC)

	t.Run("overlapping claim is reported", func(t *testing.T) {
		repo, _, mock := newAvailability(t)

		mock.ExpectQuery(overlapPredicate).
			WithArgs(textArray{"r-101"}, statusNames(model.ClaimingStatuses...), departure, arrival, false, nil).
			WillReturnRows(sqlmock.NewRows(conflictColumns).AddRow("r-101", "101", "b-1", "CONFIRMED"))

		conflicts, err := repo.FindConflicts(context.Background(), model.ConflictQuery{
			RoomIDs:   []string{"r-101"},
			Arrival:   arrival,
			Departure: departure,
		})

		require.NoError(t, err)
		assert.Equal(t, []model.Conflict{{RoomID: "r-101", RoomNo: "101", BookingID: "b-1", BookingStatus: model.StatusConfirmed}}, conflicts)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("finished statuses never reach the query", func(t *testing.T) {
		repo, _, mock := newAvailability(t)

		mock.ExpectQuery(overlapPredicate).
			WithArgs(textArray{"r-101"}, statusNames(model.StatusConfirmed), departure, arrival, false, nil).
			WillReturnRows(sqlmock.NewRows(conflictColumns))

		conflicts, err := repo.FindConflicts(context.Background(), model.ConflictQuery{
			RoomIDs:   []string{"r-101"},
			Arrival:   arrival,
			Departure: departure,
			Statuses:  []model.Status{model.StatusCancelled, model.StatusConfirmed, model.StatusCheckedOut},
		})

		require.NoError(t, err)
		assert.Empty(t, conflicts)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rooms skips the query", func(t *testing.T) {
		repo, _, mock := newAvailability(t)

		conflicts, err := repo.FindConflicts(context.Background(), model.ConflictQuery{Arrival: arrival, Departure: departure})

		require.NoError(t, err)
		assert.Empty(t, conflicts)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query failure", func(t *testing.T) {
		repo, _, mock := newAvailability(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM booking_room_details rd")).WillReturnError(errors.New("connection reset"))

		_, err := repo.FindConflicts(context.Background(), model.ConflictQuery{RoomIDs: []string{"r-101"}, Arrival: arrival, Departure: departure})

		assert.Error(t, err)
	})
}

func TestAvailability_FindConflictsTx(t *testing.T) {
	repo, conn, mock := newAvailability(t)
	now := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	departure := time.Date(2024, 6, 5, 11, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(overlapPredicate).
		WithArgs(textArray{"r-101"}, statusNames(model.StatusConfirmed, model.StatusCheckedIn), departure, now, true, "b-self").
		WillReturnRows(sqlmock.NewRows(conflictColumns).AddRow("r-101", "101", "b-other", "CHECKED_IN"))
	mock.ExpectCommit()

	var conflicts []model.Conflict

	err := conn.WithTransaction(context.Background(), func(tx *sqlx.Tx) error {
		var err error

		conflicts, err = repo.FindConflictsTx(context.Background(), tx, model.ConflictQuery{
			RoomIDs:          []string{"r-101"},
			Arrival:          now,
			Departure:        departure,
			Statuses:         []model.Status{model.StatusConfirmed, model.StatusCheckedIn},
			ExcludeBookingID: "b-self",
			IncludeOccupied:  true,
		})

		return err
	})

	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "b-other", conflicts[0].BookingID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
