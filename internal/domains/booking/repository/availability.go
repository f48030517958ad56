package repository

//go:generate go run go.uber.org/mock/mockgen -source=./availability.go -destination=../mocks/availability_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"pms/infras/otel"
	"pms/infras/postgres"
	"pms/internal/domains/booking/model"
	roomModel "pms/internal/domains/room/model"
	"pms/shared/constant"
	"pms/shared/logger"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// conflictQuery selects the active claims on a set of rooms that overlap a
// half-open range. A claim is an uncancelled detail row of a booking in one of
// the given statuses whose [arrival, effective departure) intersects the range.
var conflictQuery = fmt.Sprintf(`SELECT rd.room_id, r.room_no, b.id AS booking_id, b.booking_status
	FROM %[1]s rd
	JOIN %[2]s b ON b.id = rd.booking_id
	JOIN %[3]s r ON r.id = rd.room_id
	WHERE rd.room_id = ANY($1::uuid[])
		AND rd.is_cancelled = false
		AND b.booking_status = ANY($2::text[])
		AND (
			(b.estimated_arrival < $3 AND COALESCE(b.actual_departure, b.estimated_departure) > $4)
			OR ($5 AND b.booking_status = '%[4]s')
		)
		AND ($6::uuid IS NULL OR b.id <> $6::uuid)
	ORDER BY r.room_no, b.estimated_arrival`,
	model.RoomDetailTableName, model.TableName, roomModel.TableName, model.StatusCheckedIn)

type Availability interface {
	// FindConflicts runs on the read pool and takes no locks.
	FindConflicts(ctx context.Context, query model.ConflictQuery) ([]model.Conflict, error)
	// FindConflictsTx sees the rows locked and written by sqltx.
	FindConflictsTx(ctx context.Context, sqltx *sqlx.Tx, query model.ConflictQuery) ([]model.Conflict, error)
}

type availabilityImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func NewAvailability(db *postgres.Connection, otel otel.Otel) Availability {
	return &availabilityImpl{
		db:   db,
		otel: otel,
	}
}

func (r *availabilityImpl) FindConflicts(ctx context.Context, query model.ConflictQuery) ([]model.Conflict, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.FindConflicts")
	defer scope.End()

	return r.find(ctx, r.db.Read, query)
}

func (r *availabilityImpl) FindConflictsTx(ctx context.Context, sqltx *sqlx.Tx, query model.ConflictQuery) ([]model.Conflict, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.FindConflictsTx")
	defer scope.End()

	return r.find(ctx, sqltx, query)
}

func (r *availabilityImpl) find(ctx context.Context, q sqlx.QueryerContext, query model.ConflictQuery) ([]model.Conflict, error) {
	conflicts := []model.Conflict{}
	if len(query.RoomIDs) == 0 {
		return conflicts, nil
	}

	statuses := query.Statuses
	if len(statuses) == 0 {
		statuses = model.ClaimingStatuses
	}

	statusArgs := make([]string, 0, len(statuses))
	for _, status := range statuses {
		if status.ClaimsRooms() {
			statusArgs = append(statusArgs, string(status))
		}
	}

	exclude := sql.NullString{String: query.ExcludeBookingID, Valid: query.ExcludeBookingID != constant.Empty}

	err := sqlx.SelectContext(ctx, q, &conflicts, conflictQuery,
		pq.Array(query.RoomIDs), pq.Array(statusArgs), query.Departure, query.Arrival, query.IncludeOccupied, exclude)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to find conflicting bookings: %w", err)
	}

	return conflicts, nil
}
