package repository

//go:generate go run go.uber.org/mock/mockgen -source=./room_detail.go -destination=../mocks/room_detail_mock.go -package=mocks

import (
	"context"
	"fmt"
	"pms/infras/otel"
	"pms/infras/postgres"
	"pms/internal/domains/booking/model"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	"pms/shared/logger"
	gRepo "pms/shared/repository"
	"pms/shared/timezone"

	"github.com/jmoiron/sqlx"
)

type RoomDetail interface {
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.RoomDetail) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomDetail, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomDetail, error)

	// SetRoomStatusTx updates the stay state of every active room of a booking.
	SetRoomStatusTx(ctx context.Context, sqltx *sqlx.Tx, bookingID, roomStatus, user string) error
	// CancelTx soft-cancels the active detail of roomID and reports whether one existed.
	CancelTx(ctx context.Context, sqltx *sqlx.Tx, bookingID, roomID, user string) (bool, error)
	CountActiveTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string) (int, error)
}

type roomDetailRepositoryImpl struct {
	gRepo.Repository[model.RoomDetail]
	otel otel.Otel
}

func NewRoomDetail(db *postgres.Connection, otel otel.Otel) RoomDetail {
	return &roomDetailRepositoryImpl{
		Repository: gRepo.NewRepository[model.RoomDetail](model.RoomDetailEntityName, model.RoomDetailTableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

func (r *roomDetailRepositoryImpl) SetRoomStatusTx(ctx context.Context, sqltx *sqlx.Tx, bookingID, roomStatus, user string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".roomdetail.SetRoomStatusTx")
	defer scope.End()

	query := fmt.Sprintf(`UPDATE %s SET room_status = $2, updated_on = $3, updated_by = $4
		WHERE booking_id = $1 AND is_cancelled = false`, model.RoomDetailTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := sqltx.ExecContext(ctx, query, bookingID, roomStatus, timezone.Now(), user); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to update room status of booking: %w", err)
	}

	return nil
}

func (r *roomDetailRepositoryImpl) CancelTx(ctx context.Context, sqltx *sqlx.Tx, bookingID, roomID, user string) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".roomdetail.CancelTx")
	defer scope.End()

	query := fmt.Sprintf(`UPDATE %s SET is_cancelled = true, cancelled_on = $3, cancelled_by = $4, room_status = $5,
		updated_on = $3, updated_by = $4
		WHERE booking_id = $1 AND room_id = $2 AND is_cancelled = false`, model.RoomDetailTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := sqltx.ExecContext(ctx, query, bookingID, roomID, timezone.Now(), user, model.RoomStatusCancelled)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to cancel booking room: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read cancelled booking rooms: %w", err)
	}

	return affected > 0, nil
}

func (r *roomDetailRepositoryImpl) CountActiveTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string) (int, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".roomdetail.CountActiveTx")
	defer scope.End()

	query := fmt.Sprintf("SELECT COUNT(1) FROM %s WHERE booking_id = $1 AND is_cancelled = false", model.RoomDetailTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var count int
	if err := sqltx.GetContext(ctx, &count, query, bookingID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count active booking rooms: %w", err)
	}

	return count, nil
}
