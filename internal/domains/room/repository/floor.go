package repository

//go:generate go run go.uber.org/mock/mockgen -source=./floor.go -destination=../mocks/floor_mock.go -package=mocks

import (
	"context"
	"fmt"
	"pms/infras/otel"
	"pms/infras/postgres"
	"pms/internal/domains/room/model"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	"pms/shared/logger"
	gRepo "pms/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Floor interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Floor, error)
	// EnsureTx creates the floors that do not exist yet.
	EnsureTx(ctx context.Context, sqltx *sqlx.Tx, floors []model.Floor) error
	// SyncRoomsCountTx recounts the active rooms of the given floors.
	SyncRoomsCountTx(ctx context.Context, sqltx *sqlx.Tx, propertyID string, floorNos []int) error
}

type floorRepositoryImpl struct {
	gRepo.Repository[model.Floor]
	otel otel.Otel
}

func NewFloor(db *postgres.Connection, otel otel.Otel) Floor {
	return &floorRepositoryImpl{
		Repository: gRepo.NewRepository[model.Floor](model.FloorEntityName, model.FloorTableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

func (r *floorRepositoryImpl) EnsureTx(ctx context.Context, sqltx *sqlx.Tx, floors []model.Floor) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".floor.EnsureTx")
	defer scope.End()

	if len(floors) == 0 {
		return nil
	}

	query := r.InsertQuery("ON CONFLICT (property_id, floor_no) DO NOTHING")
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := sqltx.NamedExecContext(ctx, query, floors); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to ensure floors: %w", err)
	}

	return nil
}

func (r *floorRepositoryImpl) SyncRoomsCountTx(ctx context.Context, sqltx *sqlx.Tx, propertyID string, floorNos []int) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".floor.SyncRoomsCountTx")
	defer scope.End()

	query := fmt.Sprintf(`UPDATE %[1]s f SET rooms_count = (
		SELECT COUNT(1) FROM %[2]s r WHERE r.property_id = f.property_id AND r.floor_no = f.floor_no AND r.is_active
	) WHERE f.property_id = $1 AND f.floor_no = ANY($2::int[])`, model.FloorTableName, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	floors := make([]int64, len(floorNos))
	for i, no := range floorNos {
		floors[i] = int64(no)
	}

	if _, err := sqltx.ExecContext(ctx, query, propertyID, pq.Array(floors)); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to sync rooms count: %w", err)
	}

	return nil
}
