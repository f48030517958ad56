package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"pms/infras/otel"
	"pms/infras/postgres"
	"pms/internal/domains/roomtype/model"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	"pms/shared/logger"
	gRepo "pms/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const roomTypeColumns = "id, property_id, category, bed_type, ac_type, price, is_active, created_on, created_by, updated_on, updated_by"

type RoomType interface {
	Insert(ctx context.Context, model model.RoomType) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomType, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomType, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error

	// ListByIDsTx returns the rate rows referenced by ids, keyed by id.
	ListByIDsTx(ctx context.Context, sqltx *sqlx.Tx, ids []string) (map[string]model.RoomType, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.RoomType]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) RoomType {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RoomType](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) ListByIDsTx(ctx context.Context, sqltx *sqlx.Tx, ids []string) (map[string]model.RoomType, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".roomtype.ListByIDsTx")
	defer scope.End()

	res := make(map[string]model.RoomType, len(ids))
	if len(ids) == 0 {
		return res, nil
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ANY($1::uuid[])", roomTypeColumns, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var roomTypes []model.RoomType
	if err := sqltx.SelectContext(ctx, &roomTypes, query, pq.Array(ids)); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list room types: %w", err)
	}

	for _, roomType := range roomTypes {
		res[roomType.ID] = roomType
	}

	return res, nil
}
