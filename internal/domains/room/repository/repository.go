package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

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
	"pms/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const roomColumns = "id, property_id, room_no, room_type_id, floor_no, is_dirty, is_active, created_on, created_by, updated_on, updated_by"

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Room, error)

	// ListByProperty returns the rooms of a property ordered by floor then room number.
	ListByProperty(ctx context.Context, propertyID string, activeOnly bool) ([]model.Room, error)
	// InsertIgnoreConflictTx inserts rooms and skips numbers the property already has.
	InsertIgnoreConflictTx(ctx context.Context, sqltx *sqlx.Tx, rooms []model.Room) (int, error)
	// ListByPropertyTx returns every room of the property in insertion order.
	ListByPropertyTx(ctx context.Context, sqltx *sqlx.Tx, propertyID string) ([]model.Room, error)
	// LockByIDsTx takes row locks on the rooms in id order.
	LockByIDsTx(ctx context.Context, sqltx *sqlx.Tx, ids []string) ([]model.Room, error)
	MarkDirtyTx(ctx context.Context, sqltx *sqlx.Tx, ids []string, user string) error
	// LockPropertyTx serializes room numbering for one property until sqltx ends.
	LockPropertyTx(ctx context.Context, sqltx *sqlx.Tx, propertyID string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) InsertIgnoreConflictTx(ctx context.Context, sqltx *sqlx.Tx, rooms []model.Room) (int, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.InsertIgnoreConflictTx")
	defer scope.End()

	if len(rooms) == 0 {
		return 0, nil
	}

	query := r.InsertQuery("ON CONFLICT DO NOTHING")
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := sqltx.NamedExecContext(ctx, query, rooms)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to insert rooms: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted rooms: %w", err)
	}

	return int(inserted), nil
}

func (r *repositoryImpl) ListByProperty(ctx context.Context, propertyID string, activeOnly bool) ([]model.Room, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.ListByProperty")
	defer scope.End()

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE property_id = $1 AND (is_active OR NOT $2)
		ORDER BY floor_no, length(room_no), room_no`, roomColumns, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rooms []model.Room
	if err := r.db.Read.SelectContext(ctx, &rooms, query, propertyID, activeOnly); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	return rooms, nil
}

func (r *repositoryImpl) ListByPropertyTx(ctx context.Context, sqltx *sqlx.Tx, propertyID string) ([]model.Room, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.ListByPropertyTx")
	defer scope.End()

	query := fmt.Sprintf("SELECT %s FROM %s WHERE property_id = $1 ORDER BY created_on, room_no", roomColumns, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rooms []model.Room
	if err := sqltx.SelectContext(ctx, &rooms, query, propertyID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list rooms of property: %w", err)
	}

	return rooms, nil
}

func (r *repositoryImpl) LockByIDsTx(ctx context.Context, sqltx *sqlx.Tx, ids []string) ([]model.Room, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.LockByIDsTx")
	defer scope.End()

	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ANY($1::uuid[]) ORDER BY id FOR UPDATE", roomColumns, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rooms []model.Room
	if err := sqltx.SelectContext(ctx, &rooms, query, pq.Array(ids)); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to lock rooms: %w", err)
	}

	return rooms, nil
}

func (r *repositoryImpl) MarkDirtyTx(ctx context.Context, sqltx *sqlx.Tx, ids []string, user string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.MarkDirtyTx")
	defer scope.End()

	if len(ids) == 0 {
		return nil
	}

	query := fmt.Sprintf("UPDATE %s SET is_dirty = true, updated_on = $2, updated_by = $3 WHERE id = ANY($1::uuid[])", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := sqltx.ExecContext(ctx, query, pq.Array(ids), timezone.Now(), user); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to mark rooms dirty: %w", err)
	}

	return nil
}

func (r *repositoryImpl) LockPropertyTx(ctx context.Context, sqltx *sqlx.Tx, propertyID string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.LockPropertyTx")
	defer scope.End()

	if _, err := sqltx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", model.TableName+":"+propertyID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to lock property rooms: %w", err)
	}

	return nil
}
