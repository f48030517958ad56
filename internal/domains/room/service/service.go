package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"pms/config"
	"pms/infras/otel"
	"pms/infras/postgres"
	"pms/internal/domains/room/model"
	"pms/internal/domains/room/model/dto"
	"pms/internal/domains/room/repository"
	roomTypeModel "pms/internal/domains/roomtype/model"
	roomTypeRepo "pms/internal/domains/roomtype/repository"
	"pms/shared"
	"pms/shared/cache"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	"pms/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom  = model.CachePrefix + ":get"
	cacheListRoom = model.CachePrefix + ":list"

	reasonRoomNoTaken = "ROOM_NO_TAKEN"
)

type Room interface {
	GenerateRooms(ctx context.Context, propertyID string, req dto.GenerateRoomsRequest) (dto.GenerateRoomsResponse, error)
	AddRoom(ctx context.Context, propertyID string, req dto.AddRoomRequest) (dto.RoomResponse, error)
	ListByProperty(ctx context.Context, propertyID string, activeOnly bool) ([]dto.RoomResponse, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateRoomRequest) error
	Deactivate(ctx context.Context, id string) error
	MarkClean(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Room
	floorRepo    repository.Floor
	roomTypeRepo roomTypeRepo.RoomType
	db           postgres.Transactor
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Room,
	floorRepo repository.Floor,
	roomTypeRepo roomTypeRepo.RoomType,
	db postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Room {
	return &serviceImpl{
		repo:         repo,
		floorRepo:    floorRepo,
		roomTypeRepo: roomTypeRepo,
		db:           db,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// GenerateRooms seeds whole floors. Numbers the property already has are
// skipped, so reseeding the same plan inserts nothing.
func (s *serviceImpl) GenerateRooms(ctx context.Context, propertyID string, req dto.GenerateRoomsRequest) (res dto.GenerateRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GenerateRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	floorNos := make([]int, 0, len(req.Floors))
	seen := make(map[int]bool, len(req.Floors))

	for _, plan := range req.Floors {
		if seen[plan.FloorNo] {
			return res, failure.BadRequestFromString(fmt.Sprintf("floor %d is listed more than once", plan.FloorNo)) // nolint:wrapcheck
		}

		seen[plan.FloorNo] = true
		floorNos = append(floorNos, plan.FloorNo)
		res.Requested += plan.RoomsCount
	}

	if err = s.ensureRoomType(ctx, propertyID, req.RoomTypeID); err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.LockPropertyTx(ctx, tx, propertyID); err != nil {
			return err
		}

		existing, err := s.repo.ListByPropertyTx(ctx, tx, propertyID)
		if err != nil {
			return err
		}

		width := model.PaddingWidth(existing)
		floors := make([]model.Floor, 0, len(req.Floors))
		rooms := make([]model.Room, 0, res.Requested)

		for _, plan := range req.Floors {
			floors = append(floors, dto.NewFloor(propertyID, plan.FloorNo, user))

			for index := 1; index <= plan.RoomsCount; index++ {
				roomNo := model.GeneratedRoomNo(req.SerialBase, plan.FloorNo, index, width)
				rooms = append(rooms, dto.NewRoom(propertyID, req.RoomTypeID, roomNo, plan.FloorNo, user))
			}
		}

		if err := s.floorRepo.EnsureTx(ctx, tx, floors); err != nil {
			return err
		}

		inserted, err := s.repo.InsertIgnoreConflictTx(ctx, tx, rooms)
		if err != nil {
			return err
		}

		res.Inserted = inserted

		return s.floorRepo.SyncRoomsCountTx(ctx, tx, propertyID, floorNos)
	})
	if err != nil {
		log.Error().Err(err).Str("property_id", propertyID).Msg("failed to generate rooms")

		return res, fmt.Errorf("failed to generate rooms: %w", err)
	}

	log.Info().Str("property_id", propertyID).Int("requested", res.Requested).Int("inserted", res.Inserted).Msg("rooms generated")

	s.invalidate(ctx)

	return res, nil
}

// AddRoom appends one room to a floor, inferring its number unless the
// request carries one. Missing floors below the target are created as well.
func (s *serviceImpl) AddRoom(ctx context.Context, propertyID string, req dto.AddRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.AddRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureRoomType(ctx, propertyID, req.RoomTypeID); err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var room model.Room

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.LockPropertyTx(ctx, tx, propertyID); err != nil {
			return err
		}

		existing, err := s.repo.ListByPropertyTx(ctx, tx, propertyID)
		if err != nil {
			return err
		}

		roomNo := strings.TrimSpace(req.RoomNo)
		if roomNo == constant.Empty {
			roomNo = model.NextRoomNo(existing, req.FloorNo)
		}

		for _, other := range existing {
			if strings.EqualFold(strings.TrimSpace(other.RoomNo), roomNo) {
				return roomNoTaken(roomNo)
			}
		}

		floors := make([]model.Floor, 0, req.FloorNo+1)
		for floorNo := min(1, req.FloorNo); floorNo <= req.FloorNo; floorNo++ {
			floors = append(floors, dto.NewFloor(propertyID, floorNo, user))
		}

		if err := s.floorRepo.EnsureTx(ctx, tx, floors); err != nil {
			return err
		}

		room = req.ToModel(propertyID, roomNo, user)
		if err := s.repo.InsertTx(ctx, tx, room); err != nil {
			if postgres.IsUniqueViolation(err) {
				return roomNoTaken(roomNo)
			}

			return err
		}

		return s.floorRepo.SyncRoomsCountTx(ctx, tx, propertyID, []int{req.FloorNo})
	})
	if err != nil {
		if failure.GetReason(err) == reasonRoomNoTaken {
			return res, err
		}

		log.Error().Err(err).Str("property_id", propertyID).Msg("failed to add room")

		return res, fmt.Errorf("failed to add room: %w", err)
	}

	s.invalidate(ctx)

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) ListByProperty(ctx context.Context, propertyID string, activeOnly bool) (res []dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.ListByProperty")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheListRoom, propertyID, strconv.FormatBool(activeOnly))

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	rooms, err := s.repo.ListByProperty(ctx, propertyID, activeOnly)
	if err != nil {
		log.Error().Err(err).Msg("failed to list rooms")

		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	res = make([]dto.RoomResponse, len(rooms))
	for i, room := range rooms {
		res[i].FromModel(room)
	}

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil && shared.InPropertyScope(ctx, res.PropertyID) {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	if !shared.InPropertyScope(ctx, room.PropertyID) {
		return res, failure.ResourceRestrictedError
	}

	res.FromModel(room)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

// Update writes the fields present in req. Moving a room between floors or
// toggling is_active recounts both floors in the same transaction.
func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if req.HasNull() {
		return failure.BadRequestFromString("room fields cannot be null") // nolint:wrapcheck
	}

	return s.update(ctx, id, req)
}

// Deactivate retires a room from future bookings. Rows are never deleted
// because booking history references them.
func (s *serviceImpl) Deactivate(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Deactivate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.update(ctx, id, dto.UpdateRoomRequest{IsActive: gDto.Some(false)})
}

func (s *serviceImpl) MarkClean(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.MarkClean")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.update(ctx, id, dto.UpdateRoomRequest{IsDirty: gDto.Some(false)})
}

func (s *serviceImpl) update(ctx context.Context, id string, req dto.UpdateRoomRequest) error {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	err := s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		room, err := s.repo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return err
		}

		if room.ID == constant.Empty {
			return failure.NotFound("room not found") // nolint:wrapcheck
		}

		if !shared.InPropertyScope(ctx, room.PropertyID) {
			return failure.ResourceRestrictedError
		}

		if req.RoomTypeID.Present() && req.RoomTypeID.Value != room.RoomTypeID {
			if err := s.ensureRoomType(ctx, room.PropertyID, req.RoomTypeID.Value); err != nil {
				return err
			}
		}

		if err := s.repo.UpdateTx(ctx, tx, shared.TransformFields(req, user), filter); err != nil {
			return err
		}

		if !req.FloorNo.Present() && !req.IsActive.Present() {
			return nil
		}

		floorNos := []int{room.FloorNo}
		if req.FloorNo.Present() && req.FloorNo.Value != room.FloorNo {
			if err := s.floorRepo.EnsureTx(ctx, tx, []model.Floor{dto.NewFloor(room.PropertyID, req.FloorNo.Value, user)}); err != nil {
				return err
			}

			floorNos = append(floorNos, req.FloorNo.Value)
		}

		return s.floorRepo.SyncRoomsCountTx(ctx, tx, room.PropertyID, floorNos)
	})
	if err != nil {
		if failure.GetCode(err) != http.StatusInternalServerError {
			return err
		}

		log.Error().Err(err).Str("room_id", id).Msg("failed to update room")

		return fmt.Errorf("failed to update room: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

// ensureRoomType checks that roomTypeID is an active rate of the property.
func (s *serviceImpl) ensureRoomType(ctx context.Context, propertyID, roomTypeID string) error {
	exist, err := s.roomTypeRepo.Exist(ctx, shared.FilterByFields(roomTypeModel.TableName, map[string]any{
		roomTypeModel.FieldID:         roomTypeID,
		roomTypeModel.FieldPropertyID: propertyID,
		roomTypeModel.FieldIsActive:   true,
	}))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room type")

		return fmt.Errorf("failed to check room type: %w", err)
	}

	if !exist {
		return failure.BadRequestFromString("room type does not exist for this property") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, model.CachePrefix)
	}()
}

func roomNoTaken(roomNo string) error {
	return failure.ConflictWithDetails(reasonRoomNoTaken, "room number already exists", map[string]string{ // nolint:wrapcheck
		"room_no": roomNo,
	})
}
