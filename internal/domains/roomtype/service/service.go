package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"pms/config"
	"pms/infras/otel"
	"pms/infras/postgres"
	"pms/internal/domains/roomtype/model"
	"pms/internal/domains/roomtype/model/dto"
	"pms/internal/domains/roomtype/repository"
	"pms/shared"
	"pms/shared/cache"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	"pms/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoomType    = model.CachePrefix + ":get"
	cacheGetAllRoomType = model.CachePrefix + ":get_all"

	reasonRoomTypeExists = "ROOM_TYPE_EXISTS"
)

type RoomType interface {
	Create(ctx context.Context, propertyID string, req dto.CreateRoomTypeRequest) (dto.RoomTypeResponse, error)
	ListByProperty(ctx context.Context, propertyID string, params gDto.QueryParams) (dto.GetRoomTypesResponse, error)
	Get(ctx context.Context, id string) (dto.RoomTypeResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateRoomTypeRequest) error
}

type serviceImpl struct {
	repo  repository.RoomType
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.RoomType, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) RoomType {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, propertyID string, req dto.CreateRoomTypeRequest) (res dto.RoomTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".roomtype.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	roomType := req.ToModel(propertyID, user)

	if err = s.repo.Insert(ctx, roomType); err != nil {
		if postgres.IsUniqueViolation(err) {
			return res, failure.ConflictWithDetails(reasonRoomTypeExists, "room type already exists for this property", map[string]string{ // nolint:wrapcheck
				"label": roomType.Label(),
			})
		}

		log.Error().Err(err).Msg("failed to create room type")

		return res, fmt.Errorf("failed to create room type: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllRoomType)
	}()

	res.FromModel(roomType)

	return res, nil
}

func (s *serviceImpl) ListByProperty(ctx context.Context, propertyID string, params gDto.QueryParams) (res dto.GetRoomTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".roomtype.ListByProperty")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.RestrictSort(model.FieldCategory, model.FieldBedType, model.FieldACType, model.FieldPrice, constant.FieldCreatedOn)
	filter := shared.FilterByID(propertyID, model.FieldPropertyID, model.TableName)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoomType, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room types")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count room types")

		return res, fmt.Errorf("failed to count room types: %w", err)
	}

	roomTypes, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room types")

		return res, fmt.Errorf("failed to get room types: %w", err)
	}

	res.FromModels(roomTypes, total, params.Limit)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room types to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".roomtype.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetRoomType, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil && shared.InPropertyScope(ctx, res.PropertyID) {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room type")

		return res, nil
	}

	roomType, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type")

		return res, fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == constant.Empty {
		return res, failure.NotFound("room type not found") // nolint:wrapcheck
	}

	if !shared.InPropertyScope(ctx, roomType.PropertyID) {
		return res, failure.ResourceRestrictedError
	}

	res.FromModel(roomType)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room type to cache")
		}
	}()

	return res, nil
}

// Update changes the price or availability of a rate. Bookings keep the label
// snapshot they were created with.
func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateRoomTypeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".roomtype.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if req.HasNull() {
		return failure.BadRequestFromString("price and is_active cannot be null") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	existFilter := filter
	if scoped, _ := ctx.Value(constant.ContextKeyPropertyID).(string); scoped != constant.Empty {
		existFilter = shared.FilterByFields(model.TableName, map[string]any{
			model.FieldID:         id,
			model.FieldPropertyID: scoped,
		})
	}

	exist, err := s.repo.Exist(ctx, existFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room type existence")

		return fmt.Errorf("failed to check room type existence: %w", err)
	}

	if !exist {
		return failure.NotFound("room type not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update room type")

		return fmt.Errorf("failed to update room type: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoomType, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room type cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoomType)
	}()

	return nil
}
