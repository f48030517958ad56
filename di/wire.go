//go:build wireinject
// +build wireinject

package di

import (
	"pms/config"
	"pms/infras/jwt"
	"pms/infras/kafka"
	"pms/infras/otel"
	"pms/infras/postgres"
	"pms/infras/redis"
	"pms/infras/s3"
	"pms/permissions"
	"pms/shared/cache"
	"pms/transport/http"
	"pms/transport/http/middleware"
	"pms/transport/http/router"

	"github.com/google/wire"

	auditRepository "pms/internal/domains/audit/repository"
	auditService "pms/internal/domains/audit/service"
	authService "pms/internal/domains/auth/service"
	bookingRepository "pms/internal/domains/booking/repository"
	bookingService "pms/internal/domains/booking/service"
	roomRepository "pms/internal/domains/room/repository"
	roomService "pms/internal/domains/room/service"
	roomTypeRepository "pms/internal/domains/roomtype/repository"
	roomTypeService "pms/internal/domains/roomtype/service"
	staffRepository "pms/internal/domains/staff/repository"
	staffService "pms/internal/domains/staff/service"

	auditHandler "pms/internal/handlers/audit"
	authHandler "pms/internal/handlers/auth"
	bookingHandler "pms/internal/handlers/booking"
	roomHandler "pms/internal/handlers/room"
	roomTypeHandler "pms/internal/handlers/roomtype"
	staffHandler "pms/internal/handlers/staff"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.Transactor), new(*postgres.Connection)),
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var auditDomain = wire.NewSet(
	auditRepository.New,
	auditService.New,
)

var staffDomain = wire.NewSet(
	staffRepository.New,
	staffService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var roomTypeDomain = wire.NewSet(
	roomTypeRepository.New,
	roomTypeService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomRepository.NewFloor,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingRepository.NewRoomDetail,
	bookingRepository.NewAvailability,
	bookingService.New,
)

var domains = wire.NewSet(
	auditDomain,
	staffDomain,
	authDomain,
	roomTypeDomain,
	roomDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	staffHandler.New,
	roomTypeHandler.New,
	roomHandler.New,
	bookingHandler.New,
	auditHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
