//go:build wireinject
// +build wireinject

package di

import (
	"trek/config"
	"trek/infras/jwt"
	"trek/infras/kafka"
	"trek/infras/otel"
	"trek/infras/postgres"
	"trek/infras/redis"
	"trek/infras/s3"
	"trek/permissions"
	"trek/shared/cache"
	"trek/transport/http"
	"trek/transport/http/middleware"
	"trek/transport/http/router"

	adminService "trek/internal/domains/admin/service"
	authService "trek/internal/domains/auth/service"
	bookingRepository "trek/internal/domains/booking/repository"
	bookingService "trek/internal/domains/booking/service"
	customerRepository "trek/internal/domains/customer/repository"
	customerService "trek/internal/domains/customer/service"
	feedbackRepository "trek/internal/domains/feedback/repository"
	feedbackService "trek/internal/domains/feedback/service"
	guideRepository "trek/internal/domains/guide/repository"
	guideService "trek/internal/domains/guide/service"
	tourRepository "trek/internal/domains/tour/repository"
	tourService "trek/internal/domains/tour/service"
	userRepository "trek/internal/domains/user/repository"

	adminHandler "trek/internal/handlers/admin"
	authHandler "trek/internal/handlers/auth"
	bookingHandler "trek/internal/handlers/booking"
	customerHandler "trek/internal/handlers/customer"
	feedbackHandler "trek/internal/handlers/feedback"
	guideHandler "trek/internal/handlers/guide"
	tourHandler "trek/internal/handlers/tour"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
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

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var tourDomain = wire.NewSet(
	tourRepository.New,
	tourRepository.NewDate,
	tourRepository.NewImage,
	tourService.New,
)

var guideDomain = wire.NewSet(
	guideRepository.New,
	guideRepository.NewAvailability,
	guideService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingRepository.NewCustomTour,
	bookingService.New,
)

var feedbackDomain = wire.NewSet(
	feedbackRepository.NewTourFeedback,
	feedbackRepository.NewGuideFeedback,
	feedbackService.New,
)

var adminDomain = wire.NewSet(
	adminService.New,
)

var domains = wire.NewSet(
	authDomain,
	customerDomain,
	tourDomain,
	guideDomain,
	bookingDomain,
	feedbackDomain,
	adminDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	tourHandler.New,
	guideHandler.New,
	bookingHandler.New,
	feedbackHandler.New,
	customerHandler.New,
	adminHandler.New,
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
