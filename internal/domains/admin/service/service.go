package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"trek/config"
	"trek/infras/otel"
	"trek/internal/domains/admin/model/dto"
	bookingModel "trek/internal/domains/booking/model"
	bookingDto "trek/internal/domains/booking/model/dto"
	bookingRepo "trek/internal/domains/booking/repository"
	customerRepo "trek/internal/domains/customer/repository"
	feedbackRepo "trek/internal/domains/feedback/repository"
	guideRepo "trek/internal/domains/guide/repository"
	tourRepo "trek/internal/domains/tour/repository"
	"trek/shared"
	"trek/shared/cache"
	"trek/shared/constant"
	gDto "trek/shared/dto"

	"github.com/rs/zerolog/log"
)

const (
	cacheDashboard = "admin:dashboard"

	recentBookingLimit = 5
)

type Admin interface {
	Dashboard(ctx context.Context) (dto.DashboardResponse, error)
}

type serviceImpl struct {
	packages      tourRepo.TourPackage
	bookings      bookingRepo.Booking
	customTours   bookingRepo.CustomTour
	customers     customerRepo.Customer
	guides        guideRepo.Guide
	tourFeedbacks feedbackRepo.TourFeedback
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
}

func New(
	packages tourRepo.TourPackage,
	bookings bookingRepo.Booking,
	customTours bookingRepo.CustomTour,
	customers customerRepo.Customer,
	guides guideRepo.Guide,
	tourFeedbacks feedbackRepo.TourFeedback,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Admin {
	return &serviceImpl{
		packages:      packages,
		bookings:      bookings,
		customTours:   customTours,
		customers:     customers,
		guides:        guides,
		tourFeedbacks: tourFeedbacks,
		cfg:           cfg,
		cache:         cache,
		otel:          otel,
	}
}

// Dashboard aggregates platform-wide counts, revenue and ratings for the
// admin landing page.
func (s *serviceImpl) Dashboard(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheDashboard)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for dashboard")

		return res, nil
	}

	if res.TotalPackages, err = s.packages.Count(ctx, gDto.FilterGroup{}); err != nil {
		log.Error().Err(err).Msg("failed to count tour packages")

		return res, fmt.Errorf("failed to count tour packages: %w", err)
	}

	if res.TotalBookings, err = s.bookings.Count(ctx, gDto.FilterGroup{}); err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	if res.TotalCustomers, err = s.customers.Count(ctx, gDto.FilterGroup{}); err != nil {
		log.Error().Err(err).Msg("failed to count customers")

		return res, fmt.Errorf("failed to count customers: %w", err)
	}

	if res.TotalGuides, err = s.guides.Count(ctx, gDto.FilterGroup{}); err != nil {
		log.Error().Err(err).Msg("failed to count guides")

		return res, fmt.Errorf("failed to count guides: %w", err)
	}

	if res.PendingBookings, err = s.bookings.Count(ctx, statusFilter(bookingModel.TableName, constant.BookingStatusPending)); err != nil {
		log.Error().Err(err).Msg("failed to count pending bookings")

		return res, fmt.Errorf("failed to count pending bookings: %w", err)
	}

	if res.PendingCustomRequests, err = s.customTours.Count(ctx, statusFilter(bookingModel.CustomTourTable, constant.CustomTourStatusPending)); err != nil {
		log.Error().Err(err).Msg("failed to count pending custom tour requests")

		return res, fmt.Errorf("failed to count pending custom tour requests: %w", err)
	}

	if res.TotalRevenue, err = s.bookings.SumRevenue(ctx); err != nil {
		log.Error().Err(err).Msg("failed to sum booking revenue")

		return res, fmt.Errorf("failed to sum booking revenue: %w", err)
	}

	if res.AverageTourRating, err = s.tourFeedbacks.OverallAverage(ctx); err != nil {
		log.Error().Err(err).Msg("failed to get overall tour rating")

		return res, fmt.Errorf("failed to get overall tour rating: %w", err)
	}

	recent, err := s.bookings.GetAll(ctx, gDto.QueryParams{
		Page:    constant.DefaultValuePage,
		Limit:   recentBookingLimit,
		SortBy:  bookingModel.TableName + "." + constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get recent bookings")

		return res, fmt.Errorf("failed to get recent bookings: %w", err)
	}

	res.RecentBookings = make([]bookingDto.BookingResponse, len(recent))
	for i, booking := range recent {
		res.RecentBookings[i].FromModel(booking)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard to cache")
		}
	}()

	return res, nil
}

func statusFilter(table, status string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				ArgName:  "status_" + table,
				Field:    "status",
				Value:    status,
				Operator: gDto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
