package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"trek/config"
	"trek/infras/kafka"
	"trek/infras/otel"
	"trek/internal/domains/booking/model"
	"trek/internal/domains/booking/model/dto"
	"trek/internal/domains/booking/repository"
	customerModel "trek/internal/domains/customer/model"
	customerRepo "trek/internal/domains/customer/repository"
	guideModel "trek/internal/domains/guide/model"
	guideRepo "trek/internal/domains/guide/repository"
	tourModel "trek/internal/domains/tour/model"
	tourRepo "trek/internal/domains/tour/repository"
	"trek/shared"
	"trek/shared/cache"
	"trek/shared/constant"
	gDto "trek/shared/dto"
	"trek/shared/failure"
	"trek/shared/timezone"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	eventBookingCreated   = "booking.created"
	eventBookingCancelled = "booking.cancelled"
	eventBookingUpdated   = "booking.status_updated"

	cacheTourEntity = "tour"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) error
	UpdatePayment(ctx context.Context, req dto.UpdatePaymentRequest, id string) error
	AssignGuide(ctx context.Context, req dto.AssignGuideRequest, id string) error

	CreateCustomTour(ctx context.Context, req dto.CreateCustomTourRequest) error
	GetCustomTours(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCustomToursResponse, error)
	UpdateCustomTourStatus(ctx context.Context, req dto.UpdateCustomTourStatusRequest, id string) error
}

type serviceImpl struct {
	repo        repository.Booking
	customTours repository.CustomTour
	tourDates   tourRepo.TourDate
	customers   customerRepo.Customer
	guides      guideRepo.Guide
	kafka       kafka.Client
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Booking,
	customTours repository.CustomTour,
	tourDates tourRepo.TourDate,
	customers customerRepo.Customer,
	guides guideRepo.Guide,
	kafka kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:        repo,
		customTours: customTours,
		tourDates:   tourDates,
		customers:   customers,
		guides:      guides,
		kafka:       kafka,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Create books seats on a tour date for the calling customer. The total price
// is the package price at booking time multiplied by the participant count.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	customer, err := s.customerFromContext(ctx)
	if err != nil {
		return res, err
	}

	date, err := s.tourDates.Get(ctx, shared.FilterByID(req.TourDateID, tourModel.TourDateFieldID, tourModel.TourDateTable))
	if err != nil {
		log.Error().Err(err).Msg("failed to get tour date")

		return res, fmt.Errorf("failed to get tour date: %w", err)
	}

	if date.ID == constant.Empty {
		return res, failure.BadRequestFromString("tour date does not exist") // nolint:wrapcheck
	}

	if date.StartDate.Before(timezone.Now()) {
		return res, failure.BadRequestFromString("tour date has already started") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	totalPrice := date.PackagePrice * float64(req.Participants)
	booking := req.ToModel(customer.ID, totalPrice, user)

	if err = s.repo.Reserve(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrInsufficientSpots) {
			return res, failure.Conflict("not enough available spots") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to reserve booking")

		return res, fmt.Errorf("failed to reserve booking: %w", err)
	}

	booking.StartDate = date.StartDate
	booking.EndDate = date.EndDate
	booking.PackageID = date.PackageID
	booking.PackageName = date.PackageName

	s.publishEvent(ctx, eventBookingCreated, booking)
	s.invalidateTourCaches(ctx)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter = s.scopeToCaller(ctx, filter)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getOwned(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

// Cancel releases the booking's seats back to the tour date. Only pending and
// confirmed bookings can be cancelled.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getOwned(ctx, id)
	if err != nil {
		return err
	}

	if booking.Status != constant.BookingStatusPending && booking.Status != constant.BookingStatusConfirmed {
		return failure.Conflict("booking can no longer be cancelled") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Cancel(ctx, booking, user); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	booking.Status = constant.BookingStatusCancelled

	s.publishEvent(ctx, eventBookingCancelled, booking)
	s.invalidateTourCaches(ctx)

	return nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.Status == req.Status {
		return nil
	}

	if booking.Status == constant.BookingStatusCancelled || booking.Status == constant.BookingStatusCompleted {
		return failure.Conflict("booking status can no longer change") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if req.Status == constant.BookingStatusCancelled {
		if err = s.repo.Cancel(ctx, booking, user); err != nil {
			log.Error().Err(err).Msg("failed to cancel booking")

			return fmt.Errorf("failed to cancel booking: %w", err)
		}

		s.invalidateTourCaches(ctx)
	} else {
		updatedFields := map[string]any{
			model.FieldStatus:        req.Status,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to update booking status")

			return fmt.Errorf("failed to update booking status: %w", err)
		}
	}

	booking.Status = req.Status

	s.publishEvent(ctx, eventBookingUpdated, booking)

	return nil
}

// UpdatePayment flips the booking's paid flag.
func (s *serviceImpl) UpdatePayment(ctx context.Context, req dto.UpdatePaymentRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := map[string]any{
		model.FieldPaymentStatus: *req.PaymentStatus,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking payment status")

		return fmt.Errorf("failed to update booking payment status: %w", err)
	}

	return nil
}

// AssignGuide sets the guide leading this booking, or clears the assignment
// when the request carries no guide id.
func (s *serviceImpl) AssignGuide(ctx context.Context, req dto.AssignGuideRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AssignGuide")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	var guideID any
	if req.GuideID != constant.Empty {
		exist, err := s.guides.Exist(ctx, shared.FilterByID(req.GuideID, guideModel.FieldID, guideModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if guide exists")

			return fmt.Errorf("failed to check if guide exists: %w", err)
		}

		if !exist {
			return failure.BadRequestFromString("guide does not exist") // nolint:wrapcheck
		}

		guideID = req.GuideID
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := map[string]any{
		model.FieldGuideID:       guideID,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to assign booking guide")

		return fmt.Errorf("failed to assign booking guide: %w", err)
	}

	return nil
}

func (s *serviceImpl) CreateCustomTour(ctx context.Context, req dto.CreateCustomTourRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateCustomTour")
	defer scope.End()
	defer scope.TraceIfError(err)

	customer, err := s.customerFromContext(ctx)
	if err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	request, err := req.ToModel(customer.ID, user)
	if err != nil {
		return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if request.EndDate.Before(request.StartDate) {
		return failure.BadRequestFromString("end_date must not be before start_date") // nolint:wrapcheck
	}

	if err = s.customTours.Insert(ctx, request); err != nil {
		log.Error().Err(err).Msg("failed to create custom tour request")

		return fmt.Errorf("failed to create custom tour request: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetCustomTours(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCustomToursResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCustomTours")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter = s.scopeToCaller(ctx, filter)

	total, err := s.customTours.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count custom tour requests")

		return res, fmt.Errorf("failed to count custom tour requests: %w", err)
	}

	requests, err := s.customTours.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get custom tour requests")

		return res, fmt.Errorf("failed to get custom tour requests: %w", err)
	}

	res.FromModels(requests, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) UpdateCustomTourStatus(ctx context.Context, req dto.UpdateCustomTourStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateCustomTourStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.CustomTourFieldID, model.CustomTourTable)

	request, err := s.customTours.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get custom tour request")

		return fmt.Errorf("failed to get custom tour request: %w", err)
	}

	if request.ID == constant.Empty {
		return failure.NotFound("custom tour request not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := map[string]any{
		model.CustomTourFieldStatus:     req.Status,
		model.CustomTourFieldAdminNotes: req.AdminNotes,
		constant.FieldModifiedAt:        timezone.Now(),
		constant.FieldModifiedBy:        user,
	}

	if err = s.customTours.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update custom tour request")

		return fmt.Errorf("failed to update custom tour request: %w", err)
	}

	return nil
}

func (s *serviceImpl) customerFromContext(ctx context.Context) (customer customerModel.Customer, err error) {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	customer, err = s.customers.Get(ctx, shared.FilterByID(userID, customerModel.FieldUserID, customerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer profile")

		return customer, fmt.Errorf("failed to get customer profile: %w", err)
	}

	if customer.ID == constant.Empty {
		return customer, failure.Forbidden("customer profile not found") // nolint:wrapcheck
	}

	return customer, nil
}

// scopeToCaller narrows list filters so customers only ever see their own rows.
func (s *serviceImpl) scopeToCaller(ctx context.Context, filter gDto.FilterGroup) gDto.FilterGroup {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role != constant.RoleCustomer {
		return filter
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filter.Filters = append(filter.Filters, gDto.Filter{
		ArgName:  "caller_user_id",
		Field:    customerModel.FieldUserID,
		Value:    userID,
		Operator: gDto.FilterOperatorEq,
		Table:    customerModel.TableName,
	})

	return filter
}

func (s *serviceImpl) getOwned(ctx context.Context, id string) (booking model.Booking, err error) {
	booking, err = s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	switch role {
	case constant.RoleAdmin:
		return booking, nil
	case constant.RoleCustomer:
		if booking.UserID != userID {
			return booking, failure.ResourceRestrictedError // nolint:wrapcheck
		}

		return booking, nil
	case constant.RoleGuide:
		guide, err := s.guides.Get(ctx, shared.FilterByID(userID, guideModel.FieldUserID, guideModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get guide profile")

			return booking, fmt.Errorf("failed to get guide profile: %w", err)
		}

		if guide.ID == constant.Empty || booking.GuideID == nil || *booking.GuideID != guide.ID {
			return booking, failure.ResourceRestrictedError // nolint:wrapcheck
		}

		return booking, nil
	default:
		return booking, failure.ResourceRestrictedError // nolint:wrapcheck
	}
}

func (s *serviceImpl) publishEvent(ctx context.Context, eventType string, booking model.Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		event := dto.BookingEvent{
			EventType:    eventType,
			BookingID:    booking.ID,
			CustomerID:   booking.CustomerID,
			TourDateID:   booking.TourDateID,
			PackageName:  booking.PackageName,
			Participants: booking.Participants,
			TotalPrice:   booking.TotalPrice,
			Status:       booking.Status,
			OccurredAt:   timezone.Now(),
		}

		message := kafka.Message{Key: booking.ID, Value: event}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.BookingEvents, message); err != nil {
			log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish booking event")
		}
	}()
}

func (s *serviceImpl) invalidateTourCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheTourEntity)
	}()
}
