package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"trek/config"
	"trek/infras/otel"
	bookingModel "trek/internal/domains/booking/model"
	bookingRepo "trek/internal/domains/booking/repository"
	"trek/internal/domains/feedback/model"
	"trek/internal/domains/feedback/model/dto"
	"trek/internal/domains/feedback/repository"
	guideModel "trek/internal/domains/guide/model"
	guideRepo "trek/internal/domains/guide/repository"
	"trek/shared"
	"trek/shared/cache"
	"trek/shared/constant"
	gDto "trek/shared/dto"
	"trek/shared/failure"
	"trek/shared/timezone"

	"github.com/rs/zerolog/log"
)

const cacheGuideSummary = "feedback:guide_summary"

type Feedback interface {
	SubmitTourFeedback(ctx context.Context, req dto.SubmitTourFeedbackRequest) error
	GetTourFeedback(ctx context.Context, req gDto.QueryParams, packageID string) (dto.GetTourFeedbackResponse, error)
	SubmitGuideFeedback(ctx context.Context, req dto.SubmitGuideFeedbackRequest) error
	GuideSummary(ctx context.Context, guideID string) (dto.GuideSummaryResponse, error)
}

type serviceImpl struct {
	tourFeedbacks  repository.TourFeedback
	guideFeedbacks repository.GuideFeedback
	bookings       bookingRepo.Booking
	guides         guideRepo.Guide
	cfg            *config.Config
	cache          cache.RedisCache
	otel           otel.Otel
}

func New(
	tourFeedbacks repository.TourFeedback,
	guideFeedbacks repository.GuideFeedback,
	bookings bookingRepo.Booking,
	guides guideRepo.Guide,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Feedback {
	return &serviceImpl{
		tourFeedbacks:  tourFeedbacks,
		guideFeedbacks: guideFeedbacks,
		bookings:       bookings,
		guides:         guides,
		cfg:            cfg,
		cache:          cache,
		otel:           otel,
	}
}

// SubmitTourFeedback records a rating for a completed booking's tour package.
// One feedback per booking.
func (s *serviceImpl) SubmitTourFeedback(ctx context.Context, req dto.SubmitTourFeedbackRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SubmitTourFeedback")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.completedBooking(ctx, req.BookingID)
	if err != nil {
		return err
	}

	exist, err := s.tourFeedbacks.Exist(ctx, shared.FilterByID(req.BookingID, model.TourFeedbackFieldBookingID, model.TourFeedbackTable))
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing tour feedback")

		return fmt.Errorf("failed to check existing tour feedback: %w", err)
	}

	if exist {
		return failure.Conflict("feedback already submitted for this booking") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.tourFeedbacks.Insert(ctx, req.ToModel(booking.PackageID, booking.CustomerID, user)); err != nil {
		log.Error().Err(err).Msg("failed to save tour feedback")

		return fmt.Errorf("failed to save tour feedback: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetTourFeedback(ctx context.Context, req gDto.QueryParams, packageID string) (res dto.GetTourFeedbackResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetTourFeedback")
	defer scope.End()
	defer scope.TraceIfError(err)

	if packageID == constant.Empty {
		return res, failure.BadRequestFromString("package_id is required") // nolint:wrapcheck
	}

	filter := shared.FilterByID(packageID, model.TourFeedbackFieldPackageID, model.TourFeedbackTable)

	stats, err := s.tourFeedbacks.Stats(ctx, packageID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tour rating stats")

		return res, fmt.Errorf("failed to get tour rating stats: %w", err)
	}

	feedbacks, err := s.tourFeedbacks.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tour feedback")

		return res, fmt.Errorf("failed to get tour feedback: %w", err)
	}

	res.FromModels(feedbacks, stats, req.Limit)

	return res, nil
}

// SubmitGuideFeedback rates the guide who led a completed booking. One
// feedback per guide and booking pair.
func (s *serviceImpl) SubmitGuideFeedback(ctx context.Context, req dto.SubmitGuideFeedbackRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SubmitGuideFeedback")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.completedBooking(ctx, req.BookingID)
	if err != nil {
		return err
	}

	if booking.GuideID == nil {
		return failure.BadRequestFromString("booking has no assigned guide") // nolint:wrapcheck
	}

	guideID := *booking.GuideID

	exist, err := s.guideFeedbacks.Exist(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.GuideFeedbackFieldGuideID, Value: guideID, Operator: gDto.FilterOperatorEq, Table: model.GuideFeedbackTable},
			gDto.Filter{Field: model.GuideFeedbackFieldBookingID, Value: req.BookingID, Operator: gDto.FilterOperatorEq, Table: model.GuideFeedbackTable},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing guide feedback")

		return fmt.Errorf("failed to check existing guide feedback: %w", err)
	}

	if exist {
		return failure.Conflict("feedback already submitted for this guide and booking") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.guideFeedbacks.Insert(ctx, req.ToModel(guideID, booking.CustomerID, user)); err != nil {
		log.Error().Err(err).Msg("failed to save guide feedback")

		return fmt.Errorf("failed to save guide feedback: %w", err)
	}

	if err = s.refreshGuideRating(ctx, guideID, user); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGuideSummary, guideID)); err != nil {
			log.Error().Err(err).Msg("failed to delete guide summary from cache")
		}
	}()

	return nil
}

// refreshGuideRating recomputes the guide's stored average after a new
// feedback row lands, so public guide lists can sort on it.
func (s *serviceImpl) refreshGuideRating(ctx context.Context, guideID, user string) error {
	summary, err := s.guideFeedbacks.Summary(ctx, guideID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guide rating summary")

		return fmt.Errorf("failed to get guide rating summary: %w", err)
	}

	updatedFields := map[string]any{
		guideModel.FieldRating:   summary.AverageRating,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.guides.Update(ctx, updatedFields, shared.FilterByID(guideID, guideModel.FieldID, guideModel.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update guide rating")

		return fmt.Errorf("failed to update guide rating: %w", err)
	}

	return nil
}

func (s *serviceImpl) GuideSummary(ctx context.Context, guideID string) (res dto.GuideSummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GuideSummary")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGuideSummary, guideID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	exist, err := s.guides.Exist(ctx, shared.FilterByID(guideID, guideModel.FieldID, guideModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guide exists")

		return res, fmt.Errorf("failed to check if guide exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("guide not found") // nolint:wrapcheck
	}

	summary, err := s.guideFeedbacks.Summary(ctx, guideID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guide rating summary")

		return res, fmt.Errorf("failed to get guide rating summary: %w", err)
	}

	res.FromModel(guideID, summary)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guide summary to cache")
		}
	}()

	return res, nil
}

// completedBooking loads the booking and makes sure the caller owns it and
// the tour already took place.
func (s *serviceImpl) completedBooking(ctx context.Context, bookingID string) (booking bookingModel.Booking, err error) {
	booking, err = s.bookings.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if booking.UserID != userID {
		return booking, failure.ResourceRestrictedError // nolint:wrapcheck
	}

	if booking.Status != constant.BookingStatusCompleted {
		return booking, failure.BadRequestFromString("feedback is only allowed for completed bookings") // nolint:wrapcheck
	}

	return booking, nil
}
