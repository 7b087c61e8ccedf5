package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"
	"trek/config"
	"trek/infras/otel"
	bookingModel "trek/internal/domains/booking/model"
	bookingRepo "trek/internal/domains/booking/repository"
	feedbackModel "trek/internal/domains/feedback/model"
	feedbackRepo "trek/internal/domains/feedback/repository"
	"trek/internal/domains/guide/model"
	"trek/internal/domains/guide/model/dto"
	"trek/internal/domains/guide/repository"
	tourModel "trek/internal/domains/tour/model"
	tourRepo "trek/internal/domains/tour/repository"
	userModel "trek/internal/domains/user/model"
	userRepo "trek/internal/domains/user/repository"
	"trek/shared"
	"trek/shared/cache"
	"trek/shared/constant"
	gDto "trek/shared/dto"
	"trek/shared/failure"
	gModel "trek/shared/model"
	"trek/shared/password"
	"trek/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllGuide = "guide:gets"
	cacheCountGuide  = "guide:count"
)

type Guide interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetGuidesResponse, error)
	Profile(ctx context.Context, id string) (dto.GuideProfileResponse, error)
	Create(ctx context.Context, req dto.CreateGuideRequest) error
	Update(ctx context.Context, req dto.UpdateGuideRequest, id string) error
	Delete(ctx context.Context, id string) error
	CheckAvailability(ctx context.Context, guideID, startDate, endDate string) (dto.AvailabilityCheckResponse, error)
	SetAvailability(ctx context.Context, req dto.SetAvailabilityRequest) error
	Schedule(ctx context.Context) (dto.ScheduleResponse, error)
	Bookings(ctx context.Context, status, period string) (dto.GetGuideBookingsResponse, error)
	FeedbackStats(ctx context.Context) (dto.FeedbackStatsResponse, error)
}

type serviceImpl struct {
	repo           repository.Guide
	availabilities repository.Availability
	tourDates      tourRepo.TourDate
	bookings       bookingRepo.Booking
	feedbacks      feedbackRepo.GuideFeedback
	users          userRepo.User
	cfg            *config.Config
	cache          cache.RedisCache
	otel           otel.Otel
}

func New(
	repo repository.Guide,
	availabilities repository.Availability,
	tourDates tourRepo.TourDate,
	bookings bookingRepo.Booking,
	feedbacks feedbackRepo.GuideFeedback,
	users userRepo.User,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Guide {
	return &serviceImpl{
		repo:           repo,
		availabilities: availabilities,
		tourDates:      tourDates,
		bookings:       bookings,
		feedbacks:      feedbacks,
		users:          users,
		cfg:            cfg,
		cache:          cache,
		otel:           otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetGuidesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllGuide, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guides")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count guides")

		return res, fmt.Errorf("failed to count guides: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guides")

		return res, fmt.Errorf("failed to get guides: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guides to cache")
		}
	}()

	return res, nil
}

// Profile is the public guide page: the profile itself, aggregate ratings
// and a handful of the most recent feedback entries.
func (s *serviceImpl) Profile(ctx context.Context, id string) (res dto.GuideProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Profile")
	defer scope.End()
	defer scope.TraceIfError(err)

	guide, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guide")

		return res, fmt.Errorf("failed to get guide: %w", err)
	}

	if guide.ID == constant.Empty {
		return res, failure.NotFound("guide not found") // nolint:wrapcheck
	}

	summary, err := s.feedbacks.Summary(ctx, guide.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guide rating summary")

		return res, fmt.Errorf("failed to get guide rating summary: %w", err)
	}

	recent, err := s.feedbacks.GetAll(ctx,
		gDto.QueryParams{Page: 1, Limit: constant.RecentFeedbackLimit, SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirDesc},
		shared.FilterByID(guide.ID, feedbackModel.GuideFeedbackFieldGuideID, feedbackModel.GuideFeedbackTable))
	if err != nil {
		log.Error().Err(err).Msg("failed to get recent guide feedback")

		return res, fmt.Errorf("failed to get recent guide feedback: %w", err)
	}

	res.FromModels(guide, summary, recent)

	return res, nil
}

// Create provisions a guide account: the credential row with the guide role
// plus the linked profile.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGuideRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Username == s.cfg.Admin.Username {
		return failure.Conflict("username is already taken") // nolint:wrapcheck
	}

	taken, err := s.users.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{Field: userModel.FieldUsername, Operator: gDto.FilterOperatorEq, Value: req.Username},
			gDto.Filter{ArgName: "email_taken", Field: userModel.FieldEmail, Operator: gDto.FilterOperatorEq, Value: req.Email},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if taken {
		return failure.Conflict("username or email is already taken") // nolint:wrapcheck
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin, _ := ctx.Value(constant.ContextKeyUserID).(string)
	user, guide := req.ToModels(hash, admin)

	if err = s.users.Insert(ctx, user); err != nil {
		log.Error().Err(err).Msg("failed to create guide user")

		return fmt.Errorf("failed to create guide user: %w", err)
	}

	if err = s.repo.Insert(ctx, guide); err != nil {
		log.Error().Err(err).Msg("failed to create guide profile")

		return fmt.Errorf("failed to create guide profile: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllGuide, cacheCountGuide)
	}()

	return nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateGuideRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guide exists")

		return fmt.Errorf("failed to check if guide exists: %w", err)
	}

	if !exist {
		return failure.NotFound("guide not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update guide")

		return fmt.Errorf("failed to update guide: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllGuide, cacheCountGuide)
	}()

	return nil
}

// Delete removes the guide profile and deactivates the linked account. Tour
// dates that referenced the guide keep running without one.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	admin, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	guide, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guide")

		return fmt.Errorf("failed to get guide: %w", err)
	}

	if guide.ID == constant.Empty {
		return failure.NotFound("guide not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete guide")

		return fmt.Errorf("failed to delete guide: %w", err)
	}

	deactivate := map[string]any{
		userModel.FieldIsActive:  false,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: admin,
	}

	if err = s.users.Update(ctx, deactivate, shared.FilterByID(guide.UserID, userModel.FieldID, userModel.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to deactivate guide user")

		return fmt.Errorf("failed to deactivate guide user: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllGuide, cacheCountGuide)
	}()

	return nil
}

// CheckAvailability reports whether a guide is free for every day of the
// requested range. Days without an override row count as available.
func (s *serviceImpl) CheckAvailability(ctx context.Context, guideID, startDate, endDate string) (res dto.AvailabilityCheckResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	if startDate == constant.Empty || endDate == constant.Empty {
		return res, failure.BadRequestFromString("start_date and end_date are required") // nolint:wrapcheck
	}

	start, err := timezone.Parse(constant.DateOnlyFormat, startDate)
	if err != nil {
		return res, failure.BadRequestFromString("start_date must use format "+constant.DateOnlyFormat) // nolint:wrapcheck
	}

	end, err := timezone.Parse(constant.DateOnlyFormat, endDate)
	if err != nil {
		return res, failure.BadRequestFromString("end_date must use format "+constant.DateOnlyFormat) // nolint:wrapcheck
	}

	if end.Before(start) {
		return res, failure.BadRequestFromString("end_date must not be before start_date") // nolint:wrapcheck
	}

	guide, err := s.repo.Get(ctx, shared.FilterByID(guideID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guide")

		return res, fmt.Errorf("failed to get guide: %w", err)
	}

	if guide.ID == constant.Empty {
		return res, failure.NotFound("guide not found") // nolint:wrapcheck
	}

	res.GuideName = guide.FullName()
	res.UnavailableDates = []string{}

	overrides, err := s.availabilities.GetAll(ctx, gDto.QueryParams{SortBy: model.AvailabilityFieldDate, SortDir: gDto.SortDirAsc},
		availabilityRangeFilter(guide.ID, start, end))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guide availability")

		return res, fmt.Errorf("failed to get guide availability: %w", err)
	}

	blocked := make(map[string]bool, len(overrides))
	for _, override := range overrides {
		if !override.IsAvailable {
			blocked[override.Date.Format(constant.DateOnlyFormat)] = true
		}
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format(constant.DateOnlyFormat)
		if blocked[key] {
			res.UnavailableDates = append(res.UnavailableDates, key)
		}
	}

	res.Available = len(res.UnavailableDates) == 0

	return res, nil
}

func (s *serviceImpl) SetAvailability(ctx context.Context, req dto.SetAvailabilityRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	guide, err := s.guideFromContext(ctx)
	if err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	for _, dateStr := range req.Dates {
		date, err := timezone.Parse(constant.DateOnlyFormat, dateStr)
		if err != nil {
			return failure.BadRequestFromString("dates must use format " + constant.DateOnlyFormat) // nolint:wrapcheck
		}

		availability := model.Availability{
			ID:          uuid.NewString(),
			GuideID:     guide.ID,
			Date:        date,
			IsAvailable: *req.IsAvailable,
			Reason:      req.Reason,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}

		if err = s.availabilities.Upsert(ctx, availability); err != nil {
			log.Error().Err(err).Msg("failed to set guide availability")

			return fmt.Errorf("failed to set guide availability: %w", err)
		}
	}

	return nil
}

// Schedule returns the guide's assigned tour dates and day overrides for the
// upcoming window.
func (s *serviceImpl) Schedule(ctx context.Context) (res dto.ScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Schedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	guide, err := s.guideFromContext(ctx)
	if err != nil {
		return res, err
	}

	start := timezone.Now().Truncate(24 * time.Hour)
	end := start.AddDate(0, 0, constant.ScheduleWindowDays)

	dates, err := s.tourDates.GetAll(ctx, gDto.QueryParams{SortBy: tourModel.TourDateFieldStartDate, SortDir: gDto.SortDirAsc},
		gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{Field: "guide_id", Value: guide.ID, Operator: gDto.FilterOperatorEq, Table: tourModel.TableName},
				gDto.Filter{ArgName: "window_start", Field: tourModel.TourDateFieldStartDate, Value: start, Operator: gDto.FilterOperatorGreaterEq, Table: tourModel.TourDateTable},
				gDto.Filter{ArgName: "window_end", Field: tourModel.TourDateFieldStartDate, Value: end, Operator: gDto.FilterOperatorLessEq, Table: tourModel.TourDateTable},
			},
		})
	if err != nil {
		log.Error().Err(err).Msg("failed to get guide tour dates")

		return res, fmt.Errorf("failed to get guide tour dates: %w", err)
	}

	res.Tours = make([]dto.ScheduleTourResponse, len(dates))
	for i, date := range dates {
		res.Tours[i].FromModel(date)
	}

	overrides, err := s.availabilities.GetAll(ctx, gDto.QueryParams{SortBy: model.AvailabilityFieldDate, SortDir: gDto.SortDirAsc},
		availabilityRangeFilter(guide.ID, start, end))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guide availability")

		return res, fmt.Errorf("failed to get guide availability: %w", err)
	}

	res.Overrides = make([]dto.OverrideResponse, len(overrides))
	for i, override := range overrides {
		res.Overrides[i].FromModel(override)
	}

	return res, nil
}

// Bookings lists the tours assigned to the calling guide, optionally narrowed
// by booking status and by period ("upcoming" or "past" relative to the tour
// start date).
func (s *serviceImpl) Bookings(ctx context.Context, status, period string) (res dto.GetGuideBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Bookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	guide, err := s.guideFromContext(ctx)
	if err != nil {
		return res, err
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: bookingModel.FieldGuideID, Value: guide.ID, Operator: gDto.FilterOperatorEq, Table: bookingModel.TableName},
		},
	}

	if status != constant.Empty {
		if !constant.ValidBookingStatus(status) {
			return res, failure.BadRequestFromString("status must be one of pending, confirmed, cancelled, completed") // nolint:wrapcheck
		}

		filter.Filters = append(filter.Filters,
			gDto.Filter{ArgName: "booking_status", Field: bookingModel.FieldStatus, Value: status, Operator: gDto.FilterOperatorEq, Table: bookingModel.TableName})
	}

	switch period {
	case constant.Empty:
	case constant.BookingPeriodUpcoming:
		filter.Filters = append(filter.Filters,
			gDto.Filter{ArgName: "period_start", Field: tourModel.TourDateFieldStartDate, Value: timezone.Now(), Operator: gDto.FilterOperatorGreaterEq, Table: tourModel.TourDateTable})
	case constant.BookingPeriodPast:
		filter.Filters = append(filter.Filters,
			gDto.Filter{ArgName: "period_end", Field: tourModel.TourDateFieldStartDate, Value: timezone.Now(), Operator: gDto.FilterOperatorLess, Table: tourModel.TourDateTable})
	default:
		return res, failure.BadRequestFromString("period must be upcoming or past") // nolint:wrapcheck
	}

	bookings, err := s.bookings.GetAll(ctx, gDto.QueryParams{SortBy: "tour_dates.start_date", SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guide bookings")

		return res, fmt.Errorf("failed to get guide bookings: %w", err)
	}

	res.FromModels(bookings)

	return res, nil
}

func (s *serviceImpl) FeedbackStats(ctx context.Context) (res dto.FeedbackStatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FeedbackStats")
	defer scope.End()
	defer scope.TraceIfError(err)

	guide, err := s.guideFromContext(ctx)
	if err != nil {
		return res, err
	}

	summary, err := s.feedbacks.Summary(ctx, guide.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guide rating summary")

		return res, fmt.Errorf("failed to get guide rating summary: %w", err)
	}

	trend, err := s.feedbacks.MonthlyTrend(ctx, guide.ID, constant.TrendWindowMonths)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guide feedback trend")

		return res, fmt.Errorf("failed to get guide feedback trend: %w", err)
	}

	res.FromModels(summary, trend)

	return res, nil
}

func (s *serviceImpl) guideFromContext(ctx context.Context) (guide model.Guide, err error) {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	guide, err = s.repo.Get(ctx, shared.FilterByID(userID, model.FieldUserID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guide profile")

		return guide, fmt.Errorf("failed to get guide profile: %w", err)
	}

	if guide.ID == constant.Empty {
		return guide, failure.Forbidden("guide profile not found") // nolint:wrapcheck
	}

	return guide, nil
}

func availabilityRangeFilter(guideID string, start, end time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.AvailabilityFieldGuideID, Value: guideID, Operator: gDto.FilterOperatorEq, Table: model.AvailabilityTable},
			gDto.Filter{ArgName: "range_start", Field: model.AvailabilityFieldDate, Value: start, Operator: gDto.FilterOperatorGreaterEq, Table: model.AvailabilityTable},
			gDto.Filter{ArgName: "range_end", Field: model.AvailabilityFieldDate, Value: end, Operator: gDto.FilterOperatorLessEq, Table: model.AvailabilityTable},
		},
	}
}
