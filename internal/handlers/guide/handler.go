package guide

import (
	"net/http"
	"trek/infras/otel"
	"trek/internal/domains/guide/model"
	"trek/internal/domains/guide/model/dto"
	"trek/internal/domains/guide/service"
	"trek/shared/constant"
	gDto "trek/shared/dto"
	"trek/shared/validator"
	"trek/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Guide
	otel    otel.Otel
}

func New(service service.Guide, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guides", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetGuides)
		routerGroup.Post("/", handler.CreateGuide)
		routerGroup.Get("/{id}", handler.GetGuideProfile)
		routerGroup.Put("/{id}", handler.UpdateGuide)
		routerGroup.Delete("/{id}", handler.DeleteGuide)
		routerGroup.Get("/{id}/availability", handler.CheckAvailability)
		routerGroup.Put("/availability", handler.SetAvailability)
		routerGroup.Get("/schedule", handler.Schedule)
		routerGroup.Get("/bookings", handler.Bookings)
		routerGroup.Get("/feedback", handler.FeedbackStats)
	})
}

// GetGuides retrieves the public guide directory, available guides only,
// best rated first.
// @Summary Get guides
// @Description Retrieve available guides with pagination, sorted by rating.
// @Tags Guide
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetGuidesResponse] "List of guides"
// @Failure 500 {object} response.Error
// @Router /v1/guides [get]
func (handler *Handler) GetGuides(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuides")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.SortBy = model.FieldRating
	queryParams.SortDir = gDto.SortDirDesc

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIsAvailable,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}

	guides, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guides")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guides retrieved successfully")

	response.WithJSON(w, http.StatusOK, guides)
}

// GetGuideProfile retrieves a guide's public profile.
// @Summary Get a guide profile
// @Description Retrieve a guide's public profile with aggregate ratings and recent feedback.
// @Tags Guide
// @Accept json
// @Produce json
// @Param id path string true "Guide ID"
// @Success 200 {object} response.Data[dto.GuideProfileResponse] "Guide profile"
// @Failure 404 {object} response.Error
// @Router /v1/guides/{id} [get]
func (handler *Handler) GetGuideProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuideProfile")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Profile(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guide profile")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guide profile retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// CreateGuide provisions a guide account and profile.
// @Summary Create a guide
// @Description Create a guide account with its credential row and profile.
// @Tags Guide
// @Accept json
// @Produce json
// @Param request body dto.CreateGuideRequest true "Create Guide Request"
// @Success 201 {object} response.Message "Guide created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/guides [post]
// @Security BearerAuth
func (handler *Handler) CreateGuide(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGuide")
	defer scope.End()

	req := dto.CreateGuideRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create guide")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guide created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Guide created successfully")
}

// UpdateGuide updates a guide profile.
// @Summary Update a guide
// @Description Update a guide's bio, experience, languages or availability flag.
// @Tags Guide
// @Accept json
// @Produce json
// @Param id path string true "Guide ID"
// @Param request body dto.UpdateGuideRequest true "Update Guide Request"
// @Success 200 {object} response.Message "Guide updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/guides/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateGuide(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGuide")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateGuideRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update guide")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guide updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Guide updated successfully")
}

// DeleteGuide removes a guide profile and deactivates the linked account.
// @Summary Delete a guide
// @Description Remove a guide profile and deactivate its user account.
// @Tags Guide
// @Accept json
// @Produce json
// @Param id path string true "Guide ID"
// @Success 200 {object} response.Message "Guide deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/guides/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteGuide(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGuide")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete guide")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guide deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Guide deleted successfully")
}

// CheckAvailability checks whether a guide is free for a date range.
// @Summary Check guide availability
// @Description Check whether a guide is available for every day in the given range.
// @Tags Guide
// @Accept json
// @Produce json
// @Param id path string true "Guide ID"
// @Param start_date query string true "Range start (YYYY-MM-DD)"
// @Param end_date query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.AvailabilityCheckResponse] "Availability result"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/guides/{id}/availability [get]
func (handler *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	startDate := r.URL.Query().Get(constant.RequestParamStartDate)
	endDate := r.URL.Query().Get(constant.RequestParamEndDate)

	res, err := handler.service.CheckAvailability(ctx, id, startDate, endDate)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check guide availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guide availability checked successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// SetAvailability writes day overrides for the calling guide.
// @Summary Set guide availability
// @Description Mark specific days as available or unavailable for the calling guide.
// @Tags Guide
// @Accept json
// @Produce json
// @Param request body dto.SetAvailabilityRequest true "Set Availability Request"
// @Success 200 {object} response.Message "Availability updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/guides/availability [put]
// @Security BearerAuth
func (handler *Handler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetAvailability")
	defer scope.End()

	req := dto.SetAvailabilityRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetAvailability(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set guide availability")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guide availability updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Availability updated successfully")
}

// Schedule returns the calling guide's upcoming tours and overrides.
// @Summary Get guide schedule
// @Description Retrieve the calling guide's assigned tour dates and day overrides for the upcoming window.
// @Tags Guide
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.ScheduleResponse] "Guide schedule"
// @Failure 403 {object} response.Error
// @Router /v1/guides/schedule [get]
// @Security BearerAuth
func (handler *Handler) Schedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Schedule")
	defer scope.End()

	res, err := handler.service.Schedule(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guide schedule")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guide schedule retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// Bookings returns bookings assigned to the calling guide.
// @Summary Get guide bookings
// @Description Retrieve bookings assigned to the calling guide, optionally filtered by status and period.
// @Tags Guide
// @Accept json
// @Produce json
// @Param status query string false "Filter by booking status (pending, confirmed, cancelled, completed)"
// @Param period query string false "Filter by period (upcoming, past)"
// @Success 200 {object} response.Data[dto.GetGuideBookingsResponse] "Guide bookings"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/guides/bookings [get]
// @Security BearerAuth
func (handler *Handler) Bookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Bookings")
	defer scope.End()

	status := r.URL.Query().Get(constant.RequestParamStatus)
	period := r.URL.Query().Get(constant.RequestParamPeriod)

	res, err := handler.service.Bookings(ctx, status, period)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guide bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guide bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// FeedbackStats returns the calling guide's feedback aggregates.
// @Summary Get guide feedback stats
// @Description Retrieve the calling guide's rating averages and monthly trend.
// @Tags Guide
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.FeedbackStatsResponse] "Guide feedback stats"
// @Failure 403 {object} response.Error
// @Router /v1/guides/feedback [get]
// @Security BearerAuth
func (handler *Handler) FeedbackStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".FeedbackStats")
	defer scope.End()

	res, err := handler.service.FeedbackStats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guide feedback stats")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guide feedback stats retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}
