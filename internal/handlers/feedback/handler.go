package feedback

import (
	"net/http"
	"trek/infras/otel"
	"trek/internal/domains/feedback/model/dto"
	"trek/internal/domains/feedback/service"
	"trek/shared/constant"
	gDto "trek/shared/dto"
	"trek/shared/validator"
	"trek/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Feedback
	otel    otel.Otel
}

func New(service service.Feedback, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/feedback", func(routerGroup chi.Router) {
		routerGroup.Post("/tours", handler.SubmitTourFeedback)
		routerGroup.Get("/tours", handler.GetTourFeedback)
		routerGroup.Post("/guides", handler.SubmitGuideFeedback)
		routerGroup.Get("/guides/{id}/summary", handler.GuideSummary)
	})
}

// SubmitTourFeedback rates a completed booking's tour package.
// @Summary Submit tour feedback
// @Description Rate the tour package of a completed booking. One feedback per booking.
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body dto.SubmitTourFeedbackRequest true "Submit Tour Feedback Request"
// @Success 201 {object} response.Message "Feedback submitted successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/feedback/tours [post]
// @Security BearerAuth
func (handler *Handler) SubmitTourFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitTourFeedback")
	defer scope.End()

	req := dto.SubmitTourFeedbackRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SubmitTourFeedback(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit tour feedback")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Tour feedback submitted successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Feedback submitted successfully")
}

// GetTourFeedback lists feedback for a tour package.
// @Summary Get tour feedback
// @Description Retrieve feedback and the average rating for a tour package.
// @Tags Feedback
// @Accept json
// @Produce json
// @Param package_id query string true "Package ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetTourFeedbackResponse] "Tour feedback"
// @Failure 400 {object} response.Error
// @Router /v1/feedback/tours [get]
func (handler *Handler) GetTourFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTourFeedback")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	packageID := r.URL.Query().Get("package_id")

	feedback, err := handler.service.GetTourFeedback(ctx, queryParams, packageID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tour feedback")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tour feedback retrieved successfully")

	response.WithJSON(w, http.StatusOK, feedback)
}

// SubmitGuideFeedback rates the guide of a completed booking.
// @Summary Submit guide feedback
// @Description Rate the guide who led a completed booking. One feedback per guide and booking.
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body dto.SubmitGuideFeedbackRequest true "Submit Guide Feedback Request"
// @Success 201 {object} response.Message "Feedback submitted successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/feedback/guides [post]
// @Security BearerAuth
func (handler *Handler) SubmitGuideFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitGuideFeedback")
	defer scope.End()

	req := dto.SubmitGuideFeedbackRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SubmitGuideFeedback(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit guide feedback")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guide feedback submitted successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Feedback submitted successfully")
}

// GuideSummary returns a guide's aggregated ratings.
// @Summary Get guide rating summary
// @Description Retrieve a guide's average ratings and total feedback count.
// @Tags Feedback
// @Accept json
// @Produce json
// @Param id path string true "Guide ID"
// @Success 200 {object} response.Data[dto.GuideSummaryResponse] "Guide rating summary"
// @Failure 404 {object} response.Error
// @Router /v1/feedback/guides/{id}/summary [get]
func (handler *Handler) GuideSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GuideSummary")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	summary, err := handler.service.GuideSummary(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guide rating summary")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guide rating summary retrieved successfully")

	response.WithJSON(w, http.StatusOK, summary)
}
