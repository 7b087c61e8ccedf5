package tour

import (
	"net/http"
	"strconv"
	"trek/infras/otel"
	"trek/internal/domains/tour/model"
	"trek/internal/domains/tour/model/dto"
	"trek/internal/domains/tour/service"
	"trek/shared"
	"trek/shared/constant"
	gDto "trek/shared/dto"
	"trek/shared/failure"
	"trek/shared/validator"
	"trek/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Tour
	otel    otel.Otel
}

func New(service service.Tour, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/tours", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPackages)
		routerGroup.Post("/", handler.CreatePackage)
		routerGroup.Get("/{id}", handler.GetPackageByID)
		routerGroup.Put("/{id}", handler.UpdatePackage)
		routerGroup.Delete("/{id}", handler.DeletePackage)
		routerGroup.Get("/{id}/dates", handler.GetDates)
	})

	router.Route("/tour-dates", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateDate)
		routerGroup.Put("/{id}", handler.UpdateDate)
		routerGroup.Delete("/{id}", handler.DeleteDate)
	})

	router.Route("/tour-images", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.UploadImages)
		routerGroup.Post("/url", handler.CreateImage)
		routerGroup.Put("/{id}/primary", handler.SetPrimaryImage)
		routerGroup.Delete("/{id}", handler.DeleteImage)
	})
}

// GetPackages retrieves tour packages with optional filters.
// @Summary Get tour packages
// @Description Retrieve tour packages with filtering and pagination.
// @Tags Tour
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param destination query string false "Filter by destination (partial match)"
// @Param difficulty query string false "Filter by difficulty (easy, moderate, difficult)"
// @Param max_price query number false "Filter by maximum price"
// @Param is_active query boolean false "Filter by active flag"
// @Success 200 {object} response.Data[dto.GetPackagesResponse] "List of tour packages"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tours [get]
func (handler *Handler) GetPackages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPackages")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if destination := r.URL.Query().Get(model.FieldDestination); destination != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDestination,
			Operator: gDto.FilterOperatorLike,
			Value:    destination,
			Table:    model.TableName,
		})
	}

	if difficulty := r.URL.Query().Get(model.FieldDifficulty); difficulty != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDifficulty,
			Operator: gDto.FilterOperatorEq,
			Value:    difficulty,
			Table:    model.TableName,
		})
	}

	if maxPrice := r.URL.Query().Get("max_price"); maxPrice != "" {
		price, err := strconv.ParseFloat(maxPrice, 64)
		if err != nil {
			scope.TraceError(err)

			response.WithError(w, failure.BadRequestFromString("max_price must be a number"))

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			ArgName:  "max_price",
			Field:    model.FieldPrice,
			Operator: gDto.FilterOperatorLessEq,
			Value:    price,
			Table:    model.TableName,
		})
	}

	if isActive := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldIsActive)); isActive != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *isActive,
			Table:    model.TableName,
		})
	}

	packages, err := handler.service.GetAllPackages(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tour packages")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tour packages retrieved successfully")

	response.WithJSON(w, http.StatusOK, packages)
}

// CreatePackage creates a new tour package.
// @Summary Create a tour package
// @Description Create a new tour package with the provided details.
// @Tags Tour
// @Accept json
// @Produce json
// @Param request body dto.CreatePackageRequest true "Create Package Request"
// @Success 201 {object} response.Message "Tour package created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tours [post]
// @Security BearerAuth
func (handler *Handler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePackage")
	defer scope.End()

	req := dto.CreatePackageRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreatePackage(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create tour package")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Tour package created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Tour package created successfully")
}

// GetPackageByID retrieves a tour package with its dates and images.
// @Summary Get a tour package by ID
// @Description Retrieve a tour package together with its departure dates and images.
// @Tags Tour
// @Accept json
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} response.Data[dto.PackageDetailResponse] "Tour package details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tours/{id} [get]
func (handler *Handler) GetPackageByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPackageByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	pkg, err := handler.service.GetPackage(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tour package")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tour package retrieved successfully")

	response.WithJSON(w, http.StatusOK, pkg)
}

// UpdatePackage updates an existing tour package.
// @Summary Update a tour package
// @Description Update the details of an existing tour package.
// @Tags Tour
// @Accept json
// @Produce json
// @Param id path string true "Package ID"
// @Param request body dto.UpdatePackageRequest true "Update Package Request"
// @Success 200 {object} response.Message "Tour package updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/tours/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePackage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePackageRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdatePackage(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update tour package")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Tour package updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Tour package updated successfully")
}

// DeletePackage deletes a tour package.
// @Summary Delete a tour package
// @Description Delete a tour package and its dates and images.
// @Tags Tour
// @Accept json
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} response.Message "Tour package deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tours/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePackage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeletePackage(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete tour package")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Tour package deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Tour package deleted successfully")
}

// GetDates retrieves the departure dates of a tour package.
// @Summary Get tour dates
// @Description Retrieve the departure dates of a tour package.
// @Tags Tour
// @Accept json
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} response.Data[dto.GetDatesResponse] "List of tour dates"
// @Failure 500 {object} response.Error
// @Router /v1/tours/{id}/dates [get]
func (handler *Handler) GetDates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDates")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	dates, err := handler.service.GetDates(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tour dates")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tour dates retrieved successfully")

	response.WithJSON(w, http.StatusOK, dates)
}

// CreateDate adds a departure date to a tour package.
// @Summary Create a tour date
// @Description Add a departure date with available spots to a tour package.
// @Tags Tour
// @Accept json
// @Produce json
// @Param request body dto.CreateDateRequest true "Create Date Request"
// @Success 201 {object} response.Message "Tour date created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tour-dates [post]
// @Security BearerAuth
func (handler *Handler) CreateDate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDate")
	defer scope.End()

	req := dto.CreateDateRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateDate(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create tour date")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Tour date created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Tour date created successfully")
}

// UpdateDate updates a tour date's spots or availability.
// @Summary Update a tour date
// @Description Update the available spots or availability flag of a tour date.
// @Tags Tour
// @Accept json
// @Produce json
// @Param id path string true "Tour Date ID"
// @Param request body dto.UpdateDateRequest true "Update Date Request"
// @Success 200 {object} response.Message "Tour date updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/tour-dates/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateDate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDate")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateDateRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateDate(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update tour date")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Tour date updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Tour date updated successfully")
}

// DeleteDate deletes a tour date.
// @Summary Delete a tour date
// @Description Remove a departure date from a tour package.
// @Tags Tour
// @Accept json
// @Produce json
// @Param id path string true "Tour Date ID"
// @Success 200 {object} response.Message "Tour date deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/tour-dates/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteDate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDate")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteDate(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete tour date")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Tour date deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Tour date deleted successfully")
}

// UploadImages uploads one or more images for a tour package.
// @Summary Upload tour images
// @Description Upload images for a tour package. The first file becomes primary when is_primary is set.
// @Tags Tour
// @Accept multipart/form-data
// @Produce json
// @Param package_id formData string true "Package ID"
// @Param caption formData string false "Image caption"
// @Param is_primary formData boolean false "Mark the first file as the primary image"
// @Param file formData file true "Image files"
// @Success 201 {object} response.Message "Tour images uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tour-images [post]
// @Security BearerAuth
func (handler *Handler) UploadImages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImages")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequestFromString("invalid multipart form"))

		return
	}

	packageID := r.FormValue("package_id")
	if packageID == "" {
		response.WithError(w, failure.BadRequestFromString("package_id is required"))

		return
	}

	caption := r.FormValue("caption")
	isPrimary, _ := strconv.ParseBool(r.FormValue("is_primary"))
	files := r.MultipartForm.File[constant.FormFile]

	if err := handler.service.UploadImages(ctx, packageID, caption, isPrimary, files); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload tour images")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Tour images uploaded successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Tour images uploaded successfully")
}

// CreateImage registers an externally hosted image URL for a tour package.
// @Summary Add a tour image by URL
// @Description Register an image that is already hosted elsewhere for a tour package.
// @Tags Tour
// @Accept json
// @Produce json
// @Param request body dto.CreateImageRequest true "Create Image Request"
// @Success 201 {object} response.Message "Tour image created successfully"
// @Failure 400 {object} response.Error
// @Router /v1/tour-images/url [post]
// @Security BearerAuth
func (handler *Handler) CreateImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateImage")
	defer scope.End()

	req := dto.CreateImageRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateImage(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create tour image")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Tour image created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Tour image created successfully")
}

// SetPrimaryImage flags an image as the package's primary image.
// @Summary Set the primary tour image
// @Description Mark an image as the primary image of its tour package.
// @Tags Tour
// @Accept json
// @Produce json
// @Param id path string true "Image ID"
// @Success 200 {object} response.Message "Primary image set successfully"
// @Failure 404 {object} response.Error
// @Router /v1/tour-images/{id}/primary [put]
// @Security BearerAuth
func (handler *Handler) SetPrimaryImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetPrimaryImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.SetPrimaryImage(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set primary tour image")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Primary tour image set successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Primary image set successfully")
}

// DeleteImage deletes a tour image.
// @Summary Delete a tour image
// @Description Delete a tour image and remove the stored file.
// @Tags Tour
// @Accept json
// @Produce json
// @Param id path string true "Image ID"
// @Success 200 {object} response.Message "Tour image deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/tour-images/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteImage(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete tour image")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Tour image deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Tour image deleted successfully")
}
