package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"trek/config"
	"trek/infras/otel"
	"trek/infras/s3"
	guideModel "trek/internal/domains/guide/model"
	guideRepo "trek/internal/domains/guide/repository"
	"trek/internal/domains/tour/model"
	"trek/internal/domains/tour/model/dto"
	"trek/internal/domains/tour/repository"
	"trek/shared"
	"trek/shared/cache"
	"trek/shared/constant"
	gDto "trek/shared/dto"
	"trek/shared/failure"
	gModel "trek/shared/model"
	"trek/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetPackage    = "tour:get"
	cacheGetAllPackage = "tour:gets"
	cacheCountPackage  = "tour:count"
	cacheGetDates      = "tour:dates"

	imageDirectory = "tours"
)

type Tour interface {
	CreatePackage(ctx context.Context, req dto.CreatePackageRequest) error
	GetAllPackages(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPackagesResponse, error)
	GetPackage(ctx context.Context, id string) (dto.PackageDetailResponse, error)
	UpdatePackage(ctx context.Context, req dto.UpdatePackageRequest, id string) error
	DeletePackage(ctx context.Context, id string) error

	CreateDate(ctx context.Context, req dto.CreateDateRequest) error
	GetDates(ctx context.Context, packageID string) (dto.GetDatesResponse, error)
	UpdateDate(ctx context.Context, req dto.UpdateDateRequest, id string) error
	DeleteDate(ctx context.Context, id string) error

	CreateImage(ctx context.Context, req dto.CreateImageRequest) error
	UploadImages(ctx context.Context, packageID, caption string, isPrimary bool, files []*multipart.FileHeader) error
	SetPrimaryImage(ctx context.Context, imageID string) error
	DeleteImage(ctx context.Context, imageID string) error
}

type serviceImpl struct {
	repo    repository.TourPackage
	dates   repository.TourDate
	images  repository.TourImage
	guides  guideRepo.Guide
	storage s3.S3
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(
	repo repository.TourPackage,
	dates repository.TourDate,
	images repository.TourImage,
	guides guideRepo.Guide,
	storage s3.S3,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Tour {
	return &serviceImpl{
		repo:    repo,
		dates:   dates,
		images:  images,
		guides:  guides,
		storage: storage,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

func (s *serviceImpl) CreatePackage(ctx context.Context, req dto.CreatePackageRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreatePackage")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if req.GuideID != constant.Empty {
		guideExists, err := s.guides.Exist(ctx, shared.FilterByID(req.GuideID, guideModel.FieldID, guideModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if guide exists")

			return fmt.Errorf("failed to check if guide exists: %w", err)
		}

		if !guideExists {
			return failure.BadRequestFromString("guide does not exist") // nolint:wrapcheck
		}
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create tour package")

		return fmt.Errorf("failed to create tour package: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllPackage, cacheCountPackage)
	}()

	return nil
}

func (s *serviceImpl) GetAllPackages(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPackagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllPackages")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPackage, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for tour packages")

		return res, nil
	}

	total, err := s.countPackages(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count tour packages")

		return res, fmt.Errorf("failed to count tour packages: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tour packages")

		return res, fmt.Errorf("failed to get tour packages: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save tour packages to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) countPackages(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".countPackages")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountPackage, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count tour packages: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save tour package count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetPackage(ctx context.Context, id string) (res dto.PackageDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPackage")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetPackage, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for tour package")

		return res, nil
	}

	pkg, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get tour package")

		return res, fmt.Errorf("failed to get tour package: %w", err)
	}

	if pkg.ID == constant.Empty {
		return res, failure.NotFound("tour package not found") // nolint:wrapcheck
	}

	res.FromModel(pkg)

	dates, err := s.dates.GetAll(ctx, gDto.QueryParams{SortBy: model.TourDateFieldStartDate, SortDir: gDto.SortDirAsc},
		shared.FilterByID(id, model.TourDateFieldPackageID, model.TourDateTable))
	if err != nil {
		log.Error().Err(err).Msg("failed to get tour dates")

		return res, fmt.Errorf("failed to get tour dates: %w", err)
	}

	res.Dates = make([]dto.DateResponse, len(dates))
	for i, date := range dates {
		res.Dates[i].FromModel(date)
	}

	images, err := s.images.GetAll(ctx, gDto.QueryParams{SortBy: model.TourImageFieldDisplayOrder, SortDir: gDto.SortDirAsc},
		shared.FilterByID(id, model.TourImageFieldPackageID, model.TourImageTable))
	if err != nil {
		log.Error().Err(err).Msg("failed to get tour images")

		return res, fmt.Errorf("failed to get tour images: %w", err)
	}

	res.Images = make([]dto.ImageResponse, len(images))
	for i, image := range images {
		res.Images[i].FromModel(image)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save tour package to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdatePackage(ctx context.Context, req dto.UpdatePackageRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePackage")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdatePackageRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if tour package exists")

		return fmt.Errorf("failed to check if tour package exists: %w", err)
	}

	if !exist {
		return failure.NotFound("tour package not found") // nolint:wrapcheck
	}

	if req.GuideID != constant.Empty {
		guideExists, err := s.guides.Exist(ctx, shared.FilterByID(req.GuideID, guideModel.FieldID, guideModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if guide exists")

			return fmt.Errorf("failed to check if guide exists: %w", err)
		}

		if !guideExists {
			return failure.BadRequestFromString("guide does not exist") // nolint:wrapcheck
		}
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update tour package")

		return fmt.Errorf("failed to update tour package: %w", err)
	}

	s.invalidatePackage(ctx, id)

	return nil
}

func (s *serviceImpl) DeletePackage(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeletePackage")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if tour package exists")

		return fmt.Errorf("failed to check if tour package exists: %w", err)
	}

	if !exist {
		return failure.NotFound("tour package not found") // nolint:wrapcheck
	}

	images, err := s.images.GetAll(ctx, gDto.QueryParams{},
		shared.FilterByID(id, model.TourImageFieldPackageID, model.TourImageTable))
	if err != nil {
		log.Error().Err(err).Msg("failed to get tour images")

		return fmt.Errorf("failed to get tour images: %w", err)
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete tour package")

		return fmt.Errorf("failed to delete tour package: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		bucket := s.cfg.External.S3.BucketName
		for _, image := range images {
			objectName := s.storage.GetObjectNameFromURL(bucket, image.URL)
			if objectName == constant.Empty {
				continue
			}

			if err := s.storage.DeleteFile(c, bucket, constant.Empty, objectName); err != nil {
				log.Error().Err(err).Str("url", image.URL).Msg("failed to delete tour image from storage")
			}
		}
	}()

	s.invalidatePackage(ctx, id)

	return nil
}

func (s *serviceImpl) CreateDate(ctx context.Context, req dto.CreateDateRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	pkgExists, err := s.repo.Exist(ctx, shared.FilterByID(req.PackageID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if tour package exists")

		return fmt.Errorf("failed to check if tour package exists: %w", err)
	}

	if !pkgExists {
		return failure.BadRequestFromString("tour package does not exist") // nolint:wrapcheck
	}

	date, err := req.ToModel(user)
	if err != nil {
		return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if date.EndDate.Before(date.StartDate) {
		return failure.BadRequestFromString("end_date must not be before start_date") // nolint:wrapcheck
	}

	if err = s.dates.Insert(ctx, date); err != nil {
		log.Error().Err(err).Msg("failed to create tour date")

		return fmt.Errorf("failed to create tour date: %w", err)
	}

	s.invalidatePackage(ctx, req.PackageID)

	return nil
}

func (s *serviceImpl) GetDates(ctx context.Context, packageID string) (res dto.GetDatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDates")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetDates, packageID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	dates, err := s.dates.GetAll(ctx, gDto.QueryParams{SortBy: model.TourDateFieldStartDate, SortDir: gDto.SortDirAsc},
		shared.FilterByID(packageID, model.TourDateFieldPackageID, model.TourDateTable))
	if err != nil {
		log.Error().Err(err).Msg("failed to get tour dates")

		return res, fmt.Errorf("failed to get tour dates: %w", err)
	}

	res.FromModels(dates)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save tour dates to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateDate(ctx context.Context, req dto.UpdateDateRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateDateRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.TourDateFieldID, model.TourDateTable)

	date, err := s.dates.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tour date")

		return fmt.Errorf("failed to get tour date: %w", err)
	}

	if date.ID == constant.Empty {
		return failure.NotFound("tour date not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.dates.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update tour date")

		return fmt.Errorf("failed to update tour date: %w", err)
	}

	s.invalidatePackage(ctx, date.PackageID)

	return nil
}

func (s *serviceImpl) DeleteDate(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.TourDateFieldID, model.TourDateTable)

	date, err := s.dates.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tour date")

		return fmt.Errorf("failed to get tour date: %w", err)
	}

	if date.ID == constant.Empty {
		return failure.NotFound("tour date not found") // nolint:wrapcheck
	}

	if err = s.dates.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete tour date")

		return fmt.Errorf("failed to delete tour date: %w", err)
	}

	s.invalidatePackage(ctx, date.PackageID)

	return nil
}

// CreateImage registers an externally hosted image URL for a package.
func (s *serviceImpl) CreateImage(ctx context.Context, req dto.CreateImageRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	pkgExists, err := s.repo.Exist(ctx, shared.FilterByID(req.PackageID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if tour package exists")

		return fmt.Errorf("failed to check if tour package exists: %w", err)
	}

	if !pkgExists {
		return failure.BadRequestFromString("tour package does not exist") // nolint:wrapcheck
	}

	if req.IsPrimary {
		clear := map[string]any{
			model.TourImageFieldIsPrimary: false,
			constant.FieldModifiedAt:      timezone.Now(),
			constant.FieldModifiedBy:      user,
		}

		if err = s.images.Update(ctx, clear, shared.FilterByID(req.PackageID, model.TourImageFieldPackageID, model.TourImageTable)); err != nil {
			log.Error().Err(err).Msg("failed to clear primary flags")

			return fmt.Errorf("failed to clear primary flags: %w", err)
		}
	}

	if err = s.images.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to save tour image")

		return fmt.Errorf("failed to save tour image: %w", err)
	}

	s.invalidatePackage(ctx, req.PackageID)

	return nil
}

func (s *serviceImpl) UploadImages(ctx context.Context, packageID, caption string, isPrimary bool, files []*multipart.FileHeader) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImages")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(files) == 0 {
		return failure.BadRequestFromString("at least one file is required") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	pkgExists, err := s.repo.Exist(ctx, shared.FilterByID(packageID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if tour package exists")

		return fmt.Errorf("failed to check if tour package exists: %w", err)
	}

	if !pkgExists {
		return failure.BadRequestFromString("tour package does not exist") // nolint:wrapcheck
	}

	models := make([]model.TourImage, 0, len(files))

	for i, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			log.Error().Err(err).Msg("failed to open uploaded file")

			return failure.BadRequestFromString("failed to open uploaded file") // nolint:wrapcheck
		}

		id := uuid.NewString()
		fileName := id + path.Ext(fileHeader.Filename)

		url, err := s.storage.UploadFile(ctx, constant.Empty, path.Join(imageDirectory, packageID), file, fileHeader, fileName)

		_ = file.Close()

		if err != nil {
			log.Error().Err(err).Msg("failed to upload tour image")

			return fmt.Errorf("failed to upload tour image: %w", err)
		}

		models = append(models, model.TourImage{
			ID:           id,
			PackageID:    packageID,
			URL:          url,
			Caption:      caption,
			IsPrimary:    isPrimary && i == 0,
			DisplayOrder: i,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		})
	}

	if isPrimary {
		clear := map[string]any{
			model.TourImageFieldIsPrimary: false,
			constant.FieldModifiedAt:      timezone.Now(),
			constant.FieldModifiedBy:      user,
		}

		if err = s.images.Update(ctx, clear, shared.FilterByID(packageID, model.TourImageFieldPackageID, model.TourImageTable)); err != nil {
			log.Error().Err(err).Msg("failed to clear primary flags")

			return fmt.Errorf("failed to clear primary flags: %w", err)
		}
	}

	if err = s.images.InsertBulk(ctx, models); err != nil {
		log.Error().Err(err).Msg("failed to save tour images")

		return fmt.Errorf("failed to save tour images: %w", err)
	}

	s.invalidatePackage(ctx, packageID)

	return nil
}

func (s *serviceImpl) SetPrimaryImage(ctx context.Context, imageID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetPrimaryImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	image, err := s.images.Get(ctx, shared.FilterByID(imageID, model.TourImageFieldID, model.TourImageTable))
	if err != nil {
		log.Error().Err(err).Msg("failed to get tour image")

		return fmt.Errorf("failed to get tour image: %w", err)
	}

	if image.ID == constant.Empty {
		return failure.NotFound("tour image not found") // nolint:wrapcheck
	}

	if err = s.images.SetPrimary(ctx, image.PackageID, imageID, user); err != nil {
		log.Error().Err(err).Msg("failed to set primary tour image")

		return fmt.Errorf("failed to set primary tour image: %w", err)
	}

	s.invalidatePackage(ctx, image.PackageID)

	return nil
}

func (s *serviceImpl) DeleteImage(ctx context.Context, imageID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(imageID, model.TourImageFieldID, model.TourImageTable)

	image, err := s.images.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tour image")

		return fmt.Errorf("failed to get tour image: %w", err)
	}

	if image.ID == constant.Empty {
		return failure.NotFound("tour image not found") // nolint:wrapcheck
	}

	if err = s.images.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete tour image")

		return fmt.Errorf("failed to delete tour image: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		bucket := s.cfg.External.S3.BucketName

		objectName := s.storage.GetObjectNameFromURL(bucket, image.URL)
		if objectName == constant.Empty {
			return
		}

		if err := s.storage.DeleteFile(c, bucket, constant.Empty, objectName); err != nil {
			log.Error().Err(err).Str("url", image.URL).Msg("failed to delete tour image from storage")
		}
	}()

	s.invalidatePackage(ctx, image.PackageID)

	return nil
}

func (s *serviceImpl) invalidatePackage(ctx context.Context, packageID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPackage, packageID)); err != nil {
			log.Error().Err(err).Msg("failed to delete tour package from cache")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetDates, packageID)); err != nil {
			log.Error().Err(err).Msg("failed to delete tour dates from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllPackage, cacheCountPackage)
	}()
}
