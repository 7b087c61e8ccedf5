package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"trek/infras/otel"
	"trek/infras/postgres"
	"trek/internal/domains/tour/model"
	"trek/shared/constant"
	gDto "trek/shared/dto"
	"trek/shared/logger"
	gRepo "trek/shared/repository"
	"trek/shared/timezone"
)

var errImageNotInPackage = errors.New("image does not belong to package")

type TourPackage interface {
	Insert(ctx context.Context, model model.TourPackage) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.TourPackage, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.TourPackage, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type TourDate interface {
	Insert(ctx context.Context, model model.TourDate) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.TourDate, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.TourDate, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type TourImage interface {
	Insert(ctx context.Context, model model.TourImage) error
	InsertBulk(ctx context.Context, models []model.TourImage) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.TourImage, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.TourImage, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	SetPrimary(ctx context.Context, packageID, imageID, user string) error
}

type packageRepositoryImpl struct {
	gRepo.Repository[model.TourPackage]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) TourPackage {
	return &packageRepositoryImpl{
		Repository: gRepo.NewRepository[model.TourPackage](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type dateRepositoryImpl struct {
	gRepo.Repository[model.TourDate]
	db   *postgres.Connection
	otel otel.Otel
}

func NewDate(db *postgres.Connection, otel otel.Otel) TourDate {
	return &dateRepositoryImpl{
		Repository: gRepo.NewRepository[model.TourDate](model.TourDateEntity, model.TourDateTable, model.TourDateFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type imageRepositoryImpl struct {
	gRepo.Repository[model.TourImage]
	db   *postgres.Connection
	otel otel.Otel
}

func NewImage(db *postgres.Connection, otel otel.Otel) TourImage {
	return &imageRepositoryImpl{
		Repository: gRepo.NewRepository[model.TourImage](model.TourImageEntity, model.TourImageTable, model.TourImageFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// SetPrimary marks one image as the package cover. Sibling primary flags are
// cleared in the same transaction so at most one image per package stays
// primary.
func (repo *imageRepositoryImpl) SetPrimary(ctx context.Context, packageID, imageID, user string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".tour_image.SetPrimary")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	clearQuery := "UPDATE tour_images SET is_primary = FALSE, modified_at = :modified_at, modified_by = :modified_by WHERE package_id = :package_id"
	scope.SetAttribute(constant.OtelQueryAttributeKey, clearQuery)

	args := map[string]any{
		"package_id":  packageID,
		"id":          imageID,
		"modified_at": timezone.Now(),
		"modified_by": user,
	}

	if _, err = tx.NamedExecContext(ctx, clearQuery, args); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to clear primary flags: %w", err)
	}

	setQuery := "UPDATE tour_images SET is_primary = TRUE, modified_at = :modified_at, modified_by = :modified_by WHERE id = :id AND package_id = :package_id"

	result, err := tx.NamedExecContext(ctx, setQuery, args)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to set primary flag: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if affected == 0 {
		return errImageNotInPackage
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
