package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"trek/infras/otel"
	"trek/infras/postgres"
	"trek/internal/domains/guide/model"
	"trek/shared/constant"
	gDto "trek/shared/dto"
	"trek/shared/logger"
	gRepo "trek/shared/repository"
)

type Guide interface {
	Insert(ctx context.Context, model model.Guide) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Guide, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Guide, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type Availability interface {
	Upsert(ctx context.Context, model model.Availability) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Availability, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Availability, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Guide]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Guide {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Guide](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type availabilityRepositoryImpl struct {
	gRepo.Repository[model.Availability]
	db   *postgres.Connection
	otel otel.Otel
}

func NewAvailability(db *postgres.Connection, otel otel.Otel) Availability {
	return &availabilityRepositoryImpl{
		Repository: gRepo.NewRepository[model.Availability](model.AvailabilityEntity, model.AvailabilityTable, model.AvailabilityFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Upsert writes the day override, replacing any existing row for the same
// guide and date.
func (repo *availabilityRepositoryImpl) Upsert(ctx context.Context, mod model.Availability) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guide_availability.Upsert")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `INSERT INTO guide_availabilities (id, guide_id, date, is_available, reason, created_at, modified_at, created_by, modified_by)
		VALUES (:id, :guide_id, :date, :is_available, :reason, :created_at, :modified_at, :created_by, :modified_by)
		ON CONFLICT (guide_id, date) DO UPDATE
		SET is_available = EXCLUDED.is_available,
			reason = EXCLUDED.reason,
			modified_at = EXCLUDED.modified_at,
			modified_by = EXCLUDED.modified_by`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = repo.db.Write.NamedExecContext(ctx, query, mod); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to upsert guide availability: %w", err)
	}

	return nil
}
