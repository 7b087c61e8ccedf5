package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"trek/infras/otel"
	"trek/infras/postgres"
	"trek/internal/domains/feedback/model"
	"trek/shared/constant"
	gDto "trek/shared/dto"
	"trek/shared/logger"
	gRepo "trek/shared/repository"
)

type TourFeedback interface {
	Insert(ctx context.Context, model model.TourFeedback) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.TourFeedback, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.TourFeedback, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Stats(ctx context.Context, packageID string) (model.TourRatingSummary, error)
	OverallAverage(ctx context.Context) (float64, error)
}

type GuideFeedback interface {
	Insert(ctx context.Context, model model.GuideFeedback) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.GuideFeedback, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Summary(ctx context.Context, guideID string) (model.RatingSummary, error)
	MonthlyTrend(ctx context.Context, guideID string, months int) ([]model.TrendPoint, error)
}

type tourFeedbackRepositoryImpl struct {
	gRepo.Repository[model.TourFeedback]
	db   *postgres.Connection
	otel otel.Otel
}

func NewTourFeedback(db *postgres.Connection, otel otel.Otel) TourFeedback {
	return &tourFeedbackRepositoryImpl{
		Repository: gRepo.NewRepository[model.TourFeedback](model.TourFeedbackEntity, model.TourFeedbackTable, model.TourFeedbackFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *tourFeedbackRepositoryImpl) Stats(ctx context.Context, packageID string) (res model.TourRatingSummary, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".tour_feedback.Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT
			COALESCE(AVG(rating), 0)                                                  AS average_rating,
			COALESCE(AVG(CASE WHEN would_recommend THEN 100.0 ELSE 0.0 END), 0)      AS recommend_percent,
			COUNT(*)                                                                  AS total_feedback
		FROM tour_feedbacks
		WHERE package_id = $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.GetContext(ctx, &res, query, packageID); err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to get tour rating stats: %w", err)
	}

	return res, nil
}

func (repo *tourFeedbackRepositoryImpl) OverallAverage(ctx context.Context) (avg float64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".tour_feedback.OverallAverage")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT COALESCE(AVG(rating), 0) FROM tour_feedbacks`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.GetContext(ctx, &avg, query); err != nil {
		logger.ErrorWithStack(err)

		return avg, fmt.Errorf("failed to get overall tour rating: %w", err)
	}

	return avg, nil
}

type guideFeedbackRepositoryImpl struct {
	gRepo.Repository[model.GuideFeedback]
	db   *postgres.Connection
	otel otel.Otel
}

func NewGuideFeedback(db *postgres.Connection, otel otel.Otel) GuideFeedback {
	return &guideFeedbackRepositoryImpl{
		Repository: gRepo.NewRepository[model.GuideFeedback](model.GuideFeedbackEntity, model.GuideFeedbackTable, model.GuideFeedbackFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *guideFeedbackRepositoryImpl) Summary(ctx context.Context, guideID string) (res model.RatingSummary, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guide_feedback.Summary")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT
			COALESCE(AVG(rating), 0)                 AS average_rating,
			COALESCE(AVG(knowledge_rating), 0)       AS average_knowledge,
			COALESCE(AVG(communication_rating), 0)   AS average_communication,
			COALESCE(AVG(professionalism_rating), 0) AS average_professionalism,
			COUNT(*)                                 AS total_feedback
		FROM guide_feedbacks
		WHERE guide_id = $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.GetContext(ctx, &res, query, guideID); err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to get guide rating summary: %w", err)
	}

	return res, nil
}

func (repo *guideFeedbackRepositoryImpl) MonthlyTrend(ctx context.Context, guideID string, months int) (res []model.TrendPoint, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guide_feedback.MonthlyTrend")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT
			DATE_TRUNC('month', created_at) AS month,
			COALESCE(AVG(rating), 0)        AS average_rating,
			COUNT(*)                        AS total_feedback
		FROM guide_feedbacks
		WHERE guide_id = $1
			AND created_at >= DATE_TRUNC('month', NOW()) - ($2 * INTERVAL '1 month')
		GROUP BY DATE_TRUNC('month', created_at)
		ORDER BY month`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.SelectContext(ctx, &res, query, guideID, months); err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to get guide feedback trend: %w", err)
	}

	return res, nil
}
