package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"trek/infras/otel"
	"trek/infras/postgres"
	"trek/internal/domains/booking/model"
	"trek/shared"
	"trek/shared/constant"
	gDto "trek/shared/dto"
	"trek/shared/logger"
	gRepo "trek/shared/repository"
	"trek/shared/timezone"

	"github.com/pkg/errors"
)

// ErrInsufficientSpots is returned when a reservation asks for more seats
// than the tour date has left.
var ErrInsufficientSpots = errors.New("not enough available spots")

type Booking interface {
	Reserve(ctx context.Context, booking model.Booking) error
	Cancel(ctx context.Context, booking model.Booking, user string) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	SumRevenue(ctx context.Context) (float64, error)
}

type CustomTour interface {
	Insert(ctx context.Context, model model.CustomTourRequest) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.CustomTourRequest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CustomTourRequest, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type customTourRepositoryImpl struct {
	gRepo.Repository[model.CustomTourRequest]
}

func NewCustomTour(db *postgres.Connection, otel otel.Otel) CustomTour {
	return &customTourRepositoryImpl{
		Repository: gRepo.NewRepository[model.CustomTourRequest](model.CustomTourEntity, model.CustomTourTable, model.CustomTourFieldID, db, otel),
	}
}

// Reserve inserts the booking and takes its seats from the tour date in one
// transaction. The seat decrement is conditional so two concurrent bookings
// can never oversell a date.
func (repo *repositoryImpl) Reserve(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Reserve")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logger.ErrorWithStack(rollbackErr)
			}
		}
	}()

	query := `UPDATE tour_dates
		SET available_spots = available_spots - :participants,
			modified_at = :modified_at,
			modified_by = :modified_by
		WHERE id = :tour_date_id
			AND is_available = TRUE
			AND available_spots >= :participants`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := tx.NamedExecContext(ctx, query, map[string]any{
		"participants": booking.Participants,
		"tour_date_id": booking.TourDateID,
		"modified_at":  timezone.Now(),
		"modified_by":  booking.CreatedBy,
	})
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to reserve spots: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to reserve spots: %w", err)
	}

	if affected == 0 {
		return ErrInsufficientSpots
	}

	if err = repo.InsertTx(ctx, tx, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// SumRevenue totals the price of bookings that were paid for.
func (repo *repositoryImpl) SumRevenue(ctx context.Context) (res float64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.SumRevenue")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT COALESCE(SUM(total_price), 0) FROM bookings WHERE status IN ($1, $2)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.GetContext(ctx, &res, query, constant.BookingStatusConfirmed, constant.BookingStatusCompleted); err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to sum booking revenue: %w", err)
	}

	return res, nil
}

// Cancel flips the booking to cancelled and gives its seats back to the tour
// date in one transaction, mirroring Reserve. A crash can therefore never
// leave a cancelled booking with its seats still taken.
func (repo *repositoryImpl) Cancel(ctx context.Context, booking model.Booking, user string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logger.ErrorWithStack(rollbackErr)
			}
		}
	}()

	cancelled := map[string]any{
		model.FieldStatus:        constant.BookingStatusCancelled,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = repo.UpdateTx(ctx, tx, cancelled, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	query := `UPDATE tour_dates
		SET available_spots = available_spots + :participants,
			modified_at = :modified_at,
			modified_by = :modified_by
		WHERE id = :tour_date_id`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = tx.NamedExecContext(ctx, query, map[string]any{
		"participants": booking.Participants,
		"tour_date_id": booking.TourDateID,
		"modified_at":  timezone.Now(),
		"modified_by":  user,
	}); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to release spots: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
