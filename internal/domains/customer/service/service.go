package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"trek/infras/otel"
	"trek/internal/domains/customer/model"
	"trek/internal/domains/customer/model/dto"
	"trek/internal/domains/customer/repository"
	userModel "trek/internal/domains/user/model"
	userRepo "trek/internal/domains/user/repository"
	"trek/shared"
	"trek/shared/constant"
	gDto "trek/shared/dto"
	"trek/shared/failure"

	"github.com/rs/zerolog/log"
)

type Customer interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCustomersResponse, error)
	Me(ctx context.Context) (dto.CustomerResponse, error)
	UpdateMe(ctx context.Context, req dto.UpdateProfileRequest) error
}

type serviceImpl struct {
	repo  repository.Customer
	users userRepo.User
	otel  otel.Otel
}

func New(repo repository.Customer, users userRepo.User, otel otel.Otel) Customer {
	return &serviceImpl{
		repo:  repo,
		users: users,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCustomersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count customers")

		return res, fmt.Errorf("failed to count customers: %w", err)
	}

	customers, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customers")

		return res, fmt.Errorf("failed to get customers: %w", err)
	}

	res.FromModels(customers, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Me(ctx context.Context) (res dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Me")
	defer scope.End()
	defer scope.TraceIfError(err)

	customer, err := s.customerFromContext(ctx)
	if err != nil {
		return res, err
	}

	res.FromModel(customer)

	return res, nil
}

// UpdateMe writes profile changes across the users and customers tables.
func (s *serviceImpl) UpdateMe(ctx context.Context, req dto.UpdateProfileRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateMe")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateProfileRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	customer, err := s.customerFromContext(ctx)
	if err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if fields := req.UserFields(); !fields.IsZero() {
		updatedFields := shared.TransformFields(fields, user)

		if err = s.users.Update(ctx, updatedFields, shared.FilterByID(customer.UserID, userModel.FieldID, userModel.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to update user profile")

			return fmt.Errorf("failed to update user profile: %w", err)
		}
	}

	fields, err := req.CustomerFields()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse date of birth")

		return failure.BadRequestFromString("date_of_birth must be in YYYY-MM-DD format") // nolint:wrapcheck
	}

	if !fields.IsZero() {
		updatedFields := shared.TransformFields(fields, user)

		if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(customer.ID, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to update customer profile")

			return fmt.Errorf("failed to update customer profile: %w", err)
		}
	}

	return nil
}

func (s *serviceImpl) customerFromContext(ctx context.Context) (customer model.Customer, err error) {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	customer, err = s.repo.Get(ctx, shared.FilterByID(userID, model.FieldUserID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer profile")

		return customer, fmt.Errorf("failed to get customer profile: %w", err)
	}

	if customer.ID == constant.Empty {
		return customer, failure.NotFound("customer profile not found") // nolint:wrapcheck
	}

	return customer, nil
}
