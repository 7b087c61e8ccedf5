package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"trek/config"
	"trek/infras/jwt"
	"trek/infras/otel"
	"trek/internal/domains/auth/model/dto"
	customerModel "trek/internal/domains/customer/model"
	customerRepo "trek/internal/domains/customer/repository"
	userModel "trek/internal/domains/user/model"
	userRepo "trek/internal/domains/user/repository"
	"trek/shared"
	"trek/shared/constant"
	gDto "trek/shared/dto"
	"trek/shared/failure"
	gModel "trek/shared/model"
	"trek/shared/password"
	"trek/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// bootstrapAdminID identifies the configured administrator, which exists
// outside the users table.
const bootstrapAdminID = "bootstrap-admin"

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Refresh(ctx context.Context, req dto.RefreshRequest) (*jwt.TokenPair, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
}

type serviceImpl struct {
	users     userRepo.User
	customers customerRepo.Customer
	jwt       jwt.JWT
	cfg       *config.Config
	otel      otel.Otel
}

func New(users userRepo.User, customers customerRepo.Customer, jwtService jwt.JWT, cfg *config.Config, otel otel.Otel) Auth {
	return &serviceImpl{
		users:     users,
		customers: customers,
		jwt:       jwtService,
		cfg:       cfg,
		otel:      otel,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
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

	user := req.ToModel(hash)

	if err = s.users.Insert(ctx, user); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return fmt.Errorf("failed to create user: %w", err)
	}

	profile := customerModel.Customer{
		ID:     uuid.NewString(),
		UserID: user.ID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user.ID,
			ModifiedBy: user.ID,
		},
	}

	if err = s.customers.Insert(ctx, profile); err != nil {
		log.Error().Err(err).Msg("failed to create customer profile")

		return fmt.Errorf("failed to create customer profile: %w", err)
	}

	return nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Username == s.cfg.Admin.Username {
		return s.loginBootstrapAdmin(req)
	}

	user, err := s.users.Get(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{Field: userModel.FieldUsername, Operator: gDto.FilterOperatorEq, Value: req.Username},
			gDto.Filter{ArgName: "login_email", Field: userModel.FieldEmail, Operator: gDto.FilterOperatorEq, Value: req.Username},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.Unauthorized("invalid credentials") // nolint:wrapcheck
	}

	if err = password.Verify(req.Password, user.PasswordHash); err != nil {
		return res, failure.Unauthorized("invalid credentials") // nolint:wrapcheck
	}

	if !user.IsActive {
		return res, failure.Forbidden("account is deactivated") // nolint:wrapcheck
	}

	tokens, err := s.jwt.GenerateTokenPair(user.ID, user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.User.FromModel(user)
	res.Tokens = tokens

	return res, nil
}

// loginBootstrapAdmin verifies the configured admin credentials. Failed
// attempts return the same unauthorized error every time, there is no
// lockout on this account.
func (s *serviceImpl) loginBootstrapAdmin(req dto.LoginRequest) (res dto.LoginResponse, err error) {
	if s.cfg.Admin.PasswordHash == constant.Empty {
		return res, failure.Unauthorized("invalid credentials") // nolint:wrapcheck
	}

	if err = password.Verify(req.Password, s.cfg.Admin.PasswordHash); err != nil {
		return res, failure.Unauthorized("invalid credentials") // nolint:wrapcheck
	}

	tokens, err := s.jwt.GenerateTokenPair(bootstrapAdminID, s.cfg.Admin.Email, constant.RoleAdmin)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.User = dto.UserResponse{
		ID:       bootstrapAdminID,
		Username: s.cfg.Admin.Username,
		Email:    s.cfg.Admin.Email,
		Role:     constant.RoleAdmin,
	}
	res.Tokens = tokens

	return res, nil
}

func (s *serviceImpl) Refresh(ctx context.Context, req dto.RefreshRequest) (tokens *jwt.TokenPair, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Refresh")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokens, err = s.jwt.RefreshTokens(req.RefreshToken)
	if err != nil {
		return nil, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	return tokens, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		return failure.Unauthorized("unauthorized") // nolint:wrapcheck
	}

	if userID == bootstrapAdminID {
		return failure.Forbidden("bootstrap admin password is managed through configuration") // nolint:wrapcheck
	}

	filter := shared.FilterByID(userID, userModel.FieldID, userModel.TableName)

	user, err := s.users.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.NotFound("user not found") // nolint:wrapcheck
	}

	if err = password.Verify(req.OldPassword, user.PasswordHash); err != nil {
		return failure.Unauthorized("invalid credentials") // nolint:wrapcheck
	}

	hash, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	update := map[string]any{
		userModel.FieldPasswordHash: hash,
		constant.FieldModifiedAt:    timezone.Now(),
		constant.FieldModifiedBy:    userID,
	}

	if err = s.users.Update(ctx, update, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
