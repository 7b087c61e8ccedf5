package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"trek/config"
	"trek/infras/jwt"
	jwtMocks "trek/infras/jwt/mocks"
	"trek/infras/otel/mocks"
	"trek/internal/domains/auth/model/dto"
	"trek/internal/domains/auth/service"
	customerMocks "trek/internal/domains/customer/mocks"
	userMocks "trek/internal/domains/user/mocks"
	userModel "trek/internal/domains/user/model"
	"trek/shared/constant"
	"trek/shared/failure"
	"trek/shared/password"
)

type authFixture struct {
	users     *userMocks.MockUser
	customers *customerMocks.MockCustomer
	jwt       *jwtMocks.MockJWT
	cfg       *config.Config
	svc       service.Auth
}

func newAuthFixture(t *testing.T, ctrl *gomock.Controller) *authFixture {
	t.Helper()

	f := &authFixture{
		users:     userMocks.NewMockUser(ctrl),
		customers: customerMocks.NewMockCustomer(ctrl),
		jwt:       jwtMocks.NewMockJWT(ctrl),
		cfg:       &config.Config{},
	}

	adminHash, err := password.Hash("admin-secret")
	assert.NoError(t, err)

	f.cfg.Admin.Username = "root"
	f.cfg.Admin.Email = "root@trek.local"
	f.cfg.Admin.PasswordHash = adminHash

	f.svc = service.New(f.users, f.customers, f.jwt, f.cfg, mocks.NewOtel())

	return f
}

func activeUser(t *testing.T) userModel.User {
	t.Helper()

	hash, err := password.Hash("correct-password")
	assert.NoError(t, err)

	return userModel.User{
		ID:           "user-1",
		Username:     "wanderer",
		Email:        "wanderer@example.com",
		PasswordHash: hash,
		Role:         constant.RoleCustomer,
		IsActive:     true,
	}
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newAuthFixture(t, ctrl)

	req := dto.RegisterRequest{
		Username: "wanderer",
		Email:    "wanderer@example.com",
		Password: "correct-password",
	}

	tests := []struct {
		name      string
		req       dto.RegisterRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful registration",
			req:  req,
			setupMock: func() {
				f.users.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				f.users.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				f.customers.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "username or email already taken",
			req:  req,
			setupMock: func() {
				f.users.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "username collides with configured admin",
			req: dto.RegisterRequest{
				Username: "root",
				Email:    "root@example.com",
				Password: "correct-password",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusConflict,
		},
		{
			name: "insert error",
			req:  req,
			setupMock: func() {
				f.users.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				f.users.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := f.svc.Register(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newAuthFixture(t, ctrl)

	user := activeUser(t)
	tokens := &jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer"}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantErr   bool
		wantCode  int
		wantRole  string
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Username: "wanderer", Password: "correct-password"},
			setupMock: func() {
				f.users.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)

				f.jwt.EXPECT().
					GenerateTokenPair(user.ID, user.Email, user.Role).
					Return(tokens, nil)
			},
			wantErr:  false,
			wantRole: constant.RoleCustomer,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Username: "wanderer", Password: "wrong-password"},
			setupMock: func() {
				f.users.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "unknown user",
			req:  dto.LoginRequest{Username: "nobody", Password: "correct-password"},
			setupMock: func() {
				f.users.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "deactivated account",
			req:  dto.LoginRequest{Username: "wanderer", Password: "correct-password"},
			setupMock: func() {
				inactive := user
				inactive.IsActive = false

				f.users.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(inactive, nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "bootstrap admin login",
			req:  dto.LoginRequest{Username: "root", Password: "admin-secret"},
			setupMock: func() {
				f.jwt.EXPECT().
					GenerateTokenPair(gomock.Any(), "root@trek.local", constant.RoleAdmin).
					Return(tokens, nil)
			},
			wantErr:  false,
			wantRole: constant.RoleAdmin,
		},
		{
			name:      "bootstrap admin wrong password",
			req:       dto.LoginRequest{Username: "root", Password: "wrong-password"},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := f.svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantRole, result.User.Role)
				assert.Equal(t, tokens, result.Tokens)
			}
		})
	}
}

func TestAuthService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newAuthFixture(t, ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful refresh",
			setupMock: func() {
				f.jwt.EXPECT().
					RefreshTokens("valid-refresh-token").
					Return(&jwt.TokenPair{AccessToken: "new-access"}, nil)
			},
			wantErr: false,
		},
		{
			name: "invalid refresh token",
			setupMock: func() {
				f.jwt.EXPECT().
					RefreshTokens("valid-refresh-token").
					Return(nil, errors.New("token expired"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			tokens, err := f.svc.Refresh(context.Background(), dto.RefreshRequest{RefreshToken: "valid-refresh-token"})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "new-access", tokens.AccessToken)
			}
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newAuthFixture(t, ctrl)

	user := activeUser(t)
	req := dto.ChangePasswordRequest{OldPassword: "correct-password", NewPassword: "next-password"}

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.ChangePasswordRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful change",
			ctx:  context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1"),
			req:  req,
			setupMock: func() {
				f.users.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)

				f.users.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "wrong old password",
			ctx:  context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1"),
			req:  dto.ChangePasswordRequest{OldPassword: "wrong-password", NewPassword: "next-password"},
			setupMock: func() {
				f.users.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:      "missing caller identity",
			ctx:       context.Background(),
			req:       req,
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusUnauthorized,
		},
		{
			name:      "bootstrap admin cannot change password",
			ctx:       context.WithValue(context.Background(), constant.ContextKeyUserID, "bootstrap-admin"),
			req:       req,
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusForbidden,
		},
		{
			name: "user not found",
			ctx:  context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1"),
			req:  req,
			setupMock: func() {
				f.users.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := f.svc.ChangePassword(tt.ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
