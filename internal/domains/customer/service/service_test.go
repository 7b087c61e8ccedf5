package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"trek/infras/otel/mocks"
	customerMocks "trek/internal/domains/customer/mocks"
	"trek/internal/domains/customer/model"
	"trek/internal/domains/customer/model/dto"
	"trek/internal/domains/customer/service"
	userMocks "trek/internal/domains/user/mocks"
	"trek/shared/constant"
	gDto "trek/shared/dto"
)

func TestCustomerService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	mockUsers := userMocks.NewMockUser(ctrl)

	svc := service.New(mockRepo, mockUsers, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name: "successful get all",
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(2, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Customer{
						{ID: "cust-1", UserID: "user-1", Username: "wanderer"},
						{ID: "cust-2", UserID: "user-2", Username: "trailblazer"},
					}, nil)
			},
			wantErr:   false,
			wantTotal: 2,
		},
		{
			name: "count error",
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, result.TotalData)
			}
		})
	}
}

func TestCustomerService_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	mockUsers := userMocks.NewMockUser(ctrl)

	svc := service.New(mockRepo, mockUsers, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful get own profile",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Customer{ID: "cust-1", UserID: "test-user-id", Username: "wanderer"}, nil)
			},
			wantErr: false,
		},
		{
			name: "profile not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Customer{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Customer{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			result, err := svc.Me(ctx)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "cust-1", result.ID)
			}
		})
	}
}

func TestCustomerService_UpdateMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	mockUsers := userMocks.NewMockUser(ctrl)

	svc := service.New(mockRepo, mockUsers, mocks.NewOtel())

	profile := model.Customer{ID: "cust-1", UserID: "test-user-id"}

	tests := []struct {
		name      string
		req       dto.UpdateProfileRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "updates both tables",
			req: dto.UpdateProfileRequest{
				FirstName: "Alex",
				Address:   "Jl. Raya Ubud 10",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(profile, nil)

				mockUsers.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "user fields only",
			req:  dto.UpdateProfileRequest{Phone: "+62-812-000"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(profile, nil)

				mockUsers.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "customer fields only",
			req:  dto.UpdateProfileRequest{EmergencyContact: "Jordan +62-813-111"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(profile, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "travel document fields",
			req: dto.UpdateProfileRequest{
				DateOfBirth:    "1991-04-16",
				Nationality:    "Indonesian",
				PassportNumber: "C1234567",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(profile, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Contains(t, fields, model.FieldDateOfBirth)
						assert.Equal(t, "Indonesian", fields[model.FieldNationality])
						assert.Equal(t, "C1234567", fields[model.FieldPassportNumber])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "malformed date of birth",
			req:  dto.UpdateProfileRequest{DateOfBirth: "16-04-1991"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(profile, nil)
			},
			wantErr: true,
		},
		{
			name:      "empty update request",
			req:       dto.UpdateProfileRequest{},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "profile not found",
			req:  dto.UpdateProfileRequest{FirstName: "Alex"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Customer{}, nil)
			},
			wantErr: true,
		},
		{
			name: "user update error",
			req:  dto.UpdateProfileRequest{FirstName: "Alex"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(profile, nil)

				mockUsers.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.UpdateMe(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
