package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"trek/config"
	kafkaMocks "trek/infras/kafka/mocks"
	"trek/infras/otel/mocks"
	bookingMocks "trek/internal/domains/booking/mocks"
	"trek/internal/domains/booking/model"
	"trek/internal/domains/booking/model/dto"
	"trek/internal/domains/booking/repository"
	"trek/internal/domains/booking/service"
	customerMocks "trek/internal/domains/customer/mocks"
	customerModel "trek/internal/domains/customer/model"
	guideMocks "trek/internal/domains/guide/mocks"
	tourMocks "trek/internal/domains/tour/mocks"
	tourModel "trek/internal/domains/tour/model"
	cacheMocks "trek/shared/cache/mocks"
	"trek/shared/constant"
	gDto "trek/shared/dto"
	"trek/shared/failure"
	"trek/shared/timezone"
)

type bookingFixture struct {
	repo        *bookingMocks.MockBooking
	customTours *bookingMocks.MockCustomTour
	tourDates   *tourMocks.MockTourDate
	customers   *customerMocks.MockCustomer
	guides      *guideMocks.MockGuide
	kafka       *kafkaMocks.MockClient
	cache       *cacheMocks.MockRedisCache
	svc         service.Booking
}

func newBookingFixture(ctrl *gomock.Controller) *bookingFixture {
	f := &bookingFixture{
		repo:        bookingMocks.NewMockBooking(ctrl),
		customTours: bookingMocks.NewMockCustomTour(ctrl),
		tourDates:   tourMocks.NewMockTourDate(ctrl),
		customers:   customerMocks.NewMockCustomer(ctrl),
		guides:      guideMocks.NewMockGuide(ctrl),
		kafka:       kafkaMocks.NewMockClient(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.customTours, f.tourDates, f.customers, f.guides, f.kafka, cfg, f.cache, mocks.NewOtel())

	// Events and cache invalidation run on background goroutines.
	f.kafka.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	f.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	return f
}

func customerCtx(userID string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleCustomer)
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl)

	futureDate := tourModel.TourDate{
		ID:             "date-1",
		PackageID:      "pkg-1",
		PackageName:    "Bromo Sunrise Trek",
		PackagePrice:   1299,
		StartDate:      timezone.Now().Add(72 * time.Hour),
		EndDate:        timezone.Now().Add(96 * time.Hour),
		AvailableSpots: 10,
		IsAvailable:    true,
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
		wantPrice float64
	}{
		{
			name: "successful booking",
			req: dto.CreateBookingRequest{
				TourDateID:   "date-1",
				Participants: 2,
			},
			setupMock: func() {
				f.customers.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customerModel.Customer{ID: "cust-1", UserID: "test-user-id"}, nil)

				f.tourDates.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(futureDate, nil)

				f.repo.EXPECT().
					Reserve(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr:   false,
			wantPrice: 2598,
		},
		{
			name: "tour date does not exist",
			req: dto.CreateBookingRequest{
				TourDateID:   "missing-date",
				Participants: 2,
			},
			setupMock: func() {
				f.customers.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customerModel.Customer{ID: "cust-1"}, nil)

				f.tourDates.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(tourModel.TourDate{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "tour date already started",
			req: dto.CreateBookingRequest{
				TourDateID:   "date-1",
				Participants: 2,
			},
			setupMock: func() {
				f.customers.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customerModel.Customer{ID: "cust-1"}, nil)

				started := futureDate
				started.StartDate = timezone.Now().Add(-24 * time.Hour)

				f.tourDates.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(started, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "not enough available spots",
			req: dto.CreateBookingRequest{
				TourDateID:   "date-1",
				Participants: 8,
			},
			setupMock: func() {
				f.customers.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customerModel.Customer{ID: "cust-1"}, nil)

				f.tourDates.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(futureDate, nil)

				f.repo.EXPECT().
					Reserve(gomock.Any(), gomock.Any()).
					Return(repository.ErrInsufficientSpots)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "customer profile not found",
			req: dto.CreateBookingRequest{
				TourDateID:   "date-1",
				Participants: 2,
			},
			setupMock: func() {
				f.customers.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customerModel.Customer{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "reserve repository error",
			req: dto.CreateBookingRequest{
				TourDateID:   "date-1",
				Participants: 2,
			},
			setupMock: func() {
				f.customers.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customerModel.Customer{ID: "cust-1"}, nil)

				f.tourDates.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(futureDate, nil)

				f.repo.EXPECT().
					Reserve(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := f.svc.Create(customerCtx("test-user-id"), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantPrice, result.TotalPrice)
				assert.Equal(t, constant.BookingStatusPending, result.Status)
				assert.Equal(t, "Bromo Sunrise Trek", result.PackageName)
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl)

	owned := model.Booking{
		ID:           "booking-1",
		CustomerID:   "cust-1",
		TourDateID:   "date-1",
		Participants: 2,
		TotalPrice:   2598,
		Status:       constant.BookingStatusPending,
		UserID:       "test-user-id",
	}

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func()
		wantErr   bool
	}{
		{
			name: "customer gets own booking",
			ctx:  customerCtx("test-user-id"),
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(owned, nil)
			},
			wantErr: false,
		},
		{
			name: "customer cannot read another customer's booking",
			ctx:  customerCtx("other-user-id"),
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(owned, nil)
			},
			wantErr: true,
		},
		{
			name: "admin can read any booking",
			ctx: context.WithValue(
				context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-user-id"),
				constant.ContextKeyUserRole, constant.RoleAdmin,
			),
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(owned, nil)
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			ctx:  customerCtx("test-user-id"),
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := f.svc.Get(tt.ctx, "booking-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, owned.ID, result.ID)
			}
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name: "successful get all",
			setupMock: func() {
				f.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				f.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{{ID: "booking-1", Status: constant.BookingStatusPending}}, nil)
			},
			wantErr:   false,
			wantTotal: 1,
		},
		{
			name: "count error",
			setupMock: func() {
				f.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := f.svc.GetAll(customerCtx("test-user-id"), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, result.TotalData)
			}
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl)

	pending := model.Booking{
		ID:           "booking-1",
		TourDateID:   "date-1",
		Participants: 2,
		Status:       constant.BookingStatusPending,
		UserID:       "test-user-id",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful cancellation",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)

				f.repo.EXPECT().
					Cancel(gomock.Any(), pending, gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "completed booking cannot be cancelled",
			setupMock: func() {
				completed := pending
				completed.Status = constant.BookingStatusCompleted

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completed, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "already cancelled booking",
			setupMock: func() {
				cancelled := pending
				cancelled.Status = constant.BookingStatusCancelled

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "cancel repository error",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)

				f.repo.EXPECT().
					Cancel(gomock.Any(), pending, gomock.Any()).
					Return(errors.New("transaction error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := f.svc.Cancel(customerCtx("test-user-id"), "booking-1")

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

func TestBookingService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl)

	pending := model.Booking{
		ID:           "booking-1",
		TourDateID:   "date-1",
		Participants: 2,
		Status:       constant.BookingStatusPending,
	}

	tests := []struct {
		name      string
		req       dto.UpdateStatusRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "confirm pending booking",
			req:  dto.UpdateStatusRequest{Status: constant.BookingStatusConfirmed},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "same status is a no-op",
			req:  dto.UpdateStatusRequest{Status: constant.BookingStatusPending},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)
			},
			wantErr: false,
		},
		{
			name: "cancelling releases seats",
			req:  dto.UpdateStatusRequest{Status: constant.BookingStatusCancelled},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)

				f.repo.EXPECT().
					Cancel(gomock.Any(), pending, gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "terminal status cannot change",
			req:  dto.UpdateStatusRequest{Status: constant.BookingStatusConfirmed},
			setupMock: func() {
				cancelled := pending
				cancelled.Status = constant.BookingStatusCancelled

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr: true,
		},
		{
			name: "booking not found",
			req:  dto.UpdateStatusRequest{Status: constant.BookingStatusConfirmed},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-user-id")
			err := f.svc.UpdateStatus(ctx, tt.req, "booking-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_UpdatePayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl)

	paid := true

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful payment update",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: "booking-1", Status: constant.BookingStatusConfirmed}, nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, true, fields[model.FieldPaymentStatus])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "update error",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: "booking-1"}, nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-user-id")
			err := f.svc.UpdatePayment(ctx, dto.UpdatePaymentRequest{PaymentStatus: &paid}, "booking-1")

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

func TestBookingService_AssignGuide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl)

	tests := []struct {
		name      string
		req       dto.AssignGuideRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "assign guide",
			req:  dto.AssignGuideRequest{GuideID: "guide-1"},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: "booking-1"}, nil)

				f.guides.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, "guide-1", fields[model.FieldGuideID])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "empty guide id clears the assignment",
			req:  dto.AssignGuideRequest{},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: "booking-1"}, nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Nil(t, fields[model.FieldGuideID])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "guide does not exist",
			req:  dto.AssignGuideRequest{GuideID: "missing-guide"},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: "booking-1"}, nil)

				f.guides.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "booking not found",
			req:  dto.AssignGuideRequest{GuideID: "guide-1"},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-user-id")
			err := f.svc.AssignGuide(ctx, tt.req, "booking-1")

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

func TestBookingService_CreateCustomTour(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl)

	tests := []struct {
		name      string
		req       dto.CreateCustomTourRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful request",
			req: dto.CreateCustomTourRequest{
				Destination:  "Raja Ampat",
				StartDate:    "2026-10-01",
				EndDate:      "2026-10-05",
				Participants: 4,
				Budget:       5000,
			},
			setupMock: func() {
				f.customers.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customerModel.Customer{ID: "cust-1"}, nil)

				f.customTours.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "invalid date format",
			req: dto.CreateCustomTourRequest{
				Destination:  "Raja Ampat",
				StartDate:    "01-10-2026",
				EndDate:      "2026-10-05",
				Participants: 4,
			},
			setupMock: func() {
				f.customers.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customerModel.Customer{ID: "cust-1"}, nil)
			},
			wantErr: true,
		},
		{
			name: "end date before start date",
			req: dto.CreateCustomTourRequest{
				Destination:  "Raja Ampat",
				StartDate:    "2026-10-05",
				EndDate:      "2026-10-01",
				Participants: 4,
			},
			setupMock: func() {
				f.customers.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customerModel.Customer{ID: "cust-1"}, nil)
			},
			wantErr: true,
		},
		{
			name: "insert error",
			req: dto.CreateCustomTourRequest{
				Destination:  "Raja Ampat",
				StartDate:    "2026-10-01",
				EndDate:      "2026-10-05",
				Participants: 4,
			},
			setupMock: func() {
				f.customers.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customerModel.Customer{ID: "cust-1"}, nil)

				f.customTours.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := f.svc.CreateCustomTour(customerCtx("test-user-id"), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_UpdateCustomTourStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful status update",
			setupMock: func() {
				f.customTours.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.CustomTourRequest{ID: "custom-1", Status: constant.CustomTourStatusPending}, nil)

				f.customTours.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "request not found",
			setupMock: func() {
				f.customTours.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.CustomTourRequest{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-user-id")
			req := dto.UpdateCustomTourStatusRequest{Status: constant.CustomTourStatusApproved, AdminNotes: "approved"}
			err := f.svc.UpdateCustomTourStatus(ctx, req, "custom-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
