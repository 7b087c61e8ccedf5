package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"trek/config"
	"trek/infras/otel/mocks"
	"trek/internal/domains/admin/service"
	bookingMocks "trek/internal/domains/booking/mocks"
	bookingModel "trek/internal/domains/booking/model"
	customerMocks "trek/internal/domains/customer/mocks"
	feedbackMocks "trek/internal/domains/feedback/mocks"
	guideMocks "trek/internal/domains/guide/mocks"
	tourMocks "trek/internal/domains/tour/mocks"
	cacheMocks "trek/shared/cache/mocks"
	"trek/shared/constant"
)

type adminFixture struct {
	packages      *tourMocks.MockTourPackage
	bookings      *bookingMocks.MockBooking
	customTours   *bookingMocks.MockCustomTour
	customers     *customerMocks.MockCustomer
	guides        *guideMocks.MockGuide
	tourFeedbacks *feedbackMocks.MockTourFeedback
	cache         *cacheMocks.MockRedisCache
	svc           service.Admin
}

func newAdminFixture(ctrl *gomock.Controller) *adminFixture {
	f := &adminFixture{
		packages:      tourMocks.NewMockTourPackage(ctrl),
		bookings:      bookingMocks.NewMockBooking(ctrl),
		customTours:   bookingMocks.NewMockCustomTour(ctrl),
		customers:     customerMocks.NewMockCustomer(ctrl),
		guides:        guideMocks.NewMockGuide(ctrl),
		tourFeedbacks: feedbackMocks.NewMockTourFeedback(ctrl),
		cache:         cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.packages, f.bookings, f.customTours, f.customers, f.guides, f.tourFeedbacks, cfg, f.cache, mocks.NewOtel())

	return f
}

func TestAdminService_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newAdminFixture(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		check     bool
	}{
		{
			name: "cache hit",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, full aggregation",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.packages.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(8, nil)

				f.bookings.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(42, nil)

				f.customers.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(30, nil)

				f.guides.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(5, nil)

				f.bookings.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(3, nil)

				f.customTours.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(2, nil)

				f.bookings.EXPECT().
					SumRevenue(gomock.Any()).
					Return(125000.50, nil)

				f.tourFeedbacks.EXPECT().
					OverallAverage(gomock.Any()).
					Return(4.4, nil)

				f.bookings.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{{ID: "booking-1", Status: constant.BookingStatusConfirmed}}, nil)

				f.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			check:   true,
		},
		{
			name: "count error",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.packages.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
		{
			name: "revenue error",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.packages.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(8, nil)

				f.bookings.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(42, nil)

				f.customers.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(30, nil)

				f.guides.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(5, nil)

				f.bookings.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(3, nil)

				f.customTours.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(2, nil)

				f.bookings.EXPECT().
					SumRevenue(gomock.Any()).
					Return(0.0, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-user-id")
			result, err := f.svc.Dashboard(ctx)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)

			if tt.check {
				assert.Equal(t, 8, result.TotalPackages)
				assert.Equal(t, 42, result.TotalBookings)
				assert.Equal(t, 30, result.TotalCustomers)
				assert.Equal(t, 5, result.TotalGuides)
				assert.Equal(t, 3, result.PendingBookings)
				assert.Equal(t, 2, result.PendingCustomRequests)
				assert.Equal(t, 125000.50, result.TotalRevenue)
				assert.Equal(t, 4.4, result.AverageTourRating)
				assert.Len(t, result.RecentBookings, 1)
			}
		})
	}
}
