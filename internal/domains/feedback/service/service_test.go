package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"trek/config"
	"trek/infras/otel/mocks"
	bookingMocks "trek/internal/domains/booking/mocks"
	bookingModel "trek/internal/domains/booking/model"
	feedbackMocks "trek/internal/domains/feedback/mocks"
	"trek/internal/domains/feedback/model"
	"trek/internal/domains/feedback/model/dto"
	"trek/internal/domains/feedback/service"
	guideMocks "trek/internal/domains/guide/mocks"
	guideModel "trek/internal/domains/guide/model"
	cacheMocks "trek/shared/cache/mocks"
	"trek/shared/constant"
	gDto "trek/shared/dto"
	"trek/shared/failure"
)

type feedbackFixture struct {
	tourFeedbacks  *feedbackMocks.MockTourFeedback
	guideFeedbacks *feedbackMocks.MockGuideFeedback
	bookings       *bookingMocks.MockBooking
	guides         *guideMocks.MockGuide
	cache          *cacheMocks.MockRedisCache
	svc            service.Feedback
}

func newFeedbackFixture(ctrl *gomock.Controller) *feedbackFixture {
	f := &feedbackFixture{
		tourFeedbacks:  feedbackMocks.NewMockTourFeedback(ctrl),
		guideFeedbacks: feedbackMocks.NewMockGuideFeedback(ctrl),
		bookings:       bookingMocks.NewMockBooking(ctrl),
		guides:         guideMocks.NewMockGuide(ctrl),
		cache:          cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.tourFeedbacks, f.guideFeedbacks, f.bookings, f.guides, cfg, f.cache, mocks.NewOtel())

	return f
}

func completedBooking() bookingModel.Booking {
	guideID := "guide-1"

	return bookingModel.Booking{
		ID:         "booking-1",
		CustomerID: "cust-1",
		PackageID:  "pkg-1",
		GuideID:    &guideID,
		Status:     constant.BookingStatusCompleted,
		UserID:     "test-user-id",
	}
}

func TestFeedbackService_SubmitTourFeedback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFeedbackFixture(ctrl)

	recommend := true
	req := dto.SubmitTourFeedbackRequest{
		BookingID:           "booking-1",
		Rating:              5,
		GuideRating:         5,
		AccommodationRating: 4,
		ValueForMoneyRating: 4,
		Comment:             "amazing sunrise",
		WouldRecommend:      &recommend,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful submission",
			setupMock: func() {
				f.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completedBooking(), nil)

				f.tourFeedbacks.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				f.tourFeedbacks.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "duplicate feedback for booking",
			setupMock: func() {
				f.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completedBooking(), nil)

				f.tourFeedbacks.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "booking not completed",
			setupMock: func() {
				pending := completedBooking()
				pending.Status = constant.BookingStatusPending

				f.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "booking owned by someone else",
			setupMock: func() {
				other := completedBooking()
				other.UserID = "other-user-id"

				f.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(other, nil)
			},
			wantErr: true,
		},
		{
			name: "booking not found",
			setupMock: func() {
				f.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "insert error",
			setupMock: func() {
				f.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completedBooking(), nil)

				f.tourFeedbacks.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				f.tourFeedbacks.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := f.svc.SubmitTourFeedback(ctx, req)

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

func TestFeedbackService_GetTourFeedback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFeedbackFixture(ctrl)

	tests := []struct {
		name      string
		packageID string
		setupMock func()
		wantErr   bool
		wantAvg   float64
	}{
		{
			name:      "successful get",
			packageID: "pkg-1",
			setupMock: func() {
				f.tourFeedbacks.EXPECT().
					Stats(gomock.Any(), "pkg-1").
					Return(model.TourRatingSummary{AverageRating: 4.5, RecommendPercent: 50, TotalFeedback: 2}, nil)

				f.tourFeedbacks.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.TourFeedback{
						{ID: "fb-1", PackageID: "pkg-1", Rating: 4, WouldRecommend: true},
						{ID: "fb-2", PackageID: "pkg-1", Rating: 5},
					}, nil)
			},
			wantErr: false,
			wantAvg: 4.5,
		},
		{
			name:      "missing package id",
			packageID: "",
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:      "stats error",
			packageID: "pkg-1",
			setupMock: func() {
				f.tourFeedbacks.EXPECT().
					Stats(gomock.Any(), "pkg-1").
					Return(model.TourRatingSummary{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := f.svc.GetTourFeedback(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, tt.packageID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantAvg, result.AverageRating)
				assert.Equal(t, 50.0, result.RecommendPercent)
				assert.Len(t, result.Feedbacks, 2)
			}
		})
	}
}

func TestFeedbackService_SubmitGuideFeedback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFeedbackFixture(ctrl)

	f.cache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	req := dto.SubmitGuideFeedbackRequest{
		BookingID:       "booking-1",
		Rating:          5,
		Knowledge:       4,
		Communication:   5,
		Professionalism: 5,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful submission refreshes the guide rating",
			setupMock: func() {
				f.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completedBooking(), nil)

				f.guideFeedbacks.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				f.guideFeedbacks.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				f.guideFeedbacks.EXPECT().
					Summary(gomock.Any(), "guide-1").
					Return(model.RatingSummary{AverageRating: 4.8, TotalFeedback: 3}, nil)

				f.guides.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, 4.8, fields[guideModel.FieldRating])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "duplicate feedback for guide and booking",
			setupMock: func() {
				f.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completedBooking(), nil)

				f.guideFeedbacks.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "booking has no assigned guide",
			setupMock: func() {
				unguided := completedBooking()
				unguided.GuideID = nil

				f.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(unguided, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "booking not completed",
			setupMock: func() {
				confirmed := completedBooking()
				confirmed.Status = constant.BookingStatusConfirmed

				f.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmed, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := f.svc.SubmitGuideFeedback(ctx, req)

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

func TestFeedbackService_GuideSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFeedbackFixture(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantTotal int
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
			name: "cache miss, successful summary",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.guides.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.guideFeedbacks.EXPECT().
					Summary(gomock.Any(), "guide-1").
					Return(model.RatingSummary{AverageRating: 4.2, TotalFeedback: 7}, nil)

				f.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantTotal: 7,
		},
		{
			name: "guide not found",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.guides.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "summary error",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.guides.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.guideFeedbacks.EXPECT().
					Summary(gomock.Any(), "guide-1").
					Return(model.RatingSummary{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := f.svc.GuideSummary(context.Background(), "guide-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantTotal != 0 {
					assert.Equal(t, tt.wantTotal, result.TotalFeedback)
				}
			}
		})
	}
}
