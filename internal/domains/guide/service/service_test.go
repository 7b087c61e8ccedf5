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
	feedbackModel "trek/internal/domains/feedback/model"
	guideMocks "trek/internal/domains/guide/mocks"
	"trek/internal/domains/guide/model"
	"trek/internal/domains/guide/model/dto"
	"trek/internal/domains/guide/service"
	tourMocks "trek/internal/domains/tour/mocks"
	tourModel "trek/internal/domains/tour/model"
	userMocks "trek/internal/domains/user/mocks"
	cacheMocks "trek/shared/cache/mocks"
	"trek/shared/constant"
	gDto "trek/shared/dto"
	"trek/shared/failure"
	"trek/shared/timezone"
)

type guideFixture struct {
	repo           *guideMocks.MockGuide
	availabilities *guideMocks.MockAvailability
	tourDates      *tourMocks.MockTourDate
	bookings       *bookingMocks.MockBooking
	feedbacks      *feedbackMocks.MockGuideFeedback
	users          *userMocks.MockUser
	cache          *cacheMocks.MockRedisCache
	svc            service.Guide
}

func newGuideFixture(ctrl *gomock.Controller) *guideFixture {
	f := &guideFixture{
		repo:           guideMocks.NewMockGuide(ctrl),
		availabilities: guideMocks.NewMockAvailability(ctrl),
		tourDates:      tourMocks.NewMockTourDate(ctrl),
		bookings:       bookingMocks.NewMockBooking(ctrl),
		feedbacks:      feedbackMocks.NewMockGuideFeedback(ctrl),
		users:          userMocks.NewMockUser(ctrl),
		cache:          cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Admin.Username = "root"

	f.svc = service.New(f.repo, f.availabilities, f.tourDates, f.bookings, f.feedbacks, f.users, cfg, f.cache, mocks.NewOtel())

	return f
}

func guideCtx(userID string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleGuide)
}

func TestGuideService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newGuideFixture(ctrl)

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
			name: "cache miss, successful get from db",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				f.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Guide{{ID: "guide-1", FirstName: "Made", IsAvailable: true}}, nil)

				f.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantTotal: 1,
		},
		{
			name: "count error",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

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

			result, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, result.TotalData)
			}
		})
	}
}

func TestGuideService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newGuideFixture(ctrl)

	f.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	tests := []struct {
		name      string
		req       dto.UpdateGuideRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update",
			req:  dto.UpdateGuideRequest{Bio: "Mountain trekking specialist", ExperienceYears: 8},
			setupMock: func() {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "guide not found",
			req:  dto.UpdateGuideRequest{Bio: "Mountain trekking specialist"},
			setupMock: func() {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "update error",
			req:  dto.UpdateGuideRequest{Bio: "Mountain trekking specialist"},
			setupMock: func() {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
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
			err := f.svc.Update(ctx, tt.req, "guide-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGuideService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newGuideFixture(ctrl)

	f.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	req := dto.CreateGuideRequest{
		Username:        "made",
		Email:           "made@example.com",
		Password:        "guide-password",
		FirstName:       "Made",
		ExperienceYears: 5,
		Languages:       "Indonesian, English",
	}

	tests := []struct {
		name      string
		req       dto.CreateGuideRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  req,
			setupMock: func() {
				f.users.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				f.users.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				f.repo.EXPECT().
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
			req: dto.CreateGuideRequest{
				Username: "root",
				Email:    "root@example.com",
				Password: "guide-password",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusConflict,
		},
		{
			name: "user insert error",
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

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-user-id")
			err := f.svc.Create(ctx, tt.req)

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

func TestGuideService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newGuideFixture(ctrl)

	f.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful deletion deactivates the user",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Guide{ID: "guide-1", UserID: "user-9"}, nil)

				f.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				f.users.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "guide not found",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Guide{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "delete error",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Guide{ID: "guide-1", UserID: "user-9"}, nil)

				f.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-user-id")
			err := f.svc.Delete(ctx, "guide-1")

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

func TestGuideService_CheckAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newGuideFixture(ctrl)

	availableGuide := model.Guide{ID: "guide-1", FirstName: "Made", LastName: "Wira", IsAvailable: true}

	dayTwo, err := timezone.Parse(constant.DateOnlyFormat, "2026-09-02")
	assert.NoError(t, err)

	tests := []struct {
		name            string
		startDate       string
		endDate         string
		setupMock       func()
		wantErr         bool
		wantAvailable   bool
		wantUnavailable []string
	}{
		{
			name:      "available for whole range",
			startDate: "2026-09-01",
			endDate:   "2026-09-03",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableGuide, nil)

				f.availabilities.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Availability{}, nil)
			},
			wantErr:         false,
			wantAvailable:   true,
			wantUnavailable: []string{},
		},
		{
			name:      "blocked day in range",
			startDate: "2026-09-01",
			endDate:   "2026-09-03",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableGuide, nil)

				f.availabilities.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Availability{
						{ID: "avail-1", GuideID: "guide-1", Date: dayTwo, IsAvailable: false, Reason: "personal leave"},
					}, nil)
			},
			wantErr:         false,
			wantAvailable:   false,
			wantUnavailable: []string{"2026-09-02"},
		},
		{
			name:      "override marked available does not block",
			startDate: "2026-09-02",
			endDate:   "2026-09-02",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableGuide, nil)

				f.availabilities.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Availability{
						{ID: "avail-1", GuideID: "guide-1", Date: dayTwo, IsAvailable: true},
					}, nil)
			},
			wantErr:         false,
			wantAvailable:   true,
			wantUnavailable: []string{},
		},
		{
			name:      "profile flag off without overrides stays available",
			startDate: "2026-09-01",
			endDate:   "2026-09-03",
			setupMock: func() {
				unavailable := availableGuide
				unavailable.IsAvailable = false

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(unavailable, nil)

				f.availabilities.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Availability{}, nil)
			},
			wantErr:         false,
			wantAvailable:   true,
			wantUnavailable: []string{},
		},
		{
			name:      "missing dates",
			startDate: "",
			endDate:   "2026-09-03",
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:      "end date before start date",
			startDate: "2026-09-03",
			endDate:   "2026-09-01",
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:      "invalid date format",
			startDate: "01-09-2026",
			endDate:   "2026-09-03",
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:      "guide not found",
			startDate: "2026-09-01",
			endDate:   "2026-09-03",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Guide{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := f.svc.CheckAvailability(context.Background(), "guide-1", tt.startDate, tt.endDate)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantAvailable, result.Available)
				assert.Equal(t, tt.wantUnavailable, result.UnavailableDates)
			}
		})
	}
}

func TestGuideService_SetAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newGuideFixture(ctrl)

	available := false

	tests := []struct {
		name      string
		req       dto.SetAvailabilityRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful override of two days",
			req: dto.SetAvailabilityRequest{
				Dates:       []string{"2026-09-02", "2026-09-03"},
				IsAvailable: &available,
				Reason:      "personal leave",
			},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Guide{ID: "guide-1", UserID: "test-user-id"}, nil)

				f.availabilities.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					Return(nil).
					Times(2)
			},
			wantErr: false,
		},
		{
			name: "guide profile not found",
			req: dto.SetAvailabilityRequest{
				Dates:       []string{"2026-09-02"},
				IsAvailable: &available,
			},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Guide{}, nil)
			},
			wantErr: true,
		},
		{
			name: "invalid date format",
			req: dto.SetAvailabilityRequest{
				Dates:       []string{"02-09-2026"},
				IsAvailable: &available,
			},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Guide{ID: "guide-1", UserID: "test-user-id"}, nil)
			},
			wantErr: true,
		},
		{
			name: "upsert error",
			req: dto.SetAvailabilityRequest{
				Dates:       []string{"2026-09-02"},
				IsAvailable: &available,
			},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Guide{ID: "guide-1", UserID: "test-user-id"}, nil)

				f.availabilities.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := f.svc.SetAvailability(guideCtx("test-user-id"), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGuideService_Schedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newGuideFixture(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantTours int
	}{
		{
			name: "successful schedule",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Guide{ID: "guide-1", UserID: "test-user-id"}, nil)

				f.tourDates.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]tourModel.TourDate{{ID: "date-1", PackageID: "pkg-1", PackageName: "Bromo Sunrise Trek"}}, nil)

				f.availabilities.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Availability{}, nil)
			},
			wantErr:   false,
			wantTours: 1,
		},
		{
			name: "tour dates error",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Guide{ID: "guide-1", UserID: "test-user-id"}, nil)

				f.tourDates.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := f.svc.Schedule(guideCtx("test-user-id"))

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result.Tours, tt.wantTours)
			}
		})
	}
}

func TestGuideService_Bookings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newGuideFixture(ctrl)

	guideLookup := func() {
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guide{ID: "guide-1", UserID: "test-user-id"}, nil)
	}

	tests := []struct {
		name      string
		status    string
		period    string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "unfiltered",
			setupMock: func() {
				guideLookup()

				f.bookings.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{{ID: "booking-1", PackageName: "Bromo Sunrise Trek", Participants: 2}}, nil)
			},
			wantErr: false,
		},
		{
			name:   "filtered by status and period",
			status: constant.BookingStatusConfirmed,
			period: constant.BookingPeriodUpcoming,
			setupMock: func() {
				guideLookup()

				f.bookings.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{{ID: "booking-1", PackageName: "Bromo Sunrise Trek", Participants: 2}}, nil)
			},
			wantErr: false,
		},
		{
			name:      "unknown status",
			status:    "paid",
			setupMock: guideLookup,
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "unknown period",
			period:    "someday",
			setupMock: guideLookup,
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := f.svc.Bookings(guideCtx("test-user-id"), tt.status, tt.period)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Len(t, result.Bookings, 1)
				assert.Equal(t, "Bromo Sunrise Trek", result.Bookings[0].PackageName)
			}
		})
	}
}

func TestGuideService_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newGuideFixture(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful profile",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Guide{ID: "guide-1", FirstName: "Made", Rating: 4.5, IsAvailable: true}, nil)

				f.feedbacks.EXPECT().
					Summary(gomock.Any(), "guide-1").
					Return(feedbackModel.RatingSummary{AverageRating: 4.5, TotalFeedback: 12}, nil)

				f.feedbacks.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]feedbackModel.GuideFeedback{{ID: "feedback-1", GuideID: "guide-1", Rating: 5, Comment: "Great guide"}}, nil)
			},
			wantErr: false,
		},
		{
			name: "guide not found",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Guide{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "summary error",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Guide{ID: "guide-1", FirstName: "Made"}, nil)

				f.feedbacks.EXPECT().
					Summary(gomock.Any(), "guide-1").
					Return(feedbackModel.RatingSummary{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := f.svc.Profile(context.Background(), "guide-1")

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 4.5, result.AverageRating)
				assert.Equal(t, 12, result.TotalFeedback)
				assert.Len(t, result.RecentFeedback, 1)
			}
		})
	}
}

func TestGuideService_FeedbackStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newGuideFixture(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful stats",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Guide{ID: "guide-1", UserID: "test-user-id"}, nil)

				f.feedbacks.EXPECT().
					Summary(gomock.Any(), "guide-1").
					Return(feedbackModel.RatingSummary{AverageRating: 4.5, TotalFeedback: 12}, nil)

				f.feedbacks.EXPECT().
					MonthlyTrend(gomock.Any(), "guide-1", constant.TrendWindowMonths).
					Return([]feedbackModel.TrendPoint{{AverageRating: 4.5, TotalFeedback: 12, Month: timezone.Now()}}, nil)
			},
			wantErr: false,
		},
		{
			name: "summary error",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Guide{ID: "guide-1", UserID: "test-user-id"}, nil)

				f.feedbacks.EXPECT().
					Summary(gomock.Any(), "guide-1").
					Return(feedbackModel.RatingSummary{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := f.svc.FeedbackStats(guideCtx("test-user-id"))

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 4.5, result.AverageRating)
				assert.Equal(t, 12, result.TotalFeedback)
			}
		})
	}
}
