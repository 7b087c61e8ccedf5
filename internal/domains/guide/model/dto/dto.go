package dto

import (
	bookingModel "trek/internal/domains/booking/model"
	feedbackModel "trek/internal/domains/feedback/model"
	"trek/internal/domains/guide/model"
	tourModel "trek/internal/domains/tour/model"
	userModel "trek/internal/domains/user/model"
	"trek/shared"
	"trek/shared/constant"
	gDto "trek/shared/dto"
	gModel "trek/shared/model"
	"trek/shared/timezone"

	"github.com/google/uuid"
)

type GuideResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	FullName        string  `json:"full_name"`
	Email           string  `json:"email"`
	Bio             string  `json:"bio"`
	ExperienceYears int     `json:"experience_years"`
	Languages       string  `json:"languages"`
	Specializations string  `json:"specializations"`
	IsAvailable     bool    `json:"is_available"`
	Rating          float64 `json:"rating"`
	gDto.Metadata
}

func (r *GuideResponse) FromModel(mod model.Guide) {
	r.ID = mod.ID
	r.UserID = mod.UserID
	r.FullName = mod.FullName()
	r.Email = mod.Email
	r.Bio = mod.Bio
	r.ExperienceYears = mod.ExperienceYears
	r.Languages = mod.Languages
	r.Specializations = mod.Specializations
	r.IsAvailable = mod.IsAvailable
	r.Rating = mod.Rating
	r.Metadata.FromModel(mod.Metadata)
}

type GetGuidesResponse struct {
	Guides    []GuideResponse `json:"guides"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuidesResponse) FromModels(models []model.Guide, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guides = make([]GuideResponse, len(models))
	for i, mod := range models {
		r.Guides[i].FromModel(mod)
	}
}

type ProfileFeedbackResponse struct {
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
	CreatedAt string `json:"created_at"`
}

type GuideProfileResponse struct {
	GuideResponse
	AverageRating          float64                   `json:"average_rating"`
	AverageKnowledge       float64                   `json:"average_knowledge"`
	AverageCommunication   float64                   `json:"average_communication"`
	AverageProfessionalism float64                   `json:"average_professionalism"`
	TotalFeedback          int                       `json:"total_feedback"`
	RecentFeedback         []ProfileFeedbackResponse `json:"recent_feedback"`
}

func (r *GuideProfileResponse) FromModels(guide model.Guide, summary feedbackModel.RatingSummary, recent []feedbackModel.GuideFeedback) {
	r.GuideResponse.FromModel(guide)
	r.AverageRating = summary.AverageRating
	r.AverageKnowledge = summary.AverageKnowledge
	r.AverageCommunication = summary.AverageCommunication
	r.AverageProfessionalism = summary.AverageProfessionalism
	r.TotalFeedback = summary.TotalFeedback

	r.RecentFeedback = make([]ProfileFeedbackResponse, len(recent))
	for i, feedback := range recent {
		r.RecentFeedback[i] = ProfileFeedbackResponse{
			Rating:    feedback.Rating,
			Comment:   feedback.Comment,
			CreatedAt: timezone.Format(feedback.CreatedAt, constant.DateFormat),
		}
	}
}

type CreateGuideRequest struct {
	Username        string `json:"username"         validate:"required,min=3,max=50"`
	Email           string `json:"email"            validate:"required,email,max=100"`
	Password        string `json:"password"         validate:"required,min=8,max=72"`
	FirstName       string `json:"first_name"       validate:"omitempty,max=50"`
	LastName        string `json:"last_name"        validate:"omitempty,max=50"`
	Phone           string `json:"phone"            validate:"omitempty,max=20"`
	Bio             string `json:"bio"              validate:"omitempty"`
	ExperienceYears int    `json:"experience_years" validate:"omitempty,gte=0"`
	Languages       string `json:"languages"        validate:"omitempty,max=200"`
	Specializations string `json:"specializations"  validate:"omitempty,max=300"`
}

// ToModels builds the credential row and the guide profile it links to.
func (r *CreateGuideRequest) ToModels(passwordHash, createdBy string) (userModel.User, model.Guide) {
	meta := gModel.Metadata{
		CreatedAt:  timezone.Now(),
		ModifiedAt: timezone.Now(),
		CreatedBy:  createdBy,
		ModifiedBy: createdBy,
	}

	user := userModel.User{
		ID:           uuid.NewString(),
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: passwordHash,
		Role:         constant.RoleGuide,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Phone:        r.Phone,
		IsActive:     true,
		Metadata:     meta,
	}

	guide := model.Guide{
		ID:              uuid.NewString(),
		UserID:          user.ID,
		Bio:             r.Bio,
		ExperienceYears: r.ExperienceYears,
		Languages:       r.Languages,
		Specializations: r.Specializations,
		IsAvailable:     true,
		Metadata:        meta,
	}

	return user, guide
}

type UpdateGuideRequest struct {
	Bio             string `db:"bio"              json:"bio"              validate:"omitempty"`
	ExperienceYears int    `db:"experience_years" json:"experience_years" validate:"omitempty,gte=0"`
	Languages       string `db:"languages"        json:"languages"        validate:"omitempty,max=200"`
	Specializations string `db:"specializations"  json:"specializations"  validate:"omitempty,max=300"`
	IsAvailable     *bool  `db:"is_available"     json:"is_available"     validate:"omitempty"`
}

type SetAvailabilityRequest struct {
	Dates       []string `json:"dates"        validate:"required,min=1,dive,datetime=2006-01-02"`
	IsAvailable *bool    `json:"is_available" validate:"required"`
	Reason      string   `json:"reason"       validate:"omitempty,max=200"`
}

type AvailabilityCheckResponse struct {
	Available        bool     `json:"available"`
	UnavailableDates []string `json:"unavailable_dates"`
	GuideName        string   `json:"guide_name"`
}

type OverrideResponse struct {
	Date        string `json:"date"`
	IsAvailable bool   `json:"is_available"`
	Reason      string `json:"reason,omitempty"`
}

func (r *OverrideResponse) FromModel(mod model.Availability) {
	r.Date = mod.Date.Format(constant.DateOnlyFormat)
	r.IsAvailable = mod.IsAvailable
	r.Reason = mod.Reason
}

type ScheduleTourResponse struct {
	TourDateID     string `json:"tour_date_id"`
	PackageID      string `json:"package_id"`
	PackageName    string `json:"package_name"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	AvailableSpots int    `json:"available_spots"`
}

func (r *ScheduleTourResponse) FromModel(mod tourModel.TourDate) {
	r.TourDateID = mod.ID
	r.PackageID = mod.PackageID
	r.PackageName = mod.PackageName
	r.StartDate = mod.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = mod.EndDate.Format(constant.DateOnlyFormat)
	r.AvailableSpots = mod.AvailableSpots
}

type ScheduleResponse struct {
	Tours     []ScheduleTourResponse `json:"tours"`
	Overrides []OverrideResponse     `json:"overrides"`
}

type GuideBookingResponse struct {
	ID           string  `json:"id"`
	PackageName  string  `json:"package_name"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Participants int     `json:"participants"`
	TotalPrice   float64 `json:"total_price"`
	Status       string  `json:"status"`
}

func (r *GuideBookingResponse) FromModel(mod bookingModel.Booking) {
	r.ID = mod.ID
	r.PackageName = mod.PackageName
	r.StartDate = mod.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = mod.EndDate.Format(constant.DateOnlyFormat)
	r.Participants = mod.Participants
	r.TotalPrice = mod.TotalPrice
	r.Status = mod.Status
}

type GetGuideBookingsResponse struct {
	Bookings []GuideBookingResponse `json:"bookings"`
}

func (r *GetGuideBookingsResponse) FromModels(models []bookingModel.Booking) {
	r.Bookings = make([]GuideBookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type TrendPointResponse struct {
	Month         string  `json:"month"`
	AverageRating float64 `json:"average_rating"`
	TotalFeedback int     `json:"total_feedback"`
}

type FeedbackStatsResponse struct {
	AverageRating          float64              `json:"average_rating"`
	AverageKnowledge       float64              `json:"average_knowledge"`
	AverageCommunication   float64              `json:"average_communication"`
	AverageProfessionalism float64              `json:"average_professionalism"`
	TotalFeedback          int                  `json:"total_feedback"`
	MonthlyTrend           []TrendPointResponse `json:"monthly_trend"`
}

func (r *FeedbackStatsResponse) FromModels(summary feedbackModel.RatingSummary, trend []feedbackModel.TrendPoint) {
	r.AverageRating = summary.AverageRating
	r.AverageKnowledge = summary.AverageKnowledge
	r.AverageCommunication = summary.AverageCommunication
	r.AverageProfessionalism = summary.AverageProfessionalism
	r.TotalFeedback = summary.TotalFeedback

	r.MonthlyTrend = make([]TrendPointResponse, len(trend))
	for i, point := range trend {
		r.MonthlyTrend[i] = TrendPointResponse{
			Month:         point.Month.Format("2006-01"),
			AverageRating: point.AverageRating,
			TotalFeedback: point.TotalFeedback,
		}
	}
}
