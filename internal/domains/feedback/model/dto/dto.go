package dto

import (
	"trek/internal/domains/feedback/model"
	"trek/shared"
	"trek/shared/constant"
	gModel "trek/shared/model"
	"trek/shared/timezone"

	"github.com/google/uuid"
)

type SubmitTourFeedbackRequest struct {
	BookingID           string `json:"booking_id"             validate:"required,uuid4"`
	Rating              int    `json:"rating"                 validate:"required,min=1,max=5"`
	GuideRating         int    `json:"guide_rating"           validate:"required,min=1,max=5"`
	AccommodationRating int    `json:"accommodation_rating"   validate:"required,min=1,max=5"`
	ValueForMoneyRating int    `json:"value_for_money_rating" validate:"required,min=1,max=5"`
	Comment             string `json:"comment"                validate:"omitempty,max=1000"`
	WouldRecommend      *bool  `json:"would_recommend"        validate:"required"`
	Suggestions         string `json:"suggestions"            validate:"omitempty,max=1000"`
}

func (c *SubmitTourFeedbackRequest) ToModel(packageID, customerID, user string) model.TourFeedback {
	return model.TourFeedback{
		ID:                  uuid.NewString(),
		BookingID:           c.BookingID,
		PackageID:           packageID,
		CustomerID:          customerID,
		Rating:              c.Rating,
		GuideRating:         c.GuideRating,
		AccommodationRating: c.AccommodationRating,
		ValueForMoneyRating: c.ValueForMoneyRating,
		Comment:             c.Comment,
		WouldRecommend:      c.WouldRecommend != nil && *c.WouldRecommend,
		Suggestions:         c.Suggestions,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type TourFeedbackResponse struct {
	ID                  string `json:"id"`
	BookingID           string `json:"booking_id"`
	PackageID           string `json:"package_id"`
	PackageName         string `json:"package_name"`
	Rating              int    `json:"rating"`
	GuideRating         int    `json:"guide_rating"`
	AccommodationRating int    `json:"accommodation_rating"`
	ValueForMoneyRating int    `json:"value_for_money_rating"`
	Comment             string `json:"comment,omitempty"`
	WouldRecommend      bool   `json:"would_recommend"`
	Suggestions         string `json:"suggestions,omitempty"`
	CreatedAt           string `json:"created_at"`
}

func (r *TourFeedbackResponse) FromModel(mod model.TourFeedback) {
	r.ID = mod.ID
	r.BookingID = mod.BookingID
	r.PackageID = mod.PackageID
	r.PackageName = mod.PackageName
	r.Rating = mod.Rating
	r.GuideRating = mod.GuideRating
	r.AccommodationRating = mod.AccommodationRating
	r.ValueForMoneyRating = mod.ValueForMoneyRating
	r.Comment = mod.Comment
	r.WouldRecommend = mod.WouldRecommend
	r.Suggestions = mod.Suggestions
	r.CreatedAt = timezone.Format(mod.CreatedAt, constant.DateFormat)
}

type GetTourFeedbackResponse struct {
	Feedbacks        []TourFeedbackResponse `json:"feedbacks"`
	AverageRating    float64                `json:"average_rating"`
	RecommendPercent float64                `json:"recommend_percent"`
	TotalPage        int                    `json:"total_page"`
	TotalData        int                    `json:"total_data"`
}

func (r *GetTourFeedbackResponse) FromModels(models []model.TourFeedback, stats model.TourRatingSummary, limit int) {
	r.AverageRating = stats.AverageRating
	r.RecommendPercent = stats.RecommendPercent
	r.TotalData = stats.TotalFeedback
	r.TotalPage = shared.CalculateTotalPage(stats.TotalFeedback, limit)

	r.Feedbacks = make([]TourFeedbackResponse, len(models))
	for i, mod := range models {
		r.Feedbacks[i].FromModel(mod)
	}
}

type SubmitGuideFeedbackRequest struct {
	BookingID       string `json:"booking_id"             validate:"required,uuid4"`
	Rating          int    `json:"rating"                 validate:"required,min=1,max=5"`
	Knowledge       int    `json:"knowledge_rating"       validate:"required,min=1,max=5"`
	Communication   int    `json:"communication_rating"   validate:"required,min=1,max=5"`
	Professionalism int    `json:"professionalism_rating" validate:"required,min=1,max=5"`
	Comment         string `json:"comment"                validate:"omitempty,max=1000"`
}

func (c *SubmitGuideFeedbackRequest) ToModel(guideID, customerID, user string) model.GuideFeedback {
	return model.GuideFeedback{
		ID:              uuid.NewString(),
		GuideID:         guideID,
		BookingID:       c.BookingID,
		CustomerID:      customerID,
		Rating:          c.Rating,
		Knowledge:       c.Knowledge,
		Communication:   c.Communication,
		Professionalism: c.Professionalism,
		Comment:         c.Comment,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type GuideSummaryResponse struct {
	GuideID                string  `json:"guide_id"`
	AverageRating          float64 `json:"average_rating"`
	AverageKnowledge       float64 `json:"average_knowledge"`
	AverageCommunication   float64 `json:"average_communication"`
	AverageProfessionalism float64 `json:"average_professionalism"`
	TotalFeedback          int     `json:"total_feedback"`
}

func (r *GuideSummaryResponse) FromModel(guideID string, summary model.RatingSummary) {
	r.GuideID = guideID
	r.AverageRating = summary.AverageRating
	r.AverageKnowledge = summary.AverageKnowledge
	r.AverageCommunication = summary.AverageCommunication
	r.AverageProfessionalism = summary.AverageProfessionalism
	r.TotalFeedback = summary.TotalFeedback
}
