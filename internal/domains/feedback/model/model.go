package model

import (
	"time"
	"trek/shared/model"
)

const (
	TourFeedbackTable  = "tour_feedbacks"
	TourFeedbackEntity = "tour_feedback"

	TourFeedbackFieldID             = "id"
	TourFeedbackFieldBookingID      = "booking_id"
	TourFeedbackFieldPackageID      = "package_id"
	TourFeedbackFieldCustomerID     = "customer_id"
	TourFeedbackFieldRating         = "rating"
	TourFeedbackFieldGuideRating    = "guide_rating"
	TourFeedbackFieldAccommodation  = "accommodation_rating"
	TourFeedbackFieldValueForMoney  = "value_for_money_rating"
	TourFeedbackFieldComment        = "comment"
	TourFeedbackFieldWouldRecommend = "would_recommend"
	TourFeedbackFieldSuggestions    = "suggestions"
)

type TourFeedback struct {
	ID                  string `db:"id"`
	BookingID           string `db:"booking_id"`
	PackageID           string `db:"package_id"`
	CustomerID          string `db:"customer_id"`
	Rating              int    `db:"rating"`
	GuideRating         int    `db:"guide_rating"`
	AccommodationRating int    `db:"accommodation_rating"`
	ValueForMoneyRating int    `db:"value_for_money_rating"`
	Comment             string `db:"comment"`
	WouldRecommend      bool   `db:"would_recommend"`
	Suggestions         string `db:"suggestions"`

	PackageName string `db:"package_name" table:"tour_packages" column:"name"`
	model.Metadata
}

func (TourFeedback) GetJoinQuery() string {
	return "JOIN tour_packages ON tour_packages.id = tour_feedbacks.package_id"
}

const (
	GuideFeedbackTable  = "guide_feedbacks"
	GuideFeedbackEntity = "guide_feedback"

	GuideFeedbackFieldID              = "id"
	GuideFeedbackFieldGuideID         = "guide_id"
	GuideFeedbackFieldBookingID       = "booking_id"
	GuideFeedbackFieldCustomerID      = "customer_id"
	GuideFeedbackFieldRating          = "rating"
	GuideFeedbackFieldKnowledge       = "knowledge_rating"
	GuideFeedbackFieldCommunication   = "communication_rating"
	GuideFeedbackFieldProfessionalism = "professionalism_rating"
	GuideFeedbackFieldComment         = "comment"
)

type GuideFeedback struct {
	ID              string `db:"id"`
	GuideID         string `db:"guide_id"`
	BookingID       string `db:"booking_id"`
	CustomerID      string `db:"customer_id"`
	Rating          int    `db:"rating"`
	Knowledge       int    `db:"knowledge_rating"`
	Communication   int    `db:"communication_rating"`
	Professionalism int    `db:"professionalism_rating"`
	Comment         string `db:"comment"`
	model.Metadata
}

// TourRatingSummary aggregates a package's feedback. Averages and the
// recommend percentage are zero when the package has no feedback yet.
type TourRatingSummary struct {
	AverageRating    float64 `db:"average_rating"`
	RecommendPercent float64 `db:"recommend_percent"`
	TotalFeedback    int     `db:"total_feedback"`
}

// RatingSummary aggregates a guide's feedback. Averages are zero when the
// guide has no feedback yet.
type RatingSummary struct {
	AverageRating          float64 `db:"average_rating"`
	AverageKnowledge       float64 `db:"average_knowledge"`
	AverageCommunication   float64 `db:"average_communication"`
	AverageProfessionalism float64 `db:"average_professionalism"`
	TotalFeedback          int     `db:"total_feedback"`
}

// TrendPoint is one month's worth of feedback, bucketed for trend charts.
type TrendPoint struct {
	Month         time.Time `db:"month"`
	AverageRating float64   `db:"average_rating"`
	TotalFeedback int       `db:"total_feedback"`
}
