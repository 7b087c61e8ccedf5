package dto

import (
	"time"
	"trek/internal/domains/booking/model"
	"trek/shared"
	"trek/shared/constant"
	gDto "trek/shared/dto"
	gModel "trek/shared/model"
	"trek/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	TourDateID      string `json:"tour_date_id"     validate:"required,uuid4"`
	Participants    int    `json:"participants"     validate:"required,min=1"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=500"`
}

func (c *CreateBookingRequest) ToModel(customerID string, totalPrice float64, user string) model.Booking {
	return model.Booking{
		ID:              uuid.NewString(),
		CustomerID:      customerID,
		TourDateID:      c.TourDateID,
		Participants:    c.Participants,
		TotalPrice:      totalPrice,
		Status:          constant.BookingStatusPending,
		SpecialRequests: c.SpecialRequests,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}

type UpdatePaymentRequest struct {
	PaymentStatus *bool `json:"payment_status" validate:"required"`
}

// AssignGuideRequest with an empty guide_id unassigns the booking's guide.
type AssignGuideRequest struct {
	GuideID string `json:"guide_id" validate:"omitempty,uuid4"`
}

type BookingResponse struct {
	ID              string  `json:"id"`
	CustomerID      string  `json:"customer_id"`
	TourDateID      string  `json:"tour_date_id"`
	GuideID         string  `json:"guide_id,omitempty"`
	PackageID       string  `json:"package_id"`
	PackageName     string  `json:"package_name"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Participants    int     `json:"participants"`
	TotalPrice      float64 `json:"total_price"`
	Status          string  `json:"status"`
	PaymentStatus   bool    `json:"payment_status"`
	SpecialRequests string  `json:"special_requests,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.CustomerID = mod.CustomerID
	r.TourDateID = mod.TourDateID
	r.PackageID = mod.PackageID
	r.PackageName = mod.PackageName
	r.StartDate = mod.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = mod.EndDate.Format(constant.DateOnlyFormat)
	r.Participants = mod.Participants
	r.TotalPrice = mod.TotalPrice
	r.Status = mod.Status
	r.PaymentStatus = mod.PaymentStatus
	r.SpecialRequests = mod.SpecialRequests
	r.Metadata.FromModel(mod.Metadata)

	if mod.GuideID != nil {
		r.GuideID = *mod.GuideID
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingEvent is the payload published to the booking events topic.
type BookingEvent struct {
	EventType    string    `json:"event_type"`
	BookingID    string    `json:"booking_id"`
	CustomerID   string    `json:"customer_id"`
	TourDateID   string    `json:"tour_date_id"`
	PackageName  string    `json:"package_name"`
	Participants int       `json:"participants"`
	TotalPrice   float64   `json:"total_price"`
	Status       string    `json:"status"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type CreateCustomTourRequest struct {
	Destination  string  `json:"destination"  validate:"required,max=200"`
	StartDate    string  `json:"start_date"   validate:"required,datetime=2006-01-02"`
	EndDate      string  `json:"end_date"     validate:"required,datetime=2006-01-02"`
	Participants int     `json:"participants" validate:"required,min=1"`
	Budget       float64 `json:"budget"       validate:"omitempty,gte=0"`
	Description  string  `json:"description"  validate:"omitempty"`
}

func (c *CreateCustomTourRequest) ToModel(customerID, user string) (model.CustomTourRequest, error) {
	startDate, err := timezone.Parse(constant.DateOnlyFormat, c.StartDate)
	if err != nil {
		return model.CustomTourRequest{}, err
	}

	endDate, err := timezone.Parse(constant.DateOnlyFormat, c.EndDate)
	if err != nil {
		return model.CustomTourRequest{}, err
	}

	return model.CustomTourRequest{
		ID:           uuid.NewString(),
		CustomerID:   customerID,
		Destination:  c.Destination,
		StartDate:    startDate,
		EndDate:      endDate,
		Participants: c.Participants,
		Budget:       c.Budget,
		Description:  c.Description,
		Status:       constant.CustomTourStatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateCustomTourStatusRequest struct {
	Status     string `json:"status"      validate:"required,oneof=pending approved rejected"`
	AdminNotes string `json:"admin_notes" validate:"omitempty,max=500"`
}

type CustomTourResponse struct {
	ID           string  `json:"id"`
	CustomerID   string  `json:"customer_id"`
	Destination  string  `json:"destination"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Participants int     `json:"participants"`
	Budget       float64 `json:"budget"`
	Description  string  `json:"description"`
	Status       string  `json:"status"`
	AdminNotes   string  `json:"admin_notes,omitempty"`
	gDto.Metadata
}

func (r *CustomTourResponse) FromModel(mod model.CustomTourRequest) {
	r.ID = mod.ID
	r.CustomerID = mod.CustomerID
	r.Destination = mod.Destination
	r.StartDate = mod.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = mod.EndDate.Format(constant.DateOnlyFormat)
	r.Participants = mod.Participants
	r.Budget = mod.Budget
	r.Description = mod.Description
	r.Status = mod.Status
	r.AdminNotes = mod.AdminNotes
	r.Metadata.FromModel(mod.Metadata)
}

type GetCustomToursResponse struct {
	Requests  []CustomTourResponse `json:"requests"`
	TotalPage int                  `json:"total_page"`
	TotalData int                  `json:"total_data"`
}

func (r *GetCustomToursResponse) FromModels(models []model.CustomTourRequest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Requests = make([]CustomTourResponse, len(models))
	for i, mod := range models {
		r.Requests[i].FromModel(mod)
	}
}
