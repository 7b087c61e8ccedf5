package model

import (
	"time"
	"trek/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldCustomerID      = "customer_id"
	FieldTourDateID      = "tour_date_id"
	FieldGuideID         = "guide_id"
	FieldParticipants    = "participants"
	FieldTotalPrice      = "total_price"
	FieldStatus          = "status"
	FieldPaymentStatus   = "payment_status"
	FieldSpecialRequests = "special_requests"
)

// Booking's GuideID is the guide assigned to this booking by an admin; it is
// nil until one is assigned.
type Booking struct {
	ID              string  `db:"id"`
	CustomerID      string  `db:"customer_id"`
	TourDateID      string  `db:"tour_date_id"`
	GuideID         *string `db:"guide_id"`
	Participants    int     `db:"participants"`
	TotalPrice      float64 `db:"total_price"`
	Status          string  `db:"status"`
	PaymentStatus   bool    `db:"payment_status"`
	SpecialRequests string  `db:"special_requests"`

	StartDate   time.Time `db:"start_date"   table:"tour_dates"`
	EndDate     time.Time `db:"end_date"     table:"tour_dates"`
	PackageID   string    `db:"package_id"   table:"tour_dates"`
	PackageName string    `db:"package_name" table:"tour_packages" column:"name"`
	UserID      string    `db:"user_id"      table:"customers"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return `JOIN tour_dates ON tour_dates.id = bookings.tour_date_id
		JOIN tour_packages ON tour_packages.id = tour_dates.package_id
		JOIN customers ON customers.id = bookings.customer_id`
}
