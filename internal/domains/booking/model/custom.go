package model

import (
	"time"
	"trek/shared/model"
)

const (
	CustomTourTable  = "custom_tour_requests"
	CustomTourEntity = "custom_tour_request"

	CustomTourFieldID           = "id"
	CustomTourFieldCustomerID   = "customer_id"
	CustomTourFieldDestination  = "destination"
	CustomTourFieldStartDate    = "start_date"
	CustomTourFieldEndDate      = "end_date"
	CustomTourFieldParticipants = "participants"
	CustomTourFieldBudget       = "budget"
	CustomTourFieldDescription  = "description"
	CustomTourFieldStatus       = "status"
	CustomTourFieldAdminNotes   = "admin_notes"
)

type CustomTourRequest struct {
	ID           string    `db:"id"`
	CustomerID   string    `db:"customer_id"`
	Destination  string    `db:"destination"`
	StartDate    time.Time `db:"start_date"`
	EndDate      time.Time `db:"end_date"`
	Participants int       `db:"participants"`
	Budget       float64   `db:"budget"`
	Description  string    `db:"description"`
	Status       string    `db:"status"`
	AdminNotes   string    `db:"admin_notes"`

	UserID string `db:"user_id" table:"customers"`
	model.Metadata
}

func (CustomTourRequest) GetJoinQuery() string {
	return "JOIN customers ON customers.id = custom_tour_requests.customer_id"
}
