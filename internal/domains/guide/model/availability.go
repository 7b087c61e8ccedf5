package model

import (
	"time"
	"trek/shared/model"
)

const (
	AvailabilityTable  = "guide_availabilities"
	AvailabilityEntity = "guide_availability"

	AvailabilityFieldID          = "id"
	AvailabilityFieldGuideID     = "guide_id"
	AvailabilityFieldDate        = "date"
	AvailabilityFieldIsAvailable = "is_available"
	AvailabilityFieldReason      = "reason"
)

// Availability is a per-day override. Days without a row count as available.
type Availability struct {
	ID          string    `db:"id"`
	GuideID     string    `db:"guide_id"`
	Date        time.Time `db:"date"`
	IsAvailable bool      `db:"is_available"`
	Reason      string    `db:"reason"`
	model.Metadata
}
