package model

import (
	"trek/shared/model"
)

const (
	TableName  = "tour_packages"
	EntityName = "tour_package"

	FieldID               = "id"
	FieldName             = "name"
	FieldDescription      = "description"
	FieldDestination      = "destination"
	FieldDurationDays     = "duration_days"
	FieldPrice            = "price"
	FieldDifficulty       = "difficulty"
	FieldMaxGroupSize     = "max_group_size"
	FieldIncludedServices = "included_services"
	FieldExcludedServices = "excluded_services"
	FieldItinerary        = "itinerary"
	FieldIsActive         = "is_active"
	FieldGuideID          = "guide_id"
)

type TourPackage struct {
	ID               string  `db:"id"`
	Name             string  `db:"name"`
	Description      string  `db:"description"`
	Destination      string  `db:"destination"`
	DurationDays     int     `db:"duration_days"`
	Price            float64 `db:"price"`
	Difficulty       string  `db:"difficulty"`
	MaxGroupSize     int     `db:"max_group_size"`
	IncludedServices string  `db:"included_services"`
	ExcludedServices string  `db:"excluded_services"`
	Itinerary        string  `db:"itinerary"`
	IsActive         bool    `db:"is_active"`
	GuideID          string  `db:"guide_id"`
	model.Metadata
}
