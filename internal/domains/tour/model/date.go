package model

import (
	"time"
	"trek/shared/model"
)

const (
	TourDateTable  = "tour_dates"
	TourDateEntity = "tour_date"

	TourDateFieldID             = "id"
	TourDateFieldPackageID      = "package_id"
	TourDateFieldStartDate      = "start_date"
	TourDateFieldEndDate        = "end_date"
	TourDateFieldAvailableSpots = "available_spots"
	TourDateFieldIsAvailable    = "is_available"
)

type TourDate struct {
	ID             string    `db:"id"`
	PackageID      string    `db:"package_id"`
	StartDate      time.Time `db:"start_date"`
	EndDate        time.Time `db:"end_date"`
	AvailableSpots int       `db:"available_spots"`
	IsAvailable    bool      `db:"is_available"`

	PackageName  string  `db:"package_name"  table:"tour_packages" column:"name"`
	PackagePrice float64 `db:"package_price" table:"tour_packages" column:"price"`
	model.Metadata
}

func (TourDate) GetJoinQuery() string {
	return "JOIN tour_packages ON tour_packages.id = tour_dates.package_id"
}
