package model

import (
	"trek/shared/model"
)

const (
	TourImageTable  = "tour_images"
	TourImageEntity = "tour_image"

	TourImageFieldID           = "id"
	TourImageFieldPackageID    = "package_id"
	TourImageFieldURL          = "url"
	TourImageFieldCaption      = "caption"
	TourImageFieldIsPrimary    = "is_primary"
	TourImageFieldDisplayOrder = "display_order"
)

type TourImage struct {
	ID           string `db:"id"`
	PackageID    string `db:"package_id"`
	URL          string `db:"url"`
	Caption      string `db:"caption"`
	IsPrimary    bool   `db:"is_primary"`
	DisplayOrder int    `db:"display_order"`
	model.Metadata
}
