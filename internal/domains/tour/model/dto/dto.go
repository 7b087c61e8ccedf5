package dto

import (
	"trek/internal/domains/tour/model"
	"trek/shared"
	"trek/shared/constant"
	gDto "trek/shared/dto"
	gModel "trek/shared/model"
	"trek/shared/timezone"

	"github.com/google/uuid"
)

type CreatePackageRequest struct {
	Name             string  `json:"name"              validate:"required,max=200"`
	Description      string  `json:"description"       validate:"omitempty"`
	Destination      string  `json:"destination"       validate:"required,max=200"`
	DurationDays     int     `json:"duration_days"     validate:"required,min=1"`
	Price            float64 `json:"price"             validate:"required,gte=0"`
	Difficulty       string  `json:"difficulty"        validate:"required,oneof=easy moderate difficult"`
	MaxGroupSize     int     `json:"max_group_size"    validate:"required,min=1"`
	IncludedServices string  `json:"included_services" validate:"omitempty"`
	ExcludedServices string  `json:"excluded_services" validate:"omitempty"`
	Itinerary        string  `json:"itinerary"         validate:"omitempty"`
	GuideID          string  `json:"guide_id"          validate:"omitempty,uuid4"`
}

func (c *CreatePackageRequest) ToModel(user string) model.TourPackage {
	return model.TourPackage{
		ID:               uuid.NewString(),
		Name:             c.Name,
		Description:      c.Description,
		Destination:      c.Destination,
		DurationDays:     c.DurationDays,
		Price:            c.Price,
		Difficulty:       c.Difficulty,
		MaxGroupSize:     c.MaxGroupSize,
		IncludedServices: c.IncludedServices,
		ExcludedServices: c.ExcludedServices,
		Itinerary:        c.Itinerary,
		IsActive:         true,
		GuideID:          c.GuideID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePackageRequest struct {
	Name             string   `db:"name"              json:"name"              validate:"omitempty,max=200"`
	Description      string   `db:"description"       json:"description"       validate:"omitempty"`
	Destination      string   `db:"destination"       json:"destination"       validate:"omitempty,max=200"`
	DurationDays     int      `db:"duration_days"     json:"duration_days"     validate:"omitempty,min=1"`
	Price            *float64 `db:"price"             json:"price"             validate:"omitempty,gte=0"`
	Difficulty       string   `db:"difficulty"        json:"difficulty"        validate:"omitempty,oneof=easy moderate difficult"`
	MaxGroupSize     int      `db:"max_group_size"    json:"max_group_size"    validate:"omitempty,min=1"`
	IncludedServices string   `db:"included_services" json:"included_services" validate:"omitempty"`
	ExcludedServices string   `db:"excluded_services" json:"excluded_services" validate:"omitempty"`
	Itinerary        string   `db:"itinerary"         json:"itinerary"         validate:"omitempty"`
	GuideID          string   `db:"guide_id"          json:"guide_id"          validate:"omitempty,uuid4"`
	IsActive         *bool    `db:"is_active"         json:"is_active"         validate:"omitempty"`
}

type PackageResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	Destination      string  `json:"destination"`
	DurationDays     int     `json:"duration_days"`
	Price            float64 `json:"price"`
	Difficulty       string  `json:"difficulty"`
	MaxGroupSize     int     `json:"max_group_size"`
	IncludedServices string  `json:"included_services,omitempty"`
	ExcludedServices string  `json:"excluded_services,omitempty"`
	Itinerary        string  `json:"itinerary,omitempty"`
	IsActive         bool    `json:"is_active"`
	GuideID          string  `json:"guide_id,omitempty"`
	gDto.Metadata
}

func (r *PackageResponse) FromModel(model model.TourPackage) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Destination = model.Destination
	r.DurationDays = model.DurationDays
	r.Price = model.Price
	r.Difficulty = model.Difficulty
	r.MaxGroupSize = model.MaxGroupSize
	r.IncludedServices = model.IncludedServices
	r.ExcludedServices = model.ExcludedServices
	r.Itinerary = model.Itinerary
	r.IsActive = model.IsActive
	r.GuideID = model.GuideID
	r.Metadata.FromModel(model.Metadata)
}

type GetPackagesResponse struct {
	Packages  []PackageResponse `json:"packages"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPackagesResponse) FromModels(models []model.TourPackage, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Packages = make([]PackageResponse, len(models))
	for i, mod := range models {
		r.Packages[i].FromModel(mod)
	}
}

type PackageDetailResponse struct {
	PackageResponse
	Dates  []DateResponse  `json:"dates"`
	Images []ImageResponse `json:"images"`
}

type CreateDateRequest struct {
	PackageID      string `json:"package_id"      validate:"required"`
	StartDate      string `json:"start_date"      validate:"required,datetime=2006-01-02"`
	EndDate        string `json:"end_date"        validate:"required,datetime=2006-01-02"`
	AvailableSpots int    `json:"available_spots" validate:"required,min=1"`
}

func (c *CreateDateRequest) ToModel(user string) (model.TourDate, error) {
	startDate, err := timezone.Parse(constant.DateOnlyFormat, c.StartDate)
	if err != nil {
		return model.TourDate{}, err
	}

	endDate, err := timezone.Parse(constant.DateOnlyFormat, c.EndDate)
	if err != nil {
		return model.TourDate{}, err
	}

	return model.TourDate{
		ID:             uuid.NewString(),
		PackageID:      c.PackageID,
		StartDate:      startDate,
		EndDate:        endDate,
		AvailableSpots: c.AvailableSpots,
		IsAvailable:    true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateDateRequest struct {
	AvailableSpots *int  `db:"available_spots" json:"available_spots" validate:"omitempty,gte=0"`
	IsAvailable    *bool `db:"is_available"    json:"is_available"    validate:"omitempty"`
}

type DateResponse struct {
	ID             string  `json:"id"`
	PackageID      string  `json:"package_id"`
	PackageName    string  `json:"package_name"`
	PackagePrice   float64 `json:"package_price"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	AvailableSpots int     `json:"available_spots"`
	IsAvailable    bool    `json:"is_available"`
	gDto.Metadata
}

func (r *DateResponse) FromModel(model model.TourDate) {
	r.ID = model.ID
	r.PackageID = model.PackageID
	r.PackageName = model.PackageName
	r.PackagePrice = model.PackagePrice
	r.StartDate = model.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = model.EndDate.Format(constant.DateOnlyFormat)
	r.AvailableSpots = model.AvailableSpots
	r.IsAvailable = model.IsAvailable
	r.Metadata.FromModel(model.Metadata)
}

type GetDatesResponse struct {
	Dates []DateResponse `json:"dates"`
}

func (r *GetDatesResponse) FromModels(models []model.TourDate) {
	r.Dates = make([]DateResponse, len(models))
	for i, mod := range models {
		r.Dates[i].FromModel(mod)
	}
}

// CreateImageRequest adds an image that already lives somewhere on the web,
// as opposed to the multipart upload path.
type CreateImageRequest struct {
	PackageID    string `json:"package_id"    validate:"required,uuid4"`
	URL          string `json:"url"           validate:"required,url,max=500"`
	Caption      string `json:"caption"       validate:"omitempty,max=200"`
	IsPrimary    bool   `json:"is_primary"`
	DisplayOrder int    `json:"display_order" validate:"omitempty,gte=0"`
}

func (c *CreateImageRequest) ToModel(user string) model.TourImage {
	return model.TourImage{
		ID:           uuid.NewString(),
		PackageID:    c.PackageID,
		URL:          c.URL,
		Caption:      c.Caption,
		IsPrimary:    c.IsPrimary,
		DisplayOrder: c.DisplayOrder,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type ImageResponse struct {
	ID           string `json:"id"`
	PackageID    string `json:"package_id"`
	URL          string `json:"url"`
	Caption      string `json:"caption"`
	IsPrimary    bool   `json:"is_primary"`
	DisplayOrder int    `json:"display_order"`
}

func (r *ImageResponse) FromModel(model model.TourImage) {
	r.ID = model.ID
	r.PackageID = model.PackageID
	r.URL = model.URL
	r.Caption = model.Caption
	r.IsPrimary = model.IsPrimary
	r.DisplayOrder = model.DisplayOrder
}
