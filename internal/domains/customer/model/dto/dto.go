package dto

import (
	"time"

	"trek/internal/domains/customer/model"
	"trek/shared"
	"trek/shared/constant"
	gDto "trek/shared/dto"
	"trek/shared/timezone"
)

type UpdateProfileRequest struct {
	FirstName        string `json:"first_name"        validate:"omitempty,max=100"`
	LastName         string `json:"last_name"         validate:"omitempty,max=100"`
	Phone            string `json:"phone"             validate:"omitempty,max=30"`
	Address          string `json:"address"           validate:"omitempty,max=300"`
	DateOfBirth      string `json:"date_of_birth"     validate:"omitempty,datetime=2006-01-02"`
	Nationality      string `json:"nationality"       validate:"omitempty,max=100"`
	PassportNumber   string `json:"passport_number"   validate:"omitempty,max=50"`
	EmergencyContact string `json:"emergency_contact" validate:"omitempty,max=100"`
}

// UserFields carries the profile fields that live on the users table.
func (u *UpdateProfileRequest) UserFields() userFields {
	return userFields{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
	}
}

// CustomerFields carries the profile fields that live on the customers table.
func (u *UpdateProfileRequest) CustomerFields() (customerFields, error) {
	fields := customerFields{
		Address:          u.Address,
		Nationality:      u.Nationality,
		PassportNumber:   u.PassportNumber,
		EmergencyContact: u.EmergencyContact,
	}

	if u.DateOfBirth != constant.Empty {
		dateOfBirth, err := timezone.Parse(constant.DateOnlyFormat, u.DateOfBirth)
		if err != nil {
			return fields, err
		}

		fields.DateOfBirth = &dateOfBirth
	}

	return fields, nil
}

type userFields struct {
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Phone     string `db:"phone"`
}

func (u userFields) IsZero() bool {
	return u == userFields{}
}

type customerFields struct {
	Address          string     `db:"address"`
	DateOfBirth      *time.Time `db:"date_of_birth"`
	Nationality      string     `db:"nationality"`
	PassportNumber   string     `db:"passport_number"`
	EmergencyContact string     `db:"emergency_contact"`
}

func (c customerFields) IsZero() bool {
	return c == customerFields{}
}

type CustomerResponse struct {
	ID               string `json:"id"`
	UserID           string `json:"user_id"`
	Username         string `json:"username"`
	Email            string `json:"email"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	DateOfBirth      string `json:"date_of_birth,omitempty"`
	Nationality      string `json:"nationality,omitempty"`
	PassportNumber   string `json:"passport_number,omitempty"`
	EmergencyContact string `json:"emergency_contact"`
	gDto.Metadata
}

func (r *CustomerResponse) FromModel(mod model.Customer) {
	r.ID = mod.ID
	r.UserID = mod.UserID
	r.Username = mod.Username
	r.Email = mod.Email
	r.FirstName = mod.FirstName
	r.LastName = mod.LastName
	r.Phone = mod.Phone
	r.Address = mod.Address
	r.Nationality = mod.Nationality
	r.PassportNumber = mod.PassportNumber
	r.EmergencyContact = mod.EmergencyContact

	if mod.DateOfBirth != nil {
		r.DateOfBirth = mod.DateOfBirth.Format(constant.DateOnlyFormat)
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetCustomersResponse) FromModels(models []model.Customer, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		r.Customers[i].FromModel(mod)
	}
}
