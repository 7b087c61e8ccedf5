package model

import (
	"time"

	"trek/shared/model"
)

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID               = "id"
	FieldUserID           = "user_id"
	FieldAddress          = "address"
	FieldDateOfBirth      = "date_of_birth"
	FieldNationality      = "nationality"
	FieldPassportNumber   = "passport_number"
	FieldEmergencyContact = "emergency_contact"
)

type Customer struct {
	ID               string     `db:"id"`
	UserID           string     `db:"user_id"`
	Address          string     `db:"address"`
	DateOfBirth      *time.Time `db:"date_of_birth"`
	Nationality      string     `db:"nationality"`
	PassportNumber   string     `db:"passport_number"`
	EmergencyContact string     `db:"emergency_contact"`

	Username  string `db:"username"   table:"users"`
	Email     string `db:"email"      table:"users"`
	FirstName string `db:"first_name" table:"users"`
	LastName  string `db:"last_name"  table:"users"`
	Phone     string `db:"phone"      table:"users"`
	model.Metadata
}

func (Customer) GetJoinQuery() string {
	return "JOIN users ON users.id = customers.user_id"
}
