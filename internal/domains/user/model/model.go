package model

import (
	"trek/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID           = "id"
	FieldUsername     = "username"
	FieldEmail        = "email"
	FieldPasswordHash = "password_hash"
	FieldRole         = "role"
	FieldFirstName    = "first_name"
	FieldLastName     = "last_name"
	FieldPhone        = "phone"
	FieldIsActive     = "is_active"
)

type User struct {
	ID           string `db:"id"`
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	Role         string `db:"role"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	Phone        string `db:"phone"`
	IsActive     bool   `db:"is_active"`
	model.Metadata
}

func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.Username
	}

	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}
