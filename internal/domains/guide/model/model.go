package model

import (
	"trek/shared/model"
)

const (
	TableName  = "guides"
	EntityName = "guide"

	FieldID              = "id"
	FieldUserID          = "user_id"
	FieldBio             = "bio"
	FieldExperienceYears = "experience_years"
	FieldLanguages       = "languages"
	FieldSpecializations = "specializations"
	FieldIsAvailable     = "is_available"
	FieldRating          = "rating"
)

type Guide struct {
	ID              string  `db:"id"`
	UserID          string  `db:"user_id"`
	Bio             string  `db:"bio"`
	ExperienceYears int     `db:"experience_years"`
	Languages       string  `db:"languages"`
	Specializations string  `db:"specializations"`
	IsAvailable     bool    `db:"is_available"`
	Rating          float64 `db:"rating"`

	FirstName string `db:"first_name" table:"users"`
	LastName  string `db:"last_name"  table:"users"`
	Email     string `db:"email"      table:"users"`
	model.Metadata
}

func (Guide) GetJoinQuery() string {
	return "JOIN users ON users.id = guides.user_id"
}

func (g *Guide) FullName() string {
	if g.FirstName == "" {
		return g.Email
	}

	if g.LastName == "" {
		return g.FirstName
	}

	return g.FirstName + " " + g.LastName
}
