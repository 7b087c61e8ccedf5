package dto

import (
	"trek/infras/jwt"
	userModel "trek/internal/domains/user/model"
	"trek/shared/constant"
	gModel "trek/shared/model"
	"trek/shared/timezone"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Username  string `json:"username"   validate:"required,min=3,max=50"`
	Email     string `json:"email"      validate:"required,email,max=100"`
	Password  string `json:"password"   validate:"required,min=8,max=72"`
	FirstName string `json:"first_name" validate:"omitempty,max=50"`
	LastName  string `json:"last_name"  validate:"omitempty,max=50"`
	Phone     string `json:"phone"      validate:"omitempty,max=20"`
}

func (r *RegisterRequest) ToModel(passwordHash string) userModel.User {
	id := uuid.NewString()

	return userModel.User{
		ID:           id,
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: passwordHash,
		Role:         constant.RoleCustomer,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Phone:        r.Phone,
		IsActive:     true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  id,
			ModifiedBy: id,
		},
	}
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

func (r *UserResponse) FromModel(model userModel.User) {
	r.ID = model.ID
	r.Username = model.Username
	r.Email = model.Email
	r.Role = model.Role
	r.FirstName = model.FirstName
	r.LastName = model.LastName
}

type LoginResponse struct {
	User   UserResponse   `json:"user"`
	Tokens *jwt.TokenPair `json:"tokens"`
}
