package model

import "time"

type User struct {
	DTO
	Email    string `gorm:"unique;not null" json:"email"`
	Phone    string `gorm:"not null" json:"phone"`
	Password string `gorm:"not null" json:"-"`
	FullName string `gorm:"not null" json:"fullName"`

	Role      string  `gorm:"not null;default:'CUSTOMER'" json:"role"` // ADMIN, STAFF, CUSTOMER
	AvatarUrl *string `json:"avatarUrl"`
	Address   *string `json:"address"`
	Gender    *bool   `json:"gender"`

	IsActive bool `gorm:"default:true" json:"isActive"`
}

type Users []User

type RegisterInput struct {
	FullName string `validate:"required" json:"fullName"`
	Email    string `validate:"required,email" json:"email"`
	Phone    string `validate:"required" json:"phone"`
	Password string `validate:"required,min=6" json:"password"`
}

type LoginInput struct {
	Email    string `validate:"required,email" json:"email"`
	Password string `validate:"required" json:"password"`
}

type CreateUserInput struct {
	FullName string `validate:"required" json:"fullName"`
	Email    string `validate:"required,email" json:"email"`
	Phone    string `validate:"required" json:"phone"`
	Password string `validate:"required,min=6" json:"password"`
	Role     string `validate:"required" json:"role"`
}

type EditUserInput struct {
	FullName  *string `json:"fullName"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	Gender    *bool   `json:"gender"`
	AvatarUrl *string `json:"avatarUrl"`
}

type ChangePasswordInput struct {
	CurrentPassword string `validate:"required" json:"currentPassword"`
	NewPassword     string `validate:"required,min=6" json:"newPassword"`
	RepeatPassword  string `validate:"required" json:"repeatPassword"`
}

type FilterUser struct {
	Pagination
	SearchKey string `json:"searchKey"`
	Role      string `json:"role"`
	Active    *bool  `json:"active"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

type PasswordResetToken struct {
	DTO
	UserId    uint      `gorm:"not null" json:"userId"`
	Token     string    `gorm:"type:varchar(255);not null;unique" json:"token"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	User      User      `gorm:"foreignKey:UserId" json:"user"`
}
