package model

import "time"

type Pet struct {
	DTO
	OwnerId uint `gorm:"not null;index" json:"ownerId"`
	Owner   User `gorm:"foreignKey:OwnerId" json:"owner"`

	Name      string     `gorm:"not null" json:"name"`
	Type      string     `gorm:"not null" json:"type"` // DOG, CAT, BIRD...
	Breed     *string    `json:"breed"`
	Gender    *bool      `json:"gender"`
	BirthDate *time.Time `json:"birthDate"`
	Weight    *float64   `json:"weight"` // kg
	ImageUrl  *string    `json:"imageUrl"`
	Note      *string    `gorm:"type:text" json:"note"`

	IsActive bool `gorm:"default:true" json:"isActive"`
}

type Pets []Pet

type CreatePetInput struct {
	Name      string   `validate:"required" json:"name"`
	Type      string   `validate:"required" json:"type"`
	Breed     *string  `json:"breed"`
	Gender    *bool    `json:"gender"`
	BirthDate *string  `json:"birthDate"` // YYYY-MM-DD
	Weight    *float64 `json:"weight"`
	ImageUrl  *string  `json:"imageUrl"`
	Note      *string  `json:"note"`
}

type EditPetInput struct {
	Name      *string  `json:"name"`
	Type      *string  `json:"type"`
	Breed     *string  `json:"breed"`
	Gender    *bool    `json:"gender"`
	BirthDate *string  `json:"birthDate"`
	Weight    *float64 `json:"weight"`
	ImageUrl  *string  `json:"imageUrl"`
	Note      *string  `json:"note"`
}

type FilterPet struct {
	Pagination
	SearchKey string `json:"searchKey"`
	Type      string `json:"type"`
	OwnerId   *uint  `json:"ownerId"`
}
