package model

type SpaService struct {
	DTO
	Name            string  `gorm:"not null" json:"name"`
	Slug            string  `gorm:"unique;not null" json:"slug"`
	Description     *string `gorm:"type:text" json:"description"`
	ImageUrl        *string `json:"imageUrl"`
	DurationMinutes int     `gorm:"not null" json:"durationMinutes"`

	IsActive bool `gorm:"default:true" json:"isActive"`

	Pricings []ServicePricing `gorm:"foreignKey:ServiceId" json:"pricings,omitempty"`
}

type SpaServices []SpaService

// ServicePricing giá theo khung cân nặng thú cưng
type ServicePricing struct {
	DTO
	ServiceId uint `gorm:"not null;index" json:"serviceId"`

	MinWeight float64 `gorm:"not null" json:"minWeight"` // kg, bao gồm
	MaxWeight float64 `gorm:"not null" json:"maxWeight"` // kg, không bao gồm
	Price     float64 `gorm:"not null" json:"price"`
}

type CreateServiceInput struct {
	Name            string                `validate:"required" json:"name"`
	Description     *string               `json:"description"`
	ImageUrl        *string               `json:"imageUrl"`
	DurationMinutes int                   `validate:"required,gt=0" json:"durationMinutes"`
	Pricings        []ServicePricingInput `validate:"required,min=1,dive" json:"pricings"`
}

type ServicePricingInput struct {
	MinWeight float64 `validate:"gte=0" json:"minWeight"`
	MaxWeight float64 `validate:"required,gtfield=MinWeight" json:"maxWeight"`
	Price     float64 `validate:"required,gt=0" json:"price"`
}

type EditServiceInput struct {
	Name            *string               `json:"name"`
	Description     *string               `json:"description"`
	ImageUrl        *string               `json:"imageUrl"`
	DurationMinutes *int                  `json:"durationMinutes"`
	IsActive        *bool                 `json:"isActive"`
	Pricings        []ServicePricingInput `json:"pricings"` // Nếu có thì thay toàn bộ bảng giá
}

type FilterService struct {
	Pagination
	SearchKey string `json:"searchKey"`
	Active    *bool  `json:"active"`
}
