package model

type Brand struct {
	DTO
	Name        string  `gorm:"not null" json:"name"`
	Slug        string  `gorm:"unique;not null" json:"slug"`
	Description *string `gorm:"type:text" json:"description"`
	LogoUrl     *string `json:"logoUrl"`
	Country     *string `json:"country"`

	IsActive bool `gorm:"default:true" json:"isActive"`

	Products []Product `gorm:"foreignKey:BrandId" json:"products,omitempty"`
}

type Brands []Brand

type CreateBrandInput struct {
	Name        string  `validate:"required" json:"name"`
	Description *string `json:"description"`
	LogoUrl     *string `json:"logoUrl"`
	Country     *string `json:"country"`
}

type EditBrandInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	LogoUrl     *string `json:"logoUrl"`
	Country     *string `json:"country"`
	IsActive    *bool   `json:"isActive"`
}

type FilterBrand struct {
	Pagination
	SearchKey string `json:"searchKey"`
	Active    *bool  `json:"active"`
}
