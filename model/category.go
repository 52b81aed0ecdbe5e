package model

type Category struct {
	DTO
	Name        string  `gorm:"not null" json:"name"`
	Slug        string  `gorm:"unique;not null" json:"slug"`
	Description *string `gorm:"type:text" json:"description"`
	ImageUrl    *string `json:"imageUrl"`

	ParentId *uint      `gorm:"index" json:"parentId"`
	Parent   *Category  `gorm:"foreignKey:ParentId" json:"parent,omitempty"`
	Children []Category `gorm:"foreignKey:ParentId" json:"children,omitempty"`

	IsActive bool `gorm:"default:true" json:"isActive"`

	Products []Product `gorm:"foreignKey:CategoryId" json:"products,omitempty"`
}

type Categories []Category

type CreateCategoryInput struct {
	Name        string  `validate:"required" json:"name"`
	Description *string `json:"description"`
	ImageUrl    *string `json:"imageUrl"`
	ParentId    *uint   `json:"parentId"`
}

type EditCategoryInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ImageUrl    *string `json:"imageUrl"`
	ParentId    *uint   `json:"parentId"`
	IsActive    *bool   `json:"isActive"`
}

type FilterCategory struct {
	Pagination
	SearchKey string `json:"searchKey"`
	ParentId  *uint  `json:"parentId"`
	Active    *bool  `json:"active"`
}
