package model

type Review struct {
	DTO
	UserId uint `gorm:"not null;index:idx_review_user_product,unique" json:"userId"`
	User   User `gorm:"foreignKey:UserId" json:"user"`

	ProductId uint    `gorm:"not null;index:idx_review_user_product,unique" json:"productId"`
	Product   Product `gorm:"foreignKey:ProductId" json:"-"`

	Rating  int     `gorm:"not null" json:"rating"` // 1..5
	Comment *string `gorm:"type:text" json:"comment"`

	IsVisible bool `gorm:"default:true" json:"isVisible"`
}

type Reviews []Review

type CreateReviewInput struct {
	ProductId uint    `validate:"required" json:"productId"`
	Rating    int     `validate:"required,gte=1,lte=5" json:"rating"`
	Comment   *string `json:"comment"`
}

type EditReviewInput struct {
	Rating  *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Comment *string `json:"comment"`
}

type FilterReview struct {
	Pagination
	ProductId *uint `json:"productId"`
	Rating    *int  `json:"rating"`
	Visible   *bool `json:"visible"`
}
