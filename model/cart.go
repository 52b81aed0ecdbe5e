package model

type CartItem struct {
	DTO
	UserId uint `gorm:"not null;index:idx_cart_user_product,unique" json:"userId"`
	User   User `gorm:"foreignKey:UserId" json:"-"`

	ProductId uint    `gorm:"not null;index:idx_cart_user_product,unique" json:"productId"`
	Product   Product `gorm:"foreignKey:ProductId" json:"product"`

	VariantId *uint           `gorm:"index:idx_cart_user_product,unique" json:"variantId"`
	Variant   *ProductVariant `gorm:"foreignKey:VariantId" json:"variant,omitempty"`

	Quantity int `gorm:"not null;default:1" json:"quantity"`
}

type CartItems []CartItem

type AddToCartInput struct {
	ProductId uint  `validate:"required" json:"productId"`
	VariantId *uint `json:"variantId"`
	Quantity  int   `validate:"required,gt=0" json:"quantity"`
}

type UpdateCartItemInput struct {
	Quantity int `validate:"required,gt=0" json:"quantity"`
}
