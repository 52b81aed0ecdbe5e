package model

type Product struct {
	DTO
	Name        string  `gorm:"not null" json:"name"`
	Slug        string  `gorm:"unique;not null" json:"slug"`
	Description *string `gorm:"type:text" json:"description"`
	Sku         *string `gorm:"unique" json:"sku"`

	Price     float64  `gorm:"not null" json:"price"`
	SalePrice *float64 `json:"salePrice"` // Giá khuyến mãi, null nếu không giảm

	SoldCount int `gorm:"default:0" json:"soldCount"`

	AverageRating float64 `gorm:"default:0" json:"averageRating"`
	ReviewCount   int     `gorm:"default:0" json:"reviewCount"`

	CategoryId uint     `gorm:"not null;index" json:"categoryId"`
	Category   Category `gorm:"foreignKey:CategoryId" json:"category"`

	BrandId *uint  `gorm:"index" json:"brandId"`
	Brand   *Brand `gorm:"foreignKey:BrandId" json:"brand,omitempty"`

	IsActive bool `gorm:"default:true" json:"isActive"`

	Images   []ProductImage   `gorm:"foreignKey:ProductId" json:"images,omitempty"`
	Variants []ProductVariant `gorm:"foreignKey:ProductId" json:"variants,omitempty"`
}

type Products []Product

type ProductImage struct {
	DTO
	ProductId uint   `gorm:"not null;index" json:"productId"`
	ImageUrl  string `gorm:"not null" json:"imageUrl"`
	IsPrimary bool   `gorm:"default:false" json:"isPrimary"`
	SortOrder int    `gorm:"default:0" json:"sortOrder"`
}

// ProductVariant đơn vị bán hàng thực tế, tồn kho luôn gắn với phân loại.
// Sản phẩm không khai phân loại riêng vẫn có một phân loại mặc định.
type ProductVariant struct {
	DTO
	ProductId uint    `gorm:"not null;index" json:"productId"`
	Name      string  `gorm:"not null" json:"name"` // Ví dụ: "Gói 1kg", "Size M"
	Sku       *string `gorm:"unique" json:"sku"`
	Price     float64 `gorm:"not null" json:"price"`
	Stock     int     `gorm:"default:0" json:"stock"`
	IsDefault bool    `gorm:"default:false" json:"isDefault"`
	IsActive  bool    `gorm:"default:true" json:"isActive"`
}

type CreateProductInput struct {
	Name        string   `validate:"required" json:"name"`
	Description *string  `json:"description"`
	Sku         *string  `json:"sku"`
	Price       float64  `validate:"required,gt=0" json:"price"`
	SalePrice   *float64 `json:"salePrice"`
	Stock       int      `validate:"gte=0" json:"stock"`
	CategoryId  uint     `validate:"required" json:"categoryId"`
	BrandId     *uint    `json:"brandId"`
	ImageUrls   []string `json:"imageUrls"`
}

type EditProductInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Sku         *string  `json:"sku"`
	Price       *float64 `json:"price"`
	SalePrice   *float64 `json:"salePrice"`
	CategoryId  *uint    `json:"categoryId"`
	BrandId     *uint    `json:"brandId"`
	IsActive    *bool    `json:"isActive"`
}

type CreateVariantInput struct {
	Name  string  `validate:"required" json:"name"`
	Sku   *string `json:"sku"`
	Price float64 `validate:"required,gt=0" json:"price"`
	Stock int     `validate:"gte=0" json:"stock"`
}

type FilterProduct struct {
	Pagination
	SearchKey  string   `json:"searchKey"`
	CategoryId *uint    `json:"categoryId"`
	BrandId    *uint    `json:"brandId"`
	MinPrice   *float64 `json:"minPrice"`
	MaxPrice   *float64 `json:"maxPrice"`
	InStock    *bool    `json:"inStock"`
	Active     *bool    `json:"active"`
	SortBy     string   `json:"sortBy"` // price_asc, price_desc, newest, best_seller
}
