package model

// StockMovement sổ ghi nhận biến động tồn kho, mỗi dòng gắn với một phân loại
type StockMovement struct {
	DTO
	VariantId uint           `gorm:"not null;index" json:"variantId"`
	Variant   ProductVariant `gorm:"foreignKey:VariantId" json:"variant"`

	ProductId uint    `gorm:"not null;index" json:"productId"`
	Product   Product `gorm:"foreignKey:ProductId" json:"product"`

	Type     string `gorm:"not null" json:"type"` // IMPORT, EXPORT, ADJUSTMENT, RETURN, DAMAGED
	Quantity int    `gorm:"not null" json:"quantity"`

	QuantityBefore int `gorm:"not null" json:"quantityBefore"`
	QuantityAfter  int `gorm:"not null" json:"quantityAfter"`

	ReferenceCode *string `json:"referenceCode"` // Mã đơn hàng liên quan nếu có
	Note          *string `gorm:"type:text" json:"note"`

	CreatedBy uint `gorm:"not null" json:"createdBy"`
	Creator   User `gorm:"foreignKey:CreatedBy" json:"creator"`
}

type StockMovements []StockMovement

type ImportStockInput struct {
	Quantity int     `validate:"required,gt=0" json:"quantity"`
	Note     *string `json:"note"`
}

type AdjustStockInput struct {
	Quantity int     `validate:"required" json:"quantity"` // Số lượng chênh lệch, có thể âm
	Note     *string `json:"note"`
}

type FilterStockMovement struct {
	Pagination
	VariantId *uint   `json:"variantId"`
	ProductId *uint   `json:"productId"`
	Type      string  `json:"type"`
	FromDate  *string `json:"fromDate"`
	ToDate    *string `json:"toDate"`
}
