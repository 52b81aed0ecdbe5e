package model

import "time"

type Order struct {
	DTO
	OrderCode string `gorm:"unique;size:30;not null" json:"orderCode"` // Ví dụ: ORD1712345678ABCD

	UserId uint `gorm:"not null;index" json:"userId"`
	User   User `gorm:"foreignKey:UserId" json:"user"`

	Status        string `gorm:"not null;default:'PENDING'" json:"status"`
	PaymentStatus string `gorm:"not null;default:'PENDING'" json:"paymentStatus"`
	PaymentMethod string `gorm:"not null" json:"paymentMethod"`

	SubTotal       float64 `gorm:"not null" json:"subTotal"`
	ShippingFee    float64 `gorm:"not null" json:"shippingFee"`
	DiscountAmount float64 `gorm:"default:0" json:"discountAmount"`
	TotalAmount    float64 `gorm:"not null" json:"totalAmount"`

	VoucherId *uint    `gorm:"index" json:"voucherId"`
	Voucher   *Voucher `gorm:"foreignKey:VoucherId" json:"voucher,omitempty"`

	ReceiverName    string  `gorm:"not null" json:"receiverName"`
	ReceiverPhone   string  `gorm:"not null" json:"receiverPhone"`
	ShippingAddress string  `gorm:"not null" json:"shippingAddress"`
	Note            *string `gorm:"type:text" json:"note"`

	TransactionId *string `json:"transactionId"` // Mã giao dịch từ cổng thanh toán

	CancelReason *string    `json:"cancelReason"`
	PaidAt       *time.Time `json:"paidAt"`
	CancelledAt  *time.Time `json:"cancelledAt"`
	CompletedAt  *time.Time `json:"completedAt"`

	Items []OrderItem `gorm:"foreignKey:OrderId" json:"items"`
}

type Orders []Order

type OrderItem struct {
	DTO
	OrderId uint `gorm:"not null;index" json:"orderId"`

	ProductId uint    `gorm:"not null" json:"productId"`
	Product   Product `gorm:"foreignKey:ProductId" json:"product"`

	VariantId *uint           `json:"variantId"`
	Variant   *ProductVariant `gorm:"foreignKey:VariantId" json:"variant,omitempty"`

	// Snapshot tại thời điểm đặt hàng
	ProductName  string  `gorm:"not null" json:"productName"`
	ProductImage *string `json:"productImage"`
	UnitPrice    float64 `gorm:"not null" json:"unitPrice"`
	Quantity     int     `gorm:"not null" json:"quantity"`
	LineTotal    float64 `gorm:"not null" json:"lineTotal"`
}

// OrderRequestItem dòng hàng đặt trực tiếp, không qua giỏ
type OrderRequestItem struct {
	ProductId uint  `validate:"required" json:"productId"`
	VariantId *uint `json:"variantId"` // null thì lấy phân loại mặc định
	Quantity  int   `validate:"required,gt=0" json:"quantity"`
}

type CreateOrderInput struct {
	PaymentMethod   string  `validate:"required" json:"paymentMethod"`
	ReceiverName    string  `validate:"required" json:"receiverName"`
	ReceiverPhone   string  `validate:"required" json:"receiverPhone"`
	ShippingAddress string  `validate:"required" json:"shippingAddress"`
	Note            *string `json:"note"`
	VoucherCode     *string `json:"voucherCode"`

	// Có Items thì đặt theo danh sách này, giỏ hàng giữ nguyên
	Items []OrderRequestItem `validate:"dive" json:"items"`

	// Nếu rỗng thì đặt toàn bộ giỏ hàng
	CartItemIds []uint `json:"cartItemIds"`
}

type UpdateOrderStatusInput struct {
	Status string `validate:"required" json:"status"`
}

type UpdatePaymentStatusInput struct {
	PaymentStatus string  `validate:"required" json:"paymentStatus"`
	TransactionId *string `json:"transactionId"`
}

type CancelOrderInput struct {
	Reason string `validate:"required" json:"reason"`
}

type FilterOrder struct {
	Pagination
	SearchKey     string  `json:"searchKey"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	UserId        *uint   `json:"userId"`
	FromDate      *string `json:"fromDate"` // YYYY-MM-DD
	ToDate        *string `json:"toDate"`
}
