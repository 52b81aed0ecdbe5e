package model

import (
	"time"

	"petshop_manager/constants"
)

type Voucher struct {
	DTO
	Code        string  `gorm:"unique;not null" json:"code"`
	Name        string  `gorm:"not null" json:"name"`
	Description *string `gorm:"type:text" json:"description"`

	DiscountType  string  `gorm:"not null" json:"discountType"` // PERCENTAGE, FIXED_AMOUNT
	DiscountValue float64 `gorm:"not null" json:"discountValue"`

	MinOrderAmount float64  `gorm:"default:0" json:"minOrderAmount"`
	MaxDiscount    *float64 `json:"maxDiscount"` // Chỉ áp dụng cho PERCENTAGE

	ApplyTo string `gorm:"not null;default:'ALL'" json:"applyTo"` // ALL, PRODUCTS, SERVICES

	StartDate time.Time `gorm:"not null" json:"startDate"`
	EndDate   time.Time `gorm:"not null" json:"endDate"`

	UsageLimit        *int `json:"usageLimit"`        // null = không giới hạn
	UsageLimitPerUser *int `json:"usageLimitPerUser"` // null = không giới hạn theo người
	UsedCount         int  `gorm:"default:0" json:"usedCount"`

	IsActive bool `gorm:"default:true" json:"isActive"`
}

type Vouchers []Voucher

// IsValid kiểm tra voucher còn hiệu lực tại thời điểm now
func (v *Voucher) IsValid(now time.Time) bool {
	if !v.IsActive {
		return false
	}
	if now.Before(v.StartDate) || now.After(v.EndDate) {
		return false
	}
	if v.UsageLimit != nil && v.UsedCount >= *v.UsageLimit {
		return false
	}
	return true
}

// WithinUserLimit một người đã dùng userUsedCount lần thì còn được dùng tiếp hay không
func (v *Voucher) WithinUserLimit(userUsedCount int) bool {
	if v.UsageLimitPerUser == nil {
		return true
	}
	return userUsedCount < *v.UsageLimitPerUser
}

// CalculateDiscount tính số tiền giảm cho đơn hàng orderAmount
func (v *Voucher) CalculateDiscount(orderAmount float64) float64 {
	if orderAmount < v.MinOrderAmount {
		return 0
	}

	var discount float64
	if v.DiscountType == constants.DISCOUNT_PERCENTAGE {
		discount = orderAmount * v.DiscountValue / 100
		if v.MaxDiscount != nil && discount > *v.MaxDiscount {
			discount = *v.MaxDiscount
		}
	} else {
		discount = v.DiscountValue
	}

	// Không giảm quá giá trị đơn hàng
	if discount > orderAmount {
		discount = orderAmount
	}
	return discount
}

type CreateVoucherInput struct {
	Code           string   `validate:"required" json:"code"`
	Name           string   `validate:"required" json:"name"`
	Description    *string  `json:"description"`
	DiscountType   string   `validate:"required" json:"discountType"`
	DiscountValue  float64  `validate:"required,gt=0" json:"discountValue"`
	MinOrderAmount float64  `validate:"gte=0" json:"minOrderAmount"`
	MaxDiscount    *float64 `json:"maxDiscount"`
	ApplyTo        string   `json:"applyTo"`
	StartDate         string `validate:"required" json:"startDate"` // YYYY-MM-DD
	EndDate           string `validate:"required" json:"endDate"`
	UsageLimit        *int   `json:"usageLimit"`
	UsageLimitPerUser *int   `json:"usageLimitPerUser"`
}

type EditVoucherInput struct {
	Name           *string  `json:"name"`
	Description    *string  `json:"description"`
	DiscountValue  *float64 `json:"discountValue"`
	MinOrderAmount *float64 `json:"minOrderAmount"`
	MaxDiscount    *float64 `json:"maxDiscount"`
	StartDate         *string `json:"startDate"`
	EndDate           *string `json:"endDate"`
	UsageLimit        *int    `json:"usageLimit"`
	UsageLimitPerUser *int    `json:"usageLimitPerUser"`
	IsActive          *bool   `json:"isActive"`
}

type ApplyVoucherInput struct {
	Code        string  `validate:"required" json:"code"`
	OrderAmount float64 `validate:"required,gt=0" json:"orderAmount"`
}

type FilterVoucher struct {
	Pagination
	SearchKey string `json:"searchKey"`
	Active    *bool  `json:"active"`
}
