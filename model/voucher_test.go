package model

import (
	"petshop_manager/constants"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sale10() Voucher {
	maxDiscount := float64(50000)
	return Voucher{
		Code:           "SALE10",
		Name:           "Giảm 10%",
		DiscountType:   constants.DISCOUNT_PERCENTAGE,
		DiscountValue:  10,
		MinOrderAmount: 200000,
		MaxDiscount:    &maxDiscount,
		StartDate:      time.Now().AddDate(0, 0, -1),
		EndDate:        time.Now().AddDate(0, 1, 0),
		IsActive:       true,
	}
}

func TestVoucherIsValid(t *testing.T) {
	now := time.Now()

	v := sale10()
	assert.True(t, v.IsValid(now))

	v = sale10()
	v.IsActive = false
	assert.False(t, v.IsValid(now))

	v = sale10()
	v.StartDate = now.AddDate(0, 0, 1)
	assert.False(t, v.IsValid(now))

	v = sale10()
	v.EndDate = now.AddDate(0, 0, -1)
	assert.False(t, v.IsValid(now))

	limit := 100
	v = sale10()
	v.UsageLimit = &limit
	v.UsedCount = 100
	assert.False(t, v.IsValid(now))

	v.UsedCount = 99
	assert.True(t, v.IsValid(now))
}

func TestVoucherWithinUserLimit(t *testing.T) {
	v := sale10()

	// không giới hạn theo người thì dùng bao nhiêu lần cũng được
	assert.True(t, v.WithinUserLimit(0))
	assert.True(t, v.WithinUserLimit(100))

	perUser := 2
	v.UsageLimitPerUser = &perUser
	assert.True(t, v.WithinUserLimit(0))
	assert.True(t, v.WithinUserLimit(1))
	assert.False(t, v.WithinUserLimit(2))
	assert.False(t, v.WithinUserLimit(3))
}

func TestVoucherCalculateDiscountPercentage(t *testing.T) {
	v := sale10()

	// chưa đạt đơn tối thiểu
	assert.Equal(t, float64(0), v.CalculateDiscount(150000))

	// 10% của 300000 = 30000, dưới trần
	assert.Equal(t, float64(30000), v.CalculateDiscount(300000))

	// 10% của 1000000 = 100000, chạm trần 50000
	assert.Equal(t, float64(50000), v.CalculateDiscount(1000000))

	// không có trần thì giảm đủ phần trăm
	v.MaxDiscount = nil
	assert.Equal(t, float64(100000), v.CalculateDiscount(1000000))
}

func TestVoucherCalculateDiscountFixedAmount(t *testing.T) {
	v := Voucher{
		Code:           "FREESHIP",
		DiscountType:   constants.DISCOUNT_FIXED_AMOUNT,
		DiscountValue:  30000,
		MinOrderAmount: 150000,
		IsActive:       true,
	}

	assert.Equal(t, float64(0), v.CalculateDiscount(100000))
	assert.Equal(t, float64(30000), v.CalculateDiscount(200000))

	// số tiền giảm không vượt giá trị đơn
	v.MinOrderAmount = 0
	v.DiscountValue = 500000
	assert.Equal(t, float64(200000), v.CalculateDiscount(200000))
}
