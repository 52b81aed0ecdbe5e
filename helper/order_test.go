package helper

import (
	"petshop_manager/constants"
	"petshop_manager/model"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionOrder(t *testing.T) {
	valid := [][2]string{
		{constants.ORDER_PENDING, constants.ORDER_CONFIRMED},
		{constants.ORDER_CONFIRMED, constants.ORDER_PROCESSING},
		{constants.ORDER_PROCESSING, constants.ORDER_SHIPPING},
		{constants.ORDER_SHIPPING, constants.ORDER_DELIVERED},
		{constants.ORDER_DELIVERED, constants.ORDER_COMPLETED},
		{constants.ORDER_PENDING, constants.ORDER_CANCELLED},
		{constants.ORDER_CONFIRMED, constants.ORDER_CANCELLED},
		{constants.ORDER_PROCESSING, constants.ORDER_CANCELLED},
	}
	for _, tc := range valid {
		assert.True(t, CanTransitionOrder(tc[0], tc[1]), "%s -> %s", tc[0], tc[1])
	}

	invalid := [][2]string{
		{constants.ORDER_PENDING, constants.ORDER_SHIPPING},
		{constants.ORDER_PENDING, constants.ORDER_DELIVERED},
		{constants.ORDER_SHIPPING, constants.ORDER_CANCELLED},
		{constants.ORDER_DELIVERED, constants.ORDER_CANCELLED},
		{constants.ORDER_COMPLETED, constants.ORDER_PENDING},
		{constants.ORDER_CANCELLED, constants.ORDER_CONFIRMED},
		{constants.ORDER_DELIVERED, constants.ORDER_SHIPPING},
	}
	for _, tc := range invalid {
		assert.False(t, CanTransitionOrder(tc[0], tc[1]), "%s -> %s", tc[0], tc[1])
	}
}

func TestCanCustomerCancelOrder(t *testing.T) {
	// Khách chỉ hủy được khi đơn còn chờ xác nhận
	assert.True(t, CanCustomerCancelOrder(constants.ORDER_PENDING))

	assert.False(t, CanCustomerCancelOrder(constants.ORDER_CONFIRMED))
	assert.False(t, CanCustomerCancelOrder(constants.ORDER_PROCESSING))
	assert.False(t, CanCustomerCancelOrder(constants.ORDER_SHIPPING))
	assert.False(t, CanCustomerCancelOrder(constants.ORDER_DELIVERED))
	assert.False(t, CanCustomerCancelOrder(constants.ORDER_COMPLETED))
	assert.False(t, CanCustomerCancelOrder(constants.ORDER_CANCELLED))
}

func TestCanAdminCancelOrder(t *testing.T) {
	assert.True(t, CanAdminCancelOrder(constants.ORDER_PENDING))
	assert.True(t, CanAdminCancelOrder(constants.ORDER_CONFIRMED))
	assert.True(t, CanAdminCancelOrder(constants.ORDER_PROCESSING))
	// Đơn đang giao quản trị vẫn hủy được
	assert.True(t, CanAdminCancelOrder(constants.ORDER_SHIPPING))

	assert.False(t, CanAdminCancelOrder(constants.ORDER_DELIVERED))
	assert.False(t, CanAdminCancelOrder(constants.ORDER_COMPLETED))
	assert.False(t, CanAdminCancelOrder(constants.ORDER_CANCELLED))
}

func TestGenerateOrderCode(t *testing.T) {
	code := GenerateOrderCode()
	assert.True(t, strings.HasPrefix(code, "ORD"))
	assert.Equal(t, strings.ToUpper(code), code)

	other := GenerateOrderCode()
	assert.NotEqual(t, code, other)
}

func TestGenerateBookingCode(t *testing.T) {
	code := GenerateBookingCode()
	assert.True(t, strings.HasPrefix(code, "BK"))
	assert.Equal(t, strings.ToUpper(code), code)
}

func TestUnitPriceOf(t *testing.T) {
	product := model.Product{Price: 100000}

	assert.Equal(t, float64(100000), UnitPriceOf(product, nil))

	product.SalePrice = utilsPtr(80000)
	assert.Equal(t, float64(80000), UnitPriceOf(product, nil))

	// giá khuyến mãi cao hơn giá gốc thì bỏ qua
	product.SalePrice = utilsPtr(120000)
	assert.Equal(t, float64(100000), UnitPriceOf(product, nil))

	variant := &model.ProductVariant{Price: 95000}
	assert.Equal(t, float64(95000), UnitPriceOf(product, variant))

	// phân loại mặc định bám theo giá khuyến mãi của sản phẩm
	product.SalePrice = utilsPtr(80000)
	defaultVariant := &model.ProductVariant{Price: 100000, IsDefault: true}
	assert.Equal(t, float64(80000), UnitPriceOf(product, defaultVariant))
}

func TestDefaultVariantOf(t *testing.T) {
	variants := []model.ProductVariant{
		{Name: "Gói 1kg", IsActive: true},
		{Name: "Mặc định", IsDefault: true, IsActive: true},
	}
	got := DefaultVariantOf(variants)
	assert.NotNil(t, got)
	assert.Equal(t, "Mặc định", got.Name)

	// phân loại mặc định ngừng bán thì coi như không có
	variants[1].IsActive = false
	assert.Nil(t, DefaultVariantOf(variants))

	assert.Nil(t, DefaultVariantOf(nil))
}

func TestCalculateOrderAmounts(t *testing.T) {
	items := []model.OrderItem{
		{LineTotal: 150000},
		{LineTotal: 100000},
	}

	subTotal, shippingFee, total := CalculateOrderAmounts(items, 0)
	assert.Equal(t, float64(250000), subTotal)
	assert.Equal(t, float64(constants.DEFAULT_SHIPPING_FEE), shippingFee)
	assert.Equal(t, float64(280000), total)

	_, _, total = CalculateOrderAmounts(items, 25000)
	assert.Equal(t, float64(255000), total)

	// giảm giá vượt subTotal thì chỉ trừ tối đa subTotal
	_, _, total = CalculateOrderAmounts(items, 999999)
	assert.Equal(t, float64(constants.DEFAULT_SHIPPING_FEE), total)
}

func utilsPtr(v float64) *float64 {
	return &v
}
