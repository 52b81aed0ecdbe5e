package helper

import (
	"fmt"
	"petshop_manager/constants"
	"petshop_manager/model"
	"strings"
	"time"

	"github.com/google/uuid"
)

// orderTransitions các bước chuyển trạng thái đơn hàng hợp lệ
var orderTransitions = map[string][]string{
	constants.ORDER_PENDING:    {constants.ORDER_CONFIRMED, constants.ORDER_CANCELLED},
	constants.ORDER_CONFIRMED:  {constants.ORDER_PROCESSING, constants.ORDER_CANCELLED},
	constants.ORDER_PROCESSING: {constants.ORDER_SHIPPING, constants.ORDER_CANCELLED},
	constants.ORDER_SHIPPING:   {constants.ORDER_DELIVERED},
	constants.ORDER_DELIVERED:  {constants.ORDER_COMPLETED},
	constants.ORDER_COMPLETED:  {},
	constants.ORDER_CANCELLED:  {},
}

// CanTransitionOrder kiểm tra đơn hàng có được chuyển từ from sang to hay không
func CanTransitionOrder(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanCustomerCancelOrder khách chỉ hủy được khi cửa hàng chưa xác nhận đơn
func CanCustomerCancelOrder(status string) bool {
	return status == constants.ORDER_PENDING
}

// CanAdminCancelOrder quản trị hủy được mọi đơn chưa kết thúc, kể cả đang giao
func CanAdminCancelOrder(status string) bool {
	return status != constants.ORDER_DELIVERED &&
		status != constants.ORDER_COMPLETED &&
		status != constants.ORDER_CANCELLED
}

// GenerateOrderCode sinh mã đơn hàng dạng ORD<millis><4 ký tự>
func GenerateOrderCode() string {
	suffix := strings.ToUpper(uuid.NewString()[:4])
	return fmt.Sprintf("ORD%d%s", time.Now().UnixMilli(), suffix)
}

// GenerateBookingCode sinh mã lịch hẹn dạng BK<millis><4 ký tự>
func GenerateBookingCode() string {
	suffix := strings.ToUpper(uuid.NewString()[:4])
	return fmt.Sprintf("BK%d%s", time.Now().UnixMilli(), suffix)
}

// UnitPriceOf giá bán hiện tại, phân loại mặc định ăn theo giá khuyến mãi của sản phẩm
func UnitPriceOf(product model.Product, variant *model.ProductVariant) float64 {
	if variant != nil && !variant.IsDefault {
		return variant.Price
	}
	if product.SalePrice != nil && *product.SalePrice > 0 && *product.SalePrice < product.Price {
		return *product.SalePrice
	}
	return product.Price
}

// DefaultVariantOf phân loại mặc định còn bán của sản phẩm, không có thì nil
func DefaultVariantOf(variants []model.ProductVariant) *model.ProductVariant {
	for i := range variants {
		if variants[i].IsDefault && variants[i].IsActive {
			return &variants[i]
		}
	}
	return nil
}

// CalculateOrderAmounts tính subTotal, phí ship và tổng tiền sau giảm giá
func CalculateOrderAmounts(items []model.OrderItem, discount float64) (subTotal, shippingFee, totalAmount float64) {
	for _, item := range items {
		subTotal += item.LineTotal
	}
	shippingFee = constants.DEFAULT_SHIPPING_FEE
	if discount > subTotal {
		discount = subTotal
	}
	totalAmount = subTotal + shippingFee - discount
	return subTotal, shippingFee, totalAmount
}
