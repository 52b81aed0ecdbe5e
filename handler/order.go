package handler

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"petshop_manager/constants"
	"petshop_manager/database"
	"petshop_manager/helper"
	"petshop_manager/model"
	"petshop_manager/utils"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// decreaseStock trừ tồn kho phân loại có điều kiện, tránh race khi hai đơn cùng mua
func decreaseStock(tx *gorm.DB, item model.CartItem) error {
	if item.VariantId == nil {
		return fmt.Errorf("sản phẩm %s chưa chọn phân loại", item.Product.Name)
	}

	result := tx.Model(&model.ProductVariant{}).
		Where("id = ? AND stock >= ?", *item.VariantId, item.Quantity).
		Update("stock", gorm.Expr("stock - ?", item.Quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("sản phẩm %s không đủ tồn kho", item.Product.Name)
	}

	return tx.Model(&model.Product{}).
		Where("id = ?", item.ProductId).
		Update("sold_count", gorm.Expr("sold_count + ?", item.Quantity)).Error
}

// resolveOrderItems dựng các dòng đặt hàng từ danh sách chỉ định, không đụng tới giỏ
func resolveOrderItems(tx *gorm.DB, items []model.OrderRequestItem) (model.CartItems, error) {
	var resolved model.CartItems
	for _, reqItem := range items {
		var product model.Product
		if err := tx.Preload("Images").Preload("Variants").
			Where("id = ? AND is_active = ?", reqItem.ProductId, true).First(&product).Error; err != nil {
			return nil, errors.New("sản phẩm không tồn tại hoặc đã ngừng bán")
		}

		var variant *model.ProductVariant
		if reqItem.VariantId != nil {
			for i := range product.Variants {
				if product.Variants[i].ID == *reqItem.VariantId && product.Variants[i].IsActive {
					variant = &product.Variants[i]
					break
				}
			}
			if variant == nil {
				return nil, fmt.Errorf("phân loại của sản phẩm %s không tồn tại", product.Name)
			}
		} else {
			variant = helper.DefaultVariantOf(product.Variants)
			if variant == nil {
				return nil, fmt.Errorf("sản phẩm %s chưa có phân loại mặc định", product.Name)
			}
		}

		variantId := variant.ID
		resolved = append(resolved, model.CartItem{
			ProductId: product.ID,
			Product:   product,
			VariantId: &variantId,
			Variant:   variant,
			Quantity:  reqItem.Quantity,
		})
	}
	return resolved, nil
}

// primaryImageOf ảnh đại diện của sản phẩm, không có thì lấy ảnh đầu tiên
func primaryImageOf(product model.Product) *string {
	for _, image := range product.Images {
		if image.IsPrimary {
			return &image.ImageUrl
		}
	}
	if len(product.Images) > 0 {
		return &product.Images[0].ImageUrl
	}
	return nil
}

func CreateOrder(c *fiber.Ctx) error {
	claim, _, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("no user"))
	}

	input := c.Locals("inputCreateOrder").(model.CreateOrderInput)

	var order model.Order
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// Dòng hàng lấy từ danh sách chỉ định, không có thì lấy từ giỏ
		fromCart := len(input.Items) == 0
		var cartItems model.CartItems
		if fromCart {
			cartQuery := tx.Preload("Product").Preload("Product.Images").Preload("Variant").
				Where("user_id = ?", claim.UserId)
			if len(input.CartItemIds) > 0 {
				cartQuery = cartQuery.Where("id IN ?", input.CartItemIds)
			}
			if err := cartQuery.Find(&cartItems).Error; err != nil {
				return err
			}
			if len(cartItems) == 0 {
				return errors.New("giỏ hàng trống")
			}
		} else {
			var err error
			cartItems, err = resolveOrderItems(tx, input.Items)
			if err != nil {
				return err
			}
		}

		var orderItems []model.OrderItem
		for _, item := range cartItems {
			if !item.Product.IsActive {
				return fmt.Errorf("sản phẩm %s đã ngừng bán", item.Product.Name)
			}

			if err := decreaseStock(tx, item); err != nil {
				return err
			}

			unitPrice := helper.UnitPriceOf(item.Product, item.Variant)
			name := item.Product.Name
			if item.Variant != nil {
				name = fmt.Sprintf("%s - %s", name, item.Variant.Name)
			}
			orderItems = append(orderItems, model.OrderItem{
				ProductId:    item.ProductId,
				VariantId:    item.VariantId,
				ProductName:  name,
				ProductImage: primaryImageOf(item.Product),
				UnitPrice:    unitPrice,
				Quantity:     item.Quantity,
				LineTotal:    unitPrice * float64(item.Quantity),
			})
		}

		var subTotalOnly float64
		for _, item := range orderItems {
			subTotalOnly += item.LineTotal
		}

		// Voucher
		var discount float64
		var voucherId *uint
		if input.VoucherCode != nil && *input.VoucherCode != "" {
			var voucher model.Voucher
			if err := tx.Where("code = ?", strings.ToUpper(*input.VoucherCode)).First(&voucher).Error; err != nil {
				return errors.New("mã giảm giá không tồn tại")
			}
			if !voucher.IsValid(time.Now()) {
				return errors.New("mã giảm giá đã hết hạn hoặc hết lượt sử dụng")
			}
			if voucher.ApplyTo == constants.APPLY_TO_SERVICES {
				return errors.New("mã giảm giá chỉ áp dụng cho dịch vụ spa")
			}
			var userUsed int64
			tx.Model(&model.Order{}).
				Where("user_id = ? AND voucher_id = ? AND status != ?", claim.UserId, voucher.ID, constants.ORDER_CANCELLED).
				Count(&userUsed)
			if !voucher.WithinUserLimit(int(userUsed)) {
				return errors.New("bạn đã dùng hết lượt sử dụng mã giảm giá này")
			}
			discount = voucher.CalculateDiscount(subTotalOnly)
			if discount == 0 {
				return fmt.Errorf("đơn hàng chưa đạt giá trị tối thiểu %.0f đ", voucher.MinOrderAmount)
			}
			voucherId = &voucher.ID

			if err := tx.Model(&voucher).Update("used_count", gorm.Expr("used_count + 1")).Error; err != nil {
				return err
			}
		}

		subTotal, shippingFee, totalAmount := helper.CalculateOrderAmounts(orderItems, discount)

		order = model.Order{
			OrderCode:       helper.GenerateOrderCode(),
			UserId:          claim.UserId,
			Status:          constants.ORDER_PENDING,
			PaymentStatus:   constants.PAYMENT_PENDING,
			PaymentMethod:   input.PaymentMethod,
			SubTotal:        subTotal,
			ShippingFee:     shippingFee,
			DiscountAmount:  discount,
			TotalAmount:     totalAmount,
			VoucherId:       voucherId,
			ReceiverName:    input.ReceiverName,
			ReceiverPhone:   input.ReceiverPhone,
			ShippingAddress: input.ShippingAddress,
			Note:            input.Note,
			Items:           orderItems,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Ghi sổ xuất kho theo phân loại, đọc lại tồn sau khi đã trừ
		for _, item := range order.Items {
			var after int
			tx.Model(&model.ProductVariant{}).Select("stock").Where("id = ?", *item.VariantId).Scan(&after)
			movement := model.StockMovement{
				VariantId:      *item.VariantId,
				ProductId:      item.ProductId,
				Type:           constants.MOVEMENT_EXPORT,
				Quantity:       item.Quantity,
				QuantityBefore: after + item.Quantity,
				QuantityAfter:  after,
				ReferenceCode:  &order.OrderCode,
				CreatedBy:      claim.UserId,
			}
			if err := tx.Create(&movement).Error; err != nil {
				return err
			}
		}

		// Đặt trực tiếp thì giỏ hàng giữ nguyên
		if !fromCart {
			return nil
		}

		// Xóa các dòng giỏ hàng đã đặt
		ids := make([]uint, 0, len(cartItems))
		for _, item := range cartItems {
			ids = append(ids, item.ID)
		}
		return tx.Where("id IN ?", ids).Delete(&model.CartItem{}).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}

	database.DB.Preload("Items").Preload("User").First(&order, order.ID)

	itemNames := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		itemNames = append(itemNames, fmt.Sprintf("%s x%d", item.ProductName, item.Quantity))
	}
	utils.SendOrderConfirmationEmail(order.User.Email, utils.OrderConfirmationData{
		OrderCode:       order.OrderCode,
		CustomerName:    order.User.FullName,
		Items:           strings.Join(itemNames, ", "),
		TotalAmount:     order.TotalAmount,
		PaymentMethod:   order.PaymentMethod,
		ShippingAddress: order.ShippingAddress,
		DetailLink:      fmt.Sprintf("%s/don-hang/%s", os.Getenv("FRONTEND_URL"), order.OrderCode),
	})

	return utils.SuccessResponse(c, fiber.StatusCreated, order)
}

func GetMyOrders(c *fiber.Ctx) error {
	claim, _, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("no user"))
	}

	filter := new(model.FilterOrder)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Order{}).Where("user_id = ?", claim.UserId)
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var orders model.Orders
	if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       orders,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetOrders(c *fiber.Ctx) error {
	_, isAdmin, isStaff, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	filter := new(model.FilterOrder)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Order{})
	if filter.SearchKey != "" {
		searchKey := "%" + filter.SearchKey + "%"
		db = db.Where("order_code ILIKE ? OR receiver_name ILIKE ? OR receiver_phone ILIKE ?", searchKey, searchKey, searchKey)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.PaymentStatus != "" {
		db = db.Where("payment_status = ?", filter.PaymentStatus)
	}
	if filter.UserId != nil {
		db = db.Where("user_id = ?", *filter.UserId)
	}
	if filter.FromDate != nil {
		db = db.Where("created_at >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		db = db.Where("created_at <= ?", *filter.ToDate+" 23:59:59")
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var orders model.Orders
	if err := db.Preload("Items").Preload("User").Order("created_at DESC").Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       orders,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetOrderByCode(c *fiber.Ctx) error {
	claim, isAdmin, isStaff, _ := helper.GetInfoUserFromToken(c)

	orderCode := c.Params("orderCode")
	var order model.Order
	err := database.DB.
		Preload("Items").
		Preload("Items.Product").
		Preload("User").
		Preload("Voucher").
		Where("order_code = ?", orderCode).
		First(&order).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	if !isAdmin && !isStaff && order.UserId != claim.UserId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Bạn không có quyền xem đơn hàng này", errors.New("not owner"))
	}

	// QR để nhân viên quét khi nhận hàng tại cửa hàng
	qrBytes, err := utils.GenerateQRCode(order.OrderCode, 256)
	var qrBase64 string
	if err == nil {
		qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"order": order,
		"qr":    qrBase64,
	})
}

func UpdateOrderStatus(c *fiber.Ctx) error {
	_, isAdmin, isStaff, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	orderId := c.Locals("inputOrderId").(uint)
	input := c.Locals("inputUpdateOrderStatus").(model.UpdateOrderStatusInput)

	if input.Status == constants.ORDER_CANCELLED {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Dùng API hủy đơn để hủy đơn hàng", errors.New("use cancel endpoint"))
	}

	var order model.Order
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, orderId).Error; err != nil {
			return errors.New("đơn hàng không tồn tại")
		}

		if !helper.CanTransitionOrder(order.Status, input.Status) {
			return fmt.Errorf("không thể chuyển trạng thái từ %s sang %s", order.Status, input.Status)
		}

		order.Status = input.Status
		now := time.Now()
		if input.Status == constants.ORDER_COMPLETED {
			order.CompletedAt = &now
			// Đơn COD coi như đã thanh toán khi hoàn tất
			if order.PaymentMethod == constants.PAYMENT_METHOD_COD && order.PaymentStatus == constants.PAYMENT_PENDING {
				order.PaymentStatus = constants.PAYMENT_PAID
				order.PaidAt = &now
			}
		}

		return tx.Save(&order).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// UpdatePaymentStatus ghi nhận kết quả thanh toán từ cổng hoặc đối soát thủ công
func UpdatePaymentStatus(c *fiber.Ctx) error {
	_, isAdmin, isStaff, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	orderId := c.Locals("inputOrderId").(uint)
	input := c.Locals("inputUpdatePaymentStatus").(model.UpdatePaymentStatusInput)

	var order model.Order
	if err := database.DB.First(&order, orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	order.PaymentStatus = input.PaymentStatus
	if input.TransactionId != nil {
		order.TransactionId = input.TransactionId
	}
	if input.PaymentStatus == constants.PAYMENT_PAID && order.PaidAt == nil {
		now := time.Now()
		order.PaidAt = &now
	}

	if err := database.DB.Save(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

func CancelOrder(c *fiber.Ctx) error {
	claim, isAdmin, isStaff, _ := helper.GetInfoUserFromToken(c)

	orderId := c.Locals("inputOrderId").(uint)
	input := c.Locals("inputCancelOrder").(model.CancelOrderInput)

	var order model.Order
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").Preload("User").First(&order, orderId).Error; err != nil {
			return errors.New("đơn hàng không tồn tại")
		}

		// Khách chỉ hủy được đơn của mình khi còn chờ xác nhận,
		// quản trị hủy được tới trước khi giao thành công
		if !isAdmin && !isStaff {
			if order.UserId != claim.UserId {
				return errors.New("bạn không có quyền hủy đơn hàng này")
			}
			if !helper.CanCustomerCancelOrder(order.Status) {
				return fmt.Errorf("đơn hàng đang ở trạng thái %s, vui lòng liên hệ cửa hàng để hủy", order.Status)
			}
		} else if !helper.CanAdminCancelOrder(order.Status) {
			return fmt.Errorf("đơn hàng đang ở trạng thái %s, không thể hủy", order.Status)
		}

		// Trả lại tồn kho phân loại và soldCount
		for _, item := range order.Items {
			if item.VariantId == nil {
				continue
			}
			if err := tx.Model(&model.ProductVariant{}).Where("id = ?", *item.VariantId).
				Update("stock", gorm.Expr("stock + ?", item.Quantity)).Error; err != nil {
				return err
			}

			var product model.Product
			if err := tx.First(&product, item.ProductId).Error; err != nil {
				return err
			}
			newSold := helper.RestoreSoldCount(product.SoldCount, item.Quantity)
			if err := tx.Model(&product).Update("sold_count", newSold).Error; err != nil {
				return err
			}

			var variant model.ProductVariant
			if err := tx.First(&variant, *item.VariantId).Error; err != nil {
				return err
			}
			movement := model.StockMovement{
				VariantId:      variant.ID,
				ProductId:      item.ProductId,
				Type:           constants.MOVEMENT_RETURN,
				Quantity:       item.Quantity,
				QuantityBefore: variant.Stock - item.Quantity,
				QuantityAfter:  variant.Stock,
				ReferenceCode:  &order.OrderCode,
				Note:           utils.StringPtr("Hoàn kho do hủy đơn"),
				CreatedBy:      claim.UserId,
			}
			if err := tx.Create(&movement).Error; err != nil {
				return err
			}
		}

		// Trả lại lượt dùng voucher
		if order.VoucherId != nil {
			if err := tx.Model(&model.Voucher{}).Where("id = ? AND used_count > 0", *order.VoucherId).
				Update("used_count", gorm.Expr("used_count - 1")).Error; err != nil {
				return err
			}
		}

		now := time.Now()
		order.Status = constants.ORDER_CANCELLED
		order.CancelReason = &input.Reason
		order.CancelledAt = &now
		if order.PaymentStatus == constants.PAYMENT_PAID {
			order.PaymentStatus = constants.PAYMENT_REFUNDED
		}

		return tx.Save(&order).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}

	utils.SendOrderCancelledEmail(order.User.Email, order.OrderCode, input.Reason)

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}
