package handler

import (
	"errors"
	"petshop_manager/constants"
	"petshop_manager/database"
	"petshop_manager/helper"
	"petshop_manager/model"
	"petshop_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetCart(c *fiber.Ctx) error {
	claim, _, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("no user"))
	}

	var items model.CartItems
	err := database.DB.
		Preload("Product").
		Preload("Product.Images").
		Preload("Variant").
		Where("user_id = ?", claim.UserId).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var subTotal float64
	for _, item := range items {
		variant := item.Variant
		subTotal += helper.UnitPriceOf(item.Product, variant) * float64(item.Quantity)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"items":    items,
		"subTotal": subTotal,
	})
}

// GetCartCount số dòng trong giỏ, cho badge trên header
func GetCartCount(c *fiber.Ctx) error {
	claim, _, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("no user"))
	}

	var count int64
	database.DB.Model(&model.CartItem{}).Where("user_id = ?", claim.UserId).Count(&count)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"count": count})
}

func AddToCart(c *fiber.Ctx) error {
	claim, _, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("no user"))
	}

	input := c.Locals("inputAddToCart").(model.AddToCartInput)

	var item model.CartItem
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := tx.Preload("Variants").Where("id = ? AND is_active = ?", input.ProductId, true).First(&product).Error; err != nil {
			return errors.New("sản phẩm không tồn tại hoặc đã ngừng bán")
		}

		// Không chọn phân loại thì lấy phân loại mặc định
		var variant *model.ProductVariant
		if input.VariantId != nil {
			for i := range product.Variants {
				if product.Variants[i].ID == *input.VariantId && product.Variants[i].IsActive {
					variant = &product.Variants[i]
					break
				}
			}
			if variant == nil {
				return errors.New("phân loại sản phẩm không tồn tại")
			}
		} else {
			variant = helper.DefaultVariantOf(product.Variants)
			if variant == nil {
				return errors.New("sản phẩm chưa có phân loại mặc định")
			}
		}
		availableStock := variant.Stock

		// Đã có trong giỏ thì cộng dồn số lượng
		if err := tx.Where("user_id = ? AND product_id = ? AND variant_id = ?",
			claim.UserId, input.ProductId, variant.ID).First(&item).Error; err == nil {
			newQuantity := item.Quantity + input.Quantity
			if newQuantity > availableStock {
				return errors.New("số lượng trong giỏ vượt quá tồn kho")
			}
			item.Quantity = newQuantity
			return tx.Save(&item).Error
		}

		if input.Quantity > availableStock {
			return errors.New("số lượng vượt quá tồn kho")
		}

		variantId := variant.ID
		item = model.CartItem{
			UserId:    claim.UserId,
			ProductId: input.ProductId,
			VariantId: &variantId,
			Quantity:  input.Quantity,
		}
		return tx.Create(&item).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}

	database.DB.Preload("Product").Preload("Variant").First(&item, item.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, item)
}

func UpdateCartItem(c *fiber.Ctx) error {
	claim, _, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("no user"))
	}

	cartItemId := c.Locals("inputCartItemId").(uint)
	input := c.Locals("inputUpdateCartItem").(model.UpdateCartItemInput)

	var item model.CartItem
	if err := database.DB.Preload("Product").Preload("Variant").Where("id = ? AND user_id = ?", cartItemId, claim.UserId).First(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	availableStock := 0
	if item.Variant != nil {
		availableStock = item.Variant.Stock
	}
	if input.Quantity > availableStock {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Số lượng vượt quá tồn kho", errors.New("quantity exceeds stock"))
	}

	item.Quantity = input.Quantity
	if err := database.DB.Save(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

func RemoveCartItem(c *fiber.Ctx) error {
	claim, _, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("no user"))
	}

	cartItemId := c.Locals("inputId").(int)

	result := database.DB.Where("id = ? AND user_id = ?", cartItemId, claim.UserId).Delete(&model.CartItem{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Xóa thất bại", result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, errors.New("cart item not found"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Xóa thành công"})
}

func ClearCart(c *fiber.Ctx) error {
	claim, _, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("no user"))
	}

	if err := database.DB.Where("user_id = ?", claim.UserId).Delete(&model.CartItem{}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Xóa thất bại", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Đã xóa toàn bộ giỏ hàng"})
}
