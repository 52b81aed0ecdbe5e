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
	"gorm.io/gorm/clause"
)

// ImportStock nhập kho cho một phân loại, cộng thêm số lượng
func ImportStock(c *fiber.Ctx) error {
	claim, isAdmin, isStaff, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	variantId := c.Locals("inputVariantId").(uint)
	input := c.Locals("inputImportStock").(model.ImportStockInput)

	var movement model.StockMovement
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var variant model.ProductVariant
		// Khóa dòng phân loại để quantityBefore/After không bị lệch khi nhập song song
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&variant, variantId).Error; err != nil {
			return errors.New("phân loại sản phẩm không tồn tại")
		}

		before := variant.Stock
		after := before + input.Quantity

		if err := tx.Model(&variant).Update("stock", after).Error; err != nil {
			return err
		}

		movement = model.StockMovement{
			VariantId:      variant.ID,
			ProductId:      variant.ProductId,
			Type:           constants.MOVEMENT_IMPORT,
			Quantity:       input.Quantity,
			QuantityBefore: before,
			QuantityAfter:  after,
			Note:           input.Note,
			CreatedBy:      claim.UserId,
		}
		return tx.Create(&movement).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, movement)
}

// AdjustStock điều chỉnh tồn kho theo số chênh lệch, có thể âm nhưng không để tồn kho âm
func AdjustStock(c *fiber.Ctx) error {
	claim, isAdmin, isStaff, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	variantId := c.Locals("inputVariantId").(uint)
	input := c.Locals("inputAdjustStock").(model.AdjustStockInput)

	var movement model.StockMovement
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var variant model.ProductVariant
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&variant, variantId).Error; err != nil {
			return errors.New("phân loại sản phẩm không tồn tại")
		}

		before := variant.Stock
		after, err := helper.NextStock(before, input.Quantity)
		if err != nil {
			return err
		}

		if err := tx.Model(&variant).Update("stock", after).Error; err != nil {
			return err
		}

		movement = model.StockMovement{
			VariantId:      variant.ID,
			ProductId:      variant.ProductId,
			Type:           constants.MOVEMENT_ADJUSTMENT,
			Quantity:       input.Quantity,
			QuantityBefore: before,
			QuantityAfter:  after,
			Note:           input.Note,
			CreatedBy:      claim.UserId,
		}
		return tx.Create(&movement).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, movement)
}

func GetStockMovements(c *fiber.Ctx) error {
	_, isAdmin, isStaff, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	filter := new(model.FilterStockMovement)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.StockMovement{})
	if filter.VariantId != nil {
		db = db.Where("variant_id = ?", *filter.VariantId)
	}
	if filter.ProductId != nil {
		db = db.Where("product_id = ?", *filter.ProductId)
	}
	if filter.Type != "" {
		db = db.Where("type = ?", filter.Type)
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
	var movements model.StockMovements
	if err := db.Preload("Variant").Preload("Product").Preload("Creator").Order("created_at DESC").Find(&movements).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       movements,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// GetLowStockVariants danh sách phân loại sắp hết hàng
func GetLowStockVariants(c *fiber.Ctx) error {
	_, isAdmin, isStaff, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	var variants []model.ProductVariant
	err := database.DB.
		Where("is_active = ? AND stock <= ?", true, constants.LOW_STOCK_THRESHOLD).
		Order("stock ASC").
		Find(&variants).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, variants)
}

func GetOutOfStockVariants(c *fiber.Ctx) error {
	_, isAdmin, isStaff, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	var variants []model.ProductVariant
	err := database.DB.
		Where("is_active = ? AND stock = 0", true).
		Order("updated_at DESC").
		Find(&variants).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, variants)
}
