package handler

import (
	"errors"
	"petshop_manager/constants"
	"petshop_manager/database"
	"petshop_manager/helper"
	"petshop_manager/model"
	"petshop_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetProducts(c *fiber.Ctx) error {
	filter := new(model.FilterProduct)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Product{})
	if filter.SearchKey != "" {
		db = db.Where("name ILIKE ?", "%"+filter.SearchKey+"%")
	}
	if filter.CategoryId != nil {
		db = db.Where("category_id = ?", *filter.CategoryId)
	}
	if filter.BrandId != nil {
		db = db.Where("brand_id = ?", *filter.BrandId)
	}
	if filter.MinPrice != nil {
		db = db.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		db = db.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.InStock != nil && *filter.InStock {
		db = db.Where("EXISTS (SELECT 1 FROM product_variants pv WHERE pv.product_id = products.id AND pv.is_active = true AND pv.stock > 0)")
	}
	if filter.Active != nil {
		db = db.Where("is_active = ?", *filter.Active)
	} else {
		db = db.Where("is_active = ?", true)
	}

	switch filter.SortBy {
	case "price_asc":
		db = db.Order("price ASC")
	case "price_desc":
		db = db.Order("price DESC")
	case "best_seller":
		db = db.Order("sold_count DESC")
	default:
		db = db.Order("created_at DESC")
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var products model.Products
	if err := db.Preload("Category").Preload("Brand").Preload("Images").Find(&products).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       products,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetProductBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var product model.Product
	err := database.DB.
		Preload("Category").
		Preload("Brand").
		Preload("Images").
		Preload("Variants", "is_active = ?", true).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&product).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func GetProductById(c *fiber.Ctx) error {
	_, isAdmin, isStaff, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	productId := c.Locals("inputId").(int)
	var product model.Product
	err := database.DB.
		Preload("Category").
		Preload("Brand").
		Preload("Images").
		Preload("Variants").
		First(&product, productId).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func CreateProduct(c *fiber.Ctx) error {
	claim, isAdmin, isStaff, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input := c.Locals("inputCreateProduct").(model.CreateProductInput)

	var product model.Product
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var category model.Category
		if err := tx.First(&category, input.CategoryId).Error; err != nil {
			return errors.New("danh mục không tồn tại")
		}
		if input.BrandId != nil {
			var brand model.Brand
			if err := tx.First(&brand, *input.BrandId).Error; err != nil {
				return errors.New("thương hiệu không tồn tại")
			}
		}

		copier.Copy(&product, &input)
		product.Slug = helper.GenerateUniqueProductSlug(tx, input.Name)
		product.IsActive = true
		if err := tx.Create(&product).Error; err != nil {
			return err
		}

		// Tồn kho luôn nằm trên phân loại, sản phẩm mới có một phân loại mặc định
		defaultVariant := model.ProductVariant{
			ProductId: product.ID,
			Name:      "Mặc định",
			Price:     input.Price,
			Stock:     input.Stock,
			IsDefault: true,
			IsActive:  true,
		}
		if err := tx.Create(&defaultVariant).Error; err != nil {
			return err
		}

		for i, url := range input.ImageUrls {
			image := model.ProductImage{
				ProductId: product.ID,
				ImageUrl:  url,
				IsPrimary: i == 0,
				SortOrder: i,
			}
			if err := tx.Create(&image).Error; err != nil {
				return err
			}
		}

		// Tồn kho ban đầu ghi vào sổ như một lần nhập
		if input.Stock > 0 {
			movement := model.StockMovement{
				VariantId:      defaultVariant.ID,
				ProductId:      product.ID,
				Type:           constants.MOVEMENT_IMPORT,
				Quantity:       input.Stock,
				QuantityBefore: 0,
				QuantityAfter:  input.Stock,
				Note:           utils.StringPtr("Tồn kho ban đầu"),
				CreatedBy:      claim.UserId,
			}
			if err := tx.Create(&movement).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}

	database.DB.Preload("Images").First(&product, product.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, product)
}

func EditProduct(c *fiber.Ctx) error {
	_, isAdmin, isStaff, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	productId := c.Locals("inputProductId").(uint)
	input := c.Locals("inputEditProduct").(model.EditProductInput)

	var product model.Product
	if err := database.DB.First(&product, productId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if input.CategoryId != nil {
			var category model.Category
			if err := tx.First(&category, *input.CategoryId).Error; err != nil {
				return errors.New("danh mục không tồn tại")
			}
			product.CategoryId = *input.CategoryId
		}
		if input.BrandId != nil {
			var brand model.Brand
			if err := tx.First(&brand, *input.BrandId).Error; err != nil {
				return errors.New("thương hiệu không tồn tại")
			}
			product.BrandId = input.BrandId
		}

		if input.Name != nil && *input.Name != product.Name {
			product.Name = *input.Name
			product.Slug = helper.GenerateUniqueProductSlug(tx, *input.Name)
		}
		if input.Description != nil {
			product.Description = input.Description
		}
		if input.Sku != nil {
			product.Sku = input.Sku
		}
		if input.Price != nil {
			product.Price = *input.Price
			// Giá phân loại mặc định luôn bám theo giá sản phẩm
			if err := tx.Model(&model.ProductVariant{}).
				Where("product_id = ? AND is_default = ?", product.ID, true).
				Update("price", *input.Price).Error; err != nil {
				return err
			}
		}
		if input.SalePrice != nil {
			if *input.SalePrice >= product.Price {
				return errors.New("giá khuyến mãi phải nhỏ hơn giá gốc")
			}
			product.SalePrice = input.SalePrice
		}
		if input.IsActive != nil {
			product.IsActive = *input.IsActive
		}

		return tx.Save(&product).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func DeleteProducts(c *fiber.Ctx) error {
	_, isAdmin, _, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input := c.Locals("deleteIds").(model.ArrayId)

	if err := database.DB.Model(&model.Product{}).Where("id IN ?", input.IDs).Update("is_active", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Xóa thất bại", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Xóa thành công"})
}

func CreateVariant(c *fiber.Ctx) error {
	_, isAdmin, isStaff, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	productId := c.Locals("inputProductId").(uint)
	input := c.Locals("inputCreateVariant").(model.CreateVariantInput)

	var product model.Product
	if err := database.DB.First(&product, productId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	variant := model.ProductVariant{
		ProductId: product.ID,
		Name:      input.Name,
		Sku:       input.Sku,
		Price:     input.Price,
		Stock:     input.Stock,
		IsActive:  true,
	}
	if err := database.DB.Create(&variant).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, variant)
}

func DeleteVariant(c *fiber.Ctx) error {
	_, isAdmin, isStaff, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	variantId := c.Locals("inputId").(int)
	var variant model.ProductVariant
	if err := database.DB.First(&variant, variantId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	if variant.IsDefault {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Không thể xóa phân loại mặc định", errors.New("default variant"))
	}

	if err := database.DB.Model(&variant).Update("is_active", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Xóa thất bại", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Xóa thành công"})
}
