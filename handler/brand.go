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

func GetBrands(c *fiber.Ctx) error {
	filter := new(model.FilterBrand)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Brand{})
	if filter.SearchKey != "" {
		db = db.Where("name ILIKE ?", "%"+filter.SearchKey+"%")
	}
	if filter.Active != nil {
		db = db.Where("is_active = ?", *filter.Active)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var brands model.Brands
	if err := db.Order("name ASC").Find(&brands).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       brands,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetBrandById(c *fiber.Ctx) error {
	brandId := c.Locals("inputId").(int)

	var brand model.Brand
	if err := database.DB.First(&brand, brandId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, brand)
}

func CreateBrand(c *fiber.Ctx) error {
	_, isAdmin, isStaff, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input := c.Locals("inputCreateBrand").(model.CreateBrandInput)

	var brand model.Brand
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		brand = model.Brand{
			Name:        input.Name,
			Slug:        helper.GenerateUniqueBrandSlug(tx, input.Name),
			Description: input.Description,
			LogoUrl:     input.LogoUrl,
			Country:     input.Country,
			IsActive:    true,
		}
		return tx.Create(&brand).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, brand)
}

func EditBrand(c *fiber.Ctx) error {
	_, isAdmin, isStaff, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	brandId := c.Locals("inputBrandId").(uint)
	input := c.Locals("inputEditBrand").(model.EditBrandInput)

	var brand model.Brand
	if err := database.DB.First(&brand, brandId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if input.Name != nil && *input.Name != brand.Name {
			brand.Name = *input.Name
			brand.Slug = helper.GenerateUniqueBrandSlug(tx, *input.Name)
		}
		if input.Description != nil {
			brand.Description = input.Description
		}
		if input.LogoUrl != nil {
			brand.LogoUrl = input.LogoUrl
		}
		if input.Country != nil {
			brand.Country = input.Country
		}
		if input.IsActive != nil {
			brand.IsActive = *input.IsActive
		}
		return tx.Save(&brand).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, brand)
}

func DeleteBrands(c *fiber.Ctx) error {
	_, isAdmin, _, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input := c.Locals("deleteIds").(model.ArrayId)

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var productCount int64
		tx.Model(&model.Product{}).Where("brand_id IN ?", input.IDs).Count(&productCount)
		if productCount > 0 {
			return errors.New("thương hiệu đang có sản phẩm, không thể xóa")
		}
		return tx.Model(&model.Brand{}).Where("id IN ?", input.IDs).Update("is_active", false).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Xóa thành công"})
}
