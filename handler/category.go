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

// wouldCreateCycle kiểm tra việc gán parentId có tạo vòng trong cây danh mục hay không
func wouldCreateCycle(tx *gorm.DB, categoryId uint, parentId uint) (bool, error) {
	current := parentId
	for current != 0 {
		if current == categoryId {
			return true, nil
		}
		var parent model.Category
		if err := tx.Select("id", "parent_id").First(&parent, current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, errors.New("danh mục cha không tồn tại")
			}
			return false, err
		}
		if parent.ParentId == nil {
			break
		}
		current = *parent.ParentId
	}
	return false, nil
}

func GetCategories(c *fiber.Ctx) error {
	filter := new(model.FilterCategory)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Category{})
	if filter.SearchKey != "" {
		db = db.Where("name ILIKE ?", "%"+filter.SearchKey+"%")
	}
	if filter.ParentId != nil {
		db = db.Where("parent_id = ?", *filter.ParentId)
	}
	if filter.Active != nil {
		db = db.Where("is_active = ?", *filter.Active)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var categories model.Categories
	if err := db.Preload("Parent").Order("name ASC").Find(&categories).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       categories,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// GetCategoryTree danh mục gốc kèm danh mục con đang hoạt động
func GetCategoryTree(c *fiber.Ctx) error {
	var roots model.Categories
	err := database.DB.
		Where("parent_id IS NULL AND is_active = ?", true).
		Preload("Children", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("name ASC")
		}).
		Order("name ASC").
		Find(&roots).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, roots)
}

func GetCategoryBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var category model.Category
	if err := database.DB.Preload("Parent").Where("slug = ? AND is_active = ?", slug, true).First(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, category)
}

func CreateCategory(c *fiber.Ctx) error {
	_, isAdmin, isStaff, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input := c.Locals("inputCreateCategory").(model.CreateCategoryInput)

	var category model.Category
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if input.ParentId != nil {
			var parent model.Category
			if err := tx.First(&parent, *input.ParentId).Error; err != nil {
				return errors.New("danh mục cha không tồn tại")
			}
		}

		category = model.Category{
			Name:        input.Name,
			Slug:        helper.GenerateUniqueCategorySlug(tx, input.Name),
			Description: input.Description,
			ImageUrl:    input.ImageUrl,
			ParentId:    input.ParentId,
			IsActive:    true,
		}
		return tx.Create(&category).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, category)
}

func EditCategory(c *fiber.Ctx) error {
	_, isAdmin, isStaff, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	categoryId := c.Locals("inputCategoryId").(uint)
	input := c.Locals("inputEditCategory").(model.EditCategoryInput)

	var category model.Category
	if err := database.DB.First(&category, categoryId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if input.ParentId != nil {
			if *input.ParentId == category.ID {
				return errors.New("danh mục không thể là cha của chính nó")
			}
			cycle, err := wouldCreateCycle(tx, category.ID, *input.ParentId)
			if err != nil {
				return err
			}
			if cycle {
				return errors.New("không thể gán danh mục cha, sẽ tạo vòng lặp trong cây danh mục")
			}
			category.ParentId = input.ParentId
		}

		if input.Name != nil && *input.Name != category.Name {
			category.Name = *input.Name
			category.Slug = helper.GenerateUniqueCategorySlug(tx, *input.Name)
		}
		if input.Description != nil {
			category.Description = input.Description
		}
		if input.ImageUrl != nil {
			category.ImageUrl = input.ImageUrl
		}
		if input.IsActive != nil {
			category.IsActive = *input.IsActive
		}

		return tx.Save(&category).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, category)
}

func DeleteCategories(c *fiber.Ctx) error {
	_, isAdmin, _, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input := c.Locals("deleteIds").(model.ArrayId)

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var productCount int64
		tx.Model(&model.Product{}).Where("category_id IN ?", input.IDs).Count(&productCount)
		if productCount > 0 {
			return errors.New("danh mục đang có sản phẩm, không thể xóa")
		}

		var childCount int64
		tx.Model(&model.Category{}).Where("parent_id IN ?", input.IDs).Count(&childCount)
		if childCount > 0 {
			return errors.New("danh mục đang có danh mục con, không thể xóa")
		}

		return tx.Model(&model.Category{}).Where("id IN ?", input.IDs).Update("is_active", false).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Xóa thành công"})
}
