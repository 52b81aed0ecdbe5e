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

func GetServices(c *fiber.Ctx) error {
	filter := new(model.FilterService)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.SpaService{})
	if filter.SearchKey != "" {
		db = db.Where("name ILIKE ?", "%"+filter.SearchKey+"%")
	}
	if filter.Active != nil {
		db = db.Where("is_active = ?", *filter.Active)
	} else {
		db = db.Where("is_active = ?", true)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var services model.SpaServices
	err := db.Preload("Pricings", func(db *gorm.DB) *gorm.DB {
		return db.Order("min_weight ASC")
	}).Order("name ASC").Find(&services).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       services,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetServiceBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var service model.SpaService
	err := database.DB.Preload("Pricings", func(db *gorm.DB) *gorm.DB {
		return db.Order("min_weight ASC")
	}).Where("slug = ? AND is_active = ?", slug, true).First(&service).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, service)
}

func CreateService(c *fiber.Ctx) error {
	_, isAdmin, _, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input := c.Locals("inputCreateService").(model.CreateServiceInput)

	var service model.SpaService
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		service = model.SpaService{
			Name:            input.Name,
			Slug:            helper.GenerateUniqueServiceSlug(tx, input.Name),
			Description:     input.Description,
			ImageUrl:        input.ImageUrl,
			DurationMinutes: input.DurationMinutes,
			IsActive:        true,
		}
		if err := tx.Create(&service).Error; err != nil {
			return err
		}

		for _, p := range input.Pricings {
			pricing := model.ServicePricing{
				ServiceId: service.ID,
				MinWeight: p.MinWeight,
				MaxWeight: p.MaxWeight,
				Price:     p.Price,
			}
			if err := tx.Create(&pricing).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	database.DB.Preload("Pricings").First(&service, service.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, service)
}

func EditService(c *fiber.Ctx) error {
	_, isAdmin, _, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	serviceId := c.Locals("inputServiceId").(uint)
	input := c.Locals("inputEditService").(model.EditServiceInput)

	var service model.SpaService
	if err := database.DB.First(&service, serviceId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if input.Name != nil && *input.Name != service.Name {
			service.Name = *input.Name
			service.Slug = helper.GenerateUniqueServiceSlug(tx, *input.Name)
		}
		if input.Description != nil {
			service.Description = input.Description
		}
		if input.ImageUrl != nil {
			service.ImageUrl = input.ImageUrl
		}
		if input.DurationMinutes != nil {
			service.DurationMinutes = *input.DurationMinutes
		}
		if input.IsActive != nil {
			service.IsActive = *input.IsActive
		}
		if err := tx.Save(&service).Error; err != nil {
			return err
		}

		// Có bảng giá mới thì thay toàn bộ
		if len(input.Pricings) > 0 {
			if err := tx.Where("service_id = ?", service.ID).Delete(&model.ServicePricing{}).Error; err != nil {
				return err
			}
			for _, p := range input.Pricings {
				pricing := model.ServicePricing{
					ServiceId: service.ID,
					MinWeight: p.MinWeight,
					MaxWeight: p.MaxWeight,
					Price:     p.Price,
				}
				if err := tx.Create(&pricing).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	database.DB.Preload("Pricings").First(&service, service.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, service)
}

func DeleteServices(c *fiber.Ctx) error {
	_, isAdmin, _, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input := c.Locals("deleteIds").(model.ArrayId)

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var activeCount int64
		tx.Model(&model.Booking{}).
			Where("service_id IN ? AND status IN ?", input.IDs,
				[]string{constants.BOOKING_PENDING, constants.BOOKING_CONFIRMED, constants.BOOKING_IN_PROGRESS}).
			Count(&activeCount)
		if activeCount > 0 {
			return errors.New("dịch vụ đang có lịch hẹn chưa hoàn tất, không thể xóa")
		}
		return tx.Model(&model.SpaService{}).Where("id IN ?", input.IDs).Update("is_active", false).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Xóa thành công"})
}
