package handler

import (
	"errors"
	"petshop_manager/constants"
	"petshop_manager/database"
	"petshop_manager/helper"
	"petshop_manager/model"
	"petshop_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func parseBirthDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, errors.New("ngày sinh không đúng định dạng YYYY-MM-DD")
	}
	return &t, nil
}

func GetPets(c *fiber.Ctx) error {
	claim, isAdmin, isStaff, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("no user"))
	}

	filter := new(model.FilterPet)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Pet{}).Where("is_active = ?", true)

	// Khách hàng chỉ xem được thú cưng của mình
	if !isAdmin && !isStaff {
		db = db.Where("owner_id = ?", claim.UserId)
	} else if filter.OwnerId != nil {
		db = db.Where("owner_id = ?", *filter.OwnerId)
	}

	if filter.SearchKey != "" {
		db = db.Where("name ILIKE ?", "%"+filter.SearchKey+"%")
	}
	if filter.Type != "" {
		db = db.Where("type = ?", filter.Type)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var pets model.Pets
	if err := db.Preload("Owner").Order("created_at DESC").Find(&pets).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       pets,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetPetById(c *fiber.Ctx) error {
	claim, isAdmin, isStaff, _ := helper.GetInfoUserFromToken(c)

	petId := c.Locals("inputId").(int)
	var pet model.Pet
	if err := database.DB.Preload("Owner").First(&pet, petId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	if !isAdmin && !isStaff && pet.OwnerId != claim.UserId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Bạn không có quyền xem thú cưng này", errors.New("not owner"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, pet)
}

func CreatePet(c *fiber.Ctx) error {
	claim, _, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("no user"))
	}

	input := c.Locals("inputCreatePet").(model.CreatePetInput)

	birthDate, err := parseBirthDate(input.BirthDate)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, err.Error(), err, "birthDate")
	}

	var pet model.Pet
	copier.Copy(&pet, &input)
	pet.OwnerId = claim.UserId
	pet.BirthDate = birthDate
	pet.IsActive = true

	if err := database.DB.Create(&pet).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, pet)
}

func EditPet(c *fiber.Ctx) error {
	claim, isAdmin, isStaff, _ := helper.GetInfoUserFromToken(c)

	petId := c.Locals("inputPetId").(uint)
	input := c.Locals("inputEditPet").(model.EditPetInput)

	var pet model.Pet
	if err := database.DB.First(&pet, petId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	if !isAdmin && !isStaff && pet.OwnerId != claim.UserId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Bạn không có quyền sửa thú cưng này", errors.New("not owner"))
	}

	if input.Name != nil {
		pet.Name = *input.Name
	}
	if input.Type != nil {
		pet.Type = *input.Type
	}
	if input.Breed != nil {
		pet.Breed = input.Breed
	}
	if input.Gender != nil {
		pet.Gender = input.Gender
	}
	if input.BirthDate != nil {
		birthDate, err := parseBirthDate(input.BirthDate)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, err.Error(), err, "birthDate")
		}
		pet.BirthDate = birthDate
	}
	if input.Weight != nil {
		pet.Weight = input.Weight
	}
	if input.ImageUrl != nil {
		pet.ImageUrl = input.ImageUrl
	}
	if input.Note != nil {
		pet.Note = input.Note
	}

	if err := database.DB.Save(&pet).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, pet)
}

// DeletePet ẩn thú cưng, không xóa cứng vì lịch hẹn cũ còn tham chiếu
func DeletePet(c *fiber.Ctx) error {
	claim, isAdmin, _, _ := helper.GetInfoUserFromToken(c)

	petId := c.Locals("inputId").(int)
	var pet model.Pet
	if err := database.DB.First(&pet, petId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	if !isAdmin && pet.OwnerId != claim.UserId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Bạn không có quyền xóa thú cưng này", errors.New("not owner"))
	}

	if err := database.DB.Model(&pet).Update("is_active", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Xóa thất bại", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Xóa thành công"})
}
