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
)

func GetUsers(c *fiber.Ctx) error {
	_, isAdmin, isStaff, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	filter := new(model.FilterUser)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.User{})
	if filter.SearchKey != "" {
		searchKey := "%" + filter.SearchKey + "%"
		db = db.Where("full_name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", searchKey, searchKey, searchKey)
	}
	if filter.Role != "" {
		db = db.Where("role = ?", filter.Role)
	}
	if filter.Active != nil {
		db = db.Where("is_active = ?", *filter.Active)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var users model.Users
	if err := db.Order("created_at DESC").Find(&users).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       users,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetUserById(c *fiber.Ctx) error {
	claim, isAdmin, isStaff, _ := helper.GetInfoUserFromToken(c)

	userId := uint(c.Locals("inputId").(int))
	if !isAdmin && !isStaff && claim.UserId != userId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not owner"))
	}

	var user model.User
	if err := database.DB.First(&user, userId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func CreateUser(c *fiber.Ctx) error {
	_, isAdmin, _, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input := c.Locals("inputCreateUser").(model.CreateUserInput)

	db := database.DB
	var existed model.User
	if err := db.Where("email = ?", input.Email).First(&existed).Error; err == nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.EMAIL_EXISTS, errors.New("email exists"), "email")
	}

	hashed, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	var user model.User
	copier.Copy(&user, &input)
	user.Password = hashed
	user.IsActive = true

	if err := db.Create(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, user)
}

func EditUser(c *fiber.Ctx) error {
	claim, isAdmin, _, _ := helper.GetInfoUserFromToken(c)

	userId := c.Locals("inputUserId").(uint)
	if !isAdmin && claim.UserId != userId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not owner"))
	}

	input, ok := c.Locals("inputEditUser").(model.EditUserInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("locals missing"))
	}

	var user model.User
	if err := database.DB.First(&user, userId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Address != nil {
		user.Address = input.Address
	}
	if input.Gender != nil {
		user.Gender = input.Gender
	}
	if input.AvatarUrl != nil {
		user.AvatarUrl = input.AvatarUrl
	}

	if err := database.DB.Save(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

// ActiveUser khóa/mở khóa tài khoản
func ActiveUser(c *fiber.Ctx) error {
	claim, isAdmin, _, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	userId := uint(c.Locals("inputId").(int))
	if claim.UserId == userId {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Không thể tự khóa tài khoản của mình", errors.New("self lock"))
	}

	var user model.User
	if err := database.DB.First(&user, userId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	user.IsActive = !user.IsActive
	if err := database.DB.Save(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"id":       user.ID,
		"isActive": user.IsActive,
	})
}
