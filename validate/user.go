package validate

import (
	"errors"
	"petshop_manager/constants"
	"petshop_manager/model"
	"petshop_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateUserInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if !utils.IsValidValueOfConstant(input.Role, constants.ROLE) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ROLE_NOT_EXISTS, errors.New("role invalid"), "role")
		}
		if !isValidPhoneVN(input.Phone) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Số điện thoại không hợp lệ", errors.New("phone invalid"), "phone")
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("inputCreateUser", input)
		return c.Next()
	}
}

func EditUser(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseParamId(c, key)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}
		c.Locals("inputUserId", id)
		return parseBodyAndValidate[model.EditUserInput](c, "inputEditUser")
	}
}
