package validate

import (
	"errors"
	"petshop_manager/constants"
	"petshop_manager/model"
	"petshop_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreatePet() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePetInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if !utils.IsValidValueOfConstant(input.Type, constants.PET_TYPES) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Loại thú cưng không hợp lệ", errors.New("type invalid"), "type")
		}
		if input.Weight != nil && *input.Weight <= 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Cân nặng phải lớn hơn 0", errors.New("weight invalid"), "weight")
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("inputCreatePet", input)
		return c.Next()
	}
}

func EditPet(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseParamId(c, key)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		var input model.EditPetInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if input.Type != nil && !utils.IsValidValueOfConstant(*input.Type, constants.PET_TYPES) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Loại thú cưng không hợp lệ", errors.New("type invalid"), "type")
		}
		if input.Weight != nil && *input.Weight <= 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Cân nặng phải lớn hơn 0", errors.New("weight invalid"), "weight")
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("inputPetId", id)
		c.Locals("inputEditPet", input)
		return c.Next()
	}
}
