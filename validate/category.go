package validate

import (
	"petshop_manager/constants"
	"petshop_manager/model"
	"petshop_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return parseBodyAndValidate[model.CreateCategoryInput](c, "inputCreateCategory")
	}
}

func EditCategory(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseParamId(c, key)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}
		c.Locals("inputCategoryId", id)
		return parseBodyAndValidate[model.EditCategoryInput](c, "inputEditCategory")
	}
}
