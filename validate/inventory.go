package validate

import (
	"errors"
	"petshop_manager/constants"
	"petshop_manager/model"
	"petshop_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func ImportStock(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseParamId(c, key)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}
		c.Locals("inputVariantId", id)
		return parseBodyAndValidate[model.ImportStockInput](c, "inputImportStock")
	}
}

func AdjustStock(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseParamId(c, key)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		var input model.AdjustStockInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if input.Quantity == 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Số lượng điều chỉnh phải khác 0", errors.New("quantity invalid"), "quantity")
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("inputVariantId", id)
		c.Locals("inputAdjustStock", input)
		return c.Next()
	}
}
