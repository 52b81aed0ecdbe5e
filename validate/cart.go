package validate

import (
	"petshop_manager/constants"
	"petshop_manager/model"
	"petshop_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func AddToCart() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return parseBodyAndValidate[model.AddToCartInput](c, "inputAddToCart")
	}
}

func UpdateCartItem(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseParamId(c, key)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}
		c.Locals("inputCartItemId", id)
		return parseBodyAndValidate[model.UpdateCartItemInput](c, "inputUpdateCartItem")
	}
}
