package validate

import (
	"petshop_manager/constants"
	"petshop_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func ProductIdParam(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseParamId(c, key)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}
		c.Locals("inputProductId", id)
		return c.Next()
	}
}

func SetPrimaryImage(productKey, imageKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		productId, err := parseParamId(c, productKey)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}
		imageId, err := parseParamId(c, imageKey)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}
		c.Locals("inputProductId", productId)
		c.Locals("inputImageId", imageId)
		return c.Next()
	}
}
