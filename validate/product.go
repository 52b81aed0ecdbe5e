package validate

import (
	"errors"
	"petshop_manager/constants"
	"petshop_manager/model"
	"petshop_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateProduct() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateProductInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if input.SalePrice != nil && *input.SalePrice >= input.Price {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Giá khuyến mãi phải nhỏ hơn giá gốc", errors.New("salePrice invalid"), "salePrice")
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("inputCreateProduct", input)
		return c.Next()
	}
}

func EditProduct(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseParamId(c, key)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		var input model.EditProductInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if input.Price != nil && *input.Price <= 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Giá phải lớn hơn 0", errors.New("price invalid"), "price")
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("inputProductId", id)
		c.Locals("inputEditProduct", input)
		return c.Next()
	}
}

func CreateVariant(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseParamId(c, key)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}
		c.Locals("inputProductId", id)
		return parseBodyAndValidate[model.CreateVariantInput](c, "inputCreateVariant")
	}
}
