package validate

import (
	"errors"
	"petshop_manager/constants"
	"petshop_manager/model"
	"petshop_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// checkPricings các khung cân nặng phải tăng dần và không chồng lấn
func checkPricings(pricings []model.ServicePricingInput) error {
	for i, p := range pricings {
		if p.MaxWeight <= p.MinWeight {
			return errors.New("khung cân nặng không hợp lệ")
		}
		if i > 0 && p.MinWeight < pricings[i-1].MaxWeight {
			return errors.New("các khung cân nặng bị chồng lấn")
		}
	}
	return nil
}

func CreateService() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateServiceInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := checkPricings(input.Pricings); err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, err.Error(), err, "pricings")
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("inputCreateService", input)
		return c.Next()
	}
}

func EditService(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseParamId(c, key)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		var input model.EditServiceInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if len(input.Pricings) > 0 {
			if err := checkPricings(input.Pricings); err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, err.Error(), err, "pricings")
			}
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("inputServiceId", id)
		c.Locals("inputEditService", input)
		return c.Next()
	}
}
