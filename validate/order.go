package validate

import (
	"errors"
	"petshop_manager/constants"
	"petshop_manager/model"
	"petshop_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateOrderInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if !utils.IsValidValueOfConstant(input.PaymentMethod, constants.PAYMENT_METHODS) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Phương thức thanh toán không hợp lệ", errors.New("paymentMethod invalid"), "paymentMethod")
		}
		if !isValidPhoneVN(input.ReceiverPhone) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Số điện thoại người nhận không hợp lệ", errors.New("receiverPhone invalid"), "receiverPhone")
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("inputCreateOrder", input)
		return c.Next()
	}
}

func UpdateOrderStatus(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseParamId(c, key)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}
		c.Locals("inputOrderId", id)
		return parseBodyAndValidate[model.UpdateOrderStatusInput](c, "inputUpdateOrderStatus")
	}
}

func UpdatePaymentStatus(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseParamId(c, key)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		var input model.UpdatePaymentStatusInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if !utils.IsValidValueOfConstant(input.PaymentStatus, constants.PAYMENT_STATUSES) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Trạng thái thanh toán không hợp lệ", errors.New("paymentStatus invalid"), "paymentStatus")
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("inputOrderId", id)
		c.Locals("inputUpdatePaymentStatus", input)
		return c.Next()
	}
}

func CancelOrder(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseParamId(c, key)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}
		c.Locals("inputOrderId", id)
		return parseBodyAndValidate[model.CancelOrderInput](c, "inputCancelOrder")
	}
}
