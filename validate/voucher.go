package validate

import (
	"errors"
	"petshop_manager/constants"
	"petshop_manager/model"
	"petshop_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

func CreateVoucher() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateVoucherInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if input.DiscountType != constants.DISCOUNT_PERCENTAGE && input.DiscountType != constants.DISCOUNT_FIXED_AMOUNT {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Loại giảm giá không hợp lệ", errors.New("discountType invalid"), "discountType")
		}
		if input.DiscountType == constants.DISCOUNT_PERCENTAGE && input.DiscountValue > 100 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Phần trăm giảm không được vượt quá 100", errors.New("discountValue invalid"), "discountValue")
		}
		if input.ApplyTo != "" &&
			input.ApplyTo != constants.APPLY_TO_ALL &&
			input.ApplyTo != constants.APPLY_TO_PRODUCTS &&
			input.ApplyTo != constants.APPLY_TO_SERVICES {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Phạm vi áp dụng không hợp lệ", errors.New("applyTo invalid"), "applyTo")
		}

		startDate, err := time.Parse("2006-01-02", input.StartDate)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Ngày bắt đầu không đúng định dạng YYYY-MM-DD", err, "startDate")
		}
		endDate, err := time.Parse("2006-01-02", input.EndDate)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Ngày kết thúc không đúng định dạng YYYY-MM-DD", err, "endDate")
		}
		if endDate.Before(startDate) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Ngày kết thúc phải sau ngày bắt đầu", errors.New("endDate invalid"), "endDate")
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("inputCreateVoucher", input)
		return c.Next()
	}
}

func EditVoucher(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseParamId(c, key)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}
		c.Locals("inputVoucherId", id)
		return parseBodyAndValidate[model.EditVoucherInput](c, "inputEditVoucher")
	}
}

func ApplyVoucher() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return parseBodyAndValidate[model.ApplyVoucherInput](c, "inputApplyVoucher")
	}
}
