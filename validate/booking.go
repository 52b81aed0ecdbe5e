package validate

import (
	"errors"
	"petshop_manager/constants"
	"petshop_manager/model"
	"petshop_manager/utils"
	"regexp"
	"time"

	"github.com/gofiber/fiber/v2"
)

var timeHHMM = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func CreateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateBookingInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if input.PetId == nil && input.PetInfo == nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Vui lòng chọn thú cưng hoặc khai thông tin thú cưng", errors.New("petId or petInfo required"), "petId")
		}
		if _, err := time.Parse("2006-01-02", input.BookingDate); err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Ngày hẹn không đúng định dạng YYYY-MM-DD", errors.New("bookingDate invalid"), "bookingDate")
		}
		if !timeHHMM.MatchString(input.StartTime) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Giờ bắt đầu không đúng định dạng HH:MM", errors.New("startTime invalid"), "startTime")
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("inputCreateBooking", input)
		return c.Next()
	}
}

func UpdateBookingStatus(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseParamId(c, key)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}
		c.Locals("inputBookingId", id)
		return parseBodyAndValidate[model.UpdateBookingStatusInput](c, "inputUpdateBookingStatus")
	}
}

func AssignStaff(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseParamId(c, key)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}
		c.Locals("inputBookingId", id)
		return parseBodyAndValidate[model.AssignStaffInput](c, "inputAssignStaff")
	}
}
