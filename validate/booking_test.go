package validate

import (
	"bytes"
	"net/http/httptest"
	"petshop_manager/model"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestCreateBookingValidatorWithInlinePetInfo(t *testing.T) {
	app := fiber.New()
	var captured model.CreateBookingInput
	app.Post("/booking", CreateBooking(), func(c *fiber.Ctx) error {
		captured = c.Locals("inputCreateBooking").(model.CreateBookingInput)
		return c.SendStatus(fiber.StatusOK)
	})

	body := []byte(`{
		"petInfo": {"name": "Mực", "type": "IGUANA", "weight": 4.5},
		"serviceId": 2,
		"bookingDate": "2026-10-01",
		"startTime": "09:00"
	}`)
	req := httptest.NewRequest("POST", "/booking", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Nil(t, captured.PetId)
	assert.NotNil(t, captured.PetInfo)
	assert.Equal(t, "Mực", captured.PetInfo.Name)
	assert.NotNil(t, captured.PetInfo.Weight)
	assert.Equal(t, 4.5, *captured.PetInfo.Weight)
}

func TestCreateBookingValidatorRequiresPetIdOrPetInfo(t *testing.T) {
	app := fiber.New()
	app.Post("/booking", CreateBooking(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	body := []byte(`{
		"serviceId": 2,
		"bookingDate": "2026-10-01",
		"startTime": "09:00"
	}`)
	req := httptest.NewRequest("POST", "/booking", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateBookingValidatorRejectsPetInfoWithoutWeight(t *testing.T) {
	app := fiber.New()
	app.Post("/booking", CreateBooking(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	// thiếu cân nặng thì không chốt được giá dịch vụ
	body := []byte(`{
		"petInfo": {"name": "Mực"},
		"serviceId": 2,
		"bookingDate": "2026-10-01",
		"startTime": "09:00"
	}`)
	req := httptest.NewRequest("POST", "/booking", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
