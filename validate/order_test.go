package validate

import (
	"bytes"
	"net/http/httptest"
	"petshop_manager/model"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestCreateOrderValidatorWithExplicitItems(t *testing.T) {
	app := fiber.New()
	var captured model.CreateOrderInput
	app.Post("/order", CreateOrder(), func(c *fiber.Ctx) error {
		captured = c.Locals("inputCreateOrder").(model.CreateOrderInput)
		return c.SendStatus(fiber.StatusOK)
	})

	body := []byte(`{
		"paymentMethod": "COD",
		"receiverName": "Nguyễn Văn A",
		"receiverPhone": "0912345678",
		"shippingAddress": "12 Lý Thường Kiệt, Hà Nội",
		"items": [
			{"productId": 3, "quantity": 2},
			{"productId": 7, "variantId": 15, "quantity": 1}
		]
	}`)
	req := httptest.NewRequest("POST", "/order", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Len(t, captured.Items, 2)
	assert.Equal(t, uint(3), captured.Items[0].ProductId)
	assert.Nil(t, captured.Items[0].VariantId)
	assert.Equal(t, 2, captured.Items[0].Quantity)
	assert.NotNil(t, captured.Items[1].VariantId)
	assert.Equal(t, uint(15), *captured.Items[1].VariantId)
}

func TestCreateOrderValidatorRejectsZeroQuantityItem(t *testing.T) {
	app := fiber.New()
	app.Post("/order", CreateOrder(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	body := []byte(`{
		"paymentMethod": "COD",
		"receiverName": "Nguyễn Văn A",
		"receiverPhone": "0912345678",
		"shippingAddress": "12 Lý Thường Kiệt, Hà Nội",
		"items": [{"productId": 3, "quantity": 0}]
	}`)
	req := httptest.NewRequest("POST", "/order", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdatePaymentStatusValidator(t *testing.T) {
	app := fiber.New()
	var capturedId uint
	var captured model.UpdatePaymentStatusInput
	app.Patch("/order/:orderId/payment-status", UpdatePaymentStatus("orderId"), func(c *fiber.Ctx) error {
		capturedId = c.Locals("inputOrderId").(uint)
		captured = c.Locals("inputUpdatePaymentStatus").(model.UpdatePaymentStatusInput)
		return c.SendStatus(fiber.StatusOK)
	})

	body := []byte(`{"paymentStatus": "PAID", "transactionId": "VNP123456"}`)
	req := httptest.NewRequest("PATCH", "/order/42/payment-status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, uint(42), capturedId)
	assert.Equal(t, "PAID", captured.PaymentStatus)
	assert.NotNil(t, captured.TransactionId)
	assert.Equal(t, "VNP123456", *captured.TransactionId)

	// trạng thái lạ thì chặn từ validator
	body = []byte(`{"paymentStatus": "SETTLED"}`)
	req = httptest.NewRequest("PATCH", "/order/42/payment-status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
