package paymentValidator

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yashsingh9651/arvan-backend/validators"
)

type CreateOrderRequest struct {
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Currency string  `json:"currency" validate:"required,len=3"`
	Receipt  string  `json:"receipt"`
}

type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
}

type CreatePaymentRequest struct {
	OrderID  string  `json:"order_id" validate:"required"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Currency string  `json:"currency" validate:"required,len=3"`
}

func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error { return validators.Body[CreateOrderRequest](c, "validatedPaymentOrder") }
}

func VerifyPayment() fiber.Handler {
	return func(c *fiber.Ctx) error { return validators.Body[VerifyPaymentRequest](c, "validatedVerify") }
}

func CreatePayment() fiber.Handler {
	return func(c *fiber.Ctx) error { return validators.Body[CreatePaymentRequest](c, "validatedPayment") }
}
