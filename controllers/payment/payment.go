package paymentController

import (
	"math"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/yashsingh9651/arvan-backend/common"
	"github.com/yashsingh9651/arvan-backend/utils"
	paymentValidator "github.com/yashsingh9651/arvan-backend/validators/payment"
)

type Controller struct {
	razorpay *utils.RazorpayClient
}

func New(razorpay *utils.RazorpayClient) *Controller {
	return &Controller{razorpay: razorpay}
}

// paiseAmount converts a rupee amount to integer paise. Rounded, not
// truncated: 19.99*100 is 1998.999... in float64.
func paiseAmount(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CreateOrder registers a payable order with the gateway. The amount arrives
// in rupees and is converted to paise.
func (ctrl *Controller) CreateOrder(c *fiber.Ctx) error {
	reqData := c.Locals("validatedPaymentOrder").(*paymentValidator.CreateOrderRequest)

	receipt := reqData.Receipt
	if receipt == "" {
		receipt = uuid.NewString()
	}

	order, err := ctrl.razorpay.CreateOrder(paiseAmount(reqData.Amount), reqData.Currency, receipt)
	if err != nil {
		return common.NewInternal("Failed to create payment order!", err)
	}

	return common.JsonResponse(c, fiber.StatusCreated, true, "Payment order created.", order)
}

// VerifyPayment checks the checkout callback signature
func (ctrl *Controller) VerifyPayment(c *fiber.Ctx) error {
	reqData := c.Locals("validatedVerify").(*paymentValidator.VerifyPaymentRequest)

	if !ctrl.razorpay.VerifySignature(reqData.RazorpayOrderID, reqData.RazorpayPaymentID, reqData.RazorpaySignature) {
		return common.NewInvalidToken()
	}

	return common.JsonResponse(c, fiber.StatusOK, true, "Payment verified successfully.", nil)
}

// CreatePayment initiates a payment for an existing store order
func (ctrl *Controller) CreatePayment(c *fiber.Ctx) error {
	reqData := c.Locals("validatedPayment").(*paymentValidator.CreatePaymentRequest)

	payment, err := ctrl.razorpay.CreateOrder(paiseAmount(reqData.Amount), reqData.Currency, reqData.OrderID)
	if err != nil {
		return common.NewInternal("Failed to initiate payment!", err)
	}

	return common.JsonResponse(c, fiber.StatusCreated, true, "Payment initiated.", payment)
}
