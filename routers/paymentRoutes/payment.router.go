package paymentRoutes

import (
	"github.com/gofiber/fiber/v2"

	paymentController "github.com/yashsingh9651/arvan-backend/controllers/payment"
	"github.com/yashsingh9651/arvan-backend/middleware"
	paymentValidator "github.com/yashsingh9651/arvan-backend/validators/payment"
)

func SetupPaymentRoutes(app *fiber.App, ctrl *paymentController.Controller, auth *middleware.Auth) {
	paymentGroup := app.Group("/api/payment", auth.RequireAuth)

	paymentGroup.Post("/order", paymentValidator.CreateOrder(), ctrl.CreateOrder)
	paymentGroup.Post("/verify", paymentValidator.VerifyPayment(), ctrl.VerifyPayment)
	paymentGroup.Post("/", paymentValidator.CreatePayment(), ctrl.CreatePayment)
}
