package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	authController "github.com/yashsingh9651/arvan-backend/controllers/auth"
	authValidator "github.com/yashsingh9651/arvan-backend/validators/auth"
)

func SetupAuthRoutes(app *fiber.App, ctrl *authController.Controller) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/signup", authValidator.Signup(), ctrl.Signup)
	authGroup.Post("/signin", authValidator.Signin(), ctrl.Signin)
	authGroup.Post("/send-otp", authValidator.SendOTP(), ctrl.SendOTP)
	authGroup.Post("/verify-otp", authValidator.VerifyOTP(), ctrl.VerifyOTP)
	authGroup.Post("/reset-password", authValidator.ResetPassword(), ctrl.ResetPassword)
}
