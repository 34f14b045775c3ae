package emailRoutes

import (
	"github.com/gofiber/fiber/v2"

	emailController "github.com/yashsingh9651/arvan-backend/controllers/email"
	emailValidator "github.com/yashsingh9651/arvan-backend/validators/email"
)

func SetupEmailRoutes(app *fiber.App, ctrl *emailController.Controller) {
	app.Post("/api/send-email", emailValidator.SendEmail(), ctrl.SendContactForm)
}
