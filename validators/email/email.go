package emailValidator

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yashsingh9651/arvan-backend/validators"
)

type ContactFormRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Message string `json:"message" validate:"required"`
}

func SendEmail() fiber.Handler {
	return func(c *fiber.Ctx) error { return validators.Body[ContactFormRequest](c, "validatedContactForm") }
}
