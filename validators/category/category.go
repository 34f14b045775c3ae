package categoryValidator

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yashsingh9651/arvan-backend/validators"
)

type CategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func Category() fiber.Handler {
	return func(c *fiber.Ctx) error { return validators.Body[CategoryRequest](c, "validatedCategory") }
}
