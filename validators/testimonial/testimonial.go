package testimonialValidator

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yashsingh9651/arvan-backend/validators"
)

type CreateTestimonialRequest struct {
	Username    string `json:"username" validate:"required"`
	Role        string `json:"role" validate:"required"`
	Description string `json:"description" validate:"required"`
	Image       string `json:"image" validate:"required"`
	Ratings     int    `json:"ratings" validate:"required,min=1,max=5"`
}

type CreateRatingRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	ProductID   uint   `json:"productId" validate:"required"`
}

func CreateTestimonial() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return validators.Body[CreateTestimonialRequest](c, "validatedTestimonial")
	}
}

func CreateRating() fiber.Handler {
	return func(c *fiber.Ctx) error { return validators.Body[CreateRatingRequest](c, "validatedRating") }
}
