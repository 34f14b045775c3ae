package testimonialRoutes

import (
	"github.com/gofiber/fiber/v2"

	testimonialController "github.com/yashsingh9651/arvan-backend/controllers/testimonial"
	"github.com/yashsingh9651/arvan-backend/middleware"
	testimonialValidator "github.com/yashsingh9651/arvan-backend/validators/testimonial"
)

func SetupTestimonialRoutes(app *fiber.App, ctrl *testimonialController.Controller, auth *middleware.Auth) {
	testimonialGroup := app.Group("/api/testimonials")
	testimonialGroup.Get("/", ctrl.GetTestimonials)
	testimonialGroup.Post("/", testimonialValidator.CreateTestimonial(), ctrl.CreateTestimonial)

	ratingGroup := app.Group("/api/ratings")
	ratingGroup.Get("/", ctrl.GetRatings)
	ratingGroup.Post("/", auth.RequireAuth, testimonialValidator.CreateRating(), ctrl.CreateRating)
}
