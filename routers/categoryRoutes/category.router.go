package categoryRoutes

import (
	"github.com/gofiber/fiber/v2"

	categoryController "github.com/yashsingh9651/arvan-backend/controllers/category"
	"github.com/yashsingh9651/arvan-backend/middleware"
	categoryValidator "github.com/yashsingh9651/arvan-backend/validators/category"
)

func SetupCategoryRoutes(app *fiber.App, ctrl *categoryController.Controller, auth *middleware.Auth) {
	categoryGroup := app.Group("/api/category")

	categoryGroup.Get("/", ctrl.GetAllCategories)
	categoryGroup.Get("/:id", ctrl.GetCategory)

	admin := categoryGroup.Group("", auth.RequireAuth, auth.RequireAdmin)
	admin.Post("/", categoryValidator.Category(), ctrl.AddCategory)
	admin.Put("/:id", categoryValidator.Category(), ctrl.UpdateCategory)
	admin.Delete("/:id", ctrl.DeleteCategory)
}
