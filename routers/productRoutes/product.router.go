package productRoutes

import (
	"github.com/gofiber/fiber/v2"

	productController "github.com/yashsingh9651/arvan-backend/controllers/product"
	"github.com/yashsingh9651/arvan-backend/middleware"
	productValidator "github.com/yashsingh9651/arvan-backend/validators/product"
)

func SetupProductRoutes(app *fiber.App, ctrl *productController.Controller, auth *middleware.Auth) {
	productGroup := app.Group("/api/products")

	// Storefront reads
	productGroup.Get("/:id", ctrl.GetProduct)
	productGroup.Get("/", ctrl.GetAllProducts)

	// Catalog management (admin)
	admin := productGroup.Group("", auth.RequireAuth, auth.RequireAdmin)
	admin.Post("/", productValidator.AddProduct(), ctrl.AddProduct)
	admin.Post("/color", productValidator.AddColor(), ctrl.AddColor)
	admin.Post("/sizes", productValidator.AddSizes(), ctrl.AddSizes)
	admin.Put("/stock", productValidator.UpdateStock(), ctrl.UpdateStock)
	admin.Put("/status/:id", productValidator.UpdateStatus(), ctrl.UpdateStatus)
	admin.Put("/:id", productValidator.AddProduct(), ctrl.UpdateProduct)
	admin.Delete("/color/:id", ctrl.DeleteColor)
	admin.Delete("/variant/:id", ctrl.DeleteVariant)
	admin.Delete("/asset/:id", ctrl.DeleteAsset)
	admin.Delete("/:id", ctrl.DeleteProduct)
}
