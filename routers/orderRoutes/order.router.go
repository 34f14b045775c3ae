package orderRoutes

import (
	"github.com/gofiber/fiber/v2"

	orderController "github.com/yashsingh9651/arvan-backend/controllers/order"
	"github.com/yashsingh9651/arvan-backend/middleware"
	orderValidator "github.com/yashsingh9651/arvan-backend/validators/order"
)

func SetupOrderRoutes(app *fiber.App, ctrl *orderController.Controller, auth *middleware.Auth) {
	orderGroup := app.Group("/api/orders", auth.RequireAuth)

	orderGroup.Post("/", orderValidator.CreateOrder(), ctrl.CreateOrder)
	orderGroup.Get("/", ctrl.GetAllOrders)
	orderGroup.Get("/:id", ctrl.GetOrderByID)

	orderGroup.Patch("/:id/status", auth.RequireAdmin, orderValidator.UpdateStatus(), ctrl.UpdateStatus)
	orderGroup.Patch("/:id/fulfillment", auth.RequireAdmin, orderValidator.UpdateFulfillment(), ctrl.UpdateFulfillment)
	orderGroup.Delete("/:id", auth.RequireAdmin, ctrl.DeleteOrder)
}
