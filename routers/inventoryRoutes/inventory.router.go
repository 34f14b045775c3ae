package inventoryRoutes

import (
	"github.com/gofiber/fiber/v2"

	inventoryController "github.com/yashsingh9651/arvan-backend/controllers/inventory"
	"github.com/yashsingh9651/arvan-backend/middleware"
)

func SetupInventoryRoutes(app *fiber.App, ctrl *inventoryController.Controller, auth *middleware.Auth) {
	inventoryGroup := app.Group("/api/inventory", auth.RequireAuth, auth.RequireAdmin)

	inventoryGroup.Get("/overview", ctrl.GetOverview)
	inventoryGroup.Get("/", ctrl.GetInventory)
}
