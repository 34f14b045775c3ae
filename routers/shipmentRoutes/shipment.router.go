package shipmentRoutes

import (
	"github.com/gofiber/fiber/v2"

	shipmentController "github.com/yashsingh9651/arvan-backend/controllers/shipment"
	"github.com/yashsingh9651/arvan-backend/middleware"
	shipmentValidator "github.com/yashsingh9651/arvan-backend/validators/shipment"
)

func SetupShipmentRoutes(app *fiber.App, ctrl *shipmentController.Controller, auth *middleware.Auth) {
	app.Post("/api/shiprocket", auth.RequireAuth, auth.RequireAdmin, shipmentValidator.CreateShipment(), ctrl.CreateShipment)

	// Courier callback, authenticated by the carrier not by a session
	app.Post("/api/webhook", ctrl.Webhook)
}
