package uploadRoutes

import (
	"github.com/gofiber/fiber/v2"

	uploadController "github.com/yashsingh9651/arvan-backend/controllers/upload"
	"github.com/yashsingh9651/arvan-backend/middleware"
)

func SetupUploadRoutes(app *fiber.App, ctrl *uploadController.Controller, auth *middleware.Auth) {
	uploadGroup := app.Group("/api/upload", auth.RequireAuth, auth.RequireAdmin)

	uploadGroup.Post("/", ctrl.UploadSingle)
	uploadGroup.Post("/multiple", ctrl.UploadMultiple)
}
