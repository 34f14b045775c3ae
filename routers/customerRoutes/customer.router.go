package customerRoutes

import (
	"github.com/gofiber/fiber/v2"

	customerController "github.com/yashsingh9651/arvan-backend/controllers/customer"
	"github.com/yashsingh9651/arvan-backend/middleware"
	customerValidator "github.com/yashsingh9651/arvan-backend/validators/customer"
)

func SetupCustomerRoutes(app *fiber.App, ctrl *customerController.Controller, auth *middleware.Auth) {
	customerGroup := app.Group("/api/customers", auth.RequireAuth)

	customerGroup.Get("/allcustomers", auth.RequireAdmin, ctrl.AllCustomers)
	customerGroup.Put("/", customerValidator.UpdateCustomer(), ctrl.UpdateCustomer)
	customerGroup.Post("/address", customerValidator.AddAddress(), ctrl.AddAddress)
	customerGroup.Get("/address", ctrl.ListAddresses)
	customerGroup.Delete("/address/:id", ctrl.DeleteAddress)
}
