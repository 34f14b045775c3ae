package analyticsRoutes

import (
	"github.com/gofiber/fiber/v2"

	analyticsController "github.com/yashsingh9651/arvan-backend/controllers/analytics"
	"github.com/yashsingh9651/arvan-backend/middleware"
)

func SetupAnalyticsRoutes(app *fiber.App, ctrl *analyticsController.Controller, auth *middleware.Auth) {
	analyticsGroup := app.Group("/api/analytics", auth.RequireAuth, auth.RequireAdmin)

	analyticsGroup.Get("/top-products", ctrl.GetTopProducts)
	analyticsGroup.Get("/sales-metrics", ctrl.GetSalesMetrics)
	analyticsGroup.Get("/performance", ctrl.GetPerformance)
}
