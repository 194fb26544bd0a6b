package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MITHLESH24364/fee-management-system-educo/app/config"
	"github.com/MITHLESH24364/fee-management-system-educo/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/dashboard", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		return c.Render("dashboard/index", fiber.Map{
			"Title": "Dashboard",
			"User":  c.Locals("user"),
		})
	})

	app.Get("/api/dashboard/stats", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		return GetStatsAPI(c, config.GetDB())
	})
}
