package reports

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MITHLESH24364/fee-management-system-educo/app/config"
	"github.com/MITHLESH24364/fee-management-system-educo/app/routes/auth"
)

func SetupReportRoutes(app *fiber.App) {
	web := app.Group("/reports")
	web.Use(auth.AuthMiddleware)
	web.Get("/", func(c *fiber.Ctx) error {
		return c.Render("reports/index", fiber.Map{
			"Title": "Monthly Reports",
			"User":  c.Locals("user"),
		})
	})

	api := app.Group("/api/reports")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return ListReportsAPI(c, config.GetDB())
	})
	api.Post("/generate", func(c *fiber.Ctx) error {
		return GenerateReportAPI(c, config.GetDB())
	})
	api.Post("/generate-all", func(c *fiber.Ctx) error {
		return GenerateAllReportsAPI(c, config.GetDB())
	})
}
