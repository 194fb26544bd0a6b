package payments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MITHLESH24364/fee-management-system-educo/app/config"
	"github.com/MITHLESH24364/fee-management-system-educo/app/routes/auth"
)

func SetupPaymentRoutes(app *fiber.App) {
	web := app.Group("/payments")
	web.Use(auth.AuthMiddleware)
	web.Get("/", func(c *fiber.Ctx) error {
		return c.Render("payments/index", fiber.Map{
			"Title": "Fee Collection",
			"User":  c.Locals("user"),
		})
	})

	api := app.Group("/api/payments")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetPaymentsAPI(c, config.GetDB())
	})
	api.Post("/", func(c *fiber.Ctx) error {
		return RecordPaymentAPI(c, config.GetDB())
	})
	api.Get("/history/:id", func(c *fiber.Ctx) error {
		return GetHistoryAPI(c, config.GetDB())
	})
}
