package billing

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MITHLESH24364/fee-management-system-educo/app/config"
	"github.com/MITHLESH24364/fee-management-system-educo/app/routes/auth"
)

func SetupBillingRoutes(app *fiber.App) {
	web := app.Group("/billing")
	web.Use(auth.AuthMiddleware)
	web.Get("/", func(c *fiber.Ctx) error {
		return c.Render("billing/index", fiber.Map{
			"Title": "Bulk Billing",
			"User":  c.Locals("user"),
		})
	})
	web.Get("/receipt/:id", func(c *fiber.Ctx) error {
		return c.Render("billing/receipt", fiber.Map{
			"Title":     "Receipt",
			"PaymentID": c.Params("id"),
			"User":      c.Locals("user"),
		})
	})

	api := app.Group("/api/billing")
	api.Use(auth.AuthMiddleware)

	api.Post("/preview", func(c *fiber.Ctx) error {
		return PreviewBulkAPI(c, config.GetDB())
	})
	api.Post("/generate", func(c *fiber.Ctx) error {
		return GenerateBulkAPI(c, config.GetDB())
	})
	api.Get("/receipt/:id", func(c *fiber.Ctx) error {
		return GetReceiptAPI(c, config.GetDB())
	})
}
