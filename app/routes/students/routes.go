package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MITHLESH24364/fee-management-system-educo/app/config"
	"github.com/MITHLESH24364/fee-management-system-educo/app/routes/auth"
)

func SetupStudentRoutes(app *fiber.App) {
	web := app.Group("/students")
	web.Use(auth.AuthMiddleware)
	web.Get("/", func(c *fiber.Ctx) error {
		return c.Render("students/index", fiber.Map{
			"Title": "Students",
			"User":  c.Locals("user"),
		})
	})

	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetStudentsAPI(c, config.GetDB())
	})
	api.Post("/", func(c *fiber.Ctx) error {
		return CreateStudentAPI(c, config.GetDB())
	})
	api.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateStudentAPI(c, config.GetDB())
	})
	api.Delete("/:id", func(c *fiber.Ctx) error {
		return DeactivateStudentAPI(c, config.GetDB())
	})
}
