package main

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"github.com/MITHLESH24364/fee-management-system-educo/app/config"
	"github.com/MITHLESH24364/fee-management-system-educo/app/database"
	"github.com/MITHLESH24364/fee-management-system-educo/app/routes/auth"
	"github.com/MITHLESH24364/fee-management-system-educo/app/routes/billing"
	"github.com/MITHLESH24364/fee-management-system-educo/app/routes/dashboard"
	"github.com/MITHLESH24364/fee-management-system-educo/app/routes/payments"
	"github.com/MITHLESH24364/fee-management-system-educo/app/routes/reports"
	"github.com/MITHLESH24364/fee-management-system-educo/app/routes/students"
	"github.com/MITHLESH24364/fee-management-system-educo/app/services"
)

// customErrorHandler renders template error pages for web requests and JSON
// for API requests
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title": "Page Not Found",
		})
	case 401:
		return c.Redirect("/auth/login")
	case 500:
		return c.Status(500).Render("500", fiber.Map{
			"Title":        "Server Error",
			"ErrorCode":    "500",
			"ErrorTitle":   "Internal Server Error",
			"ErrorMessage": "We're experiencing technical difficulties. Please try again later.",
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	// Ledger dates resolve against Nepal time
	loc, err := time.LoadLocation("Asia/Kathmandu")
	if err != nil {
		log.Printf("Warning: Failed to load Asia/Kathmandu location, falling back to UTC+5:45: %v", err)
		time.Local = time.FixedZone("NPT", 5*60*60+45*60)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	// Load config and connect to the database
	config.Load()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background report scheduler
	services.StartScheduler(config.GetDB())

	// Initialize template engine
	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Static files
	app.Static("/static", "./static")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/auth/login")
	})

	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	students.SetupStudentRoutes(app)
	payments.SetupPaymentRoutes(app)
	billing.SetupBillingRoutes(app)
	reports.SetupReportRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	port := config.GetPort()
	log.Println("Server starting on :" + port)
	log.Fatal(app.Listen(":" + port))
}
