package reports

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/MITHLESH24364/fee-management-system-educo/app/database"
	"github.com/MITHLESH24364/fee-management-system-educo/app/models"
	"github.com/MITHLESH24364/fee-management-system-educo/app/nepali"
	"github.com/MITHLESH24364/fee-management-system-educo/app/services"
)

// ListReportsAPI returns all cached monthly reports, newest year first.
func ListReportsAPI(c *fiber.Ctx, db *sql.DB) error {
	reports, err := database.ListReports(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch reports")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    reports,
		"count":   len(reports),
	})
}

// GenerateReportAPI recomputes and caches the report for one period.
func GenerateReportAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		Month models.Month `json:"month"`
		Year  int          `json:"year"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if !nepali.ValidMonth(req.Month) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid month: "+string(req.Month))
	}
	if req.Year <= 2000 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid year")
	}

	period := nepali.Period{Month: req.Month, Year: req.Year}
	report, warnings, err := services.GenerateReport(db, period)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate report")
	}
	if warnings > 0 {
		log.Printf("report for %s generated with %d skipped records", period, warnings)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"data":     report,
		"warnings": warnings,
		"message":  "Report generated successfully",
	})
}

// GenerateAllReportsAPI recomputes reports for every period that has payment
// records.
func GenerateAllReportsAPI(c *fiber.Ctx, db *sql.DB) error {
	reports, err := services.GenerateAllReports(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate reports")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    reports,
		"count":   len(reports),
		"message": "All reports generated successfully",
	})
}
