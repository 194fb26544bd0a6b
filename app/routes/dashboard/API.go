package dashboard

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/MITHLESH24364/fee-management-system-educo/app/database"
	"github.com/MITHLESH24364/fee-management-system-educo/app/models"
	"github.com/MITHLESH24364/fee-management-system-educo/app/nepali"
	"github.com/MITHLESH24364/fee-management-system-educo/app/services"
)

const recentPaymentLimit = 10

// paymentWithStudent joins a payment row to the student's display fields.
type paymentWithStudent struct {
	models.FeePayment
	StudentName  string `json:"student_name"`
	StudentGrade string `json:"student_grade"`
}

// GetStatsAPI returns the dashboard summary: active student count, the
// current period's report, recent collections and outstanding bills.
func GetStatsAPI(c *fiber.Ctx, db *sql.DB) error {
	students, err := database.ListStudents(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}

	byID := make(map[string]models.Student, len(students))
	activeCount := 0
	for _, s := range students {
		byID[s.ID] = s
		if s.Active {
			activeCount++
		}
	}

	period := nepali.CurrentPeriod(time.Now())
	report, err := database.GetReport(db, period)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch report")
	}
	if report == nil {
		report, _, err = services.GenerateReport(db, period)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate report")
		}
	}

	recent, err := database.ListRecentPayments(db, recentPaymentLimit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch recent payments")
	}

	pending, err := database.ListPendingPayments(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch pending payments")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"active_students": activeCount,
			"period":          period,
			"report":          report,
			"recent_payments": withStudents(recent, byID),
			"pending_bills":   withStudents(pending, byID),
		},
	})
}

func withStudents(payments []models.FeePayment, byID map[string]models.Student) []paymentWithStudent {
	out := make([]paymentWithStudent, 0, len(payments))
	for _, p := range payments {
		row := paymentWithStudent{FeePayment: p}
		if s, ok := byID[p.StudentID]; ok {
			row.StudentName = s.Name
			row.StudentGrade = s.Grade
		}
		out = append(out, row)
	}
	return out
}
