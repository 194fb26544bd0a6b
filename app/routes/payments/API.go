package payments

import (
	"database/sql"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/MITHLESH24364/fee-management-system-educo/app/database"
	"github.com/MITHLESH24364/fee-management-system-educo/app/models"
	"github.com/MITHLESH24364/fee-management-system-educo/app/nepali"
	"github.com/MITHLESH24364/fee-management-system-educo/app/services"
)

var validate = validator.New()

// PaymentRequest is the payload for recording a fee payment.
type PaymentRequest struct {
	StudentID string          `json:"student_id" validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Month     models.Month    `json:"month" validate:"required"`
	Year      int             `json:"year" validate:"required,gt=2000"`
	IsPending bool            `json:"is_pending"`
	Notes     string          `json:"notes"`
}

// GetPaymentsAPI lists payments, optionally scoped to one student.
func GetPaymentsAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Query("student_id")

	var (
		payments []models.FeePayment
		err      error
	)
	if studentID != "" {
		payments, err = database.ListPaymentsForStudent(db, studentID)
	} else {
		payments, err = database.ListPayments(db)
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payments")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    payments,
		"count":   len(payments),
	})
}

// RecordPaymentAPI records a collection for a student and period. If a record
// already exists for that period the canonical first-inserted one is updated
// in place rather than creating a duplicate.
func RecordPaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if !nepali.ValidMonth(req.Month) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid month: "+string(req.Month))
	}
	if !req.IsPending && !req.Amount.IsPositive() {
		return fiber.NewError(fiber.StatusBadRequest, "Amount must be greater than zero")
	}

	student, err := database.GetStudentByID(db, req.StudentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	period := nepali.Period{Month: req.Month, Year: req.Year}
	existing, err := database.FindPaymentForPeriod(db, student.ID, period)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check existing payments")
	}

	now := time.Now()
	payment := existing
	if payment == nil {
		payment = &models.FeePayment{
			StudentID: student.ID,
			Month:     req.Month,
			Year:      req.Year,
		}
	}

	payment.Amount = req.Amount
	payment.IsPending = req.IsPending
	payment.IsAdvance = !req.IsPending && req.Amount.GreaterThan(student.FeeAmount)
	payment.Notes = req.Notes
	if req.IsPending {
		payment.PaidDate = nil
		payment.Amount = decimal.Zero
	} else {
		payment.PaidDate = &now
	}

	if existing != nil {
		err = database.UpdatePayment(db, payment)
	} else {
		err = database.InsertPayment(db, payment)
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save payment")
	}

	// Keep the cached monthly report in step with the ledger.
	if _, _, err := services.GenerateReport(db, period); err != nil {
		log.Printf("Failed to refresh report for %s: %v", period, err)
	}

	status := fiber.StatusCreated
	message := "Payment recorded successfully"
	if existing != nil {
		status = fiber.StatusOK
		message = "Payment updated successfully"
	}
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    payment,
		"message": message,
	})
}

// GetHistoryAPI returns a student's full payment history with yearly totals
// of collected amounts.
func GetHistoryAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("id")

	student, err := database.GetStudentByID(db, studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	payments, err := database.ListPaymentsForStudent(db, student.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payment history")
	}

	yearlyTotals := make(map[int]decimal.Decimal)
	for _, p := range payments {
		if p.IsPending {
			continue
		}
		yearlyTotals[p.Year] = yearlyTotals[p.Year].Add(p.Amount)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"student":       student,
			"payments":      payments,
			"yearly_totals": yearlyTotals,
		},
	})
}
