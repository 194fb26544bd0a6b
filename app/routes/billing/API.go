package billing

import (
	"database/sql"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/MITHLESH24364/fee-management-system-educo/app/config"
	"github.com/MITHLESH24364/fee-management-system-educo/app/database"
	"github.com/MITHLESH24364/fee-management-system-educo/app/ledger"
	"github.com/MITHLESH24364/fee-management-system-educo/app/models"
	"github.com/MITHLESH24364/fee-management-system-educo/app/nepali"
	"github.com/MITHLESH24364/fee-management-system-educo/app/services"
)

var validate = validator.New()

// BulkRequest selects the period and optionally narrows the run to specific
// students.
type BulkRequest struct {
	Month      models.Month `json:"month" validate:"required"`
	Year       int          `json:"year" validate:"required,gt=2000"`
	StudentIDs []string     `json:"student_ids"`
}

func (r *BulkRequest) period() (nepali.Period, error) {
	if err := validate.Struct(r); err != nil {
		return nepali.Period{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if !nepali.ValidMonth(r.Month) {
		return nepali.Period{}, fiber.NewError(fiber.StatusBadRequest, "Invalid month: "+string(r.Month))
	}
	return nepali.Period{Month: r.Month, Year: r.Year}, nil
}

func planForPeriod(db *sql.DB, period nepali.Period, studentIDs []string) ([]services.BillPlan, map[string]models.FeePayment, error) {
	students, err := database.ListStudents(db)
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}
	if len(studentIDs) > 0 {
		wanted := make(map[string]struct{}, len(studentIDs))
		for _, id := range studentIDs {
			wanted[id] = struct{}{}
		}
		filtered := students[:0]
		for _, s := range students {
			if _, ok := wanted[s.ID]; ok {
				filtered = append(filtered, s)
			}
		}
		students = filtered
	}

	payments, err := database.ListPayments(db)
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payments")
	}

	plans, existing := services.PlanBulkBills(students, payments, period, config.GetInstitution())
	return plans, existing, nil
}

// PreviewBulkAPI computes the bills a bulk run would generate without saving
// anything.
func PreviewBulkAPI(c *fiber.Ctx, db *sql.DB) error {
	var req BulkRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	period, err := req.period()
	if err != nil {
		return err
	}

	plans, existing, err := planForPeriod(db, period, req.StudentIDs)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"period":   period,
			"plans":    plans,
			"existing": existing,
		},
	})
}

// GenerateBulkAPI creates pending bill records for every active student who
// has none for the period, then refreshes the cached report.
func GenerateBulkAPI(c *fiber.Ctx, db *sql.DB) error {
	var req BulkRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	period, err := req.period()
	if err != nil {
		return err
	}

	plans, existing, err := planForPeriod(db, period, req.StudentIDs)
	if err != nil {
		return err
	}

	batchID := uuid.NewString()
	log.Printf("bulk billing: batch %s for %s, %d bills planned, %d already billed",
		batchID, period, len(plans), len(existing))

	saved, failed := services.GenerateBulkBills(db, plans)

	if _, _, err := services.GenerateReport(db, period); err != nil {
		log.Printf("bulk billing: batch %s failed to refresh report: %v", batchID, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"batch_id": batchID,
			"period":   period,
			"saved":    saved,
			"failed":   failed,
			"skipped":  len(existing),
		},
		"message": "Bulk bills generated",
	})
}

// GetReceiptAPI composes the printable document for one payment record,
// line-itemized against the student's full ledger history.
func GetReceiptAPI(c *fiber.Ctx, db *sql.DB) error {
	payment, err := database.GetPaymentByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Payment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payment")
	}

	student, err := database.GetStudentByID(db, payment.StudentID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	records, err := database.ListPaymentsForStudent(db, student.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payment history")
	}

	period := nepali.Period{Month: payment.Month, Year: payment.Year}
	ob := ledger.ComputeObligation(*student, records, period)
	bill := ledger.ComposeBill(*student, ob, config.GetInstitution(), time.Now())

	return c.JSON(fiber.Map{
		"success": true,
		"data":    bill,
	})
}
