package students

import (
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/MITHLESH24364/fee-management-system-educo/app/database"
	"github.com/MITHLESH24364/fee-management-system-educo/app/models"
)

var validate = validator.New()

// StudentRequest is the payload for creating or updating a student.
type StudentRequest struct {
	Name            string          `json:"name" validate:"required"`
	Grade           string          `json:"grade" validate:"required"`
	Contact         string          `json:"contact"`
	Address         *string         `json:"address"`
	GuardianName    *string         `json:"guardian_name"`
	GuardianContact *string         `json:"guardian_contact"`
	JoiningDate     *time.Time      `json:"joining_date"`
	Active          *bool           `json:"active"`
	FeeAmount       decimal.Decimal `json:"fee_amount"`
}

func (r *StudentRequest) check() error {
	if err := validate.Struct(r); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if !r.FeeAmount.IsPositive() {
		return fiber.NewError(fiber.StatusBadRequest, "Fee amount must be greater than zero")
	}
	return nil
}

// GetStudentsAPI returns all students, optionally only active ones.
func GetStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	students, err := database.ListStudents(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}

	if c.QueryBool("active_only", false) {
		filtered := make([]models.Student, 0, len(students))
		for _, s := range students {
			if s.Active {
				filtered = append(filtered, s)
			}
		}
		students = filtered
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    students,
		"count":   len(students),
	})
}

// CreateStudentAPI registers a new student.
func CreateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.check(); err != nil {
		return err
	}

	student := models.Student{
		Name:            req.Name,
		Grade:           req.Grade,
		Contact:         req.Contact,
		Address:         req.Address,
		GuardianName:    req.GuardianName,
		GuardianContact: req.GuardianContact,
		JoiningDate:     time.Now(),
		Active:          true,
		FeeAmount:       req.FeeAmount,
	}
	if req.JoiningDate != nil {
		student.JoiningDate = *req.JoiningDate
	}
	if req.Active != nil {
		student.Active = *req.Active
	}

	if err := database.CreateStudent(db, &student); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create student")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    student,
		"message": "Student created successfully",
	})
}

// UpdateStudentAPI edits an existing student.
func UpdateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("id")

	existing, err := database.GetStudentByID(db, studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.check(); err != nil {
		return err
	}

	existing.Name = req.Name
	existing.Grade = req.Grade
	existing.Contact = req.Contact
	existing.Address = req.Address
	existing.GuardianName = req.GuardianName
	existing.GuardianContact = req.GuardianContact
	existing.FeeAmount = req.FeeAmount
	if req.JoiningDate != nil {
		existing.JoiningDate = *req.JoiningDate
	}
	if req.Active != nil {
		existing.Active = *req.Active
	}

	if err := database.UpdateStudent(db, existing); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    existing,
		"message": "Student updated successfully",
	})
}

// DeactivateStudentAPI soft-deactivates a student. Deactivated students keep
// their payment history but drop out of bulk billing and reports.
func DeactivateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("id")

	student, err := database.GetStudentByID(db, studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	student.Active = false
	if err := database.UpdateStudent(db, student); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to deactivate student")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Student deactivated successfully",
	})
}
