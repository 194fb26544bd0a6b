package database

import (
	"database/sql"

	"github.com/MITHLESH24364/fee-management-system-educo/app/models"
)

const studentColumns = `id, name, grade, contact, address, guardian_name,
	guardian_contact, joining_date, active, fee_amount, created_at, updated_at`

func scanStudent(row interface{ Scan(...interface{}) error }) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(
		&s.ID, &s.Name, &s.Grade, &s.Contact, &s.Address, &s.GuardianName,
		&s.GuardianContact, &s.JoiningDate, &s.Active, &s.FeeAmount,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ListStudents returns every student ordered by name, including deactivated
// ones; callers filter on Active where it matters.
func ListStudents(db *sql.DB) ([]models.Student, error) {
	rows, err := db.Query(`SELECT ` + studentColumns + ` FROM students ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, *s)
	}
	return students, rows.Err()
}

// GetStudentByID returns one student or sql.ErrNoRows.
func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	row := db.QueryRow(`SELECT `+studentColumns+` FROM students WHERE id = $1`, id)
	return scanStudent(row)
}

// CreateStudent inserts a student and fills the server-assigned fields.
func CreateStudent(db *sql.DB, s *models.Student) error {
	query := `INSERT INTO students
		(name, grade, contact, address, guardian_name, guardian_contact, joining_date, active, fee_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`
	return db.QueryRow(query,
		s.Name, s.Grade, s.Contact, s.Address, s.GuardianName,
		s.GuardianContact, s.JoiningDate, s.Active, s.FeeAmount,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// UpdateStudent rewrites every editable field, including the active flag
// (students are deactivated, never deleted).
func UpdateStudent(db *sql.DB, s *models.Student) error {
	query := `UPDATE students SET
		name = $1, grade = $2, contact = $3, address = $4, guardian_name = $5,
		guardian_contact = $6, joining_date = $7, active = $8, fee_amount = $9,
		updated_at = NOW()
		WHERE id = $10`
	result, err := db.Exec(query,
		s.Name, s.Grade, s.Contact, s.Address, s.GuardianName,
		s.GuardianContact, s.JoiningDate, s.Active, s.FeeAmount, s.ID,
	)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
