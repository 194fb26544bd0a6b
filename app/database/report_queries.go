package database

import (
	"database/sql"

	"github.com/MITHLESH24364/fee-management-system-educo/app/models"
	"github.com/MITHLESH24364/fee-management-system-educo/app/nepali"
)

const reportColumns = `id, month, year, total_collection, total_pending,
	total_due, total_advance, students_paid, students_partial, students_pending, updated_at`

// UpsertReport stores a computed report as the cache row for its period,
// replacing any previous snapshot.
func UpsertReport(db *sql.DB, r *models.MonthlyReport) error {
	query := `INSERT INTO monthly_reports
		(month, year, total_collection, total_pending, total_due, total_advance,
		 students_paid, students_partial, students_pending, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (month, year) DO UPDATE SET
			total_collection = EXCLUDED.total_collection,
			total_pending = EXCLUDED.total_pending,
			total_due = EXCLUDED.total_due,
			total_advance = EXCLUDED.total_advance,
			students_paid = EXCLUDED.students_paid,
			students_partial = EXCLUDED.students_partial,
			students_pending = EXCLUDED.students_pending,
			updated_at = NOW()
		RETURNING id, updated_at`
	return db.QueryRow(query,
		string(r.Month), r.Year, r.TotalCollection, r.TotalPending, r.TotalDue,
		r.TotalAdvance, r.StudentsPaid, r.StudentsPartial, r.StudentsPending,
	).Scan(&r.ID, &r.UpdatedAt)
}

// GetReport returns the cached report for one period, or nil when the period
// has never been aggregated.
func GetReport(db *sql.DB, period nepali.Period) (*models.MonthlyReport, error) {
	var r models.MonthlyReport
	err := db.QueryRow(
		`SELECT `+reportColumns+` FROM monthly_reports WHERE month = $1 AND year = $2`,
		string(period.Month), period.Year,
	).Scan(
		&r.ID, &r.Month, &r.Year, &r.TotalCollection, &r.TotalPending,
		&r.TotalDue, &r.TotalAdvance, &r.StudentsPaid, &r.StudentsPartial,
		&r.StudentsPending, &r.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ListReports returns all cached reports, newest year first.
func ListReports(db *sql.DB) ([]models.MonthlyReport, error) {
	rows, err := db.Query(`SELECT ` + reportColumns + ` FROM monthly_reports ORDER BY year DESC, month`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []models.MonthlyReport
	for rows.Next() {
		var r models.MonthlyReport
		err := rows.Scan(
			&r.ID, &r.Month, &r.Year, &r.TotalCollection, &r.TotalPending,
			&r.TotalDue, &r.TotalAdvance, &r.StudentsPaid, &r.StudentsPartial,
			&r.StudentsPending, &r.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}
