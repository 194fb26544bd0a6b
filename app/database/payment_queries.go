package database

import (
	"database/sql"

	"github.com/MITHLESH24364/fee-management-system-educo/app/models"
	"github.com/MITHLESH24364/fee-management-system-educo/app/nepali"
)

const paymentColumns = `id, student_id, amount, month, year, paid_date,
	is_advance, is_pending, notes, created_at, updated_at`

func scanPayments(rows *sql.Rows) ([]models.FeePayment, error) {
	var payments []models.FeePayment
	for rows.Next() {
		var p models.FeePayment
		err := rows.Scan(
			&p.ID, &p.StudentID, &p.Amount, &p.Month, &p.Year, &p.PaidDate,
			&p.IsAdvance, &p.IsPending, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// ListPayments returns the full payment ledger ordered oldest insert first,
// so first-seen normalization matches insertion order.
func ListPayments(db *sql.DB) ([]models.FeePayment, error) {
	rows, err := db.Query(`SELECT ` + paymentColumns + ` FROM fee_payments ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

// ListPaymentsForStudent returns one student's ledger in insertion order.
func ListPaymentsForStudent(db *sql.DB, studentID string) ([]models.FeePayment, error) {
	rows, err := db.Query(
		`SELECT `+paymentColumns+` FROM fee_payments WHERE student_id = $1 ORDER BY created_at`,
		studentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

// GetPaymentByID returns one payment record or sql.ErrNoRows.
func GetPaymentByID(db *sql.DB, id string) (*models.FeePayment, error) {
	var p models.FeePayment
	err := db.QueryRow(`SELECT `+paymentColumns+` FROM fee_payments WHERE id = $1`, id).Scan(
		&p.ID, &p.StudentID, &p.Amount, &p.Month, &p.Year, &p.PaidDate,
		&p.IsAdvance, &p.IsPending, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindPaymentForPeriod returns the first-inserted record for a student and
// period, or nil when none exists. First-inserted matches the canonical
// record the normalizer would select.
func FindPaymentForPeriod(db *sql.DB, studentID string, period nepali.Period) (*models.FeePayment, error) {
	var p models.FeePayment
	err := db.QueryRow(
		`SELECT `+paymentColumns+` FROM fee_payments
		 WHERE student_id = $1 AND month = $2 AND year = $3
		 ORDER BY created_at LIMIT 1`,
		studentID, string(period.Month), period.Year,
	).Scan(
		&p.ID, &p.StudentID, &p.Amount, &p.Month, &p.Year, &p.PaidDate,
		&p.IsAdvance, &p.IsPending, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// InsertPayment stores a new record and fills the server-assigned fields.
func InsertPayment(db *sql.DB, p *models.FeePayment) error {
	query := `INSERT INTO fee_payments
		(student_id, amount, month, year, paid_date, is_advance, is_pending, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`
	return db.QueryRow(query,
		p.StudentID, p.Amount, string(p.Month), p.Year, p.PaidDate,
		p.IsAdvance, p.IsPending, p.Notes,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// UpdatePayment rewrites an existing record in place.
func UpdatePayment(db *sql.DB, p *models.FeePayment) error {
	query := `UPDATE fee_payments SET
		amount = $1, month = $2, year = $3, paid_date = $4,
		is_advance = $5, is_pending = $6, notes = $7, updated_at = NOW()
		WHERE id = $8`
	result, err := db.Exec(query,
		p.Amount, string(p.Month), p.Year, p.PaidDate,
		p.IsAdvance, p.IsPending, p.Notes, p.ID,
	)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListPaymentPeriods returns every distinct (month, year) present in the
// ledger, used to regenerate all cached reports.
func ListPaymentPeriods(db *sql.DB) ([]nepali.Period, error) {
	rows, err := db.Query(`SELECT DISTINCT month, year FROM fee_payments ORDER BY year, month`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periods []nepali.Period
	for rows.Next() {
		var p nepali.Period
		if err := rows.Scan(&p.Month, &p.Year); err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	return periods, rows.Err()
}

// ListRecentPayments returns the latest collected payments by paid date.
func ListRecentPayments(db *sql.DB, limit int) ([]models.FeePayment, error) {
	rows, err := db.Query(
		`SELECT `+paymentColumns+` FROM fee_payments
		 WHERE is_pending = false AND paid_date IS NOT NULL
		 ORDER BY paid_date DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

// ListPendingPayments returns every pending record, oldest period first.
func ListPendingPayments(db *sql.DB) ([]models.FeePayment, error) {
	rows, err := db.Query(
		`SELECT ` + paymentColumns + ` FROM fee_payments
		 WHERE is_pending = true ORDER BY year, month`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}
