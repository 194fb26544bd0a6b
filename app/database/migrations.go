package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema and applies incremental column updates.
//
// fee_payments deliberately has no unique constraint on
// (student_id, month, year): duplicate rows can and do occur, and the ledger
// normalizer is the guard that keeps them out of every computation.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			first_name TEXT NOT NULL DEFAULT '',
			last_name TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			grade TEXT NOT NULL,
			contact TEXT NOT NULL DEFAULT '',
			address TEXT,
			guardian_name TEXT,
			guardian_contact TEXT,
			joining_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			active BOOLEAN NOT NULL DEFAULT true,
			fee_amount NUMERIC(12,2) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS fee_payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			month TEXT NOT NULL,
			year INT NOT NULL,
			paid_date TIMESTAMPTZ,
			is_advance BOOLEAN NOT NULL DEFAULT false,
			is_pending BOOLEAN NOT NULL DEFAULT false,
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_fee_payments_student_period
			ON fee_payments (student_id, month, year)`,
		`CREATE TABLE IF NOT EXISTS monthly_reports (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			month TEXT NOT NULL,
			year INT NOT NULL,
			total_collection NUMERIC(14,2) NOT NULL DEFAULT 0,
			total_pending NUMERIC(14,2) NOT NULL DEFAULT 0,
			total_due NUMERIC(14,2) NOT NULL DEFAULT 0,
			total_advance NUMERIC(14,2) NOT NULL DEFAULT 0,
			students_paid INT NOT NULL DEFAULT 0,
			students_partial INT NOT NULL DEFAULT 0,
			students_pending INT NOT NULL DEFAULT 0,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (month, year)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	if err := addStudentsPartialColumn(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// Older deployments predate the partial-payment bucket on reports.
func addStudentsPartialColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'monthly_reports'
				AND column_name = 'students_partial'
			) THEN
				ALTER TABLE monthly_reports ADD COLUMN students_partial INT NOT NULL DEFAULT 0;
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	return err
}
