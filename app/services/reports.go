package services

import (
	"database/sql"
	"log"

	"github.com/MITHLESH24364/fee-management-system-educo/app/database"
	"github.com/MITHLESH24364/fee-management-system-educo/app/ledger"
	"github.com/MITHLESH24364/fee-management-system-educo/app/models"
	"github.com/MITHLESH24364/fee-management-system-educo/app/nepali"
)

// GenerateReport recomputes the aggregate for one period from a fresh
// snapshot of students and payments and upserts the cache row. The returned
// warning count reflects records skipped for data-integrity reasons.
func GenerateReport(db *sql.DB, period nepali.Period) (*models.MonthlyReport, int, error) {
	students, err := database.ListStudents(db)
	if err != nil {
		return nil, 0, err
	}
	payments, err := database.ListPayments(db)
	if err != nil {
		return nil, 0, err
	}

	report, warnings := ledger.Aggregate(students, payments, period)
	if err := database.UpsertReport(db, &report); err != nil {
		return nil, warnings, err
	}
	return &report, warnings, nil
}

// GenerateAllReports regenerates the cache for every period present in the
// ledger. A failing period is logged and skipped; the rest still regenerate.
func GenerateAllReports(db *sql.DB) ([]models.MonthlyReport, error) {
	periods, err := database.ListPaymentPeriods(db)
	if err != nil {
		return nil, err
	}

	var reports []models.MonthlyReport
	for _, period := range periods {
		report, warnings, err := GenerateReport(db, period)
		if err != nil {
			log.Printf("report generation failed for %s: %v", period, err)
			continue
		}
		if warnings > 0 {
			log.Printf("report %s generated with %d data-integrity warnings", period, warnings)
		}
		reports = append(reports, *report)
	}
	return reports, nil
}
