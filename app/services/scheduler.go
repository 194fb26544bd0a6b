package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/MITHLESH24364/fee-management-system-educo/app/nepali"
)

// StartScheduler starts the background task scheduler. The current period is
// resolved from the wall clock here, at the boundary, and passed into the
// report computation.
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Refresh the current period's cached report at 8:05 PM
			if now.Hour() == 20 && now.Minute() == 5 {
				period := nepali.CurrentPeriod(now)
				log.Printf("Triggering scheduled report refresh for %s...", period)
				if _, _, err := GenerateReport(db, period); err != nil {
					log.Printf("Error refreshing report for %s: %v", period, err)
				}
			}
		}
	}()
}
