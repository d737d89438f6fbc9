// Command expire-jobs deactivates job postings whose expiration has passed
// and optionally emails a digest of postings expiring soon. It is meant to be
// invoked from cron; run it with -dry-run first to see what it would do.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/config"
	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/database"
	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/mailer"
	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/sweep"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "Show what would be expired without actually expiring jobs")
	sendAlerts := flag.Bool("send-alerts", false, "Send email alerts for jobs expiring soon")
	daysAhead := flag.Int("days-ahead", sweep.DefaultDaysAhead, "Days ahead to check for expiring jobs")
	flag.Parse()

	db, err := database.GetMainDB()
	if err != nil {
		log.Fatalf("Database failed to initialize: %s", err)
	}

	app := config.Load()
	notifier := mailer.NewNotifier(mailer.NewSMTPSender(app.Mail), app)

	sweeper := sweep.New(db, notifier)
	report, err := sweeper.Run(sweep.Options{
		DryRun:     *dryRun,
		SendAlerts: *sendAlerts,
		DaysAhead:  *daysAhead,
	})
	if err != nil {
		log.Fatalf("Sweep failed: %s", err)
	}

	if report.DryRun {
		fmt.Printf("DRY RUN: Would expire %d job postings\n", report.ExpiredCount)
		for _, p := range report.ExpiredPostings {
			fmt.Printf("  - %s (expired %s)\n", p.Title, p.ExpirationDate.Format("2006-01-02 15:04"))
		}
	} else {
		fmt.Printf("Successfully expired %d job postings\n", report.ExpiredCount)
	}

	if *sendAlerts {
		if len(report.Expiring) > 0 {
			fmt.Printf("Found %d jobs expiring within %d days\n", len(report.Expiring), *daysAhead)
			if report.AlertSent {
				fmt.Println("Expiration alert email sent successfully")
			}
			if report.AlertErr != nil {
				fmt.Printf("Failed to send expiration alert: %s\n", report.AlertErr)
			}
		} else {
			fmt.Println("No jobs expiring soon")
		}
	}

	fmt.Println("\n--- Summary ---")
	fmt.Printf("Active job postings: %d\n", report.TotalActive)
	fmt.Printf("Total expired job postings: %d\n", report.TotalExpired)
	fmt.Printf("Jobs processed this run: %d\n", report.ExpiredCount)
}
