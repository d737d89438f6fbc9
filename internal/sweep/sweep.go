// Package sweep implements the scheduled maintenance run over job postings:
// deactivate the expired ones and raise a digest alert for those expiring
// soon. It is expected to run as a singleton scheduled task; overlapping runs
// are not guarded against here.
package sweep

import (
	"time"

	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/database"
	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/mailer"
	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/model"
)

// DefaultDaysAhead is the alert horizon when none is given.
const DefaultDaysAhead = 7

// Options control a single sweep run.
type Options struct {
	// DryRun reports what would be expired without mutating anything.
	DryRun bool
	// SendAlerts sends a digest for postings expiring within DaysAhead.
	SendAlerts bool
	// DaysAhead is the alert horizon in days, defaulting to DefaultDaysAhead.
	DaysAhead int
	// Now overrides the reference time, zero means time.Now().
	Now time.Time
}

// Report is the outcome of one sweep run.
type Report struct {
	DryRun bool

	// ExpiredCount is how many postings matched the expiration condition.
	// In a dry run nothing was mutated; otherwise this is the number of rows
	// flipped by the batch update.
	ExpiredCount int64
	// ExpiredPostings lists the matched postings, populated on dry runs for
	// reporting.
	ExpiredPostings []model.JobPosting

	// Expiring digest info, only filled when alerts were requested.
	Expiring  []mailer.DigestEntry
	AlertSent bool
	// AlertErr carries a transport failure. It never fails the run.
	AlertErr error

	// Summary counts, always filled.
	TotalActive  int64
	TotalExpired int64
}

// Sweeper runs the expiration sweep against a database, sending alerts
// through the notifier.
type Sweeper struct {
	DB       *database.DBinstanceStruct
	Notifier *mailer.Notifier
}

// New creates a Sweeper.
func New(db *database.DBinstanceStruct, notifier *mailer.Notifier) *Sweeper {
	return &Sweeper{DB: db, Notifier: notifier}
}

// Run executes one sweep. Database errors abort the run; a failed alert send
// is recorded on the report and does not.
func (s *Sweeper) Run(opts Options) (Report, error) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	daysAhead := opts.DaysAhead
	if daysAhead <= 0 {
		daysAhead = DefaultDaysAhead
	}

	report := Report{DryRun: opts.DryRun}

	expiredCond := "is_active = ? AND expiration_date IS NOT NULL AND expiration_date <= ?"

	if opts.DryRun {
		if err := s.DB.
			Where(expiredCond, true, now).
			Find(&report.ExpiredPostings).Error; err != nil {
			return report, err
		}
		report.ExpiredCount = int64(len(report.ExpiredPostings))
	} else {
		// Single batch update, not a read-then-write loop, so postings whose
		// expiration boundary is crossed mid-run cannot be lost.
		res := s.DB.Model(&model.JobPosting{}).
			Where(expiredCond, true, now).
			Update("is_active", false)
		if res.Error != nil {
			return report, res.Error
		}
		report.ExpiredCount = res.RowsAffected
	}

	if opts.SendAlerts {
		if err := s.collectExpiring(&report, now, daysAhead); err != nil {
			return report, err
		}
		if len(report.Expiring) > 0 {
			if err := s.Notifier.SendExpirationDigest(report.Expiring, daysAhead); err != nil {
				report.AlertErr = err
			} else {
				report.AlertSent = true
			}
		}
	}

	// Summary: currently active postings, and every posting whose expiration
	// has passed regardless of its active flag.
	if err := s.DB.Model(&model.JobPosting{}).
		Where("is_active = ?", true).
		Count(&report.TotalActive).Error; err != nil {
		return report, err
	}
	if err := s.DB.Model(&model.JobPosting{}).
		Where("expiration_date IS NOT NULL AND expiration_date <= ?", now).
		Count(&report.TotalExpired).Error; err != nil {
		return report, err
	}

	return report, nil
}

// collectExpiring fills the digest entries: active postings expiring within
// the horizon, soonest first, with their application counts.
func (s *Sweeper) collectExpiring(report *Report, now time.Time, daysAhead int) error {
	horizon := now.AddDate(0, 0, daysAhead)

	var postings []model.JobPosting
	if err := s.DB.
		Where("is_active = ? AND expiration_date > ? AND expiration_date <= ?", true, now, horizon).
		Order("expiration_date ASC").
		Find(&postings).Error; err != nil {
		return err
	}

	for _, p := range postings {
		var applications int64
		if err := s.DB.Model(&model.JobApplication{}).
			Where("job_posting_id = ?", p.ID).
			Count(&applications).Error; err != nil {
			return err
		}

		daysLeft := int(p.ExpirationDate.Sub(now).Hours() / 24)
		report.Expiring = append(report.Expiring, mailer.DigestEntry{
			Title:        p.Title,
			Department:   p.Department,
			DaysLeft:     daysLeft,
			Applications: applications,
		})
	}

	return nil
}
