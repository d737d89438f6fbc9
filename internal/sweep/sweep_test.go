package sweep

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"

	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/config"
	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/database"
	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/mailer"
	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/model"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	var err error
	var midTeardown func(context.Context, ...testcontainers.TerminateOption) error
	midTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if midTeardown != nil {
		_ = midTeardown(ctx)
	}
}

// fakeSender records outgoing messages instead of dialing SMTP.
type fakeSender struct {
	sent []fakeMessage
	err  error
}

type fakeMessage struct {
	to      []string
	subject string
	body    string
	html    bool
}

func (f *fakeSender) Send(to []string, subject, body string, html bool) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, fakeMessage{to: to, subject: subject, body: body, html: html})
	return nil
}

func testNotifier(sender mailer.Sender) *mailer.Notifier {
	return mailer.NewNotifier(sender, &config.App{
		CompanyName:  "Kamashka",
		SiteURL:      "https://example.com",
		ContactEmail: "hr@example.com",
	})
}

// createExpiredPosting inserts an active posting whose expiration already
// passed, bypassing the lifecycle normalization on purpose so the row is in
// the exact shape the sweep exists to fix.
func createExpiredPosting(t *testing.T, title string, expiredSince time.Duration) *model.JobPosting {
	t.Helper()

	expiredAt := time.Now().Add(-expiredSince)
	posting := model.JobPosting{
		Title:          title,
		Slug:           fmt.Sprintf("sweep-%d", time.Now().UnixNano()),
		Department:     "Engineering",
		EmploymentType: model.EmploymentFullTime,
		IsActive:       true,
		ExpirationDate: &expiredAt,
	}
	assert.NoError(t, testDB.Create(&posting).Error)
	return &posting
}

func TestRun_deactivatesExpiredPostings(t *testing.T) {
	posting := createExpiredPosting(t, "Backend Engineer", 24*time.Hour)

	sweeper := New(testDB, testNotifier(&fakeSender{}))
	report, err := sweeper.Run(Options{})
	assert.NoError(t, err)

	assert.False(t, report.DryRun)
	assert.GreaterOrEqual(t, report.ExpiredCount, int64(1))

	var stored model.JobPosting
	assert.NoError(t, testDB.First(&stored, posting.ID).Error)
	assert.False(t, stored.IsActive)

	// Summary counts cover the whole table.
	assert.GreaterOrEqual(t, report.TotalExpired, int64(1))
	assert.GreaterOrEqual(t, report.TotalActive, int64(1))

	// A second run finds nothing left to do.
	report, err = sweeper.Run(Options{})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), report.ExpiredCount)
}

func TestRun_dryRunDoesNotMutate(t *testing.T) {
	posting := createExpiredPosting(t, "Dry Run Victim", time.Hour)

	sweeper := New(testDB, testNotifier(&fakeSender{}))
	report, err := sweeper.Run(Options{DryRun: true})
	assert.NoError(t, err)

	assert.True(t, report.DryRun)
	assert.GreaterOrEqual(t, report.ExpiredCount, int64(1))

	found := false
	for _, p := range report.ExpiredPostings {
		if p.ID == posting.ID {
			found = true
		}
	}
	assert.True(t, found, "dry run report should list the expired posting")

	var stored model.JobPosting
	assert.NoError(t, testDB.First(&stored, posting.ID).Error)
	assert.True(t, stored.IsActive, "dry run must not deactivate anything")

	// Remove the victim so later runs in this package start clean.
	assert.NoError(t, testDB.Delete(&model.JobPosting{}, posting.ID).Error)
}

func TestRun_sendsExpirationDigest(t *testing.T) {
	now := time.Now()
	expiresAt := now.Add(72*time.Hour + time.Minute)

	posting := model.JobPosting{
		Title:          "Expiring QA Engineer",
		Slug:           fmt.Sprintf("sweep-%d", time.Now().UnixNano()),
		Department:     "Quality",
		EmploymentType: model.EmploymentFullTime,
		IsActive:       true,
		ExpirationDate: &expiresAt,
	}
	assert.NoError(t, testDB.Create(&posting).Error)

	applications := []model.JobApplication{
		{JobPostingID: posting.ID, FullName: "A One", Email: "a@example.com", Phone: "+100", Nationality: model.DefaultNationality, Status: model.ApplicationStatusPending},
		{JobPostingID: posting.ID, FullName: "B Two", Email: "b@example.com", Phone: "+200", Nationality: model.DefaultNationality, Status: model.ApplicationStatusPending},
	}
	assert.NoError(t, testDB.Create(&applications).Error)

	sender := &fakeSender{}
	sweeper := New(testDB, testNotifier(sender))
	report, err := sweeper.Run(Options{SendAlerts: true, DaysAhead: 7, Now: now})
	assert.NoError(t, err)

	assert.True(t, report.AlertSent)
	assert.NoError(t, report.AlertErr)

	var entry *mailer.DigestEntry
	for i := range report.Expiring {
		if report.Expiring[i].Title == "Expiring QA Engineer" {
			entry = &report.Expiring[i]
		}
	}
	if assert.NotNil(t, entry, "digest should include the expiring posting") {
		assert.Equal(t, "Quality", entry.Department)
		assert.Equal(t, 3, entry.DaysLeft)
		assert.Equal(t, int64(2), entry.Applications)
	}

	if assert.Len(t, sender.sent, 1, "one aggregated digest, not one email per posting") {
		msg := sender.sent[0]
		assert.Equal(t, []string{"hr@example.com"}, msg.to)
		assert.Contains(t, msg.subject, "Job Postings Expiring Soon")
		assert.Contains(t, msg.body, "- Expiring QA Engineer (Quality) - 3 days left - 2 applications")
		assert.False(t, msg.html)
	}

	// Cleanup so other alert tests see a predictable window.
	assert.NoError(t, testDB.Delete(&model.JobApplication{}, "job_posting_id = ?", posting.ID).Error)
	assert.NoError(t, testDB.Delete(&model.JobPosting{}, posting.ID).Error)
}

func TestRun_alertFailureDoesNotFailRun(t *testing.T) {
	now := time.Now()
	expiresAt := now.Add(48 * time.Hour)

	posting := model.JobPosting{
		Title:          "Expiring Support Agent",
		Slug:           fmt.Sprintf("sweep-%d", time.Now().UnixNano()),
		Department:     "Support",
		EmploymentType: model.EmploymentPartTime,
		IsActive:       true,
		ExpirationDate: &expiresAt,
	}
	assert.NoError(t, testDB.Create(&posting).Error)

	sender := &fakeSender{err: errors.New("smtp unreachable")}
	sweeper := New(testDB, testNotifier(sender))
	report, err := sweeper.Run(Options{SendAlerts: true, Now: now})

	assert.NoError(t, err, "a transport failure must not fail the sweep")
	assert.False(t, report.AlertSent)
	assert.Error(t, report.AlertErr)
	assert.NotEmpty(t, report.Expiring)

	assert.NoError(t, testDB.Delete(&model.JobPosting{}, posting.ID).Error)
}

func TestRun_noAlertWhenNothingExpiring(t *testing.T) {
	now := time.Now()

	sender := &fakeSender{}
	sweeper := New(testDB, testNotifier(sender))
	// Horizon of 1 day: the seeded postings expire a month or more out.
	report, err := sweeper.Run(Options{SendAlerts: true, DaysAhead: 1, Now: now})
	assert.NoError(t, err)

	assert.Empty(t, report.Expiring)
	assert.False(t, report.AlertSent)
	assert.Empty(t, sender.sent)
}
