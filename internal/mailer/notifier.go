package mailer

import (
	"fmt"
	"strings"

	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/config"
	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/model"
)

// Notifier builds the concrete notification messages and hands them to a
// Sender. All recipient addresses and the company identity come from the
// injected settings, never from ambient lookups.
type Notifier struct {
	Sender Sender
	App    *config.App
}

// NewNotifier creates a Notifier from a transport and application settings.
func NewNotifier(sender Sender, app *config.App) *Notifier {
	return &Notifier{Sender: sender, App: app}
}

// DigestEntry is one line of the expiration digest.
type DigestEntry struct {
	Title        string
	Department   string
	DaysLeft     int
	Applications int64
}

// SendApplicantConfirmation sends the HTML confirmation to the applicant.
func (n *Notifier) SendApplicantConfirmation(app *model.JobApplication, posting *model.JobPosting) error {
	subject := fmt.Sprintf("Application Received: %s - %s", posting.Title, n.App.CompanyName)
	body := fmt.Sprintf(`<html>
<body>
	<p>Dear %s,</p>
	<p>Thank you for applying for the <strong>%s</strong> position at %s.</p>
	<p>We have received your application and our team will review it shortly.
	If your profile matches the role, we will contact you for the next steps.</p>
	<p>Best regards,<br>%s Recruitment Team</p>
</body>
</html>`, app.FullName, posting.Title, n.App.CompanyName, n.App.CompanyName)

	return n.Sender.Send([]string{app.Email}, subject, body, true)
}

// SendAdminApplicationNotice sends the plain-text digest of a new application
// to the fixed operational recipient.
func (n *Notifier) SendAdminApplicationNotice(app *model.JobApplication, posting *model.JobPosting) error {
	coverLetter := app.CoverLetter
	if coverLetter == "" {
		coverLetter = "No cover letter provided"
	}

	subject := fmt.Sprintf("New Job Application: %s", posting.Title)
	body := fmt.Sprintf(`New Job Application Received:

Position: %s
Applicant: %s
Email: %s
Phone: %s
Nationality: %s

Cover Letter:
%s

Application Date: %s

View in Admin: %s/admin/applications/%d
`,
		posting.Title,
		app.FullName,
		app.Email,
		app.Phone,
		app.Nationality,
		coverLetter,
		app.AppliedAt.Format("2006-01-02 15:04"),
		n.App.SiteURL,
		app.ID,
	)

	return n.Sender.Send([]string{n.App.ContactEmail}, subject, body, false)
}

// SendExpirationDigest sends one aggregated alert covering every posting that
// expires within the horizon.
func (n *Notifier) SendExpirationDigest(entries []DigestEntry, daysAhead int) error {
	subject := fmt.Sprintf("Job Postings Expiring Soon - %s", n.App.CompanyName)

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf(
			"- %s (%s) - %d days left - %d applications",
			e.Title, e.Department, e.DaysLeft, e.Applications,
		))
	}

	body := fmt.Sprintf(`The following job postings will expire within the next %d days:

%s

Please review these postings and extend their expiration dates if needed.

You can manage job postings at: %s/admin/job-postings/

This is an automated notification from your career management system.
`, daysAhead, strings.Join(lines, "\n"), n.App.SiteURL)

	return n.Sender.Send([]string{n.App.ContactEmail}, subject, body, false)
}

// SendContactNotice forwards a contact form submission to the fixed
// operational recipient.
func (n *Notifier) SendContactNotice(name, email, subject, message string) error {
	mailSubject := fmt.Sprintf("Website Contact: %s", subject)
	body := fmt.Sprintf(`New contact form submission from your website:

From: %s <%s>
Subject: %s

Message:
%s

---
This message was sent from your website contact form.
`, name, email, subject, message)

	return n.Sender.Send([]string{n.App.ContactEmail}, mailSubject, body, false)
}
