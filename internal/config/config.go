// Package config collect every recognized setting into one struct that get
// passed into the mailer, sweep job and controllers, instead of having each
// of them read environments on their own.
package config

import (
	"os"
	"strconv"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"
)

// Mail holds SMTP transport settings.
type Mail struct {
	Host     string
	Port     int
	Username string
	Password string
	UseTLS   bool
	// From is the sender address on every outgoing message.
	From string
}

// App holds application wide settings.
type App struct {
	// CompanyName appears in outgoing email subjects and bodies.
	CompanyName string
	// SiteURL is the public base URL, used for building admin links in notices.
	SiteURL string
	// ContactEmail is the fixed operational recipient for admin notices,
	// contact form messages and expiration digests.
	ContactEmail string

	Mail Mail
}

// Load reads the recognized settings from environments. Missing values are
// not fatal here: they only surface through the email diagnostic endpoints,
// see Missing.
func Load() *App {
	port, err := strconv.Atoi(os.Getenv("EMAIL_PORT"))
	if err != nil {
		port = 587
	}

	useTLS := true
	if raw := os.Getenv("EMAIL_USE_TLS"); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			useTLS = parsed
		}
	}

	return &App{
		CompanyName:  os.Getenv("COMPANY_NAME"),
		SiteURL:      os.Getenv("SITE_URL"),
		ContactEmail: os.Getenv("CONTACT_EMAIL"),
		Mail: Mail{
			Host:     os.Getenv("EMAIL_HOST"),
			Port:     port,
			Username: os.Getenv("EMAIL_HOST_USER"),
			Password: os.Getenv("EMAIL_HOST_PASSWORD"),
			UseTLS:   useTLS,
			From:     os.Getenv("DEFAULT_FROM_EMAIL"),
		},
	}
}

// Missing reports which required settings are absent. Used by the email
// diagnostic endpoints to explain a broken configuration.
func (a *App) Missing() []string {
	var missing []string
	if a.CompanyName == "" {
		missing = append(missing, "COMPANY_NAME")
	}
	if a.ContactEmail == "" {
		missing = append(missing, "CONTACT_EMAIL")
	}
	if a.Mail.Host == "" {
		missing = append(missing, "EMAIL_HOST")
	}
	if a.Mail.From == "" {
		missing = append(missing, "DEFAULT_FROM_EMAIL")
	}
	return missing
}

// Sanitized returns the mail settings as a map safe to echo back from
// diagnostic endpoints. The SMTP password is never included.
func (a *App) Sanitized() map[string]interface{} {
	return map[string]interface{}{
		"EMAIL_HOST":         a.Mail.Host,
		"EMAIL_PORT":         a.Mail.Port,
		"EMAIL_USE_TLS":      a.Mail.UseTLS,
		"EMAIL_HOST_USER":    a.Mail.Username,
		"DEFAULT_FROM_EMAIL": a.Mail.From,
		"CONTACT_EMAIL":      a.ContactEmail,
		"COMPANY_NAME":       a.CompanyName,
	}
}
