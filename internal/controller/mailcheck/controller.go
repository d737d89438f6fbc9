// Package mailcheck provides diagnostic endpoints for verifying the outbound
// mail configuration. These are operational endpoints, not part of the public
// product surface.
package mailcheck

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/config"
	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/mailer"
)

// MailCheckController handles the email diagnostic endpoints
type MailCheckController struct {
	Sender mailer.Sender
	App    *config.App
}

// NewMailCheckController creates a new instance of MailCheckController
func NewMailCheckController(sender mailer.Sender, app *config.App) *MailCheckController {
	return &MailCheckController{
		Sender: sender,
		App:    app,
	}
}

// TestEmail sends one test message to the operational recipient and one to a
// caller-provided address, reporting success or the transport failure.
// @Summary Send test emails to verify mail configuration
// @Tags Diagnostics
// @Produce json
// @Param test_email query string false "Extra recipient, defaults to test@example.com"
// @Success 200 {object} map[string]interface{} "Test emails sent"
// @Failure 500 {object} map[string]interface{} "Missing configuration or transport error"
// @Router /email/test [get]
func (mc *MailCheckController) TestEmail(c *gin.Context) {
	if missing := mc.App.Missing(); len(missing) > 0 {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Missing required settings: %s", strings.Join(missing, ", ")),
			"config":  mc.App.Sanitized(),
		})
		return
	}

	if err := mc.Sender.Send(
		[]string{mc.App.ContactEmail},
		"Test Email - Admin",
		"This is a test email to verify your admin email configuration is working.",
		false,
	); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
			"config":  mc.App.Sanitized(),
		})
		return
	}

	testUserEmail := c.DefaultQuery("test_email", "test@example.com")
	if err := mc.Sender.Send(
		[]string{testUserEmail},
		"Test Email - User",
		"This is a test email to verify your user email configuration is working.",
		false,
	); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
			"config":  mc.App.Sanitized(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Test emails sent successfully! Check both %s and %s", mc.App.ContactEmail, testUserEmail),
	})
}

// DebugEmail echoes the sanitized mail configuration and sends two probe
// messages, one to the company inbox and one to a personal address.
// @Summary Echo sanitized mail configuration and send probe emails
// @Tags Diagnostics
// @Produce json
// @Param personal_email query string false "Personal probe recipient"
// @Success 200 {object} map[string]interface{} "Probe emails sent with config echo"
// @Failure 500 {object} map[string]interface{} "Missing configuration or transport error"
// @Router /email/debug [get]
func (mc *MailCheckController) DebugEmail(c *gin.Context) {
	cfg := mc.App.Sanitized()

	if missing := mc.App.Missing(); len(missing) > 0 {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Missing required settings: %s", strings.Join(missing, ", ")),
			"config":  cfg,
		})
		return
	}

	if err := mc.Sender.Send(
		[]string{mc.App.ContactEmail},
		"Test 1: Company Email",
		fmt.Sprintf("This is a test email to your company inbox.\n\nTime: %s", time.Now().Format(time.RFC3339)),
		false,
	); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
			"config":  cfg,
		})
		return
	}

	personalEmail := c.DefaultQuery("personal_email", "your-personal@example.com")
	if err := mc.Sender.Send(
		[]string{personalEmail},
		"Test 2: Personal Email",
		fmt.Sprintf("This is a test email to your personal inbox.\n\nTime: %s", time.Now().Format(time.RFC3339)),
		false,
	); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
			"config":  cfg,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Test emails sent successfully!",
		"config":  cfg,
	})
}
