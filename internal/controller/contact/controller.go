// Package contact provides the HTTP handler for contact form submissions.
package contact

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/mailer"
)

var validate = validator.New()

// ContactController handles contact form submissions
type ContactController struct {
	Notifier *mailer.Notifier
}

// NewContactController creates a new instance of ContactController
func NewContactController(notifier *mailer.Notifier) *ContactController {
	return &ContactController{
		Notifier: notifier,
	}
}

// message is the contact form payload, accepted as JSON or form-encoded.
type message struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

// Submit validates a contact form message and forwards it to the operational
// recipient.
// @Summary Submit a contact form message
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Tags Contact
// @Success 200 {object} map[string]interface{} "success true"
// @Failure 400 {object} map[string]interface{} "success false with itemized errors"
// @Failure 500 {object} map[string]interface{} "unexpected error"
// @Router /contact [post]
func (cc *ContactController) Submit(c *gin.Context) {
	var msg message
	if err := c.ShouldBind(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"errors":  []string{"Invalid request body."},
		})
		return
	}

	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.Message = strings.TrimSpace(msg.Message)

	var validationErrors []string
	if msg.Name == "" {
		validationErrors = append(validationErrors, "Name is required.")
	}
	if msg.Email == "" {
		validationErrors = append(validationErrors, "Email is required.")
	} else if err := validate.Var(msg.Email, "email"); err != nil {
		validationErrors = append(validationErrors, "Please enter a valid email address.")
	}
	if msg.Subject == "" {
		validationErrors = append(validationErrors, "Subject is required.")
	}
	if msg.Message == "" {
		validationErrors = append(validationErrors, "Message is required.")
	}

	if len(validationErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"errors":  validationErrors,
		})
		return
	}

	if err := cc.Notifier.SendContactNotice(msg.Name, msg.Email, msg.Subject, msg.Message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "An unexpected error occurred. Please try again later.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
