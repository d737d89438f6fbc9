package contact

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/config"
	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/mailer"
	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/testutil"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
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

func setupRouter(sender mailer.Sender) *gin.Engine {
	notifier := mailer.NewNotifier(sender, &config.App{
		CompanyName:  "Kamashka",
		SiteURL:      "https://example.com",
		ContactEmail: "hr@example.com",
	})
	controller := NewContactController(notifier)

	r := gin.Default()
	r.POST("/api/v1/contact", controller.Submit)
	return r
}

func TestSubmit_validJSON(t *testing.T) {
	sender := &fakeSender{}
	r := setupRouter(sender)

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"name":    "Nadia",
		"email":   "nadia@example.com",
		"subject": "Partnership",
		"message": "We would like to discuss a partnership.",
	}, r, "/api/v1/contact", http.MethodPost)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, resp["success"])

	if assert.Len(t, sender.sent, 1) {
		msg := sender.sent[0]
		assert.Equal(t, []string{"hr@example.com"}, msg.to)
		assert.Equal(t, "Website Contact: Partnership", msg.subject)
		assert.Contains(t, msg.body, "Nadia <nadia@example.com>")
		assert.Contains(t, msg.body, "We would like to discuss a partnership.")
		assert.False(t, msg.html)
	}
}

func TestSubmit_validFormEncoded(t *testing.T) {
	sender := &fakeSender{}
	r := setupRouter(sender)

	form := url.Values{}
	form.Set("name", "Karim")
	form.Set("email", "karim@example.com")
	form.Set("subject", "Question")
	form.Set("message", "Is the designer role still open?")

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, sender.sent, 1)
}

func TestSubmit_missingFields(t *testing.T) {
	sender := &fakeSender{}
	r := setupRouter(sender)

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"email": "not-an-email",
	}, r, "/api/v1/contact", http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, resp["success"])

	errs, ok := resp["errors"].([]interface{})
	if assert.True(t, ok, "expected an itemized error list") {
		assert.Contains(t, errs, "Name is required.")
		assert.Contains(t, errs, "Please enter a valid email address.")
		assert.Contains(t, errs, "Subject is required.")
		assert.Contains(t, errs, "Message is required.")
	}

	assert.Empty(t, sender.sent, "invalid submissions must not be forwarded")
}

func TestSubmit_whitespaceOnlyIsRejected(t *testing.T) {
	sender := &fakeSender{}
	r := setupRouter(sender)

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"name":    "   ",
		"email":   "someone@example.com",
		"subject": "Hi",
		"message": "\t\n",
	}, r, "/api/v1/contact", http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errs, ok := resp["errors"].([]interface{})
	if assert.True(t, ok) {
		assert.Contains(t, errs, "Name is required.")
		assert.Contains(t, errs, "Message is required.")
	}
}

func TestSubmit_transportFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp unreachable")}
	r := setupRouter(sender)

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"name":    "Nadia",
		"email":   "nadia@example.com",
		"subject": "Partnership",
		"message": "Hello",
	}, r, "/api/v1/contact", http.MethodPost)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "An unexpected error occurred. Please try again later.", resp["error"])
}
