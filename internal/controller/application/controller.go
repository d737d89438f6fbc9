// Package application provides HTTP handlers for job application intake and
// resume retrieval.
package application

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/database"
	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/lifecycle"
	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/mailer"
	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/model"
	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/utilities"
)

const resumeObjectPrefix = "resumes"

// allowedResumeExtensions is the closed set of accepted resume file types.
var allowedResumeExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

var validate = validator.New()

// ApplicationController handles job application related endpoints
type ApplicationController struct {
	DB       *database.DBinstanceStruct
	Notifier *mailer.Notifier
}

// NewApplicationController creates a new instance of ApplicationController
// with the provided database connection and notifier.
func NewApplicationController(db *database.DBinstanceStruct, notifier *mailer.Notifier) *ApplicationController {
	return &ApplicationController{
		DB:       db,
		Notifier: notifier,
	}
}

// SubmitApplication handles the creation of a new job application for an open
// posting. Validation failures return a field-level error map and persist
// nothing. On success the application is stored with status forced to
// "pending", then confirmation and admin notices are sent best-effort.
// @Summary Submit a job application
// @Description Multipart form: full_name, email, phone, nationality, cover_letter, resume file (pdf/doc/docx)
// @Tags Application
// @Accept mpfd
// @Produce json
// @Param id path integer true "ID of the job posting"
// @Success 201 {object} model.JobApplication "Successfully submit application"
// @Failure 400 {object} utilities.ValidationErrorResponse "Field-level validation errors"
// @Failure 404 {object} utilities.ErrorResponse "Job posting not found or no longer open"
// @Failure 413 {object} utilities.ErrorResponse "Resume file is too large"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id}/apply [post]
func (ac *ApplicationController) SubmitApplication(c *gin.Context) {
	now := time.Now()
	id := c.Param("id")

	// The posting must still be open to accept applications.
	posting := model.JobPosting{}
	if err := ac.DB.
		Scopes(lifecycle.OpenScope(now)).
		Where("id = ?", id).
		First(&posting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job posting not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job posting: %s", err.Error()),
		})
		return
	}

	fieldErrors := map[string]string{}

	fullName := strings.TrimSpace(c.PostForm("full_name"))
	if fullName == "" {
		fieldErrors["full_name"] = "Full name is required"
	}

	email := strings.TrimSpace(c.PostForm("email"))
	if email == "" {
		fieldErrors["email"] = "Email is required"
	} else if err := validate.Var(email, "email"); err != nil {
		fieldErrors["email"] = "Enter a valid email address"
	}

	phone := strings.TrimSpace(c.PostForm("phone"))
	if phone == "" {
		fieldErrors["phone"] = "Phone is required"
	}

	nationality := strings.TrimSpace(c.PostForm("nationality"))
	if nationality == "" {
		nationality = model.DefaultNationality
	}

	coverLetter := strings.TrimSpace(c.PostForm("cover_letter"))

	rawFile, err := c.FormFile("resume")
	var maxBytesError *http.MaxBytesError
	if errors.As(err, &maxBytesError) {
		c.JSON(http.StatusRequestEntityTooLarge, utilities.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	var extension string
	if err != nil {
		fieldErrors["resume"] = "Resume file is required"
	} else {
		extension = strings.ToLower(filepath.Ext(rawFile.Filename))
		if !allowedResumeExtensions[extension] {
			fieldErrors["resume"] = fmt.Sprintf(
				"Unsupported file extension %q, allowed extensions: pdf, doc, docx", extension,
			)
		}
	}

	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, utilities.ValidationErrorResponse{Errors: fieldErrors})
		return
	}

	f, err := rawFile.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Cannot open file"})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("failed to close uploaded file: %v", err)
		}
	}()

	fileBytes, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Cannot read file"})
		return
	}

	// Store the resume under a generated name so the original filename never
	// leaks, then the application referencing it. Status is server-controlled
	// and always starts out pending, whatever the form carried.
	resume := model.File{
		StorageName: fmt.Sprintf("%s/%s%s", resumeObjectPrefix, uuid.NewString(), extension),
		Content:     fileBytes,
		Extension:   extension,
	}
	app := model.JobApplication{
		JobPostingID: posting.ID,
		FullName:     fullName,
		Email:        email,
		Phone:        phone,
		Nationality:  nationality,
		CoverLetter:  coverLetter,
		Status:       model.ApplicationStatusPending,
	}

	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&resume).Error; err != nil {
			return err
		}
		app.ResumeID = &resume.ID
		return tx.Create(&app).Error
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
				Error: fmt.Sprintf("Invalid job posting reference: %s", err.Error()),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to create application: %s", err.Error()),
		})
		return
	}

	// The record is committed, notification failures must not fail the
	// submission anymore. Send both messages and only log what goes wrong.
	if err := ac.Notifier.SendApplicantConfirmation(&app, &posting); err != nil {
		log.Printf("Email sending failed: %v", err)
	}
	if err := ac.Notifier.SendAdminApplicationNotice(&app, &posting); err != nil {
		log.Printf("Email sending failed: %v", err)
	}

	c.JSON(http.StatusCreated, app)
}

// DownloadResume retrieves a stored resume and sends it as a downloadable
// attachment named after the applicant.
// @Summary Download an application's resume
// @Tags Application
// @Produce octet-stream
// @Param id path integer true "ID of the application"
// @Success 200 {string} binary "Successfully retrieve file"
// @Failure 404 {object} utilities.ErrorResponse "Application or resume not found"
// @Failure 500 {object} utilities.ErrorResponse "Fail to send file content"
// @Router /applications/{id}/resume [get]
func (ac *ApplicationController) DownloadResume(c *gin.Context) {
	id := c.Param("id")

	app := model.JobApplication{}
	if err := ac.DB.
		Preload("Resume").
		Where("id = ?", id).
		First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve application: %s", err.Error()),
		})
		return
	}

	if app.ResumeID == nil || app.Resume.ID == 0 {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Resume not found"})
		return
	}

	filename := fmt.Sprintf("%s - Resume%s", app.FullName, app.Resume.Extension)
	c.Writer.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Writer.Header().Set("Content-Type", "application/octet-stream")
	c.Writer.Header().Set("Content-Length", fmt.Sprint(len(app.Resume.Content)))

	if _, err := c.Writer.Write(app.Resume.Content); err != nil {
		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: "Failed to send file content",
			})
		} else {
			c.Abort()
		}
	}
}
