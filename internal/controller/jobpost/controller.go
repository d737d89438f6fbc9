// Package jobpost provides HTTP handlers for the public job posting endpoints.
package jobpost

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/database"
	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/lifecycle"
	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/model"
	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/utilities"
)

// JobPostController handles public job posting endpoints
type JobPostController struct {
	DB *database.DBinstanceStruct
}

// NewJobPostController creates a new instance of JobPostController
func NewJobPostController(db *database.DBinstanceStruct) *JobPostController {
	return &JobPostController{
		DB: db,
	}
}

// GetOpenPostings fetches every posting that is currently open and returns
// them as a JSON response, newest first.
// @Summary List open job postings
// @Description Returns active postings whose expiration is unset or in the future
// @Tags Jobpost
// @Produce json
// @Success 200 {array} model.JobPosting "Return open job posting(s)"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs [get]
func (jc *JobPostController) GetOpenPostings(c *gin.Context) {
	now := time.Now()

	postings := []model.JobPosting{}
	if err := jc.DB.
		Scopes(lifecycle.OpenScope(now)).
		Order("created_at DESC").
		Find(&postings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch job postings: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, postings)
}

// GetOpenPostingByID fetches one currently open posting by its ID, including
// its custom application questions.
// @Summary Get open job posting by ID
// @Tags Jobpost
// @Produce json
// @Param id path integer true "ID of desired job posting"
// @Success 200 {object} model.JobPosting "Return the job posting with the specified ID"
// @Failure 404 {object} utilities.ErrorResponse "Job posting not found or no longer open"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id} [get]
func (jc *JobPostController) GetOpenPostingByID(c *gin.Context) {
	id := c.Param("id")
	now := time.Now()

	posting := model.JobPosting{}
	if err := jc.DB.
		Scopes(lifecycle.OpenScope(now)).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
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

	c.JSON(http.StatusOK, posting)
}
