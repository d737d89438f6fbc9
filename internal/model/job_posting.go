package model

import (
	"time"
)

// Employment type choices for a job posting.
var (
	EmploymentFullTime   = "full_time"
	EmploymentPartTime   = "part_time"
	EmploymentContract   = "contract"
	EmploymentInternship = "internship"
)

// JobPosting is gorm model for store job posting data in DB.
// Slug is assigned once from the title and never recomputed on update.
type JobPosting struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug string `gorm:"type:text;uniqueIndex;not null" json:"slug"`

	Title            string `gorm:"type:text;not null" json:"title"`
	Description      string `gorm:"type:text" json:"description"`
	Requirements     string `gorm:"type:text" json:"requirements"`
	Responsibilities string `gorm:"type:text" json:"responsibilities"`
	Location         string `gorm:"type:text" json:"location"`
	Department       string `gorm:"type:text" json:"department"`
	EmploymentType   string `gorm:"type:text" json:"employment_type"`
	SalaryRange      string `gorm:"type:text" json:"salary_range"`

	IsActive       bool       `gorm:"not null;default:true" json:"is_active"`
	ExpirationDate *time.Time `gorm:"type:timestamptz" json:"expiration_date,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Applications []JobApplication      `gorm:"foreignKey:JobPostingID" json:"-"`
	Questions    []ApplicationQuestion `gorm:"foreignKey:JobPostingID" json:"questions,omitempty"`
}
