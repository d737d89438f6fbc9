package model

import (
	"time"
)

var (
	// ApplicationStatusPending indicates that the application is waiting for review
	ApplicationStatusPending = "pending"
	// ApplicationStatusReviewed indicates that the application has been reviewed
	ApplicationStatusReviewed = "reviewed"
	// ApplicationStatusInterview indicates that the applicant got invited to interview
	ApplicationStatusInterview = "interview"
	// ApplicationStatusRejected indicates that the application has been rejected
	ApplicationStatusRejected = "rejected"
	// ApplicationStatusHired indicates that the applicant got hired
	ApplicationStatusHired = "hired"
)

// DefaultNationality is used when the applicant leaves nationality blank.
const DefaultNationality = "Egyptian"

// JobApplication represents a job application record.
// Status is server-controlled on creation and only changed by operators later.
type JobApplication struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// JobPostingID references JobPosting.ID
	JobPostingID uint       `gorm:"not null;index" json:"job_posting_id"`
	JobPosting   JobPosting `gorm:"foreignKey:JobPostingID;references:ID" json:"-"`

	FullName    string `gorm:"type:text;not null" json:"full_name"`
	Email       string `gorm:"type:text;not null" json:"email"`
	Phone       string `gorm:"type:text;not null" json:"phone"`
	Nationality string `gorm:"type:text" json:"nationality"`
	CoverLetter string `gorm:"type:text" json:"cover_letter"`

	ResumeID *int `json:"resume_id"`
	Resume   File `gorm:"foreignKey:ResumeID;references:ID" json:"-"`

	AppliedAt time.Time `gorm:"autoCreateTime" json:"application_date"`
	Status    string    `gorm:"type:text;not null" json:"status"`
}
