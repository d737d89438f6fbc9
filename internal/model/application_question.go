package model

import (
	"github.com/lib/pq"
)

// Question type choices for per-posting custom questions.
var (
	QuestionTypeSelect   = "select"
	QuestionTypeCheckbox = "checkbox"
	QuestionTypeTextarea = "textarea"
	QuestionTypeText     = "text"
	QuestionTypeDate     = "date"
	QuestionTypeFile     = "file"
)

// ApplicationQuestion is a per-posting custom question shown on the apply form.
type ApplicationQuestion struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	JobPostingID uint       `gorm:"not null;index" json:"job_posting_id"`
	JobPosting   JobPosting `gorm:"foreignKey:JobPostingID;references:ID" json:"-"`

	QuestionText    string         `gorm:"type:text;not null" json:"question_text"`
	QuestionType    string         `gorm:"type:text;not null" json:"question_type"`
	Options         pq.StringArray `gorm:"type:text[]" json:"options"`
	PlaceholderText string         `gorm:"type:text" json:"placeholder_text"`
	IsRequired      bool           `gorm:"not null;default:false" json:"is_required"`
	DisplayOrder    int            `gorm:"not null;default:0" json:"order"`
}
