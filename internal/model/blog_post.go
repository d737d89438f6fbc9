package model

import (
	"time"
)

// BlogPost is gorm model for store blog post data in DB.
// Only posts with IsPublished = true are ever visible through public endpoints.
type BlogPost struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug string `gorm:"type:text;uniqueIndex;not null" json:"slug"`

	Title         string  `gorm:"type:text;not null" json:"title"`
	Excerpt       *string `gorm:"type:text" json:"excerpt,omitempty"`
	Content       string  `gorm:"type:text" json:"content"`
	FeaturedImage *string `gorm:"type:text" json:"featured_image,omitempty"`
	Author        string  `gorm:"type:text" json:"author"`
	Category      *string `gorm:"type:text" json:"category,omitempty"`

	PublishedDate *time.Time `gorm:"type:timestamptz" json:"published_date,omitempty"`
	IsPublished   bool       `gorm:"not null;default:false" json:"is_published"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
