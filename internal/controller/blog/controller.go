// Package blog provides HTTP handlers for the public, read-only blog.
package blog

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/database"
	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/model"
	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/utilities"
)

// BlogController handles public blog endpoints
type BlogController struct {
	DB *database.DBinstanceStruct
}

// NewBlogController creates a new instance of BlogController
func NewBlogController(db *database.DBinstanceStruct) *BlogController {
	return &BlogController{
		DB: db,
	}
}

// published narrows any blog query to published posts only.
func published(db *gorm.DB) *gorm.DB {
	return db.Where("is_published = ?", true)
}

// ListPosts fetches published posts, optionally filtered by category (exact,
// case-insensitive), author (substring) and a search term matched against
// title or content. Newest published first.
// @Summary List published blog posts
// @Tags Blog
// @Produce json
// @Param category query string false "Exact category, case insensitive"
// @Param author query string false "Author substring, case insensitive"
// @Param search query string false "Substring matched against title or content"
// @Success 200 {array} model.BlogPost "Return published blog post(s)"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /blog [get]
func (bc *BlogController) ListPosts(c *gin.Context) {
	rawCategory := c.Query("category")
	rawAuthor := c.Query("author")
	rawSearch := c.Query("search")

	result := bc.DB.Scopes(published)

	if rawCategory != "" {
		result = result.Where("LOWER(category) = LOWER(?)", rawCategory)
	}

	if rawAuthor != "" {
		result = result.Where("author ILIKE ?", "%"+rawAuthor+"%")
	}

	if rawSearch != "" {
		result = result.Where("title ILIKE ? OR content ILIKE ?", "%"+rawSearch+"%", "%"+rawSearch+"%")
	}

	posts := []model.BlogPost{}
	if err := result.
		Order("published_date DESC NULLS FIRST").
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch blog posts: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetPost resolves a published post by slug, falling back to interpreting the
// key as a numeric ID. Unpublished posts are reported as not found.
// @Summary Get published blog post by slug or ID
// @Tags Blog
// @Produce json
// @Param slug path string true "Slug, or numeric ID as fallback"
// @Success 200 {object} model.BlogPost "Return the matching blog post"
// @Failure 404 {object} utilities.ErrorResponse "Blog post not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /blog/{slug} [get]
func (bc *BlogController) GetPost(c *gin.Context) {
	key := c.Param("slug")

	post := model.BlogPost{}
	err := bc.DB.Scopes(published).Where("slug = ?", key).First(&post).Error
	if err == nil {
		c.JSON(http.StatusOK, post)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve blog post: %s", err.Error()),
		})
		return
	}

	// Slug miss, try the key as a numeric ID.
	if id, convErr := strconv.Atoi(key); convErr == nil {
		err = bc.DB.Scopes(published).Where("id = ?", id).First(&post).Error
		if err == nil {
			c.JSON(http.StatusOK, post)
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: fmt.Sprintf("Failed to retrieve blog post: %s", err.Error()),
			})
			return
		}
	}

	c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Blog post not found"})
}

// ListCategories returns the distinct categories of published posts.
// @Summary List distinct blog categories
// @Tags Blog
// @Produce json
// @Success 200 {array} string "Return distinct categories"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /blog/categories [get]
func (bc *BlogController) ListCategories(c *gin.Context) {
	categories := []string{}
	if err := bc.DB.Model(&model.BlogPost{}).
		Scopes(published).
		Where("category IS NOT NULL AND category <> ''").
		Distinct().
		Pluck("category", &categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch categories: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, categories)
}
