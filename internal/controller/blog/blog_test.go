package blog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"

	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/database"
	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/model"
	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/testutil"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var midTeardown func(context.Context, ...testcontainers.TerminateOption) error
	midTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if midTeardown != nil {
		_ = midTeardown(ctx)
	}
}

func setupRouter() *gin.Engine {
	controller := NewBlogController(testDB)

	r := gin.Default()
	r.GET("/api/v1/blog", controller.ListPosts)
	r.GET("/api/v1/blog/categories", controller.ListCategories)
	r.GET("/api/v1/blog/:slug", controller.GetPost)
	return r
}

func listPosts(t *testing.T, r *gin.Engine, query string) []model.BlogPost {
	t.Helper()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/blog"+query, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	posts := []model.BlogPost{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	return posts
}

func slugs(posts []model.BlogPost) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Slug)
	}
	return out
}

func TestListPosts_publishedOnlyNewestFirst(t *testing.T) {
	r := setupRouter()

	posts := listPosts(t, r, "")
	assert.Equal(t, []string{
		database.TestBlogPublished2.Slug,
		database.TestBlogPublished1.Slug,
	}, slugs(posts), "drafts are hidden, newest published first")
}

func TestListPosts_filters(t *testing.T) {
	r := setupRouter()

	byCategory := listPosts(t, r, "?category=engineering")
	assert.Equal(t, []string{database.TestBlogPublished1.Slug}, slugs(byCategory), "category is exact but case insensitive")

	byAuthor := listPosts(t, r, "?author=omar")
	assert.Equal(t, []string{database.TestBlogPublished2.Slug}, slugs(byAuthor), "author matches by substring")

	bySearch := listPosts(t, r, "?search=pipeline")
	assert.Equal(t, []string{database.TestBlogPublished1.Slug}, slugs(bySearch), "search looks into content too")

	noMatch := listPosts(t, r, "?search=nonexistent-term")
	assert.Empty(t, noMatch)
}

func TestListPosts_undatedPublishedSortsFirst(t *testing.T) {
	r := setupRouter()

	// A published post that never got a publish date outranks dated ones,
	// matching descending order with NULLs first.
	undated := model.BlogPost{
		Slug:        "undated-note",
		Title:       "Undated Note",
		Content:     "Published without a publish date.",
		Author:      "Sara Adel",
		IsPublished: true,
	}
	assert.NoError(t, testDB.Create(&undated).Error)

	posts := listPosts(t, r, "")
	assert.Equal(t, []string{
		undated.Slug,
		database.TestBlogPublished2.Slug,
		database.TestBlogPublished1.Slug,
	}, slugs(posts))

	assert.NoError(t, testDB.Delete(&model.BlogPost{}, undated.ID).Error)
}

func TestGetPost_bySlug(t *testing.T) {
	r := setupRouter()

	rec, resp := testutil.MakeJSONRequest(nil, r, "/api/v1/blog/"+database.TestBlogPublished1.Slug, http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, database.TestBlogPublished1.Title, resp["title"])
}

func TestGetPost_byNumericIDFallback(t *testing.T) {
	r := setupRouter()

	rec, resp := testutil.MakeJSONRequest(nil, r, fmt.Sprintf("/api/v1/blog/%d", database.TestBlogPublished2.ID), http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, database.TestBlogPublished2.Title, resp["title"])
}

func TestGetPost_draftIsNotFound(t *testing.T) {
	r := setupRouter()

	// Neither the slug nor the ID of a draft resolves.
	rec, resp := testutil.MakeJSONRequest(nil, r, "/api/v1/blog/"+database.TestBlogDraft.Slug, http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Blog post not found", resp["error"])

	rec, _ = testutil.MakeJSONRequest(nil, r, fmt.Sprintf("/api/v1/blog/%d", database.TestBlogDraft.ID), http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetPost_unknownKey(t *testing.T) {
	r := setupRouter()

	rec, _ := testutil.MakeJSONRequest(nil, r, "/api/v1/blog/no-such-post", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListCategories(t *testing.T) {
	r := setupRouter()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/blog/categories", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	categories := []string{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	assert.ElementsMatch(t, []string{"Engineering", "Culture"}, categories)
}
