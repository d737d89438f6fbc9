// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/controller/application"
	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/controller/blog"
	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/controller/contact"
	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/controller/jobpost"
	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/controller/mailcheck"
	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/middleware"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *Server) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOrginsStr := os.Getenv("ALLOW_ORIGIN")
	allowOrgins := strings.Split(allowOrginsStr, ",")

	jobController := jobpost.NewJobPostController(s.DB)
	applicationController := application.NewApplicationController(s.DB, s.Notifier)
	blogController := blog.NewBlogController(s.DB)
	contactController := contact.NewContactController(s.Notifier)
	mailCheckController := mailcheck.NewMailCheckController(s.Sender, s.App)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrgins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/", s.HelloWorldHandler)
	r.GET("/health", s.healthHandler)
	v1 := r.Group("/api/v1")
	{
		jobs := v1.Group("/jobs")
		{
			jobs.GET("", jobController.GetOpenPostings)
			jobs.GET(":id", jobController.GetOpenPostingByID)
			jobs.POST(":id/apply",
				middleware.EnvRateLimitMiddleware(),
				middleware.SizeLimit(10<<20),
				applicationController.SubmitApplication,
			)
		}

		v1.GET("/applications/:id/resume", applicationController.DownloadResume)

		blogRoute := v1.Group("/blog")
		{
			blogRoute.GET("", blogController.ListPosts)
			blogRoute.GET("categories", blogController.ListCategories)
			blogRoute.GET(":slug", blogController.GetPost)
		}

		v1.POST("/contact", middleware.EnvRateLimitMiddleware(), contactController.Submit)

		emailRoute := v1.Group("/email")
		{
			emailRoute.GET("test", mailCheckController.TestEmail)
			emailRoute.GET("debug", mailCheckController.DebugEmail)
		}
	}

	return r
}

// HelloWorldHandler handle request by return message "Hello World"
func (s *Server) HelloWorldHandler(c *gin.Context) {
	resp := make(map[string]string)
	resp["message"] = "Hello World"

	c.JSON(http.StatusOK, resp)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.DB.Health())
}
