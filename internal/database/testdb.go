package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/lifecycle"
	m "github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/model"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported seeded records for tests
var (
	// TestPostingOpen1/2 are active postings with a future expiration
	TestPostingOpen1 m.JobPosting
	TestPostingOpen2 m.JobPosting
	// TestPostingNoExpiry is active without an expiration date
	TestPostingNoExpiry m.JobPosting
	// TestPostingInactive is deactivated by an operator
	TestPostingInactive m.JobPosting

	// TestBlogPublished1/2 are published posts, TestBlogDraft is not
	TestBlogPublished1 m.BlogPost
	TestBlogPublished2 m.BlogPost
	TestBlogDraft      m.BlogPost
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		useConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	// Seed sample postings and blog posts
	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts sample postings and blog posts if the tables are empty.
func seedTestData(db *DBinstanceStruct) error {
	var postingCount int64
	if err := db.Model(&m.JobPosting{}).Count(&postingCount).Error; err != nil {
		return err
	}
	if postingCount > 0 {
		return loadTestData(db)
	}

	now := time.Now()
	exp1 := now.AddDate(0, 1, 0)
	exp2 := now.AddDate(0, 2, 0)

	postings := []m.JobPosting{
		{
			Title:          "Backend Engineer Test",
			Description:    "Build Go services and the persistence layer.",
			Requirements:   "Go basics; SQL familiarity",
			Location:       "Cairo (Hybrid)",
			Department:     "Engineering",
			EmploymentType: m.EmploymentFullTime,
			SalaryRange:    "negotiable",
			IsActive:       true,
			ExpirationDate: &exp1,
		},
		{
			Title:          "Marketing Specialist Test",
			Description:    "Plan and run digital campaigns.",
			Requirements:   "3+ years digital marketing",
			Location:       "Remote",
			Department:     "Marketing",
			EmploymentType: m.EmploymentFullTime,
			IsActive:       true,
			ExpirationDate: &exp2,
		},
		{
			Title:          "Evergreen Analyst Test",
			Description:    "Support ongoing analytics projects.",
			Requirements:   "SQL; basic statistics",
			Location:       "Remote",
			Department:     "Analytics",
			EmploymentType: m.EmploymentContract,
			IsActive:       true,
		},
		{
			Title:          "Closed Designer Test",
			Description:    "Closed by an operator.",
			Requirements:   "Figma",
			Location:       "Cairo",
			Department:     "Design",
			EmploymentType: m.EmploymentPartTime,
			IsActive:       false,
		},
	}

	for i := range postings {
		if err := lifecycle.CreatePosting(db.DB, &postings[i], now); err != nil {
			return err
		}
	}

	TestPostingOpen1 = postings[0]
	TestPostingOpen2 = postings[1]
	TestPostingNoExpiry = postings[2]
	TestPostingInactive = postings[3]

	// A couple of custom questions on the first posting
	questions := []m.ApplicationQuestion{
		{
			JobPostingID: TestPostingOpen1.ID,
			QuestionText: "What is your experience level with Go?",
			QuestionType: m.QuestionTypeSelect,
			Options:      []string{"Beginner", "Intermediate", "Advanced"},
			IsRequired:   true,
			DisplayOrder: 1,
		},
		{
			JobPostingID: TestPostingOpen1.ID,
			QuestionText: "Portfolio URL (if available)",
			QuestionType: m.QuestionTypeText,
			DisplayOrder: 2,
		},
	}
	if err := db.Create(&questions).Error; err != nil {
		return err
	}

	pub1 := now.AddDate(0, 0, -10)
	pub2 := now.AddDate(0, 0, -3)
	engineering := "Engineering"
	culture := "Culture"
	excerpt := "A short excerpt"

	blogPosts := []m.BlogPost{
		{
			Slug:          "how-we-hire",
			Title:         "How We Hire",
			Excerpt:       &excerpt,
			Content:       "Our hiring pipeline explained end to end.",
			Author:        "Sara Adel",
			Category:      &engineering,
			PublishedDate: &pub1,
			IsPublished:   true,
		},
		{
			Slug:          "life-at-the-office",
			Title:         "Life at the Office",
			Content:       "A tour of our Cairo office and the team rituals.",
			Author:        "Omar Farouk",
			Category:      &culture,
			PublishedDate: &pub2,
			IsPublished:   true,
		},
		{
			Slug:        "unreleased-roadmap",
			Title:       "Unreleased Roadmap",
			Content:     "Draft content that must never go public.",
			Author:      "Sara Adel",
			IsPublished: false,
		},
	}
	if err := db.Create(&blogPosts).Error; err != nil {
		return err
	}

	TestBlogPublished1 = blogPosts[0]
	TestBlogPublished2 = blogPosts[1]
	TestBlogDraft = blogPosts[2]

	return nil
}

// loadTestData populates exported variables when records already exist. A
// lookup miss is an error: the fixtures must never be left zero-valued.
func loadTestData(db *DBinstanceStruct) error {
	lookups := []struct {
		dest  interface{}
		cond  string
		value string
	}{
		{&TestPostingOpen1, "title = ?", "Backend Engineer Test"},
		{&TestPostingOpen2, "title = ?", "Marketing Specialist Test"},
		{&TestPostingNoExpiry, "title = ?", "Evergreen Analyst Test"},
		{&TestPostingInactive, "title = ?", "Closed Designer Test"},
		{&TestBlogPublished1, "slug = ?", "how-we-hire"},
		{&TestBlogPublished2, "slug = ?", "life-at-the-office"},
		{&TestBlogDraft, "slug = ?", "unreleased-roadmap"},
	}
	for _, l := range lookups {
		if err := db.First(l.dest, l.cond, l.value).Error; err != nil {
			return fmt.Errorf("load test fixture (%s %q): %w", l.cond, l.value, err)
		}
	}
	return nil
}
