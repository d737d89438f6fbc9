// Command seed-jobs creates sample job postings with custom application
// questions for local development and manual testing.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/database"
	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/lifecycle"
	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/model"
)

type sampleJob struct {
	posting       model.JobPosting
	expiresInDays int
	questions     []model.ApplicationQuestion
}

func sampleJobs() []sampleJob {
	return []sampleJob{
		{
			posting: model.JobPosting{
				Title:          "Senior Frontend Developer",
				Department:     "Engineering",
				Location:       "Remote",
				EmploymentType: model.EmploymentFullTime,
				SalaryRange:    "$80,000 - $120,000",
				Description:    "We are looking for a Senior Frontend Developer to join our dynamic team. You will be responsible for building user-facing features using modern JavaScript frameworks.",
				Requirements:   "5+ years of experience with React.js or Vue.js\nStrong knowledge of HTML5, CSS3, and JavaScript ES6+\nExperience with state management\nUnderstanding of responsive design principles",
				Responsibilities: "Develop and maintain frontend applications\nCollaborate with design and backend teams\nOptimize applications for maximum speed and scalability\nMentor junior developers",
				IsActive:       true,
			},
			expiresInDays: 45,
			questions: []model.ApplicationQuestion{
				{
					QuestionText: "What is your experience level with React.js?",
					QuestionType: model.QuestionTypeSelect,
					Options:      []string{"Beginner (0-2 years)", "Intermediate (2-5 years)", "Advanced (5+ years)"},
					IsRequired:   true,
					DisplayOrder: 1,
				},
				{
					QuestionText: "Do you have experience with TypeScript?",
					QuestionType: model.QuestionTypeCheckbox,
					DisplayOrder: 2,
				},
				{
					QuestionText: "Please describe a challenging frontend project you worked on",
					QuestionType: model.QuestionTypeTextarea,
					IsRequired:   true,
					DisplayOrder: 3,
				},
				{
					QuestionText:    "Portfolio URL (if available)",
					QuestionType:    model.QuestionTypeText,
					PlaceholderText: "https://yourportfolio.com",
					DisplayOrder:    4,
				},
			},
		},
		{
			posting: model.JobPosting{
				Title:          "Digital Marketing Specialist",
				Department:     "Marketing",
				Location:       "New York, NY",
				EmploymentType: model.EmploymentFullTime,
				SalaryRange:    "$50,000 - $70,000",
				Description:    "Join our marketing team to help drive growth through digital marketing campaigns, content creation, and data analysis.",
				Requirements:   "3+ years of digital marketing experience\nProficiency in Google Analytics and Google Ads\nContent creation and copywriting skills\nKnowledge of SEO/SEM best practices",
				Responsibilities: "Plan and execute digital marketing campaigns\nCreate engaging content for various channels\nMonitor and analyze campaign performance\nManage social media presence",
				IsActive:       true,
			},
			expiresInDays: 30,
			questions: []model.ApplicationQuestion{
				{
					QuestionText: "Which marketing channels have you worked with?",
					QuestionType: model.QuestionTypeSelect,
					Options:      []string{"Social Media", "Email Marketing", "PPC Advertising", "Content Marketing", "SEO", "All of the above"},
					IsRequired:   true,
					DisplayOrder: 1,
				},
				{
					QuestionText: "What is your preferred start date?",
					QuestionType: model.QuestionTypeDate,
					IsRequired:   true,
					DisplayOrder: 2,
				},
				{
					QuestionText: "Do you have experience with marketing automation platforms?",
					QuestionType: model.QuestionTypeCheckbox,
					DisplayOrder: 3,
				},
			},
		},
		{
			posting: model.JobPosting{
				Title:          "UX/UI Designer",
				Department:     "Design",
				Location:       "San Francisco, CA",
				EmploymentType: model.EmploymentFullTime,
				SalaryRange:    "$70,000 - $100,000",
				Description:    "We are seeking a talented UX/UI Designer to create intuitive and engaging user experiences for our digital products.",
				Requirements:   "4+ years of UX/UI design experience\nProficiency in Figma, Sketch, or Adobe Creative Suite\nExperience with prototyping and wireframing\nPortfolio demonstrating design process and thinking",
				Responsibilities: "Design user interfaces and experiences\nCreate wireframes, prototypes, and high-fidelity mockups\nConduct user research and usability testing\nMaintain and evolve design systems",
				IsActive:       true,
			},
			expiresInDays: 60,
			questions: []model.ApplicationQuestion{
				{
					QuestionText: "Please provide a link to your design portfolio",
					QuestionType: model.QuestionTypeText,
					IsRequired:   true,
					DisplayOrder: 1,
				},
				{
					QuestionText: "Which design tools are you most comfortable with?",
					QuestionType: model.QuestionTypeSelect,
					Options:      []string{"Figma", "Sketch", "Adobe XD", "Adobe Creative Suite", "Other"},
					IsRequired:   true,
					DisplayOrder: 2,
				},
				{
					QuestionText: "Describe your design process from research to final design",
					QuestionType: model.QuestionTypeTextarea,
					IsRequired:   true,
					DisplayOrder: 3,
				},
				{
					QuestionText: "Upload a design case study (optional)",
					QuestionType: model.QuestionTypeFile,
					DisplayOrder: 4,
				},
			},
		},
		{
			posting: model.JobPosting{
				Title:          "Data Analyst Intern",
				Department:     "Analytics",
				Location:       "Remote",
				EmploymentType: model.EmploymentInternship,
				SalaryRange:    "$15 - $20 per hour",
				Description:    "Summer internship opportunity for students interested in data analysis and business intelligence.",
				Requirements:   "Currently enrolled in relevant degree program\nBasic knowledge of SQL and Excel\nFamiliarity with Python or R (preferred)\nStrong analytical and problem-solving skills",
				Responsibilities: "Assist with data collection and cleaning\nCreate reports and visualizations\nSupport ongoing analytics projects\nPresent findings to stakeholders",
				IsActive:       true,
			},
			// Shorter expiration for internship
			expiresInDays: 21,
			questions: []model.ApplicationQuestion{
				{
					QuestionText: "What is your current year in school?",
					QuestionType: model.QuestionTypeSelect,
					Options:      []string{"Freshman", "Sophomore", "Junior", "Senior", "Graduate Student"},
					IsRequired:   true,
					DisplayOrder: 1,
				},
				{
					QuestionText: "What is your major/field of study?",
					QuestionType: model.QuestionTypeText,
					IsRequired:   true,
					DisplayOrder: 2,
				},
				{
					QuestionText:    "Do you have any programming experience?",
					QuestionType:    model.QuestionTypeTextarea,
					PlaceholderText: "Please describe any programming languages or tools you have used",
					DisplayOrder:    3,
				},
				{
					QuestionText: "Expected graduation date",
					QuestionType: model.QuestionTypeDate,
					IsRequired:   true,
					DisplayOrder: 4,
				},
			},
		},
	}
}

func clearExisting(db *database.DBinstanceStruct) error {
	// Delete in FK order: applications and questions reference postings.
	session := db.Session(&gorm.Session{AllowGlobalUpdate: true})
	if err := session.Delete(&model.JobApplication{}).Error; err != nil {
		return err
	}
	if err := session.Delete(&model.ApplicationQuestion{}).Error; err != nil {
		return err
	}
	if err := session.Delete(&model.JobPosting{}).Error; err != nil {
		return err
	}
	return nil
}

func main() {
	clear := flag.Bool("clear-existing", false, "Clear existing job postings before creating samples")
	flag.Parse()

	db, err := database.GetMainDB()
	if err != nil {
		log.Fatalf("Database failed to initialize: %s", err)
	}

	if *clear {
		if err := clearExisting(db); err != nil {
			log.Fatalf("Failed to clear existing job postings: %s", err)
		}
		fmt.Println("Cleared existing job postings")
	}

	now := time.Now()
	created := 0
	for _, sample := range sampleJobs() {
		posting := sample.posting
		expiresAt := now.AddDate(0, 0, sample.expiresInDays)
		posting.ExpirationDate = &expiresAt

		if err := lifecycle.CreatePosting(db.DB, &posting, now); err != nil {
			log.Fatalf("Failed to create job posting %q: %s", posting.Title, err)
		}

		for i := range sample.questions {
			sample.questions[i].JobPostingID = posting.ID
		}
		if len(sample.questions) > 0 {
			if err := db.Create(&sample.questions).Error; err != nil {
				log.Fatalf("Failed to create questions for %q: %s", posting.Title, err)
			}
		}

		created++
		fmt.Printf("Created job: %s\n", posting.Title)
	}

	fmt.Printf("Successfully created %d sample job postings\n", created)
}
