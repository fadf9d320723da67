package apitest

import (
	"time"

	"engineershub/internal/domain/entity"
)

// DefaultUserID is the id of the seeded student.
const DefaultUserID = "user-1"

// Fixtures is the canned data served by the fake backend.
type Fixtures struct {
	Questions          map[entity.QuizCategory][]*entity.QuizQuestion
	InterviewQuestions map[entity.InterviewType][]string
	Companies          []*entity.Company
	MatchResults       *entity.MatchResults
	Learning           *entity.LearningRecommendations
	Evaluation         *entity.ResumeEvaluation
	QuizStats          entity.QuizStats
	Projects           []*entity.Project
	Tasks              []*entity.Task
}

// DefaultUser returns the seeded student account.
func DefaultUser() *entity.User {
	return &entity.User{
		ID:        DefaultUserID,
		Name:      "Asha Rao",
		Email:     DefaultEmail,
		College:   "NIT Trichy",
		Branch:    "Computer Science",
		Year:      "3rd Year",
		CreatedAt: time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC),
	}
}

// DefaultFixtures returns a fresh copy of the canned data.
func DefaultFixtures() *Fixtures {
	deadline := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	return &Fixtures{
		Questions: map[entity.QuizCategory][]*entity.QuizQuestion{
			entity.QuizCategoryAptitude: {
				{ID: "apt_1", Question: "What comes next: 2, 4, 8, ?", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "A"},
				{ID: "apt_2", Question: "Which is the odd one out?", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "B"},
				{ID: "apt_3", Question: "Pick the synonym of 'rapid'", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "C"},
			},
			entity.QuizCategoryCoding: {
				{
					ID:            "code_1",
					Question:      "Write a function to reverse a string",
					Language:      "Python",
					Difficulty:    "Easy",
					SampleAnswer:  "def reverse(s):\n    return s[::-1]",
					CorrectAnswer: "s[::-1]",
				},
			},
		},
		InterviewQuestions: map[entity.InterviewType][]string{
			entity.InterviewTypeHR: {
				"Tell me about yourself.",
				"Why do you want to work here?",
			},
			entity.InterviewTypeTechnical: {
				"Explain the difference between a process and a thread.",
				"What is a hash table?",
				"Describe a project you are proud of.",
			},
		},
		Companies: []*entity.Company{
			{
				ID:             "tcs",
				Name:           "Tata Consultancy Services",
				Industry:       "IT Services",
				Type:           "MNC",
				Size:           "Large",
				SalaryRange:    "3.5-7 LPA",
				Locations:      []string{"Mumbai", "Chennai", "Bangalore"},
				RemoteFriendly: true,
				TechStack:      []string{"Java", "Python", "Cloud"},
				Description:    "Global IT services and consulting company.",
				JobLinks: &entity.JobLinks{
					LinkedIn:       "https://www.linkedin.com/company/tata-consultancy-services/jobs/",
					Indeed:         "https://www.indeed.co.in/cmp/Tata-Consultancy-Services/jobs",
					Naukri:         "https://www.naukri.com/tcs-jobs",
					CompanyCareers: "https://www.tcs.com/careers",
				},
			},
			{
				ID:          "zoho",
				Name:        "Zoho",
				Industry:    "SaaS",
				Type:        "Product",
				Size:        "Large",
				SalaryRange: "6-12 LPA",
				Locations:   []string{"Chennai"},
				TechStack:   []string{"Java", "JavaScript"},
				Description: "Cloud software suite for businesses.",
				JobLinks: &entity.JobLinks{
					LinkedIn:       "https://www.linkedin.com/company/zoho/jobs/",
					CompanyCareers: "https://www.zoho.com/careers/",
				},
			},
		},
		MatchResults: &entity.MatchResults{
			UserProfileSummary: &entity.ProfileSummary{
				Skills:          []string{"Python", "Java"},
				Location:        "Bangalore",
				ExperienceCount: 1,
			},
			MatchedCompanies: []*entity.MatchedCompany{
				{
					Company: entity.Company{
						ID:   "zoho",
						Name: "Zoho",
						JobLinks: &entity.JobLinks{
							LinkedIn:       "https://www.linkedin.com/company/zoho/jobs/",
							CompanyCareers: "https://www.zoho.com/careers/",
						},
					},
					MatchScore:        entity.MatchScore{Overall: 86, SkillMatch: 90, CultureMatch: 80, LocationMatch: 85},
					MatchExplanations: []string{"Strong Java skills"},
					MatchingSkills:    []string{"Java"},
					RecommendedRoles:  []string{"Member Technical Staff"},
				},
				{
					Company: entity.Company{
						ID:   "tcs",
						Name: "Tata Consultancy Services",
						JobLinks: &entity.JobLinks{
							LinkedIn: "https://www.linkedin.com/company/tata-consultancy-services/jobs/",
							Naukri:   "https://www.naukri.com/tcs-jobs",
						},
					},
					MatchScore:       entity.MatchScore{Overall: 64, SkillMatch: 60, CultureMatch: 70, LocationMatch: 65},
					MatchingSkills:   []string{"Python"},
					RecommendedRoles: []string{"Assistant System Engineer"},
				},
			},
			TotalMatches: 2,
		},
		Learning: &entity.LearningRecommendations{
			UserProfile: &entity.LearnerProfile{
				Skills:              []string{"Python"},
				Branch:              "Computer Science",
				IdentifiedWeakAreas: []string{"System Design"},
			},
			Recommendations: []*entity.LearningCategory{
				{
					Category: "System Design",
					Resources: []*entity.LearningResource{
						{Title: "System Design Primer", URL: "https://www.youtube.com/watch?v=primer", Channel: "Gaurav Sen", Duration: "45 min"},
					},
				},
			},
		},
		Evaluation: &entity.ResumeEvaluation{
			OverallScore:  78,
			SectionScores: map[string]float64{"contact": 90, "experience": 70},
			Strengths:     []string{"Clear project descriptions"},
			Improvements:  []string{"Quantify achievements"},
			ATSScore:      82,
		},
		QuizStats: entity.QuizStats{TotalSessions: 3, AverageScore: 6.666},
		Projects: []*entity.Project{
			{ID: "proj-1", Title: "Campus Connect", Description: "Event app", UserID: DefaultUserID, Status: "active", Deadline: &deadline, Progress: 40},
		},
		Tasks: []*entity.Task{
			{ID: "task-1", ProjectID: "proj-1", Title: "Design schema", Status: entity.TaskStatusTodo, Priority: entity.TaskPriorityHigh},
			{ID: "task-2", ProjectID: "proj-1", Title: "Build API", Status: entity.TaskStatusInProgress, Priority: entity.TaskPriorityMedium},
			{ID: "task-3", ProjectID: "proj-1", Title: "Write README", Status: entity.TaskStatusCompleted, Priority: entity.TaskPriorityLow},
		},
	}
}
