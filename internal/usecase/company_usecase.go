package usecase

import (
	"context"

	"engineershub/internal/domain/entity"
)

// ApplyInput identifies the company and job platform of a one-click application.
type ApplyInput struct {
	Company  *entity.Company    `validate:"required"`
	Platform entity.JobPlatform `validate:"required,oneof=LinkedIn Indeed Naukri Careers"`
}

// CompanyPanels reports which panels of the company view are visible.
type CompanyPanels struct {
	Matching          bool
	Editor            bool
	ResumeEvaluator   bool
	Applications      bool
	LearningResources bool
}

// CompanyUsecase drives the company matching view.
type CompanyUsecase interface {
	// Mount loads the directory, prior matches, learning resources and applications.
	Mount(ctx context.Context)

	// GenerateProfile synthesises a matching profile for the signed-in user and stores it as JSON text.
	GenerateProfile() (string, error)
	EditProfile(text string)
	ProfileText() string
	ProfilePreview() (*entity.MatchingProfile, error)

	// AnalyzeProfile submits the profile text for matching.
	AnalyzeProfile(ctx context.Context) error

	Results() *entity.MatchResults
	Directory() []*entity.Company
	CompanyDetails(ctx context.Context, id string) (*entity.Company, error)
	Applications() []*entity.Application
	Learning() *entity.LearningRecommendations

	ToggleMatching()
	ToggleEditor()
	ToggleResumeEvaluator()
	ToggleApplications()
	ToggleLearningResources()
	Panels() CompanyPanels

	// EvaluateResume validates locally, then uploads for evaluation.
	EvaluateResume(ctx context.Context, upload *entity.ResumeUpload) (*entity.ResumeEvaluation, error)
	Evaluation() *entity.ResumeEvaluation
	ClearEvaluation()

	// Apply opens the platform link and records the application in the background.
	Apply(ctx context.Context, input ApplyInput) error

	DirectoryLoading() bool
	AnalysisLoading() bool
	Evaluating() bool

	// Wait blocks until queued application tracking has finished.
	Wait()
}
