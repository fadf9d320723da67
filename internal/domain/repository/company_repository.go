package repository

import (
	"context"
	"encoding/json"

	"engineershub/internal/domain/entity"
)

// CompanyRepository defines the company directory and matching endpoints.
type CompanyRepository interface {
	ListCompanies(ctx context.Context) ([]*entity.Company, error)
	GetCompany(ctx context.Context, id string) (*entity.Company, error)

	// MyMatches returns the last stored match results. A nil result with nil error means none yet.
	MyMatches(ctx context.Context) (*entity.MatchResults, error)

	// MatchProfile submits the raw profile document for server-side matching.
	MatchProfile(ctx context.Context, profile json.RawMessage) (*entity.MatchResults, error)

	// Apply records an application to a company.
	Apply(ctx context.Context, companyID string, req *entity.ApplicationRequest) (*entity.Application, error)
}

// ApplicationRepository lists the user's tracked applications.
type ApplicationRepository interface {
	MyApplications(ctx context.Context) ([]*entity.Application, error)
}

// ResumeRepository sends resumes for evaluation.
type ResumeRepository interface {
	// Validate checks type and size locally. It never touches the network.
	Validate(upload *entity.ResumeUpload) error

	// Evaluate uploads an already validated resume.
	Evaluate(ctx context.Context, upload *entity.ResumeUpload) (*entity.ResumeEvaluation, error)
}

// LearningRepository fetches learning recommendations.
type LearningRepository interface {
	Recommendations(ctx context.Context) (*entity.LearningRecommendations, error)
}
