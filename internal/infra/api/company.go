package api

import (
	"context"
	"encoding/json"
	"net/http"

	"engineershub/internal/domain/entity"
)

// matchEnvelope wraps match results on both the match and my-matches endpoints.
type matchEnvelope struct {
	Message string               `json:"message"`
	Results *entity.MatchResults `json:"results"`
}

type applyEnvelope struct {
	Message     string              `json:"message"`
	Application *entity.Application `json:"application"`
}

type applicationsEnvelope struct {
	Applications []*entity.Application `json:"applications"`
}

func (c *Client) ListCompanies(ctx context.Context) ([]*entity.Company, error) {
	var companies []*entity.Company
	if err := c.doJSON(ctx, http.MethodGet, "/companies", nil, nil, &companies); err != nil {
		return nil, err
	}

	return companies, nil
}

func (c *Client) GetCompany(ctx context.Context, id string) (*entity.Company, error) {
	var company entity.Company
	if err := c.doJSON(ctx, http.MethodGet, "/companies/"+escape(id), nil, nil, &company); err != nil {
		return nil, err
	}

	return &company, nil
}

// MyMatches calls GET /companies/my-matches. Results are nil when nothing was matched yet.
func (c *Client) MyMatches(ctx context.Context) (*entity.MatchResults, error) {
	var envelope matchEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/companies/my-matches", nil, nil, &envelope); err != nil {
		return nil, err
	}

	return envelope.Results, nil
}

// MatchProfile calls POST /companies/match-profile with the raw profile document.
func (c *Client) MatchProfile(ctx context.Context, profile json.RawMessage) (*entity.MatchResults, error) {
	var envelope matchEnvelope
	if err := c.doJSON(ctx, http.MethodPost, "/companies/match-profile", nil, profile, &envelope); err != nil {
		return nil, err
	}

	return envelope.Results, nil
}

// Apply calls POST /companies/{id}/apply. The returned application may be nil.
func (c *Client) Apply(ctx context.Context, companyID string, req *entity.ApplicationRequest) (*entity.Application, error) {
	var envelope applyEnvelope
	if err := c.doJSON(ctx, http.MethodPost, "/companies/"+escape(companyID)+"/apply", nil, req, &envelope); err != nil {
		return nil, err
	}

	return envelope.Application, nil
}

// MyApplications calls GET /applications/my-applications.
func (c *Client) MyApplications(ctx context.Context) ([]*entity.Application, error) {
	var envelope applicationsEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/applications/my-applications", nil, nil, &envelope); err != nil {
		return nil, err
	}

	return envelope.Applications, nil
}

// Recommendations calls GET /learning/youtube-recommendations.
func (c *Client) Recommendations(ctx context.Context) (*entity.LearningRecommendations, error) {
	var recs entity.LearningRecommendations
	if err := c.doJSON(ctx, http.MethodGet, "/learning/youtube-recommendations", nil, nil, &recs); err != nil {
		return nil, err
	}

	return &recs, nil
}
