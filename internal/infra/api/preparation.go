package api

import (
	"context"
	"net/http"
	"net/url"

	"engineershub/internal/domain/entity"
)

// Questions calls GET /quiz/questions/{category}.
func (c *Client) Questions(ctx context.Context, category entity.QuizCategory) ([]*entity.QuizQuestion, error) {
	var questions []*entity.QuizQuestion
	if err := c.doJSON(ctx, http.MethodGet, "/quiz/questions/"+escape(string(category)), nil, nil, &questions); err != nil {
		return nil, err
	}

	return questions, nil
}

// StartSession calls POST /interview/session?interview_type={type}.
func (c *Client) StartSession(ctx context.Context, interviewType entity.InterviewType) (*entity.InterviewSession, error) {
	query := url.Values{"interview_type": []string{string(interviewType)}}

	var session entity.InterviewSession
	if err := c.doJSON(ctx, http.MethodPost, "/interview/session", query, nil, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

// SaveResponse calls POST /interview/{sessionId}/response. The acknowledgement body is ignored.
func (c *Client) SaveResponse(ctx context.Context, sessionID string, resp *entity.InterviewResponse) error {
	return c.doJSON(ctx, http.MethodPost, "/interview/"+escape(sessionID)+"/response", nil, resp, nil)
}
