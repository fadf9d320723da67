package repository

import (
	"context"

	"engineershub/internal/domain/entity"
)

// QuizRepository serves question banks.
type QuizRepository interface {
	// Questions returns a fresh question list for the category.
	Questions(ctx context.Context, category entity.QuizCategory) ([]*entity.QuizQuestion, error)
}

// InterviewRepository manages server-side interview sessions.
type InterviewRepository interface {
	// StartSession opens a scripted interview session of the given type.
	StartSession(ctx context.Context, interviewType entity.InterviewType) (*entity.InterviewSession, error)

	// SaveResponse records one answer against the session.
	SaveResponse(ctx context.Context, sessionID string, resp *entity.InterviewResponse) error
}
