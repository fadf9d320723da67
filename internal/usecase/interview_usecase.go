package usecase

import (
	"context"

	"engineershub/internal/domain/entity"
)

// StartInterviewInput selects the interview script.
type StartInterviewInput struct {
	Type entity.InterviewType `validate:"required,oneof=hr technical"`
}

// InterviewSnapshot is a read-only view of the interview flow.
type InterviewSnapshot struct {
	State     entity.InterviewState
	Type      entity.InterviewType
	SessionID string
	Question  *entity.InterviewQuestion // nil unless in progress
	Index     int
	Total     int
	Pending   string
	Responses []*entity.InterviewResponse
	Loading   bool
}

// InterviewUsecase drives a mock interview: not_started, in_progress, completed.
// Answers are mirrored locally at once and persisted in order in the background.
type InterviewUsecase interface {
	Start(ctx context.Context, interviewType entity.InterviewType) error
	SetAnswer(text string) error
	Submit(ctx context.Context) error
	Reset()

	Snapshot() InterviewSnapshot

	// Wait blocks until every queued answer has been sent (or has failed).
	Wait()
}
