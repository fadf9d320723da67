package usecase

import (
	"context"

	"engineershub/internal/domain/entity"
)

// StartQuizInput selects the question bank.
type StartQuizInput struct {
	Category entity.QuizCategory `validate:"required,oneof=aptitude coding"`
}

// QuizSnapshot is a read-only view of the quiz flow.
type QuizSnapshot struct {
	State    entity.QuizState
	Category entity.QuizCategory
	Question *entity.QuizQuestion // nil unless in progress
	Index    int
	Total    int
	Score    int
	Pending  string
	Loading  bool
}

// QuizUsecase drives a local quiz attempt: idle, in_progress, finished.
type QuizUsecase interface {
	// Start fetches a fresh question list and begins the attempt.
	Start(ctx context.Context, category entity.QuizCategory) error

	// Select sets the pending answer for the current question.
	Select(answer string) error

	// Submit grades the pending answer and advances.
	Submit() error

	// Reset returns to idle.
	Reset()

	Snapshot() QuizSnapshot
	Result() entity.QuizResult
}
