package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"sync"

	deliverycontext "engineershub/internal/delivery/context"
	"engineershub/internal/domain/entity"
	domainerrors "engineershub/internal/domain/errors"
	"engineershub/internal/domain/repository"
	"engineershub/internal/errors"
	"engineershub/internal/usecase"
)

// quizFlow implements the QuizUsecase interface.
type quizFlow struct {
	mu     sync.Mutex
	repo   repository.QuizRepository
	logger *slog.Logger

	state     entity.QuizState
	category  entity.QuizCategory
	questions []*entity.QuizQuestion
	index     int
	score     int
	pending   string
	loading   bool
}

// NewQuizFlow is the constructor for quizFlow.
func NewQuizFlow(repo repository.QuizRepository, logger *slog.Logger) usecase.QuizUsecase {
	return &quizFlow{
		repo:   repo,
		logger: logger,
		state:  entity.QuizStateIdle,
	}
}

func (f *quizFlow) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, f.logger)
}

// Start fetches a fresh question list. On failure the previous state is kept.
func (f *quizFlow) Start(ctx context.Context, category entity.QuizCategory) error {
	if err := usecase.Validate(&usecase.StartQuizInput{Category: category}); err != nil {
		return err
	}

	f.mu.Lock()
	if f.loading {
		f.mu.Unlock()

		return domainerrors.ErrFlowBusy
	}
	f.loading = true
	f.mu.Unlock()

	questions, err := f.repo.Questions(ctx, category)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.loading = false

	if err != nil {
		f.log(ctx).Error("Failed to fetch quiz questions", slog.Any("error", err), slog.String("category", string(category)))

		return errors.Wrap(err, "failed to fetch quiz questions")
	}

	if len(questions) == 0 {
		f.log(ctx).Warn("Quiz has no questions", slog.String("category", string(category)))
		f.resetLocked()

		return domainerrors.ErrNotFound.WithDetails("no questions available")
	}

	f.state = entity.QuizStateInProgress
	f.category = category
	f.questions = questions
	f.index = 0
	f.score = 0
	f.pending = ""

	return nil
}

// Select records the pending answer for the current question.
func (f *quizFlow) Select(answer string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != entity.QuizStateInProgress {
		return domainerrors.ErrInvalidTransition
	}
	f.pending = answer

	return nil
}

// Submit grades the pending answer by exact match and advances.
func (f *quizFlow) Submit() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != entity.QuizStateInProgress {
		return domainerrors.ErrInvalidTransition
	}
	if strings.TrimSpace(f.pending) == "" {
		return domainerrors.ErrEmptyAnswer
	}

	if f.pending == f.questions[f.index].CorrectAnswer {
		f.score++
	}
	f.pending = ""

	if f.index < len(f.questions)-1 {
		f.index++
	} else {
		f.state = entity.QuizStateFinished
	}

	return nil
}

func (f *quizFlow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.resetLocked()
}

func (f *quizFlow) resetLocked() {
	f.state = entity.QuizStateIdle
	f.category = ""
	f.questions = nil
	f.index = 0
	f.score = 0
	f.pending = ""
}

func (f *quizFlow) Snapshot() usecase.QuizSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	snap := usecase.QuizSnapshot{
		State:    f.state,
		Category: f.category,
		Index:    f.index,
		Total:    len(f.questions),
		Score:    f.score,
		Pending:  f.pending,
		Loading:  f.loading,
	}
	if f.state == entity.QuizStateInProgress {
		snap.Question = f.questions[f.index]
	}

	return snap
}

func (f *quizFlow) Result() entity.QuizResult {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := entity.QuizResult{
		Category: f.category,
		Score:    f.score,
		Total:    len(f.questions),
	}
	if result.Total > 0 {
		result.Percentage = int(math.Round(float64(f.score) / float64(result.Total) * 100))
	}

	return result
}
