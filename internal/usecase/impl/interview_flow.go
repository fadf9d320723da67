package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	deliverycontext "engineershub/internal/delivery/context"
	"engineershub/internal/domain/entity"
	domainerrors "engineershub/internal/domain/errors"
	"engineershub/internal/domain/repository"
	"engineershub/internal/errors"
	"engineershub/internal/usecase"
)

// interviewFlow implements the InterviewUsecase interface.
type interviewFlow struct {
	mu     sync.Mutex
	repo   repository.InterviewRepository
	queue  *sideEffectQueue
	logger *slog.Logger

	state     entity.InterviewState
	session   *entity.InterviewSession
	index     int
	responses []*entity.InterviewResponse
	pending   string
	loading   bool
}

// NewInterviewFlow is the constructor for interviewFlow.
func NewInterviewFlow(
	repo repository.InterviewRepository,
	rc *entity.RequestContext,
	logger *slog.Logger,
) usecase.InterviewUsecase {
	return &interviewFlow{
		repo:   repo,
		queue:  newSideEffectQueue(rc, logger),
		logger: logger,
		state:  entity.InterviewStateNotStarted,
	}
}

func (f *interviewFlow) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, f.logger)
}

// Start opens a server-side session. On failure the previous state is kept.
func (f *interviewFlow) Start(ctx context.Context, interviewType entity.InterviewType) error {
	if err := usecase.Validate(&usecase.StartInterviewInput{Type: interviewType}); err != nil {
		return err
	}

	f.mu.Lock()
	if f.loading {
		f.mu.Unlock()

		return domainerrors.ErrFlowBusy
	}
	f.loading = true
	f.mu.Unlock()

	session, err := f.repo.StartSession(ctx, interviewType)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.loading = false

	if err != nil {
		f.log(ctx).Error("Failed to start interview", slog.Any("error", err), slog.String("type", string(interviewType)))

		return errors.Wrap(err, "failed to start interview")
	}
	if session == nil || len(session.Questions) == 0 {
		f.log(ctx).Warn("Interview session has no questions", slog.String("type", string(interviewType)))

		return domainerrors.ErrNotFound.WithDetails("no questions available")
	}

	f.state = entity.InterviewStateInProgress
	f.session = session
	f.index = 0
	f.responses = nil
	f.pending = ""

	return nil
}

func (f *interviewFlow) SetAnswer(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != entity.InterviewStateInProgress {
		return domainerrors.ErrInvalidTransition
	}
	f.pending = text

	return nil
}

// Submit mirrors the answer locally, advances, and queues its persistence.
func (f *interviewFlow) Submit(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != entity.InterviewStateInProgress {
		return domainerrors.ErrInvalidTransition
	}
	if strings.TrimSpace(f.pending) == "" {
		return domainerrors.ErrEmptyAnswer
	}

	question := f.session.Questions[f.index]
	response := &entity.InterviewResponse{
		QuestionID: question.ID,
		Question:   question.Question,
		Answer:     f.pending,
	}
	f.responses = append(f.responses, response)
	f.pending = ""

	if f.index < len(f.session.Questions)-1 {
		f.index++
	} else {
		f.state = entity.InterviewStateCompleted
	}

	sessionID := f.session.ID
	f.queue.Enqueue(ctx, "interview.response", func(ctx context.Context) error {
		return errors.Wrapf(f.repo.SaveResponse(ctx, sessionID, response), "save response %s", response.QuestionID)
	})

	return nil
}

func (f *interviewFlow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state = entity.InterviewStateNotStarted
	f.session = nil
	f.index = 0
	f.responses = nil
	f.pending = ""
}

func (f *interviewFlow) Snapshot() usecase.InterviewSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	snap := usecase.InterviewSnapshot{
		State:     f.state,
		Index:     f.index,
		Pending:   f.pending,
		Responses: append([]*entity.InterviewResponse(nil), f.responses...),
		Loading:   f.loading,
	}
	if f.session != nil {
		snap.Type = f.session.Type
		snap.SessionID = f.session.ID
		snap.Total = len(f.session.Questions)
		if f.state == entity.InterviewStateInProgress {
			snap.Question = f.session.Questions[f.index]
		}
	}

	return snap
}

func (f *interviewFlow) Wait() {
	f.queue.Wait()
}
