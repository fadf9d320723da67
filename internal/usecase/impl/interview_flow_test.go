package impl

import (
	"context"
	"sync"
	"testing"

	"engineershub/internal/domain/entity"
	domainerrors "engineershub/internal/domain/errors"
	"engineershub/internal/errors"
	mockRepo "engineershub/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func hrSession() *entity.InterviewSession {
	return &entity.InterviewSession{
		ID:   "session-1",
		Type: entity.InterviewTypeHR,
		Questions: []*entity.InterviewQuestion{
			{ID: "hr_0", Question: "Tell me about yourself."},
			{ID: "hr_1", Question: "Why do you want to work here?"},
		},
	}
}

// sentLog records the answers the repository received, in order.
type sentLog struct {
	mu  sync.Mutex
	ids []string
}

func (l *sentLog) add(_ context.Context, _ string, resp *entity.InterviewResponse) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.ids = append(l.ids, resp.QuestionID)
}

func (l *sentLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]string(nil), l.ids...)
}

func TestInterviewFlow_HRScenario(t *testing.T) {
	repo := mockRepo.NewMockInterviewRepository(t)
	flow := NewInterviewFlow(repo, entity.NewRequestContext(), newDiscardLogger())
	ctx := context.Background()
	sent := &sentLog{}

	repo.EXPECT().StartSession(ctx, entity.InterviewTypeHR).Return(hrSession(), nil)
	repo.EXPECT().SaveResponse(mock.Anything, "session-1", mock.Anything).Run(sent.add).Return(nil).Times(2)

	require.NoError(t, flow.Start(ctx, entity.InterviewTypeHR))
	assert.Equal(t, "hr_0", flow.Snapshot().Question.ID)

	require.NoError(t, flow.SetAnswer("I am a final year student."))
	require.NoError(t, flow.Submit(ctx))
	assert.Equal(t, "hr_1", flow.Snapshot().Question.ID)

	require.NoError(t, flow.SetAnswer("I like the product."))
	require.NoError(t, flow.Submit(ctx))

	flow.Wait()

	snap := flow.Snapshot()
	assert.Equal(t, entity.InterviewStateCompleted, snap.State)
	assert.Nil(t, snap.Question)
	require.Len(t, snap.Responses, 2)
	assert.Equal(t, "hr_0", snap.Responses[0].QuestionID)
	assert.Equal(t, "Tell me about yourself.", snap.Responses[0].Question)
	assert.Equal(t, "I like the product.", snap.Responses[1].Answer)
	assert.Equal(t, []string{"hr_0", "hr_1"}, sent.all())
}

func TestInterviewFlow_MirrorGrowsWithEachSubmit(t *testing.T) {
	repo := mockRepo.NewMockInterviewRepository(t)
	flow := NewInterviewFlow(repo, entity.NewRequestContext(), newDiscardLogger())
	ctx := context.Background()

	session := &entity.InterviewSession{ID: "session-2", Type: entity.InterviewTypeTechnical}
	for _, id := range []string{"technical_0", "technical_1", "technical_2"} {
		session.Questions = append(session.Questions, &entity.InterviewQuestion{ID: id, Question: "Q " + id})
	}

	repo.EXPECT().StartSession(ctx, entity.InterviewTypeTechnical).Return(session, nil)
	repo.EXPECT().SaveResponse(mock.Anything, "session-2", mock.Anything).Return(nil)

	require.NoError(t, flow.Start(ctx, entity.InterviewTypeTechnical))

	for i, q := range session.Questions {
		require.NoError(t, flow.SetAnswer("answer"))
		require.NoError(t, flow.Submit(ctx))

		responses := flow.Snapshot().Responses
		require.Len(t, responses, i+1)
		assert.Equal(t, q.ID, responses[i].QuestionID)
	}

	flow.Wait()
	assert.Equal(t, entity.InterviewStateCompleted, flow.Snapshot().State)
}

func TestInterviewFlow_CompletesWhenLastPersistFails(t *testing.T) {
	repo := mockRepo.NewMockInterviewRepository(t)
	flow := NewInterviewFlow(repo, entity.NewRequestContext(), newDiscardLogger())
	ctx := context.Background()

	repo.EXPECT().StartSession(ctx, entity.InterviewTypeHR).Return(hrSession(), nil)
	repo.EXPECT().SaveResponse(mock.Anything, "session-1", mock.MatchedBy(func(r *entity.InterviewResponse) bool {
		return r.QuestionID == "hr_0"
	})).Return(nil).Once()
	repo.EXPECT().SaveResponse(mock.Anything, "session-1", mock.MatchedBy(func(r *entity.InterviewResponse) bool {
		return r.QuestionID == "hr_1"
	})).Return(errors.New("internal server error")).Once()

	require.NoError(t, flow.Start(ctx, entity.InterviewTypeHR))
	for _, answer := range []string{"first", "second"} {
		require.NoError(t, flow.SetAnswer(answer))
		require.NoError(t, flow.Submit(ctx))
	}
	flow.Wait()

	snap := flow.Snapshot()
	assert.Equal(t, entity.InterviewStateCompleted, snap.State)
	assert.Len(t, snap.Responses, 2)
}

func TestInterviewFlow_SubmitDoesNotWaitForPersistence(t *testing.T) {
	repo := mockRepo.NewMockInterviewRepository(t)
	flow := NewInterviewFlow(repo, entity.NewRequestContext(), newDiscardLogger())
	ctx := context.Background()
	release := make(chan struct{})

	repo.EXPECT().StartSession(ctx, entity.InterviewTypeHR).Return(hrSession(), nil)
	repo.EXPECT().SaveResponse(mock.Anything, "session-1", mock.Anything).
		RunAndReturn(func(context.Context, string, *entity.InterviewResponse) error {
			<-release

			return nil
		})

	require.NoError(t, flow.Start(ctx, entity.InterviewTypeHR))
	require.NoError(t, flow.SetAnswer("first"))
	require.NoError(t, flow.Submit(ctx))
	require.NoError(t, flow.SetAnswer("second"))
	require.NoError(t, flow.Submit(ctx))

	assert.Equal(t, entity.InterviewStateCompleted, flow.Snapshot().State)

	close(release)
	flow.Wait()
}

func TestInterviewFlow_Guards(t *testing.T) {
	repo := mockRepo.NewMockInterviewRepository(t)
	flow := NewInterviewFlow(repo, entity.NewRequestContext(), newDiscardLogger())
	ctx := context.Background()

	require.ErrorIs(t, flow.SetAnswer("x"), domainerrors.ErrInvalidTransition)
	require.ErrorIs(t, flow.Submit(ctx), domainerrors.ErrInvalidTransition)
	require.ErrorIs(t, flow.Start(ctx, entity.InterviewType("sales")), domainerrors.ErrValidationFailed)

	repo.EXPECT().StartSession(ctx, entity.InterviewTypeHR).Return(hrSession(), nil)
	require.NoError(t, flow.Start(ctx, entity.InterviewTypeHR))
	require.ErrorIs(t, flow.Submit(ctx), domainerrors.ErrEmptyAnswer)

	flow.Reset()
	snap := flow.Snapshot()
	assert.Equal(t, entity.InterviewStateNotStarted, snap.State)
	assert.Empty(t, snap.Responses)
	assert.Empty(t, snap.SessionID)
}

func TestInterviewFlow_StartFailureKeepsState(t *testing.T) {
	repo := mockRepo.NewMockInterviewRepository(t)
	flow := NewInterviewFlow(repo, entity.NewRequestContext(), newDiscardLogger())
	ctx := context.Background()

	repo.EXPECT().StartSession(ctx, entity.InterviewTypeHR).Return(nil, errors.New("unavailable"))

	require.Error(t, flow.Start(ctx, entity.InterviewTypeHR))
	snap := flow.Snapshot()
	assert.Equal(t, entity.InterviewStateNotStarted, snap.State)
	assert.False(t, snap.Loading)
}

func TestInterviewFlow_StartWithoutSession(t *testing.T) {
	repo := mockRepo.NewMockInterviewRepository(t)
	flow := NewInterviewFlow(repo, entity.NewRequestContext(), newDiscardLogger())
	ctx := context.Background()

	repo.EXPECT().StartSession(ctx, entity.InterviewTypeHR).Return(nil, nil)

	require.ErrorIs(t, flow.Start(ctx, entity.InterviewTypeHR), domainerrors.ErrNotFound)
	snap := flow.Snapshot()
	assert.Equal(t, entity.InterviewStateNotStarted, snap.State)
	assert.False(t, snap.Loading)
}

func TestInterviewFlow_AnswerSentWithCredentialOfItsSession(t *testing.T) {
	repo := mockRepo.NewMockInterviewRepository(t)
	rc := entity.NewRequestContext()
	rc.Attach("alice-token")
	flow := NewInterviewFlow(repo, rc, newDiscardLogger())
	ctx := context.Background()
	release := make(chan struct{})

	var authorization string
	repo.EXPECT().StartSession(ctx, entity.InterviewTypeHR).Return(hrSession(), nil)
	repo.EXPECT().SaveResponse(mock.Anything, "session-1", mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string, _ *entity.InterviewResponse) error {
			<-release
			authorization = rc.AuthorizationFor(ctx)

			return nil
		}).Once()

	require.NoError(t, flow.Start(ctx, entity.InterviewTypeHR))
	require.NoError(t, flow.SetAnswer("first"))
	require.NoError(t, flow.Submit(ctx))

	rc.Detach()
	rc.Attach("bob-token")
	close(release)
	flow.Wait()

	assert.Equal(t, "Bearer alice-token", authorization)
}
