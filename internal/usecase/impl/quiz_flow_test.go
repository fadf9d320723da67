package impl

import (
	"context"
	"testing"

	"engineershub/internal/domain/entity"
	domainerrors "engineershub/internal/domain/errors"
	"engineershub/internal/errors"
	mockRepo "engineershub/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func aptitudeQuestions() []*entity.QuizQuestion {
	return []*entity.QuizQuestion{
		{ID: "q1", Question: "2, 4, 8, ?", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "A"},
		{ID: "q2", Question: "Odd one out", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "B"},
		{ID: "q3", Question: "Synonym of rapid", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "C"},
	}
}

func answerAll(t *testing.T, flow interface {
	Select(string) error
	Submit() error
}, answers ...string,
) {
	t.Helper()

	for _, answer := range answers {
		require.NoError(t, flow.Select(answer))
		require.NoError(t, flow.Submit())
	}
}

func TestQuizFlow_AptitudeScenario(t *testing.T) {
	repo := mockRepo.NewMockQuizRepository(t)
	flow := NewQuizFlow(repo, newDiscardLogger())
	ctx := context.Background()

	repo.EXPECT().Questions(ctx, entity.QuizCategoryAptitude).Return(aptitudeQuestions(), nil)

	require.NoError(t, flow.Start(ctx, entity.QuizCategoryAptitude))
	snap := flow.Snapshot()
	assert.Equal(t, entity.QuizStateInProgress, snap.State)
	assert.Equal(t, "q1", snap.Question.ID)
	assert.Equal(t, 3, snap.Total)

	answerAll(t, flow, "A", "X", "C")

	snap = flow.Snapshot()
	assert.Equal(t, entity.QuizStateFinished, snap.State)
	assert.Nil(t, snap.Question)
	assert.Equal(t, 2, snap.Score)

	result := flow.Result()
	assert.Equal(t, 2, result.Score)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 67, result.Percentage)
}

func TestQuizFlow_ScoreIsMonotone(t *testing.T) {
	repo := mockRepo.NewMockQuizRepository(t)
	flow := NewQuizFlow(repo, newDiscardLogger())
	ctx := context.Background()

	repo.EXPECT().Questions(ctx, entity.QuizCategoryAptitude).Return(aptitudeQuestions(), nil)
	require.NoError(t, flow.Start(ctx, entity.QuizCategoryAptitude))

	previous := 0
	for _, answer := range []string{"B", "B", "C"} {
		answerAll(t, flow, answer)
		score := flow.Snapshot().Score
		assert.GreaterOrEqual(t, score, previous)
		assert.LessOrEqual(t, score-previous, 1)
		previous = score
	}
	assert.Equal(t, 2, previous)
}

func TestQuizFlow_ExactMatchOnly(t *testing.T) {
	repo := mockRepo.NewMockQuizRepository(t)
	flow := NewQuizFlow(repo, newDiscardLogger())
	ctx := context.Background()

	repo.EXPECT().Questions(ctx, entity.QuizCategoryAptitude).Return(aptitudeQuestions(), nil)
	require.NoError(t, flow.Start(ctx, entity.QuizCategoryAptitude))

	answerAll(t, flow, "a", "B ", "C")

	assert.Equal(t, 1, flow.Result().Score)
}

func TestQuizFlow_FinishedIgnoresFurtherSubmits(t *testing.T) {
	repo := mockRepo.NewMockQuizRepository(t)
	flow := NewQuizFlow(repo, newDiscardLogger())
	ctx := context.Background()

	repo.EXPECT().Questions(ctx, entity.QuizCategoryAptitude).Return(aptitudeQuestions(), nil)
	require.NoError(t, flow.Start(ctx, entity.QuizCategoryAptitude))
	answerAll(t, flow, "A", "B", "C")

	require.ErrorIs(t, flow.Select("A"), domainerrors.ErrInvalidTransition)
	require.ErrorIs(t, flow.Submit(), domainerrors.ErrInvalidTransition)
	assert.Equal(t, 3, flow.Snapshot().Score)
	assert.Equal(t, entity.QuizStateFinished, flow.Snapshot().State)

	flow.Reset()
	assert.Equal(t, entity.QuizStateIdle, flow.Snapshot().State)
	assert.Equal(t, 0, flow.Snapshot().Score)
}

func TestQuizFlow_SubmitRequiresAnswer(t *testing.T) {
	repo := mockRepo.NewMockQuizRepository(t)
	flow := NewQuizFlow(repo, newDiscardLogger())
	ctx := context.Background()

	require.ErrorIs(t, flow.Submit(), domainerrors.ErrInvalidTransition)

	repo.EXPECT().Questions(ctx, entity.QuizCategoryAptitude).Return(aptitudeQuestions(), nil)
	require.NoError(t, flow.Start(ctx, entity.QuizCategoryAptitude))

	require.ErrorIs(t, flow.Submit(), domainerrors.ErrEmptyAnswer)
	require.NoError(t, flow.Select("  "))
	require.ErrorIs(t, flow.Submit(), domainerrors.ErrEmptyAnswer)
	assert.Equal(t, 0, flow.Snapshot().Index)
}

func TestQuizFlow_StartValidatesCategory(t *testing.T) {
	repo := mockRepo.NewMockQuizRepository(t)
	flow := NewQuizFlow(repo, newDiscardLogger())

	err := flow.Start(context.Background(), entity.QuizCategory("history"))

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	repo.AssertNotCalled(t, "Questions", mock.Anything, mock.Anything)
}

func TestQuizFlow_StartFailureKeepsState(t *testing.T) {
	repo := mockRepo.NewMockQuizRepository(t)
	flow := NewQuizFlow(repo, newDiscardLogger())
	ctx := context.Background()

	repo.EXPECT().Questions(ctx, entity.QuizCategoryAptitude).Return(aptitudeQuestions(), nil).Once()
	repo.EXPECT().Questions(ctx, entity.QuizCategoryCoding).Return(nil, errors.New("bad gateway")).Once()

	require.NoError(t, flow.Start(ctx, entity.QuizCategoryAptitude))
	answerAll(t, flow, "A")

	require.Error(t, flow.Start(ctx, entity.QuizCategoryCoding))

	snap := flow.Snapshot()
	assert.Equal(t, entity.QuizStateInProgress, snap.State)
	assert.Equal(t, entity.QuizCategoryAptitude, snap.Category)
	assert.Equal(t, 1, snap.Index)
	assert.Equal(t, 1, snap.Score)
	assert.False(t, snap.Loading)
}

func TestQuizFlow_EmptyQuestionList(t *testing.T) {
	repo := mockRepo.NewMockQuizRepository(t)
	flow := NewQuizFlow(repo, newDiscardLogger())
	ctx := context.Background()

	repo.EXPECT().Questions(ctx, entity.QuizCategoryCoding).Return([]*entity.QuizQuestion{}, nil)

	err := flow.Start(ctx, entity.QuizCategoryCoding)

	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.Equal(t, entity.QuizStateIdle, flow.Snapshot().State)
}

func TestQuizFlow_StartWhileLoadingIsBusy(t *testing.T) {
	repo := mockRepo.NewMockQuizRepository(t)
	flow := NewQuizFlow(repo, newDiscardLogger())
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})
	repo.EXPECT().Questions(ctx, entity.QuizCategoryAptitude).
		RunAndReturn(func(context.Context, entity.QuizCategory) ([]*entity.QuizQuestion, error) {
			close(entered)
			<-release

			return aptitudeQuestions(), nil
		}).Once()

	done := make(chan error, 1)
	go func() { done <- flow.Start(ctx, entity.QuizCategoryAptitude) }()

	<-entered
	assert.True(t, flow.Snapshot().Loading)
	require.ErrorIs(t, flow.Start(ctx, entity.QuizCategoryAptitude), domainerrors.ErrFlowBusy)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, flow.Snapshot().Loading)
}

func TestQuizFlow_CodingQuestionFields(t *testing.T) {
	repo := mockRepo.NewMockQuizRepository(t)
	flow := NewQuizFlow(repo, newDiscardLogger())
	ctx := context.Background()

	repo.EXPECT().Questions(ctx, entity.QuizCategoryCoding).Return([]*entity.QuizQuestion{
		{ID: "c1", Question: "Reverse a string", Language: "Python", Difficulty: "Easy", CorrectAnswer: "s[::-1]"},
	}, nil)

	require.NoError(t, flow.Start(ctx, entity.QuizCategoryCoding))
	assert.Equal(t, "Python", flow.Snapshot().Question.Language)

	answerAll(t, flow, "s[::-1]")
	assert.Equal(t, 100, flow.Result().Percentage)
}
