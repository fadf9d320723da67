package impl

import (
	"context"
	"testing"

	"engineershub/internal/domain/entity"
	"engineershub/internal/errors"
	mockRepo "engineershub/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Load(t *testing.T) {
	repo := mockRepo.NewMockDashboardRepository(t)
	service := NewDashboardService(repo, newDiscardLogger())
	ctx := context.Background()

	dashboard := &entity.Dashboard{
		RecentProjects: []*entity.Project{{ID: "proj-1"}},
		QuizStats:      entity.QuizStats{TotalSessions: 3, AverageScore: 6.5},
	}
	repo.EXPECT().Dashboard(ctx).Return(dashboard, nil)

	got := service.Load(ctx)

	assert.Equal(t, dashboard, got)
	assert.Equal(t, 7, got.QuizStats.RoundedAverage())
}

func TestDashboardService_LoadFailureIsEmpty(t *testing.T) {
	repo := mockRepo.NewMockDashboardRepository(t)
	service := NewDashboardService(repo, newDiscardLogger())
	ctx := context.Background()

	repo.EXPECT().Dashboard(ctx).Return(nil, errors.New("bad gateway"))

	got := service.Load(ctx)

	require.NotNil(t, got)
	assert.Empty(t, got.RecentProjects)
	assert.Empty(t, got.PendingTasks())
	assert.Zero(t, got.QuizStats.TotalSessions)
}
