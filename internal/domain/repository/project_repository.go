package repository

import (
	"context"
	"time"

	"engineershub/internal/domain/entity"
)

// DashboardRepository fetches the landing-view summary.
type DashboardRepository interface {
	Dashboard(ctx context.Context) (*entity.Dashboard, error)
}

// ProjectRepository defines the project and task endpoints.
type ProjectRepository interface {
	ListProjects(ctx context.Context) ([]*entity.Project, error)
	CreateProject(ctx context.Context, req *ProjectRequest) (*entity.Project, error)

	ListTasks(ctx context.Context, projectID string) ([]*entity.Task, error)
	CreateTask(ctx context.Context, projectID string, req *TaskRequest) (*entity.Task, error)

	// UpdateTask sends the full task back with its new state.
	UpdateTask(ctx context.Context, task *entity.Task) (*entity.Task, error)
}

// ProjectRequest is the create-project payload.
type ProjectRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

// TaskRequest is the create-task payload.
type TaskRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Priority    entity.TaskPriority `json:"priority"`
	DueDate     *time.Time          `json:"due_date,omitempty"`
}
