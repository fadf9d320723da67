package usecase

import (
	"context"
	"time"

	"engineershub/internal/domain/entity"
)

// CreateProjectInput defines a new project.
type CreateProjectInput struct {
	Title       string `validate:"required"`
	Description string
	Deadline    *time.Time
}

// CreateTaskInput defines a new task in the selected project.
type CreateTaskInput struct {
	Title       string              `validate:"required"`
	Description string
	Priority    entity.TaskPriority `validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time
}

// ProjectUsecase drives the project board.
type ProjectUsecase interface {
	LoadProjects(ctx context.Context) ([]*entity.Project, error)
	Projects() []*entity.Project

	// SelectProject makes a project current and fetches its tasks.
	SelectProject(ctx context.Context, projectID string) (entity.Board, error)
	Selected() *entity.Project
	Board() entity.Board

	CreateProject(ctx context.Context, input CreateProjectInput) (*entity.Project, error)
	CreateTask(ctx context.Context, input CreateTaskInput) (*entity.Task, error)

	// AdvanceTask moves a task one column right, then refetches the board.
	AdvanceTask(ctx context.Context, taskID string) (entity.Board, error)
}
