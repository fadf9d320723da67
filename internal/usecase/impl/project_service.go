package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "engineershub/internal/delivery/context"
	"engineershub/internal/domain/entity"
	domainerrors "engineershub/internal/domain/errors"
	"engineershub/internal/domain/repository"
	"engineershub/internal/errors"
	"engineershub/internal/usecase"
)

// projectService implements the ProjectUsecase interface.
type projectService struct {
	mu     sync.Mutex
	repo   repository.ProjectRepository
	logger *slog.Logger

	projects []*entity.Project
	selected *entity.Project
	tasks    []*entity.Task
}

// NewProjectService is the constructor for projectService.
func NewProjectService(repo repository.ProjectRepository, logger *slog.Logger) usecase.ProjectUsecase {
	return &projectService{
		repo:   repo,
		logger: logger,
	}
}

func (srv *projectService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LoadProjects refreshes the project list. On failure the previous list is kept.
func (srv *projectService) LoadProjects(ctx context.Context) ([]*entity.Project, error) {
	projects, err := srv.repo.ListProjects(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to fetch projects", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to fetch projects")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.projects = projects

	return projects, nil
}

func (srv *projectService) Projects() []*entity.Project {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.projects
}

func (srv *projectService) SelectProject(ctx context.Context, projectID string) (entity.Board, error) {
	srv.mu.Lock()
	project := srv.findProjectLocked(projectID)
	srv.mu.Unlock()

	if project == nil {
		return nil, domainerrors.ErrNotFound.WithDetails("project " + projectID)
	}

	tasks, err := srv.repo.ListTasks(ctx, projectID)
	if err != nil {
		srv.log(ctx).Error("Failed to fetch tasks", slog.Any("error", err), slog.String("project_id", projectID))

		return nil, errors.Wrapf(err, "failed to fetch tasks of %s", projectID)
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.selected = project
	srv.tasks = tasks

	return entity.NewBoard(tasks), nil
}

func (srv *projectService) findProjectLocked(projectID string) *entity.Project {
	for _, p := range srv.projects {
		if p.ID == projectID {
			return p
		}
	}

	return nil
}

func (srv *projectService) Selected() *entity.Project {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.selected
}

func (srv *projectService) Board() entity.Board {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return entity.NewBoard(srv.tasks)
}

// CreateProject creates the project and reloads the list.
func (srv *projectService) CreateProject(ctx context.Context, input usecase.CreateProjectInput) (*entity.Project, error) {
	if err := usecase.Validate(&input); err != nil {
		return nil, err
	}

	project, err := srv.repo.CreateProject(ctx, &repository.ProjectRequest{
		Title:       input.Title,
		Description: input.Description,
		Deadline:    input.Deadline,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create project", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create project")
	}

	srv.log(ctx).Info("Project created", slog.String("project_id", project.ID))

	if _, err := srv.LoadProjects(ctx); err != nil {
		srv.log(ctx).Warn("Project list is stale", slog.Any("error", err))
	}

	return project, nil
}

// CreateTask adds a task to the selected project and refetches its board.
func (srv *projectService) CreateTask(ctx context.Context, input usecase.CreateTaskInput) (*entity.Task, error) {
	if err := usecase.Validate(&input); err != nil {
		return nil, err
	}

	project := srv.Selected()
	if project == nil {
		return nil, domainerrors.ErrInvalidTransition.WithDetails("no project selected")
	}

	priority := input.Priority
	if priority == "" {
		priority = entity.TaskPriorityMedium
	}

	task, err := srv.repo.CreateTask(ctx, project.ID, &repository.TaskRequest{
		Title:       input.Title,
		Description: input.Description,
		Priority:    priority,
		DueDate:     input.DueDate,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create task", slog.Any("error", err), slog.String("project_id", project.ID))

		return nil, errors.Wrap(err, "failed to create task")
	}

	if _, err := srv.SelectProject(ctx, project.ID); err != nil {
		srv.log(ctx).Warn("Board is stale", slog.Any("error", err))
	}

	return task, nil
}

// AdvanceTask moves a task one column right. Completed tasks stay put.
func (srv *projectService) AdvanceTask(ctx context.Context, taskID string) (entity.Board, error) {
	srv.mu.Lock()
	project := srv.selected
	var task *entity.Task
	for _, t := range srv.tasks {
		if t.ID == taskID {
			task = t

			break
		}
	}
	srv.mu.Unlock()

	if project == nil || task == nil {
		return nil, domainerrors.ErrNotFound.WithDetails("task " + taskID)
	}

	next, ok := task.Status.Next()
	if !ok {
		return nil, domainerrors.ErrInvalidTransition.WithDetails("task already completed")
	}

	updated := *task
	updated.Status = next

	if _, err := srv.repo.UpdateTask(ctx, &updated); err != nil {
		srv.log(ctx).Error("Failed to update task", slog.Any("error", err), slog.String("task_id", taskID))

		return nil, errors.Wrapf(err, "failed to update task %s", taskID)
	}

	srv.log(ctx).Debug("Task advanced", slog.String("task_id", taskID), slog.String("status", string(next)))

	return srv.SelectProject(ctx, project.ID)
}
