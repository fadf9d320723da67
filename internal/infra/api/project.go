package api

import (
	"context"
	"net/http"

	"engineershub/internal/domain/entity"
	"engineershub/internal/domain/repository"
)

// Dashboard calls GET /dashboard.
func (c *Client) Dashboard(ctx context.Context) (*entity.Dashboard, error) {
	var dashboard entity.Dashboard
	if err := c.doJSON(ctx, http.MethodGet, "/dashboard", nil, nil, &dashboard); err != nil {
		return nil, err
	}

	return &dashboard, nil
}

func (c *Client) ListProjects(ctx context.Context) ([]*entity.Project, error) {
	var projects []*entity.Project
	if err := c.doJSON(ctx, http.MethodGet, "/projects", nil, nil, &projects); err != nil {
		return nil, err
	}

	return projects, nil
}

func (c *Client) CreateProject(ctx context.Context, req *repository.ProjectRequest) (*entity.Project, error) {
	var project entity.Project
	if err := c.doJSON(ctx, http.MethodPost, "/projects", nil, req, &project); err != nil {
		return nil, err
	}

	return &project, nil
}

func (c *Client) ListTasks(ctx context.Context, projectID string) ([]*entity.Task, error) {
	var tasks []*entity.Task
	if err := c.doJSON(ctx, http.MethodGet, "/projects/"+escape(projectID)+"/tasks", nil, nil, &tasks); err != nil {
		return nil, err
	}

	return tasks, nil
}

func (c *Client) CreateTask(ctx context.Context, projectID string, req *repository.TaskRequest) (*entity.Task, error) {
	var task entity.Task
	if err := c.doJSON(ctx, http.MethodPost, "/projects/"+escape(projectID)+"/tasks", nil, req, &task); err != nil {
		return nil, err
	}

	return &task, nil
}

// UpdateTask calls PUT /tasks/{id} with the full task.
func (c *Client) UpdateTask(ctx context.Context, task *entity.Task) (*entity.Task, error) {
	var updated entity.Task
	if err := c.doJSON(ctx, http.MethodPut, "/tasks/"+escape(task.ID), nil, task, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}
