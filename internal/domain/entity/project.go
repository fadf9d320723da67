package entity

import (
	"time"
)

// TaskStatus is the kanban column a task sits in.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// TaskStatuses lists the kanban columns in board order.
var TaskStatuses = []TaskStatus{TaskStatusTodo, TaskStatusInProgress, TaskStatusCompleted}

// Next returns the status a task moves to when advanced, and false when it is already completed.
func (s TaskStatus) Next() (TaskStatus, bool) {
	switch s {
	case TaskStatusTodo:
		return TaskStatusInProgress, true
	case TaskStatusInProgress:
		return TaskStatusCompleted, true
	default:
		return s, false
	}
}

// Label returns the column heading for the status.
func (s TaskStatus) Label() string {
	switch s {
	case TaskStatusTodo:
		return "To Do"
	case TaskStatusInProgress:
		return "In Progress"
	case TaskStatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// TaskPriority ranks a task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Project is a server-owned project owned by the current user.
type Project struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	UserID      string     `json:"user_id,omitempty"`
	TeamMembers []string   `json:"team_members,omitempty"`
	Status      string     `json:"status"` // active, completed, paused
	Deadline    *time.Time `json:"deadline"`
	Progress    int        `json:"progress"` // 0-100
	CreatedAt   time.Time  `json:"created_at,omitzero"`
}

// Task is a server-owned unit of work inside a project.
type Task struct {
	ID          string       `json:"id"`
	ProjectID   string       `json:"project_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	AssignedTo  string       `json:"assigned_to,omitempty"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	DueDate     *time.Time   `json:"due_date"`
	CreatedAt   time.Time    `json:"created_at,omitzero"`
}

// Board groups tasks into kanban columns, preserving the server order inside each column.
type Board map[TaskStatus][]*Task

// NewBoard builds a kanban board from a task list. Tasks with an unknown status are dropped.
func NewBoard(tasks []*Task) Board {
	board := make(Board, len(TaskStatuses))
	for _, status := range TaskStatuses {
		board[status] = []*Task{}
	}
	for _, task := range tasks {
		if _, ok := board[task.Status]; ok {
			board[task.Status] = append(board[task.Status], task)
		}
	}

	return board
}
