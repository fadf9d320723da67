package entity

import (
	"math"
)

// QuizStats aggregates the user's recorded quiz sessions.
type QuizStats struct {
	TotalSessions int     `json:"total_sessions"`
	AverageScore  float64 `json:"average_score"`
}

// RoundedAverage returns the average score rounded half away from zero.
func (s QuizStats) RoundedAverage() int {
	return int(math.Round(s.AverageScore))
}

// Dashboard is the landing-view summary.
type Dashboard struct {
	RecentProjects []*Project `json:"recent_projects"`
	RecentTasks    []*Task    `json:"recent_tasks"`
	QuizStats      QuizStats  `json:"quiz_stats"`
}

// MaxPendingTasks caps the pending-task list shown on the dashboard.
const MaxPendingTasks = 5

// PendingTasks returns at most MaxPendingTasks of the recent tasks.
func (d *Dashboard) PendingTasks() []*Task {
	if len(d.RecentTasks) <= MaxPendingTasks {
		return d.RecentTasks
	}

	return d.RecentTasks[:MaxPendingTasks]
}
