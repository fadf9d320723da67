package usecase

import (
	"context"

	"engineershub/internal/domain/entity"
)

// DashboardUsecase loads the landing view.
type DashboardUsecase interface {
	// Load returns the dashboard, or an empty one when the fetch fails.
	Load(ctx context.Context) *entity.Dashboard
}
