package impl

import (
	"context"
	"log/slog"

	deliverycontext "engineershub/internal/delivery/context"
	"engineershub/internal/domain/entity"
	"engineershub/internal/domain/repository"
	"engineershub/internal/usecase"
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	repo   repository.DashboardRepository
	logger *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(repo repository.DashboardRepository, logger *slog.Logger) usecase.DashboardUsecase {
	return &dashboardService{repo: repo, logger: logger}
}

func (srv *dashboardService) Load(ctx context.Context) *entity.Dashboard {
	dashboard, err := srv.repo.Dashboard(ctx)
	if err != nil || dashboard == nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Failed to fetch dashboard", slog.Any("error", err))

		return &entity.Dashboard{}
	}

	return dashboard
}
