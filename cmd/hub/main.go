package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"engineershub/config"
	"engineershub/internal/delivery"
	"engineershub/internal/delivery/cli"
	"engineershub/internal/domain/entity"
	"engineershub/internal/domain/repository"
	"engineershub/internal/domain/service"
	"engineershub/internal/infra/api"
	"engineershub/internal/infra/auth"
	logs "engineershub/internal/infra/log"
	"engineershub/internal/infra/qrcode"
	"engineershub/internal/infra/store"
	"engineershub/internal/usecase"
	"engineershub/internal/usecase/impl"

	"go.uber.org/fx"
)

type startShellParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Logger     *slog.Logger
	Session    usecase.SessionUsecase
	Interview  usecase.InterviewUsecase
	Companies  usecase.CompanyUsecase
	Deliveries []delivery.Delivery `group:"deliveries"`
}

// drainTimeout bounds how long quitting waits for queued answers and applications.
const drainTimeout = 10 * time.Second

func main() {
	fx.New(
		fx.NopLogger,
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		fx.Invoke(
			startShell,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		entity.NewRequestContext,
		newTerminal,
	)
}

func newTerminal() cli.Terminal {
	return cli.Terminal{In: os.Stdin, Out: os.Stdout}
}

func injectRepo() fx.Option {
	return fx.Provide(
		newCredentialStore,
		fx.Annotate(
			newAPIClient,
			fx.As(new(repository.AuthRepository)),
			fx.As(new(repository.DashboardRepository)),
			fx.As(new(repository.ProjectRepository)),
			fx.As(new(repository.QuizRepository)),
			fx.As(new(repository.InterviewRepository)),
			fx.As(new(repository.CompanyRepository)),
			fx.As(new(repository.ApplicationRepository)),
			fx.As(new(repository.ResumeRepository)),
			fx.As(new(repository.LearningRepository)),
			fx.As(new(repository.ProfileRepository)),
		),
	)
}

// newCredentialStore opens the durable store and closes it on shutdown.
func newCredentialStore(ctx context.Context, lc fx.Lifecycle, cfg *config.Config) (repository.CredentialRepository, error) {
	credentials, err := store.Open(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return credentials.Close()
		},
	})

	return credentials, nil
}

func newAPIClient(lc fx.Lifecycle, cfg *config.Config, rc *entity.RequestContext, logger *slog.Logger) (*api.Client, error) {
	client, err := api.NewClient(cfg.API, &http.Client{Timeout: cfg.API.Timeout}, rc, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

func injectService() fx.Option {
	return fx.Provide(
		auth.NewJWTInspector,
		fx.Annotate(
			newLinkOpener,
			fx.As(new(service.LinkOpener)),
			fx.As(new(cli.QRExporter)),
		),
	)
}

func newLinkOpener(cfg *config.Config, terminal cli.Terminal) qrcode.LinkOpener {
	return qrcode.NewTerminalOpener(cfg.Browser, terminal.Out)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		fx.Annotate(
			impl.NewSessionService,
			fx.As(new(usecase.SessionUsecase)),
			fx.As(new(usecase.CurrentUser)),
		),
		impl.NewDashboardService,
		impl.NewProjectService,
		impl.NewQuizFlow,
		impl.NewInterviewFlow,
		impl.NewCompanyMatchingService,
		impl.NewProfileService,
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		cli.NewShell,
		fx.Annotate(
			cli.NewDelivery,
			fx.ResultTags(`group:"deliveries"`),
		),
	)
}

// startShell restores the saved session, then hands the terminal to the deliveries.
// The app shuts down once they return and the side-effect queues have drained.
func startShell(ctx context.Context, params startShellParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				params.Session.Hydrate(ctx)

				for _, d := range params.Deliveries {
					if err := d.Serve(ctx); err != nil {
						params.Logger.Error("Shell stopped", slog.Any("error", err))
					}
				}

				drainCtx, cancel := context.WithTimeout(ctx, drainTimeout)
				defer cancel()
				drainSideEffects(drainCtx, params.Logger, params.Interview, params.Companies)

				if err := params.Shutdown(); err != nil {
					params.Logger.Error("Failed to shut down", slog.Any("error", err))
				}
			}()

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			drainSideEffects(stopCtx, params.Logger, params.Interview, params.Companies)

			return nil
		},
	})
}

type waiter interface {
	Wait()
}

// drainSideEffects blocks until every queue has flushed or ctx is done.
func drainSideEffects(ctx context.Context, logger *slog.Logger, queues ...waiter) bool {
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		for _, q := range queues {
			q.Wait()
		}
	}()

	select {
	case <-drained:
		return true
	case <-ctx.Done():
		logger.Warn("Gave up waiting for pending requests", slog.Any("error", ctx.Err()))

		return false
	}
}
