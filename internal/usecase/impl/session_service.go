package impl

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	deliverycontext "engineershub/internal/delivery/context"
	"engineershub/internal/domain/entity"
	domainerrors "engineershub/internal/domain/errors"
	"engineershub/internal/domain/repository"
	"engineershub/internal/domain/service"
	"engineershub/internal/errors"
	"engineershub/internal/usecase"
)

const (
	msgLoginFailed        = "Login failed"
	msgRegistrationFailed = "Registration failed"
)

// sessionService implements the SessionUsecase interface.
// opMu serialises operations so no request observes a half-updated session;
// stateMu guards the fields read by other use cases.
type sessionService struct {
	opMu    sync.Mutex
	stateMu sync.RWMutex

	authRepo  repository.AuthRepository
	credRepo  repository.CredentialRepository
	inspector service.TokenInspector
	rc        *entity.RequestContext
	logger    *slog.Logger
	now       func() time.Time

	user    *entity.User
	loading atomic.Bool
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	authRepo repository.AuthRepository,
	credRepo repository.CredentialRepository,
	inspector service.TokenInspector,
	rc *entity.RequestContext,
	logger *slog.Logger,
) usecase.SessionUsecase {
	srv := &sessionService{
		authRepo:  authRepo,
		credRepo:  credRepo,
		inspector: inspector,
		rc:        rc,
		logger:    logger,
		now:       time.Now,
	}
	srv.loading.Store(true)

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionService) User() *entity.User {
	srv.stateMu.RLock()
	defer srv.stateMu.RUnlock()

	return srv.user
}

func (srv *sessionService) Authenticated() bool {
	return srv.User() != nil && srv.rc.Token() != ""
}

func (srv *sessionService) Loading() bool {
	return srv.loading.Load()
}

// Login authenticates with email and password.
func (srv *sessionService) Login(ctx context.Context, email, password string) *usecase.AuthResult {
	srv.opMu.Lock()
	defer srv.opMu.Unlock()

	srv.log(ctx).Debug("Logging in", slog.String("email", email))

	resp, err := srv.authRepo.Login(ctx, email, password)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.Any("error", err), slog.String("email", email))

		return &usecase.AuthResult{Message: domainerrors.DetailOr(err, msgLoginFailed)}
	}

	return srv.establish(ctx, resp, msgLoginFailed)
}

// Register creates an account and signs in with it.
func (srv *sessionService) Register(ctx context.Context, input *usecase.RegisterInput) *usecase.AuthResult {
	srv.opMu.Lock()
	defer srv.opMu.Unlock()

	if input == nil {
		input = &usecase.RegisterInput{}
	}
	srv.log(ctx).Debug("Registering", slog.String("email", input.Email))

	resp, err := srv.authRepo.Register(ctx, &repository.RegisterRequest{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		College:  input.College,
		Branch:   input.Branch,
		Year:     input.Year,
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.Any("error", err), slog.String("email", input.Email))

		return &usecase.AuthResult{Message: domainerrors.DetailOr(err, msgRegistrationFailed)}
	}

	return srv.establish(ctx, resp, msgRegistrationFailed)
}

// establish persists the credential first and attaches it only once it is durable.
func (srv *sessionService) establish(ctx context.Context, resp *entity.AuthResponse, fallback string) *usecase.AuthResult {
	if resp == nil || resp.Token == "" || resp.User == nil {
		srv.log(ctx).Warn("Auth response without credential")

		return &usecase.AuthResult{Message: fallback}
	}

	if err := srv.credRepo.Save(ctx, resp.Token); err != nil {
		srv.log(ctx).Error("Failed to persist credential", slog.Any("error", err))

		return &usecase.AuthResult{Message: domainerrors.ErrCredentialStorage.Message()}
	}

	srv.rc.Attach(resp.Token)
	srv.setUser(resp.User)

	srv.log(ctx).Info("Signed in", slog.String("user_id", resp.User.ID))

	return &usecase.AuthResult{OK: true, User: resp.User}
}

// Logout clears the credential and the account.
func (srv *sessionService) Logout(ctx context.Context) {
	srv.opMu.Lock()
	defer srv.opMu.Unlock()

	srv.clear(ctx)
}

func (srv *sessionService) clear(ctx context.Context) {
	if err := srv.credRepo.Clear(ctx); err != nil {
		srv.log(ctx).Error("Failed to clear persisted credential", slog.Any("error", err))
	}

	srv.rc.Detach()
	srv.setUser(nil)
}

// Hydrate restores the persisted session, if any.
func (srv *sessionService) Hydrate(ctx context.Context) {
	srv.opMu.Lock()
	defer srv.opMu.Unlock()
	defer srv.loading.Store(false)

	token, err := srv.credRepo.Load(ctx)
	if errors.Is(err, repository.ErrCredentialNotFound) {
		srv.log(ctx).Debug("No persisted session")

		return
	}
	if err != nil {
		srv.log(ctx).Error("Failed to load persisted credential", slog.Any("error", err))
		srv.clear(ctx)

		return
	}

	if srv.inspector != nil && srv.inspector.Expired(token, srv.now()) {
		srv.log(ctx).Info("Persisted session expired")
		srv.clear(ctx)

		return
	}

	srv.rc.Attach(token)

	user, err := srv.authRepo.Me(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to restore session", slog.Any("error", err))
		srv.clear(ctx)

		return
	}

	srv.setUser(user)
	srv.log(ctx).Info("Session restored", slog.String("user_id", user.ID))
}

// RefreshUser re-fetches the account after server-side changes.
func (srv *sessionService) RefreshUser(ctx context.Context) {
	srv.opMu.Lock()
	defer srv.opMu.Unlock()

	if srv.rc.Token() == "" {
		return
	}

	user, err := srv.authRepo.Me(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to refresh user", slog.Any("error", err))

		return
	}

	srv.setUser(user)
}

func (srv *sessionService) setUser(user *entity.User) {
	srv.stateMu.Lock()
	defer srv.stateMu.Unlock()

	srv.user = user
}
