package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"

	deliverycontext "engineershub/internal/delivery/context"
	"engineershub/internal/domain/entity"
	domainerrors "engineershub/internal/domain/errors"
	"engineershub/internal/domain/repository"
	"engineershub/internal/domain/service"
	"engineershub/internal/errors"
	"engineershub/internal/usecase"
)

// companyMatchingService implements the CompanyUsecase interface.
type companyMatchingService struct {
	mu sync.Mutex

	companyRepo  repository.CompanyRepository
	appRepo      repository.ApplicationRepository
	resumeRepo   repository.ResumeRepository
	learningRepo repository.LearningRepository
	opener       service.LinkOpener
	users        usecase.CurrentUser
	queue        *sideEffectQueue
	logger       *slog.Logger
	pick         func(n int) int

	directory    []*entity.Company
	results      *entity.MatchResults
	applications []*entity.Application
	learning     *entity.LearningRecommendations
	evaluation   *entity.ResumeEvaluation
	profileText  string
	panels       usecase.CompanyPanels

	directoryLoading bool
	analysisLoading  bool
	evaluating       bool
}

// NewCompanyMatchingService is the constructor for companyMatchingService.
func NewCompanyMatchingService(
	companyRepo repository.CompanyRepository,
	appRepo repository.ApplicationRepository,
	resumeRepo repository.ResumeRepository,
	learningRepo repository.LearningRepository,
	opener service.LinkOpener,
	users usecase.CurrentUser,
	rc *entity.RequestContext,
	logger *slog.Logger,
) usecase.CompanyUsecase {
	return newCompanyMatchingService(companyRepo, appRepo, resumeRepo, learningRepo, opener, users, rc, logger, rand.IntN)
}

func newCompanyMatchingService(
	companyRepo repository.CompanyRepository,
	appRepo repository.ApplicationRepository,
	resumeRepo repository.ResumeRepository,
	learningRepo repository.LearningRepository,
	opener service.LinkOpener,
	users usecase.CurrentUser,
	rc *entity.RequestContext,
	logger *slog.Logger,
	pick func(n int) int,
) *companyMatchingService {
	return &companyMatchingService{
		companyRepo:  companyRepo,
		appRepo:      appRepo,
		resumeRepo:   resumeRepo,
		learningRepo: learningRepo,
		opener:       opener,
		users:        users,
		queue:        newSideEffectQueue(rc, logger),
		logger:       logger,
		pick:         pick,
	}
}

func (srv *companyMatchingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Mount loads every panel of the view. A failed fetch leaves its panel empty.
func (srv *companyMatchingService) Mount(ctx context.Context) {
	srv.mu.Lock()
	srv.directoryLoading = true
	srv.mu.Unlock()

	companies, err := srv.companyRepo.ListCompanies(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to fetch companies", slog.Any("error", err))
	}

	srv.mu.Lock()
	srv.directory = companies
	srv.directoryLoading = false
	srv.mu.Unlock()

	results, err := srv.companyRepo.MyMatches(ctx)
	switch {
	case err != nil:
		srv.log(ctx).Debug("No previous matches found", slog.Any("error", err))
	case results != nil:
		srv.mu.Lock()
		srv.results = results
		srv.mu.Unlock()
	}

	learning, err := srv.learningRepo.Recommendations(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to fetch learning recommendations", slog.Any("error", err))
	}

	srv.mu.Lock()
	srv.learning = learning
	srv.mu.Unlock()

	srv.refreshApplications(ctx)
}

func (srv *companyMatchingService) refreshApplications(ctx context.Context) {
	applications, err := srv.appRepo.MyApplications(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to fetch applications", slog.Any("error", err))

		return
	}

	srv.mu.Lock()
	srv.applications = applications
	srv.mu.Unlock()
}

// GenerateProfile replaces the profile text with a freshly synthesised profile.
func (srv *companyMatchingService) GenerateProfile() (string, error) {
	user := srv.users.User()
	if user == nil {
		return "", domainerrors.ErrNotAuthenticated
	}

	body, err := json.MarshalIndent(GenerateMatchingProfile(user, srv.pick), "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to encode matching profile")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.profileText = string(body)

	return srv.profileText, nil
}

func (srv *companyMatchingService) EditProfile(text string) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.profileText = text
}

func (srv *companyMatchingService) ProfileText() string {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.profileText
}

// ProfilePreview parses the current text for display.
func (srv *companyMatchingService) ProfilePreview() (*entity.MatchingProfile, error) {
	text := srv.ProfileText()
	if strings.TrimSpace(text) == "" {
		return nil, domainerrors.ErrProfileNotGenerated
	}

	var profile entity.MatchingProfile
	if err := json.Unmarshal([]byte(text), &profile); err != nil {
		return nil, domainerrors.ErrProfilePreviewUnavailable.WithDetails(err.Error())
	}

	return &profile, nil
}

// AnalyzeProfile posts the edited profile document as-is.
func (srv *companyMatchingService) AnalyzeProfile(ctx context.Context) error {
	srv.mu.Lock()
	if srv.analysisLoading {
		srv.mu.Unlock()

		return domainerrors.ErrFlowBusy
	}
	text := srv.profileText
	if strings.TrimSpace(text) == "" {
		srv.mu.Unlock()

		return domainerrors.ErrProfileNotGenerated
	}

	var document map[string]any
	if err := json.Unmarshal([]byte(text), &document); err != nil {
		srv.mu.Unlock()
		srv.log(ctx).Warn("Profile text is not valid JSON", slog.Any("error", err))

		return domainerrors.ErrMalformedProfile.WithDetails(err.Error())
	}
	srv.analysisLoading = true
	srv.mu.Unlock()

	results, err := srv.companyRepo.MatchProfile(ctx, json.RawMessage(text))

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.analysisLoading = false

	if err != nil {
		srv.log(ctx).Error("Failed to analyze profile", slog.Any("error", err))

		return errors.WithStack(errors.Join(domainerrors.ErrProfileAnalysisFailed, err))
	}

	srv.results = results
	srv.panels.Matching = false
	srv.profileText = ""

	srv.log(ctx).Info("Profile analyzed", slog.Int("matches", matchCount(results)))

	return nil
}

func matchCount(results *entity.MatchResults) int {
	if results == nil {
		return 0
	}

	return results.TotalMatches
}

func (srv *companyMatchingService) Results() *entity.MatchResults {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.results
}

func (srv *companyMatchingService) Directory() []*entity.Company {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.directory
}

func (srv *companyMatchingService) CompanyDetails(ctx context.Context, id string) (*entity.Company, error) {
	company, err := srv.companyRepo.GetCompany(ctx, id)
	if err != nil {
		srv.log(ctx).Warn("Failed to fetch company", slog.Any("error", err), slog.String("company_id", id))

		return nil, errors.Wrapf(err, "failed to fetch company %s", id)
	}

	return company, nil
}

func (srv *companyMatchingService) Applications() []*entity.Application {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.applications
}

func (srv *companyMatchingService) Learning() *entity.LearningRecommendations {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.learning
}

func (srv *companyMatchingService) toggle(flip func(p *usecase.CompanyPanels)) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	flip(&srv.panels)
}

func (srv *companyMatchingService) ToggleMatching() {
	srv.toggle(func(p *usecase.CompanyPanels) { p.Matching = !p.Matching })
}

func (srv *companyMatchingService) ToggleEditor() {
	srv.toggle(func(p *usecase.CompanyPanels) { p.Editor = !p.Editor })
}

func (srv *companyMatchingService) ToggleResumeEvaluator() {
	srv.toggle(func(p *usecase.CompanyPanels) { p.ResumeEvaluator = !p.ResumeEvaluator })
}

func (srv *companyMatchingService) ToggleApplications() {
	srv.toggle(func(p *usecase.CompanyPanels) { p.Applications = !p.Applications })
}

func (srv *companyMatchingService) ToggleLearningResources() {
	srv.toggle(func(p *usecase.CompanyPanels) { p.LearningResources = !p.LearningResources })
}

func (srv *companyMatchingService) Panels() usecase.CompanyPanels {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.panels
}

// EvaluateResume rejects invalid files before the evaluating flag is raised.
func (srv *companyMatchingService) EvaluateResume(ctx context.Context, upload *entity.ResumeUpload) (*entity.ResumeEvaluation, error) {
	if err := srv.resumeRepo.Validate(upload); err != nil {
		srv.log(ctx).Info("Resume rejected", slog.Any("error", err))

		return nil, err
	}

	srv.mu.Lock()
	if srv.evaluating {
		srv.mu.Unlock()

		return nil, domainerrors.ErrFlowBusy
	}
	srv.evaluating = true
	srv.mu.Unlock()

	evaluation, err := srv.resumeRepo.Evaluate(ctx, upload)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.evaluating = false

	if err != nil {
		srv.log(ctx).Error("Failed to evaluate resume", slog.Any("error", err), slog.String("file", upload.FileName))

		return nil, errors.WithStack(errors.Join(domainerrors.ErrResumeEvaluationFailed, err))
	}

	srv.evaluation = evaluation

	return evaluation, nil
}

func (srv *companyMatchingService) Evaluation() *entity.ResumeEvaluation {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.evaluation
}

func (srv *companyMatchingService) ClearEvaluation() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.evaluation = nil
}

// Apply opens the job link now and tracks the application on the side-effect queue.
func (srv *companyMatchingService) Apply(ctx context.Context, input usecase.ApplyInput) error {
	if err := usecase.Validate(&input); err != nil {
		return err
	}

	link := input.Company.JobLinks.For(input.Platform)
	if link == "" {
		return domainerrors.ErrUnknownPlatform.WithDetails(string(input.Platform))
	}

	if err := srv.opener.Open(ctx, link); err != nil {
		srv.log(ctx).Error("Failed to open job link", slog.Any("error", err), slog.String("link", link))

		return errors.Wrap(err, "failed to open job link")
	}

	companyID := input.Company.ID
	req := &entity.ApplicationRequest{
		Position:        entity.DefaultApplicationPosition,
		ApplicationLink: link,
		Platform:        string(input.Platform),
		Notes:           "Applied through " + string(input.Platform),
	}

	srv.queue.Enqueue(ctx, "company.apply", func(ctx context.Context) error {
		if _, err := srv.companyRepo.Apply(ctx, companyID, req); err != nil {
			return errors.Wrapf(err, "track application to %s", companyID)
		}

		srv.refreshApplications(ctx)

		return nil
	})

	return nil
}

func (srv *companyMatchingService) DirectoryLoading() bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.directoryLoading
}

func (srv *companyMatchingService) AnalysisLoading() bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.analysisLoading
}

func (srv *companyMatchingService) Evaluating() bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.evaluating
}

func (srv *companyMatchingService) Wait() {
	srv.queue.Wait()
}
