package cli

import (
	"context"
	"io"
	"log/slog"

	"engineershub/config"
	"engineershub/internal/domain/entity"
	"engineershub/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeSession struct {
	usecase.SessionUsecase

	user        *entity.User
	loginResult *usecase.AuthResult
	loggedOut   bool
}

func (s *fakeSession) User() *entity.User { return s.user }
func (s *fakeSession) Authenticated() bool { return s.user != nil }
func (s *fakeSession) Loading() bool { return false }

func (s *fakeSession) Login(_ context.Context, _, _ string) *usecase.AuthResult {
	if s.loginResult.OK {
		s.user = s.loginResult.User
	}

	return s.loginResult
}

func (s *fakeSession) Logout(_ context.Context) {
	s.user = nil
	s.loggedOut = true
}

type fakeDashboard struct{}

func (fakeDashboard) Load(_ context.Context) *entity.Dashboard {
	return &entity.Dashboard{}
}

type fakeQuiz struct {
	usecase.QuizUsecase

	snapshot  usecase.QuizSnapshot
	started   []entity.QuizCategory
	selected  []string
	submitted int
}

func (q *fakeQuiz) Start(_ context.Context, category entity.QuizCategory) error {
	q.started = append(q.started, category)

	return nil
}

func (q *fakeQuiz) Snapshot() usecase.QuizSnapshot { return q.snapshot }
func (q *fakeQuiz) Result() entity.QuizResult { return entity.QuizResult{} }

func (q *fakeQuiz) Select(answer string) error {
	q.selected = append(q.selected, answer)

	return nil
}

func (q *fakeQuiz) Submit() error {
	q.submitted++

	return nil
}

type fakeInterview struct {
	usecase.InterviewUsecase

	started []entity.InterviewType
}

func (i *fakeInterview) Start(_ context.Context, interviewType entity.InterviewType) error {
	i.started = append(i.started, interviewType)

	return nil
}

func (i *fakeInterview) Snapshot() usecase.InterviewSnapshot { return usecase.InterviewSnapshot{} }

type fakeCompanies struct {
	usecase.CompanyUsecase

	directory []*entity.Company
	mounted   int
	applied   []usecase.ApplyInput
}

func (c *fakeCompanies) Mount(_ context.Context) { c.mounted++ }

func (c *fakeCompanies) Apply(_ context.Context, input usecase.ApplyInput) error {
	c.applied = append(c.applied, input)

	return nil
}

func (c *fakeCompanies) Directory() []*entity.Company { return c.directory }
func (c *fakeCompanies) Results() *entity.MatchResults { return nil }
func (c *fakeCompanies) Applications() []*entity.Application { return nil }
func (c *fakeCompanies) Learning() *entity.LearningRecommendations { return nil }
func (c *fakeCompanies) Evaluation() *entity.ResumeEvaluation { return nil }
func (c *fakeCompanies) Panels() usecase.CompanyPanels { return usecase.CompanyPanels{} }
func (c *fakeCompanies) ProfileText() string { return "" }
func (c *fakeCompanies) DirectoryLoading() bool { return false }
func (c *fakeCompanies) Evaluating() bool { return false }

type fakeQR struct {
	links []string
}

func (q *fakeQR) PNG(link string) ([]byte, error) {
	q.links = append(q.links, link)

	return []byte("png:" + link), nil
}

type shellDeps struct {
	session   *fakeSession
	quiz      *fakeQuiz
	interview *fakeInterview
	companies *fakeCompanies
	qr        *fakeQR
}

func newTestShell(input string, out io.Writer, deps shellDeps) (*Shell, error) {
	if deps.session == nil {
		deps.session = &fakeSession{}
	}
	if deps.quiz == nil {
		deps.quiz = &fakeQuiz{}
	}
	if deps.interview == nil {
		deps.interview = &fakeInterview{}
	}
	if deps.companies == nil {
		deps.companies = &fakeCompanies{}
	}
	if deps.qr == nil {
		deps.qr = &fakeQR{}
	}

	return NewShell(ShellParams{
		Config:    &config.Config{},
		Logger:    newDiscardLogger(),
		Terminal:  Terminal{In: stringsReader(input), Out: out},
		Session:   deps.session,
		Dashboard: fakeDashboard{},
		Quiz:      deps.quiz,
		Interview: deps.interview,
		Companies: deps.companies,
		QR:        deps.qr,
	})
}
