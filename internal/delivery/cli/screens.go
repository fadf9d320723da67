package cli

import (
	"context"
	"io"

	"engineershub/internal/delivery/view"
)

func (s *Shell) screens() view.Table {
	return view.Table{
		view.Dashboard: func(ctx context.Context, w io.Writer) error {
			return view.DashboardScreen(w, s.session.User(), s.dashboard.Load(ctx))
		},
		view.Projects: func(_ context.Context, w io.Writer) error {
			return view.ProjectsScreen(w, s.projects.Projects(), s.projects.Selected(), s.projects.Board())
		},
		view.Preparation: func(_ context.Context, w io.Writer) error {
			return view.QuizScreen(w, s.quiz.Snapshot(), s.quiz.Result())
		},
		view.Interviews: func(_ context.Context, w io.Writer) error {
			return view.InterviewScreen(w, s.interview.Snapshot())
		},
		view.Companies: s.companiesScreen,
		view.Profile: func(_ context.Context, w io.Writer) error {
			return view.ProfileScreen(w, s.profile.Form(), s.profileMessage)
		},
	}
}

func (s *Shell) authScreen(_ context.Context, w io.Writer) error {
	return view.Auth(w, s.authMessage)
}

func (s *Shell) companiesScreen(_ context.Context, w io.Writer) error {
	panels := s.companies.Panels()
	state := view.CompaniesState{
		Loading:      s.companies.DirectoryLoading(),
		Panels:       panels,
		Results:      s.companies.Results(),
		Directory:    s.companies.Directory(),
		Applications: s.companies.Applications(),
		Learning:     s.companies.Learning(),
		Evaluation:   s.companies.Evaluation(),
		Evaluating:   s.companies.Evaluating(),
		ProfileText:  s.companies.ProfileText(),
	}
	if state.ProfileText != "" && !panels.Editor {
		// an unparsable draft renders as "preview unavailable"
		state.Preview, _ = s.companies.ProfilePreview()
	}

	return view.CompaniesScreen(w, state)
}

// mount runs the data loading a view does when it is opened.
func (s *Shell) mount(ctx context.Context, v view.View) error {
	switch v {
	case view.Projects:
		_, err := s.projects.LoadProjects(ctx)

		return err
	case view.Companies:
		s.companies.Mount(ctx)
	case view.Profile:
		s.profileMessage = ""
	}

	return nil
}
