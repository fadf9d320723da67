package cli

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"engineershub/internal/delivery/view"
	"engineershub/internal/domain/entity"
	domainerrors "engineershub/internal/domain/errors"
	"engineershub/internal/errors"
	"engineershub/internal/usecase"
)

const dateLayout = "2006-01-02"

func (s *Shell) commandTable() map[string]command {
	return map[string]command{
		"help":      {usage: "help", public: true, run: s.help},
		"login":     {usage: "login <email> <password>", public: true, run: s.login},
		"register":  {usage: "register", public: true, run: s.register},
		"logout":    {usage: "logout", run: s.logout},
		"view":      {usage: "view dashboard|projects|preparation|interviews|companies|profile", run: s.navigate},
		"quiz":      {usage: "quiz start aptitude|coding | answer <option no. or text> | reset", run: s.quizCommand},
		"interview": {usage: "interview start hr|technical | answer <text> | reset", run: s.interviewCommand},
		"companies": {
			usage: "companies generate | edit | analyze | toggle <panel> | resume <path> | clear-resume | " +
				"show <id> | apply <id> <platform> | qr <id> <platform> <out.png>",
			run: s.companiesCommand,
		},
		"projects": {usage: "projects new | open <id> | task [low|medium|high] <title> | advance <task id>", run: s.projectsCommand},
		"profile":  {usage: "profile update | sample | import", run: s.profileCommand},
	}
}

func usageError(usage string) error {
	return domainerrors.ErrValidationFailed.WithDetails("usage: " + usage)
}

func (s *Shell) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("login <email> <password>")
	}

	result := s.session.Login(ctx, args[0], args[1])
	s.afterAuth(result)

	return nil
}

func (s *Shell) register(ctx context.Context, _ []string) error {
	input := &usecase.RegisterInput{}
	fields := []struct {
		label string
		dst   *string
	}{
		{"Name", &input.Name},
		{"Email", &input.Email},
		{"Password", &input.Password},
		{"College", &input.College},
		{"Branch", &input.Branch},
		{"Year", &input.Year},
	}
	for _, f := range fields {
		value, ok := s.ask(f.label)
		if !ok {
			return nil
		}
		*f.dst = value
	}

	s.afterAuth(s.session.Register(ctx, input))

	return nil
}

func (s *Shell) afterAuth(result *usecase.AuthResult) {
	if !result.OK {
		s.authMessage = result.Message

		return
	}

	s.authMessage = ""
	_ = s.router.Navigate(view.Dashboard)
}

func (s *Shell) logout(ctx context.Context, _ []string) error {
	s.session.Logout(ctx)
	s.authMessage = ""

	return s.router.Navigate(view.Dashboard)
}

func (s *Shell) navigate(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("view <name>")
	}

	v, err := view.Parse(args[0])
	if err != nil {
		return err
	}
	if err := s.router.Navigate(v); err != nil {
		return err
	}

	return s.mount(ctx, v)
}

func (s *Shell) quizCommand(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError(s.commands["quiz"].usage)
	}
	_ = s.router.Navigate(view.Preparation)

	switch args[0] {
	case "start":
		if len(args) != 2 {
			return usageError("quiz start aptitude|coding")
		}

		return s.quiz.Start(ctx, entity.QuizCategory(strings.ToLower(args[1])))
	case "answer":
		answer := s.resolveOption(strings.Join(args[1:], " "))
		if err := s.quiz.Select(answer); err != nil {
			return err
		}

		return s.quiz.Submit()
	case "reset":
		s.quiz.Reset()

		return nil
	default:
		return usageError(s.commands["quiz"].usage)
	}
}

// resolveOption turns an option number into the option text of the current question.
func (s *Shell) resolveOption(answer string) string {
	q := s.quiz.Snapshot().Question
	if q == nil || len(q.Options) == 0 {
		return answer
	}

	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(q.Options) {
		return answer
	}

	return q.Options[n-1]
}

func (s *Shell) interviewCommand(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError(s.commands["interview"].usage)
	}
	_ = s.router.Navigate(view.Interviews)

	switch args[0] {
	case "start":
		if len(args) != 2 {
			return usageError("interview start hr|technical")
		}

		return s.interview.Start(ctx, entity.InterviewType(strings.ToLower(args[1])))
	case "answer":
		if err := s.interview.SetAnswer(strings.Join(args[1:], " ")); err != nil {
			return err
		}

		return s.interview.Submit(ctx)
	case "reset":
		s.interview.Reset()

		return nil
	default:
		return usageError(s.commands["interview"].usage)
	}
}

func (s *Shell) companiesCommand(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError(s.commands["companies"].usage)
	}
	_ = s.router.Navigate(view.Companies)

	switch args[0] {
	case "generate":
		_, err := s.companies.GenerateProfile()

		return err
	case "edit":
		if s.companies.ProfileText() == "" {
			return domainerrors.ErrProfileNotGenerated
		}
		s.println(s.companies.ProfileText())
		if text := s.readBlock("Enter the edited profile JSON"); strings.TrimSpace(text) != "" {
			s.companies.EditProfile(text)
		}

		return nil
	case "analyze":
		return s.companies.AnalyzeProfile(ctx)
	case "toggle":
		if len(args) != 2 {
			return usageError("companies toggle matching|editor|resume|applications|learning")
		}

		return s.togglePanel(args[1])
	case "resume":
		if len(args) != 2 {
			return usageError("companies resume <path>")
		}

		return s.evaluateResume(ctx, args[1])
	case "clear-resume":
		s.companies.ClearEvaluation()

		return nil
	case "show":
		if len(args) != 2 {
			return usageError("companies show <id>")
		}
		company, err := s.companies.CompanyDetails(ctx, args[1])
		if err != nil {
			return err
		}

		return view.CompanyDetails(s.out, company)
	case "apply":
		if len(args) != 3 {
			return usageError("companies apply <id> <platform>")
		}

		return s.apply(ctx, args[1], args[2])
	case "qr":
		if len(args) != 4 {
			return usageError("companies qr <id> <platform> <out.png>")
		}

		return s.exportQR(args[1], args[2], args[3])
	default:
		return usageError(s.commands["companies"].usage)
	}
}

func (s *Shell) togglePanel(panel string) error {
	switch strings.ToLower(panel) {
	case "matching":
		s.companies.ToggleMatching()
	case "editor":
		s.companies.ToggleEditor()
	case "resume":
		s.companies.ToggleResumeEvaluator()
	case "applications":
		s.companies.ToggleApplications()
	case "learning":
		s.companies.ToggleLearningResources()
	default:
		return usageError("companies toggle matching|editor|resume|applications|learning")
	}

	return nil
}

func (s *Shell) evaluateResume(ctx context.Context, path string) error {
	data, err := s.readFile(path)
	if err != nil {
		return errors.Wrapf(err, "read resume %s", path)
	}

	upload := &entity.ResumeUpload{FileName: filepath.Base(path), Data: data}
	_, err = s.companies.EvaluateResume(ctx, upload)

	return err
}

// findCompany looks in the match results first, then in the directory.
func (s *Shell) findCompany(id string) (*entity.Company, error) {
	if results := s.companies.Results(); results != nil {
		for _, matched := range results.MatchedCompanies {
			if matched.ID == id {
				return &matched.Company, nil
			}
		}
	}
	for _, company := range s.companies.Directory() {
		if company.ID == id {
			return company, nil
		}
	}

	return nil, domainerrors.ErrNotFound.WithDetails("company " + id)
}

func parsePlatform(name string) (entity.JobPlatform, error) {
	for _, platform := range entity.JobPlatforms {
		if strings.EqualFold(string(platform), name) {
			return platform, nil
		}
	}

	return "", domainerrors.ErrUnknownPlatform.WithDetails(name)
}

func (s *Shell) apply(ctx context.Context, id, platformName string) error {
	company, err := s.findCompany(id)
	if err != nil {
		return err
	}
	platform, err := parsePlatform(platformName)
	if err != nil {
		return err
	}

	return s.companies.Apply(ctx, usecase.ApplyInput{Company: company, Platform: platform})
}

func (s *Shell) exportQR(id, platformName, out string) error {
	company, err := s.findCompany(id)
	if err != nil {
		return err
	}
	platform, err := parsePlatform(platformName)
	if err != nil {
		return err
	}

	link := company.JobLinks.For(platform)
	if link == "" {
		return domainerrors.ErrUnknownPlatform.WithDetails(platformName)
	}

	png, err := s.qr.PNG(link)
	if err != nil {
		return err
	}
	if err := s.writeFile(out, png); err != nil {
		return errors.Wrapf(err, "write %s", out)
	}
	s.printf("QR code saved to %s\n", out)

	return nil
}

func (s *Shell) projectsCommand(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError(s.commands["projects"].usage)
	}
	_ = s.router.Navigate(view.Projects)

	switch args[0] {
	case "new":
		input, ok, err := s.askProject()
		if err != nil || !ok {
			return err
		}
		_, err = s.projects.CreateProject(ctx, input)

		return err
	case "open":
		if len(args) != 2 {
			return usageError("projects open <id>")
		}
		_, err := s.projects.SelectProject(ctx, args[1])

		return err
	case "task":
		return s.createTask(ctx, args[1:])
	case "advance":
		if len(args) != 2 {
			return usageError("projects advance <task id>")
		}
		_, err := s.projects.AdvanceTask(ctx, args[1])

		return err
	default:
		return usageError(s.commands["projects"].usage)
	}
}

func (s *Shell) askProject() (usecase.CreateProjectInput, bool, error) {
	var input usecase.CreateProjectInput

	title, ok := s.ask("Title")
	if !ok {
		return input, false, nil
	}
	description, ok := s.ask("Description")
	if !ok {
		return input, false, nil
	}
	deadline, ok := s.ask("Deadline (YYYY-MM-DD, optional)")
	if !ok {
		return input, false, nil
	}

	input.Title = title
	input.Description = description
	if deadline != "" {
		t, err := time.Parse(dateLayout, deadline)
		if err != nil {
			return input, false, domainerrors.ErrValidationFailed.WithDetails("Deadline must be YYYY-MM-DD")
		}
		input.Deadline = &t
	}

	return input, true, nil
}

func (s *Shell) createTask(ctx context.Context, args []string) error {
	var priority entity.TaskPriority
	if len(args) > 0 {
		switch p := entity.TaskPriority(strings.ToLower(args[0])); p {
		case entity.TaskPriorityLow, entity.TaskPriorityMedium, entity.TaskPriorityHigh:
			priority = p
			args = args[1:]
		}
	}

	_, err := s.projects.CreateTask(ctx, usecase.CreateTaskInput{
		Title:    strings.Join(args, " "),
		Priority: priority,
	})

	return err
}

func (s *Shell) profileCommand(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError(s.commands["profile"].usage)
	}
	_ = s.router.Navigate(view.Profile)

	switch args[0] {
	case "update":
		input, ok := s.askProfile(s.profile.Form())
		if !ok {
			return nil
		}
		msg, err := s.profile.Update(ctx, input)
		s.profileMessage = msg

		return err
	case "sample":
		sample, err := s.profile.SampleLinkedIn(s.profile.Form())
		if err != nil {
			return err
		}
		s.println(sample)

		return nil
	case "import":
		raw := s.readBlock("Paste your LinkedIn JSON")
		msg, err := s.profile.ImportLinkedIn(ctx, raw)
		s.profileMessage = msg

		return err
	default:
		return usageError(s.commands["profile"].usage)
	}
}

// askProfile prompts for every field; an empty answer keeps the current value.
func (s *Shell) askProfile(form usecase.UpdateProfileInput) (usecase.UpdateProfileInput, bool) {
	fields := []struct {
		label string
		dst   *string
	}{
		{"Name", &form.Name},
		{"College", &form.College},
		{"Branch", &form.Branch},
		{"Year", &form.Year},
		{"Skills (comma separated)", &form.Skills},
		{"Experience", &form.Experience},
		{"Projects", &form.Projects},
	}
	for _, f := range fields {
		value, ok := s.ask(f.label + " [" + *f.dst + "]")
		if !ok {
			return form, false
		}
		if value != "" {
			*f.dst = value
		}
	}

	return form, true
}
