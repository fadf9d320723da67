package view

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"engineershub/internal/domain/entity"
	"engineershub/internal/errors"
	"engineershub/internal/usecase"
)

// printer accumulates the first write error so renderers read top to bottom.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) linef(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) heading(title string) {
	p.linef("%s", title)
	p.linef("%s", strings.Repeat("=", len(title)))
}

func (p *printer) section(title string) {
	p.linef("")
	p.linef("%s", title)
	p.linef("%s", strings.Repeat("-", len(title)))
}

func (p *printer) done() error {
	return errors.WithStack(p.err)
}

func Loading(w io.Writer) error {
	p := &printer{w: w}
	p.linef("Loading...")

	return p.done()
}

// Auth is shown whenever no session is active.
func Auth(w io.Writer, message string) error {
	p := &printer{w: w}
	p.heading("EngineersHub")
	if message != "" {
		p.linef("! %s", message)
	}
	p.linef("Sign in:  login <email> <password>")
	p.linef("Sign up:  register")

	return p.done()
}

func DashboardScreen(w io.Writer, user *entity.User, d *entity.Dashboard) error {
	p := &printer{w: w}
	p.heading("Dashboard")
	if user != nil {
		p.linef("Welcome back, %s", user.DisplayName())
	}

	p.section("Recent Projects")
	if len(d.RecentProjects) == 0 {
		p.linef("No projects yet. Create your first project!")
	}
	for _, project := range d.RecentProjects {
		p.linef("  - %s", project.Title)
	}

	p.section("Pending Tasks")
	pending := d.PendingTasks()
	if len(pending) == 0 {
		p.linef("No tasks pending")
	}
	for _, task := range pending {
		p.linef("  - %s", task.Title)
	}

	p.section("Quiz Progress")
	p.linef("Sessions Completed: %d", d.QuizStats.TotalSessions)
	p.linef("Average Score: %d%%", d.QuizStats.RoundedAverage())

	return p.done()
}

func ProjectsScreen(w io.Writer, projects []*entity.Project, selected *entity.Project, board entity.Board) error {
	p := &printer{w: w}
	p.heading("Project Management")

	p.section("Your Projects")
	if len(projects) == 0 {
		p.linef("No projects found. Create your first project!")
	}
	for _, project := range projects {
		marker := " "
		if selected != nil && selected.ID == project.ID {
			marker = "*"
		}
		p.linef("%s %s  %s (%s, %d%%)", marker, project.ID, project.Title, project.Status, project.Progress)
	}

	if selected == nil {
		p.linef("")
		p.linef("Select a project to view details")

		return p.done()
	}

	p.section(selected.Title)
	if selected.Description != "" {
		p.linef("%s", selected.Description)
	}
	if selected.Deadline != nil {
		p.linef("Deadline: %s", selected.Deadline.Format("2006-01-02"))
	}

	for _, status := range entity.TaskStatuses {
		p.linef("")
		p.linef("[%s]", status.Label())
		for _, task := range board[status] {
			p.linef("  %s  %s (%s)", task.ID, task.Title, task.Priority)
		}
	}

	return p.done()
}

func QuizScreen(w io.Writer, snap usecase.QuizSnapshot, result entity.QuizResult) error {
	p := &printer{w: w}
	p.heading("Placement Preparation")

	switch snap.State {
	case entity.QuizStateFinished:
		p.section("Quiz Complete!")
		p.linef("Your Score: %d / %d", result.Score, result.Total)
		p.linef("Percentage: %d%%", result.Percentage)
	case entity.QuizStateInProgress:
		p.section(snap.Category.Title())
		p.linef("Question %d of %d    Score: %d", snap.Index+1, snap.Total, snap.Score)
		p.linef("")
		p.linef("%s", snap.Question.Question)
		for _, option := range snap.Question.Options {
			p.linef("  ( ) %s", option)
		}
		if snap.Question.Language != "" {
			p.linef("Language: %s", snap.Question.Language)
			p.linef("Difficulty: %s", snap.Question.Difficulty)
		}
		if snap.Pending != "" {
			p.linef("Selected: %s", snap.Pending)
		}
	default:
		if snap.Loading {
			p.linef("Loading...")

			break
		}
		p.linef("Start a quiz:  quiz start aptitude | quiz start coding")
	}

	return p.done()
}

func InterviewScreen(w io.Writer, snap usecase.InterviewSnapshot) error {
	p := &printer{w: w}
	p.heading("Mock Interviews")

	switch snap.State {
	case entity.InterviewStateCompleted:
		p.section("Interview Complete!")
		p.linef("Thank you for completing the %s interview.", snap.Type)
		p.linef("")
		p.linef("Your Responses:")
		for i, response := range snap.Responses {
			p.linef("Q%d: %s", i+1, response.Question)
			p.linef("    %s", response.Answer)
		}
	case entity.InterviewStateInProgress:
		p.section(snap.Type.Title())
		p.linef("Question %d of %d", snap.Index+1, snap.Total)
		p.linef("")
		p.linef("%s", snap.Question.Question)
	default:
		if snap.Loading {
			p.linef("Loading...")

			break
		}
		p.linef("HR Interview: practice common HR questions        interview start hr")
		p.linef("Technical Interview: test your technical knowledge  interview start technical")
	}

	return p.done()
}

// CompaniesState is everything the company screen shows.
type CompaniesState struct {
	Loading      bool
	Panels       usecase.CompanyPanels
	Results      *entity.MatchResults
	Directory    []*entity.Company
	Applications []*entity.Application
	Learning     *entity.LearningRecommendations
	Evaluation   *entity.ResumeEvaluation
	Evaluating   bool
	ProfileText  string
	Preview      *entity.MatchingProfile
}

func CompaniesScreen(w io.Writer, s CompaniesState) error {
	p := &printer{w: w}
	p.heading("Smart Company Matching")

	if s.Loading {
		p.linef("Loading...")

		return p.done()
	}

	if s.Results != nil {
		p.linef("Profile Analyzed - %d matches found", s.Results.TotalMatches)
	}
	p.linef("My Applications (%d)", len(s.Applications))

	if s.Panels.Matching {
		renderMatchingPanel(p, s)
	}
	if s.Panels.ResumeEvaluator {
		renderResumePanel(p, s)
	}
	if s.Panels.Applications {
		renderApplications(p, s.Applications)
	}
	if s.Panels.LearningResources {
		renderLearning(p, s.Learning)
	}

	if s.Results != nil {
		renderMatches(p, s.Results)
	} else {
		renderDirectory(p, s.Directory)
	}

	return p.done()
}

func renderMatchingPanel(p *printer, s CompaniesState) {
	p.section("AI-Powered Profile Analysis")
	switch {
	case s.ProfileText == "":
		p.linef("Generate a personalized profile:  companies generate")
	case s.Panels.Editor:
		p.linef("%s", s.ProfileText)
	case s.Preview != nil:
		p.linef("%s", s.Preview.Name)
		p.linef("%s", s.Preview.Headline)
		p.linef("Skills: %s", strings.Join(firstN(s.Preview.Skills, 4), ", "))
		if len(s.Preview.Education) > 0 {
			p.linef("Education: %s", s.Preview.Education[0].Degree)
		}
		p.linef("Projects: %d projects", len(s.Preview.Projects))
	default:
		p.linef("Profile preview unavailable")
	}
}

func renderResumePanel(p *printer, s CompaniesState) {
	p.section("Resume Evaluator")
	if s.Evaluating {
		p.linef("Evaluating...")

		return
	}
	if s.Evaluation == nil {
		p.linef("Upload a PDF, DOC or DOCX (max 5MB):  companies resume <path>")

		return
	}

	e := s.Evaluation
	p.linef("Overall Score: %s / 100", score(e.OverallScore))
	p.linef("ATS Score: %s - %s", score(e.ATSScore), e.ATSVerdict())
	listBlock(p, "Strengths", e.Strengths)
	listBlock(p, "Areas for Improvement", e.Improvements)
	listBlock(p, "Missing Sections", e.MissingSections)
	listBlock(p, "Recommended Additions", e.RecommendedAdditions)
}

func renderApplications(p *printer, applications []*entity.Application) {
	p.section("My Applications")
	if len(applications) == 0 {
		p.linef("No applications yet")

		return
	}

	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	if p.err == nil {
		_, p.err = fmt.Fprintln(tw, "COMPANY\tPOSITION\tPLATFORM\tSTATUS\tAPPLIED")
		for _, a := range applications {
			if p.err != nil {
				break
			}
			_, p.err = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", a.CompanyName, a.Position, a.Platform, a.Status, a.AppliedDate)
		}
		if p.err == nil {
			p.err = tw.Flush()
		}
	}
}

func renderLearning(p *printer, learning *entity.LearningRecommendations) {
	p.section("Learning Resources")
	if learning == nil || len(learning.Recommendations) == 0 {
		p.linef("No recommendations available")

		return
	}
	if learning.UserProfile != nil && len(learning.UserProfile.IdentifiedWeakAreas) > 0 {
		p.linef("Focus areas: %s", strings.Join(learning.UserProfile.IdentifiedWeakAreas, ", "))
	}
	for _, category := range learning.Recommendations {
		p.linef("")
		p.linef("%s", category.Category)
		for _, r := range category.Resources {
			p.linef("  - %s  %s", r.Title, r.URL)
		}
	}
}

func renderMatches(p *printer, results *entity.MatchResults) {
	if summary := results.UserProfileSummary; summary != nil {
		location := summary.Location
		if location == "" {
			location = "Not specified"
		}
		p.section("Profile Summary")
		p.linef("Skills: %s", strings.Join(firstN(summary.Skills, 5), ", "))
		p.linef("Experience: %d positions", summary.ExperienceCount)
		p.linef("Location: %s", location)
	}

	p.section("Your Matches")
	for i, company := range results.MatchedCompanies {
		band := entity.BandFor(company.MatchScore.Overall)
		badge := ""
		if i < 3 {
			badge = "  [Top Match]"
		}
		p.linef("")
		p.linef("%s  %s%s", company.ID, company.Name, badge)
		p.linef("  %s%% %s", score(company.MatchScore.Overall), band.MatchLabel())
		p.linef("  Skills %s%%  Culture %s%%  Location %s%%",
			score(company.MatchScore.SkillMatch), score(company.MatchScore.CultureMatch), score(company.MatchScore.LocationMatch))
		if len(company.MatchingSkills) > 0 {
			p.linef("  Matching skills: %s", strings.Join(company.MatchingSkills, ", "))
		}
		if len(company.RecommendedRoles) > 0 {
			p.linef("  Recommended roles: %s", strings.Join(company.RecommendedRoles, ", "))
		}
		if platforms := availablePlatforms(company.JobLinks); len(platforms) > 0 {
			p.linef("  Apply via: %s", strings.Join(platforms, ", "))
		}
	}
}

func renderDirectory(p *printer, companies []*entity.Company) {
	p.section("Companies")
	if len(companies) == 0 {
		p.linef("No companies available")

		return
	}
	for _, company := range companies {
		p.linef("%s  %s  (%s, %s)", company.ID, company.Name, company.Industry, company.SalaryRange)
	}
}

func ProfileScreen(w io.Writer, form usecase.UpdateProfileInput, message string) error {
	p := &printer{w: w}
	p.heading("Profile Management")
	if message != "" {
		p.linef("! %s", message)
	}

	p.section("Personal Information")
	p.linef("Name:    %s", form.Name)
	p.linef("College: %s", form.College)
	p.linef("Branch:  %s", form.Branch)
	p.linef("Year:    %s", form.Year)

	p.section("LinkedIn Integration")
	p.linef("Import your LinkedIn data to auto-generate your resume.")
	p.linef("profile sample | profile import")

	return p.done()
}

// CompanyDetails prints one directory entry in full.
func CompanyDetails(w io.Writer, c *entity.Company) error {
	p := &printer{w: w}
	p.heading(c.Name)
	p.linef("%s", c.Description)
	p.linef("Industry: %s    Type: %s    Size: %s", c.Industry, c.Type, c.Size)
	p.linef("Salary: %s", c.SalaryRange)
	p.linef("Locations: %s", strings.Join(c.Locations, ", "))
	if c.RemoteFriendly {
		p.linef("Remote friendly")
	}
	listBlock(p, "Tech Stack", c.TechStack)
	listBlock(p, "Hiring Process", c.HiringProcess)
	listBlock(p, "Benefits", c.Benefits)
	for _, opening := range c.ActiveOpenings {
		p.linef("Opening: %s (%s) %s", opening.Title, opening.Experience, opening.ApplyLink)
	}
	if platforms := availablePlatforms(c.JobLinks); len(platforms) > 0 {
		p.linef("Apply via: %s", strings.Join(platforms, ", "))
	}

	return p.done()
}

func listBlock(p *printer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	p.linef("%s:", title)
	for _, item := range items {
		p.linef("  - %s", item)
	}
}

func availablePlatforms(links *entity.JobLinks) []string {
	var out []string
	for _, platform := range entity.JobPlatforms {
		if links.For(platform) != "" {
			out = append(out, string(platform))
		}
	}

	return out
}

func score(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}

	return fmt.Sprintf("%.1f", v)
}

func firstN(values []string, n int) []string {
	if len(values) < n {
		return values
	}

	return values[:n]
}
