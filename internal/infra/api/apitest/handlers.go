package apitest

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"engineershub/internal/domain/entity"
	"engineershub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func (s *Server) registerRoutes() {
	api := s.echo.Group(Prefix)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", s.login)
		authGroup.POST("/register", s.register)
		authGroup.GET("/me", s.me, s.authenticate)
	}

	// Public catalogue routes
	api.GET("/quiz/questions/:category", s.questions)
	api.GET("/companies", s.companies)
	api.GET("/companies/:id", s.company)

	private := api.Group("", s.authenticate)
	{
		private.GET("/dashboard", s.dashboard)

		private.GET("/projects", s.listProjects)
		private.POST("/projects", s.createProject)
		private.GET("/projects/:id/tasks", s.listTasks)
		private.POST("/projects/:id/tasks", s.createTask)
		private.PUT("/tasks/:id", s.updateTask)

		private.POST("/interview/session", s.startInterview)
		private.POST("/interview/:id/response", s.interviewResponse)

		private.GET("/companies/my-matches", s.myMatches)
		private.POST("/companies/match-profile", s.matchProfile)
		private.POST("/companies/:id/apply", s.apply)
		private.GET("/applications/my-applications", s.myApplications)

		private.POST("/resume/evaluate", s.evaluateResume)
		private.GET("/learning/youtube-recommendations", s.learning)

		private.PUT("/profile", s.updateProfile)
		private.POST("/profile/linkedin", s.importLinkedIn)
	}
}

func currentAccount(c echo.Context) *account {
	acc, _ := c.Get("account").(*account)

	return acc
}

func (s *Server) issue(acc *account) map[string]any {
	s.mu.Lock()
	ttl := s.tokenTTL
	s.mu.Unlock()

	return map[string]any{"token": s.MintToken(acc.user.ID, ttl), "user": acc.user}
}

func (s *Server) login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusUnprocessableEntity, "Invalid request body")
	}

	s.mu.Lock()
	acc, ok := s.accounts[req.Email]
	s.mu.Unlock()

	if !ok || acc.password != req.Password {
		return detail(c, http.StatusUnauthorized, InvalidCredentialsDetail)
	}

	return c.JSON(http.StatusOK, s.issue(acc))
}

func (s *Server) register(c echo.Context) error {
	var req repository.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusUnprocessableEntity, "Invalid request body")
	}

	s.mu.Lock()
	if _, exists := s.accounts[req.Email]; exists {
		s.mu.Unlock()

		return detail(c, http.StatusBadRequest, EmailTakenDetail)
	}
	acc := &account{
		user: &entity.User{
			ID:        uuid.NewString(),
			Name:      req.Name,
			Email:     req.Email,
			College:   req.College,
			Branch:    req.Branch,
			Year:      req.Year,
			CreatedAt: time.Now().UTC(),
		},
		password: req.Password,
	}
	s.accounts[req.Email] = acc
	s.mu.Unlock()

	return c.JSON(http.StatusOK, s.issue(acc))
}

func (s *Server) me(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return c.JSON(http.StatusOK, currentAccount(c).user)
}

func (s *Server) questions(c echo.Context) error {
	s.mu.Lock()
	questions, ok := s.fixtures.Questions[entity.QuizCategory(c.Param("category"))]
	s.mu.Unlock()

	if !ok {
		return detail(c, http.StatusBadRequest, "Invalid category")
	}

	return c.JSON(http.StatusOK, questions)
}

func (s *Server) companies(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return c.JSON(http.StatusOK, s.fixtures.Companies)
}

func (s *Server) company(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, company := range s.fixtures.Companies {
		if company.ID == c.Param("id") {
			return c.JSON(http.StatusOK, company)
		}
	}

	return detail(c, http.StatusNotFound, "Company not found")
}

func (s *Server) dashboard(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return c.JSON(http.StatusOK, &entity.Dashboard{
		RecentProjects: s.projects,
		RecentTasks:    s.tasks,
		QuizStats:      s.fixtures.QuizStats,
	})
}

func (s *Server) listProjects(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return c.JSON(http.StatusOK, s.projects)
}

func (s *Server) createProject(c echo.Context) error {
	var req repository.ProjectRequest
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusUnprocessableEntity, "Invalid request body")
	}

	project := &entity.Project{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		UserID:      currentAccount(c).user.ID,
		Status:      "active",
		Deadline:    req.Deadline,
		CreatedAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	s.projects = append([]*entity.Project{project}, s.projects...)
	s.mu.Unlock()

	return c.JSON(http.StatusOK, project)
}

func (s *Server) hasProject(id string) bool {
	for _, project := range s.projects {
		if project.ID == id {
			return true
		}
	}

	return false
}

func (s *Server) listTasks(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasProject(c.Param("id")) {
		return detail(c, http.StatusNotFound, "Project not found")
	}

	tasks := []*entity.Task{}
	for _, task := range s.tasks {
		if task.ProjectID == c.Param("id") {
			tasks = append(tasks, task)
		}
	}

	return c.JSON(http.StatusOK, tasks)
}

func (s *Server) createTask(c echo.Context) error {
	var req repository.TaskRequest
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusUnprocessableEntity, "Invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasProject(c.Param("id")) {
		return detail(c, http.StatusNotFound, "Project not found")
	}

	task := &entity.Task{
		ID:          uuid.NewString(),
		ProjectID:   c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		Status:      entity.TaskStatusTodo,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		CreatedAt:   time.Now().UTC(),
	}
	s.tasks = append(s.tasks, task)

	return c.JSON(http.StatusOK, task)
}

func (s *Server) updateTask(c echo.Context) error {
	var req entity.Task
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusUnprocessableEntity, "Invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, task := range s.tasks {
		if task.ID != c.Param("id") {
			continue
		}
		updated := *task
		updated.Title, updated.Description = req.Title, req.Description
		updated.Status, updated.Priority, updated.DueDate = req.Status, req.Priority, req.DueDate
		s.tasks[i] = &updated

		return c.JSON(http.StatusOK, &updated)
	}

	return detail(c, http.StatusNotFound, "Task not found")
}

func (s *Server) startInterview(c echo.Context) error {
	interviewType := entity.InterviewType(c.QueryParam("interview_type"))

	s.mu.Lock()
	defer s.mu.Unlock()

	scripted, ok := s.fixtures.InterviewQuestions[interviewType]
	if !ok {
		return detail(c, http.StatusBadRequest, "Invalid interview type")
	}

	session := &entity.InterviewSession{ID: uuid.NewString(), Type: interviewType}
	for i, question := range scripted {
		session.Questions = append(session.Questions, &entity.InterviewQuestion{
			ID:       string(interviewType) + "_" + strconv.Itoa(i),
			Question: question,
		})
	}
	s.responses[session.ID] = []*entity.InterviewResponse{}

	return c.JSON(http.StatusOK, session)
}

func (s *Server) interviewResponse(c echo.Context) error {
	var resp entity.InterviewResponse
	if err := c.Bind(&resp); err != nil {
		return detail(c, http.StatusUnprocessableEntity, "Invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.responses[c.Param("id")]; !ok {
		return detail(c, http.StatusNotFound, "Session not found")
	}
	s.responses[c.Param("id")] = append(s.responses[c.Param("id")], &resp)

	return c.JSON(http.StatusOK, map[string]any{"message": "Response submitted"})
}

func (s *Server) myMatches(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.matches == nil {
		return c.JSON(http.StatusOK, map[string]any{
			"message": "No matches found. Please upload your LinkedIn profile first.",
			"results": nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]any{"message": "Matches retrieved successfully", "results": s.matches})
}

func (s *Server) matchProfile(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil || !json.Valid(body) {
		return detail(c, http.StatusUnprocessableEntity, "Invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastProfile = body
	s.matches = s.fixtures.MatchResults

	return c.JSON(http.StatusOK, map[string]any{"message": "Profile analysis complete", "results": s.matches})
}

func (s *Server) apply(c echo.Context) error {
	var req entity.ApplicationRequest
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusUnprocessableEntity, "Invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	name := c.Param("id")
	for _, company := range s.fixtures.Companies {
		if company.ID == c.Param("id") {
			name = company.Name
		}
	}

	application := &entity.Application{
		ID:              uuid.NewString(),
		Position:        req.Position,
		CompanyName:     name,
		Platform:        req.Platform,
		Status:          "Applied",
		AppliedDate:     time.Now().UTC().Format(time.DateOnly),
		Notes:           req.Notes,
		ApplicationLink: req.ApplicationLink,
	}
	s.applications = append(s.applications, application)

	return c.JSON(http.StatusOK, map[string]any{"message": "Application tracked", "application": application})
}

func (s *Server) myApplications(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	applications := append([]*entity.Application{}, s.applications...)

	return c.JSON(http.StatusOK, map[string]any{"applications": applications})
}

func (s *Server) evaluateResume(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return detail(c, http.StatusBadRequest, "No file uploaded")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastUpload = &Upload{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Size:        fileHeader.Size,
	}

	return c.JSON(http.StatusOK, map[string]any{"analysis": s.fixtures.Evaluation})
}

func (s *Server) learning(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return c.JSON(http.StatusOK, s.fixtures.Learning)
}

func (s *Server) updateProfile(c echo.Context) error {
	var update entity.ProfileUpdate
	if err := c.Bind(&update); err != nil {
		return detail(c, http.StatusUnprocessableEntity, "Invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := currentAccount(c).user
	user.Name, user.College, user.Branch, user.Year = update.Name, update.College, update.Branch, update.Year
	s.lastUpdate = &update

	return c.JSON(http.StatusOK, user)
}

func (s *Server) importLinkedIn(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil || !json.Valid(body) {
		return detail(c, http.StatusUnprocessableEntity, "Invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastLinkedIn = body

	return c.JSON(http.StatusOK, map[string]any{"message": "LinkedIn data imported successfully"})
}
