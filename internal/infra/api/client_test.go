package api_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"engineershub/config"
	deliverycontext "engineershub/internal/delivery/context"
	"engineershub/internal/domain/entity"
	domainerrors "engineershub/internal/domain/errors"
	"engineershub/internal/domain/repository"
	"engineershub/internal/errors"
	"engineershub/internal/infra/api"
	"engineershub/internal/infra/api/apitest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*api.Client, *apitest.Server, *entity.RequestContext) {
	t.Helper()

	srv := apitest.New(t)
	rc := entity.NewRequestContext()
	client, err := api.NewClient(srv.APIConfig(), srv.Client(), rc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return client, srv, rc
}

func login(t *testing.T, client *api.Client, rc *entity.RequestContext) *entity.User {
	t.Helper()

	resp, err := client.Login(context.Background(), apitest.DefaultEmail, apitest.DefaultPassword)
	require.NoError(t, err)
	rc.Attach(resp.Token)

	return resp.User
}

func TestNewClient_RejectsInvalidBaseURL(t *testing.T) {
	_, err := api.NewClient(config.APIConfig{BaseURL: "not a url"}, nil, entity.NewRequestContext(), slog.Default())
	require.Error(t, err)

	_, err = api.NewClient(config.APIConfig{BaseURL: "http://localhost"}, nil, nil, slog.Default())
	require.Error(t, err)
}

func TestClient_LoginAndMe(t *testing.T) {
	client, _, rc := newTestClient(t)
	ctx := context.Background()

	resp, err := client.Login(ctx, apitest.DefaultEmail, apitest.DefaultPassword)
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, apitest.DefaultUserID, resp.User.ID)

	_, err = client.Me(ctx)
	require.Error(t, err, "no credential attached yet")

	rc.Attach(resp.Token)
	me, err := client.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", me.Name)
}

func TestClient_ErrorCarriesServerDetail(t *testing.T) {
	client, _, _ := newTestClient(t)

	_, err := client.Login(context.Background(), apitest.DefaultEmail, "wrong")
	require.Error(t, err)

	apiErr, ok := errors.AsType[*domainerrors.APIError](err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, apitest.InvalidCredentialsDetail, apiErr.Detail)
	assert.Equal(t, apitest.InvalidCredentialsDetail, domainerrors.DetailOr(err, "Login failed"))
	assert.True(t, domainerrors.IsStatus(err, http.StatusUnauthorized))
}

func TestClient_Register(t *testing.T) {
	client, _, _ := newTestClient(t)
	ctx := context.Background()

	resp, err := client.Register(ctx, &repository.RegisterRequest{
		Name: "Ravi", Email: "ravi@example.com", Password: "pw", Branch: "Electronics", Year: "2nd Year",
	})
	require.NoError(t, err)
	assert.Equal(t, "Electronics", resp.User.Branch)

	_, err = client.Register(ctx, &repository.RegisterRequest{Email: apitest.DefaultEmail, Password: "pw"})
	assert.Equal(t, apitest.EmailTakenDetail, domainerrors.DetailOr(err, "Registration failed"))
}

func TestClient_PinnedCredentialOutlivesLogout(t *testing.T) {
	client, _, rc := newTestClient(t)
	login(t, client, rc)

	pinned := rc.Pin(context.Background())
	rc.Detach()

	me, err := client.Me(pinned)
	require.NoError(t, err)
	assert.Equal(t, apitest.DefaultUserID, me.ID)

	_, err = client.Me(context.Background())
	require.Error(t, err)
}

func TestClient_PropagatesRequestID(t *testing.T) {
	client, srv, _ := newTestClient(t)

	ctx := deliverycontext.WithRequestID(context.Background(), "req-fixed")
	_, err := client.Questions(ctx, entity.QuizCategoryAptitude)
	require.NoError(t, err)

	_, err = client.Questions(context.Background(), entity.QuizCategoryAptitude)
	require.NoError(t, err)

	ids := srv.RequestIDs()
	require.Len(t, ids, 2)
	assert.Equal(t, "req-fixed", ids[0])
	_, err = uuid.Parse(ids[1])
	assert.NoError(t, err, "a fresh uuid is generated when the context has none")
}

func TestClient_ProjectsAndTasks(t *testing.T) {
	client, srv, rc := newTestClient(t)
	login(t, client, rc)
	ctx := context.Background()

	projects, err := client.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)

	created, err := client.CreateProject(ctx, &repository.ProjectRequest{Title: "Robotics"})
	require.NoError(t, err)
	assert.Equal(t, "Robotics", created.Title)

	task, err := client.CreateTask(ctx, created.ID, &repository.TaskRequest{Title: "Order parts", Priority: entity.TaskPriorityMedium})
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusTodo, task.Status)

	task.Status = entity.TaskStatusInProgress
	updated, err := client.UpdateTask(ctx, task)
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusInProgress, updated.Status)

	tasks, err := client.ListTasks(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, entity.TaskStatusInProgress, tasks[0].Status)
	assert.Equal(t, 1, srv.Calls("PUT /api/tasks/:id"))
}

func TestClient_Interview(t *testing.T) {
	client, srv, rc := newTestClient(t)
	login(t, client, rc)
	ctx := context.Background()

	session, err := client.StartSession(ctx, entity.InterviewTypeHR)
	require.NoError(t, err)
	require.Len(t, session.Questions, 2)
	assert.Equal(t, "hr_0", session.Questions[0].ID)

	require.NoError(t, client.SaveResponse(ctx, session.ID, &entity.InterviewResponse{
		QuestionID: session.Questions[0].ID,
		Question:   session.Questions[0].Question,
		Answer:     "I build things.",
	}))

	recorded := srv.Responses(session.ID)
	require.Len(t, recorded, 1)
	assert.Equal(t, "I build things.", recorded[0].Answer)
}

func TestClient_Companies(t *testing.T) {
	client, srv, rc := newTestClient(t)
	login(t, client, rc)
	ctx := context.Background()

	matches, err := client.MyMatches(ctx)
	require.NoError(t, err)
	assert.Nil(t, matches, "no matches before the first analysis")

	results, err := client.MatchProfile(ctx, []byte(`{"skills":["Java"]}`))
	require.NoError(t, err)
	require.Len(t, results.MatchedCompanies, 2)
	assert.Equal(t, "Zoho", results.MatchedCompanies[0].Name)
	assert.JSONEq(t, `{"skills":["Java"]}`, string(srv.LastProfile()))

	matches, err = client.MyMatches(ctx)
	require.NoError(t, err)
	require.NotNil(t, matches)

	company, err := client.GetCompany(ctx, "tcs")
	require.NoError(t, err)
	assert.Equal(t, "https://www.tcs.com/careers", company.JobLinks.For(entity.JobPlatformCareers))

	_, err = client.GetCompany(ctx, "nope")
	assert.True(t, domainerrors.IsStatus(err, http.StatusNotFound))

	_, err = client.Apply(ctx, "tcs", &entity.ApplicationRequest{Position: entity.DefaultApplicationPosition, Platform: "LinkedIn"})
	require.NoError(t, err)

	applications, err := client.MyApplications(ctx)
	require.NoError(t, err)
	require.Len(t, applications, 1)
	assert.Equal(t, "Tata Consultancy Services", applications[0].CompanyName)

	recs, err := client.Recommendations(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"System Design"}, recs.UserProfile.IdentifiedWeakAreas)
}

func TestClient_Profile(t *testing.T) {
	client, srv, rc := newTestClient(t)
	login(t, client, rc)
	ctx := context.Background()

	require.NoError(t, client.UpdateProfile(ctx, &entity.ProfileUpdate{Name: "Asha R", Branch: "Computer Science", Skills: "Go"}))
	assert.Equal(t, "Go", srv.LastProfileUpdate().Skills)

	me, err := client.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Asha R", me.Name)

	require.NoError(t, client.ImportLinkedIn(ctx, []byte(`{"headline":"Student"}`)))
	assert.JSONEq(t, `{"headline":"Student"}`, string(srv.LastLinkedIn()))
}

func TestClient_InjectedFailure(t *testing.T) {
	client, srv, rc := newTestClient(t)
	login(t, client, rc)

	srv.Fail("GET /api/dashboard", http.StatusInternalServerError, "")
	_, err := client.Dashboard(context.Background())
	require.Error(t, err)
	assert.Equal(t, "fallback", domainerrors.DetailOr(err, "fallback"))

	srv.Recover("GET /api/dashboard")
	dashboard, err := client.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, dashboard.QuizStats.TotalSessions)
}
