// Package apitest provides an in-process fake of the remote EngineersHub API for tests.
// It serves canned fixtures only; none of the backend algorithms are reproduced.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"engineershub/config"
	"engineershub/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Prefix is the API prefix the fake mounts its routes under.
const Prefix = "/api"

const (
	// DefaultEmail and DefaultPassword log in as the seeded student.
	DefaultEmail    = "student@example.com"
	DefaultPassword = "secret123"

	// InvalidCredentialsDetail is the detail returned by a failed login.
	InvalidCredentialsDetail = "Invalid credentials"
	// EmailTakenDetail is the detail returned when registering an existing email.
	EmailTakenDetail = "Email already registered"
)

type account struct {
	user     *entity.User
	password string
}

type failure struct {
	status int
	detail string
}

// Server is a running fake backend. Routes are identified by "METHOD /api/path/:param".
type Server struct {
	*httptest.Server

	echo   *echo.Echo
	secret []byte

	mu           sync.Mutex
	accounts     map[string]*account // by email
	failures     map[string]failure
	gates        map[string]chan struct{}
	calls        map[string]int
	requestIDs   []string
	fixtures     *Fixtures
	responses    map[string][]*entity.InterviewResponse
	projects     []*entity.Project
	tasks        []*entity.Task
	applications []*entity.Application
	matches      *entity.MatchResults
	lastProfile  json.RawMessage
	lastLinkedIn json.RawMessage
	lastUpload   *Upload
	lastUpdate   *entity.ProfileUpdate
	tokenTTL     time.Duration
}

// Upload describes the last resume received.
type Upload struct {
	FileName    string
	ContentType string
	Size        int64
}

// New starts a fake backend seeded with DefaultFixtures and stops it when t ends.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		secret:    []byte("apitest_signing_secret_" + uuid.NewString()),
		accounts:  make(map[string]*account),
		failures:  make(map[string]failure),
		gates:     make(map[string]chan struct{}),
		calls:     make(map[string]int),
		fixtures:  DefaultFixtures(),
		responses: make(map[string][]*entity.InterviewResponse),
		tokenTTL:  time.Hour,
	}
	s.accounts[DefaultEmail] = &account{user: DefaultUser(), password: DefaultPassword}
	s.projects, s.tasks = s.fixtures.Projects, s.fixtures.Tasks

	s.echo = echo.New()
	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.HTTPErrorHandler = handleHTTPError
	s.echo.Use(s.record, s.inject)
	s.registerRoutes()

	s.Server = httptest.NewServer(s.echo)
	t.Cleanup(s.Close)

	return s
}

// Close releases blocked handlers, then stops the server.
func (s *Server) Close() {
	s.mu.Lock()
	for route, gate := range s.gates {
		close(gate)
		delete(s.gates, route)
	}
	s.mu.Unlock()

	s.Server.Close()
}

// APIConfig returns a client configuration pointing at the fake.
func (s *Server) APIConfig() config.APIConfig {
	return config.APIConfig{
		BaseURL:        s.URL,
		Prefix:         Prefix,
		Timeout:        5 * time.Second,
		MaxUploadBytes: 5 * 1024 * 1024,
	}
}

// Fixtures exposes the canned data served by the fake. Mutate it before the calls under test.
func (s *Server) Fixtures() *Fixtures {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.fixtures
}

// Fail makes every call to route answer status with detail until Recover.
func (s *Server) Fail(route string, status int, detail string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failures[route] = failure{status: status, detail: detail}
}

// Recover removes an injected failure.
func (s *Server) Recover(route string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.failures, route)
}

// Block holds every call to route until the returned release func runs.
func (s *Server) Block(route string) (release func()) {
	gate := make(chan struct{})

	s.mu.Lock()
	s.gates[route] = gate
	s.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			s.mu.Lock()
			if s.gates[route] == gate {
				delete(s.gates, route)
				close(gate)
			}
			s.mu.Unlock()
		})
	}
}

// Calls returns how many requests reached route.
func (s *Server) Calls(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.calls[route]
}

// TotalCalls returns how many requests reached any route.
func (s *Server) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, n := range s.calls {
		total += n
	}

	return total
}

// RequestIDs returns the X-Request-Id of every request in arrival order.
func (s *Server) RequestIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.requestIDs...)
}

// Responses returns the interview answers recorded for a session, in arrival order.
func (s *Server) Responses(sessionID string) []*entity.InterviewResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*entity.InterviewResponse(nil), s.responses[sessionID]...)
}

// Applications returns the applications recorded through the apply endpoint.
func (s *Server) Applications() []*entity.Application {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*entity.Application(nil), s.applications...)
}

// LastProfile returns the last profile document submitted for matching.
func (s *Server) LastProfile() json.RawMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastProfile
}

// LastLinkedIn returns the last LinkedIn document imported.
func (s *Server) LastLinkedIn() json.RawMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastLinkedIn
}

// LastUpload returns the last resume received, or nil.
func (s *Server) LastUpload() *Upload {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastUpload
}

// LastProfileUpdate returns the last PUT /profile payload, or nil.
func (s *Server) LastProfileUpdate() *entity.ProfileUpdate {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastUpdate
}

// SetStoredMatches replaces what GET /companies/my-matches returns.
func (s *Server) SetStoredMatches(results *entity.MatchResults) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.matches = results
}

// SetTokenTTL changes the lifetime of tokens issued from now on.
func (s *Server) SetTokenTTL(ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokenTTL = ttl
}

// MintToken issues a credential for the user with the given lifetime (negative for an expired one).
func (s *Server) MintToken(userID string, ttl time.Duration) string {
	now := time.Now()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}).SignedString(s.secret)
	if err != nil {
		panic(err)
	}

	return token
}

// record counts calls per route and keeps the request id.
func (s *Server) record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.mu.Lock()
		s.calls[routeKey(c)]++
		s.requestIDs = append(s.requestIDs, c.Request().Header.Get(echo.HeaderXRequestID))
		s.mu.Unlock()

		return next(c)
	}
}

// inject applies injected failures and gates.
func (s *Server) inject(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := routeKey(c)

		s.mu.Lock()
		gate := s.gates[key]
		s.mu.Unlock()

		if gate != nil {
			select {
			case <-gate:
			case <-c.Request().Context().Done():
				return c.Request().Context().Err()
			}
		}

		s.mu.Lock()
		fail, failing := s.failures[key]
		s.mu.Unlock()

		if failing {
			return detail(c, fail.status, fail.detail)
		}

		return next(c)
	}
}

// authenticate validates the bearer credential and loads its account.
func (s *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || tokenString == authHeader {
			return detail(c, http.StatusForbidden, "Not authenticated")
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}

			return s.secret, nil
		})
		if err != nil || !token.Valid {
			return detail(c, http.StatusUnauthorized, "Could not validate credentials")
		}

		subject, err := token.Claims.GetSubject()
		if err != nil {
			return detail(c, http.StatusUnauthorized, "Could not validate credentials")
		}

		acc := s.accountByID(subject)
		if acc == nil {
			return detail(c, http.StatusUnauthorized, "User not found")
		}
		c.Set("account", acc)

		return next(c)
	}
}

func (s *Server) accountByID(id string) *account {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range s.accounts {
		if acc.user.ID == id {
			return acc
		}
	}

	return nil
}

func routeKey(c echo.Context) string {
	return c.Request().Method + " " + c.Path()
}

func detail(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]any{"detail": message})
}

// handleHTTPError renders every error FastAPI style.
func handleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, message := http.StatusInternalServerError, err.Error()
	if httpErr, ok := err.(*echo.HTTPError); ok {
		status = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	_ = detail(c, status, message)
}
