package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"engineershub/internal/domain/entity"
	domainerrors "engineershub/internal/domain/errors"
	"engineershub/internal/domain/repository"
	"engineershub/internal/errors"
	mockRepo "engineershub/internal/mocks/repository"
	mockService "engineershub/internal/mocks/service"
	"engineershub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	authRepo  *mockRepo.MockAuthRepository
	credRepo  *mockRepo.MockCredentialRepository
	inspector *mockService.MockTokenInspector
	rc        *entity.RequestContext
	service   usecase.SessionUsecase
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()

	f := &sessionFixture{
		authRepo:  mockRepo.NewMockAuthRepository(t),
		credRepo:  mockRepo.NewMockCredentialRepository(t),
		inspector: mockService.NewMockTokenInspector(t),
		rc:        entity.NewRequestContext(),
	}
	f.service = NewSessionService(f.authRepo, f.credRepo, f.inspector, f.rc, newDiscardLogger())

	return f
}

func TestSessionService_Login_Success(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	user := testStudent()

	f.authRepo.EXPECT().Login(ctx, "student@example.com", "secret123").
		Return(&entity.AuthResponse{Token: "tok-1", User: user}, nil)
	f.credRepo.EXPECT().Save(ctx, "tok-1").Return(nil)

	result := f.service.Login(ctx, "student@example.com", "secret123")

	require.True(t, result.OK)
	assert.Empty(t, result.Message)
	assert.Equal(t, user, result.User)
	assert.Equal(t, "tok-1", f.rc.Token())
	assert.Equal(t, user, f.service.User())
	assert.True(t, f.service.Authenticated())
}

func TestSessionService_Login_FailureCarriesServerDetail(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.authRepo.EXPECT().Login(ctx, "student@example.com", "wrong").
		Return(nil, errors.WithStack(domainerrors.NewAPIError(http.StatusUnauthorized, "Invalid credentials")))

	result := f.service.Login(ctx, "student@example.com", "wrong")

	assert.False(t, result.OK)
	assert.Equal(t, "Invalid credentials", result.Message)
	assert.Empty(t, f.rc.Token())
	assert.Nil(t, f.service.User())
	assert.False(t, f.service.Authenticated())
}

func TestSessionService_Login_FailureWithoutDetail(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.authRepo.EXPECT().Login(ctx, mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	result := f.service.Login(ctx, "student@example.com", "secret123")

	assert.False(t, result.OK)
	assert.Equal(t, "Login failed", result.Message)
}

func TestSessionService_Login_KeepsPreviousSessionOnFailure(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	user := testStudent()

	f.authRepo.EXPECT().Login(ctx, "student@example.com", "secret123").
		Return(&entity.AuthResponse{Token: "tok-1", User: user}, nil).Once()
	f.credRepo.EXPECT().Save(ctx, "tok-1").Return(nil).Once()
	f.authRepo.EXPECT().Login(ctx, "other@example.com", "nope").
		Return(nil, domainerrors.NewAPIError(http.StatusUnauthorized, "Invalid credentials")).Once()

	require.True(t, f.service.Login(ctx, "student@example.com", "secret123").OK)
	require.False(t, f.service.Login(ctx, "other@example.com", "nope").OK)

	assert.Equal(t, "tok-1", f.rc.Token())
	assert.Equal(t, user, f.service.User())
}

func TestSessionService_Login_StorageFailureAttachesNothing(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.authRepo.EXPECT().Login(ctx, mock.Anything, mock.Anything).
		Return(&entity.AuthResponse{Token: "tok-1", User: testStudent()}, nil)
	f.credRepo.EXPECT().Save(ctx, "tok-1").Return(errors.New("disk full"))

	result := f.service.Login(ctx, "student@example.com", "secret123")

	assert.False(t, result.OK)
	assert.Equal(t, domainerrors.ErrCredentialStorage.Message(), result.Message)
	assert.Empty(t, f.rc.Token())
	assert.Nil(t, f.service.User())
}

func TestSessionService_Register_Success(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	user := testStudent()

	f.authRepo.EXPECT().Register(ctx, mock.MatchedBy(func(req *repository.RegisterRequest) bool {
		return req.Email == "new@example.com" && req.Branch == "Civil" && req.Year == "2nd Year"
	})).Return(&entity.AuthResponse{Token: "tok-2", User: user}, nil)
	f.credRepo.EXPECT().Save(ctx, "tok-2").Return(nil)

	result := f.service.Register(ctx, &usecase.RegisterInput{
		Name:     "New Student",
		Email:    "new@example.com",
		Password: "pw",
		College:  "IIT",
		Branch:   "Civil",
		Year:     "2nd Year",
	})

	require.True(t, result.OK)
	assert.Equal(t, "tok-2", f.rc.Token())
}

func TestSessionService_Register_EmailTaken(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.authRepo.EXPECT().Register(ctx, mock.Anything).
		Return(nil, domainerrors.NewAPIError(http.StatusBadRequest, "Email already registered"))

	result := f.service.Register(ctx, &usecase.RegisterInput{Email: "student@example.com"})

	assert.False(t, result.OK)
	assert.Equal(t, "Email already registered", result.Message)
	assert.Empty(t, f.rc.Token())
}

func TestSessionService_Logout(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.authRepo.EXPECT().Login(ctx, mock.Anything, mock.Anything).
		Return(&entity.AuthResponse{Token: "tok-1", User: testStudent()}, nil)
	f.credRepo.EXPECT().Save(ctx, "tok-1").Return(nil)
	f.credRepo.EXPECT().Clear(ctx).Return(nil)

	require.True(t, f.service.Login(ctx, "student@example.com", "secret123").OK)
	f.service.Logout(ctx)

	assert.Empty(t, f.rc.Token())
	assert.Nil(t, f.service.User())
	assert.False(t, f.service.Authenticated())
}

func TestSessionService_Hydrate_NoCredential(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.credRepo.EXPECT().Load(ctx).Return("", repository.ErrCredentialNotFound)

	require.True(t, f.service.Loading())
	f.service.Hydrate(ctx)

	assert.False(t, f.service.Loading())
	assert.False(t, f.service.Authenticated())
}

func TestSessionService_Hydrate_ValidCredential(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	user := testStudent()

	f.credRepo.EXPECT().Load(ctx).Return("tok-1", nil)
	f.inspector.EXPECT().Expired("tok-1", mock.AnythingOfType("time.Time")).Return(false)
	f.authRepo.EXPECT().Me(ctx).Return(user, nil)

	f.service.Hydrate(ctx)

	assert.False(t, f.service.Loading())
	assert.Equal(t, "tok-1", f.rc.Token())
	assert.Equal(t, user, f.service.User())
}

func TestSessionService_Hydrate_ExpiredCredentialIsCleared(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.credRepo.EXPECT().Load(ctx).Return("tok-old", nil)
	f.inspector.EXPECT().Expired("tok-old", mock.AnythingOfType("time.Time")).Return(true)
	f.credRepo.EXPECT().Clear(ctx).Return(nil)

	f.service.Hydrate(ctx)

	assert.Empty(t, f.rc.Token())
	assert.Nil(t, f.service.User())
	assert.False(t, f.service.Loading())
}

func TestSessionService_Hydrate_RejectedCredentialIsCleared(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.credRepo.EXPECT().Load(ctx).Return("tok-1", nil)
	f.inspector.EXPECT().Expired("tok-1", mock.AnythingOfType("time.Time")).Return(false)
	f.authRepo.EXPECT().Me(ctx).Return(nil, domainerrors.NewAPIError(http.StatusUnauthorized, "Invalid token"))
	f.credRepo.EXPECT().Clear(ctx).Return(nil)

	f.service.Hydrate(ctx)

	assert.Empty(t, f.rc.Token())
	assert.False(t, f.service.Authenticated())
}

func TestSessionService_Hydrate_StorageFailureClears(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.credRepo.EXPECT().Load(ctx).Return("", errors.New("database is locked"))
	f.credRepo.EXPECT().Clear(ctx).Return(errors.New("database is locked"))

	f.service.Hydrate(ctx)

	assert.Empty(t, f.rc.Token())
	assert.False(t, f.service.Loading())
}

func TestSessionService_RefreshUser(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	// No credential attached: nothing to refresh.
	f.service.RefreshUser(ctx)

	renamed := testStudent()
	renamed.Name = "Asha R."

	f.credRepo.EXPECT().Load(ctx).Return("tok-1", nil)
	f.inspector.EXPECT().Expired("tok-1", mock.Anything).Return(false)
	f.authRepo.EXPECT().Me(ctx).Return(testStudent(), nil).Once()
	f.authRepo.EXPECT().Me(ctx).Return(renamed, nil).Once()
	f.authRepo.EXPECT().Me(ctx).Return(nil, errors.New("timeout")).Once()

	f.service.Hydrate(ctx)
	f.service.RefreshUser(ctx)
	assert.Equal(t, "Asha R.", f.service.User().Name)

	f.service.RefreshUser(ctx)
	assert.Equal(t, "Asha R.", f.service.User().Name, "failed refresh keeps the account")
	assert.Equal(t, "tok-1", f.rc.Token())
}

func TestSessionService_UsesNowForExpiry(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	f.service.(*sessionService).now = func() time.Time { return fixed }

	f.credRepo.EXPECT().Load(ctx).Return("tok-1", nil)
	f.inspector.EXPECT().Expired("tok-1", fixed).Return(true)
	f.credRepo.EXPECT().Clear(ctx).Return(nil)

	f.service.Hydrate(ctx)
}
