package impl

import (
	"context"
	"io"
	"log/slog"

	"engineershub/internal/domain/entity"
	"engineershub/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type staticUser struct {
	user *entity.User
}

func (s staticUser) User() *entity.User {
	return s.user
}

// fakeSession serves a fixed account and counts refreshes. Other methods are not used.
type fakeSession struct {
	usecase.SessionUsecase

	user      *entity.User
	refreshed int
}

func (s *fakeSession) User() *entity.User {
	return s.user
}

func (s *fakeSession) RefreshUser(_ context.Context) {
	s.refreshed++
}

func testStudent() *entity.User {
	return &entity.User{
		ID:      "user-1",
		Name:    "Asha Rao",
		Email:   "student@example.com",
		College: "NIT Trichy",
		Branch:  "Computer Science",
		Year:    "3rd Year",
	}
}
