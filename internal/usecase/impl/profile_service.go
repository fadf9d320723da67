package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	deliverycontext "engineershub/internal/delivery/context"
	"engineershub/internal/domain/entity"
	domainerrors "engineershub/internal/domain/errors"
	"engineershub/internal/domain/repository"
	"engineershub/internal/errors"
	"engineershub/internal/usecase"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	repo    repository.ProfileRepository
	session usecase.SessionUsecase
	logger  *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(repo repository.ProfileRepository, session usecase.SessionUsecase, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{repo: repo, session: session, logger: logger}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Form prefills the account fields. Skills, experience and projects start empty.
func (srv *profileService) Form() usecase.UpdateProfileInput {
	user := srv.session.User()
	if user == nil {
		return usecase.UpdateProfileInput{}
	}

	return usecase.UpdateProfileInput{
		Name:    user.Name,
		College: user.College,
		Branch:  user.Branch,
		Year:    user.Year,
	}
}

// Update sends the form, then refreshes the signed-in account.
func (srv *profileService) Update(ctx context.Context, input usecase.UpdateProfileInput) (string, error) {
	err := srv.repo.UpdateProfile(ctx, &entity.ProfileUpdate{
		Name:       input.Name,
		College:    input.College,
		Branch:     input.Branch,
		Year:       input.Year,
		Skills:     input.Skills,
		Experience: input.Experience,
		Projects:   input.Projects,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.Any("error", err))

		return usecase.MsgProfileFailed, errors.WithStack(errors.Join(domainerrors.ErrProfileUpdateFailed, err))
	}

	srv.session.RefreshUser(ctx)

	return usecase.MsgProfileUpdated, nil
}

// ImportLinkedIn parses locally before anything is sent.
func (srv *profileService) ImportLinkedIn(ctx context.Context, raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}

	var document map[string]any
	if err := json.Unmarshal([]byte(raw), &document); err != nil {
		srv.log(ctx).Warn("LinkedIn data is not valid JSON", slog.Any("error", err))

		return usecase.MsgLinkedInImportBad, domainerrors.ErrLinkedInImportFailed.WithDetails(err.Error())
	}

	if err := srv.repo.ImportLinkedIn(ctx, json.RawMessage(raw)); err != nil {
		srv.log(ctx).Error("Failed to import LinkedIn data", slog.Any("error", err))

		return usecase.MsgLinkedInImportBad, errors.WithStack(errors.Join(domainerrors.ErrLinkedInImportFailed, err))
	}

	return usecase.MsgLinkedInImported, nil
}

// SampleLinkedIn fills a LinkedIn-shaped example from the form.
func (srv *profileService) SampleLinkedIn(input usecase.UpdateProfileInput) (string, error) {
	sample := &entity.LinkedInData{
		Headline: "Final Year Engineering Student",
		Summary:  "Passionate about technology and innovation",
		Skills:   []string{"JavaScript", "Python", "React", "Node.js"},
		Education: []*entity.ProfileEducation{
			{Institution: input.College, Degree: "B.Tech in " + input.Branch, Year: input.Year},
		},
		Projects: []*entity.ProfileProject{
			{
				Title:        "Sample Project",
				Description:  "Description of your project",
				Technologies: []string{"React", "Node.js", "MongoDB"},
			},
		},
	}

	body, err := json.MarshalIndent(sample, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to encode sample LinkedIn data")
	}

	return string(body), nil
}
