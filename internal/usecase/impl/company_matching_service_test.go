package impl

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"engineershub/internal/domain/entity"
	domainerrors "engineershub/internal/domain/errors"
	"engineershub/internal/errors"
	mockRepo "engineershub/internal/mocks/repository"
	mockService "engineershub/internal/mocks/service"
	"engineershub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type companyFixture struct {
	companyRepo  *mockRepo.MockCompanyRepository
	appRepo      *mockRepo.MockApplicationRepository
	resumeRepo   *mockRepo.MockResumeRepository
	learningRepo *mockRepo.MockLearningRepository
	opener       *mockService.MockLinkOpener
	service      *companyMatchingService
}

func newCompanyFixture(t *testing.T, user *entity.User) *companyFixture {
	t.Helper()

	f := &companyFixture{
		companyRepo:  mockRepo.NewMockCompanyRepository(t),
		appRepo:      mockRepo.NewMockApplicationRepository(t),
		resumeRepo:   mockRepo.NewMockResumeRepository(t),
		learningRepo: mockRepo.NewMockLearningRepository(t),
		opener:       mockService.NewMockLinkOpener(t),
	}
	f.service = newCompanyMatchingService(
		f.companyRepo, f.appRepo, f.resumeRepo, f.learningRepo, f.opener,
		staticUser{user: user}, entity.NewRequestContext(), newDiscardLogger(),
		func(int) int { return 3 },
	)

	return f
}

func tcs() *entity.Company {
	return &entity.Company{
		ID:   "tcs",
		Name: "Tata Consultancy Services",
		JobLinks: &entity.JobLinks{
			LinkedIn:       "https://www.linkedin.com/company/tcs/jobs/",
			Naukri:         "https://www.naukri.com/tcs-jobs",
			CompanyCareers: "https://www.tcs.com/careers",
		},
	}
}

func sampleResults() *entity.MatchResults {
	return &entity.MatchResults{
		MatchedCompanies: []*entity.MatchedCompany{
			{Company: *tcs(), MatchScore: entity.MatchScore{Overall: 81}},
		},
		TotalMatches: 1,
	}
}

func TestCompanyMatchingService_Mount(t *testing.T) {
	f := newCompanyFixture(t, testStudent())
	ctx := context.Background()
	learning := &entity.LearningRecommendations{Recommendations: []*entity.LearningCategory{{Category: "DSA"}}}
	applications := []*entity.Application{{ID: "app-1", CompanyName: "Zoho"}}

	f.companyRepo.EXPECT().ListCompanies(ctx).Return([]*entity.Company{tcs()}, nil).Once()
	f.companyRepo.EXPECT().MyMatches(ctx).Return(sampleResults(), nil).Once()
	f.learningRepo.EXPECT().Recommendations(ctx).Return(learning, nil).Once()
	f.appRepo.EXPECT().MyApplications(ctx).Return(applications, nil).Once()

	f.service.Mount(ctx)

	assert.Len(t, f.service.Directory(), 1)
	require.NotNil(t, f.service.Results())
	assert.Equal(t, 1, f.service.Results().TotalMatches)
	assert.Equal(t, learning, f.service.Learning())
	assert.Equal(t, applications, f.service.Applications())
	assert.False(t, f.service.DirectoryLoading())
}

func TestCompanyMatchingService_MountWithoutPriorMatches(t *testing.T) {
	f := newCompanyFixture(t, testStudent())
	ctx := context.Background()

	f.companyRepo.EXPECT().ListCompanies(ctx).Return([]*entity.Company{tcs()}, nil)
	f.companyRepo.EXPECT().MyMatches(ctx).Return(nil, nil)
	f.learningRepo.EXPECT().Recommendations(ctx).Return(nil, errors.New("quota exceeded"))
	f.appRepo.EXPECT().MyApplications(ctx).Return(nil, domainerrors.NewAPIError(http.StatusInternalServerError, ""))

	f.service.Mount(ctx)

	assert.Nil(t, f.service.Results())
	assert.Nil(t, f.service.Learning())
	assert.Empty(t, f.service.Applications())
	assert.Len(t, f.service.Directory(), 1)
}

func TestCompanyMatchingService_MountFailuresLeavePanelsEmpty(t *testing.T) {
	f := newCompanyFixture(t, testStudent())
	ctx := context.Background()

	f.companyRepo.EXPECT().ListCompanies(ctx).Return(nil, errors.New("connection refused"))
	f.companyRepo.EXPECT().MyMatches(ctx).Return(nil, errors.New("connection refused"))
	f.learningRepo.EXPECT().Recommendations(ctx).Return(nil, errors.New("connection refused"))
	f.appRepo.EXPECT().MyApplications(ctx).Return(nil, errors.New("connection refused"))

	f.service.Mount(ctx)

	assert.Empty(t, f.service.Directory())
	assert.Nil(t, f.service.Results())
	assert.False(t, f.service.DirectoryLoading())
}

func TestCompanyMatchingService_PanelTogglesDoNotFetch(t *testing.T) {
	f := newCompanyFixture(t, testStudent())
	ctx := context.Background()

	f.companyRepo.EXPECT().ListCompanies(ctx).Return([]*entity.Company{tcs()}, nil).Once()
	f.companyRepo.EXPECT().MyMatches(ctx).Return(nil, nil).Once()
	f.learningRepo.EXPECT().Recommendations(ctx).Return(&entity.LearningRecommendations{}, nil).Once()
	f.appRepo.EXPECT().MyApplications(ctx).Return([]*entity.Application{}, nil).Once()

	f.service.Mount(ctx)
	before := f.service.Panels()

	toggles := []func(){
		f.service.ToggleMatching,
		f.service.ToggleEditor,
		f.service.ToggleResumeEvaluator,
		f.service.ToggleApplications,
		f.service.ToggleLearningResources,
	}
	for _, toggle := range toggles {
		toggle()
	}
	assert.Equal(t, usecase.CompanyPanels{
		Matching: true, Editor: true, ResumeEvaluator: true, Applications: true, LearningResources: true,
	}, f.service.Panels())

	for _, toggle := range toggles {
		toggle()
	}
	assert.Equal(t, before, f.service.Panels())

	f.appRepo.AssertNumberOfCalls(t, "MyApplications", 1)
	f.learningRepo.AssertNumberOfCalls(t, "Recommendations", 1)
	f.companyRepo.AssertNumberOfCalls(t, "ListCompanies", 1)
}

func TestCompanyMatchingService_GenerateProfile(t *testing.T) {
	f := newCompanyFixture(t, testStudent())

	text, err := f.service.GenerateProfile()
	require.NoError(t, err)
	assert.Equal(t, text, f.service.ProfileText())

	preview, err := f.service.ProfilePreview()
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", preview.Name)
	assert.Equal(t, "Hyderabad", preview.Location)
	assert.Equal(t, "3rd Year Computer Science Student at NIT Trichy", preview.Headline)
}

func TestCompanyMatchingService_GenerateProfileRequiresUser(t *testing.T) {
	f := newCompanyFixture(t, nil)

	_, err := f.service.GenerateProfile()

	require.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestCompanyMatchingService_ProfilePreviewOfBrokenText(t *testing.T) {
	f := newCompanyFixture(t, testStudent())

	_, err := f.service.ProfilePreview()
	require.ErrorIs(t, err, domainerrors.ErrProfileNotGenerated)

	f.service.EditProfile(`{"name": "Asha",`)
	_, err = f.service.ProfilePreview()
	require.ErrorIs(t, err, domainerrors.ErrProfilePreviewUnavailable)
}

func TestCompanyMatchingService_AnalyzeProfile(t *testing.T) {
	f := newCompanyFixture(t, testStudent())
	ctx := context.Background()

	_, err := f.service.GenerateProfile()
	require.NoError(t, err)
	f.service.ToggleMatching()
	edited := `{"name":"Asha","skills":["Go"],"custom":{"kept":true}}`
	f.service.EditProfile(edited)

	f.companyRepo.EXPECT().MatchProfile(ctx, mock.MatchedBy(func(doc json.RawMessage) bool {
		return string(doc) == edited
	})).Return(sampleResults(), nil)

	require.NoError(t, f.service.AnalyzeProfile(ctx))

	assert.Equal(t, 1, f.service.Results().TotalMatches)
	assert.False(t, f.service.Panels().Matching)
	assert.Empty(t, f.service.ProfileText())
	assert.False(t, f.service.AnalysisLoading())
}

func TestCompanyMatchingService_AnalyzeProfileRejectsLocally(t *testing.T) {
	f := newCompanyFixture(t, testStudent())
	ctx := context.Background()

	require.ErrorIs(t, f.service.AnalyzeProfile(ctx), domainerrors.ErrProfileNotGenerated)

	f.service.EditProfile("   ")
	require.ErrorIs(t, f.service.AnalyzeProfile(ctx), domainerrors.ErrProfileNotGenerated)

	f.service.EditProfile("name: Asha")
	err := f.service.AnalyzeProfile(ctx)
	require.ErrorIs(t, err, domainerrors.ErrMalformedProfile)
	assert.Equal(t, "Failed to analyze profile. Please try again.", domainerrors.UserMessage(err, ""))

	f.companyRepo.AssertNotCalled(t, "MatchProfile", mock.Anything, mock.Anything)
	assert.Equal(t, "name: Asha", f.service.ProfileText())
}

func TestCompanyMatchingService_AnalyzeProfileServerFailure(t *testing.T) {
	f := newCompanyFixture(t, testStudent())
	ctx := context.Background()

	f.service.EditProfile(`{"name":"Asha"}`)
	f.companyRepo.EXPECT().MatchProfile(ctx, mock.Anything).
		Return(nil, domainerrors.NewAPIError(http.StatusInternalServerError, "Traceback ..."))

	err := f.service.AnalyzeProfile(ctx)

	require.ErrorIs(t, err, domainerrors.ErrProfileAnalysisFailed)
	assert.Equal(t, "Failed to analyze profile. Please try again.", domainerrors.UserMessage(err, ""))
	assert.Equal(t, `{"name":"Asha"}`, f.service.ProfileText())
	assert.Nil(t, f.service.Results())
	assert.False(t, f.service.AnalysisLoading())
}

func TestCompanyMatchingService_EvaluateResumeRejectedBeforeNetwork(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "unsupported type", err: domainerrors.ErrUnsupportedFileType},
		{name: "too large", err: domainerrors.ErrFileTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCompanyFixture(t, testStudent())
			upload := &entity.ResumeUpload{FileName: "resume.png", Data: []byte("x")}

			f.resumeRepo.EXPECT().Validate(upload).Return(tt.err)

			evaluation, err := f.service.EvaluateResume(context.Background(), upload)

			require.ErrorIs(t, err, tt.err)
			assert.Nil(t, evaluation)
			assert.False(t, f.service.Evaluating())
			assert.Nil(t, f.service.Evaluation())
			f.resumeRepo.AssertNotCalled(t, "Evaluate", mock.Anything, mock.Anything)
		})
	}
}

func TestCompanyMatchingService_EvaluateResume(t *testing.T) {
	f := newCompanyFixture(t, testStudent())
	ctx := context.Background()
	upload := &entity.ResumeUpload{FileName: "resume.pdf", ContentType: entity.MIMETypePDF, Data: []byte("%PDF-1.4")}
	evaluation := &entity.ResumeEvaluation{OverallScore: 78, ATSScore: 82}

	f.resumeRepo.EXPECT().Validate(upload).Return(nil)
	f.resumeRepo.EXPECT().Evaluate(ctx, upload).
		RunAndReturn(func(context.Context, *entity.ResumeUpload) (*entity.ResumeEvaluation, error) {
			assert.True(t, f.service.Evaluating())

			return evaluation, nil
		})

	got, err := f.service.EvaluateResume(ctx, upload)

	require.NoError(t, err)
	assert.Equal(t, evaluation, got)
	assert.Equal(t, evaluation, f.service.Evaluation())
	assert.False(t, f.service.Evaluating())

	f.service.ClearEvaluation()
	assert.Nil(t, f.service.Evaluation())
}

func TestCompanyMatchingService_EvaluateResumeFailure(t *testing.T) {
	f := newCompanyFixture(t, testStudent())
	ctx := context.Background()
	upload := &entity.ResumeUpload{FileName: "resume.pdf", ContentType: entity.MIMETypePDF, Data: []byte("%PDF-1.4")}

	f.resumeRepo.EXPECT().Validate(upload).Return(nil)
	f.resumeRepo.EXPECT().Evaluate(ctx, upload).Return(nil, errors.New("read timeout"))

	_, err := f.service.EvaluateResume(ctx, upload)

	require.ErrorIs(t, err, domainerrors.ErrResumeEvaluationFailed)
	assert.Equal(t, "Failed to evaluate resume. Please try again.", domainerrors.UserMessage(err, ""))
	assert.False(t, f.service.Evaluating())
}

func TestCompanyMatchingService_Apply(t *testing.T) {
	f := newCompanyFixture(t, testStudent())
	ctx := context.Background()
	company := tcs()
	tracked := []*entity.Application{{ID: "app-1", CompanyName: company.Name, Platform: "Naukri"}}

	f.opener.EXPECT().Open(ctx, "https://www.naukri.com/tcs-jobs").Return(nil)
	f.companyRepo.EXPECT().Apply(mock.Anything, "tcs", &entity.ApplicationRequest{
		Position:        "Software Developer",
		ApplicationLink: "https://www.naukri.com/tcs-jobs",
		Platform:        "Naukri",
		Notes:           "Applied through Naukri",
	}).Return(tracked[0], nil)
	f.appRepo.EXPECT().MyApplications(mock.Anything).Return(tracked, nil)

	require.NoError(t, f.service.Apply(ctx, usecase.ApplyInput{Company: company, Platform: entity.JobPlatformNaukri}))
	f.service.Wait()

	assert.Equal(t, tracked, f.service.Applications())
}

func TestCompanyMatchingService_ApplyTrackingFailureIsSilent(t *testing.T) {
	f := newCompanyFixture(t, testStudent())
	ctx := context.Background()

	f.opener.EXPECT().Open(ctx, "https://www.tcs.com/careers").Return(nil)
	f.companyRepo.EXPECT().Apply(mock.Anything, "tcs", mock.Anything).
		Return(nil, domainerrors.NewAPIError(http.StatusInternalServerError, "boom"))

	err := f.service.Apply(ctx, usecase.ApplyInput{Company: tcs(), Platform: entity.JobPlatformCareers})
	f.service.Wait()

	require.NoError(t, err)
	f.appRepo.AssertNotCalled(t, "MyApplications", mock.Anything)
}

func TestCompanyMatchingService_ApplyRejectsMissingLinks(t *testing.T) {
	f := newCompanyFixture(t, testStudent())
	ctx := context.Background()

	err := f.service.Apply(ctx, usecase.ApplyInput{Company: tcs(), Platform: entity.JobPlatformIndeed})
	require.ErrorIs(t, err, domainerrors.ErrUnknownPlatform)

	err = f.service.Apply(ctx, usecase.ApplyInput{Company: tcs(), Platform: entity.JobPlatform("Monster")})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	err = f.service.Apply(ctx, usecase.ApplyInput{Platform: entity.JobPlatformLinkedIn})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	f.opener.AssertNotCalled(t, "Open", mock.Anything, mock.Anything)
}

func TestCompanyMatchingService_ApplyOpenFailure(t *testing.T) {
	f := newCompanyFixture(t, testStudent())
	ctx := context.Background()

	f.opener.EXPECT().Open(ctx, mock.Anything).Return(errors.New("unsupported link"))

	err := f.service.Apply(ctx, usecase.ApplyInput{Company: tcs(), Platform: entity.JobPlatformLinkedIn})
	f.service.Wait()

	require.Error(t, err)
	f.companyRepo.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything, mock.Anything)
}

func TestCompanyMatchingService_CompanyDetails(t *testing.T) {
	f := newCompanyFixture(t, testStudent())
	ctx := context.Background()

	f.companyRepo.EXPECT().GetCompany(ctx, "tcs").Return(tcs(), nil).Once()
	f.companyRepo.EXPECT().GetCompany(ctx, "nope").Return(nil, domainerrors.NewAPIError(http.StatusNotFound, "Company not found")).Once()

	company, err := f.service.CompanyDetails(ctx, "tcs")
	require.NoError(t, err)
	assert.Equal(t, "Tata Consultancy Services", company.Name)

	_, err = f.service.CompanyDetails(ctx, "nope")
	require.Error(t, err)
	assert.True(t, domainerrors.IsStatus(err, http.StatusNotFound))
}
