package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"engineershub/internal/domain/entity"
	"engineershub/internal/infra/api"
	"engineershub/internal/infra/api/apitest"
	"engineershub/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const responseRoute = "POST /api/interview/:id/response"

type noopWaiter struct{}

func (noopWaiter) Wait() {}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSignedInClient(t *testing.T) (*api.Client, *apitest.Server, *entity.RequestContext) {
	t.Helper()

	srv := apitest.New(t)
	rc := entity.NewRequestContext()
	client, err := api.NewClient(srv.APIConfig(), srv.Client(), rc, newDiscardLogger())
	require.NoError(t, err)

	resp, err := client.Login(context.Background(), apitest.DefaultEmail, apitest.DefaultPassword)
	require.NoError(t, err)
	rc.Attach(resp.Token)

	return client, srv, rc
}

func TestDrainSideEffects_AnswerSubmittedBeforeQuitReachesBackend(t *testing.T) {
	client, srv, rc := newSignedInClient(t)
	ctx := context.Background()
	interview := impl.NewInterviewFlow(client, rc, newDiscardLogger())
	release := srv.Block(responseRoute)

	require.NoError(t, interview.Start(ctx, entity.InterviewTypeHR))
	sessionID := interview.Snapshot().SessionID
	require.NoError(t, interview.SetAnswer("I build CLIs in Go."))
	require.NoError(t, interview.Submit(ctx))

	// quit right away, then log out while the answer is still in flight
	rc.Detach()
	assert.Empty(t, srv.Responses(sessionID))

	go func() {
		time.Sleep(20 * time.Millisecond)
		release()
	}()

	drainCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.True(t, drainSideEffects(drainCtx, newDiscardLogger(), interview, noopWaiter{}))

	responses := srv.Responses(sessionID)
	require.Len(t, responses, 1)
	assert.Equal(t, "I build CLIs in Go.", responses[0].Answer)
}

func TestDrainSideEffects_GivesUpAtDeadline(t *testing.T) {
	client, srv, rc := newSignedInClient(t)
	ctx := context.Background()
	interview := impl.NewInterviewFlow(client, rc, newDiscardLogger())
	release := srv.Block(responseRoute)

	require.NoError(t, interview.Start(ctx, entity.InterviewTypeHR))
	require.NoError(t, interview.SetAnswer("pending"))
	require.NoError(t, interview.Submit(ctx))

	drainCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	assert.False(t, drainSideEffects(drainCtx, newDiscardLogger(), interview))

	release()
	interview.Wait()
}
