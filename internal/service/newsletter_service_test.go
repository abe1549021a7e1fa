package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"yatra/backend/internal/repository"
	"yatra/backend/internal/repository/testutil"
	"yatra/backend/internal/service"
)

func newNewsletterService(t *testing.T, limiter *stubLimiter, verifier *stubVerifier) (service.NewsletterService, repository.SubscriberRepository) {
	t.Helper()

	db := testutil.NewTestDB(t)
	repo := repository.NewSubscriberRepository(db)
	return service.NewNewsletterService(repo, limiter, verifier, true), repo
}

func TestNewsletterService_Subscribe(t *testing.T) {
	limiter := &stubLimiter{}
	verifier := &stubVerifier{}
	svc, repo := newNewsletterService(t, limiter, verifier)
	ctx := context.Background()

	result, err := svc.Subscribe(ctx, "  Traveler@Example.COM ", "tok", "1.2.3.4")
	require.NoError(t, err)
	require.False(t, result.Duplicate)

	// Stored lowercased and trimmed.
	sub, err := repo.GetByEmail(ctx, "traveler@example.com")
	require.NoError(t, err)
	require.NotNil(t, sub)

	require.Equal(t, "newsletter", limiter.bucket)
	require.Equal(t, "1.2.3.4", limiter.client)
	require.Equal(t, 5, limiter.limit)
	require.Equal(t, 10*time.Minute, limiter.window)
	require.Equal(t, "newsletter", verifier.action)
	require.Equal(t, "tok", verifier.token)
}

func TestNewsletterService_DuplicateIsIdempotent(t *testing.T) {
	svc, _ := newNewsletterService(t, &stubLimiter{}, &stubVerifier{})
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, "traveler@example.com", "tok", "1.2.3.4")
	require.NoError(t, err)

	result, err := svc.Subscribe(ctx, "TRAVELER@example.com", "tok2", "1.2.3.4")
	require.NoError(t, err)
	require.True(t, result.Duplicate)
}

func TestNewsletterService_InvalidEmail(t *testing.T) {
	limiter := &stubLimiter{}
	svc, _ := newNewsletterService(t, limiter, &stubVerifier{})

	for _, email := range []string{"", "not-an-email", "a@b", "trailing@example.com extra"} {
		_, err := svc.Subscribe(context.Background(), email, "tok", "1.2.3.4")
		require.ErrorIs(t, err, service.ErrInvalid, "email %q", email)
	}
	require.Zero(t, limiter.calls, "validation happens before the limiter burns an event")
}

func TestNewsletterService_RateLimited(t *testing.T) {
	limiter := &stubLimiter{err: &service.RateLimitError{RetryAfter: 42}}
	verifier := &stubVerifier{}
	svc, repo := newNewsletterService(t, limiter, verifier)

	_, err := svc.Subscribe(context.Background(), "traveler@example.com", "tok", "1.2.3.4")
	var rle *service.RateLimitError
	require.ErrorAs(t, err, &rle)
	require.Equal(t, 42, rle.RetryAfter)

	require.Zero(t, verifier.calls, "no upstream verify call for a limited client")
	sub, err := repo.GetByEmail(context.Background(), "traveler@example.com")
	require.NoError(t, err)
	require.Nil(t, sub)
}

func TestNewsletterService_VerificationFailure(t *testing.T) {
	verifier := &stubVerifier{err: service.ErrVerifyFailedForTest}
	svc, repo := newNewsletterService(t, &stubLimiter{}, verifier)

	_, err := svc.Subscribe(context.Background(), "traveler@example.com", "bad-tok", "1.2.3.4")
	var verr *service.VerificationError
	require.ErrorAs(t, err, &verr)

	sub, err := repo.GetByEmail(context.Background(), "traveler@example.com")
	require.NoError(t, err)
	require.Nil(t, sub, "nothing persisted on a failed challenge")
}

func TestNewsletterService_VerificationSkippedWhenDisabled(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSubscriberRepository(db)
	verifier := &stubVerifier{err: service.ErrVerifyFailedForTest}
	svc := service.NewNewsletterService(repo, &stubLimiter{}, verifier, false)

	result, err := svc.Subscribe(context.Background(), "traveler@example.com", "", "1.2.3.4")
	require.NoError(t, err)
	require.False(t, result.Duplicate)
	require.Zero(t, verifier.calls)
}
