package service

import "time"

// Export for testing

func SetLimiterClock(limiter RateLimiter, now func() time.Time) {
	limiter.(*rateLimiter).now = now
}

func DisableLimiterPruning(limiter RateLimiter) {
	l := limiter.(*rateLimiter)
	l.mu.Lock()
	l.lastPrune = l.now()
	l.mu.Unlock()
}

func SetVerifierClock(verifier ChallengeVerifier, now func() time.Time) {
	verifier.(*turnstileVerifier).now = now
}

type SiteverifyResponse = siteverifyResponse

var (
	ErrMissingTokenForTest  = errMissingToken
	ErrMisconfiguredForTest = errMisconfigured
	ErrUnavailableForTest   = errUnavailable
	ErrVerifyFailedForTest  = errVerifyFailed
	ErrReplayForTest        = errReplay
)

func PlacesCategoriesForTest(tags []string) string {
	return categoriesForTags(tags)
}
