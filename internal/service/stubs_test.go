package service_test

import (
	"context"
	"time"
)

// stubLimiter records the last Check call and returns a fixed error.
type stubLimiter struct {
	err    error
	calls  int
	bucket string
	client string
	limit  int
	window time.Duration
}

func (s *stubLimiter) Check(_ context.Context, bucket, clientID string, limit int, window time.Duration) error {
	s.calls++
	s.bucket = bucket
	s.client = clientID
	s.limit = limit
	s.window = window
	return s.err
}

// stubVerifier records the last Verify call and returns a fixed error.
type stubVerifier struct {
	err    error
	calls  int
	token  string
	action string
}

func (s *stubVerifier) Verify(_ context.Context, token, _, expectedAction string) error {
	s.calls++
	s.token = token
	s.action = expectedAction
	return s.err
}
