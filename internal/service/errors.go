package service

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalid       = errors.New("invalid")
	ErrNotFound      = errors.New("not found")
	ErrNotConfigured = errors.New("not configured")
	ErrUpstream      = errors.New("upstream failed")
)

// RateLimitError reports a rejected attempt and how long the client should
// wait before retrying.
type RateLimitError struct {
	RetryAfter int // seconds, always >= 1
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %ds", e.RetryAfter)
}

// Verification failure kinds. Each carries the HTTP status the handler layer
// should answer with, so every endpoint maps failures identically.
const (
	VerifyKindMissingToken  = "missing-token"
	VerifyKindMisconfigured = "server-misconfigured"
	VerifyKindUnavailable   = "upstream-unavailable"
	VerifyKindFailed        = "verification-failed"
	VerifyKindHostname      = "hostname-mismatch"
	VerifyKindStale         = "stale-token"
	VerifyKindAction        = "action-mismatch"
	VerifyKindReplay        = "replay-detected"
	VerifyKindStorage       = "storage-failure"
)

// VerificationError is the single failure type of the challenge verifier.
// Message is safe to show a client; it never contains secret material.
type VerificationError struct {
	Kind    string
	Status  int
	Message string
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("verification %s: %s", e.Kind, e.Message)
}

func verifyErr(kind string, status int, message string) *VerificationError {
	return &VerificationError{Kind: kind, Status: status, Message: message}
}

var (
	errMissingToken  = verifyErr(VerifyKindMissingToken, http.StatusBadRequest, "missing token")
	errMisconfigured = verifyErr(VerifyKindMisconfigured, http.StatusInternalServerError, "verification not configured")
	errUnavailable   = verifyErr(VerifyKindUnavailable, http.StatusBadGateway, "verification service unavailable")
	errVerifyFailed  = verifyErr(VerifyKindFailed, http.StatusForbidden, "verification failed")
	errHostname      = verifyErr(VerifyKindHostname, http.StatusForbidden, "hostname mismatch")
	errStaleToken    = verifyErr(VerifyKindStale, http.StatusForbidden, "token too old")
	errActionMatch   = verifyErr(VerifyKindAction, http.StatusForbidden, "action mismatch")
	errReplay        = verifyErr(VerifyKindReplay, http.StatusForbidden, "token already used")
	errTokenStorage  = verifyErr(VerifyKindStorage, http.StatusInternalServerError, "storage failure")
)
