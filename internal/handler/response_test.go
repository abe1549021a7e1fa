package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"yatra/backend/internal/handler"
	"yatra/backend/internal/service"
)

func TestWriteServiceError_Mapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		expected string
	}{
		{name: "invalid", err: service.ErrInvalid, status: http.StatusBadRequest, expected: "invalid request"},
		{name: "not_found", err: service.ErrNotFound, status: http.StatusNotFound, expected: "resource not found"},
		{name: "not_configured", err: service.ErrNotConfigured, status: http.StatusInternalServerError, expected: "service not configured"},
		{name: "upstream", err: service.ErrUpstream, status: http.StatusBadGateway, expected: "upstream service failed"},
		{name: "default", err: errors.New("boom"), status: http.StatusInternalServerError, expected: "internal error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEcho()
			req := newJSONRequest(http.MethodGet, "/", nil)
			c, rec := newTestContext(e, req)

			err := handler.WriteServiceError(c, tc.err)
			require.NoError(t, err)

			var resp map[string]string
			assertJSONResponse(t, rec, tc.status, &resp)
			require.Equal(t, tc.expected, resp["error"])
		})
	}
}

func TestWriteServiceError_RateLimit(t *testing.T) {
	e := newTestEcho()
	req := newJSONRequest(http.MethodPost, "/", nil)
	c, rec := newTestContext(e, req)

	err := handler.WriteServiceError(c, &service.RateLimitError{RetryAfter: 95})
	require.NoError(t, err)

	var resp map[string]string
	assertJSONResponse(t, rec, http.StatusTooManyRequests, &resp)
	require.Equal(t, "too many requests", resp["error"])
	require.Equal(t, "95", rec.Header().Get("Retry-After"))
}

func TestWriteServiceError_Verification(t *testing.T) {
	e := newTestEcho()
	req := newJSONRequest(http.MethodPost, "/", nil)
	c, rec := newTestContext(e, req)

	verr := &service.VerificationError{
		Kind:    service.VerifyKindReplay,
		Status:  http.StatusForbidden,
		Message: "token already used",
	}
	err := handler.WriteServiceError(c, verr)
	require.NoError(t, err)

	var resp map[string]string
	assertJSONResponse(t, rec, http.StatusForbidden, &resp)
	require.Equal(t, "token already used", resp["error"])
}

func TestWriteServiceError_WrappedSentinel(t *testing.T) {
	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/", nil)
	c, rec := newTestContext(e, req)

	wrapped := errors.Join(errors.New("context"), service.ErrNotConfigured)
	err := handler.WriteServiceError(c, wrapped)
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRespondError(t *testing.T) {
	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/", nil)
	c, rec := newTestContext(e, req)

	err := handler.RespondError(c, http.StatusBadRequest, "bad request")
	require.NoError(t, err)

	var resp map[string]string
	assertJSONResponse(t, rec, http.StatusBadRequest, &resp)
	require.Equal(t, "bad request", resp["error"])
}
