package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"yatra/backend/internal/service"
	"yatra/backend/pkg/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}

// writeServiceError maps service-layer failures onto HTTP responses. This is
// the only place status codes for service errors are decided, so every
// endpoint answers identically.
func writeServiceError(c echo.Context, err error) error {
	var rateErr *service.RateLimitError
	if errors.As(err, &rateErr) {
		c.Response().Header().Set("Retry-After", strconv.Itoa(rateErr.RetryAfter))
		return respondError(c, http.StatusTooManyRequests, "too many requests")
	}

	var verifyErr *service.VerificationError
	if errors.As(err, &verifyErr) {
		return respondError(c, verifyErr.Status, verifyErr.Message)
	}

	switch {
	case errors.Is(err, service.ErrInvalid):
		return respondError(c, http.StatusBadRequest, "invalid request")
	case errors.Is(err, service.ErrNotFound):
		return respondError(c, http.StatusNotFound, "resource not found")
	case errors.Is(err, service.ErrNotConfigured):
		return respondError(c, http.StatusInternalServerError, "service not configured")
	case errors.Is(err, service.ErrUpstream):
		return respondError(c, http.StatusBadGateway, "upstream service failed")
	default:
		logger.Error("unhandled service error", "module", "handler", "error", err)
		return respondError(c, http.StatusInternalServerError, "internal error")
	}
}
