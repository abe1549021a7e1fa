package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"yatra/backend/internal/handler"
	"yatra/backend/internal/model"
	"yatra/backend/internal/service"
	"yatra/backend/internal/service/mock"
)

func TestContactHandler_Send_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockContactService(ctrl)
	h := handler.NewContactHandlerHelper(mockService)

	e := newTestEcho()
	req := newJSONRequest(http.MethodPost, "/contact", map[string]interface{}{
		"name":    "Asha",
		"email":   "asha@example.com",
		"message": "Looking for a spring itinerary.",
		"token":   "tok",
	})
	c, rec := newTestContext(e, req)

	mockService.EXPECT().
		Send(gomock.Any(), "Asha", "asha@example.com", "Looking for a spring itinerary.", "tok", gomock.Any()).
		Return(&model.ContactMessage{ID: 7, Name: "Asha", Email: "asha@example.com"}, nil)

	err := h.Send(c)
	require.NoError(t, err)

	var resp handler.ContactResponse
	assertJSONResponse(t, rec, http.StatusCreated, &resp)
	require.True(t, resp.OK)
	require.Equal(t, int64(7), resp.ID)
}

func TestContactHandler_Send_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockContactService(ctrl)
	h := handler.NewContactHandlerHelper(mockService)

	e := newTestEcho()
	req := newJSONRequestRaw(http.MethodPost, "/contact", "{")
	c, rec := newTestContext(e, req)

	err := h.Send(c)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactHandler_Send_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockContactService(ctrl)
	h := handler.NewContactHandlerHelper(mockService)

	e := newTestEcho()
	req := newJSONRequest(http.MethodPost, "/contact", map[string]interface{}{
		"name":    "",
		"email":   "asha@example.com",
		"message": "hi",
		"token":   "tok",
	})
	c, rec := newTestContext(e, req)

	mockService.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, service.ErrInvalid)

	err := h.Send(c)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactHandler_Send_RateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockContactService(ctrl)
	h := handler.NewContactHandlerHelper(mockService)

	e := newTestEcho()
	req := newJSONRequest(http.MethodPost, "/contact", map[string]interface{}{
		"name":    "Asha",
		"email":   "asha@example.com",
		"message": "hi",
		"token":   "tok",
	})
	c, rec := newTestContext(e, req)

	mockService.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &service.RateLimitError{RetryAfter: 42})

	err := h.Send(c)
	require.NoError(t, err)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "42", rec.Header().Get("Retry-After"))
}
