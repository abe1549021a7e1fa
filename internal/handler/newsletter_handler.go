package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"yatra/backend/internal/service"
)

type NewsletterHandler struct {
	service service.NewsletterService
}

type subscribeRequest struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

type subscribeResponse struct {
	OK        bool `json:"ok"`
	Duplicate bool `json:"duplicate"`
}

func NewNewsletterHandler(service service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{service: service}
}

func (h *NewsletterHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/newsletter/subscribe", h.Subscribe)
}

// Subscribe handles newsletter signups
// @Summary Subscribe to the newsletter
// @Description Add an email address to the newsletter list after challenge verification
// @Tags newsletter
// @Accept json
// @Produce json
// @Success 200 {object} subscribeResponse
// @Failure 400 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Failure 429 {object} errorResponse
// @Router /newsletter/subscribe [post]
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request")
	}

	result, err := h.service.Subscribe(c.Request().Context(), req.Email, req.Token, c.RealIP())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, subscribeResponse{OK: true, Duplicate: result.Duplicate})
}
