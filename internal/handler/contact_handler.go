package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"yatra/backend/internal/service"
)

type ContactHandler struct {
	service service.ContactService
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

type contactResponse struct {
	OK bool  `json:"ok"`
	ID int64 `json:"id"`
}

func NewContactHandler(service service.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

func (h *ContactHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/contact", h.Send)
}

// Send handles contact form submissions
// @Summary Send a contact message
// @Description Store a contact form message after challenge verification
// @Tags contact
// @Accept json
// @Produce json
// @Success 201 {object} contactResponse
// @Failure 400 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Failure 429 {object} errorResponse
// @Router /contact [post]
func (h *ContactHandler) Send(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request")
	}

	message, err := h.service.Send(c.Request().Context(), req.Name, req.Email, req.Message, req.Token, c.RealIP())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, contactResponse{OK: true, ID: message.ID})
}
