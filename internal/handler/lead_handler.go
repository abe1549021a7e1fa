package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"yatra/backend/internal/service"
)

type LeadHandler struct {
	service service.LeadService
}

type leadRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Destination string `json:"destination"`
	TravelDate  string `json:"travelDate"`
	GroupSize   int    `json:"groupSize"`
	Message     string `json:"message"`
	Source      string `json:"source"`
	Token       string `json:"token"`
}

type leadResponse struct {
	OK        bool   `json:"ok"`
	Reference string `json:"reference"`
}

func NewLeadHandler(service service.LeadService) *LeadHandler {
	return &LeadHandler{service: service}
}

func (h *LeadHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/leads", h.Submit)
}

// Submit handles trip inquiry submissions
// @Summary Submit a trip inquiry
// @Description Record a booking inquiry and hand back a reference code
// @Tags leads
// @Accept json
// @Produce json
// @Success 201 {object} leadResponse
// @Failure 400 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Failure 429 {object} errorResponse
// @Router /leads [post]
func (h *LeadHandler) Submit(c echo.Context) error {
	var req leadRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request")
	}

	result, err := h.service.Submit(c.Request().Context(), service.LeadRequest{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Destination: req.Destination,
		TravelDate:  req.TravelDate,
		GroupSize:   req.GroupSize,
		Message:     req.Message,
		Source:      req.Source,
		Token:       req.Token,
	}, c.RealIP())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, leadResponse{OK: true, Reference: result.Reference})
}
