package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"yatra/backend/internal/service"
)

type GeoHandler struct {
	service service.GeoService
}

type geocodeRequest struct {
	Text string `json:"text"`
}

type geocodeResponse struct {
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Formatted string  `json:"formatted"`
}

type placesRequest struct {
	Lat          float64  `json:"lat"`
	Lon          float64  `json:"lon"`
	RadiusMeters int      `json:"radiusMeters"`
	Limit        int      `json:"limit"`
	InterestTags []string `json:"interestTags"`
}

type placeResponse struct {
	Name       string   `json:"name"`
	Lat        float64  `json:"lat"`
	Lon        float64  `json:"lon"`
	Formatted  string   `json:"formatted"`
	Categories []string `json:"categories"`
}

type placesResponse struct {
	Places []placeResponse `json:"places"`
}

func NewGeoHandler(service service.GeoService) *GeoHandler {
	return &GeoHandler{service: service}
}

func (h *GeoHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/geoapify/geocode", h.Geocode)
	g.POST("/geoapify/places", h.Places)
}

// Geocode handles destination lookups
// @Summary Geocode a destination
// @Description Resolve free-form text to coordinates via the server-side Geoapify proxy
// @Tags geo
// @Accept json
// @Produce json
// @Success 200 {object} geocodeResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 429 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /geoapify/geocode [post]
func (h *GeoHandler) Geocode(c echo.Context) error {
	var req geocodeRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request")
	}

	result, err := h.service.Geocode(c.Request().Context(), req.Text, c.RealIP())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, geocodeResponse{
		Lat:       result.Lat,
		Lon:       result.Lon,
		Formatted: result.Formatted,
	})
}

// Places handles points-of-interest lookups
// @Summary Find places near a destination
// @Description List points of interest around a coordinate, filtered by interest tags
// @Tags geo
// @Accept json
// @Produce json
// @Success 200 {object} placesResponse
// @Failure 400 {object} errorResponse
// @Failure 429 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /geoapify/places [post]
func (h *GeoHandler) Places(c echo.Context) error {
	var req placesRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request")
	}

	places, err := h.service.Places(c.Request().Context(), service.PlacesRequest{
		Lat:          req.Lat,
		Lon:          req.Lon,
		RadiusMeters: req.RadiusMeters,
		Limit:        req.Limit,
		InterestTags: req.InterestTags,
	}, c.RealIP())
	if err != nil {
		return writeServiceError(c, err)
	}

	response := placesResponse{Places: make([]placeResponse, 0, len(places))}
	for _, place := range places {
		response.Places = append(response.Places, placeResponse{
			Name:       place.Name,
			Lat:        place.Lat,
			Lon:        place.Lon,
			Formatted:  place.Formatted,
			Categories: place.Categories,
		})
	}
	return c.JSON(http.StatusOK, response)
}
