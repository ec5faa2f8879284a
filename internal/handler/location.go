package handler

import (
	"neuro-site/internal/middleware"
	"neuro-site/internal/service"

	"github.com/gofiber/fiber/v2"
)

type LocationHandler struct {
	service service.LocationService
}

func NewLocationHandler(service service.LocationService) *LocationHandler {
	return &LocationHandler{service: service}
}

// GetLocations godoc
// @Summary List clinic locations
// @Tags locations
// @Produce json
// @Success 200 {object} dto.LocationListResponse
// @Router /locations [get]
func (h *LocationHandler) GetLocations(c *fiber.Ctx) error {
	return c.JSON(h.service.ListLocations())
}

// GetLocation godoc
// @Summary Clinic location
// @Tags locations
// @Produce json
// @Param id path string true "Location id"
// @Success 200 {object} dto.LocationResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /locations/{id} [get]
func (h *LocationHandler) GetLocation(c *fiber.Ctx) error {
	loc, err := h.service.GetLocation(middleware.ValidatedID(c))
	if err != nil {
		return err
	}
	return c.JSON(loc)
}
