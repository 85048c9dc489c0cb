package handlers

import (
	"errors"

	"stayhub/internal/core/domain"
	"stayhub/internal/core/services"
	"stayhub/internal/pkg/pagination"
	"stayhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// HotelHandler handles hotel catalog endpoints
type HotelHandler struct {
	hotelService *services.HotelService
}

// NewHotelHandler creates a new hotel handler
func NewHotelHandler(hotelService *services.HotelService) *HotelHandler {
	return &HotelHandler{hotelService: hotelService}
}

// HotelRequest represents create/update hotel body
type HotelRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// List handles hotel listing
// @Summary List hotels
// @Tags Hotels
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} pagination.Response
// @Router /hotels [get]
func (h *HotelHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	out, err := h.hotelService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch hotels")
	}

	return c.JSON(pagination.NewResponse(out.Hotels, params, out.Total))
}

// GetByID handles hotel detail
// @Summary Get hotel by id
// @Tags Hotels
// @Produce json
// @Param id path int true "Hotel ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /hotels/{id} [get]
func (h *HotelHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid hotel ID")
	}

	hotel, err := h.hotelService.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrHotelNotFound) {
			return response.NotFound(c, "Hotel not found")
		}
		return response.InternalServerError(c, "Failed to fetch hotel")
	}

	return response.Success(c, "", hotel)
}

// Create handles hotel creation
// @Summary Create hotel
// @Tags Hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body HotelRequest true "Hotel data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /hotels [post]
func (h *HotelHandler) Create(c *fiber.Ctx) error {
	var req HotelRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Name == "" || req.Location == "" {
		return response.BadRequest(c, "Name and location are required")
	}

	hotel, err := h.hotelService.Create(c.Context(), &services.HotelInput{
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to create hotel")
	}

	return response.Created(c, "Hotel created successfully", hotel)
}

// Update handles hotel update
// @Summary Update hotel
// @Tags Hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hotel ID"
// @Param body body HotelRequest true "Hotel data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /hotels/{id} [put]
func (h *HotelHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid hotel ID")
	}

	var req HotelRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Name == "" || req.Location == "" {
		return response.BadRequest(c, "Name and location are required")
	}

	hotel, err := h.hotelService.Update(c.Context(), uint(id), &services.HotelInput{
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		if errors.Is(err, domain.ErrHotelNotFound) {
			return response.NotFound(c, "Hotel not found")
		}
		return response.InternalServerError(c, "Failed to update hotel")
	}

	return response.Success(c, "Hotel updated successfully", hotel)
}

// Delete handles hotel deletion
// @Summary Delete hotel
// @Tags Hotels
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hotel ID"
// @Success 204 "No Content"
// @Failure 404 {object} response.Response
// @Router /hotels/{id} [delete]
func (h *HotelHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid hotel ID")
	}

	if err := h.hotelService.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrHotelNotFound) {
			return response.NotFound(c, "Hotel not found")
		}
		return response.InternalServerError(c, "Failed to delete hotel")
	}

	return response.NoContent(c)
}
