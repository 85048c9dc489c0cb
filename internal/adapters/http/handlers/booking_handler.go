package handlers

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"stayhub/internal/adapters/http/middleware"
	"stayhub/internal/core/domain"
	"stayhub/internal/core/services"
	"stayhub/internal/pkg/pagination"
	"stayhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// BookingHandler handles booking lifecycle endpoints
type BookingHandler struct {
	bookingService *services.BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// UpdateStatusRequest represents the manager decision body
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateBookingRequest represents the administrative update body
type UpdateBookingRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    string `json:"status"`
}

// parseDate accepts RFC3339 or plain yyyy-mm-dd values
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// Create handles booking creation.
// Multipart form: userId, hotelId, startDate, endDate, members (JSON
// array of {name, aadharNumber}) and one membersImage file per member,
// in member order.
// @Summary Create booking
// @Tags Bookings
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param userId formData int true "Requesting user ID"
// @Param hotelId formData int true "Hotel ID"
// @Param startDate formData string true "Start date"
// @Param endDate formData string true "End date"
// @Param members formData string true "JSON array of members"
// @Param membersImage formData file true "One identity document per member"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /booking [post]
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	userIDStr := c.FormValue("userId")
	hotelIDStr := c.FormValue("hotelId")
	startDateStr := c.FormValue("startDate")
	endDateStr := c.FormValue("endDate")
	membersStr := c.FormValue("members")

	if userIDStr == "" || hotelIDStr == "" || startDateStr == "" || endDateStr == "" || membersStr == "" {
		return response.BadRequest(c, "Missing required fields")
	}

	userID, err := strconv.ParseUint(userIDStr, 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}
	hotelID, err := strconv.ParseUint(hotelIDStr, 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid hotel ID")
	}

	startDate, err := parseDate(startDateStr)
	if err != nil {
		return response.BadRequest(c, "Invalid start date")
	}
	endDate, err := parseDate(endDateStr)
	if err != nil {
		return response.BadRequest(c, "Invalid end date")
	}

	var members []services.MemberInput
	if err := json.Unmarshal([]byte(membersStr), &members); err != nil {
		return response.BadRequest(c, "Invalid members payload")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return response.BadRequest(c, "Missing members images")
	}
	documents := form.File["membersImage"]

	input := &services.CreateBookingInput{
		UserID:    uint(userID),
		HotelID:   uint(hotelID),
		StartDate: startDate,
		EndDate:   endDate,
		Members:   members,
		Documents: documents,
	}

	booking, err := h.bookingService.Create(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoMembers):
			return response.BadRequest(c, "Booking requires at least one member")
		case errors.Is(err, domain.ErrMemberFieldsMissing):
			return response.BadRequest(c, "Each member must have a name and an aadhar number")
		case errors.Is(err, domain.ErrMemberDocMismatch):
			return response.BadRequest(c, "Number of images does not match number of members")
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		case errors.Is(err, domain.ErrHotelNotFound):
			return response.NotFound(c, "Hotel not found")
		default:
			return response.InternalServerError(c, "Failed to create booking")
		}
	}

	return response.Created(c, "Booking created successfully", booking)
}

// ListOwn lists the authenticated user's bookings
// @Summary List own bookings
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /bookings [get]
func (h *BookingHandler) ListOwn(c *fiber.Ctx) error {
	bookings, err := h.bookingService.ListByUser(c.Context(), middleware.CurrentUserID(c))
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch bookings")
	}

	return response.Success(c, "", bookings)
}

// ListByStatus lists bookings by status across all users
// @Summary List bookings by status
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Param status path string true "PENDING, APPROVED or REJECTED"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} pagination.Response
// @Failure 400 {object} response.Response
// @Router /get-bookings-by-status/{status} [get]
func (h *BookingHandler) ListByStatus(c *fiber.Ctx) error {
	status := c.Params("status")
	if status == "" {
		return response.BadRequest(c, "Missing booking status")
	}

	params := pagination.GetParams(c)

	out, err := h.bookingService.ListByStatus(c.Context(), status, params.Offset, params.Limit)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStatus) {
			return response.BadRequest(c, "Invalid booking status")
		}
		return response.InternalServerError(c, "Failed to fetch bookings by status")
	}

	return c.JSON(pagination.NewResponse(out.Bookings, params, out.Total))
}

// GetByID returns one booking with its user, hotel and members
// @Summary Get booking by id
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid booking ID")
	}

	booking, err := h.bookingService.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return response.NotFound(c, "Booking not found")
		}
		return response.InternalServerError(c, "Failed to fetch booking")
	}

	return response.Success(c, "", booking)
}

// UpdateStatus applies a manager decision to a booking
// @Summary Update booking status
// @Tags Bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Param body body UpdateStatusRequest true "Target status (APPROVED or REJECTED)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /update-booking-status/{id} [post]
func (h *BookingHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid booking ID")
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Status == "" {
		return response.BadRequest(c, "Missing booking status")
	}

	booking, err := h.bookingService.UpdateStatus(c.Context(), uint(id), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			return response.BadRequest(c, "Invalid status")
		case errors.Is(err, domain.ErrBookingNotFound):
			return response.NotFound(c, "Booking not found")
		case errors.Is(err, domain.ErrBookingAlreadyDecided):
			return response.Conflict(c, "Booking has already been decided")
		default:
			return response.InternalServerError(c, "Failed to update booking status")
		}
	}

	return response.Success(c, "Booking status updated", booking)
}

// Update corrects a booking's date range and status (administrative)
// @Summary Update booking
// @Tags Bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Param body body UpdateBookingRequest true "Booking fields"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /bookings/{id} [put]
func (h *BookingHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid booking ID")
	}

	var req UpdateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.StartDate == "" || req.EndDate == "" || req.Status == "" {
		return response.BadRequest(c, "Missing required fields")
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return response.BadRequest(c, "Invalid start date")
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return response.BadRequest(c, "Invalid end date")
	}

	booking, err := h.bookingService.Update(c.Context(), uint(id), &services.UpdateBookingInput{
		StartDate: startDate,
		EndDate:   endDate,
		Status:    req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			return response.BadRequest(c, "Invalid status")
		case errors.Is(err, domain.ErrBookingNotFound):
			return response.NotFound(c, "Booking not found")
		default:
			return response.InternalServerError(c, "Failed to update booking")
		}
	}

	return response.Success(c, "Booking updated", booking)
}

// Delete removes a booking and its members
// @Summary Delete booking
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} response.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid booking ID")
	}

	if err := h.bookingService.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return response.NotFound(c, "Booking not found")
		}
		return response.InternalServerError(c, "Failed to delete booking")
	}

	return response.NoContent(c)
}
