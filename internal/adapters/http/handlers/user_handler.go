package handlers

import (
	"errors"

	"stayhub/internal/adapters/http/middleware"
	"stayhub/internal/core/domain"
	"stayhub/internal/core/services"
	"stayhub/internal/pkg/pagination"
	"stayhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles profile and admin user management endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// SetRoleRequest represents the role change body
type SetRoleRequest struct {
	Role string `json:"role"`
}

// CompleteProfile handles identity verification.
// Multipart form: aadharNumber plus a "profile" photo and an "aadhar"
// document image.
// @Summary Complete profile
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param aadharNumber formData string true "National ID number"
// @Param profile formData file true "Profile photo"
// @Param aadhar formData file true "Photographed ID document"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /profile/complete [post]
func (h *UserHandler) CompleteProfile(c *fiber.Ctx) error {
	aadharNumber := c.FormValue("aadharNumber")
	if aadharNumber == "" {
		return response.BadRequest(c, "Aadhar number is required")
	}

	profilePhoto, err := c.FormFile("profile")
	if err != nil {
		return response.BadRequest(c, "Profile photo is required")
	}
	aadharPhoto, err := c.FormFile("aadhar")
	if err != nil {
		return response.BadRequest(c, "Aadhar photo is required")
	}

	out, err := h.userService.CompleteProfile(c.Context(), middleware.CurrentUserID(c), &services.CompleteProfileInput{
		AadharNumber: aadharNumber,
		ProfilePhoto: profilePhoto,
		AadharPhoto:  aadharPhoto,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to update user")
	}

	return response.Success(c, "Profile completed", out)
}

// ListUsers lists all users (admin)
// @Summary List users
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} pagination.Response
// @Router /users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	out, err := h.userService.ListUsers(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch users")
	}

	return c.JSON(pagination.NewResponse(out.Users, params, out.Total))
}

// GetUser returns one user (admin)
// @Summary Get user by id
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid user ID")
	}

	user, err := h.userService.GetUserByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to fetch user")
	}

	return response.Success(c, "", user)
}

// SetRole changes a user's role (admin)
// @Summary Set user role
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param body body SetRoleRequest true "Target role"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id}/role [put]
func (h *UserHandler) SetRole(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid user ID")
	}

	var req SetRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, err := h.userService.SetRole(c.Context(), uint(id), middleware.CurrentUserID(c), req.Role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRole):
			return response.BadRequest(c, "Invalid role")
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "Cannot change your own role")
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		default:
			return response.InternalServerError(c, "Failed to update role")
		}
	}

	return response.Success(c, "Role updated", user)
}

// DeleteUser deactivates a user account (admin)
// @Summary Delete user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 204 "No Content"
// @Failure 404 {object} response.Response
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid user ID")
	}

	if err := h.userService.Deactivate(c.Context(), uint(id), middleware.CurrentUserID(c)); err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "Cannot delete your own account")
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		default:
			return response.InternalServerError(c, "Failed to delete user")
		}
	}

	return response.NoContent(c)
}
