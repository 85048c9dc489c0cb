package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInternalServer     = errors.New("internal server error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// User errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("account already exists with this email address")
	ErrUserInactive = errors.New("user account is inactive")
	ErrInvalidRole  = errors.New("invalid role")
)

// Hotel errors
var (
	ErrHotelNotFound = errors.New("hotel not found")
)

// Booking errors
var (
	ErrBookingNotFound       = errors.New("booking not found")
	ErrNoMembers             = errors.New("booking requires at least one member")
	ErrMemberFieldsMissing   = errors.New("each member must have a name and an aadhar number")
	ErrMemberDocMismatch     = errors.New("number of documents does not match number of members")
	ErrInvalidStatus         = errors.New("invalid booking status")
	ErrBookingAlreadyDecided = errors.New("booking has already been decided")
)
