package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// Claims represents the JWT claims carried by the bearer token. The
// identity-verification fields travel with the token so the client can
// gate the booking form without an extra profile fetch.
type Claims struct {
	UserID         uint   `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	AadharNumber   string `json:"aadharNumber,omitempty"`
	AadharPhotoURL string `json:"aadharPhotoUrl,omitempty"`
	ImageURL       string `json:"imageUrl,omitempty"`
	jwt.RegisteredClaims
}

// TokenInput carries the identity embedded into a new token
type TokenInput struct {
	UserID         uint
	Name           string
	Email          string
	Role           string
	AadharNumber   string
	AadharPhotoURL string
	ImageURL       string
}

// GenerateToken generates a signed bearer token valid for validityDays
func GenerateToken(in TokenInput, secret string, validityDays int) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:         in.UserID,
		Name:           in.Name,
		Email:          in.Email,
		Role:           in.Role,
		AadharNumber:   in.AadharNumber,
		AadharPhotoURL: in.AadharPhotoURL,
		ImageURL:       in.ImageURL,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(validityDays) * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "stayhub",
			Subject:   in.Email,
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken validates a bearer token and returns its claims
func ValidateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrTokenInvalid
}
