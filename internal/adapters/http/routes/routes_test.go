package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"stayhub/internal/adapters/persistence/models"
	"stayhub/internal/config"
	"stayhub/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type apiFixture struct {
	app   *fiber.App
	db    *gorm.DB
	cfg   *config.Config
	hotel *models.Hotel
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:       "test-secret",
			ValidityDays: 30,
		},
		Upload: config.UploadConfig{
			Driver:   "local",
			LocalDir: t.TempDir(),
		},
		Booking: config.BookingConfig{
			AllowRedecide:    true,
			StalePendingDays: 7,
		},
	}

	hotel := &models.Hotel{Name: "Seaside Inn", Location: "Goa"}
	if err := db.Create(hotel).Error; err != nil {
		t.Fatalf("seed hotel: %v", err)
	}

	app := fiber.New()
	Setup(app, db, cfg)

	return &apiFixture{app: app, db: db, cfg: cfg, hotel: hotel}
}

// seedUser creates an account with the given role and returns it with a
// valid bearer token.
func (fx *apiFixture) seedUser(t *testing.T, email, role string) (*models.User, string) {
	t.Helper()

	user := &models.User{Name: "Test User", Email: email, Password: "x", Role: role, IsActive: true}
	if err := fx.db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	token, err := jwt.GenerateToken(jwt.TokenInput{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	}, fx.cfg.JWT.Secret, fx.cfg.JWT.ValidityDays)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	return user, token
}

func (fx *apiFixture) request(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	resp, err := fx.app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

// bookingForm builds the multipart create-booking payload: members as a
// JSON form value plus docCount files under membersImage.
func bookingForm(t *testing.T, userID, hotelID uint, members []map[string]string, docCount int) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	fields := map[string]string{
		"userId":    strconv.FormatUint(uint64(userID), 10),
		"hotelId":   strconv.FormatUint(uint64(hotelID), 10),
		"startDate": "2026-10-01",
		"endDate":   "2026-10-05",
	}
	if members != nil {
		payload, err := json.Marshal(members)
		if err != nil {
			t.Fatalf("marshal members: %v", err)
		}
		fields["members"] = string(payload)
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			t.Fatalf("write field %s: %v", name, err)
		}
	}

	for i := 0; i < docCount; i++ {
		part, err := w.CreateFormFile("membersImage", fmt.Sprintf("doc%d.jpg", i))
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		if _, err := part.Write([]byte("fake image bytes")); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &body, w.FormDataContentType()
}

func TestProtectedRoute_NoToken(t *testing.T) {
	fx := newAPIFixture(t)

	resp := fx.request(t, httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil))
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", resp.StatusCode)
	}
}

func TestProtectedRoute_InvalidToken(t *testing.T) {
	fx := newAPIFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")

	resp := fx.request(t, req)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for an invalid token, got %d", resp.StatusCode)
	}
}

// A missing token on a role-gated route must fail with 401, not 403:
// authentication runs strictly before any role check.
func TestRoleGatedRoute_NoToken(t *testing.T) {
	fx := newAPIFixture(t)

	resp := fx.request(t, httptest.NewRequest(http.MethodGet, "/api/v1/get-bookings-by-status/PENDING", nil))
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 before any role check, got %d", resp.StatusCode)
	}
}

func TestRoleGatedRoute_WrongRole(t *testing.T) {
	fx := newAPIFixture(t)
	_, userToken := fx.seedUser(t, "guest@example.com", models.RoleUser)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/get-bookings-by-status/PENDING", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)

	resp := fx.request(t, req)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for a USER token on a manager route, got %d", resp.StatusCode)
	}
}

func TestRoleGatedRoute_ManagerAllowed(t *testing.T) {
	fx := newAPIFixture(t)
	_, managerToken := fx.seedUser(t, "manager@example.com", models.RoleHotelManager)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/get-bookings-by-status/PENDING", nil)
	req.Header.Set("Authorization", "Bearer "+managerToken)

	resp := fx.request(t, req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for a HOTEL_MANAGER token, got %d", resp.StatusCode)
	}
}

func TestCreateBookingEndpoint(t *testing.T) {
	fx := newAPIFixture(t)
	user, token := fx.seedUser(t, "guest@example.com", models.RoleUser)

	body, contentType := bookingForm(t, user.ID, fx.hotel.ID, []map[string]string{
		{"name": "Asha", "aadharNumber": "111122223333"},
		{"name": "Ravi", "aadharNumber": "444455556666"},
	}, 2)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/booking", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	resp := fx.request(t, req)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var booking models.Booking
	if err := fx.db.Preload("Members").First(&booking).Error; err != nil {
		t.Fatalf("expected a persisted booking: %v", err)
	}
	if booking.Status != models.StatusPending {
		t.Fatalf("expected status PENDING, got %q", booking.Status)
	}
	if booking.UserID != user.ID {
		t.Fatalf("expected booking owned by the requester")
	}
	if len(booking.Members) != 2 {
		t.Fatalf("expected 2 member rows, got %d", len(booking.Members))
	}
	for _, m := range booking.Members {
		if m.AadharPhotoURL == "" {
			t.Fatalf("expected a stored document URL on member %q", m.Name)
		}
	}
}

func TestCreateBookingEndpoint_DocumentCountMismatch(t *testing.T) {
	fx := newAPIFixture(t)
	user, token := fx.seedUser(t, "guest@example.com", models.RoleUser)

	body, contentType := bookingForm(t, user.ID, fx.hotel.ID, []map[string]string{
		{"name": "Asha", "aadharNumber": "111122223333"},
		{"name": "Ravi", "aadharNumber": "444455556666"},
	}, 1)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/booking", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	resp := fx.request(t, req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 on a count mismatch, got %d", resp.StatusCode)
	}

	var bookings int64
	if err := fx.db.Model(&models.Booking{}).Count(&bookings).Error; err != nil {
		t.Fatalf("count bookings: %v", err)
	}
	if bookings != 0 {
		t.Fatalf("expected no booking persisted, got %d", bookings)
	}
}

func TestCreateBookingEndpoint_MissingFields(t *testing.T) {
	fx := newAPIFixture(t)
	user, token := fx.seedUser(t, "guest@example.com", models.RoleUser)

	// members field omitted entirely
	body, contentType := bookingForm(t, user.ID, fx.hotel.ID, nil, 1)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/booking", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	resp := fx.request(t, req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", resp.StatusCode)
	}
}

func TestCreateBookingEndpoint_ManagerForbidden(t *testing.T) {
	fx := newAPIFixture(t)
	manager, token := fx.seedUser(t, "manager@example.com", models.RoleHotelManager)

	body, contentType := bookingForm(t, manager.ID, fx.hotel.ID, []map[string]string{
		{"name": "Asha", "aadharNumber": "111122223333"},
	}, 1)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/booking", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	resp := fx.request(t, req)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("booking creation is USER only, expected 403, got %d", resp.StatusCode)
	}
}

func TestHotelRead_Open(t *testing.T) {
	fx := newAPIFixture(t)

	resp := fx.request(t, httptest.NewRequest(http.MethodGet, "/api/v1/hotels", nil))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("hotel reads are public, expected 200, got %d", resp.StatusCode)
	}
}

func TestHotelWrite_RequiresManager(t *testing.T) {
	fx := newAPIFixture(t)
	_, userToken := fx.seedUser(t, "guest@example.com", models.RoleUser)

	payload := bytes.NewBufferString(`{"name":"New Hotel","location":"Pune"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hotels", payload)
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer "+userToken)

	resp := fx.request(t, req)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for a USER token on hotel create, got %d", resp.StatusCode)
	}
}
