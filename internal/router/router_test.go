package router

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-dealership/internal/config"
	"github.com/iliyamo/car-dealership/internal/database"
	"github.com/iliyamo/car-dealership/internal/handler"
	"github.com/iliyamo/car-dealership/internal/middleware"
	"github.com/iliyamo/car-dealership/internal/model"
	"github.com/iliyamo/car-dealership/internal/repository"
)

const testAdminToken = "test-admin-token"

// recordingNotifier stands in for the SMTP/AMQP sinks.  It records every
// delivery and fails on demand so tests can assert that notification
// failure never fails the request.
type recordingNotifier struct {
	delivered []model.Inquiry
	err       error
}

func (n *recordingNotifier) Notify(_ context.Context, inq model.Inquiry) error {
	n.delivered = append(n.delivered, inq)
	return n.err
}

func setupTestServer(t *testing.T, notify *recordingNotifier) (*httptest.Server, *repository.InquiryRepo) {
	t.Helper()

	db := database.NewTestDB(t)
	if _, err := database.SeedIfEmpty(context.Background(), db, database.SQLite); err != nil {
		t.Fatalf("seeding: %v", err)
	}

	inquiries := repository.NewInquiryRepo(db, database.SQLite, true)
	cars := &handler.CarHandler{Cars: repository.NewCarRepo(db, database.SQLite)}
	inqHandler := &handler.InquiryHandler{Inquiries: inquiries, Notifier: notify}
	admin := &handler.AdminHandler{DB: db, Dialect: database.SQLite}

	e := echo.New()
	rateLimit := middleware.NewTokenBucket(config.RateLimitConfig{Enabled: false}, nil)
	RegisterRoutes(e, cars, inqHandler, admin, rateLimit, testAdminToken)

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)
	return server, inquiries
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decoding %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func postJSON(t *testing.T, url string, body any, out any) int {
	t.Helper()
	data, _ := json.Marshal(body)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decoding %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestListCars(t *testing.T) {
	server, _ := setupTestServer(t, &recordingNotifier{})

	var cars []model.Car
	if code := getJSON(t, server.URL+"/api/cars", &cars); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if len(cars) != 26 {
		t.Fatalf("expected 26 cars, got %d", len(cars))
	}
}

func TestListCarsFilteredByFeaturedAndMake(t *testing.T) {
	server, _ := setupTestServer(t, &recordingNotifier{})

	var cars []model.Car
	code := getJSON(t, server.URL+"/api/cars?featured=true&make=Ferrari", &cars)
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	// SF90 Stradale is featured=false and must be excluded.
	if len(cars) != 1 || cars[0].Model != "F8 Tributo" {
		t.Fatalf("expected only the F8 Tributo, got %+v", cars)
	}
}

func TestGetCarNotFound(t *testing.T) {
	server, _ := setupTestServer(t, &recordingNotifier{})

	var body map[string]string
	if code := getJSON(t, server.URL+"/api/cars/999", &body); code != http.StatusNotFound {
		t.Fatalf("status = %d", code)
	}
	if body["error"] != "Car not found" {
		t.Errorf("body = %v", body)
	}
}

func TestGetCarInvalidID(t *testing.T) {
	server, _ := setupTestServer(t, &recordingNotifier{})

	if code := getJSON(t, server.URL+"/api/cars/abc", nil); code != http.StatusBadRequest {
		t.Fatalf("status = %d", code)
	}
}

func TestGetCarDetail(t *testing.T) {
	server, _ := setupTestServer(t, &recordingNotifier{})

	var car model.Car
	if code := getJSON(t, server.URL+"/api/cars/1", &car); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if car.Make != "Mercedes-Benz" || car.Model != "S-Class" || !car.Featured {
		t.Errorf("unexpected car: %+v", car)
	}
}

func TestSubmitInquiryValidationFailureWritesNothing(t *testing.T) {
	notify := &recordingNotifier{}
	server, inquiries := setupTestServer(t, notify)

	var body map[string]any
	code := postJSON(t, server.URL+"/api/inquiry",
		map[string]any{"name": "", "email": "a@b.com"}, &body)
	if code != http.StatusBadRequest {
		t.Fatalf("status = %d", code)
	}
	if body["error"] != "Name and email are required" {
		t.Errorf("body = %v", body)
	}

	if n, _ := inquiries.Count(context.Background()); n != 0 {
		t.Errorf("expected no stored inquiries, got %d", n)
	}
	if len(notify.delivered) != 0 {
		t.Error("notifier must not run for rejected inquiries")
	}
}

func TestSubmitInquiryStoresAndNotifies(t *testing.T) {
	notify := &recordingNotifier{}
	server, inquiries := setupTestServer(t, notify)

	var body map[string]any
	code := postJSON(t, server.URL+"/api/inquiry", map[string]any{
		"car_id":  7,
		"name":    "Alice",
		"email":   "alice@example.com",
		"message": "Is the F8 still available?",
	}, &body)
	if code != http.StatusCreated {
		t.Fatalf("status = %d", code)
	}
	if body["success"] != true || body["message"] != "Inquiry received" {
		t.Errorf("body = %v", body)
	}

	if n, _ := inquiries.Count(context.Background()); n != 1 {
		t.Fatalf("expected 1 stored inquiry, got %d", n)
	}
	if len(notify.delivered) != 1 || notify.delivered[0].Email != "alice@example.com" {
		t.Errorf("unexpected notifications: %+v", notify.delivered)
	}
}

func TestSubmitInquirySucceedsWhenNotificationFails(t *testing.T) {
	notify := &recordingNotifier{err: errors.New("relay down")}
	server, inquiries := setupTestServer(t, notify)

	code := postJSON(t, server.URL+"/api/inquiry", map[string]any{
		"name":  "Bob",
		"email": "bob@example.com",
	}, nil)
	if code != http.StatusCreated {
		t.Fatalf("status = %d, notification failure must not fail the request", code)
	}
	if n, _ := inquiries.Count(context.Background()); n != 1 {
		t.Errorf("inquiry must be stored regardless of notifier outcome, got %d rows", n)
	}
}

func TestSeedEndpointRequiresToken(t *testing.T) {
	server, _ := setupTestServer(t, &recordingNotifier{})

	if code := getJSON(t, server.URL+"/api/seed", nil); code != http.StatusUnauthorized {
		t.Fatalf("status without token = %d", code)
	}

	req, _ := http.NewRequest(http.MethodGet, server.URL+"/api/seed", nil)
	req.Header.Set("Authorization", "Bearer "+testAdminToken)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET /api/seed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status with token = %d", resp.StatusCode)
	}

	var body map[string]any
	data, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	// The catalog is already seeded, so the reseed must be a no-op.
	if body["success"] != true || body["seeded"] != false {
		t.Errorf("body = %v", body)
	}
}

func TestHealthz(t *testing.T) {
	server, _ := setupTestServer(t, &recordingNotifier{})

	resp, err := http.Get(server.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}
