package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/hostelhub/hostelhub/database"
	"github.com/hostelhub/hostelhub/middleware"
	"github.com/hostelhub/hostelhub/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) *fiber.App {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Hostel{},
		&models.Reservation{},
		&models.PaymentInfo{},
		&models.Setting{},
	))
	database.DB = db

	middleware.InitSessionStore()

	app := fiber.New()
	app.Post("/reserve/:id", SubmitReservation)
	app.Get("/admin", middleware.AdminRequired(), Dashboard)
	return app
}

func seedTestHostel(t *testing.T, status string) models.Hostel {
	hostel := models.Hostel{
		Name:     "Sunrise Hostel",
		Location: "Accra, Ghana",
		Price:    150,
		Rooms:    4,
		Status:   status,
	}
	assert.NoError(t, database.DB.Create(&hostel).Error)
	return hostel
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	return resp
}

func reservationForm() url.Values {
	return url.Values{
		"guest_name":  {"Ama Mensah"},
		"guest_email": {"ama@example.com"},
		"guest_phone": {"0551234567"},
		"check_in":    {"2026-09-10"},
		"check_out":   {"2026-09-14"},
		"guests":      {"2"},
	}
}

func TestSubmitReservationRedirectsToConfirmation(t *testing.T) {
	app := setupTestApp(t)
	hostel := seedTestHostel(t, "available")

	resp := postForm(t, app, "/reserve/"+hostel.ID.String(), reservationForm())
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Location"), "/confirmation/"))

	var count int64
	database.DB.Model(&models.Reservation{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSubmitReservationUnavailableRedirectsBack(t *testing.T) {
	app := setupTestApp(t)
	hostel := seedTestHostel(t, "booked")

	resp := postForm(t, app, "/reserve/"+hostel.ID.String(), reservationForm())
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/hostel/"+hostel.ID.String(), resp.Header.Get("Location"))

	var count int64
	database.DB.Model(&models.Reservation{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestSubmitReservationBadDatesRedirectToForm(t *testing.T) {
	app := setupTestApp(t)
	hostel := seedTestHostel(t, "available")

	form := reservationForm()
	form.Set("check_out", "2026-09-10")

	resp := postForm(t, app, "/reserve/"+hostel.ID.String(), form)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/reserve/"+hostel.ID.String(), resp.Header.Get("Location"))
}

func TestSubmitReservationMalformedDateRedirectsToForm(t *testing.T) {
	app := setupTestApp(t)
	hostel := seedTestHostel(t, "available")

	form := reservationForm()
	form.Set("check_out", "2026-13-40")

	resp := postForm(t, app, "/reserve/"+hostel.ID.String(), form)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/reserve/"+hostel.ID.String(), resp.Header.Get("Location"))

	var count int64
	database.DB.Model(&models.Reservation{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestAdminRequiresLogin(t *testing.T) {
	app := setupTestApp(t)

	req, err := http.NewRequest(http.MethodGet, "/admin", nil)
	assert.NoError(t, err)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}
