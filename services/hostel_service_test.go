package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/hostelhub/hostelhub/database"
	"github.com/hostelhub/hostelhub/models"
	"github.com/stretchr/testify/assert"
)

func TestToggleHostelStatus(t *testing.T) {
	setupTestDB(t)
	hostel := seedHostel(t, "Sunrise Hostel", "Accra, Ghana", "available", 150)

	status, err := ToggleHostelStatus(hostel.ID)
	assert.NoError(t, err)
	assert.Equal(t, "booked", status)

	status, err = ToggleHostelStatus(hostel.ID)
	assert.NoError(t, err)
	assert.Equal(t, "available", status)

	_, err = ToggleHostelStatus(uuid.New())
	assert.ErrorIs(t, err, ErrHostelNotFound)
}

func TestListHostelsFilters(t *testing.T) {
	setupTestDB(t)
	seedHostel(t, "Sunrise Hostel", "Accra, Ghana", "available", 150)
	seedHostel(t, "Ocean View Hostel", "Cape Coast, Ghana", "available", 200)
	seedHostel(t, "Green Valley Hostel", "Kumasi, Ghana", "booked", 120)

	all, err := ListHostels(HostelFilter{})
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	// "all" is the listing page's explicit no-filter value.
	allExplicit, err := ListHostels(HostelFilter{Status: "all"})
	assert.NoError(t, err)
	assert.Len(t, allExplicit, 3)

	available, err := ListHostels(HostelFilter{Status: "available"})
	assert.NoError(t, err)
	assert.Len(t, available, 2)

	bySearch, err := ListHostels(HostelFilter{Search: "OCEAN"})
	assert.NoError(t, err)
	assert.Len(t, bySearch, 1)
	assert.Equal(t, "Ocean View Hostel", bySearch[0].Name)

	byLocation, err := ListHostels(HostelFilter{Location: "kumasi"})
	assert.NoError(t, err)
	assert.Len(t, byLocation, 1)

	minPrice, maxPrice := 130.0, 180.0
	byPrice, err := ListHostels(HostelFilter{MinPrice: &minPrice, MaxPrice: &maxPrice})
	assert.NoError(t, err)
	assert.Len(t, byPrice, 1)
	assert.Equal(t, "Sunrise Hostel", byPrice[0].Name)
}

func TestGetSiteStats(t *testing.T) {
	setupTestDB(t)
	sunrise := seedHostel(t, "Sunrise Hostel", "Accra, Ghana", "available", 150)
	seedHostel(t, "Green Valley Hostel", "Kumasi, Ghana", "booked", 120)

	seedReservation(t, sunrise, "Alice Boateng", "alice@example.com", "confirmed")
	seedReservation(t, sunrise, "Bob Owusu", "bob@example.com", "pending")

	stats, err := GetSiteStats()
	assert.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalHostels)
	assert.Equal(t, int64(4), stats.AvailableRooms)
	assert.Equal(t, int64(1), stats.HappyGuests)
}

func TestUpdateHostelMedia(t *testing.T) {
	setupTestDB(t)
	hostel, err := CreateHostel(HostelInput{
		Name:     "Sunrise Hostel",
		Location: "Accra, Ghana",
		Price:    150,
		Rooms:    4,
	}, []string{"/uploads/a.jpg", "/uploads/b.jpg"}, nil)
	assert.NoError(t, err)
	assert.Equal(t, "available", hostel.Status)

	updated, err := UpdateHostel(hostel.ID, HostelInput{
		Name:     "Sunrise Hostel",
		Location: "Accra, Ghana",
		Price:    160,
		Rooms:    4,
		Status:   "available",
	}, []string{"/uploads/c.jpg"}, []string{"/uploads/tour.mp4"}, []string{"/uploads/a.jpg"}, nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{"/uploads/b.jpg", "/uploads/c.jpg"}, updated.Images)
	assert.Equal(t, []string{"/uploads/tour.mp4"}, updated.Videos)
	assert.Equal(t, float64(160), updated.Price)
}

func TestDeleteHostelCascades(t *testing.T) {
	setupTestDB(t)
	sunrise := seedHostel(t, "Sunrise Hostel", "Accra, Ghana", "available", 150)
	ocean := seedHostel(t, "Ocean View Hostel", "Cape Coast, Ghana", "available", 200)

	seedReservation(t, sunrise, "Alice Boateng", "alice@example.com", "pending")
	seedReservation(t, sunrise, "Bob Owusu", "bob@example.com", "confirmed")
	kept := seedReservation(t, ocean, "Cynthia Addo", "cynthia@example.com", "pending")

	assert.NoError(t, DeleteHostel(sunrise.ID))

	var count int64
	database.DB.Model(&models.Reservation{}).Count(&count)
	assert.Equal(t, int64(1), count)

	var remaining models.Reservation
	assert.NoError(t, database.DB.First(&remaining, "id = ?", kept.ID).Error)
}
