package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/hostelhub/hostelhub/database"
	"github.com/hostelhub/hostelhub/models"
	"github.com/stretchr/testify/assert"
)

func TestListUsersCountsReservations(t *testing.T) {
	setupTestDB(t)
	hostel := seedHostel(t, "Sunrise Hostel", "Accra, Ghana", "available", 150)

	user := models.User{Name: "Kofi", Email: "kofi@example.com", Password: "x", Role: "user"}
	assert.NoError(t, database.DB.Create(&user).Error)
	admin := models.User{Name: "Admin", Email: "admin@example.com", Password: "x", Role: "admin"}
	assert.NoError(t, database.DB.Create(&admin).Error)

	linked := seedReservation(t, hostel, "Kofi", "other@example.com", "pending")
	assert.NoError(t, database.DB.Model(&linked).Update("user_id", user.ID).Error)
	seedReservation(t, hostel, "Kofi", "kofi@example.com", "confirmed")

	rows, err := ListUsers()
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Kofi", rows[0].Name)
	assert.Equal(t, int64(2), rows[0].ReservationCount)
}

func TestDeleteUserDetachesReservations(t *testing.T) {
	setupTestDB(t)
	hostel := seedHostel(t, "Sunrise Hostel", "Accra, Ghana", "available", 150)

	user := models.User{Name: "Kofi", Email: "kofi@example.com", Password: "x", Role: "user"}
	assert.NoError(t, database.DB.Create(&user).Error)

	reservation := seedReservation(t, hostel, "Kofi", "kofi@example.com", "pending")
	assert.NoError(t, database.DB.Model(&reservation).Update("user_id", user.ID).Error)

	assert.NoError(t, DeleteUser(user.ID))

	var detached models.Reservation
	assert.NoError(t, database.DB.First(&detached, "id = ?", reservation.ID).Error)
	assert.Nil(t, detached.UserID)
	assert.Equal(t, "kofi@example.com", detached.GuestEmail)

	assert.ErrorIs(t, DeleteUser(uuid.New()), ErrUserNotFound)
}

func TestDeleteUserProtectsAdmin(t *testing.T) {
	setupTestDB(t)

	admin := models.User{Name: "Admin", Email: "admin@example.com", Password: "x", Role: "admin"}
	assert.NoError(t, database.DB.Create(&admin).Error)

	assert.ErrorIs(t, DeleteUser(admin.ID), ErrAdminProtected)

	var count int64
	database.DB.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
