package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hostelhub/hostelhub/database"
	"github.com/hostelhub/hostelhub/models"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrAdminProtected = errors.New("admin accounts cannot be deleted")
)

type UserRow struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Role             string    `json:"role"`
	CreatedAt        time.Time `json:"created_at"`
	ReservationCount int64     `json:"reservation_count"`
}

// ListUsers returns non-admin accounts with how many bookings each one is
// tied to, by account link or by guest email.
func ListUsers() ([]UserRow, error) {
	var rows []UserRow
	err := database.DB.Table("users").
		Select("users.*, (SELECT COUNT(*) FROM reservations WHERE reservations.user_id = users.id OR reservations.guest_email = users.email) AS reservation_count").
		Where("users.role = ?", "user").
		Order("users.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// DeleteUser detaches the account from its reservations before removing
// it, preserving bookings through their guest contact fields. The admin
// role is protected from deletion.
func DeleteUser(id uuid.UUID) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if user.Role == "admin" {
			return ErrAdminProtected
		}

		if err := tx.Model(&models.Reservation{}).
			Where("user_id = ?", user.ID).
			Update("user_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&user).Error
	})
}
