package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hostelhub/hostelhub/database"
	"github.com/hostelhub/hostelhub/models"
	"github.com/hostelhub/hostelhub/services"
)

func Dashboard(c *fiber.Ctx) error {
	var totalHostels, totalReservations, pendingReservations, totalUsers, availableHostels, bookedHostels int64

	database.DB.Model(&models.Hostel{}).Count(&totalHostels)
	database.DB.Model(&models.Reservation{}).Count(&totalReservations)
	database.DB.Model(&models.Reservation{}).Where("status = ?", "pending").Count(&pendingReservations)
	database.DB.Model(&models.User{}).Where("role = ?", "user").Count(&totalUsers)
	database.DB.Model(&models.Hostel{}).Where("status = ?", "available").Count(&availableHostels)
	database.DB.Model(&models.Hostel{}).Where("status = ?", "booked").Count(&bookedHostels)

	recent, err := services.RecentReservations(5)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return viewModel(c, "Admin Dashboard", fiber.Map{
		"stats": fiber.Map{
			"total_hostels":        totalHostels,
			"total_reservations":   totalReservations,
			"pending_reservations": pendingReservations,
			"total_users":          totalUsers,
			"available_hostels":    availableHostels,
			"booked_hostels":       bookedHostels,
		},
		"recent_reservations": recent,
	})
}
