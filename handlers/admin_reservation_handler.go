package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hostelhub/hostelhub/services"
)

func AdminListReservations(c *fiber.Ctx) error {
	filter := services.ReservationFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	}

	reservations, err := services.ListReservations(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return viewModel(c, "Manage Reservations", fiber.Map{
		"reservations": reservations,
		"filters":      c.Queries(),
	})
}

func UpdateReservationStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return redirectWithError(c, "/admin/reservations", "Reservation not found")
	}

	status := c.FormValue("status")
	if status == "" {
		return redirectWithError(c, "/admin/reservations", "No status provided")
	}

	if err := services.UpdateReservationStatus(id, status); err != nil {
		if errors.Is(err, services.ErrReservationNotFound) {
			return redirectWithError(c, "/admin/reservations", "Reservation not found")
		}
		return redirectWithError(c, "/admin/reservations", "Failed to update reservation")
	}

	return redirectWithSuccess(c, "/admin/reservations", "Reservation marked as "+status)
}

func DeleteReservation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return redirectWithError(c, "/admin/reservations", "Reservation not found")
	}

	if err := services.DeleteReservation(id); err != nil {
		return redirectWithError(c, "/admin/reservations", "Failed to delete reservation")
	}

	return redirectWithSuccess(c, "/admin/reservations", "Reservation deleted successfully!")
}
