package handlers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hostelhub/hostelhub/middleware"
	"github.com/hostelhub/hostelhub/services"
)

type ReservationForm struct {
	GuestName  string `form:"guest_name" json:"guest_name" validate:"required,min=2"`
	GuestEmail string `form:"guest_email" json:"guest_email" validate:"required,email"`
	GuestPhone string `form:"guest_phone" json:"guest_phone" validate:"required,min=7"`
	CheckIn    string `form:"check_in" json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut   string `form:"check_out" json:"check_out" validate:"required,datetime=2006-01-02"`
	Guests     int    `form:"guests" json:"guests"`
	Message    string `form:"message" json:"message"`
}

func ReservePage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return redirectWithError(c, "/hostels", "Hostel not found")
	}

	hostel, err := services.GetHostel(id)
	if err != nil {
		if errors.Is(err, services.ErrHostelNotFound) {
			return redirectWithError(c, "/hostels", "Hostel not found")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	if hostel.Status == "booked" {
		return redirectWithError(c, "/hostel/"+hostel.ID.String(), "This hostel is currently not available")
	}

	return viewModel(c, "Reserve "+hostel.Name, fiber.Map{"hostel": hostel})
}

func SubmitReservation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return redirectWithError(c, "/hostels", "Hostel not found")
	}

	var form ReservationForm
	if err := c.BodyParser(&form); err != nil {
		return redirectWithError(c, "/reserve/"+id.String(), "Invalid form submission")
	}
	if err := validate.Struct(form); err != nil {
		return redirectWithError(c, "/reserve/"+id.String(), "Please fill in all required fields")
	}

	checkIn, err := time.Parse("2006-01-02", form.CheckIn)
	if err != nil {
		return redirectWithError(c, "/reserve/"+id.String(), "Invalid check-in or check-out date")
	}
	checkOut, err := time.Parse("2006-01-02", form.CheckOut)
	if err != nil {
		return redirectWithError(c, "/reserve/"+id.String(), "Invalid check-in or check-out date")
	}

	req := services.ReservationRequest{
		HostelID: id,
		Guest: services.GuestInfo{
			Name:  form.GuestName,
			Email: form.GuestEmail,
			Phone: form.GuestPhone,
		},
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   form.Guests,
		Message:  form.Message,
	}
	if user := middleware.CurrentUser(c); user != nil {
		userID := user.ID
		req.UserID = &userID
	}

	reservation, err := services.SubmitReservation(req)
	switch {
	case errors.Is(err, services.ErrHostelNotFound):
		return redirectWithError(c, "/hostels", "This hostel is not available")
	case errors.Is(err, services.ErrHostelUnavailable):
		return redirectWithError(c, "/hostel/"+id.String(), "This hostel is not available")
	case errors.Is(err, services.ErrInvalidDates):
		return redirectWithError(c, "/reserve/"+id.String(), "Check-out date must be after check-in date")
	case err != nil:
		log.Printf("🔥 Reservation error: %v", err)
		return redirectWithError(c, "/reserve/"+id.String(), "Failed to submit reservation. Please try again.")
	}

	return redirectWithSuccess(c, "/confirmation/"+reservation.ID.String(),
		"Reservation submitted successfully! Please proceed to payment.")
}

func ConfirmationPage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return redirectWithError(c, "/", "Reservation not found")
	}

	row, payment, err := services.GetConfirmation(id)
	if err != nil {
		if errors.Is(err, services.ErrReservationNotFound) {
			return redirectWithError(c, "/", "Reservation not found")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return viewModel(c, "Booking Confirmation", fiber.Map{
		"reservation":  row,
		"payment_info": payment,
	})
}

func DownloadReceipt(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return redirectWithError(c, "/", "Reservation not found")
	}

	row, payment, err := services.GetConfirmation(id)
	if err != nil {
		if errors.Is(err, services.ErrReservationNotFound) {
			return redirectWithError(c, "/", "Reservation not found")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	settings, err := services.GetSettings()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	pdf, err := services.GenerateReceiptPDF(row, payment, settings)
	if err != nil {
		log.Printf("🔥 Failed to generate receipt for %s: %v", row.Reference, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate receipt"})
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", row.Reference))
	return c.Send(pdf)
}
