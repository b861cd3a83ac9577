package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hostelhub/hostelhub/services"
)

func Home(c *fiber.Ctx) error {
	featured, err := services.FeaturedHostels(6)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	stats, err := services.GetSiteStats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return viewModel(c, "Home", fiber.Map{
		"featured_hostels": featured,
		"stats":            stats,
	})
}

func ListHostels(c *fiber.Ctx) error {
	filter := services.HostelFilter{
		Search:   c.Query("search"),
		Location: c.Query("location"),
		Status:   c.Query("status"),
	}
	if v := c.Query("minPrice"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &price
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &price
		}
	}

	hostels, err := services.ListHostels(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	locations, err := services.DistinctLocations()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return viewModel(c, "All Hostels", fiber.Map{
		"hostels":   hostels,
		"locations": locations,
		"filters":   c.Queries(),
	})
}

func HostelDetail(c *fiber.Ctx) error {
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

	similar, err := services.SimilarHostels(hostel, 3)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return viewModel(c, hostel.Name, fiber.Map{
		"hostel":          hostel,
		"similar_hostels": similar,
	})
}

func PaymentInfoPage(c *fiber.Ctx) error {
	payment, err := services.GetActivePaymentInfo()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return viewModel(c, "Payment Information", fiber.Map{"payment_info": payment})
}

func About(c *fiber.Ctx) error {
	return viewModel(c, "About Us", fiber.Map{})
}

func Contact(c *fiber.Ctx) error {
	return viewModel(c, "Contact Us", fiber.Map{})
}
