package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hostelhub/hostelhub/services"
)

func AdminListUsers(c *fiber.Ctx) error {
	users, err := services.ListUsers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return viewModel(c, "Manage Users", fiber.Map{"users": users})
}

func AdminDeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return redirectWithError(c, "/admin/users", "User not found")
	}

	if err := services.DeleteUser(id); err != nil {
		switch {
		case errors.Is(err, services.ErrAdminProtected):
			return redirectWithError(c, "/admin/users", "Admin accounts cannot be deleted")
		case errors.Is(err, services.ErrUserNotFound):
			return redirectWithError(c, "/admin/users", "User not found")
		}
		return redirectWithError(c, "/admin/users", "Failed to delete user")
	}

	return redirectWithSuccess(c, "/admin/users", "User deleted successfully!")
}
