package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hostelhub/hostelhub/middleware"
	"github.com/hostelhub/hostelhub/services"
	"github.com/hostelhub/hostelhub/utils"
)

var validate = validator.New()

// viewModel wraps route data with the globals every page consumes: site
// settings, the session user, and any pending flash messages.
func viewModel(c *fiber.Ctx, title string, data fiber.Map) error {
	settings, err := services.GetSettings()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	payload := fiber.Map{
		"title":    title,
		"settings": settings,
		"user":     middleware.CurrentUser(c),
	}

	if sess, err := middleware.Store.Get(c); err == nil {
		success, errMsg := utils.PopFlashes(sess)
		if success != "" {
			payload["success"] = success
		}
		if errMsg != "" {
			payload["error"] = errMsg
		}
		sess.Save()
	}

	for key, value := range data {
		payload[key] = value
	}
	return c.JSON(payload)
}

func redirectWithSuccess(c *fiber.Ctx, target, message string) error {
	if sess, err := middleware.Store.Get(c); err == nil {
		utils.FlashSuccess(sess, message)
		sess.Save()
	}
	return c.Redirect(target)
}

func redirectWithError(c *fiber.Ctx, target, message string) error {
	if sess, err := middleware.Store.Get(c); err == nil {
		utils.FlashError(sess, message)
		sess.Save()
	}
	return c.Redirect(target)
}
