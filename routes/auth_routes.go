package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hostelhub/hostelhub/handlers"
	"github.com/hostelhub/hostelhub/middleware"
)

func AuthRoutes(app *fiber.App) {
	app.Get("/login", handlers.LoginPage)
	app.Post("/login", handlers.Login)
	app.Get("/register", handlers.RegisterPage)
	app.Post("/register", handlers.Register)
	app.Get("/logout", handlers.Logout)

	app.Get("/profile", middleware.Protected(), handlers.Profile)
}
