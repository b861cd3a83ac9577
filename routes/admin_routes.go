package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hostelhub/hostelhub/handlers"
	"github.com/hostelhub/hostelhub/middleware"
)

func AdminRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.AdminRequired())

	admin.Get("", handlers.Dashboard)

	admin.Get("/hostels", handlers.AdminListHostels)
	admin.Get("/hostels/new", handlers.NewHostelForm)
	admin.Post("/hostels", handlers.CreateHostel)
	admin.Get("/hostels/edit/:id", handlers.EditHostelForm)
	admin.Post("/hostels/edit/:id", handlers.UpdateHostel)
	admin.Post("/hostels/delete/:id", handlers.DeleteHostel)
	admin.Post("/hostels/toggle/:id", handlers.ToggleHostelStatus)

	admin.Get("/reservations", handlers.AdminListReservations)
	admin.Post("/reservations/status/:id", handlers.UpdateReservationStatus)
	admin.Post("/reservations/delete/:id", handlers.DeleteReservation)

	admin.Get("/users", handlers.AdminListUsers)
	admin.Post("/users/delete/:id", handlers.AdminDeleteUser)

	admin.Get("/settings", handlers.SettingsPage)
	admin.Post("/settings", handlers.UpdateSettings)

	admin.Use("/feed", handlers.FeedUpgradeRequired)
	admin.Get("/feed", handlers.AdminFeed)
}
