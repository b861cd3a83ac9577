package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hostelhub/hostelhub/handlers"
)

func PublicRoutes(app *fiber.App) {
	app.Get("/", handlers.Home)
	app.Get("/hostels", handlers.ListHostels)
	app.Get("/hostel/:id", handlers.HostelDetail)

	app.Get("/reserve/:id", handlers.ReservePage)
	app.Post("/reserve/:id", handlers.SubmitReservation)
	app.Get("/confirmation/:id", handlers.ConfirmationPage)
	app.Get("/confirmation/:id/receipt", handlers.DownloadReceipt)

	app.Get("/payment-info", handlers.PaymentInfoPage)
	app.Get("/about", handlers.About)
	app.Get("/contact", handlers.Contact)
}
