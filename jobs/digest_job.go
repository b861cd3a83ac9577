package jobs

import (
	"fmt"
	"log"
	"strings"

	config "github.com/hostelhub/hostelhub/configs"
	"github.com/hostelhub/hostelhub/notifications"
	"github.com/hostelhub/hostelhub/services"
)

// SendPendingDigest mails the site contact a summary of reservations still
// awaiting review.
func SendPendingDigest() {
	log.Println("Running job: SendPendingDigest...")

	pending, err := services.ListReservations(services.ReservationFilter{Status: "pending"})
	if err != nil {
		log.Printf("Error loading pending reservations: %v", err)
		return
	}

	if len(pending) == 0 {
		log.Println("No pending reservations to report.")
		return
	}

	settings, err := services.GetSettings()
	if err != nil {
		log.Printf("Error loading site settings: %v", err)
		return
	}
	adminEmail := settings.ContactEmail
	if adminEmail == "" {
		adminEmail = config.Config("ADMIN_EMAIL")
	}
	if adminEmail == "" {
		log.Println("No admin contact email configured, skipping digest.")
		return
	}

	var lines strings.Builder
	for _, row := range pending {
		fmt.Fprintf(&lines, "<li><strong>%s</strong> at %s (%s to %s) for %s</li>",
			row.Reference,
			row.HostelName,
			row.CheckIn.Format("02 Jan 2006"),
			row.CheckOut.Format("02 Jan 2006"),
			row.GuestName,
		)
	}

	subject := fmt.Sprintf("%d reservation(s) awaiting review", len(pending))
	body := fmt.Sprintf("<p>The following reservations are still pending:</p><ul>%s</ul>", lines.String())
	go notifications.SendEmail("Admin", adminEmail, subject, body)

	log.Printf("Queued pending digest covering %d reservation(s).", len(pending))
}
