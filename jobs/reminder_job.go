package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/hostelhub/hostelhub/database"
	"github.com/hostelhub/hostelhub/models"
	"github.com/hostelhub/hostelhub/notifications"
)

// SendCheckInReminders emails every confirmed guest whose stay begins
// tomorrow.
func SendCheckInReminders() {
	log.Println("Running job: SendCheckInReminders...")

	now := time.Now()
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	dayAfter := tomorrow.AddDate(0, 0, 1)

	var upcoming []models.Reservation
	err := database.DB.
		Preload("Hostel").
		Where("status = ? AND check_in >= ? AND check_in < ?", "confirmed", tomorrow, dayAfter).
		Find(&upcoming).Error
	if err != nil {
		log.Printf("Error checking for upcoming stays: %v", err)
		return
	}

	if len(upcoming) == 0 {
		log.Println("No check-ins due tomorrow.")
		return
	}

	for _, reservation := range upcoming {
		subject := fmt.Sprintf("Reminder: your stay at %s starts tomorrow", reservation.Hostel.Name)
		body := fmt.Sprintf(
			"<p>Hi %s,</p><p>This is a friendly reminder that your booking <strong>%s</strong> at %s begins on %s.</p><p>We look forward to hosting you!</p>",
			reservation.GuestName,
			reservation.Reference,
			reservation.Hostel.Name,
			reservation.CheckIn.Format("Monday, 02 Jan 2006"),
		)
		go notifications.SendEmail(reservation.GuestName, reservation.GuestEmail, subject, body)
	}

	log.Printf("Queued %d check-in reminder(s).", len(upcoming))
}
