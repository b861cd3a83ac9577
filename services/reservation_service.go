package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	config "github.com/hostelhub/hostelhub/configs"
	"github.com/hostelhub/hostelhub/database"
	"github.com/hostelhub/hostelhub/models"
	"github.com/hostelhub/hostelhub/notifications"
	"github.com/hostelhub/hostelhub/utils"
	"github.com/hostelhub/hostelhub/websocket"
	"gorm.io/gorm"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrHostelUnavailable   = errors.New("this hostel is currently not available")
	ErrInvalidDates        = errors.New("check-out date must be after check-in date")
)

type GuestInfo struct {
	Name  string
	Email string
	Phone string
}

type ReservationRequest struct {
	HostelID uuid.UUID
	Guest    GuestInfo
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
	Message  string
	// UserID is set when the requester is logged in, so the booking stays
	// retrievable by account even if the guest email differs.
	UserID *uuid.UUID
}

// SubmitReservation records a booking request against an available hostel.
// The availability check and the insert are deliberately not one
// transaction: availability is advisory, not capacity-enforcing, and
// submission never flips the hostel status.
func SubmitReservation(req ReservationRequest) (models.Reservation, error) {
	hostel, err := GetHostel(req.HostelID)
	if err != nil {
		return models.Reservation{}, err
	}
	if hostel.Status == "booked" {
		return models.Reservation{}, ErrHostelUnavailable
	}
	if !req.CheckIn.Before(req.CheckOut) {
		return models.Reservation{}, ErrInvalidDates
	}

	guests := req.Guests
	if guests < 1 {
		guests = 1
	}

	reference, err := utils.GenerateBookingReference(database.DB)
	if err != nil {
		return models.Reservation{}, err
	}

	reservation := models.Reservation{
		HostelID:   hostel.ID,
		UserID:     req.UserID,
		Reference:  reference,
		GuestName:  req.Guest.Name,
		GuestEmail: req.Guest.Email,
		GuestPhone: req.Guest.Phone,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Guests:     guests,
		Message:    req.Message,
		Status:     "pending",
	}
	if err := database.DB.Create(&reservation).Error; err != nil {
		return models.Reservation{}, err
	}

	// Best-effort side effects. Booking durability must never depend on
	// mail infrastructure or connected dashboards.
	go notifyNewReservation(notifications.ReservationFacts{
		Reference:  reservation.Reference,
		HostelName: hostel.Name,
		GuestName:  reservation.GuestName,
		GuestEmail: reservation.GuestEmail,
		GuestPhone: reservation.GuestPhone,
		CheckIn:    reservation.CheckIn.Format("2006-01-02"),
		CheckOut:   reservation.CheckOut.Format("2006-01-02"),
		Guests:     reservation.Guests,
	})
	websocket.PublishReservation(websocket.ReservationEvent{
		ReservationID: reservation.ID.String(),
		Reference:     reservation.Reference,
		HostelName:    hostel.Name,
		GuestName:     reservation.GuestName,
		CheckIn:       reservation.CheckIn.Format("2006-01-02"),
		CheckOut:      reservation.CheckOut.Format("2006-01-02"),
		Status:        reservation.Status,
		CreatedAt:     reservation.CreatedAt,
	})

	return reservation, nil
}

func notifyNewReservation(facts notifications.ReservationFacts) {
	setting, err := GetSettings()
	if err != nil {
		setting = models.Setting{SiteName: "HostelHub"}
	}
	to := setting.ContactEmail
	if to == "" {
		to = config.Config("ADMIN_EMAIL")
	}
	notifications.SendReservationNotification(setting.SiteName, to, facts)
}

// UpdateReservationStatus is an unconstrained assignment: transitions are
// not guarded, and no email goes out on a status change.
func UpdateReservationStatus(id uuid.UUID, status string) error {
	res := database.DB.Model(&models.Reservation{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrReservationNotFound
	}
	return nil
}

func DeleteReservation(id uuid.UUID) error {
	res := database.DB.Where("id = ?", id).Delete(&models.Reservation{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrReservationNotFound
	}
	return nil
}

// ReservationRow is a reservation joined with its hostel and, when the
// booking was made from an account, the linked user's name.
type ReservationRow struct {
	ID             uuid.UUID  `json:"id"`
	HostelID       uuid.UUID  `json:"hostel_id"`
	UserID         *uuid.UUID `json:"user_id"`
	Reference      string     `json:"reference"`
	GuestName      string     `json:"guest_name"`
	GuestEmail     string     `json:"guest_email"`
	GuestPhone     string     `json:"guest_phone"`
	CheckIn        time.Time  `json:"check_in"`
	CheckOut       time.Time  `json:"check_out"`
	Guests         int        `json:"guests"`
	Message        string     `json:"message"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	HostelName     string     `json:"hostel_name"`
	HostelLocation string     `json:"hostel_location"`
	HostelPrice    float64    `json:"hostel_price"`
	UserName       *string    `json:"user_name"`
}

func reservationQuery() *gorm.DB {
	return database.DB.Table("reservations").
		Select("reservations.*, hostels.name AS hostel_name, hostels.location AS hostel_location, hostels.price AS hostel_price, users.name AS user_name").
		Joins("JOIN hostels ON hostels.id = reservations.hostel_id").
		Joins("LEFT JOIN users ON users.id = reservations.user_id")
}

type ReservationFilter struct {
	Status string
	Search string
}

// ListReservations applies the back-office filters: status "all" or empty
// means no status filter; search matches guest name, guest email, or
// hostel name case-insensitively.
func ListReservations(filter ReservationFilter) ([]ReservationRow, error) {
	q := reservationQuery()

	if filter.Status != "" && filter.Status != "all" {
		q = q.Where("reservations.status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where(
			"LOWER(reservations.guest_name) LIKE ? OR LOWER(reservations.guest_email) LIKE ? OR LOWER(hostels.name) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var rows []ReservationRow
	err := q.Order("reservations.created_at DESC").Scan(&rows).Error
	return rows, err
}

func RecentReservations(limit int) ([]ReservationRow, error) {
	var rows []ReservationRow
	err := reservationQuery().
		Order("reservations.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// GetConfirmation loads the confirmation view: the joined reservation plus
// the active payment details the guest needs to settle the booking.
func GetConfirmation(id uuid.UUID) (ReservationRow, *models.PaymentInfo, error) {
	var row ReservationRow
	res := reservationQuery().Where("reservations.id = ?", id).Limit(1).Scan(&row)
	if res.Error != nil {
		return row, nil, res.Error
	}
	if res.RowsAffected == 0 {
		return row, nil, ErrReservationNotFound
	}

	payment, err := GetActivePaymentInfo()
	if err != nil {
		return row, nil, err
	}
	return row, payment, nil
}

// MyReservations matches by linked account or by guest email, so bookings
// made before registering still show up on the profile page.
func MyReservations(userID uuid.UUID, email string) ([]ReservationRow, error) {
	var rows []ReservationRow
	err := reservationQuery().
		Where("reservations.user_id = ? OR reservations.guest_email = ?", userID, email).
		Order("reservations.created_at DESC").
		Scan(&rows).Error
	return rows, err
}
