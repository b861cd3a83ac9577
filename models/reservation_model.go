package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reservation always carries the guest contact fields; UserID is only set
// when the booking was made from a logged-in session. check_in < check_out
// is enforced by the workflow, not the schema.
type Reservation struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	HostelID  uuid.UUID  `gorm:"not null" json:"hostel_id"`
	UserID    *uuid.UUID `json:"user_id"`
	Reference string     `gorm:"size:12;not null;unique" json:"reference"`

	GuestName  string `gorm:"size:255;not null" json:"guest_name"`
	GuestEmail string `gorm:"size:255;not null" json:"guest_email"`
	GuestPhone string `gorm:"size:30;not null" json:"guest_phone"`

	CheckIn  time.Time `gorm:"not null" json:"check_in"`
	CheckOut time.Time `gorm:"not null" json:"check_out"`
	Guests   int       `gorm:"not null;default:1" json:"guests"`
	Message  string    `gorm:"type:text" json:"message"`
	Status   string    `gorm:"size:20;not null;default:'pending'" json:"status"`

	Hostel Hostel `gorm:"foreignkey:HostelID;constraint:OnDelete:CASCADE" json:"-"`
	User   *User  `gorm:"foreignkey:UserID;constraint:OnDelete:SET NULL" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
