package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Hostel status is a coarse flag flipped by an operator, never derived
// from reservation occupancy.
type Hostel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Location    string    `gorm:"size:255" json:"location"`
	Address     string    `gorm:"size:255" json:"address"`
	Price       float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	Amenities   []string  `gorm:"serializer:json" json:"amenities"`
	Images      []string  `gorm:"serializer:json" json:"images"`
	Videos      []string  `gorm:"serializer:json" json:"videos"`
	Rooms       int       `gorm:"not null;default:1" json:"rooms"`
	Status      string    `gorm:"size:20;not null;default:'available'" json:"status"`
	Featured    bool      `gorm:"default:false" json:"featured"`

	Reservations []Reservation `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *Hostel) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
