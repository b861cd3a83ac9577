package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Setting struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SiteName       string    `gorm:"size:255;default:'HostelHub'" json:"site_name"`
	SiteTagline    string    `gorm:"size:255;default:'Find Your Perfect Stay'" json:"site_tagline"`
	ContactEmail   string    `gorm:"size:255" json:"contact_email"`
	ContactPhone   string    `gorm:"size:30" json:"contact_phone"`
	ContactAddress string    `gorm:"size:255" json:"contact_address"`
	AboutText      string    `gorm:"type:text" json:"about_text"`
	FooterText     string    `gorm:"type:text" json:"footer_text"`
}

func (s *Setting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
