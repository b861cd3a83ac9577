package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentInfo holds the bank and mobile-money details shown on the
// confirmation and payment pages. It is display data, not a gateway.
type PaymentInfo struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BankName      string    `gorm:"size:255" json:"bank_name"`
	AccountNumber string    `gorm:"size:50" json:"account_number"`
	AccountName   string    `gorm:"size:255" json:"account_name"`
	MomoProvider  string    `gorm:"size:100" json:"momo_provider"`
	MomoNumber    string    `gorm:"size:30" json:"momo_number"`
	MomoName      string    `gorm:"size:255" json:"momo_name"`
	Instructions  string    `gorm:"type:text" json:"instructions"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
}

func (p *PaymentInfo) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
