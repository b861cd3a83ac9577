package services

import (
	"errors"

	"github.com/hostelhub/hostelhub/database"
	"github.com/hostelhub/hostelhub/models"
	"gorm.io/gorm"
)

// GetSettings fetches the single settings row per request; a missing row
// falls back to defaults so public pages always render.
func GetSettings() (models.Setting, error) {
	var setting models.Setting
	if err := database.DB.First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Setting{SiteName: "HostelHub", SiteTagline: "Find Your Perfect Stay"}, nil
		}
		return models.Setting{}, err
	}
	return setting, nil
}

type SettingsInput struct {
	SiteName       string
	SiteTagline    string
	ContactEmail   string
	ContactPhone   string
	ContactAddress string
	AboutText      string
	FooterText     string
}

func UpdateSettings(input SettingsInput) error {
	var setting models.Setting
	err := database.DB.First(&setting).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	setting.SiteName = input.SiteName
	setting.SiteTagline = input.SiteTagline
	setting.ContactEmail = input.ContactEmail
	setting.ContactPhone = input.ContactPhone
	setting.ContactAddress = input.ContactAddress
	setting.AboutText = input.AboutText
	setting.FooterText = input.FooterText

	return database.DB.Save(&setting).Error
}

func GetActivePaymentInfo() (*models.PaymentInfo, error) {
	var payment models.PaymentInfo
	if err := database.DB.Where("is_active = ?", true).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func GetPaymentInfo() (*models.PaymentInfo, error) {
	var payment models.PaymentInfo
	if err := database.DB.First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

type PaymentInfoInput struct {
	BankName      string
	AccountNumber string
	AccountName   string
	MomoProvider  string
	MomoNumber    string
	MomoName      string
	Instructions  string
}

func UpdatePaymentInfo(input PaymentInfoInput) error {
	var payment models.PaymentInfo
	err := database.DB.First(&payment).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	payment.BankName = input.BankName
	payment.AccountNumber = input.AccountNumber
	payment.AccountName = input.AccountName
	payment.MomoProvider = input.MomoProvider
	payment.MomoNumber = input.MomoNumber
	payment.MomoName = input.MomoName
	payment.Instructions = input.Instructions
	payment.IsActive = true

	return database.DB.Save(&payment).Error
}
