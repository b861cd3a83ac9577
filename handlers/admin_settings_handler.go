package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hostelhub/hostelhub/services"
)

type SettingsForm struct {
	SiteName       string `form:"site_name" json:"site_name" validate:"required"`
	SiteTagline    string `form:"site_tagline" json:"site_tagline"`
	ContactEmail   string `form:"contact_email" json:"contact_email"`
	ContactPhone   string `form:"contact_phone" json:"contact_phone"`
	ContactAddress string `form:"contact_address" json:"contact_address"`
	AboutText      string `form:"about_text" json:"about_text"`
	FooterText     string `form:"footer_text" json:"footer_text"`
	BankName       string `form:"bank_name" json:"bank_name"`
	AccountName    string `form:"account_name" json:"account_name"`
	AccountNumber  string `form:"account_number" json:"account_number"`
	MomoProvider   string `form:"momo_provider" json:"momo_provider"`
	MomoNumber     string `form:"momo_number" json:"momo_number"`
	MomoName       string `form:"momo_name" json:"momo_name"`
	Instructions   string `form:"instructions" json:"instructions"`
}

func SettingsPage(c *fiber.Ctx) error {
	payment, err := services.GetPaymentInfo()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	// Site settings already ride along in the view-model globals.
	return viewModel(c, "Site Settings", fiber.Map{
		"payment_info": payment,
	})
}

func UpdateSettings(c *fiber.Ctx) error {
	var form SettingsForm
	if err := c.BodyParser(&form); err != nil {
		return redirectWithError(c, "/admin/settings", "Invalid form submission")
	}
	if err := validate.Struct(form); err != nil {
		return redirectWithError(c, "/admin/settings", "Site name is required")
	}

	if err := services.UpdateSettings(services.SettingsInput{
		SiteName:       form.SiteName,
		SiteTagline:    form.SiteTagline,
		ContactEmail:   form.ContactEmail,
		ContactPhone:   form.ContactPhone,
		ContactAddress: form.ContactAddress,
		AboutText:      form.AboutText,
		FooterText:     form.FooterText,
	}); err != nil {
		return redirectWithError(c, "/admin/settings", "Failed to update settings")
	}

	if err := services.UpdatePaymentInfo(services.PaymentInfoInput{
		BankName:      form.BankName,
		AccountName:   form.AccountName,
		AccountNumber: form.AccountNumber,
		MomoProvider:  form.MomoProvider,
		MomoNumber:    form.MomoNumber,
		MomoName:      form.MomoName,
		Instructions:  form.Instructions,
	}); err != nil {
		return redirectWithError(c, "/admin/settings", "Failed to update payment details")
	}

	return redirectWithSuccess(c, "/admin/settings", "Settings updated successfully!")
}
