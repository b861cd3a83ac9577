package services

import (
	"bytes"
	"context"
	"html/template"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/hostelhub/hostelhub/models"
)

// GenerateReceiptPDF renders the booking receipt for the confirmation page
// download link.
func GenerateReceiptPDF(row ReservationRow, payment *models.PaymentInfo, site models.Setting) ([]byte, error) {
	htmlContent, err := renderReceiptHTML(row, payment, site)
	if err != nil {
		return nil, err
	}
	return printToPDF(htmlContent)
}

func renderReceiptHTML(row ReservationRow, payment *models.PaymentInfo, site models.Setting) (string, error) {
	tmpl, err := template.ParseFiles("templates/receipt.html")
	if err != nil {
		return "", err
	}

	data := struct {
		SiteName    string
		Reservation ReservationRow
		Payment     *models.PaymentInfo
		Nights      int
		IssuedAt    string
	}{
		SiteName:    site.SiteName,
		Reservation: row,
		Payment:     payment,
		Nights:      int(row.CheckOut.Sub(row.CheckIn).Hours() / 24),
		IssuedAt:    time.Now().Format("January 2, 2006"),
	}

	var rendered bytes.Buffer
	if err := tmpl.Execute(&rendered, data); err != nil {
		return "", err
	}
	return rendered.String(), nil
}

func printToPDF(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}
