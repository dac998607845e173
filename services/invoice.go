package services

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/22Vinith/Hospital-Management/models"
)

// RenderInvoicePDF lays out the bill as a one-page PDF for the email
// attachment.
func RenderInvoicePDF(bill *models.Bill, doctorName string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "Consultation Bill", "", 1, "C", false, 0, "")

	addDetail(pdf, "Bill ID:", fmt.Sprintf("%d", bill.BillID), true)
	addDetail(pdf, "Appointment ID:", fmt.Sprintf("%d", bill.AppointmentID), false)

	pdf.SetY(pdf.GetY() + 10)
	addDetail(pdf, "Doctor:", doctorName, true)
	addDetail(pdf, "Patient:", bill.PatientName, false)
	addDetail(pdf, "Email:", bill.PatientEmail, false)

	pdf.SetY(pdf.GetY() + 10)
	addDetail(pdf, "Prescription:", bill.Prescription, true)
	addDetail(pdf, "Amount:", fmt.Sprintf("%.2f %s", bill.Amount, bill.Currency), false)

	pdf.SetFont("Arial", "", 10)
	pdf.SetY(pdf.GetY() + 10)
	pdf.MultiCell(0, 5, "Follow the instructions given by the doctor properly. Your health is all that matters!", "", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addDetail(pdf *gofpdf.Fpdf, label, value string, isHeader bool) {
	if isHeader {
		pdf.SetFont("Arial", "B", 12)
	} else {
		pdf.SetFont("Arial", "", 12)
	}
	pdf.CellFormat(0, 10, label, "", 1, "", false, 0, "")
	pdf.CellFormat(0, 10, value, "", 1, "", false, 0, "")
}
