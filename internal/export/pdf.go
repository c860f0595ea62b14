package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/Nazish-kiran/travel-planner/internal/domain"
)

const pdfFont = "Helvetica"

// PDF renders the itinerary as an A4 portrait document using core fonts,
// same section order as the text export.
func PDF(trip *domain.Trip) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(pdfFont, "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("%s - Trip Itinerary", trip.Destination), "", 1, "C", false, 0, "")

	pdf.SetFont(pdfFont, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("%s to %s", formatDate(trip.StartDate), formatDate(trip.EndDate)), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Travelers: %d", trip.Travelers), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	if acc := trip.Accommodation; acc != nil {
		pdfHeading(pdf, "Accommodation")
		pdf.SetFont(pdfFont, "", 10)
		for _, line := range []string{
			acc.Name,
			fmt.Sprintf("Address: %s", acc.Address),
			fmt.Sprintf("Check-in: %s | Check-out: %s", acc.CheckIn, acc.CheckOut),
			fmt.Sprintf("Cost: $%s", formatMoney(acc.Cost)),
		} {
			pdf.MultiCell(0, 5, line, "", "L", false)
		}
		pdf.Ln(2)
	}

	if len(trip.Transportation) > 0 {
		pdfHeading(pdf, "Transportation")
		pdf.SetFont(pdfFont, "", 10)
		for i, tr := range trip.Transportation {
			pdf.MultiCell(0, 5, fmt.Sprintf("%d. %s - %s ($%s)", i+1, tr.Type, tr.Details, formatMoney(tr.Cost)), "", "L", false)
		}
		pdf.Ln(2)
	}

	pdfHeading(pdf, "Daily Itinerary")
	for _, day := range trip.Days {
		pdf.SetFont(pdfFont, "B", 11)
		pdf.CellFormat(0, 7, fmt.Sprintf("Day %d - %s", day.Day, formatDate(trip.DayDate(day.Day))), "", 1, "L", false, 0, "")

		pdf.SetFont(pdfFont, "", 10)
		if len(day.Activities) == 0 {
			pdf.CellFormat(0, 5, "No activities scheduled", "", 1, "L", false, 0, "")
			continue
		}
		for _, a := range day.Activities {
			line := fmt.Sprintf("%s | %s | %s | $%s", a.Time, a.Title, a.Category, formatMoney(a.Cost))
			pdf.MultiCell(0, 5, line, "", "L", false)
			if a.Notes != "" {
				pdf.MultiCell(0, 5, "    Notes: "+a.Notes, "", "L", false)
			}
		}
		pdf.Ln(1)
	}

	if len(trip.PackingList) > 0 {
		pdfHeading(pdf, "Packing List")
		pdf.SetFont(pdfFont, "", 10)
		for _, item := range trip.PackingList {
			marker := "[ ]"
			if item.Packed {
				marker = "[x]"
			}
			pdf.CellFormat(0, 5, fmt.Sprintf("%s %s", marker, item.Text), "", 1, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("export.PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func pdfHeading(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont(pdfFont, "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
}
