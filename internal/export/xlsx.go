package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Nazish-kiran/travel-planner/internal/domain"
)

// XLSX renders the budget workbook: a Summary sheet with the derived
// aggregates and one sheet per day listing its costed activities.
func XLSX(trip *domain.Trip) ([]byte, error) {
	file := excelize.NewFile()

	const summary = "Summary"
	file.SetSheetName("Sheet1", summary)
	if err := writeSummary(file, summary, trip); err != nil {
		return nil, fmt.Errorf("export.XLSX: %w", err)
	}

	for _, day := range trip.Days {
		sheet := fmt.Sprintf("Day %d", day.Day)
		if _, err := file.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("export.XLSX: %w", err)
		}
		if err := writeDay(file, sheet, trip, day); err != nil {
			return nil, fmt.Errorf("export.XLSX: %w", err)
		}
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export.XLSX: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummary(file *excelize.File, sheet string, trip *domain.Trip) error {
	set := func(cell string, value any) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Destination")
	set("B1", trip.Destination)
	set("A2", "Start Date")
	set("B2", formatDate(trip.StartDate))
	set("A3", "End Date")
	set("B3", formatDate(trip.EndDate))
	set("A4", "Travelers")
	set("B4", trip.Travelers)

	set("A6", "Activities Total")
	set("B6", trip.ActivitiesTotal())
	set("A7", "Accommodation")
	set("B7", trip.AccommodationCost())
	set("A8", "Transportation")
	set("B8", trip.TransportationTotal())
	set("A9", "Trip Total")
	set("B9", trip.Total())
	set("A10", "Average Daily Cost")
	set("B10", trip.AverageDailyCost())

	report := domain.ClassifyBudget(trip)
	set("A12", "Budget Status")
	set("B12", string(report.Status))
	if report.Status != domain.StatusNone {
		set("A13", "Budget Limit")
		set("B13", report.Limit)
		set("A14", "Remaining")
		set("B14", report.Remaining)
	}

	row := 16
	set(fmt.Sprintf("A%d", row), "Category")
	set(fmt.Sprintf("B%d", row), "Count")
	set(fmt.Sprintf("C%d", row), "Cost")
	for _, stat := range domain.BreakdownByCategory(trip) {
		row++
		set(fmt.Sprintf("A%d", row), string(stat.Category))
		set(fmt.Sprintf("B%d", row), stat.Count)
		set(fmt.Sprintf("C%d", row), stat.Cost)
	}

	return nil
}

func writeDay(file *excelize.File, sheet string, trip *domain.Trip, day domain.Day) error {
	set := func(cell string, value any) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", fmt.Sprintf("Day %d - %s", day.Day, formatDate(trip.DayDate(day.Day))))

	set("A3", "Time")
	set("B3", "Title")
	set("C3", "Category")
	set("D3", "Cost")
	set("E3", "Notes")

	row := 3
	for _, a := range day.Activities {
		row++
		set(fmt.Sprintf("A%d", row), a.Time)
		set(fmt.Sprintf("B%d", row), a.Title)
		set(fmt.Sprintf("C%d", row), string(a.Category))
		set(fmt.Sprintf("D%d", row), a.Cost)
		set(fmt.Sprintf("E%d", row), a.Notes)
	}

	row += 2
	set(fmt.Sprintf("A%d", row), "Day Total")
	set(fmt.Sprintf("D%d", row), day.Total())

	return nil
}
