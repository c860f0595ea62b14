package export_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Nazish-kiran/travel-planner/internal/domain"
	"github.com/Nazish-kiran/travel-planner/internal/export"
)

// ---- fixtures --------------------------------------------------------------

func limit(v float64) *float64 { return &v }

func exportTrip() *domain.Trip {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Trip{
		Destination: "Paris",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 1),
		Travelers:   2,
		Days: []domain.Day{
			{Day: 1, Activities: []domain.Activity{{
				ID:       uuid.New(),
				Title:    "Louvre",
				Time:     "09:30",
				Category: domain.CategoryCulture,
				Cost:     25,
				Notes:    "book ahead",
			}}},
			{Day: 2, Activities: []domain.Activity{}},
		},
		Accommodation: &domain.Accommodation{
			Name:     "Hotel du Nord",
			Address:  "102 Quai de Jemmapes",
			CheckIn:  "2025-06-01",
			CheckOut: "2025-06-02",
			Cost:     450,
		},
		Transportation: []domain.Transport{
			{ID: uuid.New(), Type: "Flight", Details: "CDG 10:00", Cost: 320},
		},
		PackingList: []domain.PackingItem{
			{ID: uuid.New(), Text: "passport", Packed: true},
			{ID: uuid.New(), Text: "umbrella"},
		},
		BudgetLimit: limit(1000),
	}
}

// ---- format tests ----------------------------------------------------------

func TestFormat_Valid(t *testing.T) {
	for _, f := range export.Formats {
		assert.True(t, f.Valid(), string(f))
	}
	assert.False(t, export.Format("csv").Valid())
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := export.Render(exportTrip(), "csv")

	assert.Error(t, err)
}

// ---- filename tests --------------------------------------------------------

func TestFilename(t *testing.T) {
	trip := exportTrip()

	assert.Equal(t, "Paris-itinerary.txt", export.Filename(trip, export.FormatText))
	assert.Equal(t, "Paris-itinerary.html", export.Filename(trip, export.FormatHTML))
	assert.Equal(t, "Paris-itinerary.pdf", export.Filename(trip, export.FormatPDF))
	assert.Equal(t, "Paris-itinerary.xlsx", export.Filename(trip, export.FormatXLSX))
}

func TestFilename_SanitizesDestination(t *testing.T) {
	trip := exportTrip()
	trip.Destination = "São Paulo / Rio"

	name := export.Filename(trip, export.FormatText)

	assert.Equal(t, "S-o-Paulo---Rio-itinerary.txt", name)
}

func TestFilename_BlankDestination(t *testing.T) {
	trip := exportTrip()
	trip.Destination = "   "

	assert.Equal(t, "trip-itinerary.txt", export.Filename(trip, export.FormatText))
}

// ---- text renderer tests ---------------------------------------------------

func TestText_SectionOrder(t *testing.T) {
	out := export.Text(exportTrip())

	sections := []string{
		"TRIP ITINERARY",
		"ACCOMMODATION",
		"TRANSPORTATION",
		"DAILY ITINERARY",
		"PACKING LIST",
	}
	last := -1
	for _, s := range sections {
		idx := strings.Index(out, s)
		require.GreaterOrEqual(t, idx, 0, s)
		assert.Greater(t, idx, last, "%s out of order", s)
		last = idx
	}
}

func TestText_Content(t *testing.T) {
	out := export.Text(exportTrip())

	assert.Contains(t, out, "Destination: Paris")
	assert.Contains(t, out, "Start Date: Jun 1, 2025")
	assert.Contains(t, out, "Travelers: 2")
	assert.Contains(t, out, "Hotel: Hotel du Nord")
	assert.Contains(t, out, "Cost: $450.00")
	assert.Contains(t, out, "1. Flight")
	assert.Contains(t, out, "Day 1 - Jun 1, 2025")
	assert.Contains(t, out, "1. Louvre")
	assert.Contains(t, out, "Time: 09:30 | Category: Culture")
	assert.Contains(t, out, "Notes: book ahead")
	assert.Contains(t, out, "Day 2 - Jun 2, 2025")
	assert.Contains(t, out, "No activities scheduled")
	assert.Contains(t, out, "[x] passport")
	assert.Contains(t, out, "[ ] umbrella")
}

func TestText_OmitsEmptySections(t *testing.T) {
	trip := exportTrip()
	trip.Accommodation = nil
	trip.Transportation = nil
	trip.PackingList = nil

	out := export.Text(trip)

	assert.NotContains(t, out, "ACCOMMODATION")
	assert.NotContains(t, out, "TRANSPORTATION")
	assert.NotContains(t, out, "PACKING LIST")
	assert.Contains(t, out, "DAILY ITINERARY")
}

func TestText_Deterministic(t *testing.T) {
	trip := exportTrip()

	assert.Equal(t, export.Text(trip), export.Text(trip))
}

// ---- html renderer tests ---------------------------------------------------

func TestHTML_Content(t *testing.T) {
	out := export.HTML(exportTrip())

	assert.Contains(t, out, "<title>Paris - Trip Itinerary</title>")
	assert.Contains(t, out, "<h1>Paris - Trip Itinerary</h1>")
	assert.Contains(t, out, "Hotel du Nord")
	assert.Contains(t, out, "<h3>Day 1 - Jun 1, 2025</h3>")
	assert.Contains(t, out, "✓ passport")
	assert.Contains(t, out, "○ umbrella")
}

func TestHTML_EscapesUserText(t *testing.T) {
	trip := exportTrip()
	trip.Destination = `<script>alert("x")</script>`
	trip.Days[0].Activities[0].Title = "Dinner & <b>show</b>"

	out := export.HTML(trip)

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "Dinner &amp; &lt;b&gt;show&lt;/b&gt;")
}

// ---- pdf renderer tests ----------------------------------------------------

func TestPDF_ProducesDocument(t *testing.T) {
	data, err := export.PDF(exportTrip())

	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "missing PDF magic header")
}

// ---- xlsx renderer tests ---------------------------------------------------

func TestXLSX_SummarySheet(t *testing.T) {
	data, err := export.XLSX(exportTrip())
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { file.Close() })

	cell := func(ref string) string {
		v, err := file.GetCellValue("Summary", ref)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Destination", cell("A1"))
	assert.Equal(t, "Paris", cell("B1"))
	assert.Equal(t, "25", cell("B6"))  // activities total
	assert.Equal(t, "450", cell("B7")) // accommodation
	assert.Equal(t, "320", cell("B8")) // transportation
	assert.Equal(t, "795", cell("B9")) // trip total
	assert.Equal(t, "within", cell("B12"))
	assert.Equal(t, "Culture", cell("A17"))
}

func TestXLSX_DaySheets(t *testing.T) {
	data, err := export.XLSX(exportTrip())
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { file.Close() })

	assert.Contains(t, file.GetSheetList(), "Day 1")
	assert.Contains(t, file.GetSheetList(), "Day 2")

	title, err := file.GetCellValue("Day 1", "B4")
	require.NoError(t, err)
	assert.Equal(t, "Louvre", title)
}
