// Package export renders a trip document into downloadable itinerary
// artifacts. Every renderer is a pure function of the Trip value: given the
// same trip it produces identical bytes, so output is deterministic per run
// and safe to regenerate on demand.
//
// Section order is fixed across all formats: header, accommodation (if set),
// transportation (if any), per-day activity listing, packing list (if any).
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/Nazish-kiran/travel-planner/internal/domain"
)

// Format selects an output renderer.
type Format string

// The supported export formats.
const (
	FormatText Format = "text"
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// Formats lists every supported format, for CLI usage strings.
var Formats = []Format{FormatText, FormatHTML, FormatPDF, FormatXLSX}

// Valid reports whether f names a supported format.
func (f Format) Valid() bool {
	switch f {
	case FormatText, FormatHTML, FormatPDF, FormatXLSX:
		return true
	}
	return false
}

// ext returns the filename extension for the format.
func (f Format) ext() string {
	switch f {
	case FormatText:
		return "txt"
	case FormatHTML:
		return "html"
	case FormatPDF:
		return "pdf"
	case FormatXLSX:
		return "xlsx"
	}
	return "txt"
}

// Render produces the itinerary artifact for the requested format.
func Render(trip *domain.Trip, format Format) ([]byte, error) {
	switch format {
	case FormatText:
		return []byte(Text(trip)), nil
	case FormatHTML:
		return []byte(HTML(trip)), nil
	case FormatPDF:
		return PDF(trip)
	case FormatXLSX:
		return XLSX(trip)
	}
	return nil, fmt.Errorf("export.Render: unknown format %q", format)
}

// Filename derives the download name from the destination string, e.g.
// "Paris-itinerary.txt". Characters that are hostile to filesystems are
// replaced with hyphens.
func Filename(trip *domain.Trip, format Format) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, strings.TrimSpace(trip.Destination))
	if name == "" {
		name = "trip"
	}
	return fmt.Sprintf("%s-itinerary.%s", name, format.ext())
}

// formatDate is the shared human-readable date format for all renderers.
func formatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// formatMoney renders a monetary value with two decimals and no unit;
// the document tracks no currency, matching the source data model.
func formatMoney(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
