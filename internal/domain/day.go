package domain

import "github.com/google/uuid"

// Day is one calendar day of a Trip, identified by its 1-based index.
// Days are never reordered; the index is stable for the life of the trip.
type Day struct {
	Day        int        `json:"day"`
	Activities []Activity `json:"activities"`
}

// Category classifies an activity for the analytics breakdown.
type Category string

// The full activity category set. CategoryOther is the fallback for any
// unrecognized value found in persisted documents.
const (
	CategorySightseeing Category = "Sightseeing"
	CategoryDining      Category = "Dining"
	CategoryShopping    Category = "Shopping"
	CategoryAdventure   Category = "Adventure"
	CategoryRelaxation  Category = "Relaxation"
	CategoryCulture     Category = "Culture"
	CategoryOther       Category = "Other"
)

// Categories lists every valid activity category in display order.
var Categories = []Category{
	CategorySightseeing, CategoryDining, CategoryShopping,
	CategoryAdventure, CategoryRelaxation, CategoryCulture, CategoryOther,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Activity is a single scheduled item within a Day. It is owned exclusively
// by its parent Day and is created or removed only by whole-document
// replacement that rewrites the owning Day's activity slice.
type Activity struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	// Time is the "15:04" formatted start time as entered by the user.
	Time     string   `json:"time"`
	Category Category `json:"category"`
	// Cost is non-negative; a blank cost field is recorded as 0.
	Cost  float64 `json:"cost"`
	Notes string  `json:"notes,omitempty"`
}
