// Package domain contains the core data types for the travel planner and the
// pure derived-aggregate functions computed over them. This package has no
// dependency on storage or presentation and is imported by every other
// internal package (store, service, export, cli).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is the root document describing one travel plan. At most one Trip is
// active at a time; creating a new one discards the old. Every edit produces
// a structurally new Trip value — nested collections are never mutated in
// place — so the document store can mirror the whole document on each change.
type Trip struct {
	// Destination is a free-text place label. It doubles as the lookup key
	// for the destination-info clients, which tolerate unresolvable names.
	Destination string    `json:"destination"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Travelers   int       `json:"travelers"`

	// Days holds one record per calendar day in [StartDate, EndDate],
	// generated once at creation and never resized afterward.
	Days []Day `json:"days"`

	// Accommodation is nil until explicitly set. At most one per trip;
	// setting it again overwrites the previous value.
	Accommodation *Accommodation `json:"accommodation,omitempty"`

	Transportation []Transport   `json:"transportation"`
	PackingList    []PackingItem `json:"packing_list"`

	// Notes is the categorized note collection. The legacy single-string
	// shape found in older persisted documents is migrated on load; see
	// NoteList.UnmarshalJSON.
	Notes NoteList `json:"notes,omitempty"`

	// Documents maps a document category id (see DocumentCategories) to the
	// checklist items filed under it.
	Documents map[string][]DocumentItem `json:"documents,omitempty"`

	// BudgetLimit is the optional spending ceiling. nil means no limit set.
	BudgetLimit *float64 `json:"budget_limit,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Accommodation is the single lodging record for a trip.
// CheckIn and CheckOut are "2006-01-02" formatted dates as entered by the
// user; they are display fields and are not validated against the trip range.
type Accommodation struct {
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	CheckIn  string  `json:"check_in"`
	CheckOut string  `json:"check_out"`
	Cost     float64 `json:"cost"`
}

// Transport is one transportation booking (flight, train, rental car, ...).
type Transport struct {
	ID      uuid.UUID `json:"id"`
	Type    string    `json:"type"`
	Details string    `json:"details"`
	Cost    float64   `json:"cost"`
}

// PackingItem is one entry on the packing checklist.
type PackingItem struct {
	ID     uuid.UUID `json:"id"`
	Text   string    `json:"text"`
	Packed bool      `json:"packed"`
}

// DocumentItem is one entry on a per-category document checklist.
type DocumentItem struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
}

// DocumentCategories lists the valid keys of Trip.Documents, in display order.
var DocumentCategories = []string{
	"passport", "visa", "insurance", "vaccination", "financial", "other",
}

// ValidDocumentCategory reports whether c is a known document category.
func ValidDocumentCategory(c string) bool {
	for _, known := range DocumentCategories {
		if c == known {
			return true
		}
	}
	return false
}

// DayDate returns the calendar date of the 1-based day index:
// StartDate + (day-1) days. It does not check that day is within range.
func (t *Trip) DayDate(day int) time.Time {
	return t.StartDate.AddDate(0, 0, day-1)
}

// Clone returns a deep copy of the trip. Services use it to build the next
// document value without aliasing any slice or map of the current one.
func (t *Trip) Clone() *Trip {
	if t == nil {
		return nil
	}
	next := *t

	next.Days = make([]Day, len(t.Days))
	for i, d := range t.Days {
		next.Days[i] = Day{Day: d.Day, Activities: append([]Activity(nil), d.Activities...)}
	}

	if t.Accommodation != nil {
		acc := *t.Accommodation
		next.Accommodation = &acc
	}
	if t.BudgetLimit != nil {
		limit := *t.BudgetLimit
		next.BudgetLimit = &limit
	}

	next.Transportation = append([]Transport(nil), t.Transportation...)
	next.PackingList = append([]PackingItem(nil), t.PackingList...)
	next.Notes = append(NoteList(nil), t.Notes...)

	if t.Documents != nil {
		next.Documents = make(map[string][]DocumentItem, len(t.Documents))
		for cat, items := range t.Documents {
			next.Documents[cat] = append([]DocumentItem(nil), items...)
		}
	}

	return &next
}
