package domain

import "errors"

// ErrNoTrip is returned by service operations that require an active trip
// when none exists. The CLI maps this to a "create a trip first" hint.
var ErrNoTrip = errors.New("no active trip")

// ErrNotFound is returned when a referenced record (activity, packing item,
// note, document, transport) does not exist in the current trip.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service operations when input fails business
// rule validation (e.g. missing required field, end date before start date).
var ErrValidation = errors.New("validation error")
