// Package service contains the business logic for the travel planner.
// Every edit operation follows the same shape: read the current trip from
// the document store, build a structurally new Trip value with the desired
// change, and Replace. Services validate inputs, coerce edge cases to safe
// defaults, and never mutate the stored document in place.
package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Nazish-kiran/travel-planner/internal/domain"
)

// DocumentStore is the minimal store contract the service depends on.
// *store.Store satisfies it; tests pass a hand-written mock.
type DocumentStore interface {
	Current() *domain.Trip
	Replace(ctx context.Context, next *domain.Trip) error
}

// TripService implements every edit operation on the trip document.
type TripService struct {
	store DocumentStore
	now   func() time.Time
}

// NewTripService constructs a TripService over the provided document store.
func NewTripService(s DocumentStore) *TripService {
	return &TripService{store: s, now: time.Now}
}

// Get returns the active trip, or domain.ErrNoTrip when none exists.
func (s *TripService) Get() (*domain.Trip, error) {
	trip := s.store.Current()
	if trip == nil {
		return nil, domain.ErrNoTrip
	}
	return trip, nil
}

// Create builds a new trip document and replaces any existing one.
// The Day sequence is generated here, once, and is never resized afterward.
// Rules: destination must be non-empty, end must not be before start
// (equal dates yield a one-day trip), travelers below 1 is coerced to 1.
func (s *TripService) Create(ctx context.Context, destination string, start, end time.Time, travelers int) (*domain.Trip, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return nil, fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date must not be before start date", domain.ErrValidation)
	}
	if travelers < 1 {
		travelers = 1
	}

	dayCount := int(end.Sub(start)/(24*time.Hour)) + 1
	days := make([]domain.Day, dayCount)
	for i := range days {
		days[i] = domain.Day{Day: i + 1, Activities: []domain.Activity{}}
	}

	created := s.now().UTC()
	trip := &domain.Trip{
		Destination:    destination,
		StartDate:      start,
		EndDate:        end,
		Travelers:      travelers,
		Days:           days,
		Transportation: []domain.Transport{},
		PackingList:    []domain.PackingItem{},
		CreatedAt:      created,
		UpdatedAt:      created,
	}

	if err := s.store.Replace(ctx, trip); err != nil {
		return nil, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return trip, nil
}

// Delete discards the active trip. Replacing with nil cascades to clearing
// the persisted slot. Deleting when no trip exists returns domain.ErrNoTrip.
func (s *TripService) Delete(ctx context.Context) error {
	if s.store.Current() == nil {
		return fmt.Errorf("service.TripService.Delete: %w", domain.ErrNoTrip)
	}
	if err := s.store.Replace(ctx, nil); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// SetBudgetLimit sets the spending ceiling. The limit must be positive.
func (s *TripService) SetBudgetLimit(ctx context.Context, limit float64) error {
	if limit <= 0 || math.IsNaN(limit) || math.IsInf(limit, 0) {
		return fmt.Errorf("%w: budget limit must be a positive number", domain.ErrValidation)
	}
	err := s.update(ctx, func(t *domain.Trip) error {
		t.BudgetLimit = &limit
		return nil
	})
	if err != nil {
		return fmt.Errorf("service.TripService.SetBudgetLimit: %w", err)
	}
	return nil
}

// ClearBudgetLimit removes the spending ceiling.
func (s *TripService) ClearBudgetLimit(ctx context.Context) error {
	err := s.update(ctx, func(t *domain.Trip) error {
		t.BudgetLimit = nil
		return nil
	})
	if err != nil {
		return fmt.Errorf("service.TripService.ClearBudgetLimit: %w", err)
	}
	return nil
}

// update is the shared read-copy-replace helper behind every edit.
// Current() already returns a deep copy, so apply may mutate it freely;
// the original document is untouched until Replace installs the new value.
func (s *TripService) update(ctx context.Context, apply func(t *domain.Trip) error) error {
	trip := s.store.Current()
	if trip == nil {
		return domain.ErrNoTrip
	}
	if err := apply(trip); err != nil {
		return err
	}
	trip.UpdatedAt = s.now().UTC()
	return s.store.Replace(ctx, trip)
}

// coerceCost clamps a monetary input to a safe non-negative default:
// negative, NaN, and infinite values are recorded as 0 rather than rejected.
func coerceCost(cost float64) float64 {
	if cost < 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
		return 0
	}
	return cost
}
