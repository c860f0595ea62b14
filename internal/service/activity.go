package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Nazish-kiran/travel-planner/internal/domain"
)

// ActivityInput carries the user-entered fields for a new activity.
type ActivityInput struct {
	Title    string
	Time     string
	Category domain.Category
	Cost     float64
	Notes    string
}

// AddActivity appends a new activity to the given 1-based day.
// Title is required; an empty or unknown category falls back to Sightseeing;
// a negative or non-numeric cost is recorded as 0.
func (s *TripService) AddActivity(ctx context.Context, day int, in ActivityInput) (domain.Activity, error) {
	if strings.TrimSpace(in.Title) == "" {
		return domain.Activity{}, fmt.Errorf("%w: activity title is required", domain.ErrValidation)
	}
	if !in.Category.Valid() {
		in.Category = domain.CategorySightseeing
	}

	activity := domain.Activity{
		ID:       uuid.New(),
		Title:    strings.TrimSpace(in.Title),
		Time:     in.Time,
		Category: in.Category,
		Cost:     coerceCost(in.Cost),
		Notes:    in.Notes,
	}

	err := s.update(ctx, func(t *domain.Trip) error {
		d, err := dayIndex(t, day)
		if err != nil {
			return err
		}
		t.Days[d].Activities = append(t.Days[d].Activities, activity)
		return nil
	})
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.TripService.AddActivity: %w", err)
	}
	return activity, nil
}

// RemoveActivity deletes an activity from the given day by ID.
// Returns domain.ErrNotFound when the day holds no activity with that ID.
func (s *TripService) RemoveActivity(ctx context.Context, day int, id uuid.UUID) error {
	err := s.update(ctx, func(t *domain.Trip) error {
		d, err := dayIndex(t, day)
		if err != nil {
			return err
		}
		kept := t.Days[d].Activities[:0:0]
		found := false
		for _, a := range t.Days[d].Activities {
			if a.ID == id {
				found = true
				continue
			}
			kept = append(kept, a)
		}
		if !found {
			return fmt.Errorf("activity %s: %w", id, domain.ErrNotFound)
		}
		t.Days[d].Activities = kept
		return nil
	})
	if err != nil {
		return fmt.Errorf("service.TripService.RemoveActivity: %w", err)
	}
	return nil
}

// dayIndex maps a 1-based day number to its slice index, validating range.
func dayIndex(t *domain.Trip, day int) (int, error) {
	if day < 1 || day > len(t.Days) {
		return 0, fmt.Errorf("%w: day %d is outside the trip (1..%d)", domain.ErrValidation, day, len(t.Days))
	}
	return day - 1, nil
}
