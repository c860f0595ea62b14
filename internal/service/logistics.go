package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Nazish-kiran/travel-planner/internal/domain"
)

// SetAccommodation records the trip's single lodging entry, overwriting any
// previous value. The name is required; the cost is coerced non-negative.
func (s *TripService) SetAccommodation(ctx context.Context, acc domain.Accommodation) error {
	if strings.TrimSpace(acc.Name) == "" {
		return fmt.Errorf("%w: accommodation name is required", domain.ErrValidation)
	}
	acc.Cost = coerceCost(acc.Cost)

	err := s.update(ctx, func(t *domain.Trip) error {
		t.Accommodation = &acc
		return nil
	})
	if err != nil {
		return fmt.Errorf("service.TripService.SetAccommodation: %w", err)
	}
	return nil
}

// RemoveAccommodation clears the lodging entry.
func (s *TripService) RemoveAccommodation(ctx context.Context) error {
	err := s.update(ctx, func(t *domain.Trip) error {
		t.Accommodation = nil
		return nil
	})
	if err != nil {
		return fmt.Errorf("service.TripService.RemoveAccommodation: %w", err)
	}
	return nil
}

// AddTransport appends a transportation record. Type is required; a blank
// cost field is recorded as 0.
func (s *TripService) AddTransport(ctx context.Context, transportType, details string, cost float64) (domain.Transport, error) {
	if strings.TrimSpace(transportType) == "" {
		return domain.Transport{}, fmt.Errorf("%w: transport type is required", domain.ErrValidation)
	}

	transport := domain.Transport{
		ID:      uuid.New(),
		Type:    strings.TrimSpace(transportType),
		Details: details,
		Cost:    coerceCost(cost),
	}

	err := s.update(ctx, func(t *domain.Trip) error {
		t.Transportation = append(t.Transportation, transport)
		return nil
	})
	if err != nil {
		return domain.Transport{}, fmt.Errorf("service.TripService.AddTransport: %w", err)
	}
	return transport, nil
}

// RemoveTransport deletes a transportation record by ID.
func (s *TripService) RemoveTransport(ctx context.Context, id uuid.UUID) error {
	err := s.update(ctx, func(t *domain.Trip) error {
		kept, found := withoutTransport(t.Transportation, id)
		if !found {
			return fmt.Errorf("transport %s: %w", id, domain.ErrNotFound)
		}
		t.Transportation = kept
		return nil
	})
	if err != nil {
		return fmt.Errorf("service.TripService.RemoveTransport: %w", err)
	}
	return nil
}

// AddPackingItem appends an unpacked item to the packing list.
func (s *TripService) AddPackingItem(ctx context.Context, text string) (domain.PackingItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.PackingItem{}, fmt.Errorf("%w: packing item text is required", domain.ErrValidation)
	}

	item := domain.PackingItem{ID: uuid.New(), Text: text}

	err := s.update(ctx, func(t *domain.Trip) error {
		t.PackingList = append(t.PackingList, item)
		return nil
	})
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("service.TripService.AddPackingItem: %w", err)
	}
	return item, nil
}

// TogglePacked flips the packed flag of one packing item.
func (s *TripService) TogglePacked(ctx context.Context, id uuid.UUID) error {
	err := s.update(ctx, func(t *domain.Trip) error {
		for i := range t.PackingList {
			if t.PackingList[i].ID == id {
				t.PackingList[i].Packed = !t.PackingList[i].Packed
				return nil
			}
		}
		return fmt.Errorf("packing item %s: %w", id, domain.ErrNotFound)
	})
	if err != nil {
		return fmt.Errorf("service.TripService.TogglePacked: %w", err)
	}
	return nil
}

// RemovePackingItem deletes a packing item by ID.
func (s *TripService) RemovePackingItem(ctx context.Context, id uuid.UUID) error {
	err := s.update(ctx, func(t *domain.Trip) error {
		kept := t.PackingList[:0:0]
		found := false
		for _, item := range t.PackingList {
			if item.ID == id {
				found = true
				continue
			}
			kept = append(kept, item)
		}
		if !found {
			return fmt.Errorf("packing item %s: %w", id, domain.ErrNotFound)
		}
		t.PackingList = kept
		return nil
	})
	if err != nil {
		return fmt.Errorf("service.TripService.RemovePackingItem: %w", err)
	}
	return nil
}

func withoutTransport(list []domain.Transport, id uuid.UUID) ([]domain.Transport, bool) {
	kept := list[:0:0]
	found := false
	for _, tr := range list {
		if tr.ID == id {
			found = true
			continue
		}
		kept = append(kept, tr)
	}
	return kept, found
}
