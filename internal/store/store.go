// Package store owns the single in-memory trip document and its persistence
// mirror. Replace is the only mutation primitive: every feature-level edit is
// implemented by its caller as read → build a new Trip value → Replace.
// Centralizing mutation here keeps persistence synchronous with every change
// and gives all consumers one source of truth.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/Nazish-kiran/travel-planner/internal/domain"
)

// Mirror is the synchronous save/load/clear contract backing the trip
// document against durable local storage. Implementations must treat corrupt
// stored state as absent: Load returns (nil, nil), never a parse error.
type Mirror interface {
	// Load returns the persisted trip, or nil when the slot is empty or the
	// stored text cannot be decoded.
	Load(ctx context.Context) (*domain.Trip, error)

	// Save serializes the whole trip and writes it under the fixed slot.
	Save(ctx context.Context, trip *domain.Trip) error

	// Clear deletes the slot. Clearing an already-empty slot is not an error.
	Clear(ctx context.Context) error
}

// Store holds the current trip document. The mutex keeps Replace atomic
// with its mirror write and makes Current safe for concurrent readers
// without changing last-write-wins semantics.
type Store struct {
	mu     sync.Mutex
	trip   *domain.Trip
	mirror Mirror
}

// Open constructs a Store whose initial value is read from the mirror.
// A corrupt or absent slot yields a nil current trip, never an error from
// decoding — the user simply starts with no active trip.
func Open(ctx context.Context, mirror Mirror) (*Store, error) {
	trip, err := mirror.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.Open: %w", err)
	}
	return &Store{trip: trip, mirror: mirror}, nil
}

// Current returns a deep copy of the active trip, or nil when there is none.
// Returning a copy means no caller can mutate the stored document in place.
func (s *Store) Current() *domain.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trip.Clone()
}

// Replace installs next as the current trip and synchronously mirrors it:
// a non-nil trip is saved, a nil trip clears the persisted slot. The
// in-memory value is installed even when the mirror write fails — the error
// is returned, but the session keeps working and the next successful Replace
// re-mirrors the whole document.
func (s *Store) Replace(ctx context.Context, next *domain.Trip) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trip = next.Clone()

	if next == nil {
		if err := s.mirror.Clear(ctx); err != nil {
			return fmt.Errorf("store.Store.Replace: clear: %w", err)
		}
		return nil
	}
	if err := s.mirror.Save(ctx, s.trip); err != nil {
		return fmt.Errorf("store.Store.Replace: save: %w", err)
	}
	return nil
}
