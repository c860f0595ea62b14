package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazish-kiran/travel-planner/internal/domain"
	"github.com/Nazish-kiran/travel-planner/internal/store"
)

// mockMirror is a hand-written test double for store.Mirror.
// Each method is a function field — set only the ones your test needs.
type mockMirror struct {
	load  func(ctx context.Context) (*domain.Trip, error)
	save  func(ctx context.Context, trip *domain.Trip) error
	clear func(ctx context.Context) error
}

func (m *mockMirror) Load(ctx context.Context) (*domain.Trip, error) {
	if m.load == nil {
		return nil, nil
	}
	return m.load(ctx)
}
func (m *mockMirror) Save(ctx context.Context, trip *domain.Trip) error {
	if m.save == nil {
		return nil
	}
	return m.save(ctx, trip)
}
func (m *mockMirror) Clear(ctx context.Context) error {
	if m.clear == nil {
		return nil
	}
	return m.clear(ctx)
}

// compile-time check: mockMirror must satisfy store.Mirror.
var _ store.Mirror = (*mockMirror)(nil)

func sampleTrip() *domain.Trip {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Trip{
		Destination: "Lisbon",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 1),
		Travelers:   1,
		Days: []domain.Day{
			{Day: 1, Activities: []domain.Activity{}},
			{Day: 2, Activities: []domain.Activity{}},
		},
	}
}

// ---- Open tests ------------------------------------------------------------

func TestOpen_LoadsPersistedTrip(t *testing.T) {
	trip := sampleTrip()
	s, err := store.Open(context.Background(), &mockMirror{
		load: func(context.Context) (*domain.Trip, error) { return trip, nil },
	})

	require.NoError(t, err)
	assert.Equal(t, "Lisbon", s.Current().Destination)
}

func TestOpen_EmptySlot(t *testing.T) {
	s, err := store.Open(context.Background(), &mockMirror{})

	require.NoError(t, err)
	assert.Nil(t, s.Current())
}

func TestOpen_LoadError(t *testing.T) {
	boom := errors.New("disk gone")
	_, err := store.Open(context.Background(), &mockMirror{
		load: func(context.Context) (*domain.Trip, error) { return nil, boom },
	})

	assert.ErrorIs(t, err, boom)
}

// ---- Replace tests ---------------------------------------------------------

func TestStore_Replace_SavesToMirror(t *testing.T) {
	var saved *domain.Trip
	s, err := store.Open(context.Background(), &mockMirror{
		save: func(_ context.Context, trip *domain.Trip) error {
			saved = trip
			return nil
		},
	})
	require.NoError(t, err)

	trip := sampleTrip()
	require.NoError(t, s.Replace(context.Background(), trip))

	require.NotNil(t, saved)
	assert.Equal(t, "Lisbon", saved.Destination)
	assert.Equal(t, trip, s.Current())
}

func TestStore_Replace_NilClearsSlot(t *testing.T) {
	cleared := false
	s, err := store.Open(context.Background(), &mockMirror{
		load:  func(context.Context) (*domain.Trip, error) { return sampleTrip(), nil },
		clear: func(context.Context) error { cleared = true; return nil },
	})
	require.NoError(t, err)

	require.NoError(t, s.Replace(context.Background(), nil))

	assert.True(t, cleared)
	assert.Nil(t, s.Current())
}

func TestStore_Replace_MirrorFailureKeepsValue(t *testing.T) {
	// The session keeps working on a failed write; only durability is lost
	// until the next successful Replace.
	boom := errors.New("disk full")
	s, err := store.Open(context.Background(), &mockMirror{
		save: func(context.Context, *domain.Trip) error { return boom },
	})
	require.NoError(t, err)

	err = s.Replace(context.Background(), sampleTrip())

	assert.ErrorIs(t, err, boom)
	require.NotNil(t, s.Current())
	assert.Equal(t, "Lisbon", s.Current().Destination)
}

// ---- Current tests ---------------------------------------------------------

func TestStore_Current_ReturnsCopy(t *testing.T) {
	s, err := store.Open(context.Background(), &mockMirror{})
	require.NoError(t, err)
	require.NoError(t, s.Replace(context.Background(), sampleTrip()))

	first := s.Current()
	first.Destination = "changed"
	first.Days[0].Activities = append(first.Days[0].Activities, domain.Activity{Title: "x"})

	second := s.Current()
	assert.Equal(t, "Lisbon", second.Destination)
	assert.Empty(t, second.Days[0].Activities)
}

func TestStore_Replace_DetachesCallerValue(t *testing.T) {
	s, err := store.Open(context.Background(), &mockMirror{})
	require.NoError(t, err)

	trip := sampleTrip()
	require.NoError(t, s.Replace(context.Background(), trip))

	// Mutating the value passed in must not reach the stored document.
	trip.Destination = "changed"

	assert.Equal(t, "Lisbon", s.Current().Destination)
}
