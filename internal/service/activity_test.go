package service_test

import (
	"context"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazish-kiran/travel-planner/internal/domain"
	"github.com/Nazish-kiran/travel-planner/internal/service"
)

// ---- AddActivity tests -----------------------------------------------------

func TestTripService_AddActivity(t *testing.T) {
	svc, st := newService(t)

	got, err := svc.AddActivity(context.Background(), 2, service.ActivityInput{
		Title:    "Louvre",
		Time:     "09:30",
		Category: domain.CategoryCulture,
		Cost:     25,
		Notes:    "book ahead",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, "Louvre", got.Title)

	require.Len(t, st.trip.Days[1].Activities, 1)
	assert.Equal(t, got, st.trip.Days[1].Activities[0])
	assert.Empty(t, st.trip.Days[0].Activities)
}

func TestTripService_AddActivity_BlankTitle(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.AddActivity(context.Background(), 1, service.ActivityInput{Title: "  "})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_AddActivity_UnknownCategoryDefaults(t *testing.T) {
	svc, st := newService(t)

	got, err := svc.AddActivity(context.Background(), 1, service.ActivityInput{
		Title:    "Walk",
		Category: "jogging",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.CategorySightseeing, got.Category)
	assert.Equal(t, domain.CategorySightseeing, st.trip.Days[0].Activities[0].Category)
}

func TestTripService_AddActivity_CoercesCost(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	for _, cost := range []float64{-10, math.NaN(), math.Inf(1)} {
		got, err := svc.AddActivity(ctx, 1, service.ActivityInput{Title: "x", Cost: cost})
		require.NoError(t, err)
		assert.Equal(t, 0.0, got.Cost)
	}
}

func TestTripService_AddActivity_DayOutOfRange(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.AddActivity(ctx, 0, service.ActivityInput{Title: "x"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.AddActivity(ctx, 4, service.ActivityInput{Title: "x"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_AddActivity_NoTrip(t *testing.T) {
	svc := service.NewTripService(&memStore{})

	_, err := svc.AddActivity(context.Background(), 1, service.ActivityInput{Title: "x"})

	assert.ErrorIs(t, err, domain.ErrNoTrip)
}

// ---- RemoveActivity tests --------------------------------------------------

func TestTripService_RemoveActivity(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()

	first, err := svc.AddActivity(ctx, 1, service.ActivityInput{Title: "first"})
	require.NoError(t, err)
	second, err := svc.AddActivity(ctx, 1, service.ActivityInput{Title: "second"})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveActivity(ctx, 1, first.ID))

	require.Len(t, st.trip.Days[0].Activities, 1)
	assert.Equal(t, second.ID, st.trip.Days[0].Activities[0].ID)
}

func TestTripService_RemoveActivity_NotFound(t *testing.T) {
	svc, _ := newService(t)

	err := svc.RemoveActivity(context.Background(), 1, uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripService_RemoveActivity_WrongDay(t *testing.T) {
	// Removal is scoped to the named day; the same ID on another day stays.
	svc, st := newService(t)
	ctx := context.Background()

	got, err := svc.AddActivity(ctx, 2, service.ActivityInput{Title: "x"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.RemoveActivity(ctx, 1, got.ID), domain.ErrNotFound)
	assert.Len(t, st.trip.Days[1].Activities, 1)
}
