package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazish-kiran/travel-planner/internal/domain"
)

// ---- note tests ------------------------------------------------------------

func TestTripService_AddNote(t *testing.T) {
	svc, st := newService(t)

	got, err := svc.AddNote(context.Background(), "tips", "metro closes at 1am")

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, "tips", got.Category)
	assert.False(t, got.CreatedAt.IsZero())
	require.Len(t, st.trip.Notes, 1)
}

func TestTripService_AddNote_UnknownCategoryDefaults(t *testing.T) {
	svc, _ := newService(t)

	got, err := svc.AddNote(context.Background(), "diary", "day one was great")

	require.NoError(t, err)
	assert.Equal(t, domain.NoteCategoryGeneral, got.Category)
}

func TestTripService_AddNote_BlankContent(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.AddNote(context.Background(), "general", "  ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_UpdateNote(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()

	note, err := svc.AddNote(ctx, "general", "old")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateNote(ctx, note.ID, "new"))

	assert.Equal(t, "new", st.trip.Notes[0].Content)
	assert.Equal(t, note.ID, st.trip.Notes[0].ID)
}

func TestTripService_UpdateNote_NotFound(t *testing.T) {
	svc, _ := newService(t)

	assert.ErrorIs(t, svc.UpdateNote(context.Background(), uuid.New(), "x"), domain.ErrNotFound)
}

func TestTripService_RemoveNote(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()

	note, err := svc.AddNote(ctx, "general", "x")
	require.NoError(t, err)

	require.NoError(t, svc.RemoveNote(ctx, note.ID))

	assert.Empty(t, st.trip.Notes)
}

func TestTripService_RemoveNote_NotFound(t *testing.T) {
	svc, _ := newService(t)

	assert.ErrorIs(t, svc.RemoveNote(context.Background(), uuid.New()), domain.ErrNotFound)
}

// ---- document tests --------------------------------------------------------

func TestTripService_AddDocument(t *testing.T) {
	svc, st := newService(t)

	got, err := svc.AddDocument(context.Background(), "visa", "print approval letter")

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.False(t, got.Completed)
	require.Len(t, st.trip.Documents["visa"], 1)
}

func TestTripService_AddDocument_UnknownCategory(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.AddDocument(context.Background(), "luggage", "x")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_AddDocument_BlankText(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.AddDocument(context.Background(), "visa", "  ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_ToggleDocument(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()

	item, err := svc.AddDocument(ctx, "insurance", "buy policy")
	require.NoError(t, err)

	require.NoError(t, svc.ToggleDocument(ctx, "insurance", item.ID))
	assert.True(t, st.trip.Documents["insurance"][0].Completed)

	completed, total := st.trip.DocumentProgress()
	assert.Equal(t, 1, completed)
	assert.Equal(t, 1, total)
}

func TestTripService_ToggleDocument_WrongCategory(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	item, err := svc.AddDocument(ctx, "insurance", "x")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.ToggleDocument(ctx, "visa", item.ID), domain.ErrNotFound)
}

func TestTripService_RemoveDocument(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()

	item, err := svc.AddDocument(ctx, "other", "x")
	require.NoError(t, err)

	require.NoError(t, svc.RemoveDocument(ctx, "other", item.ID))

	assert.Empty(t, st.trip.Documents["other"])
}

func TestTripService_RemoveDocument_NotFound(t *testing.T) {
	svc, _ := newService(t)

	err := svc.RemoveDocument(context.Background(), "other", uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
