package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazish-kiran/travel-planner/internal/domain"
)

func fullTrip() *domain.Trip {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Trip{
		Destination: "Tokyo",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 2),
		Travelers:   2,
		Days: []domain.Day{
			{Day: 1, Activities: []domain.Activity{
				{ID: uuid.New(), Title: "Senso-ji", Category: domain.CategoryCulture, Cost: 0},
			}},
			{Day: 2, Activities: []domain.Activity{}},
			{Day: 3, Activities: []domain.Activity{}},
		},
		Accommodation: &domain.Accommodation{Name: "Park Hotel", Cost: 900},
		Transportation: []domain.Transport{
			{ID: uuid.New(), Type: "Flight", Details: "NRT", Cost: 1200},
		},
		PackingList: []domain.PackingItem{
			{ID: uuid.New(), Text: "passport", Packed: true},
		},
		Notes: domain.NoteList{
			{ID: uuid.New(), Category: "tips", Content: "cash preferred", CreatedAt: start},
		},
		Documents: map[string][]domain.DocumentItem{
			"passport": {{ID: uuid.New(), Text: "check expiry"}},
		},
		BudgetLimit: limit(3000),
		CreatedAt:   start,
		UpdatedAt:   start,
	}
}

// ---- DayDate ---------------------------------------------------------------

func TestTrip_DayDate(t *testing.T) {
	trip := fullTrip()

	assert.Equal(t, trip.StartDate, trip.DayDate(1))
	assert.Equal(t, trip.StartDate.AddDate(0, 0, 2), trip.DayDate(3))
}

// ---- Clone -----------------------------------------------------------------

func TestTrip_Clone_Nil(t *testing.T) {
	var trip *domain.Trip

	assert.Nil(t, trip.Clone())
}

func TestTrip_Clone_IsDeep(t *testing.T) {
	trip := fullTrip()
	clone := trip.Clone()

	require.Equal(t, trip, clone)

	// Mutating the clone must never reach the original.
	clone.Days[0].Activities[0].Title = "changed"
	clone.Accommodation.Name = "changed"
	clone.Transportation[0].Cost = 0
	clone.PackingList[0].Packed = false
	clone.Notes[0].Content = "changed"
	clone.Documents["passport"][0].Completed = true
	*clone.BudgetLimit = 1

	assert.Equal(t, "Senso-ji", trip.Days[0].Activities[0].Title)
	assert.Equal(t, "Park Hotel", trip.Accommodation.Name)
	assert.Equal(t, 1200.0, trip.Transportation[0].Cost)
	assert.True(t, trip.PackingList[0].Packed)
	assert.Equal(t, "cash preferred", trip.Notes[0].Content)
	assert.False(t, trip.Documents["passport"][0].Completed)
	assert.Equal(t, 3000.0, *trip.BudgetLimit)
}

// ---- serialization ---------------------------------------------------------

func TestTrip_JSONRoundTrip(t *testing.T) {
	trip := fullTrip()

	data, err := json.Marshal(trip)
	require.NoError(t, err)

	var got domain.Trip
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, trip, &got)
}

func TestTrip_JSONRoundTrip_PreservesAggregates(t *testing.T) {
	trip := fullTrip()

	data, err := json.Marshal(trip)
	require.NoError(t, err)

	var got domain.Trip
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, trip.Total(), got.Total())
	assert.Equal(t, trip.PackingProgress(), got.PackingProgress())
	assert.Equal(t, domain.ClassifyBudget(trip), domain.ClassifyBudget(&got))
}

// ---- document categories ---------------------------------------------------

func TestValidDocumentCategory(t *testing.T) {
	for _, c := range domain.DocumentCategories {
		assert.True(t, domain.ValidDocumentCategory(c), c)
	}
	assert.False(t, domain.ValidDocumentCategory("luggage"))
	assert.False(t, domain.ValidDocumentCategory(""))
}
