package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Note is one categorized trip note.
type Note struct {
	ID        uuid.UUID `json:"id"`
	Category  string    `json:"category"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// NoteCategories lists the valid note categories, in display order.
// NoteCategoryGeneral is the fallback for unknown categories and the target
// of the legacy-string migration.
var NoteCategories = []string{
	"general", "visa", "tips", "contacts", "weather", "local",
}

// NoteCategoryGeneral is the default note category.
const NoteCategoryGeneral = "general"

// ValidNoteCategory reports whether c is a known note category.
func ValidNoteCategory(c string) bool {
	for _, known := range NoteCategories {
		if c == known {
			return true
		}
	}
	return false
}

// NoteList is the categorized note collection of a Trip.
//
// Older persisted documents stored notes as a single free-text string.
// The categorized collection is authoritative; UnmarshalJSON migrates the
// legacy shape into a single "general" note so that loading an old document
// never fails and never loses the text. Serialization always writes the
// collection form — the string shape is read-only legacy input.
type NoteList []Note

// UnmarshalJSON accepts either a JSON array of notes or a legacy JSON string.
func (n *NoteList) UnmarshalJSON(data []byte) error {
	// Fast path: the modern array shape.
	var notes []Note
	if err := json.Unmarshal(data, &notes); err == nil {
		*n = notes
		return nil
	}

	var legacy string
	if err := json.Unmarshal(data, &legacy); err != nil {
		return err
	}
	if legacy == "" {
		*n = nil
		return nil
	}
	*n = NoteList{{
		ID:       uuid.New(),
		Category: NoteCategoryGeneral,
		Content:  legacy,
	}}
	return nil
}
