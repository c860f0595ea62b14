package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Nazish-kiran/travel-planner/internal/domain"
)

// AddNote appends a categorized note. An unknown category falls back to
// "general" rather than failing — notes are never worth losing over a typo.
func (s *TripService) AddNote(ctx context.Context, category, content string) (domain.Note, error) {
	if strings.TrimSpace(content) == "" {
		return domain.Note{}, fmt.Errorf("%w: note content is required", domain.ErrValidation)
	}
	if !domain.ValidNoteCategory(category) {
		category = domain.NoteCategoryGeneral
	}

	note := domain.Note{
		ID:        uuid.New(),
		Category:  category,
		Content:   content,
		CreatedAt: s.now().UTC(),
	}

	err := s.update(ctx, func(t *domain.Trip) error {
		t.Notes = append(t.Notes, note)
		return nil
	})
	if err != nil {
		return domain.Note{}, fmt.Errorf("service.TripService.AddNote: %w", err)
	}
	return note, nil
}

// UpdateNote replaces the content of an existing note.
func (s *TripService) UpdateNote(ctx context.Context, id uuid.UUID, content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: note content is required", domain.ErrValidation)
	}
	err := s.update(ctx, func(t *domain.Trip) error {
		for i := range t.Notes {
			if t.Notes[i].ID == id {
				t.Notes[i].Content = content
				return nil
			}
		}
		return fmt.Errorf("note %s: %w", id, domain.ErrNotFound)
	})
	if err != nil {
		return fmt.Errorf("service.TripService.UpdateNote: %w", err)
	}
	return nil
}

// RemoveNote deletes a note by ID.
func (s *TripService) RemoveNote(ctx context.Context, id uuid.UUID) error {
	err := s.update(ctx, func(t *domain.Trip) error {
		kept := t.Notes[:0:0]
		found := false
		for _, n := range t.Notes {
			if n.ID == id {
				found = true
				continue
			}
			kept = append(kept, n)
		}
		if !found {
			return fmt.Errorf("note %s: %w", id, domain.ErrNotFound)
		}
		t.Notes = kept
		return nil
	})
	if err != nil {
		return fmt.Errorf("service.TripService.RemoveNote: %w", err)
	}
	return nil
}

// AddDocument appends a checklist item under the given document category.
// Returns domain.ErrValidation for an unknown category — documents are
// keyed by category, so there is no safe fallback here.
func (s *TripService) AddDocument(ctx context.Context, category, text string) (domain.DocumentItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.DocumentItem{}, fmt.Errorf("%w: document text is required", domain.ErrValidation)
	}
	if !domain.ValidDocumentCategory(category) {
		return domain.DocumentItem{}, fmt.Errorf("%w: unknown document category %q", domain.ErrValidation, category)
	}

	item := domain.DocumentItem{ID: uuid.New(), Text: text}

	err := s.update(ctx, func(t *domain.Trip) error {
		if t.Documents == nil {
			t.Documents = make(map[string][]domain.DocumentItem)
		}
		t.Documents[category] = append(t.Documents[category], item)
		return nil
	})
	if err != nil {
		return domain.DocumentItem{}, fmt.Errorf("service.TripService.AddDocument: %w", err)
	}
	return item, nil
}

// ToggleDocument flips the completed flag of one document item.
func (s *TripService) ToggleDocument(ctx context.Context, category string, id uuid.UUID) error {
	err := s.update(ctx, func(t *domain.Trip) error {
		items := t.Documents[category]
		for i := range items {
			if items[i].ID == id {
				items[i].Completed = !items[i].Completed
				return nil
			}
		}
		return fmt.Errorf("document %s in %q: %w", id, category, domain.ErrNotFound)
	})
	if err != nil {
		return fmt.Errorf("service.TripService.ToggleDocument: %w", err)
	}
	return nil
}

// RemoveDocument deletes a document item from its category.
func (s *TripService) RemoveDocument(ctx context.Context, category string, id uuid.UUID) error {
	err := s.update(ctx, func(t *domain.Trip) error {
		items := t.Documents[category]
		kept := items[:0:0]
		found := false
		for _, item := range items {
			if item.ID == id {
				found = true
				continue
			}
			kept = append(kept, item)
		}
		if !found {
			return fmt.Errorf("document %s in %q: %w", id, category, domain.ErrNotFound)
		}
		t.Documents[category] = kept
		return nil
	})
	if err != nil {
		return fmt.Errorf("service.TripService.RemoveDocument: %w", err)
	}
	return nil
}
