package usecase

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"journeymap/model"
	"journeymap/repository"
)

func newTestJournal(t *testing.T) *JournalService {
	t.Helper()
	store := repository.NewLocalStore(filepath.Join(t.TempDir(), "journey_map_data.json"))
	journal := NewJournalService(store)
	if err := journal.LoadAll(context.Background()); err != nil {
		t.Fatal("initial load failed", err)
	}
	return journal
}

func TestJournalAddDestination(t *testing.T) {
	ctx := context.Background()
	journal := newTestJournal(t)

	dest := journal.AddDestination(ctx, "Paris, France", 48.8566, 2.3522, model.CategoryDream)
	if dest == nil {
		t.Fatal("add destination returned nil")
	}
	if dest.ID == "" {
		t.Error("destination id is empty")
	}
	if len(dest.Notes) != 0 {
		t.Errorf("new destination notes = %v, want empty", dest.Notes)
	}

	journal.AddDestination(ctx, "Kyoto, Japan", 35.0116, 135.7681, model.CategoryVisited)

	dests := journal.Destinations()
	if len(dests) != 2 {
		t.Fatalf("cache holds %d destinations, want 2", len(dests))
	}
	if dests[0].Name != "Kyoto, Japan" {
		t.Errorf("first element = %q, want the most recent add", dests[0].Name)
	}
}

func TestJournalRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	journal := newTestJournal(t)

	cases := []struct {
		name     string
		destName string
		lat, lng float64
		category model.Category
	}{
		{"EmptyName", "  ", 0, 0, model.CategoryDream},
		{"BadCategory", "Paris", 0, 0, model.Category("bucket-list")},
		{"LatitudeOutOfRange", "Paris", 91, 0, model.CategoryDream},
		{"LongitudeOutOfRange", "Paris", 0, -181, model.CategoryDream},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if dest := journal.AddDestination(ctx, tc.destName, tc.lat, tc.lng, tc.category); dest != nil {
				t.Errorf("invalid destination was accepted: %+v", dest)
			}
		})
	}
	if n := len(journal.Destinations()); n != 0 {
		t.Errorf("cache holds %d destinations after rejected adds, want 0", n)
	}
}

func TestJournalPersistenceFailureLeavesCacheUnchanged(t *testing.T) {
	ctx := context.Background()
	// Point the store at a directory that does not exist so every write fails.
	store := repository.NewLocalStore(filepath.Join(t.TempDir(), "missing", "data.json"))
	journal := NewJournalService(store)
	journal.LoadAll(ctx)

	if dest := journal.AddDestination(ctx, "Paris, France", 48.8566, 2.3522, model.CategoryDream); dest != nil {
		t.Errorf("add succeeded against a broken store: %+v", dest)
	}
	if n := len(journal.Destinations()); n != 0 {
		t.Errorf("cache holds %d destinations after failed persist, want 0", n)
	}
}

func TestJournalNotes(t *testing.T) {
	ctx := context.Background()
	journal := newTestJournal(t)

	dest := journal.AddDestination(ctx, "Paris, France", 48.8566, 2.3522, model.CategoryDream)
	sibling := journal.AddDestination(ctx, "Rome", 41.9028, 12.4964, model.CategoryPlanning)
	journal.AddNote(ctx, sibling.ID, "Trevi fountain", nil, nil)

	t.Run("AddPrepends", func(t *testing.T) {
		journal.AddNote(ctx, dest.ID, "Older entry", nil, nil)
		note := journal.AddNote(ctx, dest.ID, "Great food", []string{"Food"}, nil)
		if note == nil {
			t.Fatal("add note returned nil")
		}
		if note.ImageURL != nil {
			t.Errorf("image url = %v, want nil", *note.ImageURL)
		}
		if len(note.MoodTags) != 1 || note.MoodTags[0] != "Food" {
			t.Errorf("mood tags = %v, want [Food]", note.MoodTags)
		}
		if _, err := time.Parse(time.RFC3339Nano, note.CreatedAt.Format(time.RFC3339Nano)); err != nil {
			t.Errorf("created_at does not round-trip through ISO-8601: %v", err)
		}

		cached := findCached(t, journal, dest.ID)
		if len(cached.Notes) != 2 {
			t.Fatalf("cached destination has %d notes, want 2", len(cached.Notes))
		}
		if cached.Notes[0].Content != "Great food" {
			t.Errorf("first note = %q, want the most recent add", cached.Notes[0].Content)
		}
	})

	t.Run("AddToUnknownDestination", func(t *testing.T) {
		if note := journal.AddNote(ctx, "no-such-id", "orphan", nil, nil); note != nil {
			t.Errorf("note attached to unknown destination: %+v", note)
		}
	})

	t.Run("RejectsEmptyContent", func(t *testing.T) {
		if note := journal.AddNote(ctx, dest.ID, "   ", nil, nil); note != nil {
			t.Errorf("empty note was accepted: %+v", note)
		}
	})

	t.Run("DeleteLeavesSiblingsUntouched", func(t *testing.T) {
		target := findCached(t, journal, dest.ID).Notes[0]
		journal.DeleteNote(ctx, dest.ID, target.ID)

		if n := findCached(t, journal, dest.ID).Notes; len(n) != 1 {
			t.Errorf("destination has %d notes after delete, want 1", len(n))
		}
		if n := findCached(t, journal, sibling.ID).Notes; len(n) != 1 {
			t.Errorf("sibling has %d notes, want 1 untouched", len(n))
		}
	})

	t.Run("DeleteUnknownIsNoop", func(t *testing.T) {
		before := len(findCached(t, journal, dest.ID).Notes)
		journal.DeleteNote(ctx, dest.ID, "no-such-note")
		journal.DeleteDestination(ctx, "no-such-destination")
		if after := len(findCached(t, journal, dest.ID).Notes); after != before {
			t.Errorf("note count changed from %d to %d on no-op deletes", before, after)
		}
	})

	t.Run("CascadeDeleteSurvivesReload", func(t *testing.T) {
		journal.DeleteDestination(ctx, dest.ID)
		if err := journal.LoadAll(ctx); err != nil {
			t.Fatal("reload failed", err)
		}
		for _, d := range journal.Destinations() {
			if d.ID == dest.ID {
				t.Error("deleted destination reappeared after reload")
			}
		}
	})
}

func findCached(t *testing.T, journal *JournalService, id string) *model.Destination {
	t.Helper()
	for _, d := range journal.Destinations() {
		if d.ID == id {
			return d
		}
	}
	t.Fatalf("destination %s not in cache", id)
	return nil
}
