package usecase

import (
	"context"
	"log"
	"strings"
	"sync"

	"journeymap/middleware"
	"journeymap/model"
	"journeymap/repository"
)

// JournalService owns the in-memory destination list. It is the only place
// allowed to mutate that list; every mutation persists through the store and
// updates the cache as one step. Store failures are caught here, logged, and
// degrade to a nil result with the cache left unchanged.
type JournalService struct {
	Store repository.Store

	mu           sync.RWMutex
	destinations []*model.Destination
}

func NewJournalService(store repository.Store) *JournalService {
	return &JournalService{
		Store:        store,
		destinations: []*model.Destination{},
	}
}

// LoadAll populates the cache from the store. On failure the cache is left
// empty and the error is logged and returned for the caller's log line.
func (svc *JournalService) LoadAll(ctx context.Context) error {
	dests, err := svc.Store.LoadAll(ctx)
	if err != nil {
		log.Printf("Error loading destinations: %v", err)
		svc.mu.Lock()
		svc.destinations = []*model.Destination{}
		svc.mu.Unlock()
		return err
	}

	svc.mu.Lock()
	svc.destinations = dests
	svc.mu.Unlock()
	return nil
}

// Destinations returns the cached list, newest-first. The returned slice is
// a copy; callers must mutate through the service.
func (svc *JournalService) Destinations() []*model.Destination {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return append([]*model.Destination(nil), svc.destinations...)
}

// AddDestination creates and persists a new destination and inserts it at
// the front of the cached list. Returns nil when validation or persistence
// fails.
func (svc *JournalService) AddDestination(ctx context.Context, name string, latitude, longitude float64, category model.Category) *model.Destination {
	name = strings.TrimSpace(name)
	if name == "" || !category.Valid() ||
		latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		log.Printf("Rejected destination: name=%q category=%q (%f, %f)", name, category, latitude, longitude)
		countOp("add_destination", false)
		return nil
	}

	dest, err := svc.Store.InsertDestination(ctx, name, latitude, longitude, category)
	if err != nil {
		log.Printf("Error adding destination: %v", err)
		countOp("add_destination", false)
		return nil
	}

	svc.mu.Lock()
	svc.destinations = append([]*model.Destination{dest}, svc.destinations...)
	svc.mu.Unlock()

	countOp("add_destination", true)
	return dest
}

// DeleteDestination removes the destination and all its notes. Unknown ids
// are a silent no-op; a persistence failure leaves the stale entry cached.
func (svc *JournalService) DeleteDestination(ctx context.Context, id string) {
	if err := svc.Store.DeleteDestination(ctx, id); err != nil {
		log.Printf("Error deleting destination: %v", err)
		countOp("delete_destination", false)
		return
	}

	svc.mu.Lock()
	updated := make([]*model.Destination, 0, len(svc.destinations))
	for _, d := range svc.destinations {
		if d.ID != id {
			updated = append(updated, d)
		}
	}
	svc.destinations = updated
	svc.mu.Unlock()

	countOp("delete_destination", true)
}

// AddNote creates and persists a note attached to the given destination and
// prepends it to that destination's cached notes. Returns nil when the
// destination is unknown or persistence fails.
func (svc *JournalService) AddNote(ctx context.Context, destinationID, content string, moodTags []string, imageURL *string) *model.Note {
	if strings.TrimSpace(content) == "" {
		log.Printf("Rejected note for %s: empty content", destinationID)
		countOp("add_note", false)
		return nil
	}

	note, err := svc.Store.InsertNote(ctx, destinationID, content, moodTags, imageURL)
	if err != nil {
		log.Printf("Error adding note: %v", err)
		countOp("add_note", false)
		return nil
	}

	svc.mu.Lock()
	for i, d := range svc.destinations {
		if d.ID == destinationID {
			updated := *d
			updated.Notes = append([]*model.Note{note}, d.Notes...)
			svc.destinations[i] = &updated
			break
		}
	}
	svc.mu.Unlock()

	countOp("add_note", true)
	return note
}

// DeleteNote removes a single note from the given destination, leaving
// sibling destinations untouched. Unknown ids are a silent no-op.
func (svc *JournalService) DeleteNote(ctx context.Context, destinationID, noteID string) {
	if err := svc.Store.DeleteNote(ctx, destinationID, noteID); err != nil {
		log.Printf("Error deleting note: %v", err)
		countOp("delete_note", false)
		return
	}

	svc.mu.Lock()
	for i, d := range svc.destinations {
		if d.ID != destinationID {
			continue
		}
		updated := *d
		updated.Notes = make([]*model.Note, 0, len(d.Notes))
		for _, n := range d.Notes {
			if n.ID != noteID {
				updated.Notes = append(updated.Notes, n)
			}
		}
		svc.destinations[i] = &updated
		break
	}
	svc.mu.Unlock()

	countOp("delete_note", true)
}

func countOp(operation string, ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "failed"
	}
	middleware.JournalOperationsTotal.WithLabelValues(operation, outcome).Inc()
}
