package repository

import (
	"context"
	"errors"

	"journeymap/model"
)

// ErrDestinationNotFound is returned by InsertNote when the owning
// destination does not exist. Deletes never return it: deleting an unknown
// id is a no-op by contract.
var ErrDestinationNotFound = errors.New("destination not found")

// Store is the persistence contract shared by the local file store and the
// Mongo store. Both keep the same observable behavior: destinations ordered
// newest-first, notes newest-first within their destination, cascade delete
// of a destination's notes, ids and note timestamps assigned at the store
// layer.
type Store interface {
	// LoadAll returns the full data set with nested notes.
	LoadAll(ctx context.Context) ([]*model.Destination, error)

	// InsertDestination persists a new destination with a fresh id and an
	// empty notes list and returns the stored record.
	InsertDestination(ctx context.Context, name string, latitude, longitude float64, category model.Category) (*model.Destination, error)

	// DeleteDestination removes the destination and all of its notes.
	// Unknown ids are ignored.
	DeleteDestination(ctx context.Context, id string) error

	// InsertNote persists a new note attached to the given destination and
	// returns the stored record with its assigned id and created_at.
	InsertNote(ctx context.Context, destinationID, content string, moodTags []string, imageURL *string) (*model.Note, error)

	// DeleteNote removes a single note from the given destination. Unknown
	// ids are ignored.
	DeleteNote(ctx context.Context, destinationID, noteID string) error

	// Name identifies the backend ("local" or "mongo") for logs and health.
	Name() string
}
