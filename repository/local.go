package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"journeymap/model"
	"journeymap/utils"
)

// LocalStore persists the whole destination list (with nested notes) as a
// single JSON document in one file. Every mutation rewrites the full blob,
// mirroring a browser local-storage key. Ids are generated client-side and
// note timestamps come from the local clock.
type LocalStore struct {
	path string

	mu   sync.Mutex
	data []*model.Destination // newest-first file image
}

func NewLocalStore(path string) *LocalStore {
	return &LocalStore{path: path}
}

func (s *LocalStore) Name() string { return "local" }

func (s *LocalStore) LoadAll(ctx context.Context) ([]*model.Destination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.data = []*model.Destination{}
		return []*model.Destination{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	var dests []*model.Destination
	if err := json.Unmarshal(raw, &dests); err != nil {
		return nil, fmt.Errorf("malformed data file %s: %w", s.path, err)
	}
	for _, d := range dests {
		normalizeDestination(d)
	}

	s.data = dests
	return cloneDestinations(dests), nil
}

func (s *LocalStore) InsertDestination(ctx context.Context, name string, latitude, longitude float64, category model.Category) (*model.Destination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	dest := &model.Destination{
		ID:        utils.GenerateID(),
		Name:      name,
		Latitude:  latitude,
		Longitude: longitude,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
		Notes:     []*model.Note{},
	}

	updated := append([]*model.Destination{dest}, s.data...)
	if err := s.save(updated); err != nil {
		return nil, err
	}
	s.data = updated

	return cloneDestination(dest), nil
}

func (s *LocalStore) DeleteDestination(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]*model.Destination, 0, len(s.data))
	for _, d := range s.data {
		if d.ID != id {
			updated = append(updated, d)
		}
	}
	if len(updated) == len(s.data) {
		return nil // unknown id, nothing to do
	}

	if err := s.save(updated); err != nil {
		return err
	}
	s.data = updated
	return nil
}

func (s *LocalStore) InsertNote(ctx context.Context, destinationID, content string, moodTags []string, imageURL *string) (*model.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var owner *model.Destination
	for _, d := range s.data {
		if d.ID == destinationID {
			owner = d
			break
		}
	}
	if owner == nil {
		return nil, ErrDestinationNotFound
	}

	if moodTags == nil {
		moodTags = []string{}
	}
	note := &model.Note{
		ID:        utils.GenerateID(),
		Content:   content,
		ImageURL:  imageURL,
		MoodTags:  moodTags,
		CreatedAt: time.Now(),
	}

	prevNotes := owner.Notes
	owner.Notes = append([]*model.Note{note}, owner.Notes...)
	if err := s.save(s.data); err != nil {
		owner.Notes = prevNotes
		return nil, err
	}

	return cloneNote(note), nil
}

func (s *LocalStore) DeleteNote(ctx context.Context, destinationID, noteID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.data {
		if d.ID != destinationID {
			continue
		}
		updated := make([]*model.Note, 0, len(d.Notes))
		for _, n := range d.Notes {
			if n.ID != noteID {
				updated = append(updated, n)
			}
		}
		if len(updated) == len(d.Notes) {
			return nil
		}
		prevNotes := d.Notes
		d.Notes = updated
		if err := s.save(s.data); err != nil {
			d.Notes = prevNotes
			return err
		}
		return nil
	}
	return nil
}

// save serializes the given list as one unit and overwrites the data file.
func (s *LocalStore) save(dests []*model.Destination) error {
	raw, err := json.Marshal(dests)
	if err != nil {
		return fmt.Errorf("failed to serialize destinations: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}
	return nil
}

// normalizeDestination fills defaults for optional fields so that stored
// shape drift never surfaces nil collections to consumers.
func normalizeDestination(d *model.Destination) {
	if d.Notes == nil {
		d.Notes = []*model.Note{}
	}
	for _, n := range d.Notes {
		if n.MoodTags == nil {
			n.MoodTags = []string{}
		}
	}
}

func cloneDestinations(dests []*model.Destination) []*model.Destination {
	out := make([]*model.Destination, len(dests))
	for i, d := range dests {
		out[i] = cloneDestination(d)
	}
	return out
}

func cloneDestination(d *model.Destination) *model.Destination {
	cp := *d
	cp.Notes = make([]*model.Note, len(d.Notes))
	for i, n := range d.Notes {
		cp.Notes[i] = cloneNote(n)
	}
	return &cp
}

func cloneNote(n *model.Note) *model.Note {
	cp := *n
	if n.ImageURL != nil {
		u := *n.ImageURL
		cp.ImageURL = &u
	}
	cp.MoodTags = append([]string(nil), n.MoodTags...)
	if cp.MoodTags == nil {
		cp.MoodTags = []string{}
	}
	return &cp
}
