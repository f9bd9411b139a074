package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"journeymap/middleware"
	"journeymap/model"
	"journeymap/utils"
)

// MongoStore keeps destinations and notes in two related collections with
// destination_id as the foreign key on notes. Ids and timestamps are
// assigned here, at the store layer, and inserts return the stored document.
type MongoStore struct {
	Destinations *mongo.Collection
	Notes        *mongo.Collection
}

func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	db := client.Database(database)
	return &MongoStore{
		Destinations: db.Collection("destinations"),
		Notes:        db.Collection("notes"),
	}
}

func (s *MongoStore) Name() string { return "mongo" }

// LoadAll fetches destinations newest-first, then each destination's notes
// newest-first with one query per destination. The sequential fetch keeps
// the per-destination ordering the contract requires.
func (s *MongoStore) LoadAll(ctx context.Context) ([]*model.Destination, error) {
	defer timeOp("load_all", "destinations")()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.Destinations.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load destinations: %w", err)
	}
	defer cursor.Close(ctx)

	var dests []*model.Destination
	if err = cursor.All(ctx, &dests); err != nil {
		return nil, fmt.Errorf("failed to decode destinations: %w", err)
	}

	for _, dest := range dests {
		notes, err := s.notesFor(ctx, dest.ID)
		if err != nil {
			return nil, err
		}
		dest.Notes = notes
	}
	if dests == nil {
		dests = []*model.Destination{}
	}
	return dests, nil
}

func (s *MongoStore) notesFor(ctx context.Context, destinationID string) ([]*model.Note, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.Notes.Find(ctx, bson.M{"destination_id": destinationID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load notes for %s: %w", destinationID, err)
	}
	defer cursor.Close(ctx)

	var notes []*model.Note
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("failed to decode notes for %s: %w", destinationID, err)
	}
	if notes == nil {
		notes = []*model.Note{}
	}
	for _, n := range notes {
		if n.MoodTags == nil {
			n.MoodTags = []string{}
		}
	}
	return notes, nil
}

func (s *MongoStore) InsertDestination(ctx context.Context, name string, latitude, longitude float64, category model.Category) (*model.Destination, error) {
	defer timeOp("insert", "destinations")()

	now := time.Now().UTC()
	dest := &model.Destination{
		ID:        utils.GenerateID(),
		Name:      name,
		Latitude:  latitude,
		Longitude: longitude,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := s.Destinations.InsertOne(ctx, dest); err != nil {
		return nil, fmt.Errorf("failed to insert destination: %w", err)
	}

	// Return the stored document, not the client-side guess.
	var stored model.Destination
	if err := s.Destinations.FindOne(ctx, bson.M{"_id": dest.ID}).Decode(&stored); err != nil {
		return nil, fmt.Errorf("failed to read back destination: %w", err)
	}
	stored.Notes = []*model.Note{}
	return &stored, nil
}

func (s *MongoStore) DeleteDestination(ctx context.Context, id string) error {
	defer timeOp("delete", "destinations")()

	// Cascade: notes first, then the destination itself. A missing id
	// deletes nothing and is not an error.
	if _, err := s.Notes.DeleteMany(ctx, bson.M{"destination_id": id}); err != nil {
		return fmt.Errorf("failed to delete notes for %s: %w", id, err)
	}
	if _, err := s.Destinations.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete destination %s: %w", id, err)
	}
	return nil
}

func (s *MongoStore) InsertNote(ctx context.Context, destinationID, content string, moodTags []string, imageURL *string) (*model.Note, error) {
	defer timeOp("insert", "notes")()

	count, err := s.Destinations.CountDocuments(ctx, bson.M{"_id": destinationID})
	if err != nil {
		return nil, fmt.Errorf("failed to check destination %s: %w", destinationID, err)
	}
	if count == 0 {
		return nil, ErrDestinationNotFound
	}

	if moodTags == nil {
		moodTags = []string{}
	}
	note := &model.Note{
		ID:            utils.GenerateID(),
		DestinationID: destinationID,
		Content:       content,
		ImageURL:      imageURL,
		MoodTags:      moodTags,
		CreatedAt:     time.Now().UTC(),
	}

	if _, err := s.Notes.InsertOne(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to insert note: %w", err)
	}

	var stored model.Note
	if err := s.Notes.FindOne(ctx, bson.M{"_id": note.ID}).Decode(&stored); err != nil {
		return nil, fmt.Errorf("failed to read back note: %w", err)
	}
	if stored.MoodTags == nil {
		stored.MoodTags = []string{}
	}
	return &stored, nil
}

func (s *MongoStore) DeleteNote(ctx context.Context, destinationID, noteID string) error {
	defer timeOp("delete", "notes")()

	filter := bson.M{
		"_id":            noteID,
		"destination_id": destinationID,
	}
	if _, err := s.Notes.DeleteOne(ctx, filter); err != nil {
		return fmt.Errorf("failed to delete note %s: %w", noteID, err)
	}
	return nil
}

// timeOp feeds the database operation histogram.
func timeOp(operation, collection string) func() {
	start := time.Now()
	return func() {
		middleware.DBOperationDuration.WithLabelValues(operation, collection).
			Observe(time.Since(start).Seconds())
	}
}
