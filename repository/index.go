package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	destinationsCollection := db.Collection("destinations")
	notesCollection := db.Collection("notes")

	destinationIndexes := []mongo.IndexModel{
		// Newest-first listing
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().
				SetName("destinations_created_desc"),
		},
		// User scoping field
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().
				SetName("destinations_user"),
		},
	}

	noteIndexes := []mongo.IndexModel{
		// Per-destination newest-first listing, also serves cascade delete
		{
			Keys: bson.D{
				{Key: "destination_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().
				SetName("notes_destination_date"),
		},
	}

	if _, err := destinationsCollection.Indexes().CreateMany(ctx, destinationIndexes); err != nil {
		return fmt.Errorf("failed to create destination indexes: %w", err)
	}
	if _, err := notesCollection.Indexes().CreateMany(ctx, noteIndexes); err != nil {
		return fmt.Errorf("failed to create note indexes: %w", err)
	}

	log.Println("MongoDB indexes created")
	return nil
}
