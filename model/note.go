package model

import (
	"time"
)

// Note is a journal entry owned by exactly one destination. Notes are
// created and deleted, never edited.
type Note struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	DestinationID string    `bson:"destination_id" json:"destination_id,omitempty"`
	Content       string    `bson:"content" json:"content" binding:"required"`
	ImageURL      *string   `bson:"image_url,omitempty" json:"image_url"`
	MoodTags      []string  `bson:"mood_tags,omitempty" json:"mood_tags"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}
