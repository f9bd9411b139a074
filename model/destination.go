package model

import (
	"time"
)

// Category classifies a destination on the map.
type Category string

const (
	CategoryDream    Category = "dream"
	CategoryPlanning Category = "planning"
	CategoryVisited  Category = "visited"
)

// Valid reports whether c is one of the three known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryDream, CategoryPlanning, CategoryVisited:
		return true
	}
	return false
}

// Destination is a pinned point of interest with its journal notes.
// Destinations are never updated in place: they are created once and
// deleted explicitly, which cascades to their notes.
type Destination struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Name      string    `bson:"name" json:"name" binding:"required"`
	Latitude  float64   `bson:"latitude" json:"latitude"`
	Longitude float64   `bson:"longitude" json:"longitude"`
	Category  Category  `bson:"category" json:"category"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
	// Notes is newest-first. Stored inline by the local store and in a
	// separate collection by the Mongo store.
	Notes []*Note `bson:"-" json:"notes"`
}
